package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// LLM provider names reported with every completion.
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
)

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Content block types.
const (
	BlockText       = "text"
	BlockToolUse    = "tool_use"
	BlockToolResult = "tool_result"
)

// Stop reasons of a tool-enabled completion.
const (
	StopToolUse = "tool_use"
	StopEndTurn = "end_turn"
)

// ContentBlock is one typed element of a structured message body.
type ContentBlock struct {
	Type      string         `json:"type"`
	Text      string         `json:"text,omitempty"`
	ID        string         `json:"id,omitempty"`
	Name      string         `json:"name,omitempty"`
	Input     map[string]any `json:"input,omitempty"`
	ToolUseID string         `json:"tool_use_id,omitempty"`
	Content   any            `json:"content,omitempty"`
}

// ResultText coerces a tool_result content to a string. Non-string values
// are JSON encoded.
func (b ContentBlock) ResultText() string {
	switch v := b.Content.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(raw)
	}
}

// Message is a role-tagged chat message whose body is either plain text or
// an ordered list of content blocks. Blocks wins when non-nil.
type Message struct {
	Role   string
	Text   string
	Blocks []ContentBlock
}

// TextMessage builds a plain-text message.
func TextMessage(role, text string) Message {
	return Message{Role: role, Text: text}
}

type messageJSON struct {
	Role    string          `json:"role"`
	Content json.RawMessage `json:"content"`
}

// MarshalJSON encodes content as a string or an array of blocks.
func (m Message) MarshalJSON() ([]byte, error) {
	var (
		content []byte
		err     error
	)
	if m.Blocks != nil {
		content, err = json.Marshal(m.Blocks)
	} else {
		content, err = json.Marshal(m.Text)
	}
	if err != nil {
		return nil, err
	}
	return json.Marshal(messageJSON{Role: m.Role, Content: content})
}

// UnmarshalJSON accepts content as a string or an array of blocks.
func (m *Message) UnmarshalJSON(data []byte) error {
	var raw messageJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.Role = raw.Role
	m.Text, m.Blocks = "", nil
	content := bytes.TrimSpace(raw.Content)
	switch {
	case len(content) == 0 || bytes.Equal(content, []byte("null")):
		return nil
	case content[0] == '[':
		return json.Unmarshal(content, &m.Blocks)
	default:
		return json.Unmarshal(content, &m.Text)
	}
}

// ToolDefinition describes a tool the model may call.
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"input_schema"`
}

// ToolUse is a tool invocation requested by the model.
type ToolUse struct {
	Type  string         `json:"type"`
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Input map[string]any `json:"input"`
}

// ChatRequest is the provider-neutral completion request.
type ChatRequest struct {
	System    string
	Messages  []Message
	Tools     []ToolDefinition
	MaxTokens int
	// JSONObject asks providers that support it to emit a single JSON object.
	JSONObject bool
}

// Completion is the result of a plain completion.
type Completion struct {
	Text     string `json:"text"`
	Provider string `json:"provider"`
}

// ToolCompletion is the result of a tool-enabled completion.
type ToolCompletion struct {
	Text       string    `json:"text"`
	ToolUses   []ToolUse `json:"toolUses"`
	StopReason string    `json:"stopReason"`
	Provider   string    `json:"provider"`
}

// Assistant tools the client applies to its session state.
const (
	ToolUpdateConcept          = "update_concept"
	ToolUpdateCampaignSettings = "update_campaign_settings"
	ToolUpdateTargeting        = "update_targeting"
	ToolSelectConcepts         = "select_concepts"
)
