package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"andromeda-ads/internal/adapter/vendor"
	"andromeda-ads/internal/config/configs"
	"andromeda-ads/internal/core/domain"
)

// Anthropic is the Messages API client. Its wire format is the internal
// message format, so the mappers only rename and fill defaults.
type Anthropic struct {
	client *vendor.Client
	cfg    configs.AI
	apiKey string
}

// NewAnthropic binds the shared transport to an API key.
func NewAnthropic(client *vendor.Client, cfg configs.AI, apiKey string) *Anthropic {
	return &Anthropic{client: client, cfg: cfg, apiKey: apiKey}
}

func (a *Anthropic) Name() string { return domain.ProviderAnthropic }

func (a *Anthropic) Complete(ctx context.Context, req domain.ChatRequest) (domain.Completion, error) {
	req.Tools = nil
	resp, err := a.send(ctx, "complete", anthropicFromInternal(req, a.cfg.AnthropicModel, DefaultMaxTokens))
	if err != nil {
		return domain.Completion{}, err
	}
	out := anthropicToInternal(resp)
	return domain.Completion{Text: strings.TrimSpace(out.Text), Provider: domain.ProviderAnthropic}, nil
}

func (a *Anthropic) CompleteWithTools(ctx context.Context, req domain.ChatRequest) (domain.ToolCompletion, error) {
	resp, err := a.send(ctx, "complete_tools", anthropicFromInternal(req, a.cfg.AnthropicModel, DefaultToolMaxTokens))
	if err != nil {
		return domain.ToolCompletion{}, err
	}
	return anthropicToInternal(resp), nil
}

func (a *Anthropic) send(ctx context.Context, op string, body anthropicRequest) (anthropicResponse, error) {
	var resp anthropicResponse
	_, err := a.client.Do(ctx, vendor.Request{
		Operation: op,
		Method:    http.MethodPost,
		URL:       strings.TrimRight(a.cfg.AnthropicURL, "/") + "/messages",
		Header: http.Header{
			"x-api-key":         {a.apiKey},
			"anthropic-version": {a.cfg.AnthropicVersion},
		},
		Body: body,
	}, &resp)
	return resp, err
}

type anthropicRequest struct {
	Model     string                  `json:"model"`
	MaxTokens int                     `json:"max_tokens"`
	System    string                  `json:"system,omitempty"`
	Tools     []domain.ToolDefinition `json:"tools,omitempty"`
	Messages  []anthropicMessage      `json:"messages"`
}

type anthropicMessage struct {
	Role string `json:"role"`
	// Content is a string or []anthropicBlock.
	Content any `json:"content"`
}

type anthropicBlock struct {
	Type      string          `json:"type"`
	Text      string          `json:"text,omitempty"`
	ID        string          `json:"id,omitempty"`
	Name      string          `json:"name,omitempty"`
	Input     json.RawMessage `json:"input,omitempty"`
	ToolUseID string          `json:"tool_use_id,omitempty"`
	Content   string          `json:"content,omitempty"`
}

type anthropicResponse struct {
	Content    []anthropicBlock `json:"content"`
	StopReason string           `json:"stop_reason"`
}

// anthropicFromInternal builds the Messages API request. tool_use blocks
// always carry an input object and tool_result content is sent as a string.
func anthropicFromInternal(req domain.ChatRequest, model string, defaultMax int) anthropicRequest {
	out := anthropicRequest{
		Model:     model,
		MaxTokens: maxTokens(req.MaxTokens, defaultMax),
		System:    req.System,
		Tools:     req.Tools,
		Messages:  make([]anthropicMessage, 0, len(req.Messages)),
	}
	for _, m := range req.Messages {
		if m.Blocks == nil {
			out.Messages = append(out.Messages, anthropicMessage{Role: m.Role, Content: m.Text})
			continue
		}
		blocks := make([]anthropicBlock, 0, len(m.Blocks))
		for _, b := range m.Blocks {
			switch b.Type {
			case domain.BlockText:
				blocks = append(blocks, anthropicBlock{Type: b.Type, Text: b.Text})
			case domain.BlockToolUse:
				blocks = append(blocks, anthropicBlock{Type: b.Type, ID: b.ID, Name: b.Name, Input: encodeArgs(b.Input)})
			case domain.BlockToolResult:
				blocks = append(blocks, anthropicBlock{Type: b.Type, ToolUseID: b.ToolUseID, Content: b.ResultText()})
			}
		}
		out.Messages = append(out.Messages, anthropicMessage{Role: m.Role, Content: blocks})
	}
	return out
}

// anthropicToInternal concatenates text blocks in order and collects tool
// uses. Any stop reason other than tool_use reads as end_turn.
func anthropicToInternal(resp anthropicResponse) domain.ToolCompletion {
	var (
		text strings.Builder
		uses = []domain.ToolUse{}
	)
	for _, b := range resp.Content {
		switch b.Type {
		case domain.BlockText:
			text.WriteString(b.Text)
		case domain.BlockToolUse:
			uses = append(uses, domain.ToolUse{
				Type:  domain.BlockToolUse,
				ID:    b.ID,
				Name:  b.Name,
				Input: decodeArgsLenient(b.Input),
			})
		}
	}
	stop := domain.StopEndTurn
	if resp.StopReason == domain.StopToolUse {
		stop = domain.StopToolUse
	}
	return domain.ToolCompletion{
		Text:       text.String(),
		ToolUses:   uses,
		StopReason: stop,
		Provider:   domain.ProviderAnthropic,
	}
}
