package llm

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"andromeda-ads/internal/core/domain"
)

func conversation() domain.ChatRequest {
	return domain.ChatRequest{
		System: "you are the assistant",
		Tools: []domain.ToolDefinition{{
			Name:        "select_concepts",
			Description: "select concepts",
			InputSchema: map[string]any{"type": "object"},
		}},
		Messages: []domain.Message{
			domain.TextMessage(domain.RoleUser, "select the first two"),
			{Role: domain.RoleAssistant, Blocks: []domain.ContentBlock{
				{Type: domain.BlockText, Text: "on it"},
				{Type: domain.BlockToolUse, ID: "call_1", Name: "select_concepts", Input: map[string]any{
					"indices": []any{0.0, 1.0},
					"action":  "select",
				}},
			}},
			{Role: domain.RoleUser, Blocks: []domain.ContentBlock{
				{Type: domain.BlockToolResult, ToolUseID: "call_1", Content: map[string]any{"selected": 2.0}},
			}},
		},
	}
}

func TestOpenAIFromInternal(t *testing.T) {
	out := openAIFromInternal(conversation(), "gpt-4o", DefaultToolMaxTokens)

	assert.Equal(t, DefaultToolMaxTokens, out.MaxTokens)
	assert.Equal(t, "auto", out.ToolChoice)
	require.Len(t, out.Tools, 1)
	assert.Equal(t, "function", out.Tools[0].Type)
	assert.Equal(t, "select_concepts", out.Tools[0].Function.Name)
	assert.Equal(t, map[string]any{"type": "object"}, out.Tools[0].Function.Parameters)

	require.Len(t, out.Messages, 5)
	assert.Equal(t, "system", out.Messages[0].Role)
	assert.Equal(t, "you are the assistant", *out.Messages[0].Content)
	assert.Equal(t, "select the first two", *out.Messages[1].Content)
	assert.Equal(t, "on it", *out.Messages[2].Content)
	assert.Equal(t, domain.RoleAssistant, out.Messages[2].Role)

	call := out.Messages[3]
	assert.Equal(t, domain.RoleAssistant, call.Role)
	assert.Nil(t, call.Content)
	require.Len(t, call.ToolCalls, 1)
	assert.Equal(t, "call_1", call.ToolCalls[0].ID)
	assert.JSONEq(t, `{"indices":[0,1],"action":"select"}`, call.ToolCalls[0].Function.Arguments)

	result := out.Messages[4]
	assert.Equal(t, "tool", result.Role)
	assert.Equal(t, "call_1", result.ToolCallID)
	assert.Equal(t, `{"selected":2}`, *result.Content)
}

func TestOpenAIToolRoundTrip(t *testing.T) {
	req := conversation()
	want := req.Messages[1].Blocks[1].Input

	out := openAIFromInternal(req, "gpt-4o", DefaultToolMaxTokens)
	var resp openAIResponse
	resp.Choices = append(resp.Choices, struct {
		Message      openAIMessage `json:"message"`
		FinishReason string        `json:"finish_reason"`
	}{Message: out.Messages[3], FinishReason: "tool_calls"})

	got, err := openAIToInternal(resp)
	require.NoError(t, err)
	require.Len(t, got.ToolUses, 1)
	if diff := cmp.Diff(want, got.ToolUses[0].Input); diff != "" {
		t.Fatalf("tool input mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, domain.StopToolUse, got.StopReason)
	assert.Equal(t, domain.ProviderOpenAI, got.Provider)
}

func TestOpenAIToInternal(t *testing.T) {
	raw := `{"choices":[{"message":{"role":"assistant","content":null,"tool_calls":[
		{"id":"a","type":"function","function":{"name":"update_targeting","arguments":""}}
	]},"finish_reason":"stop"}]}`
	var resp openAIResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))

	got, err := openAIToInternal(resp)
	require.NoError(t, err)
	assert.Equal(t, "", got.Text)
	assert.Equal(t, map[string]any{}, got.ToolUses[0].Input)
	assert.Equal(t, domain.StopEndTurn, got.StopReason)

	resp.Choices[0].Message.ToolCalls[0].Function.Arguments = "{not json"
	_, err = openAIToInternal(resp)
	assert.Error(t, err)

	_, err = openAIToInternal(openAIResponse{})
	assert.Error(t, err)
}

func TestAnthropicMapping(t *testing.T) {
	out := anthropicFromInternal(conversation(), "claude-sonnet-4-6", DefaultToolMaxTokens)
	assert.Equal(t, "you are the assistant", out.System)
	require.Len(t, out.Messages, 3)
	assert.Equal(t, "select the first two", out.Messages[0].Content)

	blocks, ok := out.Messages[1].Content.([]anthropicBlock)
	require.True(t, ok)
	assert.JSONEq(t, `{"indices":[0,1],"action":"select"}`, string(blocks[1].Input))

	results := out.Messages[2].Content.([]anthropicBlock)
	assert.Equal(t, `{"selected":2}`, results[0].Content)

	resp := anthropicResponse{
		StopReason: "tool_use",
		Content: []anthropicBlock{
			{Type: "text", Text: "Done, "},
			{Type: "tool_use", ID: "tu_1", Name: "select_concepts", Input: json.RawMessage(`{"indices":[0],"action":"select"}`)},
			{Type: "text", Text: "selected."},
		},
	}
	got := anthropicToInternal(resp)
	assert.Equal(t, "Done, selected.", got.Text)
	assert.Equal(t, domain.StopToolUse, got.StopReason)
	want := []domain.ToolUse{{Type: "tool_use", ID: "tu_1", Name: "select_concepts", Input: map[string]any{
		"indices": []any{0.0}, "action": "select",
	}}}
	if diff := cmp.Diff(want, got.ToolUses); diff != "" {
		t.Fatalf("tool uses mismatch (-want +got):\n%s", diff)
	}

	resp.StopReason = "max_tokens"
	assert.Equal(t, domain.StopEndTurn, anthropicToInternal(resp).StopReason)
}

func TestJSONObjectMode(t *testing.T) {
	req := domain.ChatRequest{JSONObject: true, Messages: []domain.Message{domain.TextMessage("user", "hi")}}
	out := openAIFromInternal(req, "gpt-4o", 0)
	require.NotNil(t, out.ResponseFormat)
	assert.Equal(t, "json_object", out.ResponseFormat.Type)
	assert.Empty(t, out.Tools)
	assert.Empty(t, out.ToolChoice)
}
