package llm

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"andromeda-ads/internal/adapter/vendor"
	"andromeda-ads/internal/config/configs"
	"andromeda-ads/internal/core/domain"
)

// OpenAI is the Chat Completions and Images client.
type OpenAI struct {
	client *vendor.Client
	cfg    configs.AI
	apiKey string
}

// NewOpenAI binds the shared transport to an API key.
func NewOpenAI(client *vendor.Client, cfg configs.AI, apiKey string) *OpenAI {
	return &OpenAI{client: client, cfg: cfg, apiKey: apiKey}
}

func (o *OpenAI) Name() string { return domain.ProviderOpenAI }

func (o *OpenAI) Complete(ctx context.Context, req domain.ChatRequest) (domain.Completion, error) {
	req.Tools = nil
	resp, err := o.send(ctx, "complete", openAIFromInternal(req, o.cfg.OpenAIModel, DefaultMaxTokens))
	if err != nil {
		return domain.Completion{}, err
	}
	out, err := openAIToInternal(resp)
	if err != nil {
		return domain.Completion{}, err
	}
	return domain.Completion{Text: strings.TrimSpace(out.Text), Provider: domain.ProviderOpenAI}, nil
}

func (o *OpenAI) CompleteWithTools(ctx context.Context, req domain.ChatRequest) (domain.ToolCompletion, error) {
	resp, err := o.send(ctx, "complete_tools", openAIFromInternal(req, o.cfg.OpenAIModel, DefaultToolMaxTokens))
	if err != nil {
		return domain.ToolCompletion{}, err
	}
	return openAIToInternal(resp)
}

func (o *OpenAI) send(ctx context.Context, op string, body openAIRequest) (openAIResponse, error) {
	var resp openAIResponse
	_, err := o.client.Do(ctx, vendor.Request{
		Operation: op,
		Method:    http.MethodPost,
		URL:       o.url("/chat/completions"),
		Header:    o.auth(),
		Body:      body,
	}, &resp)
	return resp, err
}

func (o *OpenAI) url(path string) string {
	return strings.TrimRight(o.cfg.OpenAIURL, "/") + path
}

func (o *OpenAI) auth() http.Header {
	return http.Header{"Authorization": {"Bearer " + o.apiKey}}
}

// Generate creates an image from prompt and returns it base64 encoded.
func (o *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	var resp openAIImageResponse
	_, err := o.client.Do(ctx, vendor.Request{
		Operation: "image_generate",
		Method:    http.MethodPost,
		URL:       o.url("/images/generations"),
		Header:    o.auth(),
		Body: map[string]any{
			"model":   o.cfg.ImageModel,
			"prompt":  prompt,
			"n":       1,
			"size":    o.cfg.ImageSize,
			"quality": "medium",
		},
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.first()
}

// Edit transforms an uploaded photo according to prompt.
func (o *OpenAI) Edit(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fields := [][2]string{
		{"model", o.cfg.ImageModel},
		{"prompt", prompt},
		{"n", "1"},
		{"size", o.cfg.ImageSize},
		{"quality", "medium"},
	}
	for _, f := range fields {
		if err := mw.WriteField(f[0], f[1]); err != nil {
			return "", fmt.Errorf("openai: build form: %w", err)
		}
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image"; filename="product.jpg"`)
	h.Set("Content-Type", mimeType)
	part, err := mw.CreatePart(h)
	if err != nil {
		return "", fmt.Errorf("openai: build form: %w", err)
	}
	if _, err = part.Write(image); err != nil {
		return "", fmt.Errorf("openai: build form: %w", err)
	}
	if err = mw.Close(); err != nil {
		return "", fmt.Errorf("openai: build form: %w", err)
	}

	var resp openAIImageResponse
	_, err = o.client.Do(ctx, vendor.Request{
		Operation:   "image_edit",
		Method:      http.MethodPost,
		URL:         o.url("/images/edits"),
		Header:      o.auth(),
		RawBody:     &buf,
		ContentType: mw.FormDataContentType(),
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.first()
}

type openAIImageResponse struct {
	Data []struct {
		B64JSON string `json:"b64_json"`
	} `json:"data"`
}

func (r openAIImageResponse) first() (string, error) {
	if len(r.Data) == 0 || r.Data[0].B64JSON == "" {
		return "", &domain.UpstreamError{Vendor: "OpenAI", Message: "no image returned"}
	}
	if _, err := base64.StdEncoding.DecodeString(r.Data[0].B64JSON); err != nil {
		return "", fmt.Errorf("openai: image is not base64: %w", err)
	}
	return r.Data[0].B64JSON, nil
}

type openAIRequest struct {
	Model          string                `json:"model"`
	MaxTokens      int                   `json:"max_tokens"`
	Messages       []openAIMessage       `json:"messages"`
	Tools          []openAITool          `json:"tools,omitempty"`
	ToolChoice     string                `json:"tool_choice,omitempty"`
	ResponseFormat *openAIResponseFormat `json:"response_format,omitempty"`
}

type openAIResponseFormat struct {
	Type string `json:"type"`
}

type openAIMessage struct {
	Role       string           `json:"role"`
	Content    *string          `json:"content,omitempty"`
	ToolCalls  []openAIToolCall `json:"tool_calls,omitempty"`
	ToolCallID string           `json:"tool_call_id,omitempty"`
}

type openAIToolCall struct {
	ID       string         `json:"id"`
	Type     string         `json:"type"`
	Function openAIFunction `json:"function"`
}

type openAIFunction struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

type openAITool struct {
	Type     string            `json:"type"`
	Function openAIFunctionDef `json:"function"`
}

type openAIFunctionDef struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

type openAIResponse struct {
	Choices []struct {
		Message      openAIMessage `json:"message"`
		FinishReason string        `json:"finish_reason"`
	} `json:"choices"`
}

func strPtr(s string) *string { return &s }

// openAIFromInternal maps an internal request to Chat Completions. The
// system instruction becomes the leading message and every block expands
// to its own message: text keeps the role, tool_use becomes an assistant
// function call and tool_result a tool message.
func openAIFromInternal(req domain.ChatRequest, model string, defaultMax int) openAIRequest {
	out := openAIRequest{
		Model:     model,
		MaxTokens: maxTokens(req.MaxTokens, defaultMax),
		Messages:  []openAIMessage{{Role: "system", Content: strPtr(req.System)}},
	}
	if req.JSONObject {
		out.ResponseFormat = &openAIResponseFormat{Type: "json_object"}
	}
	for _, t := range req.Tools {
		out.Tools = append(out.Tools, openAITool{
			Type: "function",
			Function: openAIFunctionDef{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.InputSchema,
			},
		})
	}
	if len(out.Tools) > 0 {
		out.ToolChoice = "auto"
	}
	for _, m := range req.Messages {
		if m.Blocks == nil {
			out.Messages = append(out.Messages, openAIMessage{Role: m.Role, Content: strPtr(m.Text)})
			continue
		}
		for _, b := range m.Blocks {
			switch b.Type {
			case domain.BlockText:
				out.Messages = append(out.Messages, openAIMessage{Role: m.Role, Content: strPtr(b.Text)})
			case domain.BlockToolUse:
				out.Messages = append(out.Messages, openAIMessage{
					Role: domain.RoleAssistant,
					ToolCalls: []openAIToolCall{{
						ID:       b.ID,
						Type:     "function",
						Function: openAIFunction{Name: b.Name, Arguments: string(encodeArgs(b.Input))},
					}},
				})
			case domain.BlockToolResult:
				out.Messages = append(out.Messages, openAIMessage{
					Role:       "tool",
					ToolCallID: b.ToolUseID,
					Content:    strPtr(b.ResultText()),
				})
			}
		}
	}
	return out
}

// openAIToInternal reads the first choice. Function calls become tool uses
// with decoded arguments; only finish_reason tool_calls reads as tool_use.
func openAIToInternal(resp openAIResponse) (domain.ToolCompletion, error) {
	if len(resp.Choices) == 0 {
		return domain.ToolCompletion{}, &domain.UpstreamError{Vendor: "OpenAI", Message: "no choices returned"}
	}
	choice := resp.Choices[0]
	out := domain.ToolCompletion{
		ToolUses:   []domain.ToolUse{},
		StopReason: domain.StopEndTurn,
		Provider:   domain.ProviderOpenAI,
	}
	if choice.Message.Content != nil {
		out.Text = *choice.Message.Content
	}
	for _, tc := range choice.Message.ToolCalls {
		input, err := decodeArgs(tc.Function.Arguments)
		if err != nil {
			return domain.ToolCompletion{}, fmt.Errorf("openai: tool call %s: %w", tc.ID, err)
		}
		out.ToolUses = append(out.ToolUses, domain.ToolUse{
			Type:  domain.BlockToolUse,
			ID:    tc.ID,
			Name:  tc.Function.Name,
			Input: input,
		})
	}
	if choice.FinishReason == "tool_calls" {
		out.StopReason = domain.StopToolUse
	}
	return out, nil
}
