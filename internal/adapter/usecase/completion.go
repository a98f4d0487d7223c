package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"andromeda-ads/internal/core/domain"
	"andromeda-ads/internal/core/port"
)

var errNoJSONObject = errors.New("no JSON object in response")

// extractJSON returns the first JSON object in text. Markdown fences and
// surrounding prose are ignored.
func extractJSON(text string) (json.RawMessage, error) {
	data := []byte(text)
	for {
		start := bytes.IndexByte(data, '{')
		if start < 0 {
			return nil, errNoJSONObject
		}
		var obj json.RawMessage
		if err := json.NewDecoder(bytes.NewReader(data[start:])).Decode(&obj); err == nil {
			return obj, nil
		}
		data = data[start+1:]
	}
}

// completeJSON runs a single-prompt completion and decodes the object it
// returns into out.
func completeJSON(ctx context.Context, provider port.LLMProvider, prompt string, maxTokens int, out any) error {
	resp, err := provider.Complete(ctx, domain.ChatRequest{
		Messages:   []domain.Message{domain.TextMessage(domain.RoleUser, prompt)},
		MaxTokens:  maxTokens,
		JSONObject: true,
	})
	if err != nil {
		return err
	}
	raw, err := extractJSON(resp.Text)
	if err != nil {
		return fmt.Errorf("%s: %w", provider.Name(), err)
	}
	if err = json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", provider.Name(), err)
	}
	return nil
}
