package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Default output budgets.
const (
	DefaultMaxTokens     = 1000
	DefaultToolMaxTokens = 1024
)

func maxTokens(requested, fallback int) int {
	if requested > 0 {
		return requested
	}
	return fallback
}

// encodeArgs encodes tool arguments, using {} for nil input.
func encodeArgs(in map[string]any) json.RawMessage {
	if in == nil {
		return json.RawMessage(`{}`)
	}
	raw, err := json.Marshal(in)
	if err != nil {
		return json.RawMessage(`{}`)
	}
	return raw
}

// decodeArgs parses a JSON arguments document. Blank input is {}.
func decodeArgs(raw string) (map[string]any, error) {
	if strings.TrimSpace(raw) == "" {
		return map[string]any{}, nil
	}
	var out map[string]any
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("decode tool arguments: %w", err)
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}

func decodeArgsLenient(raw json.RawMessage) map[string]any {
	out, err := decodeArgs(string(raw))
	if err != nil {
		return map[string]any{}
	}
	return out
}
