// Package llm adapts the Anthropic and OpenAI APIs to port.LLMProvider.
package llm

import (
	"log/slog"

	"andromeda-ads/internal/adapter/vendor"
	"andromeda-ads/internal/config/configs"
	"andromeda-ads/internal/core/domain"
	"andromeda-ads/internal/core/port"
	"andromeda-ads/internal/metrics"
)

// Credential headers named in configuration errors.
const (
	SettingAnthropicKey = "x-anthropic-key"
	SettingOpenAIKey    = "x-openai-key"
)

// Factory builds per-request providers over two long-lived transports.
type Factory struct {
	cfg       configs.AI
	anthropic *vendor.Client
	openai    *vendor.Client
}

var _ port.AIFactory = (*Factory)(nil)

// NewFactory creates the shared transports.
func NewFactory(cfg configs.AI, m *metrics.Metrics, logger *slog.Logger) *Factory {
	opts := []vendor.Option{vendor.WithMetrics(m), vendor.WithLogger(logger)}
	return &Factory{
		cfg:       cfg,
		anthropic: vendor.NewClient("Anthropic", cfg.Timeout, opts...),
		openai:    vendor.NewClient("OpenAI", cfg.Timeout, opts...),
	}
}

// Provider picks Anthropic when its key is present, else OpenAI. No key is
// a configuration error, raised before any network call.
func (f *Factory) Provider(creds domain.Credentials) (port.LLMProvider, error) {
	switch {
	case creds.AnthropicKey != "":
		return NewAnthropic(f.anthropic, f.cfg, creds.AnthropicKey), nil
	case creds.OpenAIKey != "":
		return NewOpenAI(f.openai, f.cfg, creds.OpenAIKey), nil
	default:
		return nil, &domain.ConfigurationError{
			Setting: SettingAnthropicKey + " or " + SettingOpenAIKey,
			Message: "configure an AI key (Anthropic or OpenAI) in settings",
		}
	}
}

// Images returns the OpenAI image client, the only supported image backend.
func (f *Factory) Images(creds domain.Credentials) (port.ImageGenerator, error) {
	if creds.OpenAIKey == "" {
		return nil, &domain.ConfigurationError{
			Setting: SettingOpenAIKey,
			Message: "image generation needs an OpenAI key",
		}
	}
	return NewOpenAI(f.openai, f.cfg, creds.OpenAIKey), nil
}
