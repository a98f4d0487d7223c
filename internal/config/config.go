package config

import (
	"github.com/caarlos0/env/v11"

	"andromeda-ads/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// AI configures the LLM and image providers.
	AI configs.AI `envPrefix:"AI_"`

	Meta    configs.Meta    `envPrefix:"META_"`
	Google  configs.Google  `envPrefix:"GOOGLE_"`
	TikTok  configs.TikTok  `envPrefix:"TIKTOK_"`
	Shopify configs.Shopify `envPrefix:"SHOPIFY_"`

	// Optimizer tunes the rule evaluator.
	Optimizer configs.Optimizer `envPrefix:"OPTIMIZER_"`

	// State and Client are only read by the CLI client commands.
	State  configs.State  `envPrefix:"STATE_"`
	Client configs.Client `envPrefix:"CLIENT_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
