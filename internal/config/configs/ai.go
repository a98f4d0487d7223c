package configs

import "time"

// AI configures the chat and image providers. Keys are not configured here:
// they arrive with every request.
type AI struct {
	AnthropicURL     string `env:"ANTHROPIC_URL" envDefault:"https://api.anthropic.com/v1"`
	AnthropicModel   string `env:"ANTHROPIC_MODEL" envDefault:"claude-sonnet-4-6"`
	AnthropicVersion string `env:"ANTHROPIC_VERSION" envDefault:"2023-06-01"`

	OpenAIURL   string `env:"OPENAI_URL" envDefault:"https://api.openai.com/v1"`
	OpenAIModel string `env:"OPENAI_MODEL" envDefault:"gpt-4o"`
	ImageModel  string `env:"IMAGE_MODEL" envDefault:"gpt-image-1"`
	ImageSize   string `env:"IMAGE_SIZE" envDefault:"1024x1024"`

	// Timeout applies to each provider round trip.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"90s"`
}
