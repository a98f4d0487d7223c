package configs

import "time"

// Meta configures the Graph API client.
type Meta struct {
	BaseURL string        `env:"BASE_URL" envDefault:"https://graph.facebook.com/v19.0"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

// Google configures the Google Ads REST client.
type Google struct {
	BaseURL string        `env:"BASE_URL" envDefault:"https://googleads.googleapis.com/v17"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

// TikTok configures the TikTok Business API client.
type TikTok struct {
	BaseURL string        `env:"BASE_URL" envDefault:"https://business-api.tiktok.com/open_api/v1.3"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

// Shopify configures the Admin API client. The shop domain comes with each
// request.
type Shopify struct {
	APIVersion string        `env:"API_VERSION" envDefault:"2024-01"`
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"30s"`
	// Scheme is overridden in tests to reach plain HTTP fakes.
	Scheme string `env:"SCHEME" envDefault:"https"`
}
