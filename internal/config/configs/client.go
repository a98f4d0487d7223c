package configs

import (
	"time"

	"andromeda-ads/internal/core/domain"
)

// Client holds what the CLI sends to the API: the server address and the
// vendor credentials it forwards as headers.
type Client struct {
	BaseURL string        `env:"BASE_URL" envDefault:"http://localhost:8080/api/v1"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"150s"`

	AnthropicKey string `env:"ANTHROPIC_KEY"`
	OpenAIKey    string `env:"OPENAI_KEY"`

	MetaToken   string `env:"META_TOKEN"`
	MetaAccount string `env:"META_ACCOUNT"`
	MetaPage    string `env:"META_PAGE"`

	GoogleToken    string `env:"GOOGLE_TOKEN"`
	GoogleCustomer string `env:"GOOGLE_CUSTOMER"`
	GoogleDevToken string `env:"GOOGLE_DEV_TOKEN"`

	TikTokToken      string `env:"TIKTOK_TOKEN"`
	TikTokAdvertiser string `env:"TIKTOK_ADVERTISER"`

	ShopifyShop  string `env:"SHOPIFY_SHOP"`
	ShopifyToken string `env:"SHOPIFY_TOKEN"`
}

// Credentials converts the configured values to a domain credential bundle.
func (c Client) Credentials() domain.Credentials {
	return domain.Credentials{
		AnthropicKey: c.AnthropicKey,
		OpenAIKey:    c.OpenAIKey,
		Meta:         domain.MetaCredentials{Token: c.MetaToken, AccountID: c.MetaAccount, PageID: c.MetaPage},
		Google: domain.GoogleCredentials{
			AccessToken:    c.GoogleToken,
			CustomerID:     c.GoogleCustomer,
			DeveloperToken: c.GoogleDevToken,
		},
		TikTok:  domain.TikTokCredentials{AccessToken: c.TikTokToken, AdvertiserID: c.TikTokAdvertiser},
		Shopify: domain.ShopifyCredentials{Shop: c.ShopifyShop, Token: c.ShopifyToken},
	}
}
