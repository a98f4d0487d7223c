package domain

import "strings"

// Credentials carries per-request vendor credentials. They arrive in
// request headers and are never persisted by the service.
type Credentials struct {
	AnthropicKey string
	OpenAIKey    string
	Meta         MetaCredentials
	Google       GoogleCredentials
	TikTok       TikTokCredentials
	Shopify      ShopifyCredentials
}

// MetaCredentials authenticate against the Meta Graph API.
type MetaCredentials struct {
	Token     string
	AccountID string
	PageID    string
}

// Account returns the ad account id with the act_ prefix Meta requires.
func (c MetaCredentials) Account() string {
	if c.AccountID == "" || strings.HasPrefix(c.AccountID, "act_") {
		return c.AccountID
	}
	return "act_" + c.AccountID
}

// GoogleCredentials authenticate against the Google Ads REST API.
type GoogleCredentials struct {
	AccessToken    string
	CustomerID     string
	DeveloperToken string
}

// Customer returns the customer id without dashes.
func (c GoogleCredentials) Customer() string {
	return strings.ReplaceAll(c.CustomerID, "-", "")
}

// TikTokCredentials authenticate against the TikTok Business API.
type TikTokCredentials struct {
	AccessToken  string
	AdvertiserID string
}

// ShopifyCredentials authenticate against a Shopify Admin API store.
type ShopifyCredentials struct {
	Shop  string
	Token string
}

// Validate checks that both shop and token are present.
func (c ShopifyCredentials) Validate() error {
	if c.Shop == "" || c.Token == "" {
		return NewValidationError("missing Shopify credentials (shop, token)")
	}
	return nil
}
