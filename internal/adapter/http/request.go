package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"andromeda-ads/internal/core/domain"
)

// Credential headers. The CLI client sends the same names.
const (
	HeaderAnthropicKey     = "X-Anthropic-Key"
	HeaderOpenAIKey        = "X-Openai-Key"
	HeaderMetaToken        = "X-Meta-Token"
	HeaderMetaAccount      = "X-Meta-Account"
	HeaderMetaPage         = "X-Meta-Page"
	HeaderGoogleToken      = "X-Google-Token"
	HeaderGoogleCustomer   = "X-Google-Customer"
	HeaderGoogleDevToken   = "X-Google-Dev-Token"
	HeaderTikTokToken      = "X-Tiktok-Token"
	HeaderTikTokAdvertiser = "X-Tiktok-Advertiser"
	HeaderShopifyShop      = "X-Shopify-Shop"
	HeaderShopifyToken     = "X-Shopify-Token"
)

const maxBodyBytes = 20 << 20

// credentials reads the per-request credential bundle from the headers.
func credentials(r *http.Request) domain.Credentials {
	get := func(name string) string { return strings.TrimSpace(r.Header.Get(name)) }
	return domain.Credentials{
		AnthropicKey: get(HeaderAnthropicKey),
		OpenAIKey:    get(HeaderOpenAIKey),
		Meta: domain.MetaCredentials{
			Token:     get(HeaderMetaToken),
			AccountID: get(HeaderMetaAccount),
			PageID:    get(HeaderMetaPage),
		},
		Google: domain.GoogleCredentials{
			AccessToken:    get(HeaderGoogleToken),
			CustomerID:     get(HeaderGoogleCustomer),
			DeveloperToken: get(HeaderGoogleDevToken),
		},
		TikTok: domain.TikTokCredentials{
			AccessToken:  get(HeaderTikTokToken),
			AdvertiserID: get(HeaderTikTokAdvertiser),
		},
		Shopify: domain.ShopifyCredentials{
			Shop:  get(HeaderShopifyShop),
			Token: get(HeaderShopifyToken),
		},
	}
}

// SetCredentials writes creds as request headers, skipping empty values.
func SetCredentials(h http.Header, creds domain.Credentials) {
	for name, v := range map[string]string{
		HeaderAnthropicKey:     creds.AnthropicKey,
		HeaderOpenAIKey:        creds.OpenAIKey,
		HeaderMetaToken:        creds.Meta.Token,
		HeaderMetaAccount:      creds.Meta.AccountID,
		HeaderMetaPage:         creds.Meta.PageID,
		HeaderGoogleToken:      creds.Google.AccessToken,
		HeaderGoogleCustomer:   creds.Google.CustomerID,
		HeaderGoogleDevToken:   creds.Google.DeveloperToken,
		HeaderTikTokToken:      creds.TikTok.AccessToken,
		HeaderTikTokAdvertiser: creds.TikTok.AdvertiserID,
		HeaderShopifyShop:      creds.Shopify.Shop,
		HeaderShopifyToken:     creds.Shopify.Token,
	} {
		if v != "" {
			h.Set(name, v)
		}
	}
}

func platformParam(r *http.Request) domain.Platform {
	return domain.ParsePlatform(chi.URLParam(r, "platform"))
}

// decode reads a JSON body into v. An empty body leaves v untouched.
func decode(r *http.Request, v any) error {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return domain.NewValidationError("invalid JSON body")
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error        string `json:"error"`
	TokenExpired bool   `json:"tokenExpired,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// StatusOf maps a use case error to its HTTP status.
func StatusOf(err error) int {
	var (
		ve *domain.ValidationError
		ce *domain.ConfigurationError
	)
	switch {
	case domain.IsAuthExpired(err):
		return http.StatusUnauthorized
	case errors.As(err, &ve), errors.As(err, &ce), errors.Is(err, domain.ErrUnsupported):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError is the single error boundary of a handler.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := StatusOf(err)
	log := h.logger.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.Int("status", status),
		slog.Any("error", err),
	)
	if status >= http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed")
	} else {
		log.InfoContext(r.Context(), "request rejected")
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error(), TokenExpired: status == http.StatusUnauthorized})
}
