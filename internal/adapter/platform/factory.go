// Package platform selects the ad platform adapter for a request.
package platform

import (
	"log/slog"

	"andromeda-ads/internal/adapter/platform/google"
	"andromeda-ads/internal/adapter/platform/meta"
	"andromeda-ads/internal/adapter/platform/tiktok"
	"andromeda-ads/internal/adapter/vendor"
	"andromeda-ads/internal/config/configs"
	"andromeda-ads/internal/core/domain"
	"andromeda-ads/internal/core/port"
	"andromeda-ads/internal/metrics"
)

// Config groups the per-platform settings.
type Config struct {
	Meta   configs.Meta
	Google configs.Google
	TikTok configs.TikTok
	MaxAds int
}

// Factory holds one transport per platform and binds request credentials
// to them.
type Factory struct {
	cfg    Config
	meta   *vendor.Client
	google *vendor.Client
	tiktok *vendor.Client
	logger *slog.Logger
}

var _ port.PlatformFactory = (*Factory)(nil)

func NewFactory(cfg Config, m *metrics.Metrics, logger *slog.Logger) *Factory {
	return &Factory{
		cfg:    cfg,
		meta:   meta.NewTransport(cfg.Meta, m, logger),
		google: google.NewTransport(cfg.Google, m, logger),
		tiktok: tiktok.NewTransport(cfg.TikTok, m, logger),
		logger: logger,
	}
}

// Platform returns the adapter for p. Missing credentials are reported
// before any vendor call.
func (f *Factory) Platform(p domain.Platform, creds domain.Credentials) (port.AdPlatform, error) {
	switch p {
	case domain.PlatformGoogle:
		g := creds.Google
		if g.AccessToken == "" || g.CustomerID == "" || g.DeveloperToken == "" {
			return nil, domain.NewValidationError("missing Google Ads credentials (token, customerId, developerToken)")
		}
		return google.New(f.google, f.cfg.Google, g, f.cfg.MaxAds), nil
	case domain.PlatformTikTok:
		t := creds.TikTok
		if t.AccessToken == "" || t.AdvertiserID == "" {
			return nil, domain.NewValidationError("missing TikTok credentials (token, advertiserId)")
		}
		return tiktok.New(f.tiktok, f.cfg.TikTok, t, f.cfg.MaxAds, f.logger), nil
	default:
		m := creds.Meta
		if m.Token == "" || m.AccountID == "" {
			return nil, domain.NewValidationError("missing Meta credentials (token, adAccountId)")
		}
		return meta.New(f.meta, f.cfg.Meta, m, f.cfg.MaxAds, f.logger), nil
	}
}
