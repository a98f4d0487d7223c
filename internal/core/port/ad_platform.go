package port

import (
	"context"

	"andromeda-ads/internal/core/domain"
)

// AdPlatform is an outbound port to one ad platform, bound to a set of
// credentials. Implementations map platform errors that identify an invalid
// token to domain.ErrAuthExpired.
type AdPlatform interface {
	// Platform identifies the implementation.
	Platform() domain.Platform

	// Validate checks the credentials and returns account details.
	Validate(ctx context.Context) (domain.AccountInfo, error)

	// CreateCampaign creates a campaign with one ad set and ad per concept.
	CreateCampaign(ctx context.Context, spec domain.CampaignSpec) (domain.LaunchResult, error)

	// Stats returns the trailing 7-day stats of a campaign in the common
	// shape.
	Stats(ctx context.Context, campaignID string) (domain.Stats, error)

	// ListAds lists the ads of a campaign.
	ListAds(ctx context.Context, campaignID string) ([]domain.Ad, error)

	// AdInsights returns the trailing-window metrics of one ad.
	AdInsights(ctx context.Context, ad domain.Ad, days int) (domain.AdMetrics, error)

	// SetAdStatus pauses or activates an ad.
	SetAdStatus(ctx context.Context, ad domain.Ad, status domain.AdStatus) error

	// AdBudget reads the daily budget of the entity that funds the ad.
	AdBudget(ctx context.Context, ad domain.Ad) (domain.Budget, error)

	// SetBudget writes budget.Amount to budget.AdSetID.
	SetBudget(ctx context.Context, budget domain.Budget) error

	// UploadCreative adds an image ad to an existing ad set. Platforms
	// without support return domain.ErrUnsupported.
	UploadCreative(ctx context.Context, upload domain.CreativeUpload) (domain.CreativeResult, error)
}

// PlatformFactory binds a platform implementation to credentials. Missing
// credentials yield a domain.ValidationError.
type PlatformFactory interface {
	Platform(p domain.Platform, creds domain.Credentials) (AdPlatform, error)
}

// Storefront reads a store catalog.
type Storefront interface {
	ListProducts(ctx context.Context, pageInfo string) (domain.ProductPage, error)
	Product(ctx context.Context, id string) (domain.Product, error)
	Snapshot(ctx context.Context) (domain.StoreSnapshot, error)
}

// StorefrontFactory binds a Storefront to credentials.
type StorefrontFactory interface {
	Storefront(creds domain.ShopifyCredentials) (Storefront, error)
}
