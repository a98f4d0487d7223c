package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"andromeda-ads/internal/core/domain"
	"andromeda-ads/internal/core/port"
)

// CatalogUseCase reads the storefront and derives brand profiles from it.
type CatalogUseCase struct {
	stores port.StorefrontFactory
	ai     port.AIFactory
	logger *slog.Logger
}

var _ port.CatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(stores port.StorefrontFactory, ai port.AIFactory, logger *slog.Logger) *CatalogUseCase {
	return &CatalogUseCase{stores: stores, ai: ai, logger: logger}
}

func (u *CatalogUseCase) ListProducts(ctx context.Context, creds domain.ShopifyCredentials, pageInfo string) (domain.ProductPage, error) {
	store, err := u.stores.Storefront(creds)
	if err != nil {
		return domain.ProductPage{}, err
	}
	return store.ListProducts(ctx, pageInfo)
}

func (u *CatalogUseCase) Product(ctx context.Context, creds domain.ShopifyCredentials, id string) (domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Product{}, domain.NewValidationError("productId is required")
	}
	store, err := u.stores.Storefront(creds)
	if err != nil {
		return domain.Product{}, err
	}
	return store.Product(ctx, id)
}

// AnalyzeStore resolves the AI provider first so a missing key fails before
// the store is read.
func (u *CatalogUseCase) AnalyzeStore(ctx context.Context, creds domain.Credentials) (domain.StoreAnalysis, error) {
	store, err := u.stores.Storefront(creds.Shopify)
	if err != nil {
		return domain.StoreAnalysis{}, err
	}
	provider, err := u.ai.Provider(creds)
	if err != nil {
		return domain.StoreAnalysis{}, err
	}
	snap, err := store.Snapshot(ctx)
	if err != nil {
		return domain.StoreAnalysis{}, err
	}

	var profile domain.BrandProfile
	if err = completeJSON(ctx, provider, storePrompt(snap), brandMaxTokens, &profile); err != nil {
		return domain.StoreAnalysis{}, fmt.Errorf("analyze store: %w", err)
	}
	if profile.StoreName == "" {
		profile.StoreName = snap.Name
	}
	u.logger.DebugContext(ctx, "store analysed",
		slog.String("store", snap.Name),
		slog.Int("products", len(snap.Products)),
	)
	return domain.StoreAnalysis{
		BrandProfile:    profile,
		StoreName:       snap.Name,
		ProductCount:    len(snap.Products),
		CollectionCount: len(snap.Collections),
	}, nil
}
