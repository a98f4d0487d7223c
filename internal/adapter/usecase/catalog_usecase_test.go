package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"andromeda-ads/internal/core/domain"
	"andromeda-ads/internal/core/port/mocks"
)

var shopCreds = domain.Credentials{
	AnthropicKey: "sk-ant",
	Shopify:      domain.ShopifyCredentials{Shop: "demo.myshopify.com", Token: "shpat"},
}

func TestAnalyzeStore(t *testing.T) {
	store := mocks.NewMockStorefront(t)
	store.EXPECT().Snapshot(mock.Anything).Return(domain.StoreSnapshot{
		Name:        "Demo",
		Products:    []domain.Product{{Title: "Dress"}, {Title: "Shirt"}},
		Collections: []domain.Collection{{Title: "Summer"}},
	}, nil)
	stores := mocks.NewMockStorefrontFactory(t)
	stores.EXPECT().Storefront(shopCreds.Shopify).Return(store, nil)

	provider := mocks.NewMockLLMProvider(t)
	provider.EXPECT().Complete(mock.Anything, mock.Anything).
		Return(domain.Completion{Text: `{"product":"Summer fashion","audience":"women","painPoint":"p","topProducts":["Dress"]}`}, nil)
	ai := mocks.NewMockAIFactory(t)
	ai.EXPECT().Provider(shopCreds).Return(provider, nil)

	got, err := NewCatalogUseCase(stores, ai, discardLogger()).AnalyzeStore(context.Background(), shopCreds)
	require.NoError(t, err)
	assert.Equal(t, "Demo", got.BrandProfile.StoreName)
	assert.Equal(t, "Summer fashion", got.BrandProfile.Product)
	assert.Equal(t, 2, got.ProductCount)
	assert.Equal(t, 1, got.CollectionCount)
}

func TestAnalyzeStoreMissingKeySkipsStore(t *testing.T) {
	store := mocks.NewMockStorefront(t)
	stores := mocks.NewMockStorefrontFactory(t)
	stores.EXPECT().Storefront(mock.Anything).Return(store, nil)
	ai := mocks.NewMockAIFactory(t)
	ai.EXPECT().Provider(mock.Anything).Return(nil, &domain.ConfigurationError{Setting: "x-anthropic-key"})

	_, err := NewCatalogUseCase(stores, ai, discardLogger()).AnalyzeStore(context.Background(), shopCreds)
	var ce *domain.ConfigurationError
	assert.True(t, errors.As(err, &ce))
}

func TestCatalogProducts(t *testing.T) {
	store := mocks.NewMockStorefront(t)
	store.EXPECT().ListProducts(mock.Anything, "cursor").Return(domain.ProductPage{NextPageInfo: "next"}, nil)
	store.EXPECT().Product(mock.Anything, "42").Return(domain.Product{ID: 42}, nil)
	stores := mocks.NewMockStorefrontFactory(t)
	stores.EXPECT().Storefront(shopCreds.Shopify).Return(store, nil)
	u := NewCatalogUseCase(stores, mocks.NewMockAIFactory(t), discardLogger())

	page, err := u.ListProducts(context.Background(), shopCreds.Shopify, "cursor")
	require.NoError(t, err)
	assert.Equal(t, "next", page.NextPageInfo)

	p, err := u.Product(context.Background(), shopCreds.Shopify, "42")
	require.NoError(t, err)
	assert.EqualValues(t, 42, p.ID)

	_, err = u.Product(context.Background(), shopCreds.Shopify, "")
	var ve *domain.ValidationError
	assert.True(t, errors.As(err, &ve))
}
