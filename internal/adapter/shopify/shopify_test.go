package shopify

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"andromeda-ads/internal/config/configs"
	"andromeda-ads/internal/core/domain"
)

func newTestStore(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	cfg := configs.Shopify{APIVersion: "2024-01", Timeout: time.Second, Scheme: "http"}
	f := NewFactory(cfg, nil, nil)
	s, err := f.Storefront(domain.ShopifyCredentials{Shop: strings.TrimPrefix(srv.URL, "http://"), Token: "shpat"})
	require.NoError(t, err)
	return s.(*Client)
}

func TestFactoryRequiresCredentials(t *testing.T) {
	f := NewFactory(configs.Shopify{}, nil, nil)
	_, err := f.Storefront(domain.ShopifyCredentials{Shop: "demo.myshopify.com"})
	var ve *domain.ValidationError
	assert.True(t, errors.As(err, &ve))
}

func TestListProductsPagination(t *testing.T) {
	c := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/api/2024-01/products.json", r.URL.Path)
		assert.Equal(t, "shpat", r.Header.Get("X-Shopify-Access-Token"))
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		if r.URL.Query().Get("page_info") == "" {
			w.Header().Set("Link", `<https://demo.myshopify.com/admin/api/2024-01/products.json?limit=50&page_info=abc123>; rel="next"`)
		} else {
			assert.Equal(t, "abc123", r.URL.Query().Get("page_info"))
			w.Header().Set("Link", `<https://demo.myshopify.com/admin/api/2024-01/products.json?limit=50&page_info=xyz>; rel="previous"`)
		}
		_, _ = io.WriteString(w, `{"products":[{"id":7,"title":"Linen dress","body_html":"<p>Soft &amp; light</p>",
			"variants":[{"price":"49.00"}],"images":[{"src":"https://cdn/1.jpg"}],"product_type":"Dress"}]}`)
	})

	page, err := c.ListProducts(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, page.Products, 1)
	assert.Equal(t, "abc123", page.NextPageInfo)
	p := page.Products[0]
	assert.Equal(t, "Soft & light", p.Description)
	assert.Equal(t, "49.00", p.Price)
	assert.Equal(t, "https://cdn/1.jpg", p.Image)

	page, err = c.ListProducts(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Empty(t, page.NextPageInfo)
}

func TestProductDetail(t *testing.T) {
	c := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/api/2024-01/products/42.json", r.URL.Path)
		_, _ = io.WriteString(w, `{"product":{"id":42,"title":"Tote","body_html":"<div><b>Canvas</b> tote</div>",
			"variants":[{"id":1,"title":"Red","price":"20.00","sku":"T-R"},{"id":2,"title":"Blue","price":"22.00"}],
			"images":[{"src":"a.jpg"},{"src":"b.jpg"}]}}`)
	})
	p, err := c.Product(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "Canvas tote", p.Description)
	assert.Equal(t, "20.00", p.Price)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, p.Images)
	assert.Len(t, p.Variants, 2)
	assert.Equal(t, "T-R", p.Variants[0].SKU)
}

func TestProductRejectsBadID(t *testing.T) {
	c := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})
	_, err := c.Product(context.Background(), "../shop")
	var ve *domain.ValidationError
	assert.True(t, errors.As(err, &ve))
}

func TestSnapshot(t *testing.T) {
	var calls atomic.Int32
	c := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		switch r.URL.Path {
		case "/admin/api/2024-01/shop.json":
			_, _ = io.WriteString(w, `{"shop":{"name":"Demo","email":"a@b.c","domain":"demo.com","currency":"EUR"}}`)
		case "/admin/api/2024-01/products.json":
			assert.Equal(t, "15", r.URL.Query().Get("limit"))
			_, _ = io.WriteString(w, `{"products":[{"title":"Tote"}]}`)
		case "/admin/api/2024-01/custom_collections.json":
			_, _ = io.WriteString(w, `{"custom_collections":[{"title":"Summer","body_html":"<p>Hot</p>"}]}`)
		}
	})
	snap, err := c.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, "Demo", snap.Name)
	assert.Len(t, snap.Products, 1)
	assert.Equal(t, domain.Collection{Title: "Summer", Description: "Hot"}, snap.Collections[0])
}

func TestSnapshotShopError(t *testing.T) {
	c := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "shop.json") {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"errors":"[API] Invalid API key or access token"}`)
			return
		}
		_, _ = io.WriteString(w, `{}`)
	})
	_, err := c.Snapshot(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid API key")
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, "", plainText(""))
	assert.Equal(t, "Hello world", plainText("<h1>Hello</h1> <script>x()</script>world"))
}
