// Package shopify implements port.Storefront over the Shopify Admin REST API.
package shopify

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/tomnomnom/linkheader"
	"golang.org/x/sync/errgroup"

	"andromeda-ads/internal/adapter/vendor"
	"andromeda-ads/internal/config/configs"
	"andromeda-ads/internal/core/domain"
	"andromeda-ads/internal/core/port"
	"andromeda-ads/internal/metrics"
)

// Vendor is the name used in errors and metrics.
const Vendor = "Shopify"

const (
	pageSize          = 50
	snapshotProducts  = 15
	snapshotCollects  = 10
	listDescriptionLn = 400
	listFields        = "id,title,body_html,variants,images,product_type,tags"
)

// Factory binds shop credentials to a shared transport.
type Factory struct {
	cfg       configs.Shopify
	transport *vendor.Client
}

var _ port.StorefrontFactory = (*Factory)(nil)

func NewFactory(cfg configs.Shopify, m *metrics.Metrics, logger *slog.Logger) *Factory {
	return &Factory{
		cfg: cfg,
		transport: vendor.NewClient(Vendor, cfg.Timeout,
			vendor.WithMetrics(m),
			vendor.WithLogger(logger),
		),
	}
}

// Storefront validates creds and returns a client for the shop.
func (f *Factory) Storefront(creds domain.ShopifyCredentials) (port.Storefront, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	return New(f.transport, f.cfg, creds), nil
}

// Client talks to one shop.
type Client struct {
	http  *vendor.Client
	base  string
	token string
}

var _ port.Storefront = (*Client)(nil)

func New(transport *vendor.Client, cfg configs.Shopify, creds domain.ShopifyCredentials) *Client {
	shop := strings.TrimSuffix(creds.Shop, "/")
	shop = strings.TrimPrefix(strings.TrimPrefix(shop, "https://"), "http://")
	scheme := cfg.Scheme
	if scheme == "" {
		scheme = "https"
	}
	return &Client{
		http:  transport,
		base:  fmt.Sprintf("%s://%s/admin/api/%s", scheme, shop, cfg.APIVersion),
		token: creds.Token,
	}
}

func (c *Client) get(ctx context.Context, op, path string, q url.Values, out any) (http.Header, error) {
	return c.http.Do(ctx, vendor.Request{
		Operation: op,
		Method:    http.MethodGet,
		URL:       c.base + "/" + path,
		Query:     q,
		Header:    http.Header{"X-Shopify-Access-Token": {c.token}},
	}, out)
}

type variant struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Price string `json:"price"`
	SKU   string `json:"sku"`
}

type product struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	BodyHTML    string    `json:"body_html"`
	Tags        string    `json:"tags"`
	ProductType string    `json:"product_type"`
	Variants    []variant `json:"variants"`
	Images      []struct {
		Src string `json:"src"`
	} `json:"images"`
}

func (p product) price() string {
	if len(p.Variants) > 0 && p.Variants[0].Price != "" {
		return p.Variants[0].Price
	}
	return "0"
}

func (p product) image() string {
	if len(p.Images) > 0 {
		return p.Images[0].Src
	}
	return ""
}

// summary is the listing shape; the description is cut and the currency is
// not reported by the products endpoint.
func (p product) summary() domain.Product {
	return domain.Product{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.price(),
		Currency:    "USD",
		Description: domain.Truncate(plainText(p.BodyHTML), listDescriptionLn),
		Image:       p.image(),
		Tags:        p.Tags,
		Type:        p.ProductType,
	}
}

func (p product) detail() domain.Product {
	out := domain.Product{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.price(),
		Description: plainText(p.BodyHTML),
		Image:       p.image(),
		Images:      make([]string, 0, len(p.Images)),
		Tags:        p.Tags,
		Type:        p.ProductType,
		Variants:    make([]domain.ProductVariant, 0, len(p.Variants)),
	}
	for _, img := range p.Images {
		out.Images = append(out.Images, img.Src)
	}
	for _, v := range p.Variants {
		out.Variants = append(out.Variants, domain.ProductVariant{ID: v.ID, Title: v.Title, Price: v.Price, SKU: v.SKU})
	}
	return out
}

// ListProducts returns one page of products. pageInfo is the cursor from a
// previous page, empty for the first one.
func (c *Client) ListProducts(ctx context.Context, pageInfo string) (domain.ProductPage, error) {
	q := url.Values{
		"limit":  {strconv.Itoa(pageSize)},
		"fields": {listFields},
	}
	if pageInfo != "" {
		q.Set("page_info", pageInfo)
	}
	var resp struct {
		Products []product `json:"products"`
	}
	header, err := c.get(ctx, "list_products", "products.json", q, &resp)
	if err != nil {
		return domain.ProductPage{}, err
	}
	page := domain.ProductPage{
		Products:     make([]domain.Product, 0, len(resp.Products)),
		NextPageInfo: nextPageInfo(header),
	}
	for _, p := range resp.Products {
		page.Products = append(page.Products, p.summary())
	}
	return page, nil
}

// nextPageInfo reads the page_info cursor of the rel="next" Link.
func nextPageInfo(h http.Header) string {
	for _, l := range linkheader.Parse(h.Get("Link")).FilterByRel("next") {
		u, err := url.Parse(l.URL)
		if err != nil {
			continue
		}
		if v := u.Query().Get("page_info"); v != "" {
			return v
		}
	}
	return ""
}

func (c *Client) Product(ctx context.Context, id string) (domain.Product, error) {
	if _, err := strconv.ParseInt(id, 10, 64); err != nil {
		return domain.Product{}, domain.NewValidationError("invalid productId %q", id)
	}
	var resp struct {
		Product product `json:"product"`
	}
	if _, err := c.get(ctx, "product", "products/"+id+".json", nil, &resp); err != nil {
		return domain.Product{}, err
	}
	return resp.Product.detail(), nil
}

// Snapshot fetches the shop, its first products and collections
// concurrently.
func (c *Client) Snapshot(ctx context.Context) (domain.StoreSnapshot, error) {
	var (
		shop struct {
			Shop struct {
				Name     string `json:"name"`
				Email    string `json:"email"`
				Domain   string `json:"domain"`
				Currency string `json:"currency"`
			} `json:"shop"`
		}
		products struct {
			Products []product `json:"products"`
		}
		collections struct {
			Collections []struct {
				Title    string `json:"title"`
				BodyHTML string `json:"body_html"`
			} `json:"custom_collections"`
		}
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := c.get(gctx, "shop", "shop.json", nil, &shop)
		return err
	})
	g.Go(func() error {
		_, err := c.get(gctx, "snapshot_products", "products.json", url.Values{
			"limit":  {strconv.Itoa(snapshotProducts)},
			"fields": {"title,body_html,tags,product_type,variants,images"},
		}, &products)
		return err
	})
	g.Go(func() error {
		_, err := c.get(gctx, "collections", "custom_collections.json", url.Values{
			"limit":  {strconv.Itoa(snapshotCollects)},
			"fields": {"title,body_html"},
		}, &collections)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.StoreSnapshot{}, fmt.Errorf("store snapshot: %w", err)
	}

	out := domain.StoreSnapshot{
		Name:        shop.Shop.Name,
		Email:       shop.Shop.Email,
		Domain:      shop.Shop.Domain,
		Currency:    shop.Shop.Currency,
		Products:    make([]domain.Product, 0, len(products.Products)),
		Collections: make([]domain.Collection, 0, len(collections.Collections)),
	}
	for _, p := range products.Products {
		out.Products = append(out.Products, p.summary())
	}
	for _, col := range collections.Collections {
		out.Collections = append(out.Collections, domain.Collection{Title: col.Title, Description: plainText(col.BodyHTML)})
	}
	return out, nil
}
