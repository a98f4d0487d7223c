package domain

import "strings"

// Briefing is the marketing profile that drives concept generation.
type Briefing struct {
	Product        string `json:"product"`
	Audience       string `json:"audience"`
	PainPoint      string `json:"painPoint"`
	Differentiator string `json:"differentiator"`
	Tone           string `json:"tone"`
}

// DefaultTone is used in prompts when the briefing leaves tone empty.
const DefaultTone = "modern and friendly"

// Validate checks the fields required to generate concepts.
func (b Briefing) Validate() error {
	var missing []string
	if strings.TrimSpace(b.Product) == "" {
		missing = append(missing, "product")
	}
	if strings.TrimSpace(b.Audience) == "" {
		missing = append(missing, "audience")
	}
	if strings.TrimSpace(b.PainPoint) == "" {
		missing = append(missing, "painPoint")
	}
	if len(missing) > 0 {
		return NewValidationError("briefing is missing %s", strings.Join(missing, ", "))
	}
	return nil
}

// Tones lists the values accepted for an LLM-derived briefing tone.
var Tones = []string{
	"elegant and sophisticated",
	"casual and friendly",
	"bold and provocative",
	"minimalist and clean",
	"fun and playful",
	"empowered and feminist",
}

// Product is a storefront product reduced to what prompts and creatives need.
type Product struct {
	ID          int64            `json:"id"`
	Title       string           `json:"title"`
	Price       string           `json:"price"`
	Currency    string           `json:"currency,omitempty"`
	Description string           `json:"description"`
	Image       string           `json:"image,omitempty"`
	Images      []string         `json:"images,omitempty"`
	Tags        string           `json:"tags"`
	Type        string           `json:"type"`
	Variants    []ProductVariant `json:"variants,omitempty"`
}

// ProductVariant is one purchasable variant of a Product.
type ProductVariant struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Price string `json:"price"`
	SKU   string `json:"sku"`
}

// BrandProfile is a Briefing derived from a whole store plus store facts.
type BrandProfile struct {
	Briefing
	StoreName   string   `json:"storeName"`
	TopProducts []string `json:"topProducts"`
	PriceRange  string   `json:"priceRange"`
}

// StoreAnalysis is the result of analysing a storefront.
type StoreAnalysis struct {
	BrandProfile    BrandProfile `json:"brandProfile"`
	StoreName       string       `json:"storeName"`
	ProductCount    int          `json:"productCount"`
	CollectionCount int          `json:"collectionCount"`
}

// ProductPage is one page of a storefront product listing. NextPageInfo is
// the opaque cursor of the following page, empty on the last one.
type ProductPage struct {
	Products     []Product `json:"products"`
	NextPageInfo string    `json:"nextPageInfo,omitempty"`
}

// Collection is a storefront product collection.
type Collection struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// StoreSnapshot is the storefront data used to derive a brand profile.
type StoreSnapshot struct {
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Domain      string       `json:"domain"`
	Currency    string       `json:"currency"`
	Products    []Product    `json:"products"`
	Collections []Collection `json:"collections"`
}
