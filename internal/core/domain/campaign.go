package domain

import (
	"fmt"
	"strings"
	"time"
)

// Platform identifies an ad platform.
type Platform string

const (
	PlatformMeta   Platform = "meta"
	PlatformGoogle Platform = "google"
	PlatformTikTok Platform = "tiktok"

	// DefaultPlatform is used when a request names no platform or an
	// unknown one.
	DefaultPlatform = PlatformMeta
)

// Platforms lists every supported platform.
var Platforms = []Platform{PlatformMeta, PlatformGoogle, PlatformTikTok}

// ParsePlatform maps s to a Platform, falling back to DefaultPlatform for
// empty or unknown values.
func ParsePlatform(s string) Platform {
	switch Platform(strings.ToLower(strings.TrimSpace(s))) {
	case PlatformGoogle:
		return PlatformGoogle
	case PlatformTikTok:
		return PlatformTikTok
	default:
		return DefaultPlatform
	}
}

// Label returns the display name of the platform.
func (p Platform) Label() string {
	switch p {
	case PlatformGoogle:
		return "Google Ads"
	case PlatformTikTok:
		return "TikTok Ads"
	default:
		return "Meta"
	}
}

// Campaign is a launched campaign. ID, AdSetIDs and AdIDs are owned by the
// platform; the only local mutation is appending newly uploaded ad ids.
type Campaign struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	AdSetIDs       []string  `json:"adSetIds"`
	AdIDs          []string  `json:"adIds"`
	Platform       Platform  `json:"platform"`
	DestinationURL string    `json:"destinationUrl"`
	ConceptAngles  []string  `json:"conceptAngles"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Objectives accepted by CampaignSpec.
const (
	ObjectiveTraffic = "OUTCOME_TRAFFIC"
	ObjectiveSales   = "OUTCOME_SALES"
)

// Targeting describes who should see a campaign. Gender is "all", "1" (men)
// or "2" (women).
type Targeting struct {
	Countries []string `json:"countries" yaml:"countries"`
	AgeMin    int      `json:"ageMin" yaml:"ageMin"`
	AgeMax    int      `json:"ageMax" yaml:"ageMax"`
	Gender    string   `json:"gender" yaml:"gender"`
	Interests []string `json:"interests,omitempty" yaml:"interests,omitempty"`
}

// WithDefaults fills unset targeting fields with the launch defaults.
func (t Targeting) WithDefaults() Targeting {
	if len(t.Countries) == 0 {
		t.Countries = []string{"ES"}
	}
	for i, c := range t.Countries {
		t.Countries[i] = strings.ToUpper(strings.TrimSpace(c))
	}
	if t.AgeMin == 0 {
		t.AgeMin = 18
	}
	if t.AgeMax == 0 {
		t.AgeMax = 45
	}
	if t.Gender == "" {
		t.Gender = "all"
	}
	return t
}

// CampaignSpec is the input to campaign creation on a platform.
type CampaignSpec struct {
	Name           string    `json:"campaignName"`
	Objective      string    `json:"objective"`
	DailyBudgetUSD float64   `json:"dailyBudgetUsd"`
	DurationDays   int       `json:"durationDays"`
	DestinationURL string    `json:"destinationUrl"`
	Targeting      Targeting `json:"targeting"`
	Concepts       []Concept `json:"concepts"`
}

// WithDefaults applies the default budget, duration, objective and targeting.
func (s CampaignSpec) WithDefaults() CampaignSpec {
	if s.DailyBudgetUSD <= 0 {
		s.DailyBudgetUSD = 5
	}
	if s.DurationDays <= 0 {
		s.DurationDays = 7
	}
	if s.Objective == "" {
		s.Objective = ObjectiveTraffic
	}
	s.Targeting = s.Targeting.WithDefaults()
	return s
}

// Validate checks the fields every platform needs.
func (s CampaignSpec) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return NewValidationError("campaignName is required")
	}
	if strings.TrimSpace(s.DestinationURL) == "" {
		return NewValidationError("destinationUrl is required")
	}
	if len(s.Concepts) == 0 {
		return NewValidationError("select at least one concept")
	}
	for i, c := range s.Concepts {
		if strings.TrimSpace(c.Angle) == "" {
			return NewValidationError("concept %d has no angle", i)
		}
	}
	return nil
}

// IsSales reports whether the campaign optimises for purchases.
func (s CampaignSpec) IsSales() bool { return s.Objective == ObjectiveSales }

// LaunchResult holds the platform identifiers of a freshly created campaign.
type LaunchResult struct {
	CampaignID string   `json:"campaignId"`
	AdSetIDs   []string `json:"adSetIds"`
	AdIDs      []string `json:"adIds"`
	Platform   Platform `json:"platform"`
}

// AccountInfo is returned when validating platform credentials.
type AccountInfo struct {
	AccountName string   `json:"accountName"`
	AccountID   string   `json:"accountId,omitempty"`
	Currency    string   `json:"currency,omitempty"`
	Status      any      `json:"status,omitempty"`
	Timezone    string   `json:"timezone,omitempty"`
	Platform    Platform `json:"platform"`
}

// AdStatus is the delivery status written by pause/activate actions.
type AdStatus string

const (
	AdStatusActive AdStatus = "ACTIVE"
	AdStatusPaused AdStatus = "PAUSED"
)

// Ad is a platform ad as listed for rule evaluation. AdSetID is the budget
// holder (ad set, ad group or campaign budget depending on platform).
type Ad struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Status  string `json:"status,omitempty"`
	AdSetID string `json:"adSetId,omitempty"`
}

// Budget is a daily budget in platform-native units. UnitsPerCurrency
// converts to currency (Meta cents 100, Google micros 1e6, TikTok 100).
type Budget struct {
	AdSetID          string `json:"adSetId"`
	Amount           int64  `json:"amount"`
	UnitsPerCurrency int64  `json:"unitsPerCurrency"`
}

// Currency converts a native amount to currency units.
func (b Budget) Currency(amount int64) float64 {
	if b.UnitsPerCurrency <= 0 {
		return float64(amount)
	}
	return float64(amount) / float64(b.UnitsPerCurrency)
}

// FromCurrency converts a currency amount to native units.
func (b Budget) FromCurrency(v float64) int64 {
	u := b.UnitsPerCurrency
	if u <= 0 {
		u = 1
	}
	return roundInt(v * float64(u))
}

// CreativeUpload is an image creative added to an existing ad set.
type CreativeUpload struct {
	AdSetID        string `json:"adSetId"`
	ImageB64       string `json:"imageB64"`
	Headline       string `json:"headline"`
	Body           string `json:"body"`
	DestinationURL string `json:"destinationUrl"`
}

// Validate checks the required upload fields.
func (u CreativeUpload) Validate() error {
	if u.AdSetID == "" || u.ImageB64 == "" || u.DestinationURL == "" {
		return NewValidationError("adSetId, imageB64 and destinationUrl are required")
	}
	return nil
}

// CreativeResult identifies the ad created by a creative upload.
type CreativeResult struct {
	AdID       string `json:"adId"`
	CreativeID string `json:"creativeId"`
	ImageHash  string `json:"imageHash"`
}

// UploadReport summarises uploading pending concept images to a campaign.
type UploadReport struct {
	Uploaded int      `json:"uploaded"`
	Failed   int      `json:"failed"`
	AdIDs    []string `json:"adIds"`
	Errors   []string `json:"errors,omitempty"`
}

// Message renders the report for status lines.
func (r UploadReport) Message(campaignID string) string {
	if r.Failed > 0 {
		return fmt.Sprintf("campaign active: %d image(s) uploaded, %d failed", r.Uploaded, r.Failed)
	}
	return fmt.Sprintf("campaign active with %d image(s), id %s", r.Uploaded, campaignID)
}

// CampaignDraft holds the launch settings the assistant may edit before a
// campaign exists.
type CampaignDraft struct {
	Name        string    `json:"campaignName"`
	DailyBudget float64   `json:"dailyBudget"`
	Duration    int       `json:"duration"`
	Targeting   Targeting `json:"targeting"`
}

// Creative generation modes.
const (
	CreativeGenerate = "generate"
	CreativeEdit     = "edit"
	CreativeManual   = "manual"
)

// CreativeRequest asks for an ad image for a concept.
type CreativeRequest struct {
	Mode        string   `json:"mode"`
	Concept     Concept  `json:"concept"`
	Style       string   `json:"style"`
	ImageBase64 string   `json:"imageBase64"`
	MimeType    string   `json:"mimeType"`
	Product     *Product `json:"selectedProduct"`
}
