// Package google implements port.AdPlatform over the Google Ads REST API.
package google

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"andromeda-ads/internal/adapter/vendor"
	"andromeda-ads/internal/config/configs"
	"andromeda-ads/internal/core/domain"
	"andromeda-ads/internal/core/port"
	"andromeda-ads/internal/metrics"
)

// Vendor is the name used in errors and metrics.
const Vendor = "Google Ads"

// DecodeError maps a Google API error. HTTP 401 or status UNAUTHENTICATED
// wraps domain.ErrAuthExpired.
func DecodeError(status int, body []byte) error {
	var env struct {
		Error *struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
			Status  string `json:"status"`
		} `json:"error"`
	}
	e := &domain.UpstreamError{Vendor: Vendor, Status: status}
	if json.Unmarshal(body, &env) == nil && env.Error != nil {
		e.Message = env.Error.Message
		if e.Message == "" {
			e.Message = env.Error.Status
		}
		if env.Error.Status == "UNAUTHENTICATED" {
			e.Err = domain.ErrAuthExpired
		}
	}
	if status == http.StatusUnauthorized {
		e.Err = domain.ErrAuthExpired
	}
	return e
}

// NewTransport builds the shared Google Ads transport.
func NewTransport(cfg configs.Google, m *metrics.Metrics, logger *slog.Logger) *vendor.Client {
	return vendor.NewClient(Vendor, cfg.Timeout,
		vendor.WithErrorDecoder(DecodeError),
		vendor.WithMetrics(m),
		vendor.WithLogger(logger),
	)
}

// Client is bound to one OAuth token, developer token and customer.
type Client struct {
	http    *vendor.Client
	baseURL string
	creds   domain.GoogleCredentials
	maxAds  int
	now     func() time.Time
}

var _ port.AdPlatform = (*Client)(nil)

// New returns a Client. maxAds caps ListAds.
func New(transport *vendor.Client, cfg configs.Google, creds domain.GoogleCredentials, maxAds int) *Client {
	return &Client{
		http:    transport,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		creds:   creds,
		maxAds:  maxAds,
		now:     time.Now,
	}
}

func (c *Client) Platform() domain.Platform { return domain.PlatformGoogle }

func (c *Client) customerPath() string { return "customers/" + c.creds.Customer() }

func (c *Client) post(ctx context.Context, op, path string, body, out any) error {
	_, err := c.http.Do(ctx, vendor.Request{
		Operation: op,
		Method:    http.MethodPost,
		URL:       c.baseURL + "/" + path,
		Header: http.Header{
			"Authorization":   {"Bearer " + c.creds.AccessToken},
			"developer-token": {c.creds.DeveloperToken},
		},
		Body: body,
	}, out)
	return err
}

func (c *Client) search(ctx context.Context, op, query string) ([]searchRow, error) {
	var resp struct {
		Results []searchRow `json:"results"`
	}
	if err := c.post(ctx, op, c.customerPath()+"/googleAds:search", map[string]string{"query": query}, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

type mutateResponse struct {
	Results []struct {
		ResourceName string `json:"resourceName"`
	} `json:"results"`
	PartialFailureError *struct {
		Message string `json:"message"`
	} `json:"partialFailureError"`
}

// mutate runs a single-operation mutate and returns the affected resource
// name.
func (c *Client) mutate(ctx context.Context, op, resource string, operation map[string]any) (string, error) {
	var resp mutateResponse
	err := c.post(ctx, op, c.customerPath()+"/"+resource+":mutate", map[string]any{
		"operations": []map[string]any{operation},
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.PartialFailureError != nil {
		return "", &domain.UpstreamError{Vendor: Vendor, Message: resp.PartialFailureError.Message}
	}
	if len(resp.Results) == 0 {
		return "", &domain.UpstreamError{Vendor: Vendor, Message: resource + " mutate returned no results"}
	}
	return resp.Results[0].ResourceName, nil
}

func (c *Client) Validate(ctx context.Context) (domain.AccountInfo, error) {
	rows, err := c.search(ctx, "validate",
		"SELECT customer.descriptive_name, customer.currency_code, customer.time_zone FROM customer LIMIT 1")
	if err != nil {
		return domain.AccountInfo{}, err
	}
	info := domain.AccountInfo{
		AccountName: "Customer " + c.creds.Customer(),
		AccountID:   c.creds.Customer(),
		Currency:    "USD",
		Platform:    domain.PlatformGoogle,
	}
	if len(rows) > 0 {
		cust := rows[0].Customer
		if cust.DescriptiveName != "" {
			info.AccountName = cust.DescriptiveName
		}
		if cust.CurrencyCode != "" {
			info.Currency = cust.CurrencyCode
		}
		info.Timezone = cust.TimeZone
	}
	return info, nil
}

// CreateCampaign creates a budget, a search campaign, and one ad group with
// a responsive search ad per concept.
func (c *Client) CreateCampaign(ctx context.Context, spec domain.CampaignSpec) (domain.LaunchResult, error) {
	spec = spec.WithDefaults()

	budgetName, err := c.mutate(ctx, "create_budget", "campaignBudgets", map[string]any{
		"create": map[string]any{
			"name":           "Budget_" + spec.Name + "_" + uuid.NewString()[:8],
			"amountMicros":   domain.Budget{UnitsPerCurrency: microsPerUnit}.FromCurrency(spec.DailyBudgetUSD),
			"deliveryMethod": "STANDARD",
		},
	})
	if err != nil {
		return domain.LaunchResult{}, fmt.Errorf("create budget: %w", err)
	}

	campaign := map[string]any{
		"name":                   spec.Name,
		"advertisingChannelType": "SEARCH",
		"status":                 "ENABLED",
		"campaignBudget":         budgetName,
	}
	if spec.IsSales() {
		campaign["maximizeConversions"] = map[string]any{}
	} else {
		campaign["targetSpend"] = map[string]any{}
	}
	campaignName, err := c.mutate(ctx, "create_campaign", "campaigns", map[string]any{"create": campaign})
	if err != nil {
		return domain.LaunchResult{}, fmt.Errorf("create campaign: %w", err)
	}

	res := domain.LaunchResult{
		CampaignID: lastSegment(campaignName),
		AdSetIDs:   []string{},
		AdIDs:      []string{},
		Platform:   domain.PlatformGoogle,
	}
	for _, concept := range spec.Concepts {
		angle := domain.Truncate(concept.Angle, 30)
		groupName, err := c.mutate(ctx, "create_ad_group", "adGroups", map[string]any{
			"create": map[string]any{
				"name":         "AG_" + angle,
				"campaign":     campaignName,
				"type":         "SEARCH_STANDARD",
				"cpcBidMicros": microsPerUnit,
			},
		})
		if err != nil {
			return res, fmt.Errorf("create ad group %q: %w", angle, err)
		}
		res.AdSetIDs = append(res.AdSetIDs, lastSegment(groupName))

		adName, err := c.mutate(ctx, "create_ad", "adGroupAds", map[string]any{
			"create": map[string]any{
				"adGroup": groupName,
				"status":  "ENABLED",
				"ad": map[string]any{
					"finalUrls":          []string{spec.DestinationURL},
					"responsiveSearchAd": responsiveSearchAd(concept),
				},
			},
		})
		if err != nil {
			return res, fmt.Errorf("create ad %q: %w", angle, err)
		}
		res.AdIDs = append(res.AdIDs, lastSegment(adName))
	}
	return res, nil
}

type textAsset struct {
	Text string `json:"text"`
}

// responsiveSearchAd builds RSA assets from concept copy. Headlines are cut
// to 30 characters and descriptions to 90.
func responsiveSearchAd(c domain.Concept) map[string]any {
	or := func(s, fallback string) string {
		if strings.TrimSpace(s) == "" {
			return fallback
		}
		return s
	}
	return map[string]any{
		"headlines": []textAsset{
			{domain.Truncate(or(c.Headline, "New Collection"), 30)},
			{domain.Truncate(or(c.Hook, "Discover what's new"), 30)},
			{domain.Truncate(or(c.CTA, "Shop now"), 30)},
		},
		"descriptions": []textAsset{
			{domain.Truncate(or(c.Body, "Find your perfect style"), 90)},
			{domain.Truncate(or(c.PainPoint, "The style you were looking for at the best price"), 90)},
		},
	}
}

func numericID(id, field string) (string, error) {
	if _, err := strconv.ParseInt(id, 10, 64); err != nil {
		return "", domain.NewValidationError("%s must be numeric", field)
	}
	return id, nil
}

// splitAdID splits "<adGroupId>~<adId>".
func splitAdID(id string) (group, ad string, err error) {
	group, ad, ok := strings.Cut(id, "~")
	if !ok {
		return "", "", domain.NewValidationError("google ad id %q is not <adGroupId>~<adId>", id)
	}
	if _, err = numericID(group, "ad group id"); err != nil {
		return "", "", err
	}
	if _, err = numericID(ad, "ad id"); err != nil {
		return "", "", err
	}
	return group, ad, nil
}

func (c *Client) Stats(ctx context.Context, campaignID string) (domain.Stats, error) {
	id, err := numericID(campaignID, "campaignId")
	if err != nil {
		return domain.Stats{}, err
	}
	rows, err := c.search(ctx, "stats", `SELECT ad_group.id, ad_group_ad.ad.id, ad_group_ad.ad.name, `+
		`metrics.cost_micros, metrics.impressions, metrics.clicks, metrics.ctr, metrics.average_cpm, `+
		`metrics.conversions, metrics.conversions_value `+
		`FROM ad_group_ad WHERE campaign.id = `+id+` AND segments.date DURING LAST_7_DAYS`)
	if err != nil {
		return domain.Stats{}, err
	}
	ads := make([]domain.AdStats, 0, len(rows))
	for _, r := range rows {
		ads = append(ads, normalizeRow(r))
	}
	return domain.NewStats(ads), nil
}

// ListAds returns the campaign's ads with their campaign budget as budget
// holder.
func (c *Client) ListAds(ctx context.Context, campaignID string) ([]domain.Ad, error) {
	id, err := numericID(campaignID, "campaignId")
	if err != nil {
		return nil, err
	}
	rows, err := c.search(ctx, "list_ads", fmt.Sprintf(
		`SELECT ad_group.id, ad_group_ad.ad.id, ad_group_ad.ad.name, ad_group_ad.status, campaign.campaign_budget `+
			`FROM ad_group_ad WHERE campaign.id = %s AND ad_group_ad.status != 'REMOVED' LIMIT %d`, id, c.maxAds))
	if err != nil {
		return nil, err
	}
	ads := make([]domain.Ad, 0, len(rows))
	for _, r := range rows {
		ads = append(ads, domain.Ad{
			ID:      r.adID(),
			Name:    r.adName(),
			Status:  r.AdGroupAd.Status,
			AdSetID: r.Campaign.CampaignBudget,
		})
	}
	return ads, nil
}

func (c *Client) AdInsights(ctx context.Context, ad domain.Ad, days int) (domain.AdMetrics, error) {
	group, adID, err := splitAdID(ad.ID)
	if err != nil {
		return domain.AdMetrics{}, err
	}
	until := c.now().UTC()
	since := until.AddDate(0, 0, -days)
	rows, err := c.search(ctx, "ad_insights", fmt.Sprintf(
		`SELECT metrics.cost_micros, metrics.impressions, metrics.clicks, metrics.ctr, metrics.average_cpm, `+
			`metrics.conversions, metrics.conversions_value FROM ad_group_ad `+
			`WHERE ad_group.id = %s AND ad_group_ad.ad.id = %s AND segments.date BETWEEN '%s' AND '%s'`,
		group, adID, since.Format(time.DateOnly), until.Format(time.DateOnly)))
	if err != nil {
		return domain.AdMetrics{}, err
	}
	return sumRows(rows).Metrics(), nil
}

func (c *Client) SetAdStatus(ctx context.Context, ad domain.Ad, status domain.AdStatus) error {
	if _, _, err := splitAdID(ad.ID); err != nil {
		return err
	}
	googleStatus := "PAUSED"
	if status == domain.AdStatusActive {
		googleStatus = "ENABLED"
	}
	_, err := c.mutate(ctx, "set_status", "adGroupAds", map[string]any{
		"update": map[string]any{
			"resourceName": c.customerPath() + "/adGroupAds/" + ad.ID,
			"status":       googleStatus,
		},
		"updateMask": "status",
	})
	return err
}

// AdBudget reads the campaign budget funding the ad. Sibling ads share it.
func (c *Client) AdBudget(ctx context.Context, ad domain.Ad) (domain.Budget, error) {
	budgetName := ad.AdSetID
	if budgetName == "" {
		group, adID, err := splitAdID(ad.ID)
		if err != nil {
			return domain.Budget{}, err
		}
		rows, err := c.search(ctx, "get_ad", fmt.Sprintf(
			`SELECT campaign.campaign_budget FROM ad_group_ad WHERE ad_group.id = %s AND ad_group_ad.ad.id = %s`, group, adID))
		if err != nil {
			return domain.Budget{}, err
		}
		if len(rows) == 0 || rows[0].Campaign.CampaignBudget == "" {
			return domain.Budget{}, &domain.UpstreamError{Vendor: Vendor, Message: "ad " + ad.ID + " has no campaign budget"}
		}
		budgetName = rows[0].Campaign.CampaignBudget
	}
	if strings.ContainsAny(budgetName, `'\`) {
		return domain.Budget{}, domain.NewValidationError("invalid budget resource %q", budgetName)
	}
	rows, err := c.search(ctx, "get_budget",
		`SELECT campaign_budget.amount_micros FROM campaign_budget WHERE campaign_budget.resource_name = '`+budgetName+`'`)
	if err != nil {
		return domain.Budget{}, err
	}
	if len(rows) == 0 {
		return domain.Budget{}, &domain.UpstreamError{Vendor: Vendor, Message: "budget " + budgetName + " not found"}
	}
	return domain.Budget{
		AdSetID:          budgetName,
		Amount:           rows[0].CampaignBudget.AmountMicros.Int(),
		UnitsPerCurrency: microsPerUnit,
	}, nil
}

func (c *Client) SetBudget(ctx context.Context, b domain.Budget) error {
	_, err := c.mutate(ctx, "set_budget", "campaignBudgets", map[string]any{
		"update": map[string]any{
			"resourceName": b.AdSetID,
			"amountMicros": b.Amount,
		},
		"updateMask": "amount_micros",
	})
	return err
}

// UploadCreative is not offered for Google search campaigns.
func (c *Client) UploadCreative(context.Context, domain.CreativeUpload) (domain.CreativeResult, error) {
	return domain.CreativeResult{}, fmt.Errorf("google creative upload: %w", domain.ErrUnsupported)
}
