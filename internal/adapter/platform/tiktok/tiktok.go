// Package tiktok implements port.AdPlatform over the TikTok Business API.
package tiktok

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"andromeda-ads/internal/adapter/vendor"
	"andromeda-ads/internal/config/configs"
	"andromeda-ads/internal/core/domain"
	"andromeda-ads/internal/core/port"
	"andromeda-ads/internal/metrics"
)

// Vendor is the name used in errors and metrics.
const Vendor = "TikTok"

// unitsPerCurrency: budgets are decimal currency amounts kept as cents.
const unitsPerCurrency = 100

// Access token error codes.
const (
	codeAuthFirst = 40100
	codeAuthLast  = 40105
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (e envelope) err(status int) error {
	if e.Code == 0 {
		return nil
	}
	msg := e.Message
	if msg == "" {
		msg = "TikTok API error " + strconv.Itoa(e.Code)
	}
	ue := &domain.UpstreamError{Vendor: Vendor, Status: status, Code: e.Code, Message: msg}
	if e.Code >= codeAuthFirst && e.Code <= codeAuthLast {
		ue.Err = domain.ErrAuthExpired
	}
	return ue
}

// DecodeError handles non-2xx responses, which still carry the envelope.
func DecodeError(status int, body []byte) error {
	var env envelope
	if json.Unmarshal(body, &env) == nil {
		if err := env.err(status); err != nil {
			return err
		}
	}
	return &domain.UpstreamError{Vendor: Vendor, Status: status}
}

// NewTransport builds the shared TikTok transport.
func NewTransport(cfg configs.TikTok, m *metrics.Metrics, logger *slog.Logger) *vendor.Client {
	return vendor.NewClient(Vendor, cfg.Timeout,
		vendor.WithErrorDecoder(DecodeError),
		vendor.WithMetrics(m),
		vendor.WithLogger(logger),
	)
}

// Client is bound to one access token and advertiser.
type Client struct {
	http    *vendor.Client
	baseURL string
	creds   domain.TikTokCredentials
	maxAds  int
	logger  *slog.Logger
	now     func() time.Time
}

var _ port.AdPlatform = (*Client)(nil)

// New returns a Client. maxAds caps ListAds.
func New(transport *vendor.Client, cfg configs.TikTok, creds domain.TikTokCredentials, maxAds int, logger *slog.Logger) *Client {
	return &Client{
		http:    transport,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		creds:   creds,
		maxAds:  maxAds,
		logger:  logger,
		now:     time.Now,
	}
}

func (c *Client) Platform() domain.Platform { return domain.PlatformTikTok }

// call performs a request and unwraps the data member. A zero HTTP status
// with a non-zero code is still an error.
func (c *Client) call(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	var env envelope
	_, err := c.http.Do(ctx, vendor.Request{
		Operation: op,
		Method:    method,
		URL:       c.baseURL + "/" + path,
		Query:     query,
		Header:    http.Header{"Access-Token": {c.creds.AccessToken}},
		Body:      body,
	}, &env)
	if err != nil {
		return err
	}
	if err = env.err(http.StatusOK); err != nil {
		return err
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err = json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("tiktok: decode %s: %w", op, err)
	}
	return nil
}

func jsonParam(v any) string {
	raw, _ := json.Marshal(v)
	return string(raw)
}

func (c *Client) Validate(ctx context.Context) (domain.AccountInfo, error) {
	var data struct {
		List []struct {
			Name           string `json:"name"`
			AdvertiserName string `json:"advertiser_name"`
			Currency       string `json:"currency"`
			Timezone       string `json:"timezone"`
			Status         string `json:"status"`
		} `json:"list"`
	}
	err := c.call(ctx, "validate", http.MethodGet, "advertiser/info/", url.Values{
		"advertiser_ids": {jsonParam([]string{c.creds.AdvertiserID})},
	}, nil, &data)
	if err != nil {
		return domain.AccountInfo{}, err
	}
	if len(data.List) == 0 {
		return domain.AccountInfo{}, &domain.UpstreamError{Vendor: Vendor, Message: "advertiser " + c.creds.AdvertiserID + " not found"}
	}
	a := data.List[0]
	name := a.Name
	if name == "" {
		name = a.AdvertiserName
	}
	return domain.AccountInfo{
		AccountName: name,
		AccountID:   c.creds.AdvertiserID,
		Currency:    a.Currency,
		Status:      a.Status,
		Timezone:    a.Timezone,
		Platform:    domain.PlatformTikTok,
	}, nil
}

// CreateCampaign creates a total-budget campaign and one ad group and ad per
// concept. The total budget is the daily budget times the duration.
func (c *Client) CreateCampaign(ctx context.Context, spec domain.CampaignSpec) (domain.LaunchResult, error) {
	spec = spec.WithDefaults()
	total := spec.DailyBudgetUSD * float64(spec.DurationDays)
	sales := spec.IsSales()

	objective, goal := "TRAFFIC", "CLICK"
	if sales {
		objective, goal = "PRODUCT_SALES", "CONVERT"
	}

	var campaign struct {
		CampaignID string `json:"campaign_id"`
	}
	err := c.call(ctx, "create_campaign", http.MethodPost, "campaign/create/", nil, map[string]any{
		"advertiser_id":  c.creds.AdvertiserID,
		"campaign_name":  spec.Name,
		"objective_type": objective,
		"budget_mode":    "BUDGET_MODE_TOTAL",
		"budget":         total,
	}, &campaign)
	if err != nil {
		return domain.LaunchResult{}, fmt.Errorf("create campaign: %w", err)
	}

	res := domain.LaunchResult{CampaignID: campaign.CampaignID, AdSetIDs: []string{}, AdIDs: []string{}, Platform: domain.PlatformTikTok}
	locations := locationIDs(spec.Targeting.Countries)
	for _, concept := range spec.Concepts {
		angle := domain.Truncate(concept.Angle, 30)
		group := map[string]any{
			"advertiser_id":  c.creds.AdvertiserID,
			"campaign_id":    campaign.CampaignID,
			"adgroup_name":   "AG_" + angle,
			"placement_type": "PLACEMENT_TYPE_AUTOMATIC",
			"budget_mode":    "BUDGET_MODE_TOTAL",
			"budget":         total,
			"schedule_type":  "SCHEDULE_FROM_NOW",
			"optimize_goal":  goal,
			"billing_event":  "OCPM",
			"gender":         gender(spec.Targeting.Gender),
			"age_groups":     []string{"AGE_25_34", "AGE_35_44"},
			"promotion_type": "WEBSITE",
		}
		if len(locations) > 0 {
			group["location_ids"] = locations
		}
		if sales {
			group["external_action"] = "COMPLETE_PAYMENT"
		}
		var adGroup struct {
			AdGroupID string `json:"adgroup_id"`
		}
		if err = c.call(ctx, "create_ad_group", http.MethodPost, "adgroup/create/", nil, group, &adGroup); err != nil {
			return res, fmt.Errorf("create ad group %q: %w", angle, err)
		}
		res.AdSetIDs = append(res.AdSetIDs, adGroup.AdGroupID)

		creative := map[string]any{
			"ad_name":          "Ad_" + angle,
			"ad_format":        "SINGLE_IMAGE",
			"ad_text":          domain.Truncate(concept.Hook+"\n\n"+concept.Body, 100),
			"call_to_action":   "SHOP_NOW",
			"landing_page_url": spec.DestinationURL,
		}
		if concept.ImageB64 != "" {
			if imageID, err := c.uploadImage(ctx, concept.ImageB64); err != nil {
				c.logger.WarnContext(ctx, "image upload failed", slog.String("angle", angle), slog.Any("error", err))
			} else {
				creative["image_ids"] = []string{imageID}
			}
		}
		var ad struct {
			AdIDs []string `json:"ad_ids"`
			AdID  string   `json:"ad_id"`
		}
		err = c.call(ctx, "create_ad", http.MethodPost, "ad/create/", nil, map[string]any{
			"advertiser_id": c.creds.AdvertiserID,
			"adgroup_id":    adGroup.AdGroupID,
			"creatives":     []map[string]any{creative},
		}, &ad)
		if err != nil {
			return res, fmt.Errorf("create ad %q: %w", angle, err)
		}
		id := ad.AdID
		if len(ad.AdIDs) > 0 {
			id = ad.AdIDs[0]
		}
		res.AdIDs = append(res.AdIDs, id)
	}
	return res, nil
}

func (c *Client) uploadImage(ctx context.Context, b64 string) (string, error) {
	var img struct {
		ImageID string `json:"image_id"`
	}
	err := c.call(ctx, "upload_image", http.MethodPost, "file/image/ad/upload/", nil, map[string]any{
		"advertiser_id":   c.creds.AdvertiserID,
		"upload_type":     "UPLOAD_BY_FILE",
		"image_file":      b64,
		"image_signature": "",
	}, &img)
	return img.ImageID, err
}

// report runs an integrated ad-level report over [since, until].
func (c *Client) report(ctx context.Context, op string, filter map[string]any, since, until time.Time) ([]reportRow, error) {
	var data struct {
		List []reportRow `json:"list"`
	}
	err := c.call(ctx, op, http.MethodGet, "report/integrated/get/", url.Values{
		"advertiser_id": {c.creds.AdvertiserID},
		"report_type":   {"BASIC"},
		"data_level":    {"AUCTION_AD"},
		"dimensions":    {jsonParam([]string{"ad_id"})},
		"metrics":       {jsonParam(reportMetrics)},
		"start_date":    {since.Format(time.DateOnly)},
		"end_date":      {until.Format(time.DateOnly)},
		"filtering":     {jsonParam([]map[string]any{filter})},
		"page_size":     {"1000"},
	}, nil, &data)
	return data.List, err
}

func (c *Client) Stats(ctx context.Context, campaignID string) (domain.Stats, error) {
	if campaignID == "" {
		return domain.Stats{}, domain.NewValidationError("campaignId is required")
	}
	until := c.now().UTC()
	rows, err := c.report(ctx, "stats", map[string]any{
		"field_name":   "campaign_ids",
		"filter_type":  "IN",
		"filter_value": jsonParam([]string{campaignID}),
	}, until.AddDate(0, 0, -7), until)
	if err != nil {
		return domain.Stats{}, err
	}
	ads := make([]domain.AdStats, 0, len(rows))
	for _, r := range rows {
		ads = append(ads, normalizeRow(r))
	}
	return domain.NewStats(ads), nil
}

type adRecord struct {
	AdID            string `json:"ad_id"`
	AdName          string `json:"ad_name"`
	OperationStatus string `json:"operation_status"`
	AdGroupID       string `json:"adgroup_id"`
}

func (c *Client) listAds(ctx context.Context, op string, filtering map[string]any, limit int) ([]adRecord, error) {
	var data struct {
		List []adRecord `json:"list"`
	}
	err := c.call(ctx, op, http.MethodGet, "ad/get/", url.Values{
		"advertiser_id": {c.creds.AdvertiserID},
		"filtering":     {jsonParam(filtering)},
		"page_size":     {strconv.Itoa(limit)},
	}, nil, &data)
	return data.List, err
}

func (c *Client) ListAds(ctx context.Context, campaignID string) ([]domain.Ad, error) {
	recs, err := c.listAds(ctx, "list_ads", map[string]any{"campaign_ids": []string{campaignID}}, c.maxAds)
	if err != nil {
		return nil, err
	}
	ads := make([]domain.Ad, 0, len(recs))
	for _, r := range recs {
		ads = append(ads, domain.Ad{ID: r.AdID, Name: r.AdName, Status: r.OperationStatus, AdSetID: r.AdGroupID})
	}
	return ads, nil
}

// AdInsights sums the report rows of one ad over the trailing window.
func (c *Client) AdInsights(ctx context.Context, ad domain.Ad, days int) (domain.AdMetrics, error) {
	until := c.now().UTC()
	rows, err := c.report(ctx, "ad_insights", map[string]any{
		"field_name":   "ad_ids",
		"filter_type":  "IN",
		"filter_value": jsonParam([]string{ad.ID}),
	}, until.AddDate(0, 0, -days), until)
	if err != nil {
		return domain.AdMetrics{}, err
	}
	if len(rows) == 0 {
		return domain.AdMetrics{}, nil
	}
	return rows[0].raw().Metrics(), nil
}

func (c *Client) SetAdStatus(ctx context.Context, ad domain.Ad, status domain.AdStatus) error {
	op := "DISABLE"
	if status == domain.AdStatusActive {
		op = "ENABLE"
	}
	return c.call(ctx, "set_status", http.MethodPost, "ad/status/update/", nil, map[string]any{
		"advertiser_id":    c.creds.AdvertiserID,
		"ad_ids":           []string{ad.ID},
		"operation_status": op,
	}, nil)
}

// AdBudget reads the budget of the ad's ad group.
func (c *Client) AdBudget(ctx context.Context, ad domain.Ad) (domain.Budget, error) {
	groupID := ad.AdSetID
	if groupID == "" {
		recs, err := c.listAds(ctx, "get_ad", map[string]any{"ad_ids": []string{ad.ID}}, 1)
		if err != nil {
			return domain.Budget{}, err
		}
		if len(recs) == 0 || recs[0].AdGroupID == "" {
			return domain.Budget{}, &domain.UpstreamError{Vendor: Vendor, Message: "ad " + ad.ID + " has no ad group"}
		}
		groupID = recs[0].AdGroupID
	}
	var data struct {
		List []struct {
			AdGroupID string        `json:"adgroup_id"`
			Budget    vendor.Number `json:"budget"`
		} `json:"list"`
	}
	err := c.call(ctx, "get_budget", http.MethodGet, "adgroup/get/", url.Values{
		"advertiser_id": {c.creds.AdvertiserID},
		"filtering":     {jsonParam(map[string]any{"adgroup_ids": []string{groupID}})},
	}, nil, &data)
	if err != nil {
		return domain.Budget{}, err
	}
	if len(data.List) == 0 {
		return domain.Budget{}, &domain.UpstreamError{Vendor: Vendor, Message: "ad group " + groupID + " not found"}
	}
	b := domain.Budget{AdSetID: groupID, UnitsPerCurrency: unitsPerCurrency}
	b.Amount = b.FromCurrency(data.List[0].Budget.Float())
	return b, nil
}

func (c *Client) SetBudget(ctx context.Context, b domain.Budget) error {
	return c.call(ctx, "set_budget", http.MethodPost, "adgroup/budget/update/", nil, map[string]any{
		"advertiser_id": c.creds.AdvertiserID,
		"budget": []map[string]any{{
			"adgroup_id": b.AdSetID,
			"budget":     b.Currency(b.Amount),
		}},
	}, nil)
}

// UploadCreative is not offered for TikTok.
func (c *Client) UploadCreative(context.Context, domain.CreativeUpload) (domain.CreativeResult, error) {
	return domain.CreativeResult{}, fmt.Errorf("tiktok creative upload: %w", domain.ErrUnsupported)
}
