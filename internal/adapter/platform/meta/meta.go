// Package meta implements port.AdPlatform over the Meta Graph API.
package meta

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

	"github.com/google/uuid"

	"andromeda-ads/internal/adapter/vendor"
	"andromeda-ads/internal/config/configs"
	"andromeda-ads/internal/core/domain"
	"andromeda-ads/internal/core/port"
	"andromeda-ads/internal/metrics"
)

// Vendor is the name used in errors and metrics.
const Vendor = "Meta"

// codeInvalidToken is the Graph error code of an expired or revoked token.
const codeInvalidToken = 190

// unitsPerCurrency: Meta budgets are in cents.
const unitsPerCurrency = 100

type graphError struct {
	Message      string `json:"message"`
	Code         int    `json:"code"`
	ErrorUserMsg string `json:"error_user_msg"`
}

// DecodeError maps a Graph error envelope to a domain.UpstreamError. Code
// 190 wraps domain.ErrAuthExpired.
func DecodeError(status int, body []byte) error {
	var env struct {
		Error *graphError `json:"error"`
	}
	if err := json.Unmarshal(body, &env); err != nil || env.Error == nil {
		return &domain.UpstreamError{Vendor: Vendor, Status: status}
	}
	msg := env.Error.ErrorUserMsg
	if msg == "" {
		msg = env.Error.Message
	}
	e := &domain.UpstreamError{Vendor: Vendor, Status: status, Code: env.Error.Code, Message: msg}
	if env.Error.Code == codeInvalidToken {
		e.Err = domain.ErrAuthExpired
	}
	return e
}

// NewTransport builds the shared Graph transport.
func NewTransport(cfg configs.Meta, m *metrics.Metrics, logger *slog.Logger) *vendor.Client {
	return vendor.NewClient(Vendor, cfg.Timeout,
		vendor.WithErrorDecoder(DecodeError),
		vendor.WithMetrics(m),
		vendor.WithLogger(logger),
	)
}

// Client is bound to one token and ad account.
type Client struct {
	http    *vendor.Client
	baseURL string
	creds   domain.MetaCredentials
	maxAds  int
	logger  *slog.Logger
	now     func() time.Time
}

var _ port.AdPlatform = (*Client)(nil)

// New returns a Client. maxAds caps ListAds.
func New(transport *vendor.Client, cfg configs.Meta, creds domain.MetaCredentials, maxAds int, logger *slog.Logger) *Client {
	return &Client{
		http:    transport,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		creds:   creds,
		maxAds:  maxAds,
		logger:  logger,
		now:     time.Now,
	}
}

func (c *Client) Platform() domain.Platform { return domain.PlatformMeta }

func (c *Client) get(ctx context.Context, op, path string, q url.Values, out any) error {
	if q == nil {
		q = url.Values{}
	}
	q.Set("access_token", c.creds.Token)
	_, err := c.http.Do(ctx, vendor.Request{
		Operation: op,
		URL:       c.baseURL + "/" + path,
		Query:     q,
	}, out)
	return err
}

func (c *Client) post(ctx context.Context, op, path string, body, out any) error {
	_, err := c.http.Do(ctx, vendor.Request{
		Operation: op,
		Method:    http.MethodPost,
		URL:       c.baseURL + "/" + path,
		Query:     url.Values{"access_token": {c.creds.Token}},
		Body:      body,
	}, out)
	return err
}

type idResponse struct {
	ID string `json:"id"`
}

func (c *Client) Validate(ctx context.Context) (domain.AccountInfo, error) {
	var acct struct {
		Name          string `json:"name"`
		AccountStatus int    `json:"account_status"`
		Currency      string `json:"currency"`
		Timezone      string `json:"timezone_name"`
	}
	err := c.get(ctx, "validate", c.creds.Account(), url.Values{
		"fields": {"name,account_status,currency,timezone_name"},
	}, &acct)
	if err != nil {
		return domain.AccountInfo{}, err
	}
	return domain.AccountInfo{
		AccountName: acct.Name,
		AccountID:   c.creds.Account(),
		Currency:    acct.Currency,
		Status:      acct.AccountStatus,
		Timezone:    acct.Timezone,
		Platform:    domain.PlatformMeta,
	}, nil
}

// CreateCampaign creates the campaign, then one ad set, creative and ad per
// concept. Creatives need a page id; without one the ads are created bare.
func (c *Client) CreateCampaign(ctx context.Context, spec domain.CampaignSpec) (domain.LaunchResult, error) {
	spec = spec.WithDefaults()
	account := c.creds.Account()

	var campaign idResponse
	err := c.post(ctx, "create_campaign", account+"/campaigns", map[string]any{
		"name":                  spec.Name,
		"objective":             spec.Objective,
		"status":                "ACTIVE",
		"special_ad_categories": []string{},
	}, &campaign)
	if err != nil {
		return domain.LaunchResult{}, fmt.Errorf("create campaign: %w", err)
	}

	res := domain.LaunchResult{CampaignID: campaign.ID, AdSetIDs: []string{}, AdIDs: []string{}, Platform: domain.PlatformMeta}
	budget := domain.Budget{UnitsPerCurrency: unitsPerCurrency}.FromCurrency(spec.DailyBudgetUSD)
	optimization := "LINK_CLICKS"
	if spec.IsSales() {
		optimization = "OFFSITE_CONVERSIONS"
	}
	targeting := map[string]any{
		"geo_locations": map[string]any{"countries": spec.Targeting.Countries},
		"age_min":       spec.Targeting.AgeMin,
		"age_max":       spec.Targeting.AgeMax,
	}
	if g := genders(spec.Targeting.Gender); g != nil {
		targeting["genders"] = g
	}

	for _, concept := range spec.Concepts {
		angle := domain.Truncate(concept.Angle, 30)

		var adSet idResponse
		err = c.post(ctx, "create_adset", account+"/adsets", map[string]any{
			"campaign_id":       campaign.ID,
			"name":              "AdSet_" + angle,
			"daily_budget":      budget,
			"billing_event":     "IMPRESSIONS",
			"optimization_goal": optimization,
			"bid_strategy":      "LOWEST_COST_WITHOUT_CAP",
			"targeting":         targeting,
			"status":            "ACTIVE",
		}, &adSet)
		if err != nil {
			return res, fmt.Errorf("create ad set %q: %w", angle, err)
		}
		res.AdSetIDs = append(res.AdSetIDs, adSet.ID)

		ad := map[string]any{
			"adset_id": adSet.ID,
			"name":     "Ad_" + angle,
			"status":   "ACTIVE",
		}
		if c.creds.PageID != "" {
			var hash string
			if concept.ImageB64 != "" {
				hash, err = c.uploadImage(ctx, concept.ImageB64)
				if err != nil {
					c.logger.WarnContext(ctx, "image upload failed", slog.String("angle", angle), slog.Any("error", err))
				}
			}
			creativeID, err := c.createCreative(ctx, "Creative_"+angle,
				concept.Headline+"\n\n"+concept.Body, spec.DestinationURL, hash)
			if err != nil {
				return res, fmt.Errorf("create creative %q: %w", angle, err)
			}
			ad["creative"] = map[string]string{"creative_id": creativeID}
		}

		var created idResponse
		if err = c.post(ctx, "create_ad", account+"/ads", ad, &created); err != nil {
			return res, fmt.Errorf("create ad %q: %w", angle, err)
		}
		res.AdIDs = append(res.AdIDs, created.ID)
	}
	return res, nil
}

func genders(g string) []int {
	switch g {
	case "1":
		return []int{1}
	case "2":
		return []int{2}
	default:
		return nil
	}
}

func (c *Client) uploadImage(ctx context.Context, b64 string) (string, error) {
	var resp struct {
		Images map[string]struct {
			Hash string `json:"hash"`
		} `json:"images"`
	}
	if err := c.post(ctx, "upload_image", c.creds.Account()+"/adimages", map[string]string{"bytes": b64}, &resp); err != nil {
		return "", err
	}
	for _, img := range resp.Images {
		if img.Hash != "" {
			return img.Hash, nil
		}
	}
	return "", &domain.UpstreamError{Vendor: Vendor, Message: "no image hash returned"}
}

func (c *Client) createCreative(ctx context.Context, name, message, link, imageHash string) (string, error) {
	linkData := map[string]any{
		"message": message,
		"link":    link,
		"call_to_action": map[string]any{
			"type":  "SHOP_NOW",
			"value": map[string]string{"link": link},
		},
	}
	if imageHash != "" {
		linkData["image_hash"] = imageHash
	}
	var creative idResponse
	err := c.post(ctx, "create_creative", c.creds.Account()+"/adcreatives", map[string]any{
		"name": name,
		"object_story_spec": map[string]any{
			"page_id":   c.creds.PageID,
			"link_data": linkData,
		},
	}, &creative)
	return creative.ID, err
}

// UploadCreative uploads the image, wraps it in a creative and adds a
// paused ad to the ad set.
func (c *Client) UploadCreative(ctx context.Context, up domain.CreativeUpload) (domain.CreativeResult, error) {
	if err := up.Validate(); err != nil {
		return domain.CreativeResult{}, err
	}
	if c.creds.PageID == "" {
		return domain.CreativeResult{}, domain.NewValidationError("missing Meta credentials (token, account, page)")
	}
	hash, err := c.uploadImage(ctx, up.ImageB64)
	if err != nil {
		return domain.CreativeResult{}, fmt.Errorf("upload image: %w", err)
	}
	suffix := uuid.NewString()[:8]
	creativeID, err := c.createCreative(ctx, "Creative_img_"+suffix, up.Headline, up.DestinationURL, hash)
	if err != nil {
		return domain.CreativeResult{}, fmt.Errorf("create creative: %w", err)
	}
	var ad idResponse
	err = c.post(ctx, "create_ad", c.creds.Account()+"/ads", map[string]any{
		"adset_id": up.AdSetID,
		"name":     "Ad_img_" + suffix,
		"creative": map[string]string{"creative_id": creativeID},
		"status":   string(domain.AdStatusPaused),
	}, &ad)
	if err != nil {
		return domain.CreativeResult{}, fmt.Errorf("create ad: %w", err)
	}
	return domain.CreativeResult{AdID: ad.ID, CreativeID: creativeID, ImageHash: hash}, nil
}

// Stats reads the last 7 days of every ad in the campaign.
func (c *Client) Stats(ctx context.Context, campaignID string) (domain.Stats, error) {
	if campaignID == "" {
		return domain.Stats{}, domain.NewValidationError("campaignId is required")
	}
	var resp struct {
		Data []adRecord `json:"data"`
	}
	err := c.get(ctx, "stats", campaignID+"/ads", url.Values{
		"fields": {"id,name,insights.date_preset(last_7d){" + insightFields + "}"},
	}, &resp)
	if err != nil {
		return domain.Stats{}, err
	}
	ads := make([]domain.AdStats, 0, len(resp.Data))
	for _, ad := range resp.Data {
		ads = append(ads, normalizeAd(ad))
	}
	return domain.NewStats(ads), nil
}

func (c *Client) ListAds(ctx context.Context, campaignID string) ([]domain.Ad, error) {
	filter, err := json.Marshal([]map[string]string{{
		"field": "campaign.id", "operator": "EQUAL", "value": campaignID,
	}})
	if err != nil {
		return nil, err
	}
	var resp struct {
		Data []adRecord `json:"data"`
	}
	err = c.get(ctx, "list_ads", c.creds.Account()+"/ads", url.Values{
		"fields":    {"id,name,status,adset_id"},
		"filtering": {string(filter)},
		"limit":     {strconv.Itoa(c.maxAds)},
	}, &resp)
	if err != nil {
		return nil, err
	}
	ads := make([]domain.Ad, 0, len(resp.Data))
	for _, a := range resp.Data {
		ads = append(ads, domain.Ad{ID: a.ID, Name: a.Name, Status: a.Status, AdSetID: a.AdSetID})
	}
	return ads, nil
}

// AdInsights reads the trailing window ending today.
func (c *Client) AdInsights(ctx context.Context, ad domain.Ad, days int) (domain.AdMetrics, error) {
	until := c.now().UTC()
	since := until.AddDate(0, 0, -days)
	window, err := json.Marshal(map[string]string{
		"since": since.Format(time.DateOnly),
		"until": until.Format(time.DateOnly),
	})
	if err != nil {
		return domain.AdMetrics{}, err
	}
	var page insightPage
	err = c.get(ctx, "ad_insights", ad.ID+"/insights", url.Values{
		"fields":     {insightFields},
		"time_range": {string(window)},
	}, &page)
	if err != nil {
		return domain.AdMetrics{}, err
	}
	return page.first().raw().Metrics(), nil
}

func (c *Client) SetAdStatus(ctx context.Context, ad domain.Ad, status domain.AdStatus) error {
	return c.post(ctx, "set_status", ad.ID, map[string]string{"status": string(status)}, nil)
}

// AdBudget reads the daily budget of the ad's ad set, looking the ad set up
// when the ad does not carry it.
func (c *Client) AdBudget(ctx context.Context, ad domain.Ad) (domain.Budget, error) {
	adSetID := ad.AdSetID
	if adSetID == "" {
		var rec adRecord
		if err := c.get(ctx, "get_ad", ad.ID, url.Values{"fields": {"adset_id"}}, &rec); err != nil {
			return domain.Budget{}, err
		}
		if rec.AdSetID == "" {
			return domain.Budget{}, &domain.UpstreamError{Vendor: Vendor, Message: "ad " + ad.ID + " has no ad set"}
		}
		adSetID = rec.AdSetID
	}
	var adSet struct {
		DailyBudget vendor.Number `json:"daily_budget"`
	}
	if err := c.get(ctx, "get_budget", adSetID, url.Values{"fields": {"daily_budget"}}, &adSet); err != nil {
		return domain.Budget{}, err
	}
	return domain.Budget{AdSetID: adSetID, Amount: adSet.DailyBudget.Int(), UnitsPerCurrency: unitsPerCurrency}, nil
}

func (c *Client) SetBudget(ctx context.Context, b domain.Budget) error {
	return c.post(ctx, "set_budget", b.AdSetID, map[string]int64{"daily_budget": b.Amount}, nil)
}
