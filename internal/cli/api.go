package cli

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	httpadapter "andromeda-ads/internal/adapter/http"
	"andromeda-ads/internal/adapter/vendor"
	"andromeda-ads/internal/config/configs"
	"andromeda-ads/internal/core/domain"
)

// apiClient calls the andromeda HTTP API with the configured credentials.
type apiClient struct {
	http    *vendor.Client
	baseURL string
	creds   domain.Credentials
}

func newAPIClient(cfg configs.Client, logger *slog.Logger) *apiClient {
	return &apiClient{
		http:    vendor.NewClient("andromeda", cfg.Timeout, vendor.WithErrorDecoder(decodeAPIError), vendor.WithLogger(logger)),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		creds:   cfg.Credentials(),
	}
}

// decodeAPIError restores the error class the server mapped to a status.
func decodeAPIError(status int, body []byte) error {
	var resp httpadapter.ErrorResponse
	_ = json.Unmarshal(body, &resp)
	if resp.Error == "" {
		resp.Error = http.StatusText(status)
	}
	switch {
	case status == http.StatusUnauthorized || resp.TokenExpired:
		return &domain.UpstreamError{Vendor: "andromeda", Status: status, Message: resp.Error, Err: domain.ErrAuthExpired}
	case status == http.StatusBadRequest:
		return &domain.ValidationError{Message: resp.Error}
	default:
		return &domain.UpstreamError{Vendor: "andromeda", Status: status, Message: resp.Error}
	}
}

func (c *apiClient) call(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	header := http.Header{}
	httpadapter.SetCredentials(header, c.creds)
	_, err := c.http.Do(ctx, vendor.Request{
		Operation: op,
		Method:    method,
		URL:       c.baseURL + path,
		Query:     query,
		Header:    header,
		Body:      body,
	}, out)
	return err
}

func (c *apiClient) Briefing(ctx context.Context, p domain.Product) (domain.Briefing, error) {
	var b domain.Briefing
	err := c.call(ctx, "briefing", http.MethodPost, "/ai/briefing", nil, httpadapter.BriefingRequest{Product: p}, &b)
	return b, err
}

func (c *apiClient) Product(ctx context.Context, id string) (domain.Product, error) {
	var p domain.Product
	err := c.call(ctx, "product", http.MethodPost, "/shopify/product", nil, httpadapter.ProductRequest{ProductID: json.Number(id)}, &p)
	return p, err
}

func (c *apiClient) Concepts(ctx context.Context, b domain.Briefing) ([]domain.Concept, error) {
	var resp httpadapter.ConceptsResponse
	err := c.call(ctx, "concepts", http.MethodPost, "/ai/concepts", nil, httpadapter.ConceptsRequest{Briefing: b}, &resp)
	return resp.Concepts, err
}

func (c *apiClient) Chat(ctx context.Context, req httpadapter.ChatRequest) (domain.ToolCompletion, error) {
	var resp domain.ToolCompletion
	err := c.call(ctx, "chat", http.MethodPost, "/ai/chat", nil, req, &resp)
	return resp, err
}

func (c *apiClient) Creative(ctx context.Context, req domain.CreativeRequest) (string, error) {
	var resp httpadapter.CreativeResponse
	err := c.call(ctx, "creative", http.MethodPost, "/ai/creative", nil, req, &resp)
	return resp.B64, err
}

func (c *apiClient) Launch(ctx context.Context, p domain.Platform, spec domain.CampaignSpec) (domain.LaunchResult, error) {
	var res domain.LaunchResult
	err := c.call(ctx, "launch", http.MethodPost, "/platforms/"+string(p)+"/campaigns", nil, spec, &res)
	return res, err
}

func (c *apiClient) UploadCreative(ctx context.Context, upload domain.CreativeUpload) (domain.CreativeResult, error) {
	var res domain.CreativeResult
	err := c.call(ctx, "upload creative", http.MethodPost, "/platforms/meta/creatives", nil, upload, &res)
	return res, err
}

func (c *apiClient) Stats(ctx context.Context, p domain.Platform, campaignID string) (domain.Stats, error) {
	var stats domain.Stats
	q := url.Values{"platform": {string(p)}, "campaignId": {campaignID}}
	err := c.call(ctx, "stats", http.MethodGet, "/stats", q, nil, &stats)
	return stats, err
}

func (c *apiClient) EvaluateRules(ctx context.Context, p domain.Platform, campaignID string, rules []domain.Rule) (domain.EvaluationReport, error) {
	var report domain.EvaluationReport
	req := httpadapter.RulesRequest{CampaignID: campaignID, Rules: rules}
	err := c.call(ctx, "rules", http.MethodPost, "/platforms/"+string(p)+"/rules", nil, req, &report)
	return report, err
}

func (c *apiClient) Analyze(ctx context.Context, stats domain.Stats, b *domain.Briefing) (domain.OptimizationPlan, error) {
	var plan domain.OptimizationPlan
	err := c.call(ctx, "analysis", http.MethodPost, "/ai/analysis", nil, httpadapter.AnalysisRequest{Stats: &stats, Briefing: b}, &plan)
	return plan, err
}

func (c *apiClient) Apply(ctx context.Context, p domain.Platform, plan domain.OptimizationPlan) (domain.ApplyReport, error) {
	var report domain.ApplyReport
	err := c.call(ctx, "apply", http.MethodPatch, "/platforms/"+string(p)+"/optimizations", nil, plan, &report)
	return report, err
}

func (c *apiClient) UploadPending(ctx context.Context, campaign domain.Campaign, concepts []domain.Concept) (domain.UploadReport, error) {
	var report domain.UploadReport
	req := httpadapter.PendingUploadRequest{Campaign: campaign, Concepts: concepts}
	err := c.call(ctx, "upload pending", http.MethodPost, "/platforms/meta/creatives/pending", nil, req, &report)
	return report, err
}
