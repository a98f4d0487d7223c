package port

import (
	"context"

	"andromeda-ads/internal/core/domain"
)

// CopyUseCase groups the LLM driven copywriting operations. Every call
// selects its provider from the supplied credentials.
type CopyUseCase interface {
	// AnalyzeProduct derives a briefing from a single product.
	AnalyzeProduct(ctx context.Context, creds domain.Credentials, product domain.Product) (domain.Briefing, error)

	// GenerateConcepts returns exactly domain.ConceptSetSize concepts with
	// distinct angles, or an error.
	GenerateConcepts(ctx context.Context, creds domain.Credentials, briefing domain.Briefing) ([]domain.Concept, error)

	// Chat runs one assistant turn. Tool uses are returned for the caller
	// to apply; the service never mutates state itself.
	Chat(ctx context.Context, creds domain.Credentials, req ChatTurn) (domain.ToolCompletion, error)

	// GenerateCreative returns a base64 encoded ad image.
	GenerateCreative(ctx context.Context, creds domain.Credentials, req domain.CreativeRequest) (string, error)
}

// ChatTurn is the conversation plus the session context the assistant sees.
type ChatTurn struct {
	Messages []domain.Message     `json:"messages"`
	Briefing *domain.Briefing     `json:"briefing"`
	Concepts []domain.Concept     `json:"concepts"`
	Campaign domain.CampaignDraft `json:"campaign"`
}

// CatalogUseCase reads storefront data.
type CatalogUseCase interface {
	ListProducts(ctx context.Context, creds domain.ShopifyCredentials, pageInfo string) (domain.ProductPage, error)
	Product(ctx context.Context, creds domain.ShopifyCredentials, id string) (domain.Product, error)
	// AnalyzeStore derives a brand profile from the whole store.
	AnalyzeStore(ctx context.Context, creds domain.Credentials) (domain.StoreAnalysis, error)
}

// CampaignUseCase launches campaigns and reads their stats on any platform.
type CampaignUseCase interface {
	Validate(ctx context.Context, p domain.Platform, creds domain.Credentials) (domain.AccountInfo, error)
	Launch(ctx context.Context, p domain.Platform, creds domain.Credentials, spec domain.CampaignSpec) (domain.LaunchResult, error)
	UploadCreative(ctx context.Context, creds domain.Credentials, upload domain.CreativeUpload) (domain.CreativeResult, error)

	// UploadPending uploads the images of selected concepts to the campaign's
	// ad sets, pairing them in order. Per-item failures are counted, not
	// returned.
	UploadPending(ctx context.Context, creds domain.Credentials, campaign domain.Campaign, concepts []domain.Concept) (domain.UploadReport, error)

	Stats(ctx context.Context, p domain.Platform, creds domain.Credentials, campaignID string) (domain.Stats, error)
}

// OptimizerUseCase evaluates rules against live metrics and applies LLM
// optimisation plans.
type OptimizerUseCase interface {
	// EvaluateRules applies the first matching rule to each ad of the
	// campaign. Per-ad failures are recorded in the report.
	EvaluateRules(ctx context.Context, p domain.Platform, creds domain.Credentials, campaignID string, rules []domain.Rule) (domain.EvaluationReport, error)

	// Analyze asks the LLM for an optimisation plan for the given stats.
	Analyze(ctx context.Context, creds domain.Credentials, stats domain.Stats, briefing *domain.Briefing) (domain.OptimizationPlan, error)

	// Apply executes the pause and scale lists of a plan.
	Apply(ctx context.Context, p domain.Platform, creds domain.Credentials, plan domain.OptimizationPlan) (domain.ApplyReport, error)
}
