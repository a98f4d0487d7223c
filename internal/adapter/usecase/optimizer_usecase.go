package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"andromeda-ads/internal/config/configs"
	"andromeda-ads/internal/core/domain"
	"andromeda-ads/internal/core/port"
	"andromeda-ads/internal/metrics"
	"andromeda-ads/internal/ratelimit"
)

// OptimizerUseCase evaluates threshold rules against live ad metrics and
// applies LLM optimisation plans.
type OptimizerUseCase struct {
	platforms port.PlatformFactory
	ai        port.AIFactory
	cfg       configs.Optimizer
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

var _ port.OptimizerUseCase = (*OptimizerUseCase)(nil)

func NewOptimizerUseCase(platforms port.PlatformFactory, ai port.AIFactory, cfg configs.Optimizer, m *metrics.Metrics, logger *slog.Logger) *OptimizerUseCase {
	if cfg.WindowDays <= 0 {
		cfg.WindowDays = 7
	}
	return &OptimizerUseCase{platforms: platforms, ai: ai, cfg: cfg, metrics: m, logger: logger}
}

// EvaluateRules runs one evaluation pass over the campaign's ads:
//
//  1. list the ads; any failure aborts the run
//  2. fetch every ad's trailing-window metrics concurrently; a failed fetch
//     reads as zero metrics unless the token expired, which aborts the run
//  3. for each ad in listing order, fire the first matching rule only
//
// Ads are processed sequentially behind a pacer. A failed mutation is
// recorded in that ad's result and the run continues.
func (u *OptimizerUseCase) EvaluateRules(ctx context.Context, p domain.Platform, creds domain.Credentials, campaignID string, rules []domain.Rule) (domain.EvaluationReport, error) {
	if strings.TrimSpace(campaignID) == "" {
		return domain.EvaluationReport{}, domain.NewValidationError("campaignId is required")
	}
	if err := domain.ValidateRules(rules); err != nil {
		return domain.EvaluationReport{}, err
	}
	plat, err := u.platforms.Platform(knownPlatform(p), creds)
	if err != nil {
		return domain.EvaluationReport{}, err
	}

	report := domain.EvaluationReport{RunID: uuid.NewString(), Applied: []domain.RuleResult{}}
	log := u.logger.With(
		slog.String("run_id", report.RunID),
		slog.String("platform", string(plat.Platform())),
		slog.String("campaign_id", campaignID),
	)

	ads, err := plat.ListAds(ctx, campaignID)
	if err != nil {
		return domain.EvaluationReport{}, fmt.Errorf("list ads: %w", err)
	}
	report.Total = len(ads)
	if len(ads) == 0 {
		report.Message = "no ads found in this campaign"
		return report, nil
	}

	stats, err := u.fetchMetrics(ctx, plat, ads, log)
	if err != nil {
		return domain.EvaluationReport{}, err
	}

	pacer := ratelimit.NewPacer(u.cfg.PaceInterval)
	for i, ad := range ads {
		if err = pacer.Wait(ctx); err != nil {
			return report, err
		}
		rule, value, ok := domain.FirstMatch(rules, stats[i])
		if !ok {
			continue
		}
		desc, err := u.applyRule(ctx, plat, ad, rule)
		outcome := metrics.OutcomeOK
		switch {
		case err != nil:
			outcome = metrics.OutcomeError
			if domain.IsAuthExpired(err) {
				outcome = metrics.OutcomeAuth
			}
			log.WarnContext(ctx, "rule action failed",
				slog.String("ad_id", ad.ID),
				slog.String("action", string(rule.Action)),
				slog.Any("error", err),
			)
			report.Applied = append(report.Applied, domain.RuleResult{
				AdID: ad.ID, AdName: ad.Name, Action: "error: " + err.Error(),
				Metric: rule.Metric, Value: value, Error: err.Error(),
			})
		case desc == "":
			outcome = metrics.OutcomeSkipped
			log.InfoContext(ctx, "budget action skipped, computed budget not positive", slog.String("ad_id", ad.ID))
		default:
			report.Applied = append(report.Applied, domain.RuleResult{
				AdID: ad.ID, AdName: ad.Name, Action: desc,
				Metric: rule.Metric, Value: value,
			})
		}
		u.metrics.ObserveRuleAction(string(plat.Platform()), string(rule.Action), outcome)
	}

	log.InfoContext(ctx, "rules evaluated",
		slog.Int("ads", report.Total),
		slog.Int("actions", len(report.Applied)),
	)
	return report, nil
}

// fetchMetrics returns metrics aligned with ads.
func (u *OptimizerUseCase) fetchMetrics(ctx context.Context, plat port.AdPlatform, ads []domain.Ad, log *slog.Logger) ([]domain.AdMetrics, error) {
	out := make([]domain.AdMetrics, len(ads))
	g, gctx := errgroup.WithContext(ctx)
	for i, ad := range ads {
		g.Go(func() error {
			m, err := plat.AdInsights(gctx, ad, u.cfg.WindowDays)
			if err != nil {
				if domain.IsAuthExpired(err) {
					return err
				}
				log.WarnContext(gctx, "insights unavailable, using zero metrics",
					slog.String("ad_id", ad.ID),
					slog.Any("error", err),
				)
				return nil
			}
			out[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fetch insights: %w", err)
	}
	return out, nil
}

// applyRule performs the rule's action. An empty description with a nil
// error means the budget change was not applied.
func (u *OptimizerUseCase) applyRule(ctx context.Context, plat port.AdPlatform, ad domain.Ad, rule domain.Rule) (string, error) {
	switch rule.Action {
	case domain.ActionPause:
		return "paused", plat.SetAdStatus(ctx, ad, domain.AdStatusPaused)
	case domain.ActionActivate:
		return "activated", plat.SetAdStatus(ctx, ad, domain.AdStatusActive)
	case domain.ActionScaleBudget, domain.ActionReduceBudget:
		current, err := plat.AdBudget(ctx, ad)
		if err != nil {
			return "", err
		}
		next, ok := rule.NewBudget(current.Amount)
		if !ok {
			return "", nil
		}
		updated := current
		updated.Amount = next
		if err = plat.SetBudget(ctx, updated); err != nil {
			return "", err
		}
		return fmt.Sprintf("budget $%.2f → $%.2f/day", current.Currency(current.Amount), current.Currency(next)), nil
	default:
		return "", domain.NewValidationError("unknown action %q", rule.Action)
	}
}

// Analyze asks the model for an optimisation plan.
func (u *OptimizerUseCase) Analyze(ctx context.Context, creds domain.Credentials, stats domain.Stats, briefing *domain.Briefing) (domain.OptimizationPlan, error) {
	provider, err := u.ai.Provider(creds)
	if err != nil {
		return domain.OptimizationPlan{}, err
	}
	var plan domain.OptimizationPlan
	if err = completeJSON(ctx, provider, analysisPrompt(stats, briefing), analysisMaxTokens, &plan); err != nil {
		return domain.OptimizationPlan{}, fmt.Errorf("analyze performance: %w", err)
	}
	if plan.Pause == nil {
		plan.Pause = []string{}
	}
	if plan.Scale == nil {
		plan.Scale = []domain.BudgetScale{}
	}
	return plan, nil
}

// Apply pauses and rescales the ads named by the plan. Each failure is
// collected and the remaining items still run.
func (u *OptimizerUseCase) Apply(ctx context.Context, p domain.Platform, creds domain.Credentials, plan domain.OptimizationPlan) (domain.ApplyReport, error) {
	plat, err := u.platforms.Platform(knownPlatform(p), creds)
	if err != nil {
		return domain.ApplyReport{}, err
	}
	report := domain.ApplyReport{Applied: true, Errors: []string{}}

	for _, id := range plan.Pause {
		if err := plat.SetAdStatus(ctx, domain.Ad{ID: id}, domain.AdStatusPaused); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("pause %s: %v", id, err))
		}
	}
	for _, s := range plan.Scale {
		if err := u.setBudget(ctx, plat, s); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("scale %s: %v", s.AdID, err))
		}
	}
	u.logger.InfoContext(ctx, "optimisations applied",
		slog.String("platform", string(plat.Platform())),
		slog.Int("paused", len(plan.Pause)),
		slog.Int("scaled", len(plan.Scale)),
		slog.Int("errors", len(report.Errors)),
	)
	return report, nil
}

func (u *OptimizerUseCase) setBudget(ctx context.Context, plat port.AdPlatform, s domain.BudgetScale) error {
	if s.NewBudget <= 0 {
		return domain.NewValidationError("newBudget must be positive")
	}
	b, err := plat.AdBudget(ctx, domain.Ad{ID: s.AdID})
	if err != nil {
		return err
	}
	b.Amount = b.FromCurrency(s.NewBudget)
	return plat.SetBudget(ctx, b)
}
