package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"andromeda-ads/internal/config/configs"
	"andromeda-ads/internal/core/domain"
	"andromeda-ads/internal/core/port/mocks"
	"andromeda-ads/internal/metrics"
)

var metaCreds = domain.Credentials{Meta: domain.MetaCredentials{Token: "t", AccountID: "1"}}

func newOptimizer(t *testing.T, plat *mocks.MockAdPlatform, pace time.Duration) *OptimizerUseCase {
	t.Helper()
	factory := mocks.NewMockPlatformFactory(t)
	factory.EXPECT().Platform(domain.PlatformMeta, metaCreds).Return(plat, nil).Maybe()
	plat.EXPECT().Platform().Return(domain.PlatformMeta).Maybe()
	cfg := configs.Optimizer{PaceInterval: pace, WindowDays: 7}
	return NewOptimizerUseCase(factory, mocks.NewMockAIFactory(t), cfg, metrics.New(), discardLogger())
}

func TestEvaluateRulesFirstMatchWins(t *testing.T) {
	plat := mocks.NewMockAdPlatform(t)
	ad := domain.Ad{ID: "a1", Name: "Ad_FOMO", AdSetID: "s1"}
	plat.EXPECT().ListAds(mock.Anything, "c1").Return([]domain.Ad{ad}, nil)
	plat.EXPECT().AdInsights(mock.Anything, ad, 7).Return(domain.AdMetrics{CTR: 0.3, ROAS: 2.0}, nil)
	plat.EXPECT().SetAdStatus(mock.Anything, ad, domain.AdStatusPaused).Return(nil).Once()

	rules := []domain.Rule{
		{Metric: domain.MetricCTR, Operator: domain.OpLess, Threshold: 0.5, Action: domain.ActionPause},
		{Metric: domain.MetricROAS, Operator: domain.OpGreater, Threshold: 1.5, Action: domain.ActionScaleBudget, ActionValue: 50},
	}
	report, err := newOptimizer(t, plat, 0).EvaluateRules(context.Background(), domain.PlatformMeta, metaCreds, "c1", rules)
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 1, report.Total)
	require.Len(t, report.Applied, 1)
	assert.Equal(t, domain.RuleResult{AdID: "a1", AdName: "Ad_FOMO", Action: "paused", Metric: "ctr", Value: 0.3}, report.Applied[0])
	plat.AssertNotCalled(t, "AdBudget", mock.Anything, mock.Anything)
}

func TestEvaluateRulesBudget(t *testing.T) {
	tests := []struct {
		name       string
		action     domain.Action
		pct        float64
		wantAmount int64
		wantDesc   string
	}{
		{"scale", domain.ActionScaleBudget, 50, 1500, "budget $10.00 → $15.00/day"},
		{"reduce", domain.ActionReduceBudget, 50, 500, "budget $10.00 → $5.00/day"},
		{"default percent", domain.ActionScaleBudget, 0, 1500, "budget $10.00 → $15.00/day"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plat := mocks.NewMockAdPlatform(t)
			ad := domain.Ad{ID: "a1", Name: "n", AdSetID: "s1"}
			current := domain.Budget{AdSetID: "s1", Amount: 1000, UnitsPerCurrency: 100}
			plat.EXPECT().ListAds(mock.Anything, "c1").Return([]domain.Ad{ad}, nil)
			plat.EXPECT().AdInsights(mock.Anything, ad, 7).Return(domain.AdMetrics{ROAS: 3}, nil)
			plat.EXPECT().AdBudget(mock.Anything, ad).Return(current, nil)
			plat.EXPECT().SetBudget(mock.Anything, domain.Budget{AdSetID: "s1", Amount: tt.wantAmount, UnitsPerCurrency: 100}).Return(nil)

			rules := []domain.Rule{{Metric: "roas", Operator: domain.OpGreaterEqual, Threshold: 1, Action: tt.action, ActionValue: tt.pct}}
			report, err := newOptimizer(t, plat, 0).EvaluateRules(context.Background(), domain.PlatformMeta, metaCreds, "c1", rules)
			require.NoError(t, err)
			require.Len(t, report.Applied, 1)
			assert.Equal(t, tt.wantDesc, report.Applied[0].Action)
		})
	}
}

func TestEvaluateRulesNonPositiveBudgetNotApplied(t *testing.T) {
	plat := mocks.NewMockAdPlatform(t)
	ad := domain.Ad{ID: "a1", AdSetID: "s1"}
	plat.EXPECT().ListAds(mock.Anything, "c1").Return([]domain.Ad{ad}, nil)
	plat.EXPECT().AdInsights(mock.Anything, ad, 7).Return(domain.AdMetrics{Spend: 40}, nil)
	plat.EXPECT().AdBudget(mock.Anything, ad).Return(domain.Budget{AdSetID: "s1", Amount: 1000, UnitsPerCurrency: 100}, nil)

	rules := []domain.Rule{{Metric: "spend", Operator: domain.OpGreater, Threshold: 10, Action: domain.ActionReduceBudget, ActionValue: 100}}
	report, err := newOptimizer(t, plat, 0).EvaluateRules(context.Background(), domain.PlatformMeta, metaCreds, "c1", rules)
	require.NoError(t, err)
	assert.Empty(t, report.Applied)
	assert.Equal(t, 1, report.Total)
	plat.AssertNotCalled(t, "SetBudget", mock.Anything, mock.Anything)
}

func TestEvaluateRulesIsolatesMutationFailures(t *testing.T) {
	plat := mocks.NewMockAdPlatform(t)
	a1 := domain.Ad{ID: "a1", Name: "one"}
	a2 := domain.Ad{ID: "a2", Name: "two"}
	a3 := domain.Ad{ID: "a3", Name: "three"}
	plat.EXPECT().ListAds(mock.Anything, "c1").Return([]domain.Ad{a1, a2, a3}, nil)
	plat.EXPECT().AdInsights(mock.Anything, a1, 7).Return(domain.AdMetrics{CTR: 0.1}, nil)
	plat.EXPECT().AdInsights(mock.Anything, a2, 7).Return(domain.AdMetrics{CTR: 0.2}, nil)
	plat.EXPECT().AdInsights(mock.Anything, a3, 7).Return(domain.AdMetrics{CTR: 3}, nil)
	plat.EXPECT().SetAdStatus(mock.Anything, a1, domain.AdStatusPaused).
		Return(&domain.UpstreamError{Vendor: "Meta", Code: 100, Message: "ad is archived"})
	plat.EXPECT().SetAdStatus(mock.Anything, a2, domain.AdStatusPaused).Return(nil)

	rules := []domain.Rule{{Metric: "ctr", Operator: domain.OpLess, Threshold: 0.5, Action: domain.ActionPause}}
	report, err := newOptimizer(t, plat, 0).EvaluateRules(context.Background(), domain.PlatformMeta, metaCreds, "c1", rules)
	require.NoError(t, err)
	require.Len(t, report.Applied, 2)
	assert.Equal(t, "error: Meta [100]: ad is archived", report.Applied[0].Action)
	assert.Equal(t, "Meta [100]: ad is archived", report.Applied[0].Error)
	assert.Equal(t, "paused", report.Applied[1].Action)
	assert.Equal(t, 3, report.Total)
}

func TestEvaluateRulesInsightFailures(t *testing.T) {
	t.Run("zero metrics on vendor error", func(t *testing.T) {
		plat := mocks.NewMockAdPlatform(t)
		ad := domain.Ad{ID: "a1"}
		plat.EXPECT().ListAds(mock.Anything, "c1").Return([]domain.Ad{ad}, nil)
		plat.EXPECT().AdInsights(mock.Anything, ad, 7).Return(domain.AdMetrics{}, errors.New("timeout"))
		plat.EXPECT().SetAdStatus(mock.Anything, ad, domain.AdStatusPaused).Return(nil)

		rules := []domain.Rule{{Metric: "impressions", Operator: domain.OpLessEqual, Threshold: 0, Action: domain.ActionPause}}
		report, err := newOptimizer(t, plat, 0).EvaluateRules(context.Background(), domain.PlatformMeta, metaCreds, "c1", rules)
		require.NoError(t, err)
		assert.Len(t, report.Applied, 1)
	})

	t.Run("expired token aborts", func(t *testing.T) {
		plat := mocks.NewMockAdPlatform(t)
		ad := domain.Ad{ID: "a1"}
		plat.EXPECT().ListAds(mock.Anything, "c1").Return([]domain.Ad{ad}, nil)
		plat.EXPECT().AdInsights(mock.Anything, ad, 7).
			Return(domain.AdMetrics{}, &domain.UpstreamError{Vendor: "Meta", Code: 190, Err: domain.ErrAuthExpired})

		rules := []domain.Rule{{Metric: "ctr", Operator: domain.OpLess, Threshold: 1, Action: domain.ActionPause}}
		_, err := newOptimizer(t, plat, 0).EvaluateRules(context.Background(), domain.PlatformMeta, metaCreds, "c1", rules)
		assert.True(t, domain.IsAuthExpired(err))
	})
}

func TestEvaluateRulesListFailureAborts(t *testing.T) {
	plat := mocks.NewMockAdPlatform(t)
	plat.EXPECT().ListAds(mock.Anything, "c1").
		Return(nil, &domain.UpstreamError{Vendor: "Meta", Code: 190, Err: domain.ErrAuthExpired})

	rules := []domain.Rule{{Metric: "ctr", Operator: domain.OpLess, Threshold: 1, Action: domain.ActionPause}}
	_, err := newOptimizer(t, plat, 0).EvaluateRules(context.Background(), domain.PlatformMeta, metaCreds, "c1", rules)
	assert.True(t, domain.IsAuthExpired(err))
}

func TestEvaluateRulesNoAds(t *testing.T) {
	plat := mocks.NewMockAdPlatform(t)
	plat.EXPECT().ListAds(mock.Anything, "c1").Return(nil, nil)

	rules := []domain.Rule{{Metric: "ctr", Operator: domain.OpLess, Threshold: 1, Action: domain.ActionPause}}
	report, err := newOptimizer(t, plat, 0).EvaluateRules(context.Background(), domain.PlatformMeta, metaCreds, "c1", rules)
	require.NoError(t, err)
	assert.Empty(t, report.Applied)
	assert.NotNil(t, report.Applied)
	assert.NotEmpty(t, report.Message)
}

func TestEvaluateRulesValidation(t *testing.T) {
	u := newOptimizer(t, mocks.NewMockAdPlatform(t), 0)
	var ve *domain.ValidationError

	_, err := u.EvaluateRules(context.Background(), domain.PlatformMeta, metaCreds, "", []domain.Rule{{Metric: "ctr", Operator: "<", Action: "pause"}})
	assert.True(t, errors.As(err, &ve))

	_, err = u.EvaluateRules(context.Background(), domain.PlatformMeta, metaCreds, "c1", []domain.Rule{{Metric: "ctr", Operator: "!=", Action: "pause"}})
	assert.True(t, errors.As(err, &ve))
}

func TestEvaluateRulesPacesEveryAd(t *testing.T) {
	plat := mocks.NewMockAdPlatform(t)
	ads := []domain.Ad{{ID: "a1"}, {ID: "a2"}, {ID: "a3"}}
	plat.EXPECT().ListAds(mock.Anything, "c1").Return(ads, nil)
	plat.EXPECT().AdInsights(mock.Anything, mock.Anything, 7).Return(domain.AdMetrics{CTR: 5}, nil)

	// No rule matches, pacing still applies between ads.
	rules := []domain.Rule{{Metric: "ctr", Operator: domain.OpLess, Threshold: 1, Action: domain.ActionPause}}
	start := time.Now()
	report, err := newOptimizer(t, plat, 30*time.Millisecond).EvaluateRules(context.Background(), domain.PlatformMeta, metaCreds, "c1", rules)
	require.NoError(t, err)
	assert.Empty(t, report.Applied)
	assert.GreaterOrEqual(t, time.Since(start), 55*time.Millisecond)
}

func TestApplyPlan(t *testing.T) {
	plat := mocks.NewMockAdPlatform(t)
	plat.EXPECT().SetAdStatus(mock.Anything, domain.Ad{ID: "p1"}, domain.AdStatusPaused).Return(nil)
	plat.EXPECT().SetAdStatus(mock.Anything, domain.Ad{ID: "p2"}, domain.AdStatusPaused).Return(errors.New("boom"))
	plat.EXPECT().AdBudget(mock.Anything, domain.Ad{ID: "s1"}).
		Return(domain.Budget{AdSetID: "set", Amount: 500, UnitsPerCurrency: 100}, nil)
	plat.EXPECT().SetBudget(mock.Anything, domain.Budget{AdSetID: "set", Amount: 1000, UnitsPerCurrency: 100}).Return(nil)

	plan := domain.OptimizationPlan{
		Pause: []string{"p1", "p2"},
		Scale: []domain.BudgetScale{{AdID: "s1", NewBudget: 10}, {AdID: "s2", NewBudget: 0}},
	}
	report, err := newOptimizer(t, plat, 0).Apply(context.Background(), domain.PlatformMeta, metaCreds, plan)
	require.NoError(t, err)
	assert.True(t, report.Applied)
	assert.Equal(t, []string{"pause p2: boom", "scale s2: newBudget must be positive"}, report.Errors)
}

func TestAnalyzePlan(t *testing.T) {
	provider := mocks.NewMockLLMProvider(t)
	provider.EXPECT().Name().Return(domain.ProviderOpenAI).Maybe()
	provider.EXPECT().Complete(mock.Anything, mock.MatchedBy(func(r domain.ChatRequest) bool {
		return r.JSONObject && r.MaxTokens == analysisMaxTokens
	})).Return(domain.Completion{Text: `{"insights":"ok","pause":["1"],"winnerAngle":"FOMO"}`}, nil)
	ai := mocks.NewMockAIFactory(t)
	ai.EXPECT().Provider(metaCreds).Return(provider, nil)

	u := NewOptimizerUseCase(mocks.NewMockPlatformFactory(t), ai, configs.Optimizer{}, nil, discardLogger())
	plan, err := u.Analyze(context.Background(), metaCreds, domain.NewStats(nil), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, plan.Pause)
	assert.NotNil(t, plan.Scale)
	assert.Equal(t, "FOMO", plan.WinnerAngle)
}
