package domain

import "fmt"

// Operator compares a metric value with a rule threshold.
type Operator string

const (
	OpGreater      Operator = ">"
	OpLess         Operator = "<"
	OpGreaterEqual Operator = ">="
	OpLessEqual    Operator = "<="
)

// Compare applies the operator. Unknown operators never match.
func (o Operator) Compare(value, threshold float64) bool {
	switch o {
	case OpGreater:
		return value > threshold
	case OpLess:
		return value < threshold
	case OpGreaterEqual:
		return value >= threshold
	case OpLessEqual:
		return value <= threshold
	default:
		return false
	}
}

// Action is the mutation a matching rule performs on an ad.
type Action string

const (
	ActionPause        Action = "pause"
	ActionActivate     Action = "activate"
	ActionScaleBudget  Action = "scale_budget"
	ActionReduceBudget Action = "reduce_budget"
)

// DefaultBudgetPercent applies when a budget rule has no action value.
const DefaultBudgetPercent = 50

// Rule is a threshold test plus the action to run when it holds.
type Rule struct {
	Metric      string   `json:"metric" yaml:"metric"`
	Operator    Operator `json:"operator" yaml:"operator"`
	Threshold   float64  `json:"threshold" yaml:"threshold"`
	Action      Action   `json:"action" yaml:"action"`
	ActionValue float64  `json:"actionValue,omitempty" yaml:"actionValue,omitempty"`
}

// Validate rejects rules with an unknown operator or action.
func (r Rule) Validate() error {
	switch r.Operator {
	case OpGreater, OpLess, OpGreaterEqual, OpLessEqual:
	default:
		return NewValidationError("unknown operator %q", r.Operator)
	}
	switch r.Action {
	case ActionPause, ActionActivate, ActionScaleBudget, ActionReduceBudget:
	default:
		return NewValidationError("unknown action %q", r.Action)
	}
	if r.Metric == "" {
		return NewValidationError("rule metric is required")
	}
	return nil
}

// Matches reports whether the rule holds for m, with the metric value read.
func (r Rule) Matches(m AdMetrics) (float64, bool) {
	v := m.Value(r.Metric)
	return v, r.Operator.Compare(v, r.Threshold)
}

// IsBudget reports whether the action mutates the ad set budget.
func (r Rule) IsBudget() bool {
	return r.Action == ActionScaleBudget || r.Action == ActionReduceBudget
}

// Percent is the budget change in percent, defaulting to DefaultBudgetPercent.
func (r Rule) Percent() float64 {
	if r.ActionValue == 0 {
		return DefaultBudgetPercent
	}
	return r.ActionValue
}

// NewBudget computes the scaled or reduced budget from current, rounded to
// native units. ok is false when the result is not positive and must not
// be applied.
func (r Rule) NewBudget(current int64) (next int64, ok bool) {
	pct := r.Percent() / 100
	switch r.Action {
	case ActionScaleBudget:
		next = roundInt(float64(current) * (1 + pct))
	case ActionReduceBudget:
		next = roundInt(float64(current) * (1 - pct))
	default:
		return current, false
	}
	return next, next > 0
}

// FirstMatch returns the first rule in order that holds for m. Later rules
// are not evaluated.
func FirstMatch(rules []Rule, m AdMetrics) (Rule, float64, bool) {
	for _, r := range rules {
		if v, ok := r.Matches(m); ok {
			return r, v, true
		}
	}
	return Rule{}, 0, false
}

// ValidateRules checks a non-empty rule list.
func ValidateRules(rules []Rule) error {
	if len(rules) == 0 {
		return NewValidationError("at least one rule is required")
	}
	for i, r := range rules {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("rule %d: %w", i, err)
		}
	}
	return nil
}

// RuleResult records one ad whose matching rule was attempted.
type RuleResult struct {
	AdID   string  `json:"adId"`
	AdName string  `json:"adName"`
	Action string  `json:"action"`
	Metric string  `json:"metric"`
	Value  float64 `json:"value"`
	Error  string  `json:"error,omitempty"`
}

// EvaluationReport is the output of a rule evaluation run.
type EvaluationReport struct {
	RunID   string       `json:"runId"`
	Applied []RuleResult `json:"applied"`
	Total   int          `json:"total"`
	Message string       `json:"message,omitempty"`
}

// OptimizationPlan is an LLM proposal of ads to pause and budgets to set.
type OptimizationPlan struct {
	Insights    string        `json:"insights"`
	Pause       []string      `json:"pause"`
	Scale       []BudgetScale `json:"scale"`
	CopyTweaks  string        `json:"copyTweaks"`
	WinnerAngle string        `json:"winnerAngle"`
}

// BudgetScale sets an ad's ad set budget in currency units.
type BudgetScale struct {
	AdID      string  `json:"adId"`
	NewBudget float64 `json:"newBudget"`
}

// ApplyReport lists per-item failures of ApplyOptimizations.
type ApplyReport struct {
	Applied bool     `json:"applied"`
	Errors  []string `json:"errors"`
}
