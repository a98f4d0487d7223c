package domain

import "math"

// Metric names a rule can test.
const (
	MetricSpend       = "spend"
	MetricImpressions = "impressions"
	MetricClicks      = "clicks"
	MetricCTR         = "ctr"
	MetricCPM         = "cpm"
	MetricConversions = "conversions"
	MetricROAS        = "roas"
)

// AdMetrics is the normalized trailing-window view of an ad's performance.
// CTR is a percentage, CPM and Spend are in account currency.
type AdMetrics struct {
	Spend       float64 `json:"spend"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	CTR         float64 `json:"ctr"`
	CPM         float64 `json:"cpm"`
	Conversions int64   `json:"conversions"`
	ROAS        float64 `json:"roas"`
}

// Value returns the named metric. Unknown names read as 0.
func (m AdMetrics) Value(metric string) float64 {
	switch metric {
	case MetricSpend:
		return m.Spend
	case MetricImpressions:
		return float64(m.Impressions)
	case MetricClicks:
		return float64(m.Clicks)
	case MetricCTR:
		return m.CTR
	case MetricCPM:
		return m.CPM
	case MetricConversions:
		return float64(m.Conversions)
	case MetricROAS:
		return m.ROAS
	default:
		return 0
	}
}

// RawMetrics is what a vendor normalizer extracts from an insight record,
// after the vendor's conversion and revenue taxonomy has been mapped.
type RawMetrics struct {
	Spend       float64
	Impressions int64
	Clicks      int64
	CTR         float64
	CPM         float64
	Conversions int64
	Revenue     float64
}

// Metrics derives AdMetrics, computing ROAS from revenue and spend.
func (r RawMetrics) Metrics() AdMetrics {
	return AdMetrics{
		Spend:       finite(r.Spend),
		Impressions: r.Impressions,
		Clicks:      r.Clicks,
		CTR:         finite(r.CTR),
		CPM:         finite(r.CPM),
		Conversions: r.Conversions,
		ROAS:        ComputeROAS(r.Revenue, r.Spend),
	}
}

// ComputeROAS returns revenue/spend when both are positive and finite,
// otherwise exactly 0.
func ComputeROAS(revenue, spend float64) float64 {
	if !(spend > 0) || !(revenue > 0) || math.IsInf(spend, 0) || math.IsInf(revenue, 0) {
		return 0
	}
	return finite(revenue / spend)
}

// AdStats is one row of the per-ad stats table.
type AdStats struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	AdMetrics
}

// NewAdStats builds a stats row with derived values rounded to cents.
func NewAdStats(id, name string, raw RawMetrics) AdStats {
	m := raw.Metrics()
	m.Spend = Round2(m.Spend)
	m.CTR = Round2(m.CTR)
	m.CPM = Round2(m.CPM)
	m.ROAS = Round2(m.ROAS)
	return AdStats{ID: id, Name: name, AdMetrics: m}
}

// Summary aggregates a campaign's ads.
type Summary struct {
	Spend       float64 `json:"spend"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	CTR         float64 `json:"ctr"`
	CPM         float64 `json:"cpm"`
	Conversions int64   `json:"conversions"`
}

// Stats is the common stats shape returned for every platform.
type Stats struct {
	Summary Summary   `json:"summary"`
	Ads     []AdStats `json:"ads"`
}

// NewStats summarises ads into a Stats value. A nil slice is reported as
// an empty list.
func NewStats(ads []AdStats) Stats {
	if ads == nil {
		ads = []AdStats{}
	}
	return Stats{Summary: Summarize(ads), Ads: ads}
}

// Summarize sums spend, impressions, clicks and conversions and derives
// CTR (%) and CPM from the totals. Both are 0 when there are no impressions.
func Summarize(ads []AdStats) Summary {
	var s Summary
	for _, a := range ads {
		s.Spend += a.Spend
		s.Impressions += a.Impressions
		s.Clicks += a.Clicks
		s.Conversions += a.Conversions
	}
	s.Spend = Round2(s.Spend)
	if s.Impressions > 0 {
		s.CTR = Round2(float64(s.Clicks) / float64(s.Impressions) * 100)
		s.CPM = Round2(s.Spend / float64(s.Impressions) * 1000)
	}
	return s
}

// Round2 rounds to two decimals.
func Round2(v float64) float64 {
	return math.Round(finite(v)*100) / 100
}

func roundInt(v float64) int64 {
	return int64(math.Round(finite(v)))
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
