package meta

import (
	"andromeda-ads/internal/adapter/vendor"
	"andromeda-ads/internal/core/domain"
)

// insightFields are requested from every insights edge.
const insightFields = "spend,impressions,clicks,ctr,cpm,actions,action_values"

// Action types counted as conversions, and those whose value is revenue.
var (
	conversionActions = map[string]bool{
		"offsite_conversion.fb_pixel_purchase":                true,
		"onsite_conversion.messaging_conversation_started_7d": true,
		"lead":     true,
		"purchase": true,
	}
	revenueActions = map[string]bool{
		"offsite_conversion.fb_pixel_purchase": true,
		"purchase":                             true,
	}
)

type actionStat struct {
	ActionType string        `json:"action_type"`
	Value      vendor.Number `json:"value"`
}

// insight is one row of an insights edge. Graph reports every number as a
// string.
type insight struct {
	Spend        vendor.Number `json:"spend"`
	Impressions  vendor.Number `json:"impressions"`
	Clicks       vendor.Number `json:"clicks"`
	CTR          vendor.Number `json:"ctr"`
	CPM          vendor.Number `json:"cpm"`
	Actions      []actionStat  `json:"actions"`
	ActionValues []actionStat  `json:"action_values"`
}

type insightPage struct {
	Data []insight `json:"data"`
}

// first returns the first row, or a zero insight for ads without delivery.
func (p *insightPage) first() insight {
	if p == nil || len(p.Data) == 0 {
		return insight{}
	}
	return p.Data[0]
}

// firstOf returns the value of the first action, in reporting order, whose
// type is in types.
func firstOf(actions []actionStat, types map[string]bool) vendor.Number {
	for _, a := range actions {
		if types[a.ActionType] {
			return a.Value
		}
	}
	return 0
}

func (i insight) raw() domain.RawMetrics {
	return domain.RawMetrics{
		Spend:       i.Spend.Float(),
		Impressions: i.Impressions.Int(),
		Clicks:      i.Clicks.Int(),
		CTR:         i.CTR.Float(),
		CPM:         i.CPM.Float(),
		Conversions: firstOf(i.Actions, conversionActions).Int(),
		Revenue:     firstOf(i.ActionValues, revenueActions).Float(),
	}
}

type adRecord struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Status   string       `json:"status"`
	AdSetID  string       `json:"adset_id"`
	Insights *insightPage `json:"insights"`
}

// normalizeAd maps an ad with its nested insights edge to the common row.
func normalizeAd(ad adRecord) domain.AdStats {
	return domain.NewAdStats(ad.ID, ad.Name, ad.Insights.first().raw())
}
