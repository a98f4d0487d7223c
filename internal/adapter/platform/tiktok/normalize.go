package tiktok

import (
	"andromeda-ads/internal/adapter/vendor"
	"andromeda-ads/internal/core/domain"
)

// reportMetrics are requested from every integrated report.
var reportMetrics = []string{"spend", "impressions", "clicks", "ctr", "cpm", "complete_payment", "complete_payment_value"}

type reportRow struct {
	Dimensions struct {
		AdID string `json:"ad_id"`
	} `json:"dimensions"`
	Metrics struct {
		Spend                vendor.Number `json:"spend"`
		Impressions          vendor.Number `json:"impressions"`
		Clicks               vendor.Number `json:"clicks"`
		CTR                  vendor.Number `json:"ctr"`
		CPM                  vendor.Number `json:"cpm"`
		CompletePayment      vendor.Number `json:"complete_payment"`
		CompletePaymentValue vendor.Number `json:"complete_payment_value"`
	} `json:"metrics"`
}

// raw treats the reported ctr as a ratio and scales it to a percentage.
func (r reportRow) raw() domain.RawMetrics {
	m := r.Metrics
	return domain.RawMetrics{
		Spend:       m.Spend.Float(),
		Impressions: m.Impressions.Int(),
		Clicks:      m.Clicks.Int(),
		CTR:         m.CTR.Float() * 100,
		CPM:         m.CPM.Float(),
		Conversions: m.CompletePayment.Int(),
		Revenue:     m.CompletePaymentValue.Float(),
	}
}

// normalizeRow maps a report row; TikTok reports carry no ad name.
func normalizeRow(r reportRow) domain.AdStats {
	id := r.Dimensions.AdID
	if id == "" {
		id = "-"
	}
	return domain.NewAdStats(id, "Ad "+id, r.raw())
}

// countryLocations maps ISO country codes to TikTok location ids.
var countryLocations = map[string]string{
	"ES": "6356726", "MX": "3996063", "AR": "3865483", "CO": "3686110",
	"US": "6252001", "PE": "3932488", "CL": "3895114", "VE": "3625428",
	"EC": "3658394", "BO": "3923057", "PY": "3437598", "UY": "3439705",
	"GB": "2635167", "FR": "3017382", "IT": "3175395", "DE": "2921044",
	"BR": "3469034", "PT": "2264397",
}

// locationIDs maps countries, dropping the ones without a known id.
func locationIDs(countries []string) []string {
	var out []string
	for _, c := range countries {
		if id, ok := countryLocations[c]; ok {
			out = append(out, id)
		}
	}
	return out
}

func gender(g string) string {
	switch g {
	case "1":
		return "GENDER_MALE"
	case "2":
		return "GENDER_FEMALE"
	default:
		return "GENDER_UNLIMITED"
	}
}
