package google

import (
	"strings"

	"andromeda-ads/internal/adapter/vendor"
	"andromeda-ads/internal/core/domain"
)

// microsPerUnit converts cost_micros and average_cpm to currency.
const microsPerUnit = 1_000_000

type metricsRow struct {
	CostMicros       vendor.Number `json:"costMicros"`
	Impressions      vendor.Number `json:"impressions"`
	Clicks           vendor.Number `json:"clicks"`
	CTR              vendor.Number `json:"ctr"`
	AverageCPM       vendor.Number `json:"averageCpm"`
	Conversions      vendor.Number `json:"conversions"`
	ConversionsValue vendor.Number `json:"conversionsValue"`
}

// raw converts one metrics row: micros to currency and the CTR ratio to a
// percentage.
func (m metricsRow) raw() domain.RawMetrics {
	return domain.RawMetrics{
		Spend:       m.CostMicros.Float() / microsPerUnit,
		Impressions: m.Impressions.Int(),
		Clicks:      m.Clicks.Int(),
		CTR:         m.CTR.Float() * 100,
		CPM:         m.AverageCPM.Float() / microsPerUnit,
		Conversions: m.Conversions.Int(),
		Revenue:     m.ConversionsValue.Float(),
	}
}

// searchRow is one googleAds:search result. Only the selected resources are
// populated.
type searchRow struct {
	AdGroupAd struct {
		ResourceName string `json:"resourceName"`
		Status       string `json:"status"`
		Ad           struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"ad"`
	} `json:"adGroupAd"`
	AdGroup struct {
		ID string `json:"id"`
	} `json:"adGroup"`
	Campaign struct {
		CampaignBudget string `json:"campaignBudget"`
	} `json:"campaign"`
	CampaignBudget struct {
		ResourceName string        `json:"resourceName"`
		AmountMicros vendor.Number `json:"amountMicros"`
	} `json:"campaignBudget"`
	Customer struct {
		DescriptiveName string `json:"descriptiveName"`
		CurrencyCode    string `json:"currencyCode"`
		TimeZone        string `json:"timeZone"`
	} `json:"customer"`
	Metrics metricsRow `json:"metrics"`
}

// adID is the ad group ad id "<adGroupId>~<adId>" used for every Google ad
// reference, so stats rows can be fed back into mutations.
func (r searchRow) adID() string {
	if id := lastSegment(r.AdGroupAd.ResourceName); id != "" {
		return id
	}
	if r.AdGroup.ID != "" && r.AdGroupAd.Ad.ID != "" {
		return r.AdGroup.ID + "~" + r.AdGroupAd.Ad.ID
	}
	return r.AdGroupAd.Ad.ID
}

func (r searchRow) adName() string {
	if r.AdGroupAd.Ad.Name != "" {
		return r.AdGroupAd.Ad.Name
	}
	return "Ad"
}

// normalizeRow maps one ad_group_ad row to the common stats row.
func normalizeRow(r searchRow) domain.AdStats {
	return domain.NewAdStats(r.adID(), r.adName(), r.Metrics.raw())
}

// sumRows totals per-segment rows of one ad and derives CTR and CPM from
// the totals.
func sumRows(rows []searchRow) domain.RawMetrics {
	var total domain.RawMetrics
	for _, r := range rows {
		m := r.Metrics.raw()
		total.Spend += m.Spend
		total.Impressions += m.Impressions
		total.Clicks += m.Clicks
		total.Conversions += m.Conversions
		total.Revenue += m.Revenue
	}
	if len(rows) == 1 {
		only := rows[0].Metrics.raw()
		total.CTR, total.CPM = only.CTR, only.CPM
	} else if total.Impressions > 0 {
		total.CTR = float64(total.Clicks) / float64(total.Impressions) * 100
		total.CPM = total.Spend / float64(total.Impressions) * 1000
	}
	return total
}

func lastSegment(resourceName string) string {
	if resourceName == "" {
		return ""
	}
	return resourceName[strings.LastIndex(resourceName, "/")+1:]
}
