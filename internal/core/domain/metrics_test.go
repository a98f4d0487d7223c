package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeROASZeroGuards(t *testing.T) {
	assert.Equal(t, 0.0, ComputeROAS(100, 0))
	assert.Equal(t, 0.0, ComputeROAS(0, 50))
	assert.Equal(t, 0.0, ComputeROAS(0, 0))
	assert.Equal(t, 0.0, ComputeROAS(math.NaN(), 10))
	assert.Equal(t, 0.0, ComputeROAS(10, math.Inf(1)))
	assert.Equal(t, 2.0, ComputeROAS(100, 50))
}

func TestSummarize(t *testing.T) {
	ads := []AdStats{
		NewAdStats("1", "a", RawMetrics{Spend: 10, Impressions: 1000, Clicks: 10, Conversions: 1, Revenue: 30}),
		NewAdStats("2", "b", RawMetrics{Spend: 5.5, Impressions: 500, Clicks: 20, Conversions: 2}),
	}
	s := Summarize(ads)

	assert.Equal(t, int64(30), s.Clicks)
	assert.Equal(t, int64(1500), s.Impressions)
	assert.Equal(t, int64(3), s.Conversions)
	assert.Equal(t, 15.5, s.Spend)
	assert.Equal(t, 2.0, s.CTR)
	assert.Equal(t, 10.33, s.CPM)

	assert.Equal(t, 3.0, ads[0].ROAS)
	assert.Equal(t, 0.0, ads[1].ROAS)
}

func TestSummarizeNoImpressions(t *testing.T) {
	s := Summarize([]AdStats{NewAdStats("1", "a", RawMetrics{Spend: 3, Clicks: 4})})
	assert.Equal(t, 0.0, s.CTR)
	assert.Equal(t, 0.0, s.CPM)
	assert.Equal(t, int64(4), s.Clicks)
}

func TestNewStatsEmpty(t *testing.T) {
	st := NewStats(nil)
	assert.NotNil(t, st.Ads)
	assert.Equal(t, Summary{}, st.Summary)
}

func TestParsePlatformFallback(t *testing.T) {
	assert.Equal(t, PlatformGoogle, ParsePlatform(" Google "))
	assert.Equal(t, PlatformTikTok, ParsePlatform("tiktok"))
	assert.Equal(t, PlatformMeta, ParsePlatform(""))
	assert.Equal(t, PlatformMeta, ParsePlatform("snapchat"))
}
