package google

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"andromeda-ads/internal/config/configs"
	"andromeda-ads/internal/core/domain"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	cfg := configs.Google{BaseURL: srv.URL, Timeout: time.Second}
	creds := domain.GoogleCredentials{AccessToken: "tok", CustomerID: "123-456-7890", DeveloperToken: "dev"}
	return New(NewTransport(cfg, nil, slog.New(slog.NewTextHandler(io.Discard, nil))), cfg, creds, 50)
}

func decodeQuery(t *testing.T, r *http.Request) string {
	t.Helper()
	var body struct {
		Query string `json:"query"`
	}
	require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	return body.Query
}

func TestNormalizeRow(t *testing.T) {
	raw := `{"adGroupAd":{"resourceName":"customers/1/adGroupAds/77~88","ad":{"id":"88"}},
		"metrics":{"costMicros":"12500000","impressions":"2000","clicks":"40","ctr":0.02,
		"averageCpm":6250000,"conversions":2.0,"conversionsValue":50}}`
	var row searchRow
	require.NoError(t, json.Unmarshal([]byte(raw), &row))

	got := normalizeRow(row)
	assert.Equal(t, "77~88", got.ID)
	assert.Equal(t, "Ad", got.Name)
	assert.Equal(t, 12.5, got.Spend)
	assert.Equal(t, 2.0, got.CTR)
	assert.Equal(t, 6.25, got.CPM)
	assert.Equal(t, int64(2), got.Conversions)
	assert.Equal(t, 4.0, got.ROAS)
}

func TestStatsRequest(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customers/1234567890/googleAds:search", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "dev", r.Header.Get("developer-token"))
		q := decodeQuery(t, r)
		assert.Contains(t, q, "campaign.id = 555")
		assert.Contains(t, q, "DURING LAST_7_DAYS")
		_, _ = io.WriteString(w, `{"results":[
			{"adGroupAd":{"resourceName":"customers/1/adGroupAds/1~2"},"metrics":{"costMicros":"1000000","impressions":"100","clicks":"1"}},
			{"adGroupAd":{"resourceName":"customers/1/adGroupAds/1~3"},"metrics":{"costMicros":"2000000","impressions":"200","clicks":"5"}}
		]}`)
	})

	stats, err := c.Stats(context.Background(), "555")
	require.NoError(t, err)
	require.Len(t, stats.Ads, 2)
	assert.Equal(t, int64(6), stats.Summary.Clicks)
	assert.Equal(t, 3.0, stats.Summary.Spend)
	assert.Equal(t, 2.0, stats.Summary.CTR)
}

func TestStatsRejectsNonNumericCampaign(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})
	_, err := c.Stats(context.Background(), "1 OR 1=1")
	var ve *domain.ValidationError
	assert.True(t, errors.As(err, &ve))
}

func TestDecodeErrorUnauthenticated(t *testing.T) {
	err := DecodeError(401, []byte(`{"error":{"code":401,"message":"Request had invalid authentication credentials.","status":"UNAUTHENTICATED"}}`))
	assert.True(t, domain.IsAuthExpired(err))
	assert.Equal(t, "Google Ads: Request had invalid authentication credentials.", err.Error())

	err = DecodeError(400, []byte(`{"error":{"code":400,"message":"bad query","status":"INVALID_ARGUMENT"}}`))
	assert.False(t, domain.IsAuthExpired(err))
}

func TestBudgetRoundTrip(t *testing.T) {
	const budget = "customers/1234567890/campaignBudgets/9"
	var update map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/customers/1234567890/googleAds:search":
			q := decodeQuery(t, r)
			switch {
			case strings.Contains(q, "FROM ad_group_ad"):
				_, _ = io.WriteString(w, `{"results":[{"campaign":{"campaignBudget":"`+budget+`"}}]}`)
			case strings.Contains(q, "FROM campaign_budget"):
				assert.Contains(t, q, "'"+budget+"'")
				_, _ = io.WriteString(w, `{"results":[{"campaignBudget":{"resourceName":"`+budget+`","amountMicros":"5000000"}}]}`)
			}
		case "/customers/1234567890/campaignBudgets:mutate":
			var body struct {
				Operations []map[string]any `json:"operations"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			update = body.Operations[0]
			_, _ = io.WriteString(w, `{"results":[{"resourceName":"`+budget+`"}]}`)
		default:
			t.Errorf("unexpected %s", r.URL.Path)
		}
	})

	b, err := c.AdBudget(context.Background(), domain.Ad{ID: "7~8"})
	require.NoError(t, err)
	assert.Equal(t, domain.Budget{AdSetID: budget, Amount: 5_000_000, UnitsPerCurrency: 1_000_000}, b)
	assert.Equal(t, 5.0, b.Currency(b.Amount))

	b.Amount = 7_500_000
	require.NoError(t, c.SetBudget(context.Background(), b))
	assert.Equal(t, "amount_micros", update["updateMask"])
	assert.Equal(t, 7.5e6, update["update"].(map[string]any)["amountMicros"])
}

func TestSetAdStatusNeedsCompositeID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})
	err := c.SetAdStatus(context.Background(), domain.Ad{ID: "88"}, domain.AdStatusPaused)
	var ve *domain.ValidationError
	assert.True(t, errors.As(err, &ve))
}

func TestUploadCreativeUnsupported(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	_, err := c.UploadCreative(context.Background(), domain.CreativeUpload{})
	assert.ErrorIs(t, err, domain.ErrUnsupported)
}

func TestResponsiveSearchAdLimits(t *testing.T) {
	rsa := responsiveSearchAd(domain.Concept{
		Headline: strings.Repeat("h", 40),
		Body:     strings.Repeat("b", 120),
	})
	headlines := rsa["headlines"].([]textAsset)
	assert.Len(t, headlines[0].Text, 30)
	assert.Equal(t, "Shop now", headlines[2].Text)
	assert.Len(t, rsa["descriptions"].([]textAsset)[0].Text, 90)
}
