package tiktok

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
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
	cfg := configs.TikTok{BaseURL: srv.URL, Timeout: time.Second}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := New(NewTransport(cfg, nil, logger), cfg, domain.TikTokCredentials{AccessToken: "tok", AdvertiserID: "adv"}, 50, logger)
	c.now = func() time.Time { return time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC) }
	return c
}

func TestNormalizeRow(t *testing.T) {
	raw := `{"dimensions":{"ad_id":"42"},"metrics":{"spend":"10.00","impressions":"1000",
		"clicks":"20","ctr":"0.02","cpm":"10","complete_payment":"2","complete_payment_value":"35"}}`
	var row reportRow
	require.NoError(t, json.Unmarshal([]byte(raw), &row))

	got := normalizeRow(row)
	assert.Equal(t, "42", got.ID)
	assert.Equal(t, "Ad 42", got.Name)
	assert.Equal(t, 2.0, got.CTR)
	assert.Equal(t, int64(2), got.Conversions)
	assert.Equal(t, 3.5, got.ROAS)
}

func TestEnvelopeError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"code":40105,"message":"Access token is invalid","data":{}}`)
	})
	_, err := c.Validate(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsAuthExpired(err))
	assert.Equal(t, "TikTok [40105]: Access token is invalid", err.Error())

	c = newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"code":40002,"message":"budget too low"}`)
	})
	_, err = c.Validate(context.Background())
	require.Error(t, err)
	assert.False(t, domain.IsAuthExpired(err))
}

func TestValidate(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/advertiser/info/", r.URL.Path)
		assert.Equal(t, "tok", r.Header.Get("Access-Token"))
		assert.Equal(t, `["adv"]`, r.URL.Query().Get("advertiser_ids"))
		_, _ = io.WriteString(w, `{"code":0,"data":{"list":[{"name":"Shop","currency":"EUR","timezone":"Europe/Madrid","status":"STATUS_ENABLE"}]}}`)
	})
	info, err := c.Validate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Shop", info.AccountName)
	assert.Equal(t, "EUR", info.Currency)
	assert.Equal(t, domain.PlatformTikTok, info.Platform)
}

func TestStatsWindowAndFilter(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/report/integrated/get/", r.URL.Path)
		assert.Equal(t, "2026-03-01", q.Get("start_date"))
		assert.Equal(t, "2026-03-08", q.Get("end_date"))
		assert.Contains(t, q.Get("filtering"), `"field_name":"campaign_ids"`)
		_, _ = io.WriteString(w, `{"code":0,"data":{"list":[
			{"dimensions":{"ad_id":"1"},"metrics":{"spend":"4","impressions":"400","clicks":"4"}},
			{"dimensions":{"ad_id":"2"},"metrics":{"spend":"6","impressions":"600","clicks":"16"}}
		]}}`)
	})
	stats, err := c.Stats(context.Background(), "77")
	require.NoError(t, err)
	assert.Len(t, stats.Ads, 2)
	assert.Equal(t, 10.0, stats.Summary.Spend)
	assert.Equal(t, 2.0, stats.Summary.CTR)
	assert.Equal(t, 10.0, stats.Summary.CPM)
}

func TestBudgetLookupAndUpdate(t *testing.T) {
	var update map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ad/get/":
			_, _ = io.WriteString(w, `{"code":0,"data":{"list":[{"ad_id":"9","adgroup_id":"g1"}]}}`)
		case "/adgroup/get/":
			assert.Contains(t, r.URL.Query().Get("filtering"), "g1")
			_, _ = io.WriteString(w, `{"code":0,"data":{"list":[{"adgroup_id":"g1","budget":20.5}]}}`)
		case "/adgroup/budget/update/":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&update))
			_, _ = io.WriteString(w, `{"code":0,"data":{}}`)
		default:
			t.Errorf("unexpected %s", r.URL.Path)
		}
	})

	b, err := c.AdBudget(context.Background(), domain.Ad{ID: "9"})
	require.NoError(t, err)
	assert.Equal(t, domain.Budget{AdSetID: "g1", Amount: 2050, UnitsPerCurrency: 100}, b)

	b.Amount = 3075
	require.NoError(t, c.SetBudget(context.Background(), b))
	entry := update["budget"].([]any)[0].(map[string]any)
	assert.Equal(t, "g1", entry["adgroup_id"])
	assert.Equal(t, 30.75, entry["budget"])
}

func TestSetAdStatus(t *testing.T) {
	var body map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ad/status/update/", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = io.WriteString(w, `{"code":0}`)
	})
	require.NoError(t, c.SetAdStatus(context.Background(), domain.Ad{ID: "5"}, domain.AdStatusPaused))
	assert.Equal(t, "DISABLE", body["operation_status"])
}

func TestLocationIDs(t *testing.T) {
	assert.Equal(t, []string{"6356726", "6252001"}, locationIDs([]string{"ES", "XX", "US"}))
	assert.Equal(t, "GENDER_FEMALE", gender("2"))
	assert.Equal(t, "GENDER_UNLIMITED", gender("all"))
}

func TestUploadCreativeUnsupported(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	_, err := c.UploadCreative(context.Background(), domain.CreativeUpload{})
	assert.ErrorIs(t, err, domain.ErrUnsupported)
}
