package meta

import (
	"context"
	"encoding/json"
	"errors"
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

func newTestClient(t *testing.T, h http.HandlerFunc, creds domain.MetaCredentials) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	cfg := configs.Meta{BaseURL: srv.URL, Timeout: time.Second}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := New(NewTransport(cfg, nil, logger), cfg, creds, 50, logger)
	c.now = func() time.Time { return time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC) }
	return c
}

func TestNormalizeAd(t *testing.T) {
	raw := `{"id":"1","name":"Ad_FOMO","insights":{"data":[{
		"spend":"25.50","impressions":"3000","clicks":"45","ctr":"1.5","cpm":"8.5",
		"actions":[{"action_type":"link_click","value":"45"},{"action_type":"lead","value":"3"},{"action_type":"purchase","value":"9"}],
		"action_values":[{"action_type":"offsite_conversion.fb_pixel_purchase","value":"76.5"}]
	}]}}`
	var ad adRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &ad))

	got := normalizeAd(ad)
	assert.Equal(t, "1", got.ID)
	assert.Equal(t, 25.5, got.Spend)
	assert.Equal(t, int64(3000), got.Impressions)
	assert.Equal(t, int64(45), got.Clicks)
	assert.Equal(t, int64(3), got.Conversions)
	assert.Equal(t, 3.0, got.ROAS)
}

func TestNormalizeAdWithoutDelivery(t *testing.T) {
	got := normalizeAd(adRecord{ID: "2", Name: "idle"})
	assert.Equal(t, domain.AdMetrics{}, got.AdMetrics)
}

func TestDecodeError(t *testing.T) {
	err := DecodeError(400, []byte(`{"error":{"message":"Session has expired","code":190}}`))
	assert.True(t, domain.IsAuthExpired(err))
	assert.Equal(t, "Meta [190]: Session has expired", err.Error())

	err = DecodeError(400, []byte(`{"error":{"message":"Invalid parameter","error_user_msg":"Budget too low","code":100}}`))
	assert.False(t, domain.IsAuthExpired(err))
	assert.Equal(t, "Meta [100]: Budget too low", err.Error())

	var ue *domain.UpstreamError
	require.True(t, errors.As(DecodeError(502, []byte("bad gateway")), &ue))
	assert.Equal(t, 502, ue.Status)
}

func TestListAdsFiltersByCampaign(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/act_42/ads", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "tok", q.Get("access_token"))
		assert.Equal(t, "50", q.Get("limit"))
		assert.JSONEq(t, `[{"field":"campaign.id","operator":"EQUAL","value":"c1"}]`, q.Get("filtering"))
		_, _ = io.WriteString(w, `{"data":[{"id":"a1","name":"one","status":"ACTIVE","adset_id":"s1"}]}`)
	}, domain.MetaCredentials{Token: "tok", AccountID: "42"})

	ads, err := c.ListAds(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, []domain.Ad{{ID: "a1", Name: "one", Status: "ACTIVE", AdSetID: "s1"}}, ads)
}

func TestListAdsExpiredToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":{"message":"Error validating access token","code":190}}`)
	}, domain.MetaCredentials{Token: "tok", AccountID: "act_42"})

	_, err := c.ListAds(context.Background(), "c1")
	assert.True(t, domain.IsAuthExpired(err))
}

func TestAdInsightsWindow(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/a1/insights", r.URL.Path)
		assert.JSONEq(t, `{"since":"2026-03-01","until":"2026-03-08"}`, r.URL.Query().Get("time_range"))
		_, _ = io.WriteString(w, `{"data":[{"spend":"10","impressions":"1000","clicks":"3","ctr":"0.3",
			"action_values":[{"action_type":"purchase","value":"20"}]}]}`)
	}, domain.MetaCredentials{Token: "tok", AccountID: "42"})

	m, err := c.AdInsights(context.Background(), domain.Ad{ID: "a1"}, 7)
	require.NoError(t, err)
	assert.Equal(t, 0.3, m.CTR)
	assert.Equal(t, 2.0, m.ROAS)
}

func TestAdBudgetLooksUpAdSet(t *testing.T) {
	var posted map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/a1":
			_, _ = io.WriteString(w, `{"id":"a1","adset_id":"s9"}`)
		case r.Method == http.MethodGet && r.URL.Path == "/s9":
			_, _ = io.WriteString(w, `{"id":"s9","daily_budget":"1000"}`)
		case r.Method == http.MethodPost && r.URL.Path == "/s9":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&posted))
			_, _ = io.WriteString(w, `{"success":true}`)
		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
	}, domain.MetaCredentials{Token: "tok", AccountID: "42"})

	b, err := c.AdBudget(context.Background(), domain.Ad{ID: "a1"})
	require.NoError(t, err)
	assert.Equal(t, domain.Budget{AdSetID: "s9", Amount: 1000, UnitsPerCurrency: 100}, b)

	b.Amount = 1500
	require.NoError(t, c.SetBudget(context.Background(), b))
	assert.Equal(t, 1500.0, posted["daily_budget"])
}

func TestUploadCreativeRequiresPage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}, domain.MetaCredentials{Token: "tok", AccountID: "42"})

	_, err := c.UploadCreative(context.Background(), domain.CreativeUpload{
		AdSetID: "s1", ImageB64: "aW1n", DestinationURL: "https://shop.example",
	})
	var ve *domain.ValidationError
	assert.True(t, errors.As(err, &ve))
}

func TestUploadCreative(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		switch r.URL.Path {
		case "/act_42/adimages":
			assert.Equal(t, "aW1n", body["bytes"])
			_, _ = io.WriteString(w, `{"images":{"bytes":{"hash":"h1"}}}`)
		case "/act_42/adcreatives":
			spec := body["object_story_spec"].(map[string]any)
			assert.Equal(t, "p1", spec["page_id"])
			assert.Equal(t, "h1", spec["link_data"].(map[string]any)["image_hash"])
			_, _ = io.WriteString(w, `{"id":"cr1"}`)
		case "/act_42/ads":
			assert.Equal(t, "PAUSED", body["status"])
			assert.Equal(t, "s1", body["adset_id"])
			_, _ = io.WriteString(w, `{"id":"ad1"}`)
		default:
			t.Errorf("unexpected %s", r.URL.Path)
		}
	}, domain.MetaCredentials{Token: "tok", AccountID: "42", PageID: "p1"})

	res, err := c.UploadCreative(context.Background(), domain.CreativeUpload{
		AdSetID: "s1", ImageB64: "aW1n", Headline: "New in", DestinationURL: "https://shop.example",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.CreativeResult{AdID: "ad1", CreativeID: "cr1", ImageHash: "h1"}, res)
}
