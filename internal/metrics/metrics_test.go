package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveVendorCall(t *testing.T) {
	m := New()
	m.ObserveVendorCall("meta", "list_ads", OutcomeOK, 20*time.Millisecond)
	m.ObserveVendorCall("meta", "list_ads", OutcomeOK, 40*time.Millisecond)
	m.ObserveVendorCall("meta", "list_ads", OutcomeAuth, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.vendorCalls.WithLabelValues("meta", "list_ads", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.vendorCalls.WithLabelValues("meta", "list_ads", OutcomeAuth)))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveVendorCall("x", "y", OutcomeOK, time.Second)
	m.ObserveRuleAction("meta", "pause", OutcomeOK)
	m.ObserveHTTP("GET", "/", "200", time.Second)
	assert.Nil(t, m.Registry())
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.ObserveRuleAction("meta", "pause", OutcomeOK)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `andromeda_optimizer_rule_actions_total{action="pause",outcome="ok",platform="meta"} 1`)
}
