package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMetrics_Counters(t *testing.T) {
	m := New()

	m.Login("success")
	m.Verification("blacklisted")
	m.Verification("blacklisted")
	m.Logout(true)
	m.UpstreamRevocation("failure")

	assert.InDelta(t, 1, testutil.ToFloat64(m.logins.WithLabelValues("success")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.verifications.WithLabelValues("blacklisted")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.logouts.WithLabelValues("true")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.logouts.WithLabelValues("false")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.upstreamRevocations.WithLabelValues("failure")), 0)
}

func TestAuthMetrics_Handler(t *testing.T) {
	m := New()
	m.Verification("ok")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `sugarrush_auth_verifications_total{result="ok"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
