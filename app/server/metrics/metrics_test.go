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

func TestAuthEventCounts(t *testing.T) {
	m := New()

	m.AuthEvent(OperationLogin, OutcomeSuccess)
	m.AuthEvent(OperationLogin, OutcomeSuccess)
	m.AuthEvent(OperationLogin, "invalid_credentials")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.authEvents.WithLabelValues(OperationLogin, OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.authEvents.WithLabelValues(OperationLogin, "invalid_credentials")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.AuthEvent(OperationAuthenticate, OutcomeSuccess)
		m.Upload(OutcomeSuccess)
	})
}

func TestHandlerExposesCounters(t *testing.T) {
	m := New()
	m.Upload(OutcomeRejected)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `orpheo_document_uploads_total{outcome="rejected"} 1`)
}
