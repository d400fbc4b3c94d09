package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveListing(t *testing.T) {
	m := New()
	m.ObserveListing("events", "all", 6)
	m.ObserveListing("events", "all", 0)
	m.ObserveListing("projects", "my-projects", 1)
	m.ProviderError("events")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("events", "all")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("projects", "my-projects")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.providerErrors.WithLabelValues("events")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveListing("events", "all", 1)
	m.ProviderError("events")
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.ObserveListing("events", "joined", 2)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `devhub_listing_requests_total{listing="events",scope="joined"} 1`))
}
