package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtAvailability/pkg/metrics"
)

type captureLogger struct{ lines []string }

func (c *captureLogger) Info(format string, v ...interface{}) {
	c.lines = append(c.lines, fmt.Sprintf(format, v...))
}

func TestMetricsMiddlewareUsesRouteTemplate(t *testing.T) {
	m := metrics.NewWithRegistry(prometheus.NewRegistry(), "test")

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/api/v1/availability/{date}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	for _, date := range []string{"2025-01-14", "2025-01-15"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/availability/"+date, nil))
	}

	got := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/availability/{date}", "400"))
	assert.Equal(t, 2.0, got)
}

func TestRequestIDGeneratesAndPropagates(t *testing.T) {
	logger := &captureLogger{}
	var seen string

	h := RequestID(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/facilities", nil))

	id := rec.Header().Get(HeaderRequestID)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, seen)
	require.Len(t, logger.lines, 1)
	assert.Contains(t, logger.lines[0], id)
}

func TestRequestIDKeepsValidIncoming(t *testing.T) {
	incoming := uuid.NewString()
	h := RequestID(&captureLogger{})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, incoming)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, incoming, rec.Header().Get(HeaderRequestID))

	req.Header.Set(HeaderRequestID, "not-a-uuid")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.NotEqual(t, "not-a-uuid", rec.Header().Get(HeaderRequestID))
}
