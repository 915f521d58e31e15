package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observation struct {
	service string
	method  string
	path    string
	status  int
}

type recordingMetrics struct {
	seen []observation
}

func (m *recordingMetrics) ObserveHTTPRequest(service, method, path string, status int, _ time.Duration) {
	m.seen = append(m.seen, observation{service: service, method: method, path: path, status: status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := &recordingMetrics{}

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m, "rooms"))
	r.HandleFunc("/api/v1/bookings/{bookingId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/bookings", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("[]"))
	}).Methods(http.MethodGet)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/bookings/abc-123", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil))

	require.Len(t, m.seen, 2)
	assert.Equal(t, observation{service: "rooms", method: http.MethodGet, path: "/api/v1/bookings/{bookingId}", status: http.StatusNotFound}, m.seen[0])
	assert.Equal(t, observation{service: "rooms", method: http.MethodGet, path: "/api/v1/bookings", status: http.StatusOK}, m.seen[1])
}
