package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
)

func TestLogger_LevelByStatus(t *testing.T) {
	testCases := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "ok", status: http.StatusOK, wantLevel: "level=INFO"},
		{name: "client error", status: http.StatusNotFound, wantLevel: "level=WARN"},
		{name: "server error", status: http.StatusServiceUnavailable, wantLevel: "level=ERROR"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			r := chi.NewRouter()
			r.Use(Logger(logger))
			r.Get("/v1/orders/{order_id}", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte("body"))
			})

			r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/orders/1", nil))

			out := buf.String()
			assert.Contains(t, out, tc.wantLevel)
			assert.Contains(t, out, "route=/v1/orders/{order_id}")
			assert.Contains(t, out, "bytes=4")
		})
	}
}

func TestMetrics_RouteLabel(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/v1/listings/{listing_id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/v1/listings/{listing_id}", "418")
	before := counterValue(t, counter)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/listings/abc", nil))
	after := counterValue(t, counter)

	assert.Equal(t, before+1, after)
}

func TestResponseWriter_FirstStatusWins(t *testing.T) {
	rr := httptest.NewRecorder()
	rw := wrapResponseWriter(rr)

	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, rw.status)
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("failed to read counter: %v", err)
	}
	return m.GetCounter().GetValue()
}
