package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilRegistryIsNoop(t *testing.T) {
	var r *Registry
	assert.NotPanics(t, func() {
		r.ObserveRequest("/api/orders", http.StatusOK, time.Millisecond)
		r.OrderCreated("checkout")
		r.Transition("cancel", "ok")
		r.SignatureVerification("valid")
	})
	assert.NotNil(t, r.Handler())

	families, err := r.Gatherer().Gather()
	require.NoError(t, err)
	assert.Empty(t, families)
}

func TestCounters(t *testing.T) {
	r := New()
	r.OrderCreated("checkout")
	r.OrderCreated("checkout")
	r.OrderCreated("direct")
	r.Transition("cancel", "InvalidState")
	r.SignatureVerification("invalid")
	r.ObserveRequest("/api/orders/:orderId", http.StatusNotFound, 3*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.ordersCreated.WithLabelValues("checkout")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.ordersCreated.WithLabelValues("direct")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.transitions.WithLabelValues("cancel", "InvalidState")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.verifications.WithLabelValues("invalid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.requests.WithLabelValues("/api/orders/:orderId", "404")))
}

func TestHandlerExposesRegistry(t *testing.T) {
	r := New()
	r.OrderCreated("direct")

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.True(t, strings.Contains(body, `storefront_orders_created_total{source="direct"} 1`), body)
	assert.Contains(t, body, "go_goroutines")
}
