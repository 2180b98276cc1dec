package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_BusinessCounters(t *testing.T) {
	m := NewWithRegisterer(prometheus.NewRegistry(), "shuttle-test")

	m.AddDeparturesGenerated(3)
	m.AddDeparturesGenerated(0)
	m.IncBookingsCreated()
	m.IncBookingsRejected("sold_out")
	m.IncBookingsRejected("sold_out")

	assert.Equal(t, 3.0, testutil.ToFloat64(m.DeparturesGenerated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingsCreated))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingsRejected.WithLabelValues("sold_out")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncBookingsCreated()
		m.IncBookingsRejected("sold_out")
		m.AddDeparturesGenerated(1)
		m.IncCacheLookup(true)
	})
}

func TestMetrics_ObserveHTTPRequest(t *testing.T) {
	m := NewWithRegisterer(prometheus.NewRegistry(), "shuttle-test")

	m.ObserveHTTPRequest("POST", "/api/v1/bookings", 409, time.Now())

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/bookings", "409")))
}
