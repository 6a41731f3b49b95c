package geocoding

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resolution outcomes recorded by Metrics.
const (
	outcomeSuccess  = "success"
	outcomeNotFound = "not_found"
	outcomeError    = "error"
	outcomeCacheHit = "cache_hit"
)

// Metrics provides observability for coordinate resolution.
// A nil *Metrics records nothing.
type Metrics struct {
	Resolutions        *prometheus.CounterVec
	ResolutionDuration prometheus.Histogram
}

// NewMetrics creates the resolver metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Resolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "profile_coordinate_resolutions_total",
			Help: "Total number of pincode to coordinate resolutions by outcome",
		}, []string{"outcome"}),
		ResolutionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "profile_coordinate_resolution_duration_seconds",
			Help:    "Duration of live location service lookups, retries included",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}

// ObserveResolution records one live lookup.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveResolution(outcome string, start time.Time) {
	if m == nil {
		return
	}
	m.Resolutions.WithLabelValues(outcome).Inc()
	m.ResolutionDuration.Observe(time.Since(start).Seconds())
}

// IncrementCacheHit records a lookup answered from the cache.
func (m *Metrics) IncrementCacheHit() {
	if m == nil {
		return
	}
	m.Resolutions.WithLabelValues(outcomeCacheHit).Inc()
}
