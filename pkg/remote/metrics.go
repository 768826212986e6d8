package remote

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Round trip outcome labels.
const (
	OutcomeSuccess     = "success"
	OutcomeFailure     = "failure"
	OutcomeTimeout     = "timeout"
	OutcomeCircuitOpen = "circuit_open"
)

// Metrics holds the Prometheus collectors for remote validation.
type Metrics struct {
	RoundTrips    *prometheus.CounterVec
	Duration      *prometheus.HistogramVec
	BatchFields   prometheus.Histogram
	InvalidFields prometheus.Counter
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RoundTrips: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goodform",
				Subsystem: "remote",
				Name:      "round_trips_total",
				Help:      "Total number of remote validation round trips by outcome",
			},
			[]string{"outcome"},
		),
		Duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "goodform",
				Subsystem: "remote",
				Name:      "round_trip_duration_seconds",
				Help:      "Remote validation round trip duration in seconds, retries included",
				Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"outcome"},
		),
		BatchFields: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "goodform",
				Subsystem: "remote",
				Name:      "batch_fields",
				Help:      "Number of fields sent per remote validation batch",
				Buckets:   []float64{1, 2, 3, 5, 8, 13, 21},
			},
		),
		InvalidFields: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "goodform",
				Subsystem: "remote",
				Name:      "invalid_fields_total",
				Help:      "Total number of fields the server reported invalid",
			},
		),
	}
}

func (m *Metrics) observe(results Results, fields int, d time.Duration, err error) {
	outcome := outcomeOf(err)
	m.RoundTrips.WithLabelValues(outcome).Inc()
	m.Duration.WithLabelValues(outcome).Observe(d.Seconds())
	m.BatchFields.Observe(float64(fields))

	for _, r := range results {
		if !r.IsValid() {
			m.InvalidFields.Inc()
		}
	}
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, ErrCircuitOpen):
		return OutcomeCircuitOpen
	case errors.Is(err, ErrTimeout):
		return OutcomeTimeout
	default:
		return OutcomeFailure
	}
}
