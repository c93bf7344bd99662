// Package metrics exposes Prometheus collectors for classification activity.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "icp"

// Metrics holds the service collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	classifications *prometheus.CounterVec
	tieBreaks       *prometheus.CounterVec
	labelDrift      *prometheus.CounterVec
	incomplete      prometheus.Counter
	duration        *prometheus.HistogramVec
}

// MustNewMetrics constructs and registers the collectors on reg.
// Registration errors panic, matching promauto. Tests should pass a fresh
// prometheus.NewRegistry().
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		classifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "classifications_total",
				Help:      "Completed classifications by primary category and confidence.",
			},
			[]string{"primary_icp", "confidence"},
		),
		tieBreaks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tie_breaks_total",
				Help:      "Classifications by the resolution rule that chose the primary category.",
			},
			[]string{"rule"},
		),
		labelDrift: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "label_drift_total",
				Help:      "Answer labels that were not recognized and fell back to a default.",
			},
			[]string{"dimension"},
		),
		incomplete: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "incomplete_answers_total",
				Help:      "Onboarding requests rejected for missing blocking answers.",
			},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "classify_duration_seconds",
				Help:      "Time spent classifying a single record.",
				Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
			},
			[]string{"source"},
		),
	}
	reg.MustRegister(m.classifications, m.tieBreaks, m.labelDrift, m.incomplete, m.duration)
	return m
}

// ObserveClassification records one completed classification.
func (m *Metrics) ObserveClassification(source, primary, confidence, rule string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.classifications.WithLabelValues(primary, confidence).Inc()
	m.tieBreaks.WithLabelValues(rule).Inc()
	m.duration.WithLabelValues(source).Observe(elapsed.Seconds())
}

// IncLabelDrift counts an unrecognized label for the given answer dimension.
func (m *Metrics) IncLabelDrift(dimension string) {
	if m == nil {
		return
	}
	m.labelDrift.WithLabelValues(dimension).Inc()
}

// IncIncomplete counts an onboarding request that could not be classified yet.
func (m *Metrics) IncIncomplete() {
	if m == nil {
		return
	}
	m.incomplete.Inc()
}
