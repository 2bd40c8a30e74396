// Package metrics records evaluation outcomes for Prometheus and the admin
// stats endpoint.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OutcomeSuccess labels evaluations that produced a ranking. Failed evaluations
// are labelled with their error kind.
const OutcomeSuccess = "success"

// Recorder owns the evaluation collectors and a running tally per outcome.
type Recorder struct {
	evaluations *prometheus.CounterVec
	ratios      prometheus.Histogram
	duration    prometheus.Histogram
	criteria    prometheus.Histogram

	mu       sync.Mutex
	outcomes map[string]int64
	started  time.Time
}

// NewRecorder registers the collectors with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		evaluations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "arbiter",
			Name:      "evaluations_total",
			Help:      "Evaluations handled, by outcome.",
		}, []string{"outcome"}),
		ratios: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "arbiter",
			Name:      "consistency_ratio",
			Help:      "Consistency ratio of submitted comparison matrices.",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.075, 0.1, 0.15, 0.25, 0.5, 1},
		}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "arbiter",
			Name:      "evaluation_duration_seconds",
			Help:      "Time spent computing an evaluation.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),
		criteria: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "arbiter",
			Name:      "criteria_count",
			Help:      "Number of criteria per comparison matrix.",
			Buckets:   prometheus.LinearBuckets(1, 1, 12),
		}),
		outcomes: make(map[string]int64),
		started:  time.Now(),
	}
}

// ObserveEvaluation records one evaluation. ratio is ignored when hasRatio is
// false, which is the case for matrices rejected before a ratio was computed.
func (r *Recorder) ObserveEvaluation(outcome string, criteria int, ratio float64, hasRatio bool, elapsed time.Duration) {
	r.evaluations.WithLabelValues(outcome).Inc()
	r.duration.Observe(elapsed.Seconds())
	if criteria > 0 {
		r.criteria.Observe(float64(criteria))
	}
	if hasRatio {
		r.ratios.Observe(ratio)
	}

	r.mu.Lock()
	r.outcomes[outcome]++
	r.mu.Unlock()
}

// Stats is a snapshot of outcomes since the recorder was created.
type Stats struct {
	Total    int64            `json:"total"`
	Outcomes map[string]int64 `json:"outcomes"`
	Since    time.Time        `json:"since"`
}

func (r *Recorder) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := Stats{Outcomes: make(map[string]int64, len(r.outcomes)), Since: r.started}
	for k, v := range r.outcomes {
		s.Outcomes[k] = v
		s.Total += v
	}
	return s
}
