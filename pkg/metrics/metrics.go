// Package metrics provides Prometheus metrics for the SCA trainer backend.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "sca_trainer"

	// Outcome label values.
	OutcomeOK       = "ok"
	OutcomeInvalid  = "invalid_output"
	OutcomeProvider = "provider_error"

	// Operation label values.
	OpGenerateCase    = "generate_case"
	OpScoreTranscript = "score_transcript"
)

// Manager holds the Prometheus collectors for LLM-backed operations.
type Manager struct {
	llmRequests *prometheus.CounterVec
	llmLatency  *prometheus.HistogramVec
}

// NewManager registers the collectors with the given registerer.
func NewManager(reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)
	return &Manager{
		llmRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "llm_requests_total",
			Help:      "LLM round trips by operation and outcome.",
		}, []string{"operation", "outcome"}),
		llmLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "llm_request_duration_seconds",
			Help:      "LLM round trip duration by operation.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 40, 60},
		}, []string{"operation"}),
	}
}

// ObserveLLMRequest records one completed LLM round trip.
func (m *Manager) ObserveLLMRequest(operation, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.llmRequests.WithLabelValues(operation, outcome).Inc()
	m.llmLatency.WithLabelValues(operation).Observe(duration.Seconds())
}
