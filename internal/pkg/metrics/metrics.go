// Package metrics records Prometheus metrics for the coaching workflow.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder is the workflow-facing metrics surface. The engine, gate and
// responders take this interface so tests can pass a no-op.
type Recorder interface {
	ObserveWorkflow(outcome string, duration time.Duration)
	IncGateVerdict(verdict string)
	IncTierSelected(tier string)
	ObserveResponder(agent, model string, promptTokens int, success bool, duration time.Duration)
	ObserveMemoryFetch(tier string, success bool, duration time.Duration)
}

// PrometheusRecorder implements Recorder using promauto collectors on the
// default registry.
type PrometheusRecorder struct {
	workflowTotal     *prometheus.CounterVec
	workflowDuration  *prometheus.HistogramVec
	gateVerdicts      *prometheus.CounterVec
	tierSelected      *prometheus.CounterVec
	responderTotal    *prometheus.CounterVec
	responderTokens   *prometheus.CounterVec
	responderDuration *prometheus.HistogramVec
	memoryFetches     *prometheus.CounterVec
	memoryDuration    *prometheus.HistogramVec
}

func NewPrometheusRecorder() *PrometheusRecorder {
	return &PrometheusRecorder{
		workflowTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coach_workflow_total",
				Help: "Completed chat workflows by outcome",
			},
			[]string{"outcome"},
		),
		workflowDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "coach_workflow_duration_seconds",
				Help:    "End-to-end chat workflow duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
		gateVerdicts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coach_gate_verdicts_total",
				Help: "Safety gate verdicts by kind",
			},
			[]string{"verdict"},
		),
		tierSelected: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coach_model_tier_total",
				Help: "Model tier selections",
			},
			[]string{"tier"},
		),
		responderTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coach_responder_total",
				Help: "Responder invocations by agent, model and status",
			},
			[]string{"agent", "model", "status"},
		),
		responderTokens: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coach_responder_prompt_tokens_total",
				Help: "Prompt tokens sent to the LLM per responder",
			},
			[]string{"agent", "model"},
		),
		responderDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "coach_responder_duration_seconds",
				Help:    "Responder LLM call duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"agent", "model"},
		),
		memoryFetches: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coach_memory_fetches_total",
				Help: "Memory tier fetches by tier and status",
			},
			[]string{"tier", "status"},
		),
		memoryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "coach_memory_fetch_duration_seconds",
				Help:    "Memory tier fetch duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"tier"},
		),
	}
}

func (p *PrometheusRecorder) ObserveWorkflow(outcome string, duration time.Duration) {
	p.workflowTotal.WithLabelValues(outcome).Inc()
	p.workflowDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

func (p *PrometheusRecorder) IncGateVerdict(verdict string) {
	p.gateVerdicts.WithLabelValues(verdict).Inc()
}

func (p *PrometheusRecorder) IncTierSelected(tier string) {
	p.tierSelected.WithLabelValues(tier).Inc()
}

func (p *PrometheusRecorder) ObserveResponder(agent, model string, promptTokens int, success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "error"
	}
	p.responderTotal.WithLabelValues(agent, model, status).Inc()
	if success {
		p.responderTokens.WithLabelValues(agent, model).Add(float64(promptTokens))
	}
	p.responderDuration.WithLabelValues(agent, model).Observe(duration.Seconds())
}

func (p *PrometheusRecorder) ObserveMemoryFetch(tier string, success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "error"
	}
	p.memoryFetches.WithLabelValues(tier, status).Inc()
	p.memoryDuration.WithLabelValues(tier).Observe(duration.Seconds())
}

// NoopRecorder satisfies Recorder without touching the registry. Used in tests.
type NoopRecorder struct{}

func (NoopRecorder) ObserveWorkflow(string, time.Duration) {}

func (NoopRecorder) IncGateVerdict(string) {}

func (NoopRecorder) IncTierSelected(string) {}

func (NoopRecorder) ObserveResponder(string, string, int, bool, time.Duration) {}

func (NoopRecorder) ObserveMemoryFetch(string, bool, time.Duration) {}
