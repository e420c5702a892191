// Package metrics registers the orchestrator's Prometheus collectors.
// Served at /metrics via the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BuildsCompleted counts finished builds by terminal status.
	BuildsCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "staticpress_builds_completed_total",
		Help: "Builds finished, labelled by terminal status.",
	}, []string{"status"})

	// PhaseDuration observes wall time per pipeline phase.
	PhaseDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "staticpress_phase_duration_seconds",
		Help:    "Pipeline phase wall time.",
		Buckets: []float64{1, 5, 15, 60, 180, 600, 1800},
	}, []string{"phase"})

	// JobDuration observes queue job execution time by kind and outcome.
	JobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "staticpress_job_duration_seconds",
		Help:    "Queue job execution time.",
		Buckets: []float64{1, 10, 60, 300, 900, 1800, 3600},
	}, []string{"kind", "outcome"})

	// QueueDepth tracks jobs waiting in the ready set.
	QueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "staticpress_queue_depth",
		Help: "Jobs in status ready.",
	})

	// OracleTokens counts LLM tokens by direction (input or output).
	OracleTokens = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "staticpress_oracle_tokens_total",
		Help: "Oracle tokens consumed.",
	}, []string{"direction"})

	// OracleCostUSD accumulates estimated oracle spend.
	OracleCostUSD = promauto.NewCounter(prometheus.CounterOpts{
		Name: "staticpress_oracle_cost_usd_total",
		Help: "Estimated oracle cost in USD.",
	})

	// EventsDropped counts bus events dropped for slow subscribers.
	EventsDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "staticpress_events_dropped_total",
		Help: "Bus events dropped because a subscriber was slow.",
	}, []string{"kind"})

	// AgentIterations counts completed agent loop iterations by verdict.
	AgentIterations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "staticpress_agent_iterations_total",
		Help: "Agent loop iterations, labelled by review verdict.",
	}, []string{"verdict"})
)
