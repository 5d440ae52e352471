// Package metrics holds the service's Prometheus collectors, registered on
// the default registry and served on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ActionsExecuted counts execute attempts by action type and outcome.
	ActionsExecuted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "zero_actions_executed_total",
		Help: "Action execution attempts by action type and outcome status.",
	}, []string{"action_type", "status"})

	// ActionReplays counts execute requests answered from the idempotency store.
	ActionReplays = promauto.NewCounter(prometheus.CounterOpts{
		Name: "zero_action_replays_total",
		Help: "Execute requests answered from the idempotency store.",
	})

	// PurchasesScheduled counts purchases accepted for scheduling.
	PurchasesScheduled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "zero_purchases_scheduled_total",
		Help: "Purchases accepted for scheduling.",
	})

	// PurchaseRuns counts runner executions by result.
	PurchaseRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "zero_purchase_runs_total",
		Help: "Scheduled purchase executions by result.",
	}, []string{"status"})

	// HTTPRequestDuration tracks request latency per route.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "zero_http_request_duration_seconds",
		Help:    "HTTP request latency by route, method and status.",
		Buckets: prometheus.DefBuckets,
	}, []string{"path", "method", "status"})
)
