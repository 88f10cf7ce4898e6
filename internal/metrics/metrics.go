package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LiveEventsIngested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "safety_live_events_ingested_total",
			Help: "Total number of live events ingested by the aggregator",
		},
		[]string{"type", "severity"},
	)

	LiveEventsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "safety_live_events_dropped_total",
			Help: "Live events dropped for slow subscribers",
		},
	)

	StatusTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "safety_incident_status_transitions_total",
			Help: "Incident status transitions by outcome",
		},
		[]string{"from", "to", "result"},
	)

	WorkflowFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "safety_workflow_template_fallbacks_total",
			Help: "Workflow lookups served by the fallback template",
		},
		[]string{"category"},
	)

	DispatchRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "safety_dispatch_requests_total",
			Help: "Dispatch requests by result",
		},
		[]string{"result"},
	)

	DispatchDeliveryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "safety_dispatch_delivery_duration_seconds",
			Help:    "Time to deliver a dispatch request to the dispatch system",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		},
	)
)
