// Package metrics registers the service's Prometheus collectors on the
// default registry. They are served by GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ShipmentsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "courier_shipments_created_total",
		Help: "Total number of shipments successfully created.",
	})

	StatusTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "courier_status_transitions_total",
		Help: "Total number of accepted shipment updates by resulting status.",
	},
		[]string{"status"},
	)

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "courier_operation_errors_total",
		Help: "Total number of failed operations by operation and error kind.",
	},
		[]string{"operation", "kind"},
	)

	OutboxPublishedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "courier_outbox_published_total",
		Help: "Total number of outbox messages relayed to the broker.",
	})

	OutboxRelayErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "courier_outbox_relay_errors_total",
		Help: "Total number of failed outbox relay runs.",
	})

	DelayedShipments = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "courier_delayed_shipments",
		Help: "Number of delayed shipments found by the last scan.",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "courier_http_request_duration_seconds",
		Help:    "HTTP request latency by route, method and status code.",
		Buckets: prometheus.DefBuckets,
	},
		[]string{"route", "method", "code"},
	)
)
