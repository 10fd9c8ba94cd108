// Package metrics defines and registers all custom Prometheus metrics for the
// BlueCart logistics API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bluecart"

// ShipmentsCreatedTotal counts newly created shipments.
// Label:
//   - service_type: "standard", "express", or "overnight"
var ShipmentsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shipments_created_total",
		Help:      "Total number of shipments created, by service type.",
	},
	[]string{"service_type"},
)

// EventsProcessedTotal counts timeline events that completed processing.
// Labels:
//   - status: the new shipment status applied by the event (e.g. "picked_up")
//   - source: "api" for synchronous appends, the carrier source for scans
var EventsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_processed_total",
		Help:      "Total number of timeline events successfully processed.",
	},
	[]string{"status", "source"},
)

// EventsErrorsTotal counts scan events that failed processing.
// Label:
//   - reason: short failure description (e.g. "shipment_not_found", "record_failed")
var EventsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_errors_total",
		Help:      "Total number of scan events that failed processing.",
	},
	[]string{"reason"},
)

// EventsDedupTotal counts deduplication decisions on the scan ingestion path.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new event, processed)
var EventsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_dedup_total",
		Help:      "Total number of deduplication checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// EventProcessingDuration measures how long a single scan event takes from
// dequeue to persistence.
// Label:
//   - status: the resulting shipment status, or "error" on failure
var EventProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "event_processing_duration_seconds",
		Help:      "Duration of scan event processing from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"status"},
)

// EventsQueueDepth tracks the number of scan events waiting per dispatcher worker.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var EventsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "events_queue_depth",
		Help:      "Current number of scan events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// HubUtilization tracks each hub's load as a percentage of capacity.
// Label:
//   - hub_code: the hub's human-facing code
var HubUtilization = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "hub_utilization_percent",
		Help:      "Current hub load as a percentage of declared capacity.",
	},
	[]string{"hub_code"},
)
