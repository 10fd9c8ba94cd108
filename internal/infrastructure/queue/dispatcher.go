package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/bluecart/logistics-api/internal/api/metrics"
	"github.com/bluecart/logistics-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	defaultBuffer  = 256
)

// Dispatcher routes scan events to a fixed set of workers using consistent
// hashing on the tracking number, guaranteeing per-shipment scan ordering.
type Dispatcher struct {
	workers []chan ports.ScanEventInput
	service ports.EventService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers, each
// with a queue of bufferSize events. Zero or negative values fall back to
// the defaults.
func NewDispatcher(numWorkers, bufferSize int, service ports.EventService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	if bufferSize <= 0 {
		bufferSize = defaultBuffer
	}
	d := &Dispatcher{
		workers: make([]chan ports.ScanEventInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ScanEventInput, bufferSize)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a scan to the worker responsible for its tracking number.
// Blocks when that worker's queue is full.
func (d *Dispatcher) Enqueue(event ports.ScanEventInput) {
	i := d.shardIndex(event.TrackingNumber)
	d.workers[i] <- event
	metrics.EventsQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
}

// EnqueueBatch enqueues multiple scans preserving per-shipment ordering.
func (d *Dispatcher) EnqueueBatch(events []ports.ScanEventInput) {
	for _, e := range events {
		d.Enqueue(e)
	}
}

// shardIndex maps a tracking number deterministically to a worker index.
func (d *Dispatcher) shardIndex(trackingNumber string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(trackingNumber))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ScanEventInput) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Process(ctx, event); err != nil {
				d.log.Error().Err(err).
					Str("tracking_number", event.TrackingNumber).
					Int("worker_id", id).
					Msg("scan processing failed")
			}
			metrics.EventsQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
		}
	}
}
