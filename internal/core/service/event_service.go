package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bluecart/logistics-api/internal/api/metrics"
	"github.com/bluecart/logistics-api/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, trackingNumber, status string, ts time.Time) (bool, error)
	Mark(ctx context.Context, trackingNumber, status string, ts time.Time) error
}

type eventService struct {
	shipments ports.ShipmentService
	repo      ports.ShipmentRepository
	dedup     DedupChecker
	log       zerolog.Logger
}

// NewEventService returns the processor behind the async scan-ingestion path.
// It resolves the tracking number and delegates the transition-validated
// timeline append to the shipment service, so both ingestion paths share one
// state machine.
func NewEventService(shipments ports.ShipmentService, repo ports.ShipmentRepository, dedup DedupChecker, log zerolog.Logger) ports.EventService {
	return &eventService{shipments: shipments, repo: repo, dedup: dedup, log: log}
}

func (s *eventService) Process(ctx context.Context, in ports.ScanEventInput) error {
	start := time.Now()

	// Idempotency check: silently skip exact duplicates.
	isDup, err := s.dedup.IsDuplicate(ctx, in.TrackingNumber, in.Status, in.Timestamp)
	if err != nil {
		s.log.Warn().Err(err).Str("tracking", in.TrackingNumber).Msg("dedup check failed, processing anyway")
	} else if isDup {
		metrics.EventsDedupTotal.WithLabelValues("hit").Inc()
		s.log.Debug().Str("tracking", in.TrackingNumber).Str("status", in.Status).Msg("duplicate scan skipped")
		return nil
	}
	metrics.EventsDedupTotal.WithLabelValues("miss").Inc()

	shipment, err := s.repo.FindByTrackingNumber(ctx, in.TrackingNumber)
	if err != nil {
		metrics.EventsErrorsTotal.WithLabelValues("shipment_not_found").Inc()
		return fmt.Errorf("process scan: %w", err)
	}

	// Mark before writing so a crashed retry does not double-apply.
	if markErr := s.dedup.Mark(ctx, in.TrackingNumber, in.Status, in.Timestamp); markErr != nil {
		s.log.Warn().Err(markErr).Str("tracking", in.TrackingNumber).Msg("failed to set dedup key")
	}

	_, err = s.shipments.RecordEvent(ctx, shipment.ID, ports.RecordEventInput{
		Status:      in.Status,
		Location:    in.Location,
		Description: scanDescription(in),
		Timestamp:   in.Timestamp,
	})
	if err != nil {
		metrics.EventsErrorsTotal.WithLabelValues("record_failed").Inc()
		metrics.EventProcessingDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return fmt.Errorf("process scan: %w", err)
	}

	metrics.EventProcessingDuration.WithLabelValues(in.Status).Observe(time.Since(start).Seconds())
	s.log.Info().
		Str("tracking", in.TrackingNumber).
		Str("status", in.Status).
		Str("source", in.Source).
		Msg("scan event processed")
	return nil
}

func scanDescription(in ports.ScanEventInput) string {
	if in.Description != "" {
		return in.Description
	}
	if in.Source != "" {
		return "Scan from " + in.Source
	}
	return "Status update"
}
