package ports

import (
	"context"
	"time"
)

// ScanEventInput is the DTO for asynchronously ingested carrier scan events
// (hub arrivals, departures, delivery confirmations).
type ScanEventInput struct {
	TrackingNumber string
	Status         string
	Location       string
	Description    string
	Timestamp      time.Time
	Source         string
}

// EventService processes incoming scan events from the async ingestion path.
type EventService interface {
	Process(ctx context.Context, event ScanEventInput) error
}
