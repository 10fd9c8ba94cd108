package ports

import (
	"context"
	"time"

	"github.com/bluecart/logistics-api/internal/core/domain"
)

// ListShipmentsFilter carries all query parameters for listing shipments.
type ListShipmentsFilter struct {
	Status      string    // optional: filter by lifecycle status
	ServiceType string    // optional: filter by service tier
	HubID       string    // optional: filter by current hub
	AssignedTo  string    // optional: filter by assigned driver
	Search      string    // optional: partial match on tracking_number, sender.name or receiver.name
	DateFrom    time.Time // optional: created_at >= DateFrom
	DateTo      time.Time // optional: created_at <= DateTo
	Page        int       // 1-based
	Limit       int       // max rows per page (capped at 100 by service)
}

// ShipmentRepository defines persistence operations for shipments.
type ShipmentRepository interface {
	Create(ctx context.Context, s *domain.Shipment) error
	FindByID(ctx context.Context, id string) (*domain.Shipment, error)
	FindByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Shipment, error)
	// List returns a page of shipments matching filter and the total count.
	List(ctx context.Context, filter ListShipmentsFilter) ([]*domain.Shipment, int64, error)
	// ListAll returns every shipment; used by the analytics fold.
	ListAll(ctx context.Context) ([]*domain.Shipment, error)
	Update(ctx context.Context, s *domain.Shipment) error
	Delete(ctx context.Context, id string) error
	// AppendEvent atomically sets the shipment's status, pushes the timeline
	// entry, and (when actualDelivery is non-nil) records the delivery time.
	AppendEvent(ctx context.Context, id string, entry domain.TimelineEntry, actualDelivery *time.Time) error
}
