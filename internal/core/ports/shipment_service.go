package ports

import (
	"context"
	"time"

	"github.com/bluecart/logistics-api/internal/core/domain"
)

// PartyInput holds sender or receiver contact details.
type PartyInput struct {
	Name    string
	Phone   string
	Address string
	City    string
	State   string
	Pincode string
}

// DimensionsInput holds package size.
type DimensionsInput struct {
	Length float64
	Width  float64
	Height float64
}

// PackageInput holds package details.
type PackageInput struct {
	Weight      float64
	Dimensions  DimensionsInput
	Type        string
	Description string
}

// CreateShipmentInput carries all data needed to create a new shipment.
type CreateShipmentInput struct {
	Sender        PartyInput
	Receiver      PartyInput
	Package       PackageInput
	ServiceType   string
	Priority      string
	PaymentStatus string
	// HubID optionally assigns the shipment to its intake hub; the hub's load
	// is incremented in the same transaction as the insert.
	HubID string
}

// UpdateShipmentInput is a patch of mutable shipment fields. Nil pointers
// leave the stored value untouched. Status is not patchable: lifecycle
// changes go through RecordEvent only.
type UpdateShipmentInput struct {
	Sender        *PartyInput
	Receiver      *PartyInput
	Package       *PackageInput
	ServiceType   *string
	Priority      *string
	PaymentStatus *string
	AssignedTo    *string
	Route         []string
}

// RecordEventInput appends one timeline entry to a shipment.
type RecordEventInput struct {
	Status      string
	Location    string
	Description string
	// Timestamp defaults to the current time when zero.
	Timestamp time.Time
}

// QuoteResult is the pre-creation pricing preview.
type QuoteResult struct {
	Weight      float64
	ServiceType string
	Pricing     domain.Pricing
}

// ListShipmentsResult is returned by ListShipments.
type ListShipmentsResult struct {
	Items      []*domain.Shipment
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ShipmentService defines use-case operations for shipments.
type ShipmentService interface {
	CreateShipment(ctx context.Context, input CreateShipmentInput) (*domain.Shipment, error)
	GetShipment(ctx context.Context, id string) (*domain.Shipment, error)
	TrackShipment(ctx context.Context, trackingNumber string) (*domain.Shipment, error)
	ListShipments(ctx context.Context, filter ListShipmentsFilter) (*ListShipmentsResult, error)
	UpdateShipment(ctx context.Context, id string, patch UpdateShipmentInput) (*domain.Shipment, error)
	DeleteShipment(ctx context.Context, id string) error
	// RecordEvent validates the status transition, appends the timeline entry
	// and keeps hub load in sync around terminal states.
	RecordEvent(ctx context.Context, id string, event RecordEventInput) (*domain.Shipment, error)
	Quote(ctx context.Context, weight float64, serviceType string) (*QuoteResult, error)
}
