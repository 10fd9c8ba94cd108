package ports

import (
	"context"

	"github.com/bluecart/logistics-api/internal/core/domain"
)

// HubRepository defines persistence operations for hubs.
type HubRepository interface {
	Create(ctx context.Context, h *domain.Hub) error
	FindByID(ctx context.Context, id string) (*domain.Hub, error)
	FindByCode(ctx context.Context, code string) (*domain.Hub, error)
	ListAll(ctx context.Context) ([]*domain.Hub, error)
	Update(ctx context.Context, h *domain.Hub) error
	Delete(ctx context.Context, id string) error
	// AdjustLoad atomically adds delta to current_load, floored at 0.
	AdjustLoad(ctx context.Context, id string, delta int) error
}

// CreateHubInput carries the fields needed to register a hub.
type CreateHubInput struct {
	Name     string
	Code     string
	Address  string
	City     string
	State    string
	Pincode  string
	Capacity int
	Manager  string
	Phone    string
}

// UpdateHubInput is a patch of mutable hub fields.
type UpdateHubInput struct {
	Name     *string
	Address  *string
	City     *string
	State    *string
	Pincode  *string
	Capacity *int
	Manager  *string
	Phone    *string
	Status   *string
}

// HubAssignmentResult reports the hub's state after a load change, including
// the soft-capacity flag: over-capacity is surfaced, never rejected.
type HubAssignmentResult struct {
	Hub         *domain.Hub
	Utilization float64
	Level       domain.CapacityLevel
}

// HubService defines use-case operations for hubs.
type HubService interface {
	CreateHub(ctx context.Context, input CreateHubInput) (*domain.Hub, error)
	GetHub(ctx context.Context, id string) (*domain.Hub, error)
	ListHubs(ctx context.Context) ([]*domain.Hub, error)
	UpdateHub(ctx context.Context, id string, patch UpdateHubInput) (*domain.Hub, error)
	DeleteHub(ctx context.Context, id string) error
	AssignShipment(ctx context.Context, hubID, shipmentID string) (*HubAssignmentResult, error)
	ReleaseShipment(ctx context.Context, hubID, shipmentID string) (*HubAssignmentResult, error)
}
