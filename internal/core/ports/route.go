package ports

import (
	"context"

	"github.com/bluecart/logistics-api/internal/core/domain"
)

// RouteRepository defines persistence operations for delivery routes.
type RouteRepository interface {
	Create(ctx context.Context, r *domain.Route) error
	FindByID(ctx context.Context, id string) (*domain.Route, error)
	ListAll(ctx context.Context) ([]*domain.Route, error)
	Update(ctx context.Context, r *domain.Route) error
	Delete(ctx context.Context, id string) error
}

// StopInput is an explicit stop in a route creation request. When no stops
// are given, one delivery stop per shipment is derived.
type StopInput struct {
	ShipmentID string
	Address    string
	Type       string
}

// CreateRouteInput carries the fields needed to plan a route.
type CreateRouteInput struct {
	Name        string
	DriverID    string
	HubID       string
	ShipmentIDs []string
	Stops       []StopInput
}

// RouteService defines use-case operations for routes.
type RouteService interface {
	CreateRoute(ctx context.Context, input CreateRouteInput) (*domain.Route, error)
	GetRoute(ctx context.Context, id string) (*domain.Route, error)
	ListRoutes(ctx context.Context) ([]*domain.Route, error)
	DeleteRoute(ctx context.Context, id string) error
	// AdvanceStop completes the stop at stopIndex. Stops complete in order;
	// completing the final stop transitions the route to completed.
	AdvanceStop(ctx context.Context, id string, stopIndex int) (*domain.Route, error)
	ReassignDriver(ctx context.Context, id, newDriverID string) (*domain.Route, error)
}
