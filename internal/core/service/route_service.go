package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/bluecart/logistics-api/internal/core/domain"
	"github.com/bluecart/logistics-api/internal/core/ports"
)

// RouteService implements route planning and stop completion.
type RouteService struct {
	repo         ports.RouteRepository
	shipmentRepo ports.ShipmentRepository
	logger       zerolog.Logger
}

func NewRouteService(repo ports.RouteRepository, shipmentRepo ports.ShipmentRepository, logger zerolog.Logger) *RouteService {
	return &RouteService{repo: repo, shipmentRepo: shipmentRepo, logger: logger}
}

// CreateRoute plans a route for one driver out of one hub. When no explicit
// stop list is given, one delivery stop per shipment is derived, addressed at
// the shipment's receiver.
func (s *RouteService) CreateRoute(ctx context.Context, input ports.CreateRouteInput) (*domain.Route, error) {
	switch {
	case input.Name == "":
		return nil, domain.ValidationError("route name is required")
	case input.DriverID == "":
		return nil, domain.ValidationError("driver id is required")
	case input.HubID == "":
		return nil, domain.ValidationError("hub id is required")
	}

	stops, err := s.buildStops(ctx, input)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	route := &domain.Route{
		Name:        input.Name,
		AssignedTo:  input.DriverID,
		HubID:       input.HubID,
		ShipmentIDs: input.ShipmentIDs,
		Stops:       stops,
		Status:      domain.RoutePlanned,
		TotalStops:  len(stops),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, route); err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create route")
		return nil, err
	}

	s.logger.Info().
		Str("route_id", route.ID).
		Str("driver_id", input.DriverID).
		Int("total_stops", route.TotalStops).
		Msg("route created")
	return route, nil
}

func (s *RouteService) GetRoute(ctx context.Context, id string) (*domain.Route, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *RouteService) ListRoutes(ctx context.Context) ([]*domain.Route, error) {
	return s.repo.ListAll(ctx)
}

func (s *RouteService) DeleteRoute(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// AdvanceStop completes the stop at stopIndex. Stops must complete in order:
// completing stop N requires stops 0..N-1 to be done already. Completing the
// final stop transitions the route to completed; any earlier completion moves
// a planned route to in_progress.
func (s *RouteService) AdvanceStop(ctx context.Context, id string, stopIndex int) (*domain.Route, error) {
	route, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if route.Status == domain.RouteCompleted {
		return nil, domain.ValidationError("route is already completed")
	}
	if stopIndex < 0 || stopIndex >= len(route.Stops) {
		return nil, domain.ValidationError("stop index %d out of range", stopIndex)
	}
	if route.Stops[stopIndex].Status == domain.StopCompleted {
		return nil, domain.ValidationError("stop %d is already completed", stopIndex)
	}
	if stopIndex != route.CompletedStops {
		return nil, domain.ValidationError("stops must be completed in order: next is %d", route.CompletedStops)
	}

	now := time.Now().UTC()
	route.Stops[stopIndex].Status = domain.StopCompleted
	route.Stops[stopIndex].CompletedAt = &now
	route.CompletedStops++
	route.UpdatedAt = now

	if route.CompletedStops == route.TotalStops {
		route.Status = domain.RouteCompleted
	} else {
		route.Status = domain.RouteInProgress
	}

	if err := s.repo.Update(ctx, route); err != nil {
		s.logger.Error().Err(err).Str("route_id", id).Msg("failed to advance stop")
		return nil, err
	}
	return route, nil
}

// ReassignDriver swaps the driver on a route. Hub affinity of the new driver
// is deliberately not validated.
func (s *RouteService) ReassignDriver(ctx context.Context, id, newDriverID string) (*domain.Route, error) {
	if newDriverID == "" {
		return nil, domain.ValidationError("driver id is required")
	}

	route, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	route.AssignedTo = newDriverID
	route.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, route); err != nil {
		return nil, err
	}
	return route, nil
}

func (s *RouteService) buildStops(ctx context.Context, input ports.CreateRouteInput) ([]domain.Stop, error) {
	if len(input.Stops) > 0 {
		stops := make([]domain.Stop, len(input.Stops))
		for i, in := range input.Stops {
			stopType := domain.StopType(in.Type)
			if stopType != domain.StopPickup && stopType != domain.StopDelivery {
				return nil, domain.ValidationError("stop %d: unknown type %q", i, in.Type)
			}
			stops[i] = domain.Stop{
				ShipmentID: in.ShipmentID,
				Address:    in.Address,
				Type:       stopType,
				Status:     domain.StopPending,
			}
		}
		return stops, nil
	}

	// Derived model: pickup and delivery collapse to one stop per shipment.
	stops := make([]domain.Stop, 0, len(input.ShipmentIDs))
	for _, shipmentID := range input.ShipmentIDs {
		address := ""
		if shipment, err := s.shipmentRepo.FindByID(ctx, shipmentID); err == nil {
			address = shipment.Receiver.Address
		}
		stops = append(stops, domain.Stop{
			ShipmentID: shipmentID,
			Address:    address,
			Type:       domain.StopDelivery,
			Status:     domain.StopPending,
		})
	}
	return stops, nil
}
