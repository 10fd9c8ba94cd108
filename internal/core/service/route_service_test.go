package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/bluecart/logistics-api/internal/core/domain"
	"github.com/bluecart/logistics-api/internal/core/ports"
)

type stubRouteRepo struct {
	byID   map[string]*domain.Route
	nextID int
}

func newStubRouteRepo() *stubRouteRepo {
	return &stubRouteRepo{byID: make(map[string]*domain.Route)}
}

func (r *stubRouteRepo) Create(_ context.Context, route *domain.Route) error {
	if route.ID == "" {
		r.nextID++
		route.ID = "route_" + strconv.Itoa(r.nextID)
	}
	clone := *route
	r.byID[route.ID] = &clone
	return nil
}

func (r *stubRouteRepo) FindByID(_ context.Context, id string) (*domain.Route, error) {
	route, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrRouteNotFound
	}
	clone := *route
	clone.Stops = append([]domain.Stop(nil), route.Stops...)
	return &clone, nil
}

func (r *stubRouteRepo) ListAll(_ context.Context) ([]*domain.Route, error) {
	out := make([]*domain.Route, 0, len(r.byID))
	for _, route := range r.byID {
		clone := *route
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubRouteRepo) Update(_ context.Context, route *domain.Route) error {
	if _, ok := r.byID[route.ID]; !ok {
		return domain.ErrRouteNotFound
	}
	clone := *route
	clone.Stops = append([]domain.Stop(nil), route.Stops...)
	r.byID[route.ID] = &clone
	return nil
}

func (r *stubRouteRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrRouteNotFound
	}
	delete(r.byID, id)
	return nil
}

func newTestRouteService(repo *stubRouteRepo, shipments *stubShipmentRepo) *RouteService {
	return NewRouteService(repo, shipments, discardLogger)
}

func validRouteInput() ports.CreateRouteInput {
	return ports.CreateRouteInput{
		Name:        "Andheri morning run",
		DriverID:    "driver_7",
		HubID:       "hub_1",
		ShipmentIDs: []string{"ship_a", "ship_b"},
	}
}

func TestRouteService_Create_DerivesDeliveryStops(t *testing.T) {
	shipments := newStubShipmentRepo()
	shipments.byID["ship_a"] = &domain.Shipment{ID: "ship_a", Receiver: domain.Party{Address: "4 Park Street"}}
	shipments.byID["ship_b"] = &domain.Shipment{ID: "ship_b", Receiver: domain.Party{Address: "9 Hill Road"}}

	svc := newTestRouteService(newStubRouteRepo(), shipments)

	route, err := svc.CreateRoute(context.Background(), validRouteInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if route.Status != domain.RoutePlanned {
		t.Errorf("new routes must start planned, got %q", route.Status)
	}
	if route.TotalStops != 2 || len(route.Stops) != 2 {
		t.Fatalf("expected 2 derived stops, got %d", len(route.Stops))
	}
	if route.Stops[0].Type != domain.StopDelivery || route.Stops[0].Address != "4 Park Street" {
		t.Errorf("derived stop wrong: %+v", route.Stops[0])
	}
	if route.Stops[1].Status != domain.StopPending {
		t.Errorf("derived stops must start pending, got %q", route.Stops[1].Status)
	}
}

func TestRouteService_Create_ExplicitStops(t *testing.T) {
	svc := newTestRouteService(newStubRouteRepo(), newStubShipmentRepo())

	input := validRouteInput()
	input.Stops = []ports.StopInput{
		{ShipmentID: "ship_a", Address: "Hub dock 3", Type: "pickup"},
		{ShipmentID: "ship_a", Address: "4 Park Street", Type: "delivery"},
	}

	route, err := svc.CreateRoute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if route.TotalStops != 2 {
		t.Errorf("expected 2 stops, got %d", route.TotalStops)
	}
	if route.Stops[0].Type != domain.StopPickup {
		t.Errorf("expected pickup first, got %q", route.Stops[0].Type)
	}
}

func TestRouteService_Create_Validation(t *testing.T) {
	svc := newTestRouteService(newStubRouteRepo(), newStubShipmentRepo())

	cases := []struct {
		name   string
		mutate func(*ports.CreateRouteInput)
	}{
		{"missing name", func(in *ports.CreateRouteInput) { in.Name = "" }},
		{"missing driver", func(in *ports.CreateRouteInput) { in.DriverID = "" }},
		{"missing hub", func(in *ports.CreateRouteInput) { in.HubID = "" }},
		{"bad stop type", func(in *ports.CreateRouteInput) {
			in.Stops = []ports.StopInput{{ShipmentID: "ship_a", Type: "detour"}}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validRouteInput()
			tc.mutate(&input)
			if _, err := svc.CreateRoute(context.Background(), input); !errors.Is(err, domain.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func seedRoute(repo *stubRouteRepo, stops int) *domain.Route {
	route := &domain.Route{
		ID:         "route_seed",
		Name:       "Test run",
		AssignedTo: "driver_7",
		HubID:      "hub_1",
		Status:     domain.RoutePlanned,
		TotalStops: stops,
	}
	for i := 0; i < stops; i++ {
		route.Stops = append(route.Stops, domain.Stop{
			ShipmentID: "ship_" + strconv.Itoa(i),
			Type:       domain.StopDelivery,
			Status:     domain.StopPending,
		})
	}
	repo.byID[route.ID] = route
	return route
}

func TestRouteService_AdvanceStop_InOrderCompletion(t *testing.T) {
	repo := newStubRouteRepo()
	svc := newTestRouteService(repo, newStubShipmentRepo())
	seedRoute(repo, 4)

	for i := 0; i < 4; i++ {
		route, err := svc.AdvanceStop(context.Background(), "route_seed", i)
		if err != nil {
			t.Fatalf("stop %d: unexpected error: %v", i, err)
		}
		if route.CompletedStops != i+1 {
			t.Errorf("stop %d: completed count = %d", i, route.CompletedStops)
		}
		if i < 3 && route.Status != domain.RouteInProgress {
			t.Errorf("stop %d: expected in_progress, got %q", i, route.Status)
		}
		if i == 3 && route.Status != domain.RouteCompleted {
			t.Errorf("final stop must complete the route, got %q", route.Status)
		}
		if route.Stops[i].CompletedAt == nil {
			t.Errorf("stop %d: CompletedAt not set", i)
		}
	}
}

func TestRouteService_AdvanceStop_OutOfOrderRejected(t *testing.T) {
	repo := newStubRouteRepo()
	svc := newTestRouteService(repo, newStubShipmentRepo())
	seedRoute(repo, 3)

	if _, err := svc.AdvanceStop(context.Background(), "route_seed", 2); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation for out-of-order completion, got %v", err)
	}
	if got := repo.byID["route_seed"].CompletedStops; got != 0 {
		t.Errorf("rejected completion must not advance the route, got %d", got)
	}
}

func TestRouteService_AdvanceStop_IndexOutOfRange(t *testing.T) {
	repo := newStubRouteRepo()
	svc := newTestRouteService(repo, newStubShipmentRepo())
	seedRoute(repo, 2)

	for _, idx := range []int{-1, 2, 99} {
		if _, err := svc.AdvanceStop(context.Background(), "route_seed", idx); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("index %d: expected ErrValidation, got %v", idx, err)
		}
	}
}

func TestRouteService_AdvanceStop_CompletedRouteFrozen(t *testing.T) {
	repo := newStubRouteRepo()
	svc := newTestRouteService(repo, newStubShipmentRepo())

	route := seedRoute(repo, 1)
	route.Status = domain.RouteCompleted
	route.CompletedStops = 1
	route.Stops[0].Status = domain.StopCompleted

	if _, err := svc.AdvanceStop(context.Background(), "route_seed", 0); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation on completed route, got %v", err)
	}
}

func TestRouteService_ReassignDriver(t *testing.T) {
	repo := newStubRouteRepo()
	svc := newTestRouteService(repo, newStubShipmentRepo())
	seedRoute(repo, 2)

	route, err := svc.ReassignDriver(context.Background(), "route_seed", "driver_9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if route.AssignedTo != "driver_9" {
		t.Errorf("expected driver_9, got %q", route.AssignedTo)
	}

	if _, err := svc.ReassignDriver(context.Background(), "route_seed", ""); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation for empty driver, got %v", err)
	}
}
