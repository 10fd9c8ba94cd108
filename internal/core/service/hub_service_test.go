package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bluecart/logistics-api/internal/core/domain"
	"github.com/bluecart/logistics-api/internal/core/ports"
)

func validHubInput() ports.CreateHubInput {
	return ports.CreateHubInput{
		Name:     "Mumbai Central",
		Code:     "BOM1",
		Address:  "Plot 7, Andheri East",
		City:     "Mumbai",
		Capacity: 100,
		Manager:  "S. Iyer",
	}
}

func TestHubService_Create_Success(t *testing.T) {
	repo := newStubHubRepo()
	svc := NewHubService(repo, discardLogger)

	hub, err := svc.CreateHub(context.Background(), validHubInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hub.Status != domain.HubActive {
		t.Errorf("new hubs must start active, got %q", hub.Status)
	}
	if hub.CurrentLoad != 0 {
		t.Errorf("new hubs must start empty, got load %d", hub.CurrentLoad)
	}
}

func TestHubService_Create_Validation(t *testing.T) {
	svc := NewHubService(newStubHubRepo(), discardLogger)

	cases := []struct {
		name   string
		mutate func(*ports.CreateHubInput)
	}{
		{"missing name", func(in *ports.CreateHubInput) { in.Name = "" }},
		{"missing code", func(in *ports.CreateHubInput) { in.Code = "" }},
		{"zero capacity", func(in *ports.CreateHubInput) { in.Capacity = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validHubInput()
			tc.mutate(&input)
			if _, err := svc.CreateHub(context.Background(), input); !errors.Is(err, domain.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestHubService_Create_DuplicateCode(t *testing.T) {
	repo := newStubHubRepo()
	svc := NewHubService(repo, discardLogger)

	if _, err := svc.CreateHub(context.Background(), validHubInput()); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.CreateHub(context.Background(), validHubInput()); !errors.Is(err, domain.ErrHubExists) {
		t.Errorf("expected ErrHubExists, got %v", err)
	}
}

func TestHubService_Assign_SoftCapacity(t *testing.T) {
	repo := newStubHubRepo()
	repo.byID["hub_1"] = &domain.Hub{ID: "hub_1", Code: "BOM1", Capacity: 100, CurrentLoad: 84}
	svc := NewHubService(repo, discardLogger)

	// 84 -> 85: above the 80% warning threshold, below alert
	result, err := svc.AssignShipment(context.Background(), "hub_1", "ship_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Hub.CurrentLoad != 85 {
		t.Errorf("expected load 85, got %d", result.Hub.CurrentLoad)
	}
	if result.Utilization != 85.0 {
		t.Errorf("expected utilization 85, got %v", result.Utilization)
	}
	if result.Level != domain.CapacityWarning {
		t.Errorf("expected warning level, got %q", result.Level)
	}
}

func TestHubService_Assign_OverCapacityAllowed(t *testing.T) {
	repo := newStubHubRepo()
	repo.byID["hub_1"] = &domain.Hub{ID: "hub_1", Code: "BOM1", Capacity: 10, CurrentLoad: 10}
	svc := NewHubService(repo, discardLogger)

	result, err := svc.AssignShipment(context.Background(), "hub_1", "ship_1")
	if err != nil {
		t.Fatalf("over-capacity assignment must succeed, got %v", err)
	}
	if result.Hub.CurrentLoad != 11 {
		t.Errorf("expected load 11, got %d", result.Hub.CurrentLoad)
	}
	if result.Level != domain.CapacityAlert {
		t.Errorf("expected alert level, got %q", result.Level)
	}
}

func TestHubService_Release_FlooredAtZero(t *testing.T) {
	repo := newStubHubRepo()
	repo.byID["hub_1"] = &domain.Hub{ID: "hub_1", Code: "BOM1", Capacity: 10, CurrentLoad: 0}
	svc := NewHubService(repo, discardLogger)

	result, err := svc.ReleaseShipment(context.Background(), "hub_1", "ship_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Hub.CurrentLoad != 0 {
		t.Errorf("load must not go negative, got %d", result.Hub.CurrentLoad)
	}
}

func TestHubService_Assign_UnknownHub(t *testing.T) {
	svc := NewHubService(newStubHubRepo(), discardLogger)

	if _, err := svc.AssignShipment(context.Background(), "nope", "ship_1"); !errors.Is(err, domain.ErrHubNotFound) {
		t.Errorf("expected ErrHubNotFound, got %v", err)
	}
}

func TestHubService_Update_Patch(t *testing.T) {
	repo := newStubHubRepo()
	repo.byID["hub_1"] = &domain.Hub{ID: "hub_1", Code: "BOM1", Name: "Old", Capacity: 10}
	svc := NewHubService(repo, discardLogger)

	name := "Mumbai North"
	capacity := 250
	status := "maintenance"
	hub, err := svc.UpdateHub(context.Background(), "hub_1", ports.UpdateHubInput{
		Name:     &name,
		Capacity: &capacity,
		Status:   &status,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hub.Name != "Mumbai North" || hub.Capacity != 250 || hub.Status != domain.HubMaintenance {
		t.Errorf("patch not applied: %+v", hub)
	}
	if hub.Code != "BOM1" {
		t.Errorf("untouched fields must survive, code = %q", hub.Code)
	}
}

func TestHubService_Update_RejectsBadStatus(t *testing.T) {
	repo := newStubHubRepo()
	repo.byID["hub_1"] = &domain.Hub{ID: "hub_1", Code: "BOM1", Capacity: 10}
	svc := NewHubService(repo, discardLogger)

	status := "on_fire"
	if _, err := svc.UpdateHub(context.Background(), "hub_1", ports.UpdateHubInput{Status: &status}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}
