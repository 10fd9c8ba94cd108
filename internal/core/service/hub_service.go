package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/bluecart/logistics-api/internal/api/metrics"
	"github.com/bluecart/logistics-api/internal/core/domain"
	"github.com/bluecart/logistics-api/internal/core/ports"
)

// HubService implements hub reference-data CRUD and the soft-capacity load
// model: loads move freely past capacity, callers get a warning level back
// instead of a rejected write.
type HubService struct {
	repo   ports.HubRepository
	logger zerolog.Logger
}

func NewHubService(repo ports.HubRepository, logger zerolog.Logger) *HubService {
	return &HubService{repo: repo, logger: logger}
}

func (s *HubService) CreateHub(ctx context.Context, input ports.CreateHubInput) (*domain.Hub, error) {
	switch {
	case input.Name == "":
		return nil, domain.ValidationError("hub name is required")
	case input.Code == "":
		return nil, domain.ValidationError("hub code is required")
	case input.Capacity <= 0:
		return nil, domain.ValidationError("hub capacity must be greater than 0")
	}

	if existing, err := s.repo.FindByCode(ctx, input.Code); err == nil && existing != nil {
		return nil, domain.ErrHubExists
	}

	now := time.Now().UTC()
	hub := &domain.Hub{
		Name:      input.Name,
		Code:      input.Code,
		Address:   input.Address,
		City:      input.City,
		State:     input.State,
		Pincode:   input.Pincode,
		Capacity:  input.Capacity,
		Manager:   input.Manager,
		Phone:     input.Phone,
		Status:    domain.HubActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, hub); err != nil {
		s.logger.Error().Err(err).Str("code", input.Code).Msg("failed to create hub")
		return nil, err
	}

	s.logger.Info().Str("hub_id", hub.ID).Str("code", hub.Code).Msg("hub created")
	return hub, nil
}

func (s *HubService) GetHub(ctx context.Context, id string) (*domain.Hub, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *HubService) ListHubs(ctx context.Context) ([]*domain.Hub, error) {
	return s.repo.ListAll(ctx)
}

func (s *HubService) UpdateHub(ctx context.Context, id string, patch ports.UpdateHubInput) (*domain.Hub, error) {
	hub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		hub.Name = *patch.Name
	}
	if patch.Address != nil {
		hub.Address = *patch.Address
	}
	if patch.City != nil {
		hub.City = *patch.City
	}
	if patch.State != nil {
		hub.State = *patch.State
	}
	if patch.Pincode != nil {
		hub.Pincode = *patch.Pincode
	}
	if patch.Capacity != nil {
		if *patch.Capacity <= 0 {
			return nil, domain.ValidationError("hub capacity must be greater than 0")
		}
		hub.Capacity = *patch.Capacity
	}
	if patch.Manager != nil {
		hub.Manager = *patch.Manager
	}
	if patch.Phone != nil {
		hub.Phone = *patch.Phone
	}
	if patch.Status != nil {
		status := domain.HubStatus(*patch.Status)
		if !status.IsValid() {
			return nil, domain.ValidationError("unknown hub status %q", *patch.Status)
		}
		hub.Status = status
	}
	hub.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, hub); err != nil {
		s.logger.Error().Err(err).Str("hub_id", id).Msg("failed to update hub")
		return nil, err
	}
	return hub, nil
}

func (s *HubService) DeleteHub(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// AssignShipment increments the hub's load. Capacity is a soft constraint:
// the write succeeds even past 100%, and the returned level carries the
// warning or alert flag for the caller to surface.
func (s *HubService) AssignShipment(ctx context.Context, hubID, shipmentID string) (*ports.HubAssignmentResult, error) {
	return s.adjust(ctx, hubID, shipmentID, 1)
}

// ReleaseShipment decrements the hub's load, floored at 0.
func (s *HubService) ReleaseShipment(ctx context.Context, hubID, shipmentID string) (*ports.HubAssignmentResult, error) {
	return s.adjust(ctx, hubID, shipmentID, -1)
}

func (s *HubService) adjust(ctx context.Context, hubID, shipmentID string, delta int) (*ports.HubAssignmentResult, error) {
	if err := s.repo.AdjustLoad(ctx, hubID, delta); err != nil {
		return nil, err
	}

	hub, err := s.repo.FindByID(ctx, hubID)
	if err != nil {
		return nil, err
	}

	level := hub.CapacityLevel()
	metrics.HubUtilization.WithLabelValues(hub.Code).Set(hub.Utilization())
	if level != domain.CapacityOK {
		s.logger.Warn().
			Str("hub_id", hubID).
			Str("shipment_id", shipmentID).
			Int("current_load", hub.CurrentLoad).
			Int("capacity", hub.Capacity).
			Str("level", string(level)).
			Msg("hub capacity threshold exceeded")
	}

	return &ports.HubAssignmentResult{
		Hub:         hub,
		Utilization: hub.Utilization(),
		Level:       level,
	}, nil
}
