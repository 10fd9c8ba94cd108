package service

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bluecart/logistics-api/internal/api/metrics"
	"github.com/bluecart/logistics-api/internal/core/domain"
	"github.com/bluecart/logistics-api/internal/core/ports"
)

const maxListLimit = 100

// ShipmentService implements the shipment facade: intake, retrieval,
// patching and lifecycle events.
type ShipmentService struct {
	repo    ports.ShipmentRepository
	hubRepo ports.HubRepository
	tx      ports.TxRunner
	logger  zerolog.Logger
}

func NewShipmentService(repo ports.ShipmentRepository, hubRepo ports.HubRepository, tx ports.TxRunner, logger zerolog.Logger) *ShipmentService {
	return &ShipmentService{repo: repo, hubRepo: hubRepo, tx: tx, logger: logger}
}

// CreateShipment validates the intake form, prices the shipment, seeds the
// timeline with a pending entry and persists it. When an intake hub is given,
// the insert and the hub load increment commit in one transaction.
func (s *ShipmentService) CreateShipment(ctx context.Context, input ports.CreateShipmentInput) (*domain.Shipment, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	serviceType := domain.ServiceType(input.ServiceType)

	shipment := &domain.Shipment{
		TrackingNumber:    generateTrackingNumber(),
		Sender:            toParty(input.Sender),
		Receiver:          toParty(input.Receiver),
		Package:           toPackage(input.Package),
		ServiceType:       serviceType,
		Priority:          normalizePriority(input.Priority),
		Pricing:           domain.NewPricing(input.Package.Weight, serviceType),
		PaymentStatus:     normalizePayment(input.PaymentStatus),
		Status:            domain.StatusPending,
		CreatedAt:         now,
		EstimatedDelivery: estimatedDelivery(serviceType, now),
		Timeline: []domain.TimelineEntry{{
			Status:      domain.StatusPending,
			Location:    input.Sender.City,
			Timestamp:   now,
			Description: "Shipment created, awaiting pickup",
		}},
	}

	if input.HubID != "" {
		hub, err := s.hubRepo.FindByID(ctx, input.HubID)
		if err != nil {
			return nil, err
		}
		shipment.CurrentHub = hub.ID
		shipment.Route = []string{hub.ID}

		err = s.tx.WithinTx(ctx, func(txCtx context.Context) error {
			if err := s.repo.Create(txCtx, shipment); err != nil {
				return err
			}
			return s.hubRepo.AdjustLoad(txCtx, hub.ID, 1)
		})
		if err != nil {
			s.logger.Error().Err(err).Msg("failed to create shipment with hub assignment")
			return nil, err
		}
	} else if err := s.repo.Create(ctx, shipment); err != nil {
		s.logger.Error().Err(err).Msg("failed to create shipment")
		return nil, err
	}

	metrics.ShipmentsCreatedTotal.WithLabelValues(string(serviceType)).Inc()
	s.logger.Info().
		Str("tracking_number", shipment.TrackingNumber).
		Str("service_type", string(serviceType)).
		Float64("total", shipment.Pricing.Total).
		Msg("shipment created")

	return shipment, nil
}

// GetShipment retrieves a shipment by its id.
func (s *ShipmentService) GetShipment(ctx context.Context, id string) (*domain.Shipment, error) {
	return s.repo.FindByID(ctx, id)
}

// TrackShipment retrieves a shipment by its human-facing tracking number.
func (s *ShipmentService) TrackShipment(ctx context.Context, trackingNumber string) (*domain.Shipment, error) {
	return s.repo.FindByTrackingNumber(ctx, trackingNumber)
}

// ListShipments returns a page of shipments matching the filter.
func (s *ShipmentService) ListShipments(ctx context.Context, filter ports.ListShipmentsFilter) (*ports.ListShipmentsResult, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &ports.ListShipmentsResult{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

// UpdateShipment applies a field patch. Pricing is recomputed whenever the
// weight or the service tier changes so total never drifts from its parts.
// Lifecycle status is not patchable here; that is RecordEvent's job.
func (s *ShipmentService) UpdateShipment(ctx context.Context, id string, patch ports.UpdateShipmentInput) (*domain.Shipment, error) {
	shipment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	repriced := false
	if patch.Sender != nil {
		shipment.Sender = toParty(*patch.Sender)
	}
	if patch.Receiver != nil {
		shipment.Receiver = toParty(*patch.Receiver)
	}
	if patch.Package != nil {
		if patch.Package.Weight <= 0 {
			return nil, domain.ValidationError("package weight must be greater than 0")
		}
		shipment.Package = toPackage(*patch.Package)
		repriced = true
	}
	if patch.ServiceType != nil {
		st := domain.ServiceType(*patch.ServiceType)
		if !st.IsValid() {
			return nil, domain.ValidationError("unknown service type %q", *patch.ServiceType)
		}
		shipment.ServiceType = st
		repriced = true
	}
	if patch.Priority != nil {
		shipment.Priority = normalizePriority(*patch.Priority)
	}
	if patch.PaymentStatus != nil {
		shipment.PaymentStatus = normalizePayment(*patch.PaymentStatus)
	}
	if patch.AssignedTo != nil {
		shipment.AssignedTo = *patch.AssignedTo
	}
	if patch.Route != nil {
		shipment.Route = patch.Route
	}

	if repriced {
		shipment.Pricing = domain.NewPricing(shipment.Package.Weight, shipment.ServiceType)
	}

	if err := s.repo.Update(ctx, shipment); err != nil {
		s.logger.Error().Err(err).Str("id", id).Msg("failed to update shipment")
		return nil, err
	}
	return shipment, nil
}

// DeleteShipment removes a shipment. The current hub's load is released in
// the same transaction when the shipment still occupies one.
func (s *ShipmentService) DeleteShipment(ctx context.Context, id string) error {
	shipment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	return s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.Delete(txCtx, id); err != nil {
			return err
		}
		if shipment.CurrentHub != "" && !shipment.Status.IsTerminal() {
			return s.hubRepo.AdjustLoad(txCtx, shipment.CurrentHub, -1)
		}
		return nil
	})
}

// RecordEvent appends a timeline entry after validating the status
// transition. Delivery events set actual_delivery; terminal events release
// the shipment's hub slot in the same transaction.
func (s *ShipmentService) RecordEvent(ctx context.Context, id string, event ports.RecordEventInput) (*domain.Shipment, error) {
	newStatus := domain.ShipmentStatus(event.Status)
	if !newStatus.IsValid() {
		return nil, domain.ValidationError("unknown status %q", event.Status)
	}

	shipment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !shipment.Status.CanTransitionTo(newStatus) {
		return nil, domain.TransitionError(shipment.Status, newStatus)
	}

	ts := event.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	entry := domain.TimelineEntry{
		Status:      newStatus,
		Location:    event.Location,
		Timestamp:   ts.UTC(),
		Description: event.Description,
	}

	var actualDelivery *time.Time
	if newStatus == domain.StatusDelivered {
		t := entry.Timestamp
		actualDelivery = &t
	}

	releaseHub := newStatus.IsTerminal() && shipment.CurrentHub != ""
	err = s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.AppendEvent(txCtx, id, entry, actualDelivery); err != nil {
			return err
		}
		if releaseHub {
			return s.hubRepo.AdjustLoad(txCtx, shipment.CurrentHub, -1)
		}
		return nil
	})
	if err != nil {
		s.logger.Error().Err(err).Str("id", id).Str("status", event.Status).Msg("failed to record event")
		return nil, err
	}

	metrics.EventsProcessedTotal.WithLabelValues(string(newStatus), "api").Inc()

	shipment.Status = newStatus
	shipment.Timeline = append(shipment.Timeline, entry)
	if actualDelivery != nil {
		shipment.ActualDelivery = actualDelivery
	}
	return shipment, nil
}

// Quote prices a hypothetical shipment without persisting anything.
func (s *ShipmentService) Quote(_ context.Context, weight float64, serviceType string) (*ports.QuoteResult, error) {
	if weight <= 0 {
		return nil, domain.ValidationError("weight must be greater than 0")
	}
	st := domain.ServiceType(serviceType)
	if !st.IsValid() {
		return nil, domain.ValidationError("unknown service type %q", serviceType)
	}
	return &ports.QuoteResult{
		Weight:      weight,
		ServiceType: serviceType,
		Pricing:     domain.NewPricing(weight, st),
	}, nil
}

// --- helpers ---

func validateCreateInput(input ports.CreateShipmentInput) error {
	switch {
	case input.Sender.Name == "":
		return domain.ValidationError("sender name is required")
	case input.Sender.Address == "":
		return domain.ValidationError("sender address is required")
	case input.Receiver.Name == "":
		return domain.ValidationError("receiver name is required")
	case input.Receiver.Address == "":
		return domain.ValidationError("receiver address is required")
	case input.Package.Weight <= 0:
		return domain.ValidationError("package weight must be greater than 0")
	}
	if !domain.ServiceType(input.ServiceType).IsValid() {
		return domain.ValidationError("unknown service type %q", input.ServiceType)
	}
	return nil
}

func toParty(p ports.PartyInput) domain.Party {
	return domain.Party{
		Name:    p.Name,
		Phone:   p.Phone,
		Address: p.Address,
		City:    p.City,
		State:   p.State,
		Pincode: p.Pincode,
	}
}

func toPackage(p ports.PackageInput) domain.Package {
	pkgType := domain.PackageType(p.Type)
	if pkgType == "" {
		pkgType = domain.PackageParcel
	}
	return domain.Package{
		Weight: p.Weight,
		Dimensions: domain.Dimensions{
			Length: p.Dimensions.Length,
			Width:  p.Dimensions.Width,
			Height: p.Dimensions.Height,
		},
		Type:        pkgType,
		Description: p.Description,
	}
}

func normalizePriority(p string) domain.Priority {
	switch domain.Priority(p) {
	case domain.PriorityExpress, domain.PriorityUrgent:
		return domain.Priority(p)
	default:
		return domain.PriorityStandard
	}
}

func normalizePayment(p string) domain.PaymentStatus {
	switch domain.PaymentStatus(p) {
	case domain.PaymentPaid, domain.PaymentCOD:
		return domain.PaymentStatus(p)
	default:
		return domain.PaymentPending
	}
}

// generateTrackingNumber returns a tracking number in the format BC-XXXXXXXX
// with a random numeric suffix.
func generateTrackingNumber() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("BC-%08d", time.Now().UnixNano()%100000000)
	}
	n := binary.BigEndian.Uint64(b[:]) % 100000000
	return fmt.Sprintf("BC-%08d", n)
}

// estimatedDelivery calculates the promised delivery time from the service
// tier offset: standard +3 days, express +2, overnight +1.
func estimatedDelivery(serviceType domain.ServiceType, from time.Time) time.Time {
	switch serviceType {
	case domain.ServiceOvernight:
		return from.AddDate(0, 0, 1)
	case domain.ServiceExpress:
		return from.AddDate(0, 0, 2)
	default:
		return from.AddDate(0, 0, 3)
	}
}
