package service

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/bluecart/logistics-api/internal/core/domain"
	"github.com/bluecart/logistics-api/internal/core/ports"
)

const revenueTrailingDays = 7

// AnalyticsService computes the dashboard KPI snapshot as a pure fold over
// the current shipment and hub collections. Nothing is cached or persisted:
// two calls with no intervening writes produce identical snapshots.
// Day bucketing ("delivered today", trailing revenue) uses UTC boundaries.
type AnalyticsService struct {
	shipmentRepo ports.ShipmentRepository
	hubRepo      ports.HubRepository
	logger       zerolog.Logger
	// now is injectable for tests; defaults to time.Now.
	now func() time.Time
}

func NewAnalyticsService(shipmentRepo ports.ShipmentRepository, hubRepo ports.HubRepository, logger zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{
		shipmentRepo: shipmentRepo,
		hubRepo:      hubRepo,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *AnalyticsService) DashboardSnapshot(ctx context.Context) (*ports.DashboardSnapshot, error) {
	shipments, err := s.shipmentRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	hubs, err := s.hubRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := ComputeSnapshot(shipments, hubs, s.now().UTC())
	s.logger.Debug().
		Int("shipments", len(shipments)).
		Int("hubs", len(hubs)).
		Msg("dashboard snapshot computed")
	return snapshot, nil
}

// ComputeSnapshot folds the KPI set from the given collections. Pure: inputs
// are never mutated, missing or partial fields are excluded rather than
// causing an error.
func ComputeSnapshot(shipments []*domain.Shipment, hubs []*domain.Hub, now time.Time) *ports.DashboardSnapshot {
	snap := &ports.DashboardSnapshot{}
	today := now.UTC().Truncate(24 * time.Hour)

	activeHubs := make(map[string]struct{})
	cityPairs := make(map[string]struct{})
	revenueByDay := make(map[string]float64)

	var delivered, onTime int
	var totalDeliveryDays float64
	var deliveryDurations int

	for _, sh := range shipments {
		if sh == nil {
			continue
		}

		switch {
		case sh.Status.IsActive():
			snap.ActiveShipments++
			if sh.CurrentHub != "" {
				activeHubs[sh.CurrentHub] = struct{}{}
			}
			if sh.Sender.City != "" && sh.Receiver.City != "" {
				cityPairs[sh.Sender.City+"\x00"+sh.Receiver.City] = struct{}{}
			}
		case sh.Status == domain.StatusPending:
			snap.PendingPickups++
		}

		snap.BookedRevenue += sh.Pricing.Total
		if sh.PaymentStatus == domain.PaymentPaid {
			snap.RealizedRevenue += sh.Pricing.Total
		}

		if !sh.CreatedAt.IsZero() {
			day := sh.CreatedAt.UTC().Truncate(24 * time.Hour)
			if diff := today.Sub(day); diff >= 0 && diff < revenueTrailingDays*24*time.Hour {
				revenueByDay[day.Format("2006-01-02")] += sh.Pricing.Total
			}
		}

		if sh.Status == domain.StatusDelivered && sh.ActualDelivery != nil {
			delivered++
			if sh.ActualDelivery.UTC().Truncate(24 * time.Hour).Equal(today) {
				snap.DeliveredToday++
			}
			if sh.DeliveredOnTime() {
				onTime++
			}
			if !sh.CreatedAt.IsZero() {
				totalDeliveryDays += sh.ActualDelivery.Sub(sh.CreatedAt).Hours() / 24
				deliveryDurations++
			}
		}
	}

	snap.ActiveHubs = len(activeHubs)
	snap.ActiveRoutes = len(cityPairs)
	snap.BookedRevenue = round2(snap.BookedRevenue)
	snap.RealizedRevenue = round2(snap.RealizedRevenue)

	if delivered > 0 {
		snap.OnTimeDeliveryPct = round2(float64(onTime) / float64(delivered) * 100)
	}
	if deliveryDurations > 0 {
		snap.AvgDeliveryDays = round2(totalDeliveryDays / float64(deliveryDurations))
	}

	snap.DailyRevenue = make([]ports.DailyRevenue, 0, revenueTrailingDays)
	for i := revenueTrailingDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i).Format("2006-01-02")
		snap.DailyRevenue = append(snap.DailyRevenue, ports.DailyRevenue{
			Date:    day,
			Revenue: round2(revenueByDay[day]),
		})
	}

	snap.HubUtilizations = make([]ports.HubUtilization, 0, len(hubs))
	for _, h := range hubs {
		if h == nil {
			continue
		}
		snap.HubUtilizations = append(snap.HubUtilizations, ports.HubUtilization{
			HubID:       h.ID,
			Code:        h.Code,
			Name:        h.Name,
			Utilization: round2(h.Utilization()),
			Level:       h.CapacityLevel(),
		})
	}

	return snap
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
