package ports

import (
	"context"

	"github.com/bluecart/logistics-api/internal/core/domain"
)

// DailyRevenue is one bucket in the trailing seven day revenue series,
// keyed by UTC calendar day of shipment creation.
type DailyRevenue struct {
	Date    string  `json:"date"` // YYYY-MM-DD
	Revenue float64 `json:"revenue"`
}

// HubUtilization reports one hub's load state in the snapshot.
type HubUtilization struct {
	HubID       string               `json:"hub_id"`
	Code        string               `json:"code"`
	Name        string               `json:"name"`
	Utilization float64              `json:"utilization"`
	Level       domain.CapacityLevel `json:"level"`
}

// DashboardSnapshot is a computed, non-persisted summary of KPIs derived by
// scanning current entity state. Two snapshots taken with no intervening
// writes are identical.
type DashboardSnapshot struct {
	ActiveShipments int `json:"active_shipments"`
	DeliveredToday  int `json:"delivered_today"`
	PendingPickups  int `json:"pending_pickups"`

	// BookedRevenue sums pricing.total across all shipments regardless of
	// payment status; RealizedRevenue counts paid shipments only. Both are
	// exposed because the intended business rule is unconfirmed.
	BookedRevenue   float64 `json:"booked_revenue"`
	RealizedRevenue float64 `json:"realized_revenue"`

	ActiveHubs   int `json:"active_hubs"`
	ActiveRoutes int `json:"active_routes"`

	OnTimeDeliveryPct float64 `json:"on_time_delivery_pct"`
	AvgDeliveryDays   float64 `json:"avg_delivery_days"`

	DailyRevenue    []DailyRevenue   `json:"daily_revenue"`
	HubUtilizations []HubUtilization `json:"hub_utilizations"`
}

// AnalyticsService computes the dashboard snapshot server-side.
type AnalyticsService interface {
	DashboardSnapshot(ctx context.Context) (*DashboardSnapshot, error)
}
