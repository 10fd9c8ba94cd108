package domain

import "time"

// HubStatus is the operational state of a hub.
type HubStatus string

const (
	HubActive      HubStatus = "active"
	HubInactive    HubStatus = "inactive"
	HubMaintenance HubStatus = "maintenance"
)

// IsValid reports whether the hub status is known.
func (s HubStatus) IsValid() bool {
	return s == HubActive || s == HubInactive || s == HubMaintenance
}

// Capacity thresholds for utilization flags.
const (
	UtilizationWarningPct = 80.0
	UtilizationAlertPct   = 100.0
)

// CapacityLevel qualifies a hub's utilization.
type CapacityLevel string

const (
	CapacityOK      CapacityLevel = "ok"
	CapacityWarning CapacityLevel = "warning"
	CapacityAlert   CapacityLevel = "alert"
)

// Hub is a physical logistics facility with fixed package-handling capacity.
// CurrentLoad <= Capacity is a soft constraint: exceeding it is surfaced as an
// alert, never rejected as a write.
type Hub struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Code        string    `json:"code" bson:"code"`
	Address     string    `json:"address" bson:"address"`
	City        string    `json:"city" bson:"city"`
	State       string    `json:"state" bson:"state"`
	Pincode     string    `json:"pincode" bson:"pincode"`
	Capacity    int       `json:"capacity" bson:"capacity"`
	CurrentLoad int       `json:"current_load" bson:"current_load"`
	Manager     string    `json:"manager" bson:"manager"`
	Phone       string    `json:"phone" bson:"phone"`
	Status      HubStatus `json:"status" bson:"status"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// Utilization returns current load as a percentage of capacity.
// Hubs with no declared capacity report 0.
func (h *Hub) Utilization() float64 {
	if h.Capacity <= 0 {
		return 0
	}
	return float64(h.CurrentLoad) / float64(h.Capacity) * 100
}

// CapacityLevel flags over-utilized hubs: >100% is an operational alert,
// >80% a warning.
func (h *Hub) CapacityLevel() CapacityLevel {
	u := h.Utilization()
	switch {
	case u > UtilizationAlertPct:
		return CapacityAlert
	case u > UtilizationWarningPct:
		return CapacityWarning
	default:
		return CapacityOK
	}
}
