package domain

import "time"

// ShipmentStatus represents the lifecycle state of a shipment.
type ShipmentStatus string

const (
	StatusPending        ShipmentStatus = "pending"
	StatusPickedUp       ShipmentStatus = "picked_up"
	StatusInTransit      ShipmentStatus = "in_transit"
	StatusOutForDelivery ShipmentStatus = "out_for_delivery"
	StatusDelivered      ShipmentStatus = "delivered"
	StatusFailed         ShipmentStatus = "failed"
	StatusReturned       ShipmentStatus = "returned"
)

// validTransitions defines the allowed state machine transitions.
// The forward chain is pending → picked_up → in_transit → out_for_delivery →
// delivered. "failed" is a side exit from any non-terminal state; "returned"
// is only reachable from out_for_delivery or failed (the stricter of the two
// candidate policies). delivered and returned are terminal.
var validTransitions = map[ShipmentStatus][]ShipmentStatus{
	StatusPending:        {StatusPickedUp, StatusFailed},
	StatusPickedUp:       {StatusInTransit, StatusFailed},
	StatusInTransit:      {StatusOutForDelivery, StatusFailed},
	StatusOutForDelivery: {StatusDelivered, StatusReturned, StatusFailed},
	StatusFailed:         {StatusReturned},
}

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s ShipmentStatus) CanTransitionTo(next ShipmentStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsValid reports whether the status is one of the known lifecycle states.
func (s ShipmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusPickedUp, StatusInTransit, StatusOutForDelivery,
		StatusDelivered, StatusFailed, StatusReturned:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s ShipmentStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusReturned
}

// IsActive reports whether the shipment is currently moving through the
// network. Used by the analytics fold.
func (s ShipmentStatus) IsActive() bool {
	return s == StatusPickedUp || s == StatusInTransit || s == StatusOutForDelivery
}

// ServiceType is the commercial tier chosen at creation. It drives the price
// multiplier and the promised delivery offset.
type ServiceType string

const (
	ServiceStandard  ServiceType = "standard"
	ServiceExpress   ServiceType = "express"
	ServiceOvernight ServiceType = "overnight"
)

// IsValid reports whether the service type is a known tier.
func (t ServiceType) IsValid() bool {
	return t == ServiceStandard || t == ServiceExpress || t == ServiceOvernight
}

// Priority is operational urgency metadata, independent of the package type
// and of the commercial service tier.
type Priority string

const (
	PriorityStandard Priority = "standard"
	PriorityExpress  Priority = "express"
	PriorityUrgent   Priority = "urgent"
)

// PaymentStatus tracks how the shipment is (to be) paid.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentCOD     PaymentStatus = "cod"
)

// PackageType classifies the physical contents of a shipment.
type PackageType string

const (
	PackageDocument PackageType = "document"
	PackageParcel   PackageType = "parcel"
	PackageFragile  PackageType = "fragile"
	PackageExpress  PackageType = "express"
)

// Party represents a sender or receiver.
type Party struct {
	Name    string `json:"name" bson:"name"`
	Phone   string `json:"phone" bson:"phone"`
	Address string `json:"address" bson:"address"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
	Pincode string `json:"pincode" bson:"pincode"`
}

// Dimensions represents the physical size of a package in centimetres.
type Dimensions struct {
	Length float64 `json:"length" bson:"length"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// Package contains the details of what is being shipped.
type Package struct {
	Weight      float64     `json:"weight" bson:"weight"`
	Dimensions  Dimensions  `json:"dimensions" bson:"dimensions"`
	Type        PackageType `json:"type" bson:"type"`
	Description string      `json:"description" bson:"description"`
}

// TimelineEntry records a single status change on a shipment. The timeline is
// append-only: the shipment's Status is always the status of the last entry.
type TimelineEntry struct {
	Status      ShipmentStatus `json:"status" bson:"status"`
	Location    string         `json:"location" bson:"location"`
	Timestamp   time.Time      `json:"timestamp" bson:"timestamp"`
	Description string         `json:"description,omitempty" bson:"description,omitempty"`
}

// Shipment is the core aggregate root.
type Shipment struct {
	ID                string          `json:"id" bson:"_id,omitempty"`
	TrackingNumber    string          `json:"tracking_number" bson:"tracking_number"`
	Sender            Party           `json:"sender" bson:"sender"`
	Receiver          Party           `json:"receiver" bson:"receiver"`
	Package           Package         `json:"package" bson:"package"`
	ServiceType       ServiceType     `json:"service_type" bson:"service_type"`
	Priority          Priority        `json:"priority" bson:"priority"`
	Pricing           Pricing         `json:"pricing" bson:"pricing"`
	PaymentStatus     PaymentStatus   `json:"payment_status" bson:"payment_status"`
	Status            ShipmentStatus  `json:"status" bson:"status"`
	CurrentHub        string          `json:"current_hub,omitempty" bson:"current_hub,omitempty"`
	AssignedTo        string          `json:"assigned_to,omitempty" bson:"assigned_to,omitempty"`
	Route             []string        `json:"route,omitempty" bson:"route,omitempty"`
	Timeline          []TimelineEntry `json:"timeline" bson:"timeline"`
	CreatedAt         time.Time       `json:"created_at" bson:"created_at"`
	EstimatedDelivery time.Time       `json:"estimated_delivery" bson:"estimated_delivery"`
	ActualDelivery    *time.Time      `json:"actual_delivery,omitempty" bson:"actual_delivery,omitempty"`
}

// LastTimelineStatus returns the status of the most recent timeline entry, or
// the empty status when the timeline is empty.
func (s *Shipment) LastTimelineStatus() ShipmentStatus {
	if len(s.Timeline) == 0 {
		return ""
	}
	return s.Timeline[len(s.Timeline)-1].Status
}

// DeliveredOnTime reports whether the shipment was delivered no later than
// its estimate. Shipments without an actual delivery timestamp report false.
func (s *Shipment) DeliveredOnTime() bool {
	if s.ActualDelivery == nil || s.EstimatedDelivery.IsZero() {
		return false
	}
	return !s.ActualDelivery.After(s.EstimatedDelivery)
}
