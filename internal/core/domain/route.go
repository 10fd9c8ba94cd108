package domain

import "time"

// RouteStatus is the lifecycle state of a delivery route.
type RouteStatus string

const (
	RoutePlanned    RouteStatus = "planned"
	RouteInProgress RouteStatus = "in_progress"
	RouteCompleted  RouteStatus = "completed"
)

// StopType distinguishes pickup stops from delivery stops.
type StopType string

const (
	StopPickup   StopType = "pickup"
	StopDelivery StopType = "delivery"
)

// StopStatus is the completion state of a single stop.
type StopStatus string

const (
	StopPending   StopStatus = "pending"
	StopCompleted StopStatus = "completed"
	StopFailed    StopStatus = "failed"
)

// Stop is one entry in a route's ordered stop list.
type Stop struct {
	ShipmentID  string     `json:"shipment_id" bson:"shipment_id"`
	Address     string     `json:"address" bson:"address"`
	Type        StopType   `json:"type" bson:"type"`
	Status      StopStatus `json:"status" bson:"status"`
	CompletedAt *time.Time `json:"completed_at,omitempty" bson:"completed_at,omitempty"`
}

// Route is an ordered set of stops assigned to one driver for one operating
// period. CompletedStops <= TotalStops always holds; TotalStops is derived
// from the stop list at creation.
type Route struct {
	ID             string      `json:"id" bson:"_id,omitempty"`
	Name           string      `json:"name" bson:"name"`
	AssignedTo     string      `json:"assigned_to" bson:"assigned_to"`
	HubID          string      `json:"hub_id" bson:"hub_id"`
	ShipmentIDs    []string    `json:"shipment_ids" bson:"shipment_ids"`
	Stops          []Stop      `json:"stops" bson:"stops"`
	Status         RouteStatus `json:"status" bson:"status"`
	TotalStops     int         `json:"total_stops" bson:"total_stops"`
	CompletedStops int         `json:"completed_stops" bson:"completed_stops"`
	CreatedAt      time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at" bson:"updated_at"`
}
