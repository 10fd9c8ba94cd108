package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type partyRequest struct {
	Name    string `json:"name"    validate:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

type dimensionsRequest struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type packageRequest struct {
	Weight      float64           `json:"weight" validate:"required,gt=0"`
	Dimensions  dimensionsRequest `json:"dimensions"`
	Type        string            `json:"type"   validate:"omitempty,oneof=document parcel fragile express"`
	Description string            `json:"description"`
}

type createShipmentRequest struct {
	Sender        partyRequest   `json:"sender"         validate:"required"`
	Receiver      partyRequest   `json:"receiver"       validate:"required"`
	Package       packageRequest `json:"package"        validate:"required"`
	ServiceType   string         `json:"service_type"   validate:"required,oneof=standard express overnight"`
	Priority      string         `json:"priority"       validate:"omitempty,oneof=standard express urgent"`
	PaymentStatus string         `json:"payment_status" validate:"omitempty,oneof=pending paid cod"`
	HubID         string         `json:"hub_id"`
}

// updateShipmentRequest is a partial patch; nil fields leave stored values
// untouched. Status is deliberately absent: lifecycle changes go through the
// events endpoint only.
type updateShipmentRequest struct {
	Sender        *partyRequest   `json:"sender"`
	Receiver      *partyRequest   `json:"receiver"`
	Package       *packageRequest `json:"package"`
	ServiceType   *string         `json:"service_type"   validate:"omitempty,oneof=standard express overnight"`
	Priority      *string         `json:"priority"       validate:"omitempty,oneof=standard express urgent"`
	PaymentStatus *string         `json:"payment_status" validate:"omitempty,oneof=pending paid cod"`
	AssignedTo    *string         `json:"assigned_to"`
	Route         []string        `json:"route"`
}

type recordEventRequest struct {
	Status      string    `json:"status"      validate:"required,oneof=pending picked_up in_transit out_for_delivery delivered failed returned"`
	Location    string    `json:"location"    validate:"required"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// --- Response types ---
// Response-only types are owned by the transport layer so the JSON contract
// is not coupled to internal service changes. The wire format is uniformly
// snake_case; legacy camelCase producers are normalized here, never deeper.

type partyResponse struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

type dimensionsResponse struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type packageResponse struct {
	Weight      float64            `json:"weight"`
	Dimensions  dimensionsResponse `json:"dimensions"`
	Type        string             `json:"type"`
	Description string             `json:"description"`
}

type pricingResponse struct {
	BasePrice float64 `json:"base_price"`
	Tax       float64 `json:"tax"`
	Total     float64 `json:"total"`
}

type timelineEntryResponse struct {
	Status      string    `json:"status"`
	Location    string    `json:"location"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description,omitempty"`
}

type shipmentLinks struct {
	Self   string `json:"self"`
	Events string `json:"events"`
}

type shipmentResponse struct {
	ID                string                  `json:"id"`
	TrackingNumber    string                  `json:"tracking_number"`
	Sender            partyResponse           `json:"sender"`
	Receiver          partyResponse           `json:"receiver"`
	Package           packageResponse         `json:"package"`
	ServiceType       string                  `json:"service_type"`
	Priority          string                  `json:"priority"`
	Pricing           pricingResponse         `json:"pricing"`
	PaymentStatus     string                  `json:"payment_status"`
	Status            string                  `json:"status"`
	CurrentHub        string                  `json:"current_hub,omitempty"`
	AssignedTo        string                  `json:"assigned_to,omitempty"`
	Route             []string                `json:"route,omitempty"`
	Timeline          []timelineEntryResponse `json:"timeline"`
	CreatedAt         time.Time               `json:"created_at"`
	EstimatedDelivery time.Time               `json:"estimated_delivery"`
	ActualDelivery    *time.Time              `json:"actual_delivery,omitempty"`
	Links             shipmentLinks           `json:"_links"`
}

// shipmentSummaryResponse is the lightweight item used in list responses.
// It intentionally omits the timeline to keep payloads small.
type shipmentSummaryResponse struct {
	ID                string        `json:"id"`
	TrackingNumber    string        `json:"tracking_number"`
	SenderName        string        `json:"sender_name"`
	SenderCity        string        `json:"sender_city"`
	ReceiverName      string        `json:"receiver_name"`
	ReceiverCity      string        `json:"receiver_city"`
	ServiceType       string        `json:"service_type"`
	Status            string        `json:"status"`
	PaymentStatus     string        `json:"payment_status"`
	Total             float64       `json:"total"`
	CreatedAt         time.Time     `json:"created_at"`
	EstimatedDelivery time.Time     `json:"estimated_delivery"`
	Links             shipmentLinks `json:"_links"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listShipmentsResponse struct {
	Data       []shipmentSummaryResponse `json:"data"`
	Pagination paginationResponse        `json:"pagination"`
}

type quoteResponse struct {
	Weight      float64         `json:"weight"`
	ServiceType string          `json:"service_type"`
	Pricing     pricingResponse `json:"pricing"`
}
