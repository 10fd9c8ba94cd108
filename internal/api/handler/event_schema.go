package handler

import "time"

type scanEventRequest struct {
	TrackingNumber string    `json:"tracking_number" validate:"required,tracking"`
	Status         string    `json:"status"          validate:"required,oneof=picked_up in_transit out_for_delivery delivered failed returned"`
	Location       string    `json:"location"        validate:"required"`
	Description    string    `json:"description"`
	Timestamp      time.Time `json:"timestamp"       validate:"required"`
	Source         string    `json:"source"          validate:"required"`
}

type acceptedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}
