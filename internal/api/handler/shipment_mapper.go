package handler

import (
	"github.com/bluecart/logistics-api/internal/core/domain"
	"github.com/bluecart/logistics-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createShipmentRequest) ports.CreateShipmentInput {
	return ports.CreateShipmentInput{
		Sender:        toPartyInput(req.Sender),
		Receiver:      toPartyInput(req.Receiver),
		Package:       toPackageInput(req.Package),
		ServiceType:   req.ServiceType,
		Priority:      req.Priority,
		PaymentStatus: req.PaymentStatus,
		HubID:         req.HubID,
	}
}

func toUpdateInput(req updateShipmentRequest) ports.UpdateShipmentInput {
	patch := ports.UpdateShipmentInput{
		ServiceType:   req.ServiceType,
		Priority:      req.Priority,
		PaymentStatus: req.PaymentStatus,
		AssignedTo:    req.AssignedTo,
		Route:         req.Route,
	}
	if req.Sender != nil {
		p := toPartyInput(*req.Sender)
		patch.Sender = &p
	}
	if req.Receiver != nil {
		p := toPartyInput(*req.Receiver)
		patch.Receiver = &p
	}
	if req.Package != nil {
		p := toPackageInput(*req.Package)
		patch.Package = &p
	}
	return patch
}

func toPartyInput(p partyRequest) ports.PartyInput {
	return ports.PartyInput{
		Name:    p.Name,
		Phone:   p.Phone,
		Address: p.Address,
		City:    p.City,
		State:   p.State,
		Pincode: p.Pincode,
	}
}

func toPackageInput(p packageRequest) ports.PackageInput {
	return ports.PackageInput{
		Weight: p.Weight,
		Dimensions: ports.DimensionsInput{
			Length: p.Dimensions.Length,
			Width:  p.Dimensions.Width,
			Height: p.Dimensions.Height,
		},
		Type:        p.Type,
		Description: p.Description,
	}
}

// --- Domain → HTTP response ---

func toShipmentResponse(s *domain.Shipment) shipmentResponse {
	timeline := make([]timelineEntryResponse, len(s.Timeline))
	for i, e := range s.Timeline {
		timeline[i] = timelineEntryResponse{
			Status:      string(e.Status),
			Location:    e.Location,
			Timestamp:   e.Timestamp.UTC(),
			Description: e.Description,
		}
	}

	return shipmentResponse{
		ID:             s.ID,
		TrackingNumber: s.TrackingNumber,
		Sender:         toPartyResponse(s.Sender),
		Receiver:       toPartyResponse(s.Receiver),
		Package: packageResponse{
			Weight: s.Package.Weight,
			Dimensions: dimensionsResponse{
				Length: s.Package.Dimensions.Length,
				Width:  s.Package.Dimensions.Width,
				Height: s.Package.Dimensions.Height,
			},
			Type:        string(s.Package.Type),
			Description: s.Package.Description,
		},
		ServiceType: string(s.ServiceType),
		Priority:    string(s.Priority),
		Pricing: pricingResponse{
			BasePrice: s.Pricing.BasePrice,
			Tax:       s.Pricing.Tax,
			Total:     s.Pricing.Total,
		},
		PaymentStatus:     string(s.PaymentStatus),
		Status:            string(s.Status),
		CurrentHub:        s.CurrentHub,
		AssignedTo:        s.AssignedTo,
		Route:             s.Route,
		Timeline:          timeline,
		CreatedAt:         s.CreatedAt.UTC(),
		EstimatedDelivery: s.EstimatedDelivery.UTC(),
		ActualDelivery:    s.ActualDelivery,
		Links:             linksFor(s),
	}
}

func toPartyResponse(p domain.Party) partyResponse {
	return partyResponse{
		Name:    p.Name,
		Phone:   p.Phone,
		Address: p.Address,
		City:    p.City,
		State:   p.State,
		Pincode: p.Pincode,
	}
}

func toListResponse(r *ports.ListShipmentsResult) listShipmentsResponse {
	items := make([]shipmentSummaryResponse, len(r.Items))
	for i, s := range r.Items {
		items[i] = shipmentSummaryResponse{
			ID:                s.ID,
			TrackingNumber:    s.TrackingNumber,
			SenderName:        s.Sender.Name,
			SenderCity:        s.Sender.City,
			ReceiverName:      s.Receiver.Name,
			ReceiverCity:      s.Receiver.City,
			ServiceType:       string(s.ServiceType),
			Status:            string(s.Status),
			PaymentStatus:     string(s.PaymentStatus),
			Total:             s.Pricing.Total,
			CreatedAt:         s.CreatedAt.UTC(),
			EstimatedDelivery: s.EstimatedDelivery.UTC(),
			Links:             linksFor(s),
		}
	}
	return listShipmentsResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}

func linksFor(s *domain.Shipment) shipmentLinks {
	return shipmentLinks{
		Self:   "/v1/shipments/" + s.ID,
		Events: "/v1/shipments/" + s.ID + "/events",
	}
}
