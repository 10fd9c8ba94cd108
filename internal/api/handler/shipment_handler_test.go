package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bluecart/logistics-api/internal/core/domain"
	"github.com/bluecart/logistics-api/internal/core/ports"
)

type stubShipmentService struct {
	createFn func(ctx context.Context, input ports.CreateShipmentInput) (*domain.Shipment, error)
	getFn    func(ctx context.Context, id string) (*domain.Shipment, error)
	trackFn  func(ctx context.Context, trackingNumber string) (*domain.Shipment, error)
	listFn   func(ctx context.Context, filter ports.ListShipmentsFilter) (*ports.ListShipmentsResult, error)
	eventFn  func(ctx context.Context, id string, event ports.RecordEventInput) (*domain.Shipment, error)
	quoteFn  func(ctx context.Context, weight float64, serviceType string) (*ports.QuoteResult, error)
}

func (s *stubShipmentService) CreateShipment(ctx context.Context, input ports.CreateShipmentInput) (*domain.Shipment, error) {
	return s.createFn(ctx, input)
}

func (s *stubShipmentService) GetShipment(ctx context.Context, id string) (*domain.Shipment, error) {
	return s.getFn(ctx, id)
}

func (s *stubShipmentService) TrackShipment(ctx context.Context, trackingNumber string) (*domain.Shipment, error) {
	return s.trackFn(ctx, trackingNumber)
}

func (s *stubShipmentService) ListShipments(ctx context.Context, filter ports.ListShipmentsFilter) (*ports.ListShipmentsResult, error) {
	return s.listFn(ctx, filter)
}

func (s *stubShipmentService) UpdateShipment(context.Context, string, ports.UpdateShipmentInput) (*domain.Shipment, error) {
	panic("not wired in this test")
}

func (s *stubShipmentService) DeleteShipment(context.Context, string) error {
	panic("not wired in this test")
}

func (s *stubShipmentService) RecordEvent(ctx context.Context, id string, event ports.RecordEventInput) (*domain.Shipment, error) {
	return s.eventFn(ctx, id, event)
}

func (s *stubShipmentService) Quote(ctx context.Context, weight float64, serviceType string) (*ports.QuoteResult, error) {
	return s.quoteFn(ctx, weight, serviceType)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sampleShipment() *domain.Shipment {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	return &domain.Shipment{
		ID:             "ship_1",
		TrackingNumber: "BC-00000042",
		Sender:         domain.Party{Name: "Asha Traders", City: "Mumbai"},
		Receiver:       domain.Party{Name: "Ravi Kumar", City: "Delhi"},
		Package:        domain.Package{Weight: 2.5, Type: domain.PackageParcel},
		ServiceType:    domain.ServiceExpress,
		Priority:       domain.PriorityStandard,
		Pricing:        domain.NewPricing(2.5, domain.ServiceExpress),
		PaymentStatus:  domain.PaymentPending,
		Status:         domain.StatusPending,
		Timeline: []domain.TimelineEntry{
			{Status: domain.StatusPending, Location: "Mumbai", Timestamp: now},
		},
		CreatedAt:         now,
		EstimatedDelivery: now.AddDate(0, 0, 2),
	}
}

const validCreateBody = `{
	"sender":   {"name": "Asha Traders", "address": "12 MG Road", "city": "Mumbai"},
	"receiver": {"name": "Ravi Kumar", "address": "4 Park Street", "city": "Delhi"},
	"package":  {"weight": 2.5},
	"service_type": "express"
}`

func TestShipmentHandler_Create_Success(t *testing.T) {
	stub := &stubShipmentService{
		createFn: func(_ context.Context, input ports.CreateShipmentInput) (*domain.Shipment, error) {
			if input.ServiceType != "express" || input.Package.Weight != 2.5 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return sampleShipment(), nil
		},
	}
	h := NewShipmentHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/shipments", validCreateBody)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["tracking_number"] != "BC-00000042" {
		t.Errorf("unexpected tracking number: %v", resp["tracking_number"])
	}
	links, ok := resp["_links"].(map[string]any)
	if !ok {
		t.Fatalf("expected _links in response")
	}
	if links["self"] != "/v1/shipments/ship_1" {
		t.Errorf("unexpected self link: %v", links["self"])
	}
}

func TestShipmentHandler_Create_RejectsBadTier(t *testing.T) {
	h := NewShipmentHandler(&stubShipmentService{})

	body := strings.Replace(validCreateBody, "express", "teleport", 1)
	c, rec := newTestContext(t, http.MethodPost, "/v1/shipments", body)

	err := h.Create(c)
	if err == nil {
		t.Fatal("expected validation error")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v (rec %d)", err, rec.Code)
	}
}

func TestShipmentHandler_Create_RejectsMalformedJSON(t *testing.T) {
	h := NewShipmentHandler(&stubShipmentService{})

	c, _ := newTestContext(t, http.MethodPost, "/v1/shipments", `{"sender": `)
	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestShipmentHandler_Track_PropagatesNotFound(t *testing.T) {
	stub := &stubShipmentService{
		trackFn: func(_ context.Context, trackingNumber string) (*domain.Shipment, error) {
			return nil, domain.ErrShipmentNotFound
		},
	}
	h := NewShipmentHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/v1/track/BC-404", "")
	c.SetParamNames("tracking_number")
	c.SetParamValues("BC-404")

	// Domain errors pass through untouched; the central error handler maps
	// them to status codes.
	if err := h.Track(c); err != domain.ErrShipmentNotFound {
		t.Fatalf("expected ErrShipmentNotFound passthrough, got %v", err)
	}
}

func TestShipmentHandler_List_ParsesQuery(t *testing.T) {
	var captured ports.ListShipmentsFilter
	stub := &stubShipmentService{
		listFn: func(_ context.Context, filter ports.ListShipmentsFilter) (*ports.ListShipmentsResult, error) {
			captured = filter
			return &ports.ListShipmentsResult{Page: filter.Page, Limit: filter.Limit}, nil
		},
	}
	h := NewShipmentHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/v1/shipments?status=in_transit&service_type=express&search=asha&page=2&limit=25", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured.Status != "in_transit" || captured.ServiceType != "express" || captured.Search != "asha" {
		t.Errorf("filter not parsed: %+v", captured)
	}
	if captured.Page != 2 || captured.Limit != 25 {
		t.Errorf("pagination not parsed: page=%d limit=%d", captured.Page, captured.Limit)
	}
}

func TestShipmentHandler_RecordEvent_Success(t *testing.T) {
	stub := &stubShipmentService{
		eventFn: func(_ context.Context, id string, event ports.RecordEventInput) (*domain.Shipment, error) {
			if id != "ship_1" || event.Status != "picked_up" {
				t.Fatalf("unexpected args: %s %+v", id, event)
			}
			s := sampleShipment()
			s.Status = domain.StatusPickedUp
			return s, nil
		},
	}
	h := NewShipmentHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/shipments/ship_1/events",
		`{"status": "picked_up", "location": "Mumbai Hub"}`)
	c.SetParamNames("id")
	c.SetParamValues("ship_1")

	if err := h.RecordEvent(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestShipmentHandler_RecordEvent_RejectsUnknownStatus(t *testing.T) {
	h := NewShipmentHandler(&stubShipmentService{})

	c, _ := newTestContext(t, http.MethodPost, "/v1/shipments/ship_1/events",
		`{"status": "vanished", "location": "nowhere"}`)
	c.SetParamNames("id")
	c.SetParamValues("ship_1")

	err := h.RecordEvent(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v", err)
	}
}

func TestShipmentHandler_Quote(t *testing.T) {
	stub := &stubShipmentService{
		quoteFn: func(_ context.Context, weight float64, serviceType string) (*ports.QuoteResult, error) {
			return &ports.QuoteResult{
				Weight:      weight,
				ServiceType: serviceType,
				Pricing:     domain.NewPricing(weight, domain.ServiceType(serviceType)),
			}, nil
		},
	}
	h := NewShipmentHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/v1/shipments/quote?weight=2.5&service_type=express", "")
	if err := h.Quote(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp quoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Pricing.Total != 19.92 {
		t.Errorf("expected total 19.92, got %v", resp.Pricing.Total)
	}
}
