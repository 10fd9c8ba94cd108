package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bluecart/logistics-api/internal/core/domain"
	"github.com/bluecart/logistics-api/internal/core/ports"
)

type stubDedup struct {
	seen     map[string]bool
	checkErr error
	marked   int
}

func newStubDedup() *stubDedup {
	return &stubDedup{seen: make(map[string]bool)}
}

func (d *stubDedup) key(tracking, status string, ts time.Time) string {
	return tracking + "|" + status + "|" + ts.UTC().Format(time.RFC3339)
}

func (d *stubDedup) IsDuplicate(_ context.Context, tracking, status string, ts time.Time) (bool, error) {
	if d.checkErr != nil {
		return false, d.checkErr
	}
	return d.seen[d.key(tracking, status, ts)], nil
}

func (d *stubDedup) Mark(_ context.Context, tracking, status string, ts time.Time) error {
	d.seen[d.key(tracking, status, ts)] = true
	d.marked++
	return nil
}

func scanInput(status string) ports.ScanEventInput {
	return ports.ScanEventInput{
		TrackingNumber: "BC-00000042",
		Status:         status,
		Location:       "Mumbai Hub",
		Timestamp:      time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC),
		Source:         "scanner",
	}
}

func newTestEventService(repo *stubShipmentRepo, dedup DedupChecker) ports.EventService {
	shipments := newTestShipmentService(repo, newStubHubRepo())
	return NewEventService(shipments, repo, dedup, discardLogger)
}

func TestEventService_Process_AppliesScan(t *testing.T) {
	repo := newStubShipmentRepo()
	seedShipment(repo, domain.StatusPending)
	dedup := newStubDedup()
	svc := newTestEventService(repo, dedup)

	if err := svc.Process(context.Background(), scanInput("picked_up")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := repo.byID["ship_seed"]
	if stored.Status != domain.StatusPickedUp {
		t.Errorf("expected status picked_up, got %q", stored.Status)
	}
	if len(stored.Timeline) != 2 {
		t.Errorf("expected 2 timeline entries, got %d", len(stored.Timeline))
	}
	if dedup.marked != 1 {
		t.Errorf("scan must be marked once, got %d", dedup.marked)
	}
}

func TestEventService_Process_DuplicateSkipped(t *testing.T) {
	repo := newStubShipmentRepo()
	seedShipment(repo, domain.StatusPending)
	dedup := newStubDedup()
	svc := newTestEventService(repo, dedup)

	input := scanInput("picked_up")
	if err := svc.Process(context.Background(), input); err != nil {
		t.Fatalf("first scan failed: %v", err)
	}
	if err := svc.Process(context.Background(), input); err != nil {
		t.Fatalf("duplicate scan must be silently skipped, got %v", err)
	}

	if got := len(repo.byID["ship_seed"].Timeline); got != 2 {
		t.Errorf("duplicate must not append, got %d entries", got)
	}
}

func TestEventService_Process_DedupFailureIsNotFatal(t *testing.T) {
	repo := newStubShipmentRepo()
	seedShipment(repo, domain.StatusPending)
	dedup := newStubDedup()
	dedup.checkErr = errors.New("redis down")
	svc := newTestEventService(repo, dedup)

	// Dedup is best effort: a broken idempotency store must not block scans.
	if err := svc.Process(context.Background(), scanInput("picked_up")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.byID["ship_seed"].Status != domain.StatusPickedUp {
		t.Error("scan must still be applied when dedup check fails")
	}
}

func TestEventService_Process_UnknownTracking(t *testing.T) {
	svc := newTestEventService(newStubShipmentRepo(), newStubDedup())

	err := svc.Process(context.Background(), scanInput("picked_up"))
	if !errors.Is(err, domain.ErrShipmentNotFound) {
		t.Errorf("expected ErrShipmentNotFound, got %v", err)
	}
}

func TestEventService_Process_InvalidTransitionSurfaces(t *testing.T) {
	repo := newStubShipmentRepo()
	seedShipment(repo, domain.StatusPending)
	svc := newTestEventService(repo, newStubDedup())

	err := svc.Process(context.Background(), scanInput("delivered"))
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
}
