package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/bluecart/logistics-api/internal/core/ports"
)

type recordingService struct {
	mu     sync.Mutex
	byTracking  map[string][]string
	done   chan struct{}
	expect int
}

func (s *recordingService) Process(_ context.Context, event ports.ScanEventInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byTracking[event.TrackingNumber] = append(s.byTracking[event.TrackingNumber], event.Status)
	total := 0
	for _, v := range s.byTracking {
		total += len(v)
	}
	if total == s.expect {
		close(s.done)
	}
	return nil
}

func TestDispatcher_PerShipmentOrdering(t *testing.T) {
	svc := &recordingService{byTracking: make(map[string][]string), done: make(chan struct{}), expect: 6}
	d := NewDispatcher(4, 16, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	sequence := []string{"picked_up", "in_transit", "out_for_delivery"}
	for _, status := range sequence {
		d.Enqueue(ports.ScanEventInput{TrackingNumber: "BC-00000001", Status: status})
		d.Enqueue(ports.ScanEventInput{TrackingNumber: "BC-00000002", Status: status})
	}

	select {
	case <-svc.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for events")
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	for _, tracking := range []string{"BC-00000001", "BC-00000002"} {
		got := svc.byTracking[tracking]
		if len(got) != len(sequence) {
			t.Fatalf("%s: expected %d events, got %d", tracking, len(sequence), len(got))
		}
		for i, status := range sequence {
			if got[i] != status {
				t.Errorf("%s: event %d = %q, want %q (ordering broken)", tracking, i, got[i], status)
			}
		}
	}
}

func TestDispatcher_ShardIsDeterministic(t *testing.T) {
	d := NewDispatcher(8, 1, nil, zerolog.Nop())
	first := d.shardIndex("BC-00000042")
	for i := 0; i < 100; i++ {
		if d.shardIndex("BC-00000042") != first {
			t.Fatal("same tracking number must always map to the same worker")
		}
	}
}
