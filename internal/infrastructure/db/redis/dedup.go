package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Scanners and webhook sources retry aggressively, so the same scan can
// arrive more than once. A scan is identified by tracking number, status and
// the device timestamp; seen scans are remembered for scanDedupTTL.
const scanDedupTTL = time.Hour

// ScanDedup provides idempotency checks for scan events, backed by Redis.
type ScanDedup struct {
	client *redis.Client
}

func NewScanDedup(client *redis.Client) *ScanDedup {
	return &ScanDedup{client: client}
}

// IsDuplicate reports whether this exact scan has already been processed.
func (d *ScanDedup) IsDuplicate(ctx context.Context, trackingNumber, status string, ts time.Time) (bool, error) {
	n, err := d.client.Exists(ctx, scanKey(trackingNumber, status, ts)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this scan has been processed.
func (d *ScanDedup) Mark(ctx context.Context, trackingNumber, status string, ts time.Time) error {
	return d.client.Set(ctx, scanKey(trackingNumber, status, ts), "1", scanDedupTTL).Err()
}

func scanKey(trackingNumber, status string, ts time.Time) string {
	return fmt.Sprintf("scan:%s:%s:%d", trackingNumber, status, ts.Unix())
}
