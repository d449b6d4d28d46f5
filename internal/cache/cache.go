// Package cache is the short-lived hot layer in front of the durable store.
// Entries expire after a configured TTL; a miss and an expired entry are the
// same condition to callers.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned when a key is absent or expired.
var ErrMiss = errors.New("cache: miss")

// DefaultTTL matches the freshness a hot lookup is allowed to assume.
const DefaultTTL = 30 * time.Second

// Cache stores encoded snapshots keyed by domain name.
type Cache interface {
	Get(ctx context.Context, domain string) ([]byte, error)
	Set(ctx context.Context, domain string, data []byte, ttl time.Duration) error
}
