// Package cache stores generated recaps keyed by (handle, year) with a
// TTL. It is a best-effort side channel: callers must treat every
// failure here as a cache miss, never as a reason to abort generation.
package cache

import (
	"context"
	"encoding/json"
	"time"
)

// Entry is one cached recap. Data holds the recap JSON; validity
// beyond the TTL (the embedded version tag) is the caller's concern.
type Entry struct {
	Handle    string
	Year      int
	Data      json.RawMessage
	CreatedAt time.Time
	UpdatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the entry's TTL has passed at the given time.
func (e Entry) Expired(now time.Time) bool {
	return !now.Before(e.ExpiresAt)
}

// Gateway is the cache contract. Get returns (nil, nil) on a miss.
type Gateway interface {
	Get(ctx context.Context, handle string, year int) (*Entry, error)
	Put(ctx context.Context, handle string, year int, data json.RawMessage, expiresAt time.Time) error
	Delete(ctx context.Context, handle string, year int) error
	Entries(ctx context.Context) ([]Entry, error)
	Clear(ctx context.Context) (int64, error)
}
