// Package kv defines the persistence contract used for small pieces of user
// state such as the onboarding flag. Backends live in internal/data/stores.
package kv

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// ErrNotFound is returned, possibly wrapped, by Get and GetRaw for a missing
// or expired key. It aliases sql.ErrNoRows so the SQLite backend can pass
// its errors through unchanged.
var ErrNotFound = sql.ErrNoRows

// IsNotFound reports whether err means the key does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Entry is a stored value together with its bookkeeping timestamps.
type Entry struct {
	Key       string
	Value     json.RawMessage
	ExpiresAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// KV stores JSON-encoded values under string keys.
//
// SetTTL with a ttl of zero or less deletes the key: a value that is already
// expired is indistinguishable from a missing one. Set clears any TTL left by
// an earlier SetTTL.
type KV interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any) error
	SetTTL(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Has(ctx context.Context, key string) (bool, error)
	ListKeys(ctx context.Context) ([]string, error)
	GetRaw(ctx context.Context, key string) (Entry, error)
}

// Sweeper is implemented by backends that keep expired entries around until
// they are explicitly purged.
type Sweeper interface {
	SweepExpired(ctx context.Context) error
}
