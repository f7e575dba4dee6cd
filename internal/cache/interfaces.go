// Package cache stores API responses in a local sqlite database so that
// repeated commands can answer from disk instead of the network.
//
// Entries are keyed by resource (see the Key helpers) and carry the raw
// JSON payload plus the time it was fetched. Freshness is decided by the
// caller against the configured TTL; the repository itself never expires
// entries, expired ones are simply overwritten on the next fetch.
package cache

import (
	"context"

	"github.com/x1024/shkolo-cli/models"
)

// Repository persists cached API responses.
type Repository interface {

	// Get returns the entry stored under key. Returns ErrCacheMiss when
	// no entry exists.
	Get(ctx context.Context, key string) (models.CacheEntry, error)

	// Put stores payload under key, replacing any previous entry and
	// stamping the current time.
	Put(ctx context.Context, key, payload string) error

	// Delete removes the entry stored under key. Deleting an absent key
	// is not an error.
	Delete(ctx context.Context, key string) error

	// Purge removes all cached entries.
	Purge(ctx context.Context) error
}
