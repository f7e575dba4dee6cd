package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/x1024/shkolo-cli/internal/cache"
	"github.com/x1024/shkolo-cli/internal/config"
	"github.com/x1024/shkolo-cli/internal/logger"
	"github.com/x1024/shkolo-cli/models"
)

// FetchOptions controls how a report fetch interacts with the response
// cache.
type FetchOptions struct {
	// Refresh skips the cache read and overwrites the entry with the
	// fetched result.
	Refresh bool
	// NoCache bypasses the cache entirely: nothing is read and nothing
	// is written.
	NoCache bool
}

// cachedFetcher applies the read-through policy shared by all cached
// fetches. A nil repository disables caching.
type cachedFetcher struct {
	repo     cache.Repository
	ttl      time.Duration
	disabled bool
}

func newFetcher(repo cache.Repository, cfg *config.Config) *cachedFetcher {
	return &cachedFetcher{
		repo:     repo,
		ttl:      cfg.Cache.TTL.Duration,
		disabled: cfg.Cache.Disabled,
	}
}

func (f *cachedFetcher) active(opts FetchOptions) bool {
	return f.repo != nil && !f.disabled && !opts.NoCache
}

// fetchThrough returns the value cached under key when it is younger
// than the TTL, otherwise calls fetch and stores the result. Cache read
// and write failures are logged and treated as misses so an unavailable
// cache never takes down the network path.
func fetchThrough[T any](ctx context.Context, f *cachedFetcher, key string, opts FetchOptions, fetch func(context.Context) (T, error)) (T, models.CacheInfo, error) {
	log := logger.FromContext(ctx)

	if f.active(opts) && !opts.Refresh {
		entry, err := f.repo.Get(ctx, key)
		switch {
		case errors.Is(err, cache.ErrCacheMiss):
		case err != nil:
			log.Debug().Err(err).Str("cache_key", key).Msg("cache read failed")
		case entry.Expired(f.ttl, time.Now()):
		default:
			var cached T
			if uerr := json.Unmarshal([]byte(entry.Payload), &cached); uerr == nil {
				return cached, models.CacheInfo{Cached: true, Age: entry.Age(time.Now())}, nil
			}
			log.Debug().Str("cache_key", key).Msg("ignoring undecodable cache entry")
		}
	}

	fresh, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, models.CacheInfo{}, err
	}

	if f.active(opts) {
		if payload, merr := json.Marshal(fresh); merr == nil {
			if perr := f.repo.Put(ctx, key, string(payload)); perr != nil {
				log.Debug().Err(perr).Str("cache_key", key).Msg("cache write failed")
			}
		}
	}

	return fresh, models.CacheInfo{}, nil
}
