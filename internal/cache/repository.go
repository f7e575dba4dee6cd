package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/x1024/shkolo-cli/internal/logger"
	"github.com/x1024/shkolo-cli/models"
)

type cacheRepository struct {
	*DB
	logger *logger.Logger
}

func NewRepository(db *DB, logger *logger.Logger) Repository {
	return &cacheRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) (models.CacheEntry, error) {
	log := logger.FromContext(ctx)

	var entry models.CacheEntry
	row := r.DB.QueryRowContext(ctx, getCacheEntry, key)
	if err := row.Scan(&entry.Key, &entry.Payload, &entry.CachedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CacheEntry{}, ErrCacheMiss
		}
		log.Err(err).
			Str("func", "cacheRepository.Get").
			Str("cache_key", key).
			Msg("failed to scan cache entry row")
		return models.CacheEntry{}, fmt.Errorf("failed to read cache entry (key=%s): %w", key, err)
	}

	return entry, nil
}

func (r *cacheRepository) Put(ctx context.Context, key, payload string) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, upsertCacheEntry, key, payload, time.Now().UTC())
	if err != nil {
		log.Err(err).
			Str("func", "cacheRepository.Put").
			Str("cache_key", key).
			Msg("failed to execute upsert for cache entry")
		return fmt.Errorf("failed to store cache entry (key=%s): %w", key, err)
	}

	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, deleteCacheEntry, key)
	if err != nil {
		log.Err(err).
			Str("func", "cacheRepository.Delete").
			Str("cache_key", key).
			Msg("failed to execute delete for cache entry")
		return fmt.Errorf("failed to delete cache entry (key=%s): %w", key, err)
	}

	return nil
}

func (r *cacheRepository) Purge(ctx context.Context) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, purgeCache)
	if err != nil {
		log.Err(err).
			Str("func", "cacheRepository.Purge").
			Msg("failed to execute cache purge")
		return fmt.Errorf("failed to purge cache: %w", err)
	}

	return nil
}
