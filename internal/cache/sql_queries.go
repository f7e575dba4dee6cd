package cache

const (
	getCacheEntry = `
		SELECT
			cache_key,
			payload,
			cached_at
		FROM api_cache
		WHERE cache_key = $1;`

	upsertCacheEntry = `
		INSERT INTO api_cache (
			cache_key,
			payload,
			cached_at
		) VALUES ($1, $2, $3)
		ON CONFLICT (cache_key) DO UPDATE SET
			payload   = excluded.payload,
			cached_at = excluded.cached_at;`

	deleteCacheEntry = `
		DELETE FROM api_cache
		WHERE cache_key = $1;`

	purgeCache = `
		DELETE FROM api_cache;`
)
