package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// ── CacheEntry.Expired ───────────────────────────────────────────────────────

func TestCacheEntry_Expired(t *testing.T) {
	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)

	fresh := CacheEntry{CachedAt: now.Add(-30 * time.Minute)}
	assert.False(t, fresh.Expired(time.Hour, now))

	stale := CacheEntry{CachedAt: now.Add(-2 * time.Hour)}
	assert.True(t, stale.Expired(time.Hour, now))

	boundary := CacheEntry{CachedAt: now.Add(-time.Hour)}
	assert.False(t, boundary.Expired(time.Hour, now), "exactly ttl old is still fresh")
}

// ── CacheEntry.Age ───────────────────────────────────────────────────────────

func TestCacheEntry_Age(t *testing.T) {
	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		old  time.Duration
		want string
	}{
		{"seconds", 42 * time.Second, "42s ago"},
		{"minutes", 5 * time.Minute, "5m ago"},
		{"hours", 3 * time.Hour, "3h ago"},
		{"days", 49 * time.Hour, "2d ago"},
		{"future timestamp clamps to zero", -time.Minute, "0s ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := CacheEntry{CachedAt: now.Add(-tt.old)}
			assert.Equal(t, tt.want, e.Age(now))
		})
	}
}
