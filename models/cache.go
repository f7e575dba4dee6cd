package models

import (
	"fmt"
	"time"
)

// CacheEntry is one cached API response payload stored in the local
// sqlite database.
type CacheEntry struct {
	Key      string
	Payload  string
	CachedAt time.Time
}

// Expired reports whether the entry is older than ttl at the given time.
// Expired entries stay in the store and are overwritten on the next
// successful fetch.
func (e CacheEntry) Expired(ttl time.Duration, now time.Time) bool {
	return now.Sub(e.CachedAt) > ttl
}

// CacheInfo describes where a report's data came from. Age is the
// human-readable entry age and is empty for fresh fetches.
type CacheInfo struct {
	Cached bool   `json:"cached"`
	Age    string `json:"cached_at,omitempty"`
}

// Age renders the entry age the way cached results are reported:
// seconds under a minute, then minutes, hours, and days.
func (e CacheEntry) Age(now time.Time) string {
	d := now.Sub(e.CachedAt)
	if d < 0 {
		d = 0
	}
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours())/24)
	}
}
