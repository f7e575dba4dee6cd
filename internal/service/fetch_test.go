package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFetcher(repo *memRepo) *cachedFetcher {
	return &cachedFetcher{repo: repo, ttl: time.Hour}
}

func TestFetchThrough_FreshHitSkipsNetwork(t *testing.T) {
	repo := newMemRepo()
	repo.seed("students", `["a","b"]`, 5*time.Minute)

	calls := 0
	got, info, err := fetchThrough(context.Background(), newTestFetcher(repo), "students", FetchOptions{}, func(context.Context) ([]string, error) {
		calls++
		return []string{"fresh"}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
	assert.True(t, info.Cached)
	assert.Equal(t, "5m ago", info.Age)
	assert.Zero(t, calls)
}

func TestFetchThrough_ExpiredEntryRefetches(t *testing.T) {
	repo := newMemRepo()
	repo.seed("students", `["stale"]`, 2*time.Hour)

	got, info, err := fetchThrough(context.Background(), newTestFetcher(repo), "students", FetchOptions{}, func(context.Context) ([]string, error) {
		return []string{"fresh"}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"fresh"}, got)
	assert.False(t, info.Cached)
	assert.Equal(t, `["fresh"]`, repo.entries["students"].Payload)
}

func TestFetchThrough_MissFetchesAndStores(t *testing.T) {
	repo := newMemRepo()

	got, info, err := fetchThrough(context.Background(), newTestFetcher(repo), "grades_7", FetchOptions{}, func(context.Context) ([]string, error) {
		return []string{"6"}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"6"}, got)
	assert.False(t, info.Cached)
	assert.Equal(t, 1, repo.puts)
	assert.Equal(t, `["6"]`, repo.entries["grades_7"].Payload)
}

func TestFetchThrough_RefreshBypassesReadButWrites(t *testing.T) {
	repo := newMemRepo()
	repo.seed("students", `["old"]`, time.Minute)

	got, info, err := fetchThrough(context.Background(), newTestFetcher(repo), "students", FetchOptions{Refresh: true}, func(context.Context) ([]string, error) {
		return []string{"new"}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, got)
	assert.False(t, info.Cached)
	assert.Equal(t, `["new"]`, repo.entries["students"].Payload)
}

func TestFetchThrough_NoCacheBypassesEverything(t *testing.T) {
	repo := newMemRepo()
	repo.seed("students", `["old"]`, time.Minute)

	got, _, err := fetchThrough(context.Background(), newTestFetcher(repo), "students", FetchOptions{NoCache: true}, func(context.Context) ([]string, error) {
		return []string{"new"}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, got)
	assert.Zero(t, repo.puts)
	assert.Equal(t, `["old"]`, repo.entries["students"].Payload, "no-cache must not overwrite the entry")
}

func TestFetchThrough_FetchErrorPropagates(t *testing.T) {
	repo := newMemRepo()
	boom := errors.New("api down")

	_, _, err := fetchThrough(context.Background(), newTestFetcher(repo), "students", FetchOptions{}, func(context.Context) ([]string, error) {
		return nil, boom
	})

	require.ErrorIs(t, err, boom)
	assert.Zero(t, repo.puts)
}

func TestFetchThrough_CacheFailuresAreIgnored(t *testing.T) {
	repo := newMemRepo()
	repo.getErr = errors.New("database is locked")
	repo.putErr = errors.New("database is locked")

	got, info, err := fetchThrough(context.Background(), newTestFetcher(repo), "students", FetchOptions{}, func(context.Context) ([]string, error) {
		return []string{"fresh"}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"fresh"}, got)
	assert.False(t, info.Cached)
}

func TestFetchThrough_UndecodableEntryRefetches(t *testing.T) {
	repo := newMemRepo()
	repo.seed("students", `{not json`, time.Minute)

	got, info, err := fetchThrough(context.Background(), newTestFetcher(repo), "students", FetchOptions{}, func(context.Context) ([]string, error) {
		return []string{"fresh"}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"fresh"}, got)
	assert.False(t, info.Cached)
	assert.Equal(t, `["fresh"]`, repo.entries["students"].Payload)
}

func TestFetchThrough_NilRepositoryFetchesLive(t *testing.T) {
	fetcher := &cachedFetcher{ttl: time.Hour}

	got, info, err := fetchThrough(context.Background(), fetcher, "students", FetchOptions{}, func(context.Context) ([]string, error) {
		return []string{"fresh"}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"fresh"}, got)
	assert.False(t, info.Cached)
}

func TestFetchThrough_DisabledCacheFetchesLive(t *testing.T) {
	repo := newMemRepo()
	repo.seed("students", `["old"]`, time.Minute)
	fetcher := &cachedFetcher{repo: repo, ttl: time.Hour, disabled: true}

	got, _, err := fetchThrough(context.Background(), fetcher, "students", FetchOptions{}, func(context.Context) ([]string, error) {
		return []string{"new"}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, got)
	assert.Zero(t, repo.puts)
}
