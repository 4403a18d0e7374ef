package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/hunt-api/internal/domain"
)

type memCache struct {
	mu   sync.Mutex
	data map[string]string
	ttls map[string]time.Duration
}

func newMemCache() *memCache {
	return &memCache{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *memCache) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.data[key]
	if !ok {
		return "", ErrMiss
	}

	return v, nil
}

func (m *memCache) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = value
	m.ttls[key] = ttl

	return nil
}

func (m *memCache) Del(_ context.Context, keys ...string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for _, k := range keys {
		if _, ok := m.data[k]; ok {
			delete(m.data, k)
			n++
		}
	}

	return n, nil
}

func (m *memCache) Ping(context.Context) error { return nil }

func (m *memCache) Close() error { return nil }

func TestSummaryCache(t *testing.T) {
	ctx := context.Background()
	backend := newMemCache()
	c := NewSummaryCache(backend, time.Minute)

	_, ok, err := c.Get(ctx, 7)
	require.NoError(t, err)
	assert.False(t, ok)

	available := 3
	summary := domain.HuntSummary{
		HuntID:          7,
		Capacity:        &available,
		ConfirmedCount:  2,
		WaitlistedCount: 1,
		AvailableSpots:  &available,
		MinimumPaxMet:   true,
	}
	require.NoError(t, c.Set(ctx, summary))
	assert.Equal(t, time.Minute, backend.ttls["hunt:7:summary"])

	got, ok, err := c.Get(ctx, 7)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, summary, got)

	require.NoError(t, c.Invalidate(ctx, 7))
	_, ok, err = c.Get(ctx, 7)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSummaryCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	backend := newMemCache()
	require.NoError(t, backend.Set(ctx, summaryKey(9), "{not json", 0))

	_, ok, err := NewSummaryCache(backend, time.Minute).Get(ctx, 9)
	assert.Error(t, err)
	assert.False(t, ok)
}
