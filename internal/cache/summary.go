package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/vietanh2810/hunt-api/internal/domain"
)

// SummaryCache stores hunt summaries as JSON. It satisfies
// service.SummaryCache.
type SummaryCache struct {
	cache Cache
	ttl   time.Duration
}

func NewSummaryCache(cache Cache, ttl time.Duration) *SummaryCache {
	return &SummaryCache{
		cache: cache,
		ttl:   ttl,
	}
}

func summaryKey(huntID uint) string {
	return fmt.Sprintf("hunt:%d:summary", huntID)
}

func (c *SummaryCache) Get(ctx context.Context, huntID uint) (domain.HuntSummary, bool, error) {
	raw, err := c.cache.Get(ctx, summaryKey(huntID))
	if errors.Is(err, ErrMiss) {
		return domain.HuntSummary{}, false, nil
	}
	if err != nil {
		return domain.HuntSummary{}, false, fmt.Errorf("c.cache.Get -> %w", err)
	}

	var summary domain.HuntSummary
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		return domain.HuntSummary{}, false, fmt.Errorf("json.Unmarshal -> %w", err)
	}

	return summary, true, nil
}

func (c *SummaryCache) Set(ctx context.Context, summary domain.HuntSummary) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("json.Marshal -> %w", err)
	}

	if err := c.cache.Set(ctx, summaryKey(summary.HuntID), string(raw), c.ttl); err != nil {
		return fmt.Errorf("c.cache.Set -> %w", err)
	}

	return nil
}

func (c *SummaryCache) Invalidate(ctx context.Context, huntID uint) error {
	if _, err := c.cache.Del(ctx, summaryKey(huntID)); err != nil {
		return fmt.Errorf("c.cache.Del -> %w", err)
	}

	return nil
}
