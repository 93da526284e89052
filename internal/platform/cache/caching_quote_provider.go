// Package cache provides caching decorators for the rate provider.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"faas_backend/internal/feature/dollarprice/domain/entity"
	"faas_backend/internal/feature/dollarprice/usecase"
)

// DefaultNamespace is the key prefix used when none is given.
const DefaultNamespace = "quotes"

// HitRecorder receives the outcome of each cache lookup.
type HitRecorder interface {
	RecordCacheResult(hit bool)
}

// CachingQuoteProvider decorates a QuoteProvider with Redis caching.
// Only successful quotes are cached. Redis failures never fail a request.
type CachingQuoteProvider struct {
	inner     usecase.QuoteProvider
	rdb       *redis.Client
	ttl       time.Duration
	refresh   time.Duration
	namespace string
	recorder  HitRecorder
	now       func() time.Time
}

var _ usecase.QuoteProvider = (*CachingQuoteProvider)(nil)

// NewCachingQuoteProvider decorates a QuoteProvider with Redis caching.
// If ttl is 0, entries expire at the next provider refresh boundary (hourly).
// If namespace is empty, it uses "quotes".
func NewCachingQuoteProvider(rdb *redis.Client, ttl time.Duration, inner usecase.QuoteProvider, namespace string) *CachingQuoteProvider {
	if ttl < 0 {
		ttl = 0
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &CachingQuoteProvider{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		refresh:   DefaultRefreshInterval,
		namespace: namespace,
		now:       time.Now,
	}
}

// WithRecorder sets the recorder notified on every cache lookup.
func (c *CachingQuoteProvider) WithRecorder(r HitRecorder) *CachingQuoteProvider {
	c.recorder = r
	return c
}

// LiveQuotes returns cached quotes when present, otherwise asks the inner provider.
func (c *CachingQuoteProvider) LiveQuotes(ctx context.Context, source, currency string) (*entity.RateQuote, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.LiveQuotes(ctx, source, currency)
	}

	key := c.cacheKey(source, currency)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.RateQuote
		if err := json.Unmarshal(b, &out); err == nil && out.Success {
			c.record(true)
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}
	c.record(false)

	// 2) Fallback to the provider
	out, err := c.inner.LiveQuotes(ctx, source, currency)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if out != nil && out.Success {
		if b, err := json.Marshal(out); err == nil {
			_ = c.rdb.Set(ctx, key, b, c.expiry()).Err()
		}
	}

	return out, nil
}

// Purge deletes every cached quote in the namespace and returns the number of keys removed.
func (c *CachingQuoteProvider) Purge(ctx context.Context) (int, error) {
	if c.rdb == nil {
		return 0, nil
	}
	return c.deleteByPattern(ctx, c.namespace+":*")
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingQuoteProvider) deleteByPattern(ctx context.Context, pattern string) (int, error) {
	var (
		cursor  uint64
		deleted int
	)
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return deleted, err
		}
		if len(keys) > 0 {
			n, err := c.rdb.Del(ctx, keys...).Result()
			if err != nil {
				return deleted, err
			}
			deleted += int(n)
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return deleted, nil
}

func (c *CachingQuoteProvider) expiry() time.Duration {
	if c.ttl > 0 {
		return c.ttl
	}
	return TimeUntilNextRefresh(c.now(), c.refresh)
}

func (c *CachingQuoteProvider) record(hit bool) {
	if c.recorder != nil {
		c.recorder.RecordCacheResult(hit)
	}
}

// cacheKey generates a cache key for a source/currency pair.
func (c *CachingQuoteProvider) cacheKey(source, currency string) string {
	return fmt.Sprintf("%s:%s:%s", c.namespace, safe(source), safe(currency))
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ToUpper(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
