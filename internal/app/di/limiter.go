package di

import (
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	redisstore "github.com/ulule/limiter/v3/drivers/store/redis"
)

const limiterPrefix = "ratelimit"

// NewRateLimiter creates an inbound rate limiter from a formatted rate such as "60-M".
// An empty rate disables limiting and returns nil. Counters live in Redis when rdb
// is available, otherwise in process memory.
func NewRateLimiter(rate string, rdb *redis.Client) (*limiter.Limiter, error) {
	if rate == "" {
		return nil, nil
	}
	r, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, err
	}

	if rdb != nil {
		store, err := redisstore.NewStoreWithOptions(rdb, limiter.StoreOptions{Prefix: limiterPrefix})
		if err == nil {
			return limiter.New(store, r), nil
		}
		slog.Warn("redis rate limit store unavailable, using memory store", "error", err)
	}

	store := memory.NewStoreWithOptions(limiter.StoreOptions{
		Prefix:          limiterPrefix,
		CleanUpInterval: limiter.DefaultCleanUpInterval,
	})
	return limiter.New(store, r), nil
}
