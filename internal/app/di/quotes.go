// Package di provides dependency injection factories for creating application components.
package di

import (
	"github.com/redis/go-redis/v9"

	"faas_backend/internal/platform/cache"
	"faas_backend/internal/platform/config"
	"faas_backend/internal/platform/externalapi/currencylayer"
	infrahttp "faas_backend/internal/platform/http"
)

// NewQuoteProvider creates the currencylayer client with a tuned HTTP client and
// wraps it with the Redis quote cache. A nil rdb disables caching.
// The returned client must be closed by the caller.
func NewQuoteProvider(cfg *config.Config, rdb *redis.Client, recorder cache.HitRecorder) (*cache.CachingQuoteProvider, *currencylayer.Client) {
	httpClient := infrahttp.NewHTTPClient(infrahttp.DefaultClientOptions(cfg.CurrencyLayer.Timeout))
	client := currencylayer.NewClient(cfg.CurrencyLayer, httpClient)

	cached := cache.NewCachingQuoteProvider(rdb, cfg.Cache.TTL, client, cfg.Cache.Namespace)
	if recorder != nil {
		cached.WithRecorder(recorder)
	}
	return cached, client
}
