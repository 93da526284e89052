// Package currencylayer provides a client for the currencylayer live exchange-rate API.
package currencylayer

import (
	"strings"
	"time"
)

// DefaultTimeout is used when Config.Timeout is not positive.
const DefaultTimeout = 10 * time.Second

// Config holds configuration for the currencylayer API client.
type Config struct {
	BaseURL   string        // Base URL for the API (e.g., "http://api.currencylayer.com")
	EndPoint  string        // Endpoint path (e.g., "live")
	AccessKey string        // API access key
	Timeout   time.Duration // HTTP request timeout
}

// URL returns the endpoint URL without query parameters.
func (c Config) URL() string {
	return strings.TrimRight(c.BaseURL, "/") + "/" + strings.TrimLeft(c.EndPoint, "/")
}
