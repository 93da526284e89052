// Package config loads the service configuration from an optional .env file,
// an optional config.yaml and environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"

	"faas_backend/internal/platform/externalapi/currencylayer"
	"faas_backend/internal/platform/redis"
)

// Config holds application configuration.
type Config struct {
	Server        ServerConfig
	CurrencyLayer currencylayer.Config
	Redis         redis.Config
	Cache         CacheConfig

	RateLimit          string // ulule/limiter formatted rate, e.g. "60-M"; empty disables limiting
	FunctionKey        string // key required by function-level routes; empty disables the check
	CORSAllowedOrigins []string
	LogLevel           slog.Level
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port              string
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return ":" + s.Port
}

// CacheConfig holds quote cache settings.
type CacheConfig struct {
	TTL          time.Duration // 0 expires entries at the next provider refresh
	Namespace    string
	PurgeOnStart bool
}

var defaults = map[string]any{
	"server_port":                "8080",
	"server_read_header_timeout": "5s",
	"server_shutdown_timeout":    "10s",

	"currencylayer_base_url":   "http://api.currencylayer.com",
	"currencylayer_end_point":  "live",
	"currencylayer_access_key": "",
	"currencylayer_timeout":    "10s",

	"redis_host":     "",
	"redis_port":     6379,
	"redis_password": "",
	"redis_db":       0,

	"cache_ttl":            "0s",
	"cache_namespace":      "quotes",
	"cache_purge_on_start": false,

	"rate_limit":           "60-M",
	"function_key":         "",
	"cors_allowed_origins": "*",
	"log_level":            "info",
}

// Load reads configuration. A .env file in the working directory is loaded first
// if it exists, then config.yaml (current directory or /etc/faas_backend), then
// environment variables, which take precedence over both.
func Load() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/faas_backend")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:              v.GetString("server_port"),
			ReadHeaderTimeout: v.GetDuration("server_read_header_timeout"),
			ShutdownTimeout:   v.GetDuration("server_shutdown_timeout"),
		},
		CurrencyLayer: currencylayer.Config{
			BaseURL:   v.GetString("currencylayer_base_url"),
			EndPoint:  v.GetString("currencylayer_end_point"),
			AccessKey: v.GetString("currencylayer_access_key"),
			Timeout:   v.GetDuration("currencylayer_timeout"),
		},
		Redis: redis.Config{
			Host:     v.GetString("redis_host"),
			Port:     v.GetInt("redis_port"),
			Password: v.GetString("redis_password"),
			DB:       v.GetInt("redis_db"),
		},
		Cache: CacheConfig{
			TTL:          v.GetDuration("cache_ttl"),
			Namespace:    v.GetString("cache_namespace"),
			PurgeOnStart: v.GetBool("cache_purge_on_start"),
		},
		RateLimit:          strings.TrimSpace(v.GetString("rate_limit")),
		FunctionKey:        v.GetString("function_key"),
		CORSAllowedOrigins: splitList(v.GetString("cors_allowed_origins")),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("log_level"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	// Validate
	var problems []string
	if cfg.Server.Port == "" {
		problems = append(problems, "SERVER_PORT is empty")
	}
	if cfg.CurrencyLayer.BaseURL == "" {
		problems = append(problems, "CURRENCYLAYER_BASE_URL is empty")
	}
	if cfg.CurrencyLayer.Timeout <= 0 {
		problems = append(problems, "CURRENCYLAYER_TIMEOUT must be positive")
	}
	if cfg.Cache.TTL < 0 {
		problems = append(problems, "CACHE_TTL must not be negative")
	}
	if cfg.RateLimit != "" {
		if _, err := limiter.NewRateFromFormatted(cfg.RateLimit); err != nil {
			problems = append(problems, fmt.Sprintf("RATE_LIMIT %q: %v", cfg.RateLimit, err))
		}
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}

	return cfg, nil
}

// Warn logs settings that are valid but leave a feature degraded.
func (c *Config) Warn(logger *slog.Logger) {
	if c.CurrencyLayer.AccessKey == "" {
		logger.Warn("CURRENCYLAYER_ACCESS_KEY not set; DollarPrice will return null")
	}
	if c.FunctionKey == "" {
		logger.Warn("FUNCTION_KEY not set; function-level routes are not protected")
	}
	if !c.Redis.Enabled() {
		logger.Warn("REDIS_HOST not set; quote cache disabled and rate limits kept in memory")
	}
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
