package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	redisv9 "github.com/redis/go-redis/v9"

	"faas_backend/internal/app/di"
	"faas_backend/internal/app/router"
	dollarpricehandler "faas_backend/internal/feature/dollarprice/transport/handler"
	dollarpriceusecase "faas_backend/internal/feature/dollarprice/usecase"
	hypotenusehandler "faas_backend/internal/feature/hypotenuse/transport/handler"
	settingshandler "faas_backend/internal/feature/settings/transport/handler"
	"faas_backend/internal/feature/webui"
	"faas_backend/internal/platform/config"
	"faas_backend/internal/platform/http/middleware"
	"faas_backend/internal/platform/metrics"
	infraredis "faas_backend/internal/platform/redis"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 設定
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// リクエストコンテキストのリクエストIDをすべてのログに付与する
	logger := slog.New(middleware.NewContextHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}),
	))
	slog.SetDefault(logger)
	cfg.Warn(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Redis
	var rdb *redisv9.Client
	if cfg.Redis.Enabled() {
		if tmp, err := infraredis.NewRedisClient(ctx, cfg.Redis); err != nil {
			logger.Warn("redis unavailable, running without cache", "error", err)
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					logger.Error("failed to close redis client", "error", err)
				}
			}()
		}
	}

	m := metrics.New()

	// 通貨記号の索引は起動時に1回だけ構築する
	symbols := di.NewSymbolIndex()

	provider, client := di.NewQuoteProvider(cfg, rdb, m)
	defer func() {
		if err := client.Close(); err != nil {
			logger.Error("failed to close currencylayer client", "error", err)
		}
	}()
	if cfg.Cache.PurgeOnStart {
		n, err := provider.Purge(ctx)
		if err != nil {
			logger.Warn("failed to purge quote cache", "error", err)
		} else {
			logger.Info("quote cache purged", "keys", n)
		}
	}

	limit, err := di.NewRateLimiter(cfg.RateLimit, rdb)
	if err != nil {
		return err
	}

	// Usecase
	dollarPriceUC := dollarpriceusecase.NewDollarPriceUsecase(provider, symbols, logger)

	// Handler
	handlers := router.Handlers{
		DollarPrice: dollarpricehandler.NewDollarPriceHandler(dollarPriceUC),
		Hypotenuse:  hypotenusehandler.NewHypotenuseHandler(logger),
		Settings:    settingshandler.NewSettingsHandler(cfg.CurrencyLayer.BaseURL),
		WebUI:       webui.NewHandler(webui.NewResourceReader(nil)),
	}

	// ルータ生成
	engine, err := router.NewRouter(handlers, router.Options{
		Logger:             logger,
		Metrics:            m,
		Limiter:            limit,
		FunctionKey:        cfg.FunctionKey,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
