// Package router builds the gin engine and its route table.
package router

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	dollarpricehandler "faas_backend/internal/feature/dollarprice/transport/handler"
	hypotenusehandler "faas_backend/internal/feature/hypotenuse/transport/handler"
	settingshandler "faas_backend/internal/feature/settings/transport/handler"
	"faas_backend/internal/feature/webui"
	"faas_backend/internal/platform/http/handler"
	"faas_backend/internal/platform/http/middleware"
	"faas_backend/internal/platform/metrics"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "faas_backend"

// Handlers groups the feature handlers mounted by the router.
type Handlers struct {
	DollarPrice *dollarpricehandler.DollarPriceHandler
	Hypotenuse  *hypotenusehandler.HypotenuseHandler
	Settings    *settingshandler.SettingsHandler
	WebUI       *webui.Handler // optional
}

// Options configures the cross-cutting middleware.
type Options struct {
	Logger             *slog.Logger
	Metrics            *metrics.FunctionMetrics // optional
	Limiter            *limiter.Limiter         // optional, applies to /api
	FunctionKey        string                   // empty disables the check
	CORSAllowedOrigins []string                 // empty disables CORS handling
}

// NewRouter returns the engine with every route registered.
func NewRouter(h Handlers, o Options) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.StructuredLogging(o.Logger))
	if o.Metrics != nil {
		r.Use(o.Metrics.Middleware())
	}
	if len(o.CORSAllowedOrigins) > 0 {
		r.Use(cors.New(corsConfig(o.CORSAllowedOrigins)))
	}

	// 認証不要
	// 導通確認用
	health := handler.NewHealth(ServiceName)
	r.GET("/healthz", health)
	r.HEAD("/healthz", health)
	r.OPTIONS("/healthz", health)
	if o.Metrics != nil {
		r.GET("/metrics", gin.WrapH(o.Metrics.Handler()))
	}
	if h.WebUI != nil {
		if err := h.WebUI.Register(r); err != nil {
			return nil, err
		}
	}

	api := r.Group("/api")
	if o.Limiter != nil {
		api.Use(middleware.RateLimit(o.Limiter))
	}

	// 匿名で呼び出せる関数
	api.POST("/Hypotenuse", h.Hypotenuse.Compute)

	// 関数キーが必要な関数
	fn := api.Group("", middleware.FunctionKey(o.FunctionKey))
	{
		fn.GET("/DollarPrice", h.DollarPrice.GetDollarPrice)
		fn.Match([]string{http.MethodGet, http.MethodPost}, "/Test", h.Settings.Echo)
	}

	return r, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodHead, http.MethodOptions}
	cfg.AddAllowHeaders(middleware.HeaderFunctionKey, middleware.HeaderRequestID)
	cfg.AddExposeHeaders(middleware.HeaderRequestID, "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After")
	cfg.MaxAge = time.Hour
	return cfg
}
