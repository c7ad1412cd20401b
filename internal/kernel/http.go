// Package kernel assembles the HTTP handler: global middleware, fallbacks,
// checks and the API routes.
package kernel

import (
	"context"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/warehouse/app/routes"
	"github.com/shashiranjanraj/warehouse/app/services"
	"github.com/shashiranjanraj/warehouse/config"
	"github.com/shashiranjanraj/warehouse/pkg/bind"
	"github.com/shashiranjanraj/warehouse/pkg/database"
	"github.com/shashiranjanraj/warehouse/pkg/metrics"
	"github.com/shashiranjanraj/warehouse/pkg/middleware"
	"github.com/shashiranjanraj/warehouse/pkg/reqid"
	"github.com/shashiranjanraj/warehouse/pkg/response"
	"github.com/shashiranjanraj/warehouse/pkg/router"
)

const healthTimeout = 2 * time.Second

type HTTPKernel struct {
	db     *gorm.DB
	router *router.Router
}

// NewHTTPKernel wires every route against db. Middleware runs outermost
// first: metrics, recovery, request id, access log, CORS, then the rate
// limiter when cfg.RateLimit is positive.
func NewHTTPKernel(db *gorm.DB, cfg config.HTTPConfig) *HTTPKernel {
	bind.SetMaxBodyBytes(cfg.MaxBodyBytes)

	k := &HTTPKernel{db: db, router: router.New()}
	r := k.router

	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions(cfg.AllowedOrigins...)))
	if cfg.RateLimit > 0 {
		r.Use(middleware.NewRateLimiter(cfg.RateLimit, cfg.RateLimitWindow).Middleware)
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) { response.NotFound(w, "Route not found") })
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) { response.MethodNotAllowed(w) })

	r.Get("/health", "health", k.health)
	r.Get("/metrics", "metrics", metrics.Handler())

	routes.RegisterAPI(r, services.NewWarehouseService(db))
	return k
}

func (k *HTTPKernel) Handler() http.Handler { return k.router.Handler() }

func (k *HTTPKernel) Router() *router.Router { return k.router }

func (k *HTTPKernel) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := database.Ping(ctx, k.db); err != nil {
		response.Error(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	response.Success(w, map[string]string{"database": "ok"})
}
