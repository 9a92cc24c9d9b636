package handlers

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	httpadapter "github.com/petlink/petlink-api/internal/adapters/http"
	"github.com/petlink/petlink-api/internal/adapters/http/middleware"
	"github.com/petlink/petlink-api/internal/platform/telemetry"
)

// RouterConfig carries everything needed to assemble the route tree.
type RouterConfig struct {
	Auth     *AuthHandler
	Pets     *PetHandler
	Health   *HealthHandler
	Verifier middleware.TokenVerifier
	Logger   *slog.Logger

	// RequestTimeout bounds the request context deadline. Zero disables
	// the timeout middleware.
	RequestTimeout time.Duration

	// DevMode enables error detail in 500 responses.
	DevMode bool

	// ServiceName is used for the tracing middleware span names.
	ServiceName string
}

// RegisterRoutes wires the middleware chain and all route groups onto the
// engine. Health routes sit outside the request logging skip list handled
// by the logging middleware itself.
func RegisterRoutes(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(middleware.Recovery(cfg.Logger))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.CorrelationID())
	engine.Use(telemetry.Tracing(cfg.ServiceName))
	engine.Use(telemetry.Middleware(cfg.ServiceName))
	engine.Use(middleware.Logging(cfg.Logger))
	if cfg.RequestTimeout > 0 {
		engine.Use(middleware.Timeout(cfg.RequestTimeout))
	}
	if cfg.DevMode {
		engine.Use(httpadapter.DevelopmentMode())
	}

	root := engine.Group("")
	cfg.Auth.RegisterAuthRoutes(root)

	api := engine.Group("/api")
	api.Use(middleware.RequireAuth(cfg.Verifier))
	cfg.Pets.RegisterPetRoutes(api)

	cfg.Health.RegisterHealthRoutesOnEngine(engine)
}
