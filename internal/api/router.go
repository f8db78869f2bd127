package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/99minutos/carrier-gateway/internal/api/handler"
	"github.com/99minutos/carrier-gateway/internal/api/middleware"
	"github.com/99minutos/carrier-gateway/internal/core/domain"
	"github.com/99minutos/carrier-gateway/internal/core/ports"

	_ "github.com/99minutos/carrier-gateway/docs"
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Auth       ports.AuthService
	Carrier    ports.CarrierService
	Dispatcher handler.TrackingDispatcher
	MaxBatch   int
	Mongo      *mongo.Database
	Redis      *redis.Client
	JWTSecret  string
	Log        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	authMiddleware := middleware.Auth(d.JWTSecret)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(d.Auth)
	e.POST("/auth/token", authHandler.Token)

	// --- Carrier routes ---
	rateHandler := handler.NewRateHandler(d.Carrier)
	trackingHandler := handler.NewTrackingHandler(d.Carrier, d.Dispatcher, d.MaxBatch)
	addressHandler := handler.NewAddressHandler(d.Carrier)

	v1 := e.Group("/v1", authMiddleware)
	v1.POST("/rates", rateHandler.Quote)
	v1.GET("/tracking/:tracking_number", trackingHandler.Get)
	v1.POST("/tracking/batch", trackingHandler.Batch, middleware.RequireRole(domain.RoleAdmin))
	v1.POST("/addresses/verify", addressHandler.Verify)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Mongo, d.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness) // mongo + redis

	// --- Ops ---
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
