// Package api provides the HTTP API for ShipFare.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/shipfare/shipfare/internal/api/handler"
	"github.com/shipfare/shipfare/internal/api/middleware"
	"github.com/shipfare/shipfare/internal/auth"
	"github.com/shipfare/shipfare/internal/booking"
	"github.com/shipfare/shipfare/internal/pricing"
	"github.com/shipfare/shipfare/internal/provider/resilience"
	"github.com/shipfare/shipfare/internal/rates"
	"github.com/shipfare/shipfare/internal/routing"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version        string
	BuildTime      string
	Logger         zerolog.Logger
	ServiceName    string
	Metrics        *middleware.Metrics
	JWTService     *auth.JWTService
	RoutingService *routing.Service
	RateService    *rates.Service
	BookingService *booking.Service
	DistanceRates  pricing.DistanceRateConfig
	Registry       *resilience.Registry
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "shipfare-api"
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)            // Generate/propagate request ID first
	r.Use(middleware.Tracing(serviceName)) // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))   // Structured logging
	r.Use(middleware.Recovery(cfg.Logger)) // Panic recovery
	r.Use(chimiddleware.RealIP)            // Real IP extraction
	r.Use(middleware.SecurityHeaders)      // Security headers (HSTS, CSP, etc.)
	r.Use(middleware.RequireTLS)           // TLS enforcement (enabled via REQUIRE_TLS=true)
	r.Use(middleware.ContentTypeJSON)      // JSON content type

	// Initialize handlers
	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime, cfg.Registry, cfg.RateService)
	quoteHandler := handler.NewQuoteHandler(cfg.RoutingService, cfg.RateService, cfg.DistanceRates, cfg.Logger)
	bookingHandler := handler.NewBookingHandler(cfg.BookingService, cfg.RateService, cfg.Logger)

	operatorAuth := middleware.OperatorAuth(cfg.JWTService)

	quoteRateLimit := middleware.RateLimitByIP(middleware.QuoteRateLimit)       // 30 req/min
	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit) // 100 req/min

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Ops endpoints (public)
		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", opsHandler.HealthCheck)
			r.Get("/ready", opsHandler.ReadinessCheck)
			r.Get("/status", opsHandler.SystemStatus)
		})

		// Quote endpoints (public). Distance quotes hit the routing
		// provider, so they get the stricter limit.
		r.Route("/quotes", func(r chi.Router) {
			r.With(quoteRateLimit).Post("/distance", quoteHandler.DistanceQuote)
			r.With(standardRateLimit).Post("/zone", quoteHandler.ZoneQuote)
		})

		// Booking endpoints
		r.Route("/bookings", func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Post("/", bookingHandler.Create)
			r.Route("/{trackingId}", func(r chi.Router) {
				r.Get("/", bookingHandler.Get)
				// Charge correction requires an operator token.
				r.With(operatorAuth).Post("/finalize", bookingHandler.Finalize)
			})
		})
	})

	return r
}
