package server

import (
	"strconv"
	"time"

	"zero-actions/internal/actions"
	"zero-actions/internal/capability"
	"zero-actions/internal/cards"
	"zero-actions/internal/config"
	"zero-actions/internal/handlers"
	"zero-actions/internal/metrics"
	"zero-actions/internal/purchases"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Server represents the application server
type Server struct {
	echo         *echo.Echo
	db           *sqlx.DB
	config       *config.Config
	logger       zerolog.Logger
	registry     *actions.Registry
	purchases    *purchases.Service
	assist       capability.Assist
	capabilities map[string]string
	enricher     *cards.Enricher
}

// Deps carries the wired services the HTTP layer exposes. DB and
// Purchases may be nil when no database is configured; the affected
// endpoints degrade instead of the whole process.
type Deps struct {
	DB           *sqlx.DB
	Registry     *actions.Registry
	Purchases    *purchases.Service
	Assist       capability.Assist
	Capabilities map[string]string
}

// New creates a new server instance
func New(cfg *config.Config, deps Deps, logger zerolog.Logger) *Server {
	return &Server{
		config:       cfg,
		db:           deps.DB,
		logger:       logger,
		registry:     deps.Registry,
		purchases:    deps.Purchases,
		assist:       deps.Assist,
		capabilities: deps.Capabilities,
		enricher:     cards.NewEnricher(cfg.ChipCharWidth),
	}
}

// zerologMiddleware creates a zerolog-based logging middleware for Echo
func (s *Server) zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			req := c.Request()
			res := c.Response()

			s.logger.Info().
				Str("method", req.Method).
				Str("uri", req.RequestURI).
				Str("remote_ip", c.RealIP()).
				Int("status", res.Status).
				Int64("latency_ms", time.Since(start).Milliseconds()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			return err
		}
	}
}

// metricsMiddleware records request durations per route, method and status
func (s *Server) metricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			metrics.HTTPRequestDuration.WithLabelValues(
				c.Path(),
				c.Request().Method,
				strconv.Itoa(c.Response().Status),
			).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// Initialize sets up the Echo framework with middleware and routes
func (s *Server) Initialize() {
	s.echo = echo.New()

	// Middleware
	s.echo.Use(s.zerologMiddleware())
	s.echo.Use(s.metricsMiddleware())
	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.CORS())

	// Hide Echo banner
	s.echo.HideBanner = true

	// Setup routes
	s.setupRoutes()
}

// setupRoutes configures all the application routes
func (s *Server) setupRoutes() {
	// API group with /api prefix
	api := s.echo.Group("/api")

	// Swagger documentation
	s.echo.GET("/swagger/*", echoSwagger.WrapHandler)

	// Prometheus metrics
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health endpoints (keep at root level for monitoring)
	s.echo.GET("/healthz", handlers.HealthHandler(s.config.Version, s.capabilities))
	s.echo.GET("/healthz/db", handlers.DBHealthHandler(s.db))

	// API endpoints under /api prefix
	api.GET("/", handlers.RootHandler(s.config.Version))

	api.POST("/purchases", handlers.SchedulePurchaseHandler(s.purchases))
	api.GET("/purchases/user/:userId", handlers.ListPurchasesHandler(s.purchases))
	api.POST("/purchases/:id/cancel", handlers.CancelPurchaseHandler(s.purchases))

	api.POST("/actions/preview", handlers.PreviewActionHandler(s.registry))
	api.POST("/actions/execute", handlers.ExecuteActionHandler(s.registry))
	api.GET("/actions/types", handlers.ActionTypesHandler(s.registry))

	api.POST("/cards/ingest", handlers.IngestCardHandler())
	api.POST("/cards/enrich", handlers.EnrichCardHandler(s.enricher))

	api.POST("/assist/summarize", handlers.SummarizeHandler(s.assist))
	api.POST("/assist/reply", handlers.SuggestRepliesHandler(s.assist))
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info().Str("port", s.config.Port).Msg("Server starting")
	return s.echo.Start(":" + s.config.Port)
}
