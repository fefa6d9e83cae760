// Package http provides the Gin HTTP server and its route wiring.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	otelmetric "go.opentelemetry.io/otel/metric"

	analyticsHTTP "github.com/allisson/journalite/internal/analytics/http"
	"github.com/allisson/journalite/internal/config"
	entriesHTTP "github.com/allisson/journalite/internal/entries/http"
	"github.com/allisson/journalite/internal/metrics"
)

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	router *gin.Engine
	db     *sql.DB
	addr   string
	logger *slog.Logger
}

// NewServer creates a new HTTP server. The router starts empty; call
// SetupRouter before Start to register middleware and routes.
func NewServer(db *sql.DB, host string, port int, logger *slog.Logger) *Server {
	return &Server{
		db:     db,
		addr:   fmt.Sprintf("%s:%d", host, port),
		logger: logger,
	}
}

// SetupRouter assembles the Gin engine with middleware and API routes.
// The meter provider is optional; pass nil to skip HTTP metrics collection.
func (s *Server) SetupRouter(
	cfg *config.Config,
	entryHandler *entriesHTTP.EntryHandler,
	insightsHandler *analyticsHTTP.InsightsHandler,
	meterProvider otelmetric.MeterProvider,
) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if meterProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(meterProvider, cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	if cfg.RateLimitEnabled {
		v1.Use(RateLimitMiddleware(cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}

	entries := v1.Group("/entries")
	entries.POST("", entryHandler.CreateHandler)
	entries.GET("", entryHandler.ListHandler)
	entries.GET("/:id", entryHandler.GetHandler)
	entries.PUT("/:id", entryHandler.UpdateHandler)
	entries.DELETE("/:id", entryHandler.DeleteHandler)

	v1.POST("/insights", insightsHandler.GenerateHandler)
	v1.POST("/mood/detect", insightsHandler.DetectMoodHandler)
	v1.GET("/analytics/health", insightsHandler.HealthHandler)

	s.router = router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can serve traffic.
// The database must be reachable for the server to be considered ready.
func (s *Server) readinessHandler(c *gin.Context) {
	database := "ok"

	if s.db == nil {
		database = "error"
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := s.db.PingContext(ctx); err != nil {
			s.logger.Warn("readiness check failed", slog.Any("error", err))
			database = "error"
		}
	}

	status := "ready"
	code := http.StatusOK
	if database != "ok" {
		status = "not_ready"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status": status,
		"components": gin.H{
			"database": database,
		},
	})
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:         s.addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")

	if s.server == nil {
		return nil
	}

	return s.server.Shutdown(ctx)
}
