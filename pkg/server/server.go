package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"edgeorigin/pkg/log"
	"edgeorigin/pkg/routing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server exposes the origin resolver over HTTP. It serves resolution
// queries and catalog introspection; it does not fetch from backends.
type Server struct {
	resolver        *routing.Resolver
	version         string
	defaultPOP      string
	metricsEnabled  bool
	shutdownTimeout time.Duration
	echo            *echo.Echo
}

// Options tune the server beyond the resolver itself.
type Options struct {
	// Version is reported on /version.
	Version string
	// DefaultPOP is assumed when a resolve request carries neither a POP
	// code nor a region. Empty falls back to routing.DefaultPOP.
	DefaultPOP string
	// MetricsEnabled exposes Prometheus metrics on /metrics.
	MetricsEnabled bool
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration
}

// NewServer creates a resolver API server. A nil resolver selects the
// compiled-in catalog.
func NewServer(resolver *routing.Resolver, opts Options) *Server {
	if resolver == nil {
		resolver = routing.NewResolver(nil)
	}
	defaultPOP := opts.DefaultPOP
	if defaultPOP == "" {
		defaultPOP = routing.DefaultPOP
	}
	shutdownTimeout := opts.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}

	return &Server{
		resolver:        resolver,
		version:         opts.Version,
		defaultPOP:      defaultPOP,
		metricsEnabled:  opts.MetricsEnabled,
		shutdownTimeout: shutdownTimeout,
		echo:            echo.New(),
	}
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start(addr string) error {
	s.setupRoutes()

	go func() {
		log.Info().
			Str("addr", addr).
			Str("version", s.version).
			Str("default_pop", s.defaultPOP).
			Msg("Starting origin resolver server")

		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server startup failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	return s.Shutdown()
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown() error {
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
		return err
	}

	log.Info().Msg("Server gracefully stopped")
	return nil
}

func (s *Server) setupRoutes() {
	s.echo.HideBanner = true
	s.echo.HidePort = true

	s.echo.Use(middleware.Logger())
	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.CORS())

	s.echo.GET("/resolve", s.ResolveHandler)
	s.echo.GET("/origins", s.OriginsHandler)
	s.echo.GET("/pops", s.PopListHandler)
	s.echo.GET("/pops/:code", s.PopHandler)
	s.echo.GET("/healthz", s.HealthHandler)
	s.echo.GET("/version", s.VersionHandler)

	if s.metricsEnabled {
		s.echo.Use(httpMetricsMiddleware())
		s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}
}
