package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/dreamjournal-backend/internal/adapter/postgres"
	dreamrepo "github.com/heartmarshall/dreamjournal-backend/internal/adapter/postgres/dream"
	"github.com/heartmarshall/dreamjournal-backend/internal/adapter/provider/breaker"
	"github.com/heartmarshall/dreamjournal-backend/internal/auth"
	"github.com/heartmarshall/dreamjournal-backend/internal/config"
	"github.com/heartmarshall/dreamjournal-backend/internal/observability"
	authsvc "github.com/heartmarshall/dreamjournal-backend/internal/service/auth"
	"github.com/heartmarshall/dreamjournal-backend/internal/service/dashboard"
	"github.com/heartmarshall/dreamjournal-backend/internal/service/dream"
	"github.com/heartmarshall/dreamjournal-backend/internal/service/enrichment"
	"github.com/heartmarshall/dreamjournal-backend/internal/service/user"
	"github.com/heartmarshall/dreamjournal-backend/internal/transport/middleware"
	"github.com/heartmarshall/dreamjournal-backend/internal/transport/rest"
)

const metricsNamespace = "dreamjournal"

// Run wires every component from cfg and serves HTTP until ctx is canceled.
func Run(ctx context.Context, cfg *config.Config) error {
	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("auth_provider", cfg.Auth.Provider),
		slog.String("interpreter", cfg.AI.Interpreter),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	collector := observability.NewCollector(metricsNamespace)

	views, err := newViewCache(ctx, cfg.Cache, collector, logger)
	if err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	defer views.Close() //nolint:errcheck

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	identity, err := newIdentity(cfg, pool, jwt)
	if err != nil {
		return fmt.Errorf("identity provider: %w", err)
	}

	interp, imager, err := newAIBackends(ctx, cfg.AI, logger)
	if err != nil {
		return fmt.Errorf("ai: %w", err)
	}
	guard := breaker.New(logger, interp, imager, breaker.SettingsFromConfig(cfg.AI), collector)

	dreams := dreamrepo.New(pool)

	dreamService := dream.NewService(logger, dreams, views)
	enrichmentService := enrichment.NewService(logger, dreams, guard, guard, views)
	dashboardService := dashboard.NewService(logger, dreams, views)
	authService := authsvc.NewService(logger, identity)
	userService := user.NewService(logger, identity)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	deps := rest.RouterDeps{
		Dreams:     rest.NewDreamHandler(dreamService, logger),
		Enrichment: rest.NewEnrichmentHandler(enrichmentService, logger),
		Dashboard:  rest.NewDashboardHandler(dashboardService, logger),
		Auth:       rest.NewAuthHandler(authService, logger),
		Profile:    rest.NewProfileHandler(userService, logger),
		Health:     newHealthHandler(pool, views, cfg.Cache),
		Middleware: []middleware.Middleware{
			middleware.RequestID(),
			middleware.Recovery(logger),
			middleware.Logger(logger),
			middleware.Metrics(collector),
			middleware.CORS(cfg.CORS),
		},
		Authenticate: middleware.Auth(jwt),
		AuthLimit:    limiter.Limit(cfg.RateLimit.AuthPerMinute),
	}
	if cfg.Metrics.Enabled {
		deps.MetricsPath = cfg.Metrics.Path
		deps.Metrics = collector.Handler()
	}

	srv := newHTTPServer(cfg.Server, rest.NewRouter(deps), logger)

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", srv.Addr, err)
	}

	return serve(ctx, srv, ln, cfg.Server.ShutdownTimeout, logger)
}

func newHTTPServer(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) *http.Server {
	return &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}
}

// serve runs srv on ln until ctx is canceled, then drains in-flight requests
// for at most shutdownTimeout.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", shutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
