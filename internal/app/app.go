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

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DAAT-RI/quipu/internal/adapter/postgres"
	"github.com/DAAT-RI/quipu/internal/auth"
	"github.com/DAAT-RI/quipu/internal/category"
	"github.com/DAAT-RI/quipu/internal/config"
	"github.com/DAAT-RI/quipu/internal/transport/middleware"
	"github.com/DAAT-RI/quipu/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	registry, err := category.Default()
	if err != nil {
		return fmt.Errorf("load category catalog: %w", err)
	}

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Int("catalog_version", registry.Version()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	svcs := NewServices(logger, pool, registry, cfg)
	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := NewHandler(logger, pool, svcs, cfg, jwt, limiter)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}

// NewHandler mounts the REST API behind the middleware chain. Auth runs
// before Logger and the rate limiter so both see the organization.
func NewHandler(
	logger *slog.Logger,
	pool *pgxpool.Pool,
	svcs *Services,
	cfg *config.Config,
	jwt *auth.JWTManager,
	limiter *middleware.RateLimiter,
) http.Handler {
	return rest.NewRouter(rest.Handlers{
		Health:       rest.NewHealthHandler(pool, Version, svcs.Registry.Version()),
		Catalog:      rest.NewCatalogHandler(svcs.Registry, cfg.Query.MinSearchLength, logger),
		Declarations: rest.NewDeclarationHandler(svcs.Declarations, logger),
		Plan:         rest.NewPlanHandler(svcs.Plan, logger),
		Reference:    rest.NewReferenceHandler(svcs.Reference, logger),
		Aliases:      rest.NewAliasHandler(svcs.Aliases, logger),
	},
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwt),
		middleware.Logger(logger),
		limiter.Limit(cfg.Server.RateLimit),
		middleware.Timeout(cfg.Query.Timeout),
	)
}
