package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ryankelly77/raptor-portal-sub000/internal/adapter/postgres"
	driverrepo "github.com/ryankelly77/raptor-portal-sub000/internal/adapter/postgres/driver"
	"github.com/ryankelly77/raptor-portal-sub000/internal/adapter/postgres/record"
	templogrepo "github.com/ryankelly77/raptor-portal-sub000/internal/adapter/postgres/templog"
	"github.com/ryankelly77/raptor-portal-sub000/internal/auth"
	"github.com/ryankelly77/raptor-portal-sub000/internal/config"
	"github.com/ryankelly77/raptor-portal-sub000/internal/schema"
	authsvc "github.com/ryankelly77/raptor-portal-sub000/internal/service/auth"
	"github.com/ryankelly77/raptor-portal-sub000/internal/service/crud"
	"github.com/ryankelly77/raptor-portal-sub000/internal/service/projectview"
	templogsvc "github.com/ryankelly77/raptor-portal-sub000/internal/service/templog"
	"github.com/ryankelly77/raptor-portal-sub000/internal/transport/middleware"
	"github.com/ryankelly77/raptor-portal-sub000/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, builds services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	defer logger.Sync() //nolint:errcheck

	logger.Info("starting application",
		zap.String("version", BuildVersion()),
		zap.String("log_level", cfg.Log.Level),
		zap.Bool("templog_allow_multiple_active", cfg.TempLog.AllowMultipleActive),
	)
	if !cfg.Auth.SigningConfigured() {
		logger.Warn("auth.jwt_secret is not set; every authenticated route answers 503")
	}
	if !cfg.Auth.AdminLoginConfigured() {
		logger.Warn("auth.admin_password_hash is not set; admin login is disabled")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	handler := NewHandler(cfg, logger, pool)
	defer handler.Close()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

// Handler is the assembled HTTP surface. Close releases background workers.
type Handler struct {
	http.Handler
	limiter *middleware.RateLimiter
}

// Close stops the rate limiter's cleanup loop.
func (h *Handler) Close() { h.limiter.Stop() }

// pool is what the handler graph needs from the database.
type pool interface {
	postgres.Querier
	postgres.Beginner
	Ping(ctx context.Context) error
}

// NewHandler wires repositories, services and transport on top of db.
// It is shared by Run and the end-to-end tests.
func NewHandler(cfg *config.Config, logger *zap.Logger, db pool) *Handler {
	txm := postgres.NewTxManager(db)
	registry := schema.Portal()

	records := record.New(db)
	drivers := driverrepo.New(db)
	tempLogs := templogrepo.New(db)

	jwt := auth.NewJWTManager(cfg.Auth)

	crudService := crud.NewService(logger, registry, records)
	tempLogService := templogsvc.NewService(logger, tempLogs, tempLogs, txm, cfg.TempLog)
	authService := authsvc.NewService(logger, drivers, jwt, cfg.Auth)
	viewService := projectview.NewService(logger, registry, records)

	limiter := middleware.NewRateLimiter(time.Minute)

	router := rest.NewRouter(rest.RouterConfig{
		Log:       logger,
		Validator: jwt,
		Limiter:   limiter,
		CORS:      cfg.CORS,
		RateLimit: cfg.RateLimit,
		Health:    rest.NewHealthHandler(logger, db, BuildVersion(), cfg.Auth.SigningConfigured()),
		Auth:      rest.NewAuthHandler(authService, logger),
		CRUD:      rest.NewCRUDHandler(crudService, logger),
		TempLog:   rest.NewTempLogHandler(tempLogService, logger),
		Public:    rest.NewPublicHandler(viewService, logger),
	})

	return &Handler{Handler: router, limiter: limiter}
}
