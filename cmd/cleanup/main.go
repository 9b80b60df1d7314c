// Command cleanup completes temperature-log sessions that were left
// in_progress longer than TEMPLOG_STALE_AFTER_HOURS. It is intended to be
// invoked by an external cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/ryankelly77/raptor-portal-sub000/internal/adapter/postgres"
	templogrepo "github.com/ryankelly77/raptor-portal-sub000/internal/adapter/postgres/templog"
	"github.com/ryankelly77/raptor-portal-sub000/internal/app"
	"github.com/ryankelly77/raptor-portal-sub000/internal/config"
	templogsvc "github.com/ryankelly77/raptor-portal-sub000/internal/service/templog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log).Named("cleanup")
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("connect to database", zap.Error(err))
		os.Exit(1)
	}
	defer pool.Close()

	repo := templogrepo.New(pool)
	svc := templogsvc.NewService(logger, repo, repo, postgres.NewTxManager(pool), cfg.TempLog)

	completed, err := svc.CompleteStaleSessions(ctx)
	if err != nil {
		logger.Error("stale session cleanup failed", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("stale session cleanup completed",
		zap.Int64("completed", completed),
		zap.Int("stale_after_hours", cfg.TempLog.StaleAfterHours),
	)
}
