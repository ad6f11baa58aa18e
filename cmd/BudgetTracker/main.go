package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	database "github.com/sebuszqo/BudgetTracker/db"
	"github.com/sebuszqo/BudgetTracker/internal/config"
	"github.com/sebuszqo/BudgetTracker/internal/log"
)

func main() {
	cfg := config.Load()

	logger := log.New(log.Config{
		Level:  log.ParseLevel(cfg.LogLevel),
		Format: cfg.LogFormat,
	})
	log.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Missing configuration, update to start server", log.FieldError, err)
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped with error", log.FieldError, err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *log.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbService, err := database.NewDBService(cfg.DBDriver, cfg.DBConnectionString, logger)
	if err != nil {
		return fmt.Errorf("could not initialize database: %w", err)
	}
	defer dbService.Close()

	if err := dbService.RunMigrations(); err != nil {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	a := newApp(cfg, dbService, logger)

	if cfg.SeedSampleData {
		if err := a.seeder.Run(ctx); err != nil {
			return fmt.Errorf("could not seed sample data: %w", err)
		}
	}

	scheduler := cron.New()
	if _, err := a.revoked.ScheduleCleanup(scheduler, cfg.RevocationCleanupSpec, logger); err != nil {
		return fmt.Errorf("scheduler didn't start: %w", err)
	}
	scheduler.Start()
	defer func() { <-scheduler.Stop().Done() }()

	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           a.server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting", log.FieldOperation, log.OpStartup, "addr", httpServer.Addr, "driver", cfg.DBDriver)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server", log.FieldOperation, log.OpShutdown)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
