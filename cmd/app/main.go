// fleetdispatch serves the robot delivery task API.
//
// Usage:
//
//	fleetdispatch [serve]          start the HTTP server (default)
//	fleetdispatch migrate up|down  apply or revert the database schema
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fleetdispatch/cmd"
	"fleetdispatch/internal/adapters/out/postgres/migrations"
	"fleetdispatch/internal/pkg/logging"

	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	rootCmd := &cobra.Command{
		Use:           "fleetdispatch",
		Short:         "Robot delivery task service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, _ []string) error {
			return serve(c.Context())
		},
	}

	rootCmd.AddCommand(newServeCmd(), newMigrateCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server and background jobs",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return serve(c.Context())
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate up|down",
		Short:     "Apply or revert the database schema",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(migrations.Up), string(migrations.Down)},
		RunE: func(_ *cobra.Command, args []string) error {
			dir, err := migrations.ParseDirection(args[0])
			if err != nil {
				return err
			}

			cfg, err := cmd.LoadConfig()
			if err != nil {
				return err
			}
			logger := logging.Setup(cfg.LogLevel, cfg.LogFormat)

			if err = migrations.Run(cfg.DSN(), dir); err != nil {
				return err
			}
			logger.Info("Migrations applied", "direction", string(dir))
			return nil
		},
	}
}

func serve(ctx context.Context) error {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		return err
	}
	logger := logging.Setup(cfg.LogLevel, cfg.LogFormat)

	var gormDB *gorm.DB
	if cfg.StoreDriver == cmd.StoreDriverPostgres {
		if cfg.MigrateOnStart {
			if err = migrations.Run(cfg.DSN(), migrations.Up); err != nil {
				return err
			}
			logger.Info("Migrations applied on start")
		}

		gormDB, err = gorm.Open(gormpostgres.Open(cfg.DSN()), &gorm.Config{
			TranslateError: true,
			Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		})
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		if sqlDB, dbErr := gormDB.DB(); dbErr == nil {
			defer sqlDB.Close()
		}
	}

	app, err := cmd.NewCompositionRoot(cfg, gormDB, logger)
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, err := app.CreateRouter(ctx)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "port", cfg.HTTPPort, "store", cfg.StoreDriver)
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort))
	}()

	select {
	case err = <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP shutdown failed", "error", err)
		return err
	}
	return nil
}
