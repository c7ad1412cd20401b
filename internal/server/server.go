// Package server owns the process lifecycle: connect, migrate, serve HTTP
// and gRPC, and drain both on shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/warehouse/config"
	"github.com/shashiranjanraj/warehouse/internal/kernel"
	"github.com/shashiranjanraj/warehouse/pkg/database"
	"github.com/shashiranjanraj/warehouse/pkg/grpc"
	"github.com/shashiranjanraj/warehouse/pkg/logger"
	"github.com/shashiranjanraj/warehouse/pkg/migration"
)

// Run blocks until ctx is cancelled or the HTTP listener fails. Pending
// migrations are applied before the listeners open.
func Run(ctx context.Context, cfg *config.Config) error {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Warn("database: close failed", "error", err)
		}
	}()

	applied, err := migration.New(db).Run(ctx)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	logger.Info("migrations applied", "count", applied)

	return Serve(ctx, cfg, db)
}

// Serve runs the listeners against an already migrated db.
func Serve(ctx context.Context, cfg *config.Config, db *gorm.DB) error {
	httpKernel := kernel.NewHTTPKernel(db, cfg.HTTP)

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           httpKernel.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if cfg.App.GRPCPort != "" {
		grpcSrv, _, err := grpc.Start(cfg.App.GRPCPort, func(ctx context.Context) error {
			return database.Ping(ctx, db)
		})
		if err != nil {
			return err
		}
		defer grpc.Stop(grpcSrv)
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", "addr", srv.Addr, "env", cfg.App.Env, "driver", cfg.Database.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err, ok := <-serveErr:
		if ok {
			return fmt.Errorf("http: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", "timeout", cfg.HTTP.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http: shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
