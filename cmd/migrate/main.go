// Command migrate applies pending database migrations and exits. The server
// does the same at startup when database.auto_migrate is on; this command is
// for deployments that keep it off.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/truefeedback-backend/internal/adapter/postgres"
	"github.com/heartmarshall/truefeedback-backend/internal/app"
	"github.com/heartmarshall/truefeedback-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if cfg.Storage.Driver != config.DriverPostgres {
		logger.Info("nothing to migrate", slog.String("driver", cfg.Storage.Driver))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	start := time.Now()
	if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
		logger.Error("migration failed", slog.String("error", err.Error()))
		cancel()
		os.Exit(1)
	}

	logger.Info("migrations up to date", slog.Duration("took", time.Since(start)))
}
