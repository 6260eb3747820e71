package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/portfolio/backend/internal/config"
	"github.com/portfolio/backend/internal/logging"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/repository/migrations"

	_ "modernc.org/sqlite"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate

Creates the contact_messages table for the configured STORE_DRIVER
(sqlite or postgres) if it does not exist yet, then exits.`)
	os.Exit(1)
}

func main() {
	if len(os.Args) > 1 {
		usage()
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Setup("")
		logging.Fatal("invalid configuration", "error", err)
	}
	logging.Setup(cfg.LogLevel)

	ctx := context.Background()
	var applied int

	switch cfg.StoreDriver {
	case config.DriverSQLite:
		db, err := sql.Open("sqlite", cfg.DBPath)
		if err != nil {
			logging.Fatal("open failed", "error", err)
		}
		defer db.Close()
		applied, err = repository.ApplySQLiteMigrations(ctx, db, migrations.SQLite, "sqlite")
		if err != nil {
			logging.Fatal("migration failed", "driver", cfg.StoreDriver, "error", err)
		}
	case config.DriverPostgres:
		pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logging.Fatal("connect failed", "error", err)
		}
		defer pool.Close()
		applied, err = repository.ApplyPostgresMigrations(ctx, pool, migrations.Postgres, "postgres")
		if err != nil {
			logging.Fatal("migration failed", "driver", cfg.StoreDriver, "error", err)
		}
	default:
		logging.Fatal("driver has no schema to migrate", "driver", cfg.StoreDriver)
	}

	if applied == 0 {
		slog.Info("schema is up to date", "driver", cfg.StoreDriver)
	} else {
		slog.Info("migrations completed", "driver", cfg.StoreDriver, "count", applied)
	}
}
