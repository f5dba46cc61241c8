package main

// Run database migrations:
//   go run ./cmd/migrate

import (
	"context"
	"log"
	"os"

	"studykit-backend/internal/shared/config"
	"studykit-backend/internal/shared/storage/db"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	if cfg.DatabaseDriver == "" {
		log.Printf("no database configured; set DATABASE_DRIVER or DATABASE_URL")
		os.Exit(1)
	}

	dsn := cfg.DatabaseURL
	if cfg.DatabaseDriver == "sqlite" && dsn == "" {
		dsn = cfg.SQLitePath
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseDriver, dsn, opts)
	if err != nil {
		log.Printf("failed to connect database: %v", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := db.RunMigrations(ctx, sqlDB, cfg.DatabaseDriver); err != nil {
		log.Printf("failed to run migrations: %v", err)
		os.Exit(1)
	}
	log.Printf("migrations complete")
}
