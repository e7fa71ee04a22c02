package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"shareit/config"
	"shareit/config/postgre"
	_ "shareit/docs" // Swagger docs
	"shareit/internal/httpserver"
	"shareit/pkg/log"
)

// @title       ShareIt API
// @description Peer-to-peer item sharing: users, items, bookings, requests.
// @version     1
// @host        localhost:9090
// @schemes     http
func main() {
	// .env is optional; real deployments use environment variables.
	_ = godotenv.Load()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting ShareIt API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	db, err := postgre.Connect(cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Postgres: ", err)
		return
	}
	defer db.Close()

	if err := postgre.MigrateUp(cfg.Postgres); err != nil {
		logger.Error(ctx, "Failed to run migrations: ", err)
		return
	}
	logger.Info(ctx, "Migrations applied")

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		PostgresDB:  db,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
