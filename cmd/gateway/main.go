package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"shareit/config"
	"shareit/internal/gateway"
	"shareit/pkg/log"
)

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
	logger.Info(ctx, "Starting ShareIt gateway...")
	logger.Infof(ctx, "Forwarding to %s", cfg.Gateway.ServerURL)

	// 3. Gateway
	gw, err := gateway.New(logger, gateway.Config{
		Logger:          logger,
		Port:            cfg.Gateway.Port,
		Mode:            cfg.HTTPServer.Mode,
		ServerURL:       cfg.Gateway.ServerURL,
		RateLimitPerSec: cfg.Gateway.RateLimitPerSec,
		RateLimitBurst:  cfg.Gateway.RateLimitBurst,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize gateway: ", err)
		return
	}

	// 4. Run
	if err := gw.Run(); err != nil {
		logger.Error(ctx, "Failed to run gateway: ", err)
		return
	}

	logger.Info(ctx, "Gateway stopped gracefully")
}
