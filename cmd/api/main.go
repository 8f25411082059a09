package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"travel-planner/config"
	_ "travel-planner/docs" // Swagger docs
	"travel-planner/internal/app"
	"travel-planner/internal/httpserver"
	"travel-planner/pkg/log"
)

// @title       Travel Planner API
// @description Travel planning assistant: expenses, itinerary, packing lists, currency and a chat assistant.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 0. Local .env, if any
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Travel Planner API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Services
	components, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize services: ", err)
		return
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := components.Close(closeCtx); err != nil {
			logger.Warnf(closeCtx, "Failed to close storage: %v", err)
		}
	}()

	// Warm the rate table so the first request does not wait on the provider.
	if res := components.Currency.RefreshIfStale(ctx, time.Now()); res.Attempted && res.Err != nil {
		logger.Warnf(ctx, "Live exchange rates unavailable, using static table: %v", res.Err)
	}

	// 4. HTTP Server
	serverCfg := httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		AllowedOrigins: cfg.HTTPServer.AllowedOrigins,
		AppConfig:      cfg,
		MongoDB:        components.MongoDB,
		Currency:       components.Currency,
		ExpenseUC:      components.Expense,
		ItineraryUC:    components.Itinerary,
		ChecklistUC:    components.Checklist,
		Assistant:      components.Assistant,
		TelegramSecret: cfg.Telegram.WebhookSecret,
	}
	if components.Telegram != nil {
		serverCfg.Telegram = components.Telegram
	}
	httpServer, err := httpserver.New(logger, serverCfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Telegram webhook registration
	if components.Telegram != nil && cfg.Telegram.WebhookURL != "" {
		if err := components.Telegram.SetWebhook(ctx, cfg.Telegram.WebhookURL, cfg.Telegram.WebhookSecret); err != nil {
			logger.Warnf(ctx, "Failed to register Telegram webhook: %v", err)
		} else {
			logger.Infof(ctx, "Telegram webhook registered: %s", cfg.Telegram.WebhookURL)
		}
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
