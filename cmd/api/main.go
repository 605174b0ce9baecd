package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"consulate-console/config"
	_ "consulate-console/docs" // Swagger docs
	"consulate-console/internal/catalog"
	"consulate-console/internal/httpserver"
	"consulate-console/internal/middleware"
	"consulate-console/internal/resource/query"
	"consulate-console/internal/resource/schema"
	"consulate-console/pkg/log"
	"consulate-console/pkg/restclient"
)

// @title       Consulate Console API
// @description Administration console for consular content: news, events, photos, videos and accounts.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration (.env is optional, real env wins)
	_ = godotenv.Load()

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

	logger.Info(ctx, "Starting consulate console...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Backend URL: %s", cfg.Backend.BaseURL)

	// 3. Upstream client, cache store and shared validator
	client := restclient.New(restclient.Config{
		BaseURL:     cfg.Backend.BaseURL,
		AccessToken: cfg.Backend.AccessToken,
		Timeout:     cfg.Backend.Timeout,
	}, logger)

	store := query.NewStore(query.Config{
		Capacity: cfg.Cache.Capacity,
		ListTTL:  cfg.Cache.ListTTL,
		StatsTTL: cfg.Cache.StatsTTL,
	}, logger)

	mw := middleware.New(logger, cfg.Auth, cfg.RateLimit)

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Deps: catalog.Deps{
			Logger:    logger,
			Client:    client,
			Store:     store,
			Validator: schema.NewValidator(),
		},
		Middleware: mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
