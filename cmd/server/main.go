// Package main implements the entry point for the item API server,
// a REST API exposing CRUD operations over an in-memory item collection
// plus Kubernetes-style health probes.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/dkeller/item-api/internal/config"
	"github.com/dkeller/item-api/internal/platform/logger"
)

// main is the entry point for the item-api server.
// It initializes configuration, sets up logging, injects dependencies,
// and starts the HTTP server.
func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up application components.
// Returns the assembled application and any initialization error.
func initializeApp() (*application, error) {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Set up structured logging using the configured log level
	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	// Log configuration details using structured logging
	slog.Info("server configuration loaded",
		"app", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	return newApplication(cfg, appLogger), nil
}
