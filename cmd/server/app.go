package main

import (
	"log/slog"

	"github.com/dkeller/item-api/internal/config"
	"github.com/dkeller/item-api/internal/platform/memory"
	"github.com/dkeller/item-api/internal/store"
)

// application holds the shared dependencies for the server: configuration,
// the logger, and the item store. Handlers receive these by injection;
// nothing reaches for ambient global state.
type application struct {
	config    *config.Config
	logger    *slog.Logger
	itemStore store.ItemStore
}

// newApplication wires the application dependencies from the loaded
// configuration and the configured logger.
func newApplication(cfg *config.Config, logger *slog.Logger) *application {
	return &application{
		config:    cfg,
		logger:    logger,
		itemStore: memory.NewItemStore(logger),
	}
}

// cleanup releases application resources on shutdown. The in-memory store
// holds nothing that outlives the process, so this only logs.
func (app *application) cleanup() {
	app.logger.Info("application cleanup complete")
}
