// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package app assembles the reading service from its parts.

Both binaries build the same object graph: the seeded catalog, the settings
store and the reading session. The HTTP server wraps it in handlers, the
terminal front-end renders it directly.

Usage:

	application, err := app.New(app.FromConfig(cfg), logger)
	if err != nil {
	    return err
	}
*/
package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/inkwell/internal/core/catalog"
	"github.com/taibuivan/inkwell/internal/core/session"
	"github.com/taibuivan/inkwell/internal/core/settings"
	"github.com/taibuivan/inkwell/internal/platform/config"
	"github.com/taibuivan/inkwell/internal/platform/seed"
)

// # Composition

// Options selects the seed and tunes the story creation flow.
type Options struct {
	// CatalogPath is the YAML seed file. Empty means the embedded seed.
	CatalogPath string

	// CreateDelay simulates the latency of saving a new story.
	CreateDelay time.Duration

	// PlaceholderCover is used for stories added without a cover image.
	PlaceholderCover string

	// Now is the clock shared by every component. Nil means [time.Now].
	Now func() time.Time
}

// FromConfig maps the runtime configuration onto [Options].
func FromConfig(cfg *config.Config) Options {
	return Options{
		CatalogPath:      cfg.CatalogPath,
		CreateDelay:      cfg.StoryCreateDelay,
		PlaceholderCover: cfg.PlaceholderCoverURL,
	}
}

// App owns the single reader's state for the lifetime of the process.
type App struct {
	Catalog  *catalog.Service
	Settings *settings.Store
	Session  *session.Session
	Now      func() time.Time

	logger *slog.Logger
}

/*
New loads the seed and builds the catalog, settings and session.

Returns:
  - *App: The assembled service
  - error: Seed read or integrity failures
*/
func New(options Options, logger *slog.Logger) (*App, error) {
	now := options.Now
	if now == nil {
		now = time.Now
	}

	fixture, err := seed.Load(options.CatalogPath)
	if err != nil {
		return nil, err
	}

	store, err := catalog.NewMemoryStore(fixture.Stories, fixture.Chapters)
	if err != nil {
		return nil, fmt.Errorf("app: seed catalog: %w", err)
	}

	catalogService := catalog.NewService(store, store.Chapters(), logger, catalog.Options{
		PlaceholderCover: options.PlaceholderCover,
		CreateDelay:      options.CreateDelay,
		Now:              now,
	})

	logger.Info("catalog_loaded",
		slog.Int("stories", len(fixture.Stories)),
		slog.Int("chapters", len(fixture.Chapters)),
	)

	return &App{
		Catalog:  catalogService,
		Settings: settings.NewStore(settings.Defaults(), logger),
		Session:  session.New(catalogService, logger, now),
		Now:      now,
		logger:   logger,
	}, nil
}

// # Settings Fan-out

// Broadcast publishes every settings change on channel until the returned
// function is called.
func (application *App) Broadcast(client settings.Publisher, channel string) (stop func()) {
	publisher := settings.NewRedisPublisher(client, channel, application.logger)
	application.logger.Info("settings_broadcast_enabled", slog.String("channel", channel))
	return application.Settings.Subscribe(publisher.Listen)
}
