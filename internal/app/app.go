// Package app wires settings into the catalog client, the favorites store
// and the thumbnail renderer shared by the commands.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/handiism/recipe-browser/internal/config"
	"github.com/handiism/recipe-browser/internal/favorites"
	apphttp "github.com/handiism/recipe-browser/internal/http"
	"github.com/handiism/recipe-browser/internal/logging"
	"github.com/handiism/recipe-browser/internal/logging/events"
	"github.com/handiism/recipe-browser/internal/mealdb"
	"github.com/handiism/recipe-browser/internal/storage"
	"github.com/handiism/recipe-browser/internal/thumbnail"
	"github.com/handiism/recipe-browser/internal/tui"
)

// App holds the long-lived collaborators built from Settings.
type App struct {
	Name       string
	Settings   *config.Settings
	Catalog    *mealdb.Client
	Favorites  *favorites.Store
	Thumbnails *thumbnail.Service

	slot storage.Slot
}

// LoadSettings reads the settings file at path, or the default location
// when path is empty, and applies environment overrides.
func LoadSettings(path string) (*config.Settings, error) {
	if path == "" {
		path = config.DefaultPath()
	}
	settings, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := settings.ApplyEnv(); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	return settings, nil
}

// New validates settings and builds the App. Logging is configured first
// so that backend setup failures reach the log.
func New(ctx context.Context, name string, settings *config.Settings) (*App, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := logging.Configure(settings.LogFile, logging.ParseLevel(settings.LogLevel), settings.Trace); err != nil {
		return nil, err
	}
	events.App.Start(name, settings.StorageBackend, settings.APIBaseURL)

	httpClient := apphttp.NewClient(
		apphttp.WithTimeout(settings.RequestTimeout()),
		apphttp.WithUserAgent(settings.UserAgent),
	)

	slot, err := storage.Open(ctx, settings.StorageOptions())
	if err != nil {
		logging.Error(err)
		return nil, fmt.Errorf("open favorites storage: %w", err)
	}

	a := &App{
		Name:     name,
		Settings: settings,
		Catalog: mealdb.NewClient(httpClient,
			mealdb.WithBaseURL(settings.APIBaseURL),
			mealdb.WithMaxConcurrentLookups(settings.MaxConcurrentLookups),
		),
		Favorites: favorites.NewStore(slot),
		slot:      slot,
	}
	if settings.ShowThumbnails {
		a.Thumbnails = thumbnail.NewService(httpClient, settings.ThumbnailWidth)
	}
	return a, nil
}

// RunTUI runs the interactive browser until the user quits.
func (a *App) RunTUI(ctx context.Context) error {
	return tui.Run(ctx, tui.Options{
		Source:     a.Catalog,
		Favorites:  a.Favorites,
		Thumbnails: a.Thumbnails,
	})
}

// Close records the exit, releases the storage backend and closes the
// log file.
func (a *App) Close(runErr error) error {
	events.App.Stop(a.Name, runErr)
	var closeErr error
	if c, ok := a.slot.(io.Closer); ok {
		closeErr = c.Close()
	}
	return errors.Join(runErr, closeErr, logging.Close())
}
