package controller

import (
	"context"

	"github.com/handiism/recipe-browser/internal/model"
)

// RecipeSource is the catalog the controllers read from.
// *mealdb.Client implements it.
type RecipeSource interface {
	SearchByName(ctx context.Context, query string) ([]model.Recipe, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	FilterByCategory(ctx context.Context, category string) ([]model.Recipe, error)
	LookupByID(ctx context.Context, id string) (*model.Recipe, error)
}

// FavoriteStore is the favorites persistence Detail uses.
// *favorites.Store implements it.
type FavoriteStore interface {
	IsFavorite(ctx context.Context, id string) (bool, error)
	Toggle(ctx context.Context, recipe model.Recipe) (bool, error)
}

// Option configures a controller.
type Option func(*options)

type options struct {
	onBrowse func(BrowseState)
	onDetail func(DetailState)
	notify   func(Notification)
}

// OnBrowseChange registers fn to receive a copy of the state after every
// Browse transition. fn runs on the goroutine that made the change.
func OnBrowseChange(fn func(BrowseState)) Option {
	return func(o *options) { o.onBrowse = fn }
}

// OnDetailChange registers fn to receive a copy of the state after every
// Detail transition.
func OnDetailChange(fn func(DetailState)) Option {
	return func(o *options) { o.onDetail = fn }
}

// WithNotifier registers fn to receive user-facing notifications.
func WithNotifier(fn func(Notification)) Option {
	return func(o *options) { o.notify = fn }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
