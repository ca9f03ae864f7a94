package controller

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/handiism/recipe-browser/internal/logging"
	"github.com/handiism/recipe-browser/internal/logging/events"
	"github.com/handiism/recipe-browser/internal/model"
)

// ErrNoRecipe is returned by ToggleFavorite before a recipe has loaded.
var ErrNoRecipe = errors.New("no recipe loaded")

// DetailState is a detail screen's state. Recipe is nil while loading and
// when the id does not exist.
type DetailState struct {
	Recipe     *model.Recipe
	IsFavorite bool
	IsLoading  bool
}

func (s DetailState) clone() DetailState {
	if s.Recipe != nil {
		r := *s.Recipe
		s.Recipe = &r
	}
	return s
}

// Detail drives the detail screen of a single recipe.
type Detail struct {
	id        string
	source    RecipeSource
	favorites FavoriteStore
	onChange  func(DetailState)
	notifier  func(Notification)
	session   string

	mu    sync.Mutex
	state DetailState
	alive bool
}

// NewDetail creates an unmounted controller for the recipe id. Its state
// starts out loading.
func NewDetail(id string, source RecipeSource, favorites FavoriteStore, opts ...Option) *Detail {
	o := buildOptions(opts)
	return &Detail{
		id:        id,
		source:    source,
		favorites: favorites,
		onChange:  o.onDetail,
		notifier:  o.notify,
		session:   uuid.NewString(),
		state:     DetailState{IsLoading: true},
	}
}

// ID returns the recipe id this screen shows.
func (d *Detail) ID() string { return d.id }

// Session identifies this controller instance in trace events.
func (d *Detail) Session() string { return d.session }

// State returns a copy of the current state.
func (d *Detail) State() DetailState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state.clone()
}

// Mount loads the recipe and then its favorite flag.
func (d *Detail) Mount(ctx context.Context) {
	d.mu.Lock()
	d.alive = true
	d.state = DetailState{IsLoading: true}
	snapshot := d.state.clone()
	d.mu.Unlock()
	d.notify(snapshot)

	recipe, err := d.source.LookupByID(ctx, d.id)
	if err != nil || recipe == nil {
		if err != nil {
			d.swallow("lookupById", err)
		}
		d.apply("lookupById", func(s *DetailState) { s.IsLoading = false })
		return
	}
	if !d.apply("lookupById", func(s *DetailState) { s.Recipe = recipe }) {
		return
	}

	favorite, err := d.favorites.IsFavorite(ctx, d.id)
	if err != nil {
		d.swallow("isFavorite", err)
	}
	d.apply("isFavorite", func(s *DetailState) {
		s.IsFavorite = err == nil && favorite
		s.IsLoading = false
	})
}

// ToggleFavorite flips the recipe's membership in the favorites list and
// returns the notification shown to the user. On a storage failure the
// error notification is returned together with the error.
func (d *Detail) ToggleFavorite(ctx context.Context) (Notification, error) {
	d.mu.Lock()
	var recipe model.Recipe
	loaded := d.state.Recipe != nil
	if loaded {
		recipe = *d.state.Recipe
	}
	d.mu.Unlock()
	if !loaded {
		return Notification{}, ErrNoRecipe
	}

	favorite, err := d.favorites.Toggle(ctx, recipe)
	if err != nil {
		events.Favorites.Failed("toggle", err)
		d.emit(toggleFailed)
		return toggleFailed, err
	}

	n := favoriteNotification(recipe.Name, favorite)
	if d.apply("toggle", func(s *DetailState) { s.IsFavorite = favorite }) {
		d.emit(n)
	}
	return n, nil
}

// Unmount marks the screen as gone.
func (d *Detail) Unmount() {
	d.mu.Lock()
	d.alive = false
	d.mu.Unlock()
}

func (d *Detail) apply(op string, fn func(*DetailState)) bool {
	d.mu.Lock()
	if !d.alive {
		d.mu.Unlock()
		events.Fetch.Discarded(d.session, op)
		return false
	}
	fn(&d.state)
	snapshot := d.state.clone()
	d.mu.Unlock()
	d.notify(snapshot)
	return true
}

func (d *Detail) notify(s DetailState) {
	if d.onChange != nil {
		d.onChange(s)
	}
}

func (d *Detail) emit(n Notification) {
	if d.notifier != nil {
		d.notifier(n)
	}
}

func (d *Detail) swallow(op string, err error) {
	logging.Logger().Debug("detail fetch failed",
		"session", d.session, "id", d.id, "op", op, "error", err.Error())
}
