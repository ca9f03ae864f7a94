package controller

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/handiism/recipe-browser/internal/logging"
	"github.com/handiism/recipe-browser/internal/logging/events"
	"github.com/handiism/recipe-browser/internal/model"
)

// BrowseState is the Home screen's state.
type BrowseState struct {
	Recipes          []model.Recipe
	Categories       []model.Category
	SearchText       string
	SelectedCategory string
	IsLoading        bool
}

func (s BrowseState) clone() BrowseState {
	s.Recipes = slices.Clone(s.Recipes)
	s.Categories = slices.Clone(s.Categories)
	return s
}

// Browse drives the Home screen: free-text search and category filtering
// over the catalog.
type Browse struct {
	source   RecipeSource
	onChange func(BrowseState)
	session  string

	mu    sync.Mutex
	state BrowseState
	alive bool
}

// NewBrowse creates an unmounted Home screen controller.
func NewBrowse(source RecipeSource, opts ...Option) *Browse {
	o := buildOptions(opts)
	return &Browse{
		source:   source,
		onChange: o.onBrowse,
		session:  uuid.NewString(),
		state:    BrowseState{SelectedCategory: model.AllCategoryName},
	}
}

// Session identifies this controller instance in trace events.
func (b *Browse) Session() string { return b.session }

// State returns a copy of the current state.
func (b *Browse) State() BrowseState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state.clone()
}

// Mount resets the state and loads the full recipe list and the category
// chips concurrently. It returns once both fetches have completed.
func (b *Browse) Mount(ctx context.Context) {
	b.mu.Lock()
	b.alive = true
	b.state = BrowseState{SelectedCategory: model.AllCategoryName, IsLoading: true}
	snapshot := b.state.clone()
	b.mu.Unlock()
	b.notify(snapshot)

	var g errgroup.Group
	g.Go(func() error {
		b.search(ctx, "")
		return nil
	})
	g.Go(func() error {
		cats, err := b.source.ListCategories(ctx)
		if err != nil {
			b.swallow("listCategories", err)
			return nil
		}
		b.apply("listCategories", func(s *BrowseState) {
			s.Categories = model.WithAllCategory(cats)
		})
		return nil
	})
	_ = g.Wait()
}

// Submit searches recipes by name. The text is kept as the current search.
func (b *Browse) Submit(ctx context.Context, text string) {
	if !b.apply("submit", func(s *BrowseState) { s.SearchText = text }) {
		return
	}
	b.search(ctx, text)
}

// SelectCategory filters the list by category. The ALL chip reloads the
// full list and leaves the search text untouched.
func (b *Browse) SelectCategory(ctx context.Context, name string) {
	if !b.apply("selectCategory", func(s *BrowseState) { s.SelectedCategory = name }) {
		return
	}
	if name == model.AllCategoryName {
		b.search(ctx, "")
		return
	}

	b.apply("filterByCategory", func(s *BrowseState) { s.IsLoading = true })
	recipes, err := b.source.FilterByCategory(ctx, name)
	if err != nil {
		b.swallow("filterByCategory", err)
	}
	b.apply("filterByCategory", func(s *BrowseState) {
		if err == nil {
			s.Recipes = recipes
		}
		s.IsLoading = false
	})
}

// Unmount marks the screen as gone. Fetches still in flight complete but
// their results are dropped.
func (b *Browse) Unmount() {
	b.mu.Lock()
	b.alive = false
	b.mu.Unlock()
}

func (b *Browse) search(ctx context.Context, query string) {
	b.apply("searchByName", func(s *BrowseState) { s.IsLoading = true })
	recipes, err := b.source.SearchByName(ctx, query)
	if err != nil {
		b.swallow("searchByName", err)
	}
	b.apply("searchByName", func(s *BrowseState) {
		if err == nil {
			s.Recipes = recipes
		}
		s.IsLoading = false
	})
}

// apply mutates the state if the screen is still mounted and reports
// whether it did.
func (b *Browse) apply(op string, fn func(*BrowseState)) bool {
	b.mu.Lock()
	if !b.alive {
		b.mu.Unlock()
		events.Fetch.Discarded(b.session, op)
		return false
	}
	fn(&b.state)
	snapshot := b.state.clone()
	b.mu.Unlock()
	b.notify(snapshot)
	return true
}

func (b *Browse) notify(s BrowseState) {
	if b.onChange != nil {
		b.onChange(s)
	}
}

func (b *Browse) swallow(op string, err error) {
	logging.Logger().Debug("browse fetch failed, keeping previous list",
		"session", b.session, "op", op, "error", err.Error())
}
