package controller

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/handiism/recipe-browser/internal/model"
)

var (
	teriyaki = model.Recipe{ID: "52772", Name: "Teriyaki Chicken Casserole", Category: "Chicken"}
	salmon   = model.Recipe{ID: "52959", Name: "Baked salmon with fennel & tomatoes", Category: "Seafood"}
	curry    = model.Recipe{ID: "52820", Name: "Katsu Chicken curry", Category: "Chicken"}

	errOffline = errors.New("offline")
)

// fakeSource is an in-memory catalog. A non-nil gate blocks SearchByName
// and a non-nil lookupGate blocks LookupByID until closed; started receives
// once per blocked call.
type fakeSource struct {
	mu         sync.Mutex
	recipes    []model.Recipe
	categories []model.Category
	searchErr  error
	catErr     error
	filterErr  error
	lookupErr  error
	gate       chan struct{}
	started    chan struct{}
	lookupGate chan struct{}
	lookups    []string
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		recipes: []model.Recipe{teriyaki, salmon, curry},
		categories: []model.Category{
			{ID: "1", Name: "Beef"},
			{ID: "2", Name: "Chicken"},
			{ID: "8", Name: "Seafood"},
		},
	}
}

func (f *fakeSource) SearchByName(ctx context.Context, query string) ([]model.Recipe, error) {
	f.mu.Lock()
	gate, started, err := f.gate, f.started, f.searchErr
	f.mu.Unlock()
	if gate != nil {
		started <- struct{}{}
		<-gate
	}
	if err != nil {
		return nil, err
	}
	out := []model.Recipe{}
	for _, r := range f.recipes {
		if strings.Contains(strings.ToLower(r.Name), strings.ToLower(query)) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeSource) ListCategories(ctx context.Context) ([]model.Category, error) {
	if f.catErr != nil {
		return nil, f.catErr
	}
	return f.categories, nil
}

func (f *fakeSource) FilterByCategory(ctx context.Context, category string) ([]model.Recipe, error) {
	if f.filterErr != nil {
		return nil, f.filterErr
	}
	out := []model.Recipe{}
	for _, r := range f.recipes {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeSource) LookupByID(ctx context.Context, id string) (*model.Recipe, error) {
	f.mu.Lock()
	f.lookups = append(f.lookups, id)
	gate, started := f.lookupGate, f.started
	f.mu.Unlock()
	if gate != nil {
		started <- struct{}{}
		<-gate
	}
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	for _, r := range f.recipes {
		if r.ID == id {
			r := r
			return &r, nil
		}
	}
	return nil, nil
}

func recipeIDs(recipes []model.Recipe) []string {
	ids := make([]string, len(recipes))
	for i, r := range recipes {
		ids[i] = r.ID
	}
	return ids
}
