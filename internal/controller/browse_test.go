package controller

import (
	"context"
	"sync"
	"testing"

	"github.com/handiism/recipe-browser/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mountedBrowse(t *testing.T, src *fakeSource, opts ...Option) *Browse {
	t.Helper()
	b := NewBrowse(src, opts...)
	b.Mount(context.Background())
	t.Cleanup(b.Unmount)
	return b
}

func TestBrowse_InitialState(t *testing.T) {
	b := NewBrowse(newFakeSource())

	s := b.State()
	assert.Equal(t, model.AllCategoryName, s.SelectedCategory)
	assert.False(t, s.IsLoading)
	assert.Empty(t, s.Recipes)
	assert.NotEmpty(t, b.Session())
}

func TestBrowse_Mount(t *testing.T) {
	b := mountedBrowse(t, newFakeSource())

	s := b.State()
	assert.False(t, s.IsLoading)
	assert.Equal(t, []string{"52772", "52959", "52820"}, recipeIDs(s.Recipes))
	require.Len(t, s.Categories, 4)
	assert.Equal(t, "0", s.Categories[0].ID)
	assert.Equal(t, "ALL", s.Categories[0].Name)
	assert.Equal(t, "Beef", s.Categories[1].Name)
	assert.Equal(t, model.AllCategoryName, s.SelectedCategory)
}

func TestBrowse_Mount_Failures(t *testing.T) {
	tests := []struct {
		name           string
		searchErr      error
		catErr         error
		wantRecipes    int
		wantCategories int
	}{
		{"search fails", errOffline, nil, 0, 4},
		{"categories fail", nil, errOffline, 3, 0},
		{"both fail", errOffline, errOffline, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newFakeSource()
			src.searchErr = tt.searchErr
			src.catErr = tt.catErr

			s := mountedBrowse(t, src).State()
			assert.False(t, s.IsLoading)
			assert.Len(t, s.Recipes, tt.wantRecipes)
			assert.Len(t, s.Categories, tt.wantCategories)
		})
	}
}

func TestBrowse_Submit(t *testing.T) {
	b := mountedBrowse(t, newFakeSource())

	b.Submit(context.Background(), "chicken")

	s := b.State()
	assert.Equal(t, "chicken", s.SearchText)
	assert.Equal(t, []string{"52772", "52820"}, recipeIDs(s.Recipes))
	assert.False(t, s.IsLoading)
}

func TestBrowse_Submit_FailureKeepsList(t *testing.T) {
	src := newFakeSource()
	b := mountedBrowse(t, src)
	src.searchErr = errOffline

	b.Submit(context.Background(), "salmon")

	s := b.State()
	assert.Len(t, s.Recipes, 3)
	assert.Equal(t, "salmon", s.SearchText)
	assert.False(t, s.IsLoading)
}

func TestBrowse_SelectCategory(t *testing.T) {
	b := mountedBrowse(t, newFakeSource())
	ctx := context.Background()

	b.SelectCategory(ctx, "Seafood")
	s := b.State()
	assert.Equal(t, "Seafood", s.SelectedCategory)
	assert.Equal(t, []string{"52959"}, recipeIDs(s.Recipes))

	b.SelectCategory(ctx, "ALL")
	s = b.State()
	assert.Equal(t, model.AllCategoryName, s.SelectedCategory)
	assert.Equal(t, []string{"52772", "52959", "52820"}, recipeIDs(s.Recipes))
}

func TestBrowse_SelectAllKeepsSearchText(t *testing.T) {
	b := mountedBrowse(t, newFakeSource())
	ctx := context.Background()

	b.Submit(ctx, "salmon")
	b.SelectCategory(ctx, "ALL")

	s := b.State()
	assert.Equal(t, "salmon", s.SearchText)
	assert.Len(t, s.Recipes, 3)
}

func TestBrowse_SelectCategory_FailureKeepsList(t *testing.T) {
	src := newFakeSource()
	b := mountedBrowse(t, src)
	src.filterErr = errOffline

	b.SelectCategory(context.Background(), "Beef")

	s := b.State()
	assert.Equal(t, "Beef", s.SelectedCategory)
	assert.Len(t, s.Recipes, 3)
	assert.False(t, s.IsLoading)
}

func TestBrowse_UnmountDropsLateResults(t *testing.T) {
	src := newFakeSource()
	b := mountedBrowse(t, src)
	before := b.State()

	src.mu.Lock()
	src.gate = make(chan struct{})
	src.started = make(chan struct{}, 1)
	src.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		b.Submit(context.Background(), "salmon")
	}()
	<-src.started
	b.Unmount()
	close(src.gate)
	<-done

	after := b.State()
	assert.Equal(t, before.Recipes, after.Recipes)
	assert.True(t, after.IsLoading, "completion after unmount must not clear loading")
}

func TestBrowse_UnmountedIgnoresCalls(t *testing.T) {
	b := NewBrowse(newFakeSource())

	b.Submit(context.Background(), "chicken")
	b.SelectCategory(context.Background(), "Seafood")

	s := b.State()
	assert.Empty(t, s.SearchText)
	assert.Equal(t, model.AllCategoryName, s.SelectedCategory)
}

func TestBrowse_OnChange(t *testing.T) {
	var mu sync.Mutex
	var seen []BrowseState
	b := mountedBrowse(t, newFakeSource(), OnBrowseChange(func(s BrowseState) {
		mu.Lock()
		seen = append(seen, s)
		mu.Unlock()
	}))

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, seen)
	assert.True(t, seen[0].IsLoading)
	assert.Equal(t, b.State().Recipes, seen[len(seen)-1].Recipes)
}
