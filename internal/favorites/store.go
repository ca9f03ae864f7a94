// Package favorites persists the user's favorite recipes.
//
// The whole list lives in a single storage slot as one JSON array of full
// recipe snapshots. A missing or unreadable blob reads as an empty list.
//
// Mutations are read-modify-write. The Store serializes its own mutations,
// so concurrent toggles through one Store cannot lose updates; two
// processes sharing the same slot can still overwrite each other.
package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/handiism/recipe-browser/internal/logging/events"
	"github.com/handiism/recipe-browser/internal/model"
	"github.com/handiism/recipe-browser/internal/storage"
)

// Key is the storage slot holding the favorites list.
const Key = "favorites"

// StorageError reports a failed read or write of the favorites slot.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("favorites %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Store reads and writes the favorites list.
type Store struct {
	slot storage.Slot
	mu   sync.Mutex
}

// NewStore creates a Store over slot.
func NewStore(slot storage.Slot) *Store {
	return &Store{slot: slot}
}

// ReadAll returns the persisted list.
//
// A slot that was never written, or holds data that is not a JSON list of
// recipes, yields an empty list and no error. Only a failing slot returns
// a *StorageError.
func (s *Store) ReadAll(ctx context.Context) (model.FavoritesList, error) {
	data, err := s.slot.Load(ctx, Key)
	if errors.Is(err, storage.ErrNotFound) {
		return model.FavoritesList{}, nil
	}
	if err != nil {
		return nil, &StorageError{Op: "read", Key: Key, Err: err}
	}
	return decode(data), nil
}

func decode(data []byte) model.FavoritesList {
	var list model.FavoritesList
	if err := json.Unmarshal(data, &list); err != nil {
		events.Favorites.Corrupt(Key, err)
		return model.FavoritesList{}
	}
	if list == nil {
		return model.FavoritesList{}
	}
	return list.Dedupe()
}

// IsFavorite reports whether a recipe with id is in the persisted list.
func (s *Store) IsFavorite(ctx context.Context, id string) (bool, error) {
	list, err := s.ReadAll(ctx)
	if err != nil {
		return false, err
	}
	return list.Contains(id), nil
}

// Add appends recipe unless its id is already present.
func (s *Store) Add(ctx context.Context, recipe model.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.ReadAll(ctx)
	if err != nil {
		return err
	}
	if list.Contains(recipe.ID) {
		return nil
	}
	return s.write(ctx, list.With(recipe))
}

// Remove deletes every entry with id.
func (s *Store) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.ReadAll(ctx)
	if err != nil {
		return err
	}
	return s.write(ctx, list.Without(id))
}

// Toggle flips the membership of recipe and returns the new state.
func (s *Store) Toggle(ctx context.Context, recipe model.Recipe) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.ReadAll(ctx)
	if err != nil {
		return false, err
	}

	favorite := !list.Contains(recipe.ID)
	if favorite {
		list = list.With(recipe)
	} else {
		list = list.Without(recipe.ID)
	}

	if err := s.write(ctx, list); err != nil {
		return !favorite, err
	}

	events.Favorites.Toggled(recipe.ID, favorite)
	return favorite, nil
}

func (s *Store) write(ctx context.Context, list model.FavoritesList) error {
	if list == nil {
		list = model.FavoritesList{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return &StorageError{Op: "encode", Key: Key, Err: err}
	}
	if err := s.slot.Store(ctx, Key, data); err != nil {
		return &StorageError{Op: "write", Key: Key, Err: err}
	}
	return nil
}
