package events

import "github.com/handiism/recipe-browser/internal/logging"

type FavoritesTracer struct{}

var Favorites = FavoritesTracer{}

func (FavoritesTracer) Toggled(id string, favorite bool) {
	logging.Trace("favorites.toggle", "id", id, "favorite", favorite)
}

func (FavoritesTracer) Corrupt(key string, err error) {
	logging.Logger().Warn("favorites blob unreadable, starting empty", "key", key, "error", err.Error())
}

func (FavoritesTracer) Failed(op string, err error) {
	if err == nil {
		return
	}
	logging.Logger().Error("favorites update failed", "op", op, "error", err.Error())
}
