package controller

import "fmt"

// NotificationLevel indicates the kind of a notification.
type NotificationLevel int

const (
	LevelInfo NotificationLevel = iota
	LevelSuccess
	LevelError
)

// Notification is a short message shown to the user, like an alert dialog.
type Notification struct {
	Title   string
	Message string
	Level   NotificationLevel
}

func favoriteNotification(name string, favorite bool) Notification {
	if favorite {
		return Notification{
			Title:   "Added to Favorites",
			Message: fmt.Sprintf("%s has been added to your favorites.", name),
			Level:   LevelSuccess,
		}
	}
	return Notification{
		Title:   "Removed from Favorites",
		Message: fmt.Sprintf("%s has been removed from your favorites.", name),
		Level:   LevelInfo,
	}
}

var toggleFailed = Notification{
	Title:   "Error",
	Message: "Failed to update favorites.",
	Level:   LevelError,
}
