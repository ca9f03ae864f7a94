// Package controller holds the screen state machines of the recipe browser.
//
// Browse owns the Home screen's state: the recipe list, the category chips,
// the search text and the loading flag. Detail owns one recipe's detail
// screen and its favorite flag.
//
// # Lifecycle
//
// A controller is created when its screen is entered, mounted once, and
// unmounted when the screen is left:
//
//	browse := controller.NewBrowse(client, controller.OnBrowseChange(render))
//	browse.Mount(ctx)            // blocks until the initial fetch completes
//	browse.SelectCategory(ctx, "Seafood")
//	browse.Unmount()
//
// Every operation blocks until its network and storage calls return, so
// callers that must stay responsive run them on their own goroutine.
// Requests are never cancelled. A result that arrives after Unmount is
// dropped without touching the state.
//
// # Errors
//
// Retrieval and storage errors stop at this package. A failed fetch keeps
// the previous list and clears the loading flag; only a failed favorite
// toggle is reported to the user, as an error Notification.
package controller
