package mealdb

import (
	"errors"
	"fmt"
)

// Operation names carried by RetrievalError.
const (
	OpSearchByName     = "searchByName"
	OpListCategories   = "listCategories"
	OpFilterByCategory = "filterByCategory"
	OpLookupByID       = "lookupById"
)

// ErrNotFound is the cause of a failed hydration when the catalog lists a
// summary record whose lookup returns nothing.
var ErrNotFound = errors.New("recipe not found")

// RetrievalError reports a transport or parse failure of one catalog query.
type RetrievalError struct {
	// Op is the failed operation, one of the Op* constants.
	Op string

	// Err is the underlying cause.
	Err error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}
