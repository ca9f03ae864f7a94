package model

import (
	"strings"
)

// MaxIngredients is the number of ingredient/measure slots a catalog entry has.
const MaxIngredients = 20

// Recipe represents a catalog entry with its full detail.
//
// A Recipe is immutable once fetched; the application never edits one
// locally. Favorites store whole Recipe snapshots rather than references.
type Recipe struct {
	// ID is the catalog identifier. Stable per catalog entry.
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Thumbnail is the URI of the recipe image.
	Thumbnail string `json:"thumbnail,omitempty"`

	// Category is the catalog category name (e.g. "Seafood").
	Category string `json:"category,omitempty"`

	// Area is the cuisine origin (e.g. "Japanese").
	Area string `json:"area,omitempty"`

	// Instructions is free text, usually several paragraphs.
	Instructions string `json:"instructions,omitempty"`

	// Ingredients holds at most MaxIngredients pairs, in catalog order.
	// Only pairs with a non-empty ingredient name are present.
	Ingredients []Ingredient `json:"ingredients,omitempty"`

	// Tags are the comma-separated catalog tags split into a slice.
	Tags []string `json:"tags,omitempty"`

	// YouTube is a link to a video of the recipe, if any.
	YouTube string `json:"youtube,omitempty"`

	// Source is the original recipe page, if any.
	Source string `json:"source,omitempty"`
}

// Ingredient is one (ingredient, measure) pair of a recipe.
type Ingredient struct {
	Name    string `json:"name"`
	Measure string `json:"measure,omitempty"`
}

// String renders the pair the way the detail screen lists it.
func (i Ingredient) String() string {
	if i.Measure == "" {
		return i.Name
	}
	return i.Measure + " " + i.Name
}

// Summary returns the first n runes of the instructions followed by "...".
func (r Recipe) Summary(n int) string {
	text := strings.Join(strings.Fields(r.Instructions), " ")
	runes := []rune(text)
	if n >= 0 && len(runes) > n {
		runes = runes[:n]
	}
	return string(runes) + "..."
}

// CategoryLabel returns the category, or "N/A" when unknown.
func (r Recipe) CategoryLabel() string {
	if r.Category == "" {
		return "N/A"
	}
	return r.Category
}

// IsHydrated reports whether r carries detail beyond a summary record.
func (r Recipe) IsHydrated() bool {
	return r.Instructions != "" || len(r.Ingredients) > 0
}
