// Package model defines the core data structures used throughout
// the recipe-browser application.
//
// # Recipe
//
// Recipe is a fully hydrated catalog entry. Records returned by the
// category filter endpoint carry only ID, Name and Thumbnail until they
// are looked up again:
//
//	r := model.Recipe{ID: "52772", Name: "Teriyaki Chicken Casserole"}
//	fmt.Println(r.CategoryLabel()) // "N/A" until the category is known
//	fmt.Println(r.IsHydrated())    // false for summary records
//
// # Category
//
// Category is one entry of the catalog's category list. AllCategory is a
// synthetic entry meaning "no filter" that is prepended client-side:
//
//	cats := model.WithAllCategory(fetched)
//	fmt.Println(cats[0].ID, cats[0].Name) // "0 ALL"
//
// # FavoritesList
//
// FavoritesList is the ordered list of recipe snapshots persisted locally.
// It never holds two entries with the same recipe ID.
package model
