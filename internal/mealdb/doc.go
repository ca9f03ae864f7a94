// Package mealdb provides a read-only client for TheMealDB recipe catalog
// and maps its JSON responses onto model types.
//
// The package handles four catalog queries:
//
//  1. Searching recipes by name (an empty query matches the whole catalog)
//  2. Listing categories
//  3. Filtering by category, hydrating every summary record
//  4. Looking up a single recipe by id
//
// # Searching
//
//	client := mealdb.NewClient(http.NewClient())
//	recipes, err := client.SearchByName(ctx, "chicken")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range recipes {
//	    fmt.Println(r.ID, r.Name)
//	}
//
// # Category Filtering
//
// The filter endpoint only returns id, name and thumbnail. FilterByCategory
// issues one lookup per summary, concurrently, and returns the hydrated
// recipes in the order the endpoint listed them. A single failed lookup
// fails the whole call.
//
// # Catalog Data Format
//
// The catalog answers with {"meals": [...]} or {"meals": null} when
// nothing matches. Ingredients are spread over strIngredient1..20 and
// strMeasure1..20 fields; the dto package folds them into pairs.
package mealdb
