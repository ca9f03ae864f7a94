package mealdb

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	apphttp "github.com/handiism/recipe-browser/internal/http"
	"github.com/handiism/recipe-browser/internal/logging/events"
	"github.com/handiism/recipe-browser/internal/mealdb/dto"
	"github.com/handiism/recipe-browser/internal/model"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultBaseURL is the public v1 API with the shared test key.
	DefaultBaseURL = "https://www.themealdb.com/api/json/v1/1"

	// DefaultMaxConcurrentLookups bounds the hydration fan-out of FilterByCategory.
	DefaultMaxConcurrentLookups = 8
)

// Client issues read-only queries against the recipe catalog.
//
// Example usage:
//
//	client := NewClient(http.NewClient(), WithMaxConcurrentLookups(4))
//
//	recipes, err := client.FilterByCategory(ctx, "Seafood")
//	if err != nil {
//	    var re *RetrievalError
//	    if errors.As(err, &re) {
//	        fmt.Println("failed:", re.Op)
//	    }
//	}
type Client struct {
	http                 *apphttp.Client
	baseURL              string
	maxConcurrentLookups int
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another catalog root, e.g. a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithMaxConcurrentLookups bounds how many lookups FilterByCategory runs at
// once. Values below 1 keep the default.
func WithMaxConcurrentLookups(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxConcurrentLookups = n
		}
	}
}

// NewClient creates a catalog client on top of an HTTP client.
func NewClient(httpClient *apphttp.Client, opts ...Option) *Client {
	if httpClient == nil {
		httpClient = apphttp.NewClient()
	}
	c := &Client{
		http:                 httpClient,
		baseURL:              DefaultBaseURL,
		maxConcurrentLookups: DefaultMaxConcurrentLookups,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchByName returns every recipe whose name matches query.
//
// An empty query matches the whole catalog. The result is never nil: the
// catalog's null "meals" field for zero matches becomes an empty slice.
func (c *Client) SearchByName(ctx context.Context, query string) ([]model.Recipe, error) {
	start := time.Now()
	events.Fetch.Start(OpSearchByName, query)

	var resp dto.MealsResponse
	if err := c.http.GetJSON(ctx, c.endpoint("search.php", "s", query), &resp); err != nil {
		events.Fetch.Fail(OpSearchByName, query, err)
		return nil, &RetrievalError{Op: OpSearchByName, Err: err}
	}

	recipes := make([]model.Recipe, 0, len(resp.Meals))
	for i := range resp.Meals {
		recipes = append(recipes, resp.Meals[i].ToRecipe())
	}

	events.Fetch.Done(OpSearchByName, query, len(recipes), time.Since(start))
	return recipes, nil
}

// ListCategories returns the catalog's categories, without the synthetic
// ALL entry.
func (c *Client) ListCategories(ctx context.Context) ([]model.Category, error) {
	start := time.Now()
	events.Fetch.Start(OpListCategories, "")

	var resp dto.CategoriesResponse
	if err := c.http.GetJSON(ctx, c.baseURL+"/categories.php", &resp); err != nil {
		events.Fetch.Fail(OpListCategories, "", err)
		return nil, &RetrievalError{Op: OpListCategories, Err: err}
	}

	categories := make([]model.Category, 0, len(resp.Categories))
	for i := range resp.Categories {
		categories = append(categories, resp.Categories[i].ToCategory())
	}

	events.Fetch.Done(OpListCategories, "", len(categories), time.Since(start))
	return categories, nil
}

// FilterByCategory returns the hydrated recipes of one category.
//
// The filter endpoint only returns summary records, so this method performs
// one lookup per summary. Lookups run concurrently, bounded by the
// configured limit, and the result keeps the endpoint's order. If any
// lookup fails, or comes back empty, the whole call fails.
func (c *Client) FilterByCategory(ctx context.Context, category string) ([]model.Recipe, error) {
	start := time.Now()
	events.Fetch.Start(OpFilterByCategory, category)

	var resp dto.MealsResponse
	if err := c.http.GetJSON(ctx, c.endpoint("filter.php", "c", category), &resp); err != nil {
		events.Fetch.Fail(OpFilterByCategory, category, err)
		return nil, &RetrievalError{Op: OpFilterByCategory, Err: err}
	}

	recipes := make([]model.Recipe, len(resp.Meals))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.maxConcurrentLookups)

	for i, summary := range resp.Meals {
		g.Go(func() error {
			recipe, err := c.lookup(gctx, summary.ID)
			if err != nil {
				return fmt.Errorf("hydrate %s: %w", summary.ID, err)
			}
			if recipe == nil {
				return fmt.Errorf("hydrate %s: %w", summary.ID, ErrNotFound)
			}
			recipes[i] = *recipe
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		events.Fetch.Fail(OpFilterByCategory, category, err)
		return nil, &RetrievalError{Op: OpFilterByCategory, Err: err}
	}

	events.Fetch.Done(OpFilterByCategory, category, len(recipes), time.Since(start))
	return recipes, nil
}

// LookupByID returns the recipe with the given id, or nil if the catalog
// has no such entry. Absence is not an error.
func (c *Client) LookupByID(ctx context.Context, id string) (*model.Recipe, error) {
	start := time.Now()
	events.Fetch.Start(OpLookupByID, id)

	recipe, err := c.lookup(ctx, id)
	if err != nil {
		events.Fetch.Fail(OpLookupByID, id, err)
		return nil, &RetrievalError{Op: OpLookupByID, Err: err}
	}

	count := 0
	if recipe != nil {
		count = 1
	}
	events.Fetch.Done(OpLookupByID, id, count, time.Since(start))
	return recipe, nil
}

func (c *Client) lookup(ctx context.Context, id string) (*model.Recipe, error) {
	var resp dto.MealsResponse
	if err := c.http.GetJSON(ctx, c.endpoint("lookup.php", "i", id), &resp); err != nil {
		return nil, err
	}
	if len(resp.Meals) == 0 {
		return nil, nil
	}
	recipe := resp.Meals[0].ToRecipe()
	return &recipe, nil
}

func (c *Client) endpoint(path, key, value string) string {
	return c.baseURL + "/" + path + "?" + url.Values{key: {value}}.Encode()
}
