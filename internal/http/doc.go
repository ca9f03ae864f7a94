// Package http provides an HTTP client configured for catalog API requests.
//
// The Client in this package handles:
//   - User-Agent headers
//   - Timeout handling
//   - JSON response decoding
//   - Small binary downloads such as thumbnails
//
// # Basic Usage
//
//	client := http.NewClient(http.WithTimeout(10 * time.Second))
//
//	// Decode a JSON endpoint
//	var resp struct{ Meals []json.RawMessage `json:"meals"` }
//	err := client.GetJSON(ctx, "https://www.themealdb.com/api/json/v1/1/search.php?s=", &resp)
//
//	// Download an image
//	data, err := client.DownloadBytes(ctx, thumbnailURL)
//
// Non-200 responses are returned as *StatusError so callers can tell a
// server refusal apart from a transport failure.
package http
