// Package config provides configuration management for recipe-browser.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Overrides from RECIPES_* environment variables
//   - Conversion to storage.Options for the favorites backend
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Catalog at https://www.themealdb.com/api/json/v1/1
//	// Favorites stored as JSON under the user config dir
//	// Logs written to recipe-browser.log next to them
//
// # Loading from File
//
//	settings, err := config.Load(config.DefaultPath())
//	if err != nil {
//	    // The file exists but is not valid JSON
//	}
//	if err := settings.ApplyEnv(); err != nil {
//	    // A RECIPES_* variable failed to parse
//	}
//
// Precedence, lowest first: defaults, settings file, environment, command
// line flags. Flags are applied by the commands themselves.
//
// # Environment
//
//	RECIPES_API_BASE_URL             catalog base URL
//	RECIPES_STORAGE_BACKEND          file, redis or s3
//	RECIPES_STORAGE_PATH             directory of the file backend
//	RECIPES_REDIS_URL                redis://host:port/db
//	RECIPES_S3_BUCKET                bucket of the s3 backend
//	RECIPES_LOG_LEVEL                debug, info, warn or error
//	RECIPES_TRACE                    true to log trace events
//
// Every Settings field has a matching variable; see the env struct tags.
package config
