package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"

	"github.com/handiism/recipe-browser/internal/mealdb"
	"github.com/handiism/recipe-browser/internal/storage"
	"github.com/handiism/recipe-browser/internal/thumbnail"
)

// AppName names the per-user config and data directories.
const AppName = "recipe-browser"

// Settings holds all configuration options.
type Settings struct {
	// Catalog
	APIBaseURL            string `json:"api_base_url" env:"RECIPES_API_BASE_URL"`
	UserAgent             string `json:"user_agent" env:"RECIPES_USER_AGENT"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds" env:"RECIPES_REQUEST_TIMEOUT_SECONDS"`
	MaxConcurrentLookups  int    `json:"max_concurrent_lookups" env:"RECIPES_MAX_CONCURRENT_LOOKUPS"`

	// Favorites storage
	StorageBackend string `json:"storage_backend" env:"RECIPES_STORAGE_BACKEND"` // file, redis, s3
	StoragePath    string `json:"storage_path" env:"RECIPES_STORAGE_PATH"`
	RedisURL       string `json:"redis_url" env:"RECIPES_REDIS_URL"`
	S3Bucket       string `json:"s3_bucket" env:"RECIPES_S3_BUCKET"`
	S3Prefix       string `json:"s3_prefix" env:"RECIPES_S3_PREFIX"`

	// Logging
	LogFile  string `json:"log_file" env:"RECIPES_LOG_FILE"`
	LogLevel string `json:"log_level" env:"RECIPES_LOG_LEVEL"` // debug, info, warn, error
	Trace    bool   `json:"trace" env:"RECIPES_TRACE"`

	// Display
	ShowThumbnails bool `json:"show_thumbnails" env:"RECIPES_SHOW_THUMBNAILS"`
	ThumbnailWidth int  `json:"thumbnail_width" env:"RECIPES_THUMBNAIL_WIDTH"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	dataDir := userDir(os.UserConfigDir)
	return &Settings{
		APIBaseURL:            mealdb.DefaultBaseURL,
		UserAgent:             AppName,
		RequestTimeoutSeconds: 30,
		MaxConcurrentLookups:  mealdb.DefaultMaxConcurrentLookups,

		StorageBackend: storage.BackendFile,
		StoragePath:    filepath.Join(dataDir, "data"),
		S3Prefix:       AppName,

		LogFile:  filepath.Join(dataDir, AppName+".log"),
		LogLevel: "info",

		ShowThumbnails: true,
		ThumbnailWidth: thumbnail.DefaultWidth,
	}
}

// DefaultPath returns the settings file location in the user's config dir.
func DefaultPath() string {
	return filepath.Join(userDir(os.UserConfigDir), "settings.json")
}

func userDir(base func() (string, error)) string {
	dir, err := base()
	if err != nil {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "."+AppName)
	}
	return filepath.Join(dir, AppName)
}

// Load reads settings from a JSON file. A missing file yields defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides fields from RECIPES_* environment variables. Unset
// variables leave their fields untouched; a value that does not parse is
// an error.
func (s *Settings) ApplyEnv() error {
	err := envdecode.StrictDecode(s)
	if errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil
	}
	return err
}

// Validate reports the first invalid field.
func (s *Settings) Validate() error {
	switch {
	case strings.TrimSpace(s.APIBaseURL) == "":
		return errors.New("api_base_url is required")
	case s.RequestTimeoutSeconds <= 0:
		return fmt.Errorf("request_timeout_seconds must be positive, got %d", s.RequestTimeoutSeconds)
	case s.MaxConcurrentLookups <= 0:
		return fmt.Errorf("max_concurrent_lookups must be positive, got %d", s.MaxConcurrentLookups)
	case s.ThumbnailWidth < 0:
		return fmt.Errorf("thumbnail_width must not be negative, got %d", s.ThumbnailWidth)
	}

	switch s.StorageBackend {
	case "", storage.BackendFile:
		if strings.TrimSpace(s.StoragePath) == "" {
			return errors.New("storage_path is required for the file backend")
		}
	case storage.BackendRedis:
		if s.RedisURL == "" {
			return errors.New("redis_url is required for the redis backend")
		}
	case storage.BackendS3:
		if s.S3Bucket == "" {
			return errors.New("s3_bucket is required for the s3 backend")
		}
	case storage.BackendMemory:
	default:
		return fmt.Errorf("unknown storage_backend %q", s.StorageBackend)
	}

	switch strings.ToLower(s.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log_level %q", s.LogLevel)
	}
	return nil
}

// RequestTimeout returns the HTTP timeout as a duration.
func (s *Settings) RequestTimeout() time.Duration {
	return time.Duration(s.RequestTimeoutSeconds) * time.Second
}

// StorageOptions converts settings to the options storage.Open takes.
func (s *Settings) StorageOptions() storage.Options {
	return storage.Options{
		Backend:  s.StorageBackend,
		Path:     s.StoragePath,
		RedisURL: s.RedisURL,
		S3Bucket: s.S3Bucket,
		S3Prefix: s.S3Prefix,
	}
}
