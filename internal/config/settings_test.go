package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/recipe-browser/internal/mealdb"
	"github.com/handiism/recipe-browser/internal/storage"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, mealdb.DefaultBaseURL, s.APIBaseURL)
	assert.Equal(t, storage.BackendFile, s.StorageBackend)
	assert.NotEmpty(t, s.StoragePath)
	assert.Equal(t, 30*time.Second, s.RequestTimeout())
	assert.NoError(t, s.Validate())
}

func TestLoad_MissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")
	s := DefaultSettings()
	s.StorageBackend = storage.BackendRedis
	s.RedisURL = "redis://localhost:6379/0"
	s.ThumbnailWidth = 48

	require.NoError(t, s.Save(path))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"log_level":"debug"}`), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, mealdb.DefaultBaseURL, s.APIBaseURL)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{`), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("RECIPES_STORAGE_BACKEND", "s3")
	t.Setenv("RECIPES_S3_BUCKET", "favorites-bucket")
	t.Setenv("RECIPES_MAX_CONCURRENT_LOOKUPS", "3")
	t.Setenv("RECIPES_TRACE", "true")

	s := DefaultSettings()
	require.NoError(t, s.ApplyEnv())

	assert.Equal(t, storage.BackendS3, s.StorageBackend)
	assert.Equal(t, "favorites-bucket", s.S3Bucket)
	assert.Equal(t, 3, s.MaxConcurrentLookups)
	assert.True(t, s.Trace)
	assert.Equal(t, mealdb.DefaultBaseURL, s.APIBaseURL)
}

func TestApplyEnv_NothingSet(t *testing.T) {
	s := DefaultSettings()
	require.NoError(t, s.ApplyEnv())
	assert.Equal(t, DefaultSettings(), s)
}

func TestApplyEnv_BadValue(t *testing.T) {
	tests := []struct {
		env, value string
	}{
		{"RECIPES_THUMBNAIL_WIDTH", "wide"},
		{"RECIPES_MAX_CONCURRENT_LOOKUPS", "lots"},
		{"RECIPES_TRACE", "sometimes"},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)

			s := DefaultSettings()
			assert.Error(t, s.ApplyEnv())
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr string
	}{
		{"defaults", func(*Settings) {}, ""},
		{"no base url", func(s *Settings) { s.APIBaseURL = " " }, "api_base_url"},
		{"zero timeout", func(s *Settings) { s.RequestTimeoutSeconds = 0 }, "request_timeout_seconds"},
		{"zero lookups", func(s *Settings) { s.MaxConcurrentLookups = 0 }, "max_concurrent_lookups"},
		{"negative width", func(s *Settings) { s.ThumbnailWidth = -1 }, "thumbnail_width"},
		{"redis without url", func(s *Settings) { s.StorageBackend = "redis" }, "redis_url"},
		{"s3 without bucket", func(s *Settings) { s.StorageBackend = "s3" }, "s3_bucket"},
		{"file without path", func(s *Settings) { s.StoragePath = "" }, "storage_path"},
		{"unknown backend", func(s *Settings) { s.StorageBackend = "floppy" }, "storage_backend"},
		{"unknown level", func(s *Settings) { s.LogLevel = "loud" }, "log_level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(s)
			err := s.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestStorageOptions(t *testing.T) {
	s := DefaultSettings()
	s.StorageBackend = storage.BackendS3
	s.S3Bucket = "b"

	opts := s.StorageOptions()
	assert.Equal(t, storage.Options{
		Backend:  storage.BackendS3,
		Path:     s.StoragePath,
		S3Bucket: "b",
		S3Prefix: AppName,
	}, opts)
}
