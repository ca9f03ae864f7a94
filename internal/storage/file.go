package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	invalidChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots = regexp.MustCompile(`\.+$`)
	runsOfSpaces = regexp.MustCompile(`\s+`)
)

// FileSlot stores each key as <dir>/<key>.json.
//
// Writes go to a temporary file in the same directory that is then renamed
// over the target, so a crash mid-write never leaves a truncated blob.
//
// Example:
//
//	slot, _ := NewFileSlot("~/.local/share/recipe-browser")
//	err := slot.Store(ctx, "favorites", []byte("[]"))
type FileSlot struct {
	dir string
}

// NewFileSlot creates a FileSlot rooted at dir. The directory is created
// lazily on the first Store.
func NewFileSlot(dir string) (*FileSlot, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("file storage requires a directory")
	}
	return &FileSlot{dir: dir}, nil
}

// Path returns the file that holds key.
func (s *FileSlot) Path(key string) string {
	return filepath.Join(s.dir, SanitizeFileName(key)+".json")
}

func (s *FileSlot) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.Path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	return data, err
}

func (s *FileSlot) Store(ctx context.Context, key string, data []byte) error {
	if err := EnsureDir(s.dir); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, "."+SanitizeFileName(key)+"-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, s.Path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", key, err)
	}
	return nil
}

// SanitizeFileName removes or replaces characters that are invalid in file names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars 0x00-0x1f) → underscore
//   - Trailing dots → removed (Windows limitation)
//   - Multiple whitespace → single space
//   - Trailing whitespace → removed
//
// Example:
//
//	SanitizeFileName("favorites/v1") // Returns "favorites_v1"
func SanitizeFileName(name string) string {
	name = invalidChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = runsOfSpaces.ReplaceAllString(name, " ")
	return strings.TrimRight(name, " ")
}

// EnsureDir creates a directory and all parent directories if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
