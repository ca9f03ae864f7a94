// Package storage provides the local persistent key-value slots the
// application keeps its state in.
//
// A Slot maps a short key to an opaque blob. Three backends exist:
//
//   - FileSlot stores one file per key in a directory (the default)
//   - RedisSlot stores one string per key in Redis
//   - S3Slot stores one object per key in a bucket
//
// MemorySlot is an in-process implementation for tests.
package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrNotFound is returned by Load when the key has never been written.
var ErrNotFound = errors.New("storage: key not found")

// Slot is a key-value store of whole blobs.
type Slot interface {
	// Load returns the blob stored under key, or ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)
	// Store replaces the blob stored under key.
	Store(ctx context.Context, key string, data []byte) error
}

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendS3     = "s3"
	BackendMemory = "memory"
)

// Options selects and configures a backend for Open.
type Options struct {
	Backend  string
	Path     string
	RedisURL string
	S3Bucket string
	S3Prefix string
}

// Open builds the Slot described by opts.
func Open(ctx context.Context, opts Options) (Slot, error) {
	switch opts.Backend {
	case "", BackendFile:
		return NewFileSlot(opts.Path)
	case BackendRedis:
		return NewRedisSlotFromURL(ctx, opts.RedisURL)
	case BackendS3:
		return NewS3SlotFromEnv(ctx, opts.S3Bucket, opts.S3Prefix)
	case BackendMemory:
		return NewMemorySlot(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", opts.Backend)
	}
}

// MemorySlot is a Slot held in memory.
type MemorySlot struct {
	mu   sync.RWMutex
	data map[string][]byte
	err  error
}

// NewMemorySlot creates an empty MemorySlot.
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{data: make(map[string][]byte)}
}

// FailWith makes every subsequent call return err. Pass nil to recover.
func (m *MemorySlot) FailWith(err error) {
	m.mu.Lock()
	m.err = err
	m.mu.Unlock()
}

func (m *MemorySlot) Load(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	data, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

func (m *MemorySlot) Store(ctx context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.data[key] = append([]byte(nil), data...)
	return nil
}
