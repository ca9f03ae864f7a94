package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slotContract checks the behaviour every backend shares.
func slotContract(t *testing.T, slot Slot) {
	t.Helper()
	ctx := context.Background()

	_, err := slot.Load(ctx, "favorites")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, slot.Store(ctx, "favorites", []byte(`[{"id":"1"}]`)))
	data, err := slot.Load(ctx, "favorites")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(data))

	require.NoError(t, slot.Store(ctx, "favorites", []byte(`[]`)))
	data, err = slot.Load(ctx, "favorites")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))
}

func TestFileSlot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")
	slot, err := NewFileSlot(dir)
	require.NoError(t, err)

	slotContract(t, slot)

	info, err := os.Stat(slot.Path("favorites"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestFileSlot_RequiresDir(t *testing.T) {
	_, err := NewFileSlot("  ")
	assert.Error(t, err)
}

func TestMemorySlot(t *testing.T) {
	slot := NewMemorySlot()
	slotContract(t, slot)

	boom := errors.New("disk full")
	slot.FailWith(boom)
	assert.ErrorIs(t, slot.Store(context.Background(), "favorites", nil), boom)
	_, err := slot.Load(context.Background(), "favorites")
	assert.ErrorIs(t, err, boom)
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"favorites", "favorites"},
		{"file:with:colons", "file_with_colons"},
		{"file/with\\slashes", "file_with_slashes"},
		{"trailing dots...", "trailing dots"},
		{"multiple   spaces", "multiple spaces"},
		{"trailing spaces   ", "trailing spaces"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFileName(tt.input))
		})
	}
}

type fakeRedis struct {
	mu   sync.Mutex
	data map[string]string
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

func TestRedisSlot(t *testing.T) {
	fake := &fakeRedis{data: make(map[string]string)}
	slotContract(t, NewRedisSlot(fake))

	_, ok := fake.data[KeyPrefix+"favorites"]
	assert.True(t, ok, "keys are stored under the prefix")
}

func TestNewRedisSlotFromURL_Invalid(t *testing.T) {
	_, err := NewRedisSlotFromURL(context.Background(), "")
	assert.Error(t, err)

	_, err = NewRedisSlotFromURL(context.Background(), "http://not-redis")
	assert.Error(t, err)
}

type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (f *fakeS3) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.objects[aws.ToString(params.Bucket)+"/"+aws.ToString(params.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[aws.ToString(params.Bucket)+"/"+aws.ToString(params.Key)] = data
	return &s3.PutObjectOutput{}, nil
}

func TestS3Slot(t *testing.T) {
	fake := &fakeS3{objects: make(map[string][]byte)}
	slotContract(t, NewS3Slot(fake, "bucket", "users/me"))

	_, ok := fake.objects["bucket/users/me/favorites.json"]
	assert.True(t, ok)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	slot, err := Open(ctx, Options{Path: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &FileSlot{}, slot)

	slot, err = Open(ctx, Options{Backend: BackendMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemorySlot{}, slot)

	_, err = Open(ctx, Options{Backend: "floppy"})
	assert.Error(t, err)

	_, err = Open(ctx, Options{Backend: BackendS3})
	assert.Error(t, err, "bucket is required")
}

type closingRedis struct {
	fakeRedis
	closed bool
}

func (c *closingRedis) Close() error {
	c.closed = true
	return nil
}

func TestRedisSlot_Close(t *testing.T) {
	client := &closingRedis{fakeRedis: fakeRedis{data: make(map[string]string)}}
	slot := NewRedisSlot(client)

	var closer io.Closer = slot
	require.NoError(t, closer.Close())
	assert.True(t, client.closed)

	assert.NoError(t, NewRedisSlot(&fakeRedis{data: make(map[string]string)}).Close())
}
