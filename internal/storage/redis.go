package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/redis/go-redis/v9"
)

// KeyPrefix namespaces keys in a shared Redis database. S3Slot uses its
// configured object prefix instead.
const KeyPrefix = "recipe-browser:"

// redisClient is the subset of *redis.Client a RedisSlot needs.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RedisSlot stores each key as a Redis string under KeyPrefix.
type RedisSlot struct {
	client redisClient
}

// NewRedisSlot wraps an existing Redis client.
func NewRedisSlot(client redisClient) *RedisSlot {
	return &RedisSlot{client: client}
}

// NewRedisSlotFromURL connects to the Redis server at rawURL
// (e.g. "redis://localhost:6379/0") and checks the connection.
func NewRedisSlotFromURL(ctx context.Context, rawURL string) (*RedisSlot, error) {
	if rawURL == "" {
		return nil, errors.New("redis storage requires a URL")
	}
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisSlot(client), nil
}

// Close releases the connection pool when the slot owns a closable client.
func (s *RedisSlot) Close() error {
	if c, ok := s.client.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (s *RedisSlot) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, KeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *RedisSlot) Store(ctx context.Context, key string, data []byte) error {
	return s.client.Set(ctx, KeyPrefix+key, data, 0).Err()
}
