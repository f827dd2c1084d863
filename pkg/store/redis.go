package store

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/flowcanvas/flowcanvas/pkg/errors"
)

// defaultRedisKey is used when no key is configured.
const defaultRedisKey = "flowcanvas:snapshot"

// RedisStore keeps the snapshot blob under a single Redis key.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore connects to addr (host:port) and stores the blob under key.
func NewRedisStore(addr, key string) (*RedisStore, error) {
	if addr == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "redis address must not be empty")
	}
	if key == "" {
		key = defaultRedisKey
	}
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		key:    key,
	}, nil
}

// Load fetches the blob; a missing key is a clean "nothing saved".
func (s *RedisStore) Load(ctx context.Context) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeStore, err, "redis get %s", s.key)
	}
	return data, true, nil
}

// Save replaces the blob. Snapshots do not expire.
func (s *RedisStore) Save(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "redis set %s", s.key)
	}
	return nil
}

// Close releases the client connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Ensure RedisStore implements Store.
var _ Store = (*RedisStore)(nil)
