package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient is the part of *redis.Client used by the redis store.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Close() error
}

type redisStore struct {
	client RedisClient
	prefix string
}

// NewRedis returns a Store backed by redis. Keys are prefixed with prefix.
func NewRedis(client RedisClient, prefix string) Store {
	return &redisStore{client: client, prefix: prefix}
}

// FromUrl connects to redis at the url, like "redis://localhost:6379/0".
func FromUrl(url string, prefix string) (Store, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidUrl, err)
	}
	return NewRedis(redis.NewClient(opts), prefix), nil
}

func (r *redisStore) key(k string) string {
	if r.prefix == "" {
		return k
	}
	return r.prefix + ":" + k
}

func (r *redisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (r *redisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	return r.client.Set(ctx, r.key(key), value, ttl).Err()
}

func (r *redisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	ks := make([]string, 0, len(keys))
	for _, k := range keys {
		ks = append(ks, r.key(k))
	}
	return r.client.Del(ctx, ks...).Err()
}

func (r *redisStore) Close() error {
	return r.client.Close()
}
