package listing

import (
	"context"
	"encoding/json"
	"time"

	"github.com/opst/synthstudio/pkg/cache"
)

// Cached wraps the fetch with a cache store.
//
// Records are stored as JSON under the key for ttl.
// Broken or unreadable cache entries are ignored and overwritten.
func Cached[T any](store cache.Store, key string, ttl time.Duration, fetch Fetch[T]) Fetch[T] {
	return func(ctx context.Context) ([]T, error) {
		if b, ok, err := store.Get(ctx, key); err == nil && ok {
			ret := []T{}
			if err := json.Unmarshal(b, &ret); err == nil {
				return ret, nil
			}
		}

		records, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		if b, err := json.Marshal(records); err == nil {
			_ = store.Set(ctx, key, b, ttl)
		}
		return records, nil
	}
}

// Invalidate drops cached listings. Call it after mutations.
func Invalidate(ctx context.Context, store cache.Store, keys ...string) error {
	return store.Delete(ctx, keys...)
}
