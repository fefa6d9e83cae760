package cache

import (
	"context"
)

// WithCache returns the cached value under key when present, otherwise calls
// fn and stores its result with the cache's default TTL. forceRefresh
// bypasses the read so callers can recompute on demand while still
// repopulating the cache. Errors from fn are returned without caching
// anything.
func WithCache[T any](
	ctx context.Context,
	c *Cache,
	key string,
	forceRefresh bool,
	fn func(ctx context.Context) (T, error),
) (T, error) {
	if !forceRefresh {
		if cached, ok := c.Get(key); ok {
			if value, ok := cached.(T); ok {
				return value, nil
			}
		}
	}

	value, err := fn(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	c.Set(key, value)
	return value, nil
}
