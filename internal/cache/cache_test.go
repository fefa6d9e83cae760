package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestCache returns a cache with a controllable clock.
func newTestCache(start time.Time, defaultTTL time.Duration) (*Cache, *time.Time) {
	now := start
	c := New(defaultTTL)
	c.now = func() time.Time { return now }
	return c, &now
}

func TestCacheGetSet(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("stores and retrieves values", func(t *testing.T) {
		c, _ := newTestCache(base, MediumTTL)
		c.Set("insights:user-1:bundle", "value")

		got, ok := c.Get("insights:user-1:bundle")
		require.True(t, ok)
		assert.Equal(t, "value", got)
	})

	t.Run("missing key", func(t *testing.T) {
		c, _ := newTestCache(base, MediumTTL)
		_, ok := c.Get("absent")
		assert.False(t, ok)
	})

	t.Run("expired entries are unreadable and removed", func(t *testing.T) {
		c, now := newTestCache(base, MediumTTL)
		c.SetTTL("k", "v", time.Minute)

		*now = base.Add(time.Minute + time.Second)
		_, ok := c.Get("k")
		assert.False(t, ok)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("zero ttl entry is never readable", func(t *testing.T) {
		c, _ := newTestCache(base, MediumTTL)
		c.SetTTL("k", "v", 0)
		_, ok := c.Get("k")
		assert.False(t, ok)
	})

	t.Run("set uses the instance default ttl", func(t *testing.T) {
		c, now := newTestCache(base, ShortTTL)
		c.Set("k", "v")

		*now = base.Add(ShortTTL - time.Second)
		_, ok := c.Get("k")
		assert.True(t, ok)

		*now = base.Add(ShortTTL + time.Second)
		_, ok = c.Get("k")
		assert.False(t, ok)
	})

	t.Run("set overwrites an existing entry", func(t *testing.T) {
		c, _ := newTestCache(base, MediumTTL)
		c.Set("k", "old")
		c.Set("k", "new")

		got, ok := c.Get("k")
		require.True(t, ok)
		assert.Equal(t, "new", got)
	})
}

func TestCacheRemoveClear(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("remove deletes a single entry", func(t *testing.T) {
		c, _ := newTestCache(base, MediumTTL)
		c.Set("a", 1)
		c.Set("b", 2)

		c.Remove("a")
		_, ok := c.Get("a")
		assert.False(t, ok)
		_, ok = c.Get("b")
		assert.True(t, ok)
	})

	t.Run("remove of absent key is a no-op", func(t *testing.T) {
		c, _ := newTestCache(base, MediumTTL)
		c.Remove("absent")
		assert.Equal(t, 0, c.Len())
	})

	t.Run("clear empties everything", func(t *testing.T) {
		c, _ := newTestCache(base, MediumTTL)
		c.Set("a", 1)
		c.Set("b", 2)

		c.Clear()
		assert.Equal(t, 0, c.Len())
	})
}

func TestCacheClearByPrefix(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("removes only matching keys", func(t *testing.T) {
		c, _ := newTestCache(base, MediumTTL)
		c.Set("insights:user-1:bundle", 1)
		c.Set("insights:user-1:mood", 2)
		c.Set("insights:user-2:bundle", 3)

		removed := c.ClearByPrefix("insights:user-1")
		assert.Equal(t, 2, removed)
		_, ok := c.Get("insights:user-2:bundle")
		assert.True(t, ok)
	})

	t.Run("unknown prefix is a no-op", func(t *testing.T) {
		c, _ := newTestCache(base, MediumTTL)
		c.Set("insights:user-1:bundle", 1)

		assert.Equal(t, 0, c.ClearByPrefix("insights:user-9"))
		assert.Equal(t, 1, c.Len())
	})

	t.Run("is idempotent", func(t *testing.T) {
		c, _ := newTestCache(base, MediumTTL)
		c.Set("insights:user-1:bundle", 1)

		assert.Equal(t, 1, c.ClearByPrefix("insights:user-1"))
		assert.Equal(t, 0, c.ClearByPrefix("insights:user-1"))
	})
}

func TestWithCache(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("computes once and serves from cache", func(t *testing.T) {
		c, _ := newTestCache(base, MediumTTL)
		calls := 0
		fn := func(ctx context.Context) (string, error) {
			calls++
			return "computed", nil
		}

		for i := 0; i < 3; i++ {
			got, err := WithCache(ctx, c, "k", false, fn)
			require.NoError(t, err)
			assert.Equal(t, "computed", got)
		}
		assert.Equal(t, 1, calls)
	})

	t.Run("force refresh recomputes and repopulates", func(t *testing.T) {
		c, _ := newTestCache(base, MediumTTL)
		calls := 0
		fn := func(ctx context.Context) (int, error) {
			calls++
			return calls, nil
		}

		first, err := WithCache(ctx, c, "k", false, fn)
		require.NoError(t, err)
		assert.Equal(t, 1, first)

		second, err := WithCache(ctx, c, "k", true, fn)
		require.NoError(t, err)
		assert.Equal(t, 2, second)

		// The refreshed value is now the cached one.
		third, err := WithCache(ctx, c, "k", false, fn)
		require.NoError(t, err)
		assert.Equal(t, 2, third)
	})

	t.Run("errors are not cached", func(t *testing.T) {
		c, _ := newTestCache(base, MediumTTL)
		calls := 0
		fn := func(ctx context.Context) (string, error) {
			calls++
			if calls == 1 {
				return "", assert.AnError
			}
			return "ok", nil
		}

		_, err := WithCache(ctx, c, "k", false, fn)
		require.Error(t, err)

		got, err := WithCache(ctx, c, "k", false, fn)
		require.NoError(t, err)
		assert.Equal(t, "ok", got)
		assert.Equal(t, 2, calls)
	})

	t.Run("recomputes after expiry", func(t *testing.T) {
		c, now := newTestCache(base, time.Minute)
		calls := 0
		fn := func(ctx context.Context) (int, error) {
			calls++
			return calls, nil
		}

		_, err := WithCache(ctx, c, "k", false, fn)
		require.NoError(t, err)

		*now = base.Add(2 * time.Minute)
		got, err := WithCache(ctx, c, "k", false, fn)
		require.NoError(t, err)
		assert.Equal(t, 2, got)
	})
}
