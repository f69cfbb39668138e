package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebastienrousseau/commons/pkg/cache"
)

func TestLRU_New(t *testing.T) {
	t.Run("valid capacity", func(t *testing.T) {
		c, err := cache.New[string, int](3)
		require.NoError(t, err)
		assert.Equal(t, 3, c.Cap())
		assert.Equal(t, 0, c.Len())
		assert.True(t, c.IsEmpty())
	})

	t.Run("zero capacity", func(t *testing.T) {
		c, err := cache.New[string, int](0)
		assert.Nil(t, c)
		assert.ErrorIs(t, err, cache.ErrInvalidCapacity)
	})

	t.Run("negative capacity", func(t *testing.T) {
		c, err := cache.New[string, int](-1)
		assert.Nil(t, c)
		assert.ErrorIs(t, err, cache.ErrInvalidCapacity)
	})

	t.Run("must new panics on invalid capacity", func(t *testing.T) {
		assert.Panics(t, func() {
			cache.MustNew[string, int](0)
		})
	})
}

func TestLRU_Basic(t *testing.T) {
	t.Run("put and get", func(t *testing.T) {
		c := cache.MustNew[string, int](3)

		c.Put("a", 1)
		c.Put("b", 2)
		c.Put("c", 3)

		val, ok := c.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 1, val)

		val, ok = c.Get("b")
		assert.True(t, ok)
		assert.Equal(t, 2, val)

		val, ok = c.Get("c")
		assert.True(t, ok)
		assert.Equal(t, 3, val)

		assert.Equal(t, 3, c.Len())
		assert.False(t, c.IsEmpty())
	})

	t.Run("get non-existent", func(t *testing.T) {
		c := cache.MustNew[string, int](3)

		val, ok := c.Get("missing")
		assert.False(t, ok)
		assert.Equal(t, 0, val)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("update existing keeps length", func(t *testing.T) {
		c := cache.MustNew[string, int](3)

		c.Put("a", 1)
		_, evicted := c.Put("a", 2)
		assert.False(t, evicted)

		val, ok := c.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 2, val)

		assert.Equal(t, 1, c.Len())
	})

	t.Run("round trip returns last value", func(t *testing.T) {
		c := cache.MustNew[string, int](3)

		c.Put("a", 1)
		c.Put("a", 2)
		c.Put("a", 3)

		val, ok := c.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 3, val)
	})
}

func TestLRU_Eviction(t *testing.T) {
	t.Run("evicts least recently used", func(t *testing.T) {
		c := cache.MustNew[string, int](2)

		c.Put("a", 1)
		c.Put("b", 2)

		evicted, ok := c.Put("c", 3)
		require.True(t, ok)
		assert.Equal(t, "a", evicted.Key)
		assert.Equal(t, 1, evicted.Value)

		assert.False(t, c.Contains("a"))
		assert.True(t, c.Contains("b"))
		assert.True(t, c.Contains("c"))
		assert.Equal(t, 2, c.Len())
	})

	t.Run("get promotes against eviction", func(t *testing.T) {
		c := cache.MustNew[string, int](3)

		c.Put("a", 1)
		c.Put("b", 2)
		c.Put("c", 3)

		// Access "a" so "b" becomes least recently used
		c.Get("a")

		evicted, ok := c.Put("d", 4)
		require.True(t, ok)
		assert.Equal(t, "b", evicted.Key)

		val, ok := c.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 1, val)
	})

	t.Run("put promotes against eviction", func(t *testing.T) {
		c := cache.MustNew[string, int](3)

		c.Put("a", 1)
		c.Put("b", 2)
		c.Put("c", 3)

		// Update "a" so "b" becomes least recently used
		c.Put("a", 10)

		evicted, ok := c.Put("d", 4)
		require.True(t, ok)
		assert.Equal(t, "b", evicted.Key)

		val, ok := c.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 10, val)
	})

	t.Run("update at capacity never evicts", func(t *testing.T) {
		c := cache.MustNew[string, int](2)

		c.Put("a", 1)
		c.Put("b", 2)

		_, evicted := c.Put("a", 10)
		assert.False(t, evicted)
		assert.Equal(t, 2, c.Len())
		assert.True(t, c.Contains("b"))
	})

	t.Run("capacity of 1", func(t *testing.T) {
		c := cache.MustNew[string, int](1)

		c.Put("x", 10)

		evicted, ok := c.Put("y", 20)
		require.True(t, ok)
		assert.Equal(t, "x", evicted.Key)
		assert.Equal(t, 10, evicted.Value)

		_, ok = c.Get("x")
		assert.False(t, ok)

		val, ok := c.Get("y")
		assert.True(t, ok)
		assert.Equal(t, 20, val)
	})

	t.Run("length never exceeds capacity", func(t *testing.T) {
		c := cache.MustNew[int, int](4)

		for i := range 100 {
			c.Put(i%7, i)
			assert.LessOrEqual(t, c.Len(), c.Cap())
		}
	})
}

func TestLRU_Ordering(t *testing.T) {
	t.Run("items ordered most to least recent", func(t *testing.T) {
		c := cache.MustNew[string, int](3)

		c.Put("a", 1)
		c.Put("b", 2)
		c.Put("c", 3)

		assert.Equal(t, []string{"c", "b", "a"}, c.Keys())

		// Get moves "a" to the front
		c.Get("a")
		assert.Equal(t, []string{"a", "c", "b"}, c.Keys())
		assert.Equal(t, []int{1, 3, 2}, c.Values())

		items := c.Items()
		assert.Equal(t, []cache.Entry[string, int]{
			{Key: "a", Value: 1},
			{Key: "c", Value: 3},
			{Key: "b", Value: 2},
		}, items)
	})

	t.Run("snapshot detached from cache", func(t *testing.T) {
		c := cache.MustNew[string, int](3)

		c.Put("a", 1)
		c.Put("b", 2)

		items := c.Items()
		c.Put("c", 3)
		c.Remove("a")

		assert.Equal(t, []cache.Entry[string, int]{
			{Key: "b", Value: 2},
			{Key: "a", Value: 1},
		}, items)
	})

	t.Run("peek and contains do not promote", func(t *testing.T) {
		c := cache.MustNew[string, int](3)

		c.Put("a", 1)
		c.Put("b", 2)
		c.Put("c", 3)

		val, ok := c.Peek("a")
		assert.True(t, ok)
		assert.Equal(t, 1, val)
		assert.True(t, c.Contains("a"))
		assert.Equal(t, []string{"c", "b", "a"}, c.Keys())

		// "a" is still the eviction candidate
		evicted, ok := c.Put("d", 4)
		require.True(t, ok)
		assert.Equal(t, "a", evicted.Key)
	})

	t.Run("snapshots do not promote", func(t *testing.T) {
		c := cache.MustNew[string, int](2)

		c.Put("a", 1)
		c.Put("b", 2)

		c.Keys()
		c.Values()
		c.Items()

		evicted, ok := c.Put("c", 3)
		require.True(t, ok)
		assert.Equal(t, "a", evicted.Key)
	})
}

func TestLRU_Remove(t *testing.T) {
	t.Run("remove existing", func(t *testing.T) {
		c := cache.MustNew[string, int](3)

		c.Put("a", 1)
		c.Put("b", 2)
		c.Put("c", 3)

		val, ok := c.Remove("b")
		assert.True(t, ok)
		assert.Equal(t, 2, val)
		assert.Equal(t, 2, c.Len())

		_, ok = c.Get("b")
		assert.False(t, ok)

		// Order of the remaining entries is untouched
		assert.Equal(t, []string{"c", "a"}, c.Keys())
	})

	t.Run("remove non-existent", func(t *testing.T) {
		c := cache.MustNew[string, int](3)

		val, ok := c.Remove("missing")
		assert.False(t, ok)
		assert.Equal(t, 0, val)
	})

	t.Run("remove then reinsert is a fresh insert", func(t *testing.T) {
		c := cache.MustNew[string, int](3)

		c.Put("a", 1)
		c.Put("b", 2)
		c.Put("c", 3)

		c.Remove("c")
		c.Put("c", 30)

		// "c" sits at the most recently used position, not its old slot
		assert.Equal(t, []string{"c", "b", "a"}, c.Keys())
		assert.Equal(t, 3, c.Len())

		val, ok := c.Get("c")
		assert.True(t, ok)
		assert.Equal(t, 30, val)
	})
}

func TestLRU_Clear(t *testing.T) {
	c := cache.MustNew[string, int](3)

	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)

	c.Clear()

	assert.Equal(t, 0, c.Len())
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 3, c.Cap())

	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("c")
	assert.False(t, ok)

	// Cache stays usable after Clear
	c.Put("d", 4)
	val, ok := c.Get("d")
	assert.True(t, ok)
	assert.Equal(t, 4, val)
}

func TestLRU_EvictCallback(t *testing.T) {
	t.Run("fires on eviction and clear", func(t *testing.T) {
		evicted := make(map[string]int)
		c := cache.MustNew(2, cache.WithEvictCallback(func(key string, value int) {
			evicted[key] = value
		}))

		c.Put("a", 1)
		c.Put("b", 2)

		c.Put("c", 3)
		assert.Equal(t, 1, evicted["a"], "a should have been evicted with value 1")

		c.Put("d", 4)
		assert.Equal(t, 2, evicted["b"], "b should have been evicted with value 2")

		c.Clear()
		assert.Equal(t, 3, evicted["c"])
		assert.Equal(t, 4, evicted["d"])
	})

	t.Run("does not fire on remove", func(t *testing.T) {
		var calls int
		c := cache.MustNew(2, cache.WithEvictCallback(func(string, int) {
			calls++
		}))

		c.Put("a", 1)
		c.Remove("a")

		assert.Equal(t, 0, calls)
	})
}

func BenchmarkLRU_Put(b *testing.B) {
	c := cache.MustNew[int, int](1000)

	b.ResetTimer()
	for i := range b.N {
		c.Put(i%2000, i)
	}
}

func BenchmarkLRU_Get(b *testing.B) {
	c := cache.MustNew[int, int](1000)
	for i := range 1000 {
		c.Put(i, i)
	}

	b.ResetTimer()
	for i := range b.N {
		c.Get(i % 1000)
	}
}

func BenchmarkLRU_Mixed(b *testing.B) {
	c := cache.MustNew[int, int](1000)

	b.ResetTimer()
	for i := range b.N {
		if i%2 == 0 {
			c.Put(i%2000, i)
		} else {
			c.Get(i % 2000)
		}
	}
}
