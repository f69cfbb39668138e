package cache_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebastienrousseau/commons/pkg/cache"
)

func TestSynced_Basic(t *testing.T) {
	t.Run("same semantics as core", func(t *testing.T) {
		c, err := cache.NewSynced[string, int](2)
		require.NoError(t, err)

		c.Put("a", 1)
		c.Put("b", 2)

		evicted, ok := c.Put("c", 3)
		require.True(t, ok)
		assert.Equal(t, "a", evicted.Key)

		assert.True(t, c.Contains("b"))
		assert.Equal(t, 2, c.Len())
		assert.Equal(t, 2, c.Cap())
		assert.Equal(t, []string{"c", "b"}, c.Keys())

		val, ok := c.Peek("b")
		assert.True(t, ok)
		assert.Equal(t, 2, val)

		val, ok = c.Remove("b")
		assert.True(t, ok)
		assert.Equal(t, 2, val)

		c.Clear()
		assert.True(t, c.IsEmpty())
		assert.Empty(t, c.Items())
		assert.Empty(t, c.Values())
	})

	t.Run("invalid capacity", func(t *testing.T) {
		c, err := cache.NewSynced[string, int](0)
		assert.Nil(t, c)
		assert.ErrorIs(t, err, cache.ErrInvalidCapacity)
	})
}

func TestSynced_Concurrent(t *testing.T) {
	c, err := cache.NewSynced[int, int](100)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := range 100 {
		wg.Add(3)
		go func(val int) {
			defer wg.Done()
			c.Put(val, val*2)
		}(i)
		go func(key int) {
			defer wg.Done()
			c.Get(key)
		}(i)
		go func(key int) {
			defer wg.Done()
			if key%2 == 0 {
				c.Remove(key)
			} else {
				c.Keys()
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), c.Cap())
}
