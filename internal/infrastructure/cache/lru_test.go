package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRU_GetSet(t *testing.T) {
	c := NewLRU[string, []byte](3)

	c.Set("1", []byte{1})
	c.Set("2", []byte{2})

	v, ok := c.Get("1")
	require.True(t, ok)
	assert.Equal(t, []byte{1}, v)

	_, ok = c.Get("3")
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRU[string, int](2)

	c.Set("a", 1)
	c.Set("b", 2)
	// Touch a so b becomes the oldest.
	_, _ = c.Get("a")
	c.Set("c", 3)

	_, ok := c.Get("b")
	assert.False(t, ok, "b should have been evicted")
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestLRU_UpdateKeepsSize(t *testing.T) {
	c := NewLRU[string, int](2)

	c.Set("a", 1)
	c.Set("a", 10)

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 10, v)
	assert.Equal(t, 1, c.Len())
}

func TestLRU_NonPositiveCapacity(t *testing.T) {
	c := NewLRU[int, int](0)

	c.Set(1, 1)
	c.Set(2, 2)
	assert.Equal(t, 1, c.Len())
	_, ok := c.Get(2)
	assert.True(t, ok)
}

func TestLRU_Concurrent(t *testing.T) {
	c := NewLRU[string, int](16)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("%d", (n+j)%32)
				c.Set(key, j)
				_, _ = c.Get(key)
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 16)
}
