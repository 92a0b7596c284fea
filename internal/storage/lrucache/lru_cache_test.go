package lrucache

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// get looks up a single key the way storage does, through BatchGet
func get(cache *LRUCache[string, int], key string) (int, bool) {
	values, _ := cache.BatchGet([]string{key})
	if len(values) == 0 {
		return 0, false
	}
	return values[0], true
}

func TestNew(t *testing.T) {
	cache := New[string, int](context.Background(), 5, 5)
	assert.Equal(t, 5, cache.capacity)
	assert.Empty(t, cache.GetValues())
}

func TestLRUCache_SetAndGet(t *testing.T) {
	testCases := []struct {
		name          string
		key           string
		value         int
		priority      int
		updatedValue  int
		updatedPrio   int
		update        bool
		expectedValue int
	}{
		{
			name:          "Simple Set and Get",
			key:           "a",
			value:         1,
			priority:      10,
			expectedValue: 1,
		},
		{
			name:          "Update existing Key",
			key:           "b",
			value:         1,
			priority:      10,
			update:        true,
			updatedValue:  2,
			updatedPrio:   20,
			expectedValue: 2,
		},
	}

	cache := New[string, int](context.Background(), 5, 5)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cache.Set(tc.key, tc.value, tc.priority)
			if tc.update {
				cache.Set(tc.key, tc.updatedValue, tc.updatedPrio)
			}
			val, ok := get(cache, tc.key)
			require.True(t, ok)
			assert.Equal(t, tc.expectedValue, val)
		})
	}
	assert.Equal(t, 2, len(cache.GetValues()))
	assert.Equal(t, 20, cache.maxPriority)
}

func TestLRUCache_PriorityChange(t *testing.T) {
	cache := New[string, int](context.Background(), 5, 5)
	cache.Set("a", 1, 10)
	cache.Set("b", 2, 3)
	cache.Set("a", 1, 2)

	assert.Equal(t, 3, cache.maxPriority)
	assert.Len(t, cache.GetValues(), 2)
}

func TestLRUCache_BatchGet(t *testing.T) {
	cache := New[string, int](context.Background(), 5, 5)
	cache.Set("a", 1, 10)
	cache.Set("b", 2, 20)

	values, notFound := cache.BatchGet([]string{"a", "c"})
	assert.Equal(t, []int{1}, values)
	assert.Equal(t, []string{"c"}, notFound)
}

func TestLRUCache_Eviction(t *testing.T) {
	cache := New[string, int](context.Background(), 2, 5)
	cache.Set("a", 1, 10)
	cache.Set("b", 2, 20)
	// "b" holds the highest priority value, so it goes first.
	cache.Set("c", 3, 20)

	_, ok := get(cache, "b")
	assert.False(t, ok, "expected b to be evicted")

	val, ok := get(cache, "a")
	assert.True(t, ok)
	assert.Equal(t, 1, val)

	val, ok = get(cache, "c")
	assert.True(t, ok)
	assert.Equal(t, 3, val)
}

func TestLRUCache_EvictionLeastRecentWithinPriority(t *testing.T) {
	cache := New[string, int](context.Background(), 2, 5)
	cache.Set("a", 1, 1)
	cache.Set("b", 2, 1)
	get(cache, "a")
	cache.Set("c", 3, 1)

	_, ok := get(cache, "b")
	assert.False(t, ok)
	assert.Equal(t, 2, len(cache.GetValues()))
}

func TestLRUCache_NegativePriorities(t *testing.T) {
	cache := New[string, int](context.Background(), 2, 5)
	cache.Set("a", 1, -5)
	cache.Set("b", 2, -1)
	cache.Set("c", 3, -5)

	_, ok := get(cache, "b")
	assert.False(t, ok)
}

func TestLRUCache_GetValuesOrder(t *testing.T) {
	cache := New[string, int](context.Background(), 3, 5)
	cache.Set("a", 1, 0)
	cache.Set("b", 2, 0)
	cache.Set("c", 3, 0)
	get(cache, "a")

	assert.Equal(t, []int{1, 3, 2}, cache.GetValues())
}

func TestLRUCache_Update(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cache := New[string, int](ctx, 5, 1)
	cache.Update([]CacheItem[string, int]{
		{Key: "a", Value: 1, Priority: 1},
		{Key: "b", Value: 2, Priority: 1},
		{Key: "c", Value: 3, Priority: 1},
	})

	require.Eventually(t, func() bool { return len(cache.GetValues()) == 3 }, time.Second, 5*time.Millisecond)
	val, ok := get(cache, "c")
	assert.True(t, ok)
	assert.Equal(t, 3, val)
}

func TestLRUCache_UpdateAfterCancel(t *testing.T) {
	baseline := runtime.NumGoroutine()

	ctx, cancel := context.WithCancel(context.Background())
	cache := New[string, int](ctx, 5, 0)
	cancel()

	cache.Update([]CacheItem[string, int]{
		{Key: "a", Value: 1, Priority: 1},
		{Key: "b", Value: 2, Priority: 1},
	})

	require.Eventually(t, func() bool { return runtime.NumGoroutine() <= baseline }, time.Second, 5*time.Millisecond)
}
