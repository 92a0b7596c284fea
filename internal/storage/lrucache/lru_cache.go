package lrucache

import (
	"container/list"
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

type CacheItem[K comparable, V any] struct {
	Key      K
	Value    V
	Priority int
}

/*
LRUCache keeps items in recency order. On overflow it evicts the least
recently used item among those with the highest priority value, so a
location with priority 1 outlives one with priority 5.
*/
type LRUCache[K comparable, V any] struct {
	capacity      int
	items         map[K]*list.Element
	order         *list.List
	priorityCount map[int]int
	maxPriority   int
	mu            sync.Mutex
	saveChan      chan CacheItem[K, V]
	ctx           context.Context
}

func New[K comparable, V any](ctx context.Context, capacity int, chanSize int) *LRUCache[K, V] {
	cache := &LRUCache[K, V]{
		capacity:      capacity,
		items:         make(map[K]*list.Element, capacity),
		order:         list.New(),
		priorityCount: make(map[int]int),
		saveChan:      make(chan CacheItem[K, V], chanSize),
		ctx:           ctx,
	}

	go cache.runUpdater(ctx)
	return cache
}

// BatchGet returns values found for keys and the keys that were missing
func (c *LRUCache[K, V]) BatchGet(keys []K) ([]V, []K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]V, 0, len(keys))
	notFound := make([]K, 0)
	for _, key := range keys {
		if elem, ok := c.items[key]; ok {
			c.order.MoveToFront(elem)
			result = append(result, elem.Value.(*CacheItem[K, V]).Value)
			continue
		}
		notFound = append(notFound, key)
	}
	log.Debug().Int("hit", len(result)).Int("miss", len(notFound)).Msg("lru cache lookup")
	return result, notFound
}

// GetValues snapshot of all values, most recent first
func (c *LRUCache[K, V]) GetValues() []V {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]V, 0, c.order.Len())
	for e := c.order.Front(); e != nil; e = e.Next() {
		result = append(result, e.Value.(*CacheItem[K, V]).Value)
	}
	return result
}

// Update queues items for the background saver
func (c *LRUCache[K, V]) Update(rows []CacheItem[K, V]) {
	for i := range rows {
		select {
		case c.saveChan <- rows[i]:
		default:
			go func(r CacheItem[K, V]) {
				select {
				case c.saveChan <- r:
				case <-c.ctx.Done():
				}
			}(rows[i])
		}
	}
}

// Set stores value synchronously
func (c *LRUCache[K, V]) Set(key K, value V, priority int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.capacity <= 0 {
		return
	}

	if elem, ok := c.items[key]; ok {
		item := elem.Value.(*CacheItem[K, V])
		if item.Priority != priority {
			c.forgetPriority(item.Priority)
			item.Priority = priority
			c.rememberPriority(priority)
		}
		item.Value = value
		c.order.MoveToFront(elem)
		return
	}

	if c.order.Len() >= c.capacity {
		c.evict()
	}

	elem := c.order.PushFront(&CacheItem[K, V]{
		Key:      key,
		Value:    value,
		Priority: priority,
	})
	c.items[key] = elem
	c.rememberPriority(priority)
}

// evict drops the oldest item carrying maxPriority
func (c *LRUCache[K, V]) evict() {
	for e := c.order.Back(); e != nil; e = e.Prev() {
		if e.Value.(*CacheItem[K, V]).Priority == c.maxPriority {
			c.remove(e)
			return
		}
	}
}

func (c *LRUCache[K, V]) remove(elem *list.Element) {
	item := elem.Value.(*CacheItem[K, V])
	c.order.Remove(elem)
	delete(c.items, item.Key)
	c.forgetPriority(item.Priority)
}

func (c *LRUCache[K, V]) rememberPriority(priority int) {
	c.priorityCount[priority]++
	if len(c.priorityCount) == 1 || priority > c.maxPriority {
		c.maxPriority = priority
	}
}

func (c *LRUCache[K, V]) forgetPriority(priority int) {
	c.priorityCount[priority]--
	if c.priorityCount[priority] > 0 {
		return
	}
	delete(c.priorityCount, priority)
	if priority != c.maxPriority {
		return
	}
	first := true
	for p := range c.priorityCount {
		if first || p > c.maxPriority {
			c.maxPriority = p
			first = false
		}
	}
}

func (c *LRUCache[K, V]) runUpdater(ctx context.Context) {
	for {
		select {
		case row := <-c.saveChan:
			c.Set(row.Key, row.Value, row.Priority)
		case <-ctx.Done():
			return
		}
	}
}
