package stig

import "container/list"

// lruCache is a bounded associative structure with least-recently-used
// eviction. The front of the access list is the most recently used
// entry. It is not safe for concurrent use.
type lruCache struct {
	maxsize int
	order   *list.List
	entries map[string]*list.Element
}

type cacheEntry struct {
	key   string
	value any
}

func newLRUCache(maxsize int) *lruCache {
	return &lruCache{
		maxsize: maxsize,
		order:   list.New(),
		entries: make(map[string]*list.Element),
	}
}

// get returns the cached value and refreshes its recency.
func (c *lruCache) get(key string) (any, bool) {
	elem, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	c.order.MoveToFront(elem)

	entry, _ := elem.Value.(*cacheEntry)

	return entry.value, true
}

// put inserts or updates a value, evicting the least-recently-used
// entry when capacity would be exceeded.
func (c *lruCache) put(key string, value any) {
	if elem, ok := c.entries[key]; ok {
		c.order.MoveToFront(elem)

		entry, _ := elem.Value.(*cacheEntry)
		entry.value = value

		return
	}

	c.entries[key] = c.order.PushFront(&cacheEntry{key: key, value: value})

	if c.order.Len() > c.maxsize {
		c.evict()
	}
}

func (c *lruCache) evict() {
	oldest := c.order.Back()
	if oldest == nil {
		return
	}

	c.order.Remove(oldest)

	entry, _ := oldest.Value.(*cacheEntry)
	delete(c.entries, entry.key)
}

func (c *lruCache) clear() {
	c.order.Init()
	c.entries = make(map[string]*list.Element)
}

func (c *lruCache) len() int {
	return c.order.Len()
}

func (c *lruCache) contains(key string) bool {
	_, ok := c.entries[key]

	return ok
}
