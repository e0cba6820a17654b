package cache

import (
	"container/list"
)

// LRUCache is a fixed-capacity least-recently-used cache. The start page
// keeps rendered markdown previews in one so scrolling back to a document
// does not re-render it.
type LRUCache[V any] struct {
	size      int
	evictList *list.List
	items     map[string]*list.Element
}

type entry[V any] struct {
	key   string
	value V
}

func NewLRUCache[V any](size int) *LRUCache[V] {
	if size < 1 {
		size = 1
	}
	return &LRUCache[V]{
		size:      size,
		evictList: list.New(),
		items:     make(map[string]*list.Element),
	}
}

func (c *LRUCache[V]) Get(key string) (value V, ok bool) {
	if ele, hit := c.items[key]; hit {
		c.evictList.MoveToFront(ele)
		return ele.Value.(*entry[V]).value, true
	}
	return
}

func (c *LRUCache[V]) Put(key string, value V) {
	if ele, hit := c.items[key]; hit {
		c.evictList.MoveToFront(ele)
		ele.Value.(*entry[V]).value = value
		return
	}

	ele := c.evictList.PushFront(&entry[V]{key, value})
	c.items[key] = ele

	if c.evictList.Len() > c.size {
		c.removeOldest()
	}
}

// Remove drops a key so the next Get misses. Used when a document changes
// on disk and its cached preview is stale.
func (c *LRUCache[V]) Remove(key string) {
	if ele, hit := c.items[key]; hit {
		c.removeElement(ele)
	}
}

// Clear drops every entry.
func (c *LRUCache[V]) Clear() {
	c.evictList.Init()
	c.items = make(map[string]*list.Element)
}

func (c *LRUCache[V]) Len() int {
	return c.evictList.Len()
}

func (c *LRUCache[V]) removeOldest() {
	ele := c.evictList.Back()
	if ele != nil {
		c.removeElement(ele)
	}
}

func (c *LRUCache[V]) removeElement(e *list.Element) {
	c.evictList.Remove(e)
	kv := e.Value.(*entry[V])
	delete(c.items, kv.key)
}
