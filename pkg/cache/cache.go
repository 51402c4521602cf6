// Package cache is a size-bounded LRU byte cache with per-entry TTL.
package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

const janitorInterval = 2 * time.Minute

type entry struct {
	key        string
	value      []byte
	expiration time.Time
}

type Stats struct {
	Size   int
	Hits   uint64
	Misses uint64
}

type LRUCache struct {
	capacity int
	ttl      time.Duration

	mu     sync.Mutex
	ll     *list.List
	items  map[string]*list.Element
	hits   uint64
	misses uint64

	now func() time.Time
}

func NewLRUCache(capacity int, ttl time.Duration) *LRUCache {
	return &LRUCache{
		capacity: max(capacity, 1),
		ttl:      ttl,
		ll:       list.New(),
		items:    make(map[string]*list.Element),
		now:      time.Now,
	}
}

func (c *LRUCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ele, ok := c.items[key]
	if !ok {
		c.misses++
		return nil, false
	}
	ent := ele.Value.(*entry)
	if c.now().After(ent.expiration) {
		c.removeElement(ele)
		c.misses++
		return nil, false
	}
	c.ll.MoveToFront(ele)
	c.hits++
	return ent.value, true
}

func (c *LRUCache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiration := c.now().Add(c.ttl)
	if ele, ok := c.items[key]; ok {
		c.ll.MoveToFront(ele)
		ent := ele.Value.(*entry)
		ent.value = value
		ent.expiration = expiration
		return
	}

	c.items[key] = c.ll.PushFront(&entry{key: key, value: value, expiration: expiration})
	for c.ll.Len() > c.capacity {
		c.removeElement(c.ll.Back())
	}
}

func (c *LRUCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ele, ok := c.items[key]; ok {
		c.removeElement(ele)
	}
}

func (c *LRUCache) removeElement(e *list.Element) {
	c.ll.Remove(e)
	delete(c.items, e.Value.(*entry).key)
}

func (c *LRUCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{Size: c.ll.Len(), Hits: c.hits, Misses: c.misses}
}

// Start запускает фоновую очистку просроченных записей до отмены ctx.
func (c *LRUCache) Start(ctx context.Context) error {
	go c.janitor(ctx, janitorInterval)
	return nil
}

func (c *LRUCache) janitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-ctx.Done():
			return
		}
	}
}

func (c *LRUCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for e := c.ll.Back(); e != nil; {
		prev := e.Prev()
		if now.After(e.Value.(*entry).expiration) {
			c.removeElement(e)
		}
		e = prev
	}
}
