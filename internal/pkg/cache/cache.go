package cache

import (
	"sync"
	"time"
)

// entry 单条缓存记录，hits 用于容量淘汰
type entry struct {
	value     interface{}
	expiresAt time.Time
	hits      int64
}

// Cache 进程内有界 TTL 缓存。读取时惰性过期，写满后淘汰命中次数最少的一条。
// 仅作优化使用，进程重启丢失不影响正确性。
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry
	maxSize int
	now     func() time.Time
}

// New 创建一个容量为 maxSize 的缓存，maxSize <= 0 表示不限制
func New(maxSize int) *Cache {
	return &Cache{
		entries: make(map[string]*entry),
		maxSize: maxSize,
		now:     time.Now,
	}
}

// Get 读取缓存，过期条目视为不存在并顺手删除
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(e.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	e.hits++
	return e.value, true
}

// Set 写入缓存，容量已满且 key 不存在时先淘汰一条
func (c *Cache) Set(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && c.maxSize > 0 && len(c.entries) >= c.maxSize {
		c.evictColdest()
	}

	c.entries[key] = &entry{
		value:     value,
		expiresAt: c.now().Add(ttl),
	}
}

// evictColdest 删除命中次数最少的一条，平局时任意
func (c *Cache) evictColdest() {
	var coldestKey string
	var coldestHits int64 = -1
	for k, e := range c.entries {
		if coldestHits == -1 || e.hits < coldestHits {
			coldestKey = k
			coldestHits = e.hits
		}
	}
	if coldestKey != "" {
		delete(c.entries, coldestKey)
	}
}

func (c *Cache) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]*entry)
	c.mu.Unlock()
}

// Len 当前条目数，含未被惰性清理的过期条目
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
