package querycache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// ICache holds query results by key until they go stale.
type ICache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
	Invalidate(key string)
}

type cache struct {
	lru *expirable.LRU[string, any]
}

func New(size int, staleTime time.Duration) ICache {
	if size <= 0 {
		size = 256
	}
	return &cache{lru: expirable.NewLRU[string, any](size, nil, staleTime)}
}

func (c *cache) Get(key string) (any, bool) {
	return c.lru.Get(key)
}

func (c *cache) Set(key string, value any) {
	c.lru.Add(key, value)
}

func (c *cache) Invalidate(key string) {
	c.lru.Remove(key)
}
