// Copyright 2021 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// TwoQueueCacheConfig describes the configuration for TwoQueueCache
type TwoQueueCacheConfig struct {
	Size        int     `ini:"SIZE" json:"size"`
	RecentRatio float64 `ini:"RECENT_RATIO" json:"recent_ratio"`
	GhostRatio  float64 `ini:"GHOST_RATIO" json:"ghost_ratio"`
}

// DefaultTwoQueueCacheConfig returns the default ratios of golang-lru for the given size
func DefaultTwoQueueCacheConfig(size int) TwoQueueCacheConfig {
	return TwoQueueCacheConfig{
		Size:        size,
		RecentRatio: lru.Default2QRecentRatio,
		GhostRatio:  lru.Default2QGhostEntries,
	}
}

// TwoQueueCache represents a LRU 2Q cache, it is safe for concurrent use
type TwoQueueCache[K comparable, V any] struct {
	cache *lru.TwoQueueCache[K, V]
}

var _ Cache[string, any] = &TwoQueueCache[string, any]{}

// NewTwoQueueCache creates a 2Q cache, a zero or negative size disables caching
func NewTwoQueueCache[K comparable, V any](cfg TwoQueueCacheConfig) (Cache[K, V], error) {
	if cfg.Size <= 0 {
		return noopCache[K, V]{}, nil
	}
	c, err := lru.New2QParams[K, V](cfg.Size, cfg.RecentRatio, cfg.GhostRatio)
	if err != nil {
		return nil, err
	}
	return &TwoQueueCache[K, V]{cache: c}, nil
}

// Get gets cached value by given key.
func (c *TwoQueueCache[K, V]) Get(key K) (V, bool) {
	return c.cache.Get(key)
}

// Put puts value into cache
func (c *TwoQueueCache[K, V]) Put(key K, val V) {
	c.cache.Add(key, val)
}

// Delete deletes cached value by given key.
func (c *TwoQueueCache[K, V]) Delete(key K) {
	c.cache.Remove(key)
}

// IsExist returns true if cached value exists.
func (c *TwoQueueCache[K, V]) IsExist(key K) bool {
	return c.cache.Contains(key)
}

// Len returns the number of cached values
func (c *TwoQueueCache[K, V]) Len() int {
	return c.cache.Len()
}

// Flush deletes all cached data.
func (c *TwoQueueCache[K, V]) Flush() {
	c.cache.Purge()
}
