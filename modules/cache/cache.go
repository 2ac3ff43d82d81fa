// Copyright 2017 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cache

// Cache is an in-memory cache of immutable values
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Put(key K, val V)
	Delete(key K)
	IsExist(key K) bool
	Len() int
	Flush()
}

// GetOrLoad returns the cached value of key, or calls load and caches its result
func GetOrLoad[K comparable, V any](c Cache[K, V], key K, load func() (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	v, err := load()
	if err != nil {
		return v, err
	}
	c.Put(key, v)
	return v, nil
}

type noopCache[K comparable, V any] struct{}

func (noopCache[K, V]) Get(K) (v V, ok bool) { return v, false }
func (noopCache[K, V]) Put(K, V)             {}
func (noopCache[K, V]) Delete(K)             {}
func (noopCache[K, V]) IsExist(K) bool       { return false }
func (noopCache[K, V]) Len() int             { return 0 }
func (noopCache[K, V]) Flush()               {}
