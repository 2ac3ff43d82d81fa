// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cache

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTwoQueueCache(t *testing.T) {
	c, err := NewTwoQueueCache[string, int](DefaultTwoQueueCacheConfig(2))
	require.NoError(t, err)

	c.Put("a", 1)
	c.Put("b", 2)
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.True(t, c.IsExist("b"))

	c.Put("c", 3)
	assert.Equal(t, 2, c.Len())

	c.Delete("c")
	assert.False(t, c.IsExist("c"))

	c.Flush()
	assert.Equal(t, 0, c.Len())
}

func TestDisabledCache(t *testing.T) {
	c, err := NewTwoQueueCache[string, int](DefaultTwoQueueCacheConfig(0))
	require.NoError(t, err)
	c.Put("a", 1)
	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestGetOrLoad(t *testing.T) {
	c, err := NewTwoQueueCache[string, int](DefaultTwoQueueCacheConfig(8))
	require.NoError(t, err)

	calls := 0
	load := func() (int, error) {
		calls++
		return 42, nil
	}
	for range 3 {
		v, err := GetOrLoad(c, "answer", load)
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	}
	assert.Equal(t, 1, calls)

	errLoad := errors.New("load failed")
	_, err = GetOrLoad(c, "broken", func() (int, error) { return 0, errLoad })
	assert.ErrorIs(t, err, errLoad)
	assert.False(t, c.IsExist("broken"))
}

func TestInvalidRatio(t *testing.T) {
	_, err := NewTwoQueueCache[string, int](TwoQueueCacheConfig{Size: 4, RecentRatio: 2, GhostRatio: 0.5})
	assert.Error(t, err)
}
