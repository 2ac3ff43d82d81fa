// Copyright 2025 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package json

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name    string `json:"name"`
	Content []byte `json:"content"`
}

func TestMarshalRoundTrip(t *testing.T) {
	in := sample{Name: "a", Content: []byte{0, '\n', 0xff}}
	bs, err := Marshal(in)
	require.NoError(t, err)
	assert.True(t, Valid(bs))
	assert.JSONEq(t, `{"name":"a","content":"AAr/"}`, string(bs))

	var out sample
	require.NoError(t, Unmarshal(bs, &out))
	assert.Equal(t, in, out)
}

func TestMarshalIndent(t *testing.T) {
	bs, err := MarshalIndent(map[string]int{"a": 1}, "", "  ")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", string(bs))

	var buf bytes.Buffer
	require.NoError(t, NewEncoder(&buf).Encode([]int{1, 2}))
	var got []int
	require.NoError(t, NewDecoder(&buf).Decode(&got))
	assert.Equal(t, []int{1, 2}, got)
}
