// Copyright 2017 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package util

import (
	"bytes"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadExactly(t *testing.T) {
	content, err := ReadExactly(bytes.NewReader([]byte("abcdef")), 4)
	assert.NoError(t, err)
	assert.Equal(t, "abcd", string(content))

	content, err = ReadExactly(bytes.NewReader(nil), 0)
	assert.NoError(t, err)
	assert.Empty(t, content)

	content, err = ReadExactly(bytes.NewReader([]byte("ab")), 4)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, "ab", string(content))

	// a huge declared size is not allocated up front
	content, err = ReadExactly(bytes.NewReader([]byte("short")), math.MaxInt64)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, "short", string(content))

	_, err = ReadExactly(bytes.NewReader(nil), -1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestIsDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	assert.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	ok, err := IsDir(dir)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = IsDir(file)
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = IsDir(filepath.Join(dir, "missing"))
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = IsExist(file)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestSilentWrap(t *testing.T) {
	err := NewNotExistErrorf("repo %q doesn't exist", "a.git")
	assert.Equal(t, `repo "a.git" doesn't exist`, err.Error())
	assert.True(t, errors.Is(err, ErrNotExist))

	err = NewInvalidArgumentErrorf("bad id")
	assert.Equal(t, "bad id", err.Error())
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
