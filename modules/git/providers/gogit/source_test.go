// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package gogit

import (
	"path/filepath"
	"testing"

	"code.gitea.io/gitobject/modules/util"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeObject(t *testing.T, repo *gogit.Repository, typ plumbing.ObjectType, content []byte) string {
	obj := repo.Storer.NewEncodedObject()
	obj.SetType(typ)
	w, err := obj.Writer()
	require.NoError(t, err)
	_, err = w.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	hash, err := repo.Storer.SetEncodedObject(obj)
	require.NoError(t, err)
	return hash.String()
}

func TestSource(t *testing.T) {
	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, true)
	require.NoError(t, err)

	blobID := storeObject(t, repo, plumbing.BlobObject, []byte("Hello\n"))
	assert.Equal(t, "e965047ad7c57865823c7d992b1d046ea66edf78", blobID)
	binaryID := storeObject(t, repo, plumbing.BlobObject, []byte{0, '\n', 0xff, 0})
	treeID := storeObject(t, repo, plumbing.TreeObject, nil)
	assert.Equal(t, "4b825dc642cb6eb9a060e54bf8d69288fbee4904", treeID)

	src, err := Open(dir)
	require.NoError(t, err)
	defer src.Close()

	raw, found, err := src.Get(blobID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, blobID, raw.ID)
	assert.Equal(t, "blob", raw.Type)
	assert.EqualValues(t, 6, raw.Size)
	assert.Equal(t, "Hello\n", string(raw.Content))

	raw, found, err = src.Get(binaryID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte{0, '\n', 0xff, 0}, raw.Content)

	raw, found, err = src.Get(treeID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "tree", raw.Type)
	assert.Empty(t, raw.Content)

	info, found, err := src.Info(blobID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "blob", info.Type)
	assert.EqualValues(t, 6, info.Size)

	raw, found, err = src.Get("0123456789012345678901234567890123456789")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, raw)

	_, _, err = src.Get("not-an-id")
	assert.ErrorIs(t, err, util.ErrInvalidArgument)

	src.Close()
	src.Close()
	_, _, err = src.Get(blobID)
	assert.Error(t, err)
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.git"))
	assert.ErrorIs(t, err, util.ErrNotExist)

	_, err = Open(t.TempDir())
	assert.ErrorIs(t, err, util.ErrNotExist)
}
