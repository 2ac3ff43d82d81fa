// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package git

import (
	"path/filepath"
	"strings"
	"testing"

	"code.gitea.io/gitobject/modules/git/object"
	"code.gitea.io/gitobject/modules/setting"
	"code.gitea.io/gitobject/modules/test"
	"code.gitea.io/gitobject/modules/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTagger = "A U Thor <author@example.com> 1700000000 +0000"

type fixture struct {
	repoPath  string
	blobID    string
	binaryID  string
	treeID    string
	rootID    string
	commitID  string
	tagID     string
	mergeID   string
	treeLines []string
}

func useBackend(t *testing.T, backend string) {
	oldGit := setting.Git
	t.Cleanup(func() { setting.Git = oldGit })
	setting.Git.CatFile.Backend = backend
	setting.Git.CatFile.ObjectFormat = ""
}

func createFixture(t *testing.T) *fixture {
	f := &fixture{repoPath: test.InitBareRepo(t, "sha1")}
	f.blobID = test.WriteBlob(t, f.repoPath, []byte("Hello\n"))
	f.binaryID = test.WriteBlob(t, f.repoPath, []byte("bin\x00ary\n\n\x00"))

	emptyTree := test.MkTree(t, f.repoPath)
	require.Equal(t, emptyTreeID, emptyTree)

	f.treeLines = []string{
		"100644 blob " + f.blobID + "\thello.txt",
		"100755 blob " + f.binaryID + "\trun.sh",
		"040000 tree " + emptyTree + "\tsub dir",
	}
	f.treeID = test.MkTree(t, f.repoPath, f.treeLines...)

	f.rootID = test.CommitTree(t, f.repoPath, emptyTree, "root commit\n")
	f.commitID = test.CommitTree(t, f.repoPath, f.treeID, "second commit\n\nwith a body\n", f.rootID)

	f.tagID = test.MkTag(t, f.repoPath, []byte("object "+f.commitID+"\ntype commit\ntag v1.0.0\ntagger "+testTagger+"\n\nRelease v1.0.0\n"))

	var sb strings.Builder
	sb.WriteString("tree " + f.treeID + "\n")
	sb.WriteString("parent " + f.commitID + "\n")
	sb.WriteString("parent " + f.rootID + "\n")
	for _, name := range []string{"v1", "v2", "v3"} {
		sb.WriteString("mergetag object " + f.rootID + "\n type commit\n tag " + name + "\n tagger " + testTagger + "\n \n merged " + name + "\n")
	}
	sb.WriteString("author " + testTagger + "\ncommitter " + testTagger + "\n\nMerge tags\n")
	f.mergeID = test.WriteObject(t, f.repoPath, "commit", []byte(sb.String()))
	return f
}

func testRepositoryObjects(t *testing.T, f *fixture) {
	repo, err := OpenRepository(t.Context(), f.repoPath)
	require.NoError(t, err)
	defer repo.Close()
	assert.Equal(t, "sha1", repo.ObjectFormat().Name())

	blob, err := repo.GetBlob(f.blobID)
	require.NoError(t, err)
	assert.Equal(t, helloBlobID, blob.ID)
	assert.Equal(t, "Hello\n", string(blob.Content))

	binary, err := repo.GetBlob(f.binaryID)
	require.NoError(t, err)
	assert.Equal(t, "bin\x00ary\n\n\x00", string(binary.Content))

	emptyTree, err := repo.GetTree(emptyTreeID)
	require.NoError(t, err)
	assert.Empty(t, emptyTree.Entries)

	tree, err := repo.GetTree(f.treeID)
	require.NoError(t, err)
	require.Len(t, tree.Entries, 3)
	assert.Equal(t, object.TreeEntry{Mode: "100644", Name: "hello.txt", ID: f.blobID}, tree.Entries[0])
	assert.True(t, tree.Entries[1].IsExecutable())
	assert.Equal(t, "sub dir", tree.Entries[2].Name)
	assert.Equal(t, "40000", tree.Entries[2].Mode)
	assert.True(t, tree.Entries[2].IsDir())

	encoded, err := tree.Encode(repo.ObjectFormat())
	require.NoError(t, err)
	assert.Equal(t, f.treeID, object.ComputeID(repo.ObjectFormat(), object.TypeTree, encoded))

	commit, err := repo.GetCommit(f.commitID)
	require.NoError(t, err)
	assert.Equal(t, f.commitID, commit.ID)
	assert.Equal(t, f.treeID, commit.Tree)
	assert.Equal(t, []string{f.rootID}, commit.Parents)
	assert.Equal(t, "second commit", commit.Summary())
	assert.Equal(t, "second commit\n\nwith a body\n", string(commit.Message))
	author, err := commit.AuthorSignature()
	require.NoError(t, err)
	assert.Equal(t, "A U Thor", author.Name)
	assert.Equal(t, "author@example.com", author.Email)

	root, err := repo.GetCommit(f.rootID)
	require.NoError(t, err)
	assert.Empty(t, root.Parents)

	tag, err := repo.GetTag(f.tagID)
	require.NoError(t, err)
	assert.Equal(t, f.commitID, tag.Object)
	assert.Equal(t, "commit", tag.ObjectType)
	assert.Equal(t, "v1.0.0", tag.Tag)
	assert.Equal(t, testTagger, tag.Tagger)
	assert.Equal(t, "Release v1.0.0\n", string(tag.Message))

	merge, err := repo.GetCommit(f.mergeID)
	require.NoError(t, err)
	assert.True(t, merge.IsMerge())
	require.Len(t, merge.MergeTags, 3)
	for i, name := range []string{"v1", "v2", "v3"} {
		assert.Equal(t, "object "+f.rootID+"\ntype commit\ntag "+name+"\ntagger "+testTagger+"\n\nmerged "+name, merge.MergeTags[i])
	}

	info, err := repo.ObjectInfo(f.tagID)
	require.NoError(t, err)
	assert.Equal(t, "tag", info.Type)

	_, err = repo.GetObject("0123456789012345678901234567890123456789")
	assert.True(t, IsErrNotExist(err))

	_, err = repo.GetTree(f.blobID)
	assert.True(t, IsErrObjectType(err))
}

func TestRepositoryNative(t *testing.T) {
	useBackend(t, setting.CatFileBackendNative)
	testRepositoryObjects(t, createFixture(t))
}

func TestRepositoryGoGit(t *testing.T) {
	useBackend(t, setting.CatFileBackendGoGit)
	testRepositoryObjects(t, createFixture(t))
}

func TestRepositorySha256(t *testing.T) {
	test.RequireGit(t)
	if defaultFeatures == nil || !defaultFeatures.SupportObjectFormat {
		t.Skip("git doesn't support sha256 repositories")
	}
	useBackend(t, setting.CatFileBackendNative)

	repoPath := test.InitBareRepo(t, "sha256")
	blobID := test.WriteBlob(t, repoPath, []byte("Hello\n"))
	assert.Equal(t, object.ComputeID(object.Sha256ObjectFormat, object.TypeBlob, []byte("Hello\n")), blobID)
	treeID := test.MkTree(t, repoPath, "100644 blob "+blobID+"\thello.txt")

	repo, err := OpenRepository(t.Context(), repoPath)
	require.NoError(t, err)
	defer repo.Close()
	assert.Equal(t, "sha256", repo.ObjectFormat().Name())

	blob, err := repo.GetBlob(blobID)
	require.NoError(t, err)
	assert.Equal(t, "Hello\n", string(blob.Content))

	tree, err := repo.GetTree(treeID)
	require.NoError(t, err)
	require.Len(t, tree.Entries, 1)
	assert.Equal(t, blobID, tree.Entries[0].ID)

	_, err = repo.GetObject(helloBlobID)
	assert.ErrorIs(t, err, util.ErrInvalidArgument)

	setting.Git.CatFile.Backend = setting.CatFileBackendGoGit
	_, err = OpenRepository(t.Context(), repoPath)
	assert.ErrorIs(t, err, util.ErrInvalidArgument)
}

func TestOpenRepositoryMissing(t *testing.T) {
	_, err := OpenRepository(t.Context(), filepath.Join(t.TempDir(), "missing.git"))
	assert.ErrorIs(t, err, util.ErrNotExist)
}

func TestOpenRepositoryConfiguredObjectFormat(t *testing.T) {
	useBackend(t, setting.CatFileBackendNative)
	setting.Git.CatFile.ObjectFormat = "md5"
	_, err := OpenRepository(t.Context(), t.TempDir())
	assert.ErrorIs(t, err, util.ErrInvalidArgument)
}
