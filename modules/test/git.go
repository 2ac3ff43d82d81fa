// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package test

import (
	"bytes"
	"os/exec"
	"strings"
	"testing"

	"code.gitea.io/gitobject/modules/git/gitcmd"

	"github.com/stretchr/testify/require"
)

// RequireGit skips the test if the git executable can't be found
func RequireGit(t testing.TB) {
	t.Helper()
	if _, err := exec.LookPath(gitcmd.GitExecutable); err != nil {
		t.Skipf("git is not available: %v", err)
	}
}

// RunGit runs a git command in the repository and returns its trimmed stdout
func RunGit(t testing.TB, repoPath string, stdin []byte, args ...string) string {
	t.Helper()
	cmd := gitcmd.NewCommand(gitcmd.ToTrustedCmdArgs(args)...).WithDir(repoPath)
	if stdin != nil {
		cmd.WithStdin(bytes.NewReader(stdin))
	}
	stdout, _, err := cmd.RunStdString(t.Context())
	require.NoError(t, err, "git %s", strings.Join(args, " "))
	return strings.TrimSpace(stdout)
}

// InitBareRepo creates an empty bare repository in a temporary directory.
// An empty objectFormat uses git's default.
func InitBareRepo(t testing.TB, objectFormat string) string {
	t.Helper()
	RequireGit(t)
	dir := t.TempDir()
	args := []string{"init", "--bare", "--quiet"}
	if objectFormat != "" {
		args = append(args, "--object-format="+objectFormat)
	}
	RunGit(t, dir, nil, append(args, dir)...)
	return dir
}

// WriteObject stores content as a loose object of the given type without validating it
func WriteObject(t testing.TB, repoPath, typ string, content []byte) string {
	t.Helper()
	return RunGit(t, repoPath, content, "hash-object", "-w", "--literally", "-t", typ, "--stdin")
}

// WriteBlob stores content as a blob
func WriteBlob(t testing.TB, repoPath string, content []byte) string {
	t.Helper()
	return RunGit(t, repoPath, content, "hash-object", "-w", "--stdin")
}

// MkTree stores a tree from "git ls-tree" formatted lines
func MkTree(t testing.TB, repoPath string, lines ...string) string {
	t.Helper()
	input := strings.Join(lines, "\n")
	if input != "" {
		input += "\n"
	}
	return RunGit(t, repoPath, []byte(input), "mktree")
}

// CommitTree creates a commit of the tree with a fixed author and committer
func CommitTree(t testing.TB, repoPath, treeID, message string, parents ...string) string {
	t.Helper()
	args := []string{
		"-c", "user.name=A U Thor", "-c", "user.email=author@example.com",
		"commit-tree", treeID,
	}
	for _, parent := range parents {
		args = append(args, "-p", parent)
	}
	return RunGit(t, repoPath, []byte(message), args...)
}

// MkTag stores an annotated tag object from its raw content, git validates it first
func MkTag(t testing.TB, repoPath string, content []byte) string {
	t.Helper()
	return RunGit(t, repoPath, content, "mktag")
}
