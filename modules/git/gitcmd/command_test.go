// Copyright 2022 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package gitcmd

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func requireGit(t *testing.T) {
	if _, err := exec.LookPath(GitExecutable); err != nil {
		t.Skipf("git is not available: %v", err)
	}
}

func TestRunStdString(t *testing.T) {
	requireGit(t)

	stdout, stderr, err := NewCommand("--version").RunStdString(t.Context())
	assert.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, "git version")

	stdout, stderr, err = NewCommand("--no-such-arg").RunStdString(t.Context())
	if assert.Error(t, err) {
		assert.Equal(t, stderr, err.Stderr())
		assert.Contains(t, err.Stderr(), "unknown option")
		assert.Contains(t, err.Error(), "exit status 129 - unknown option")
		assert.True(t, IsErrorExitCode(err, 129))
		assert.Empty(t, stdout)
	}
}

func TestRunBrokenCommand(t *testing.T) {
	cmd := NewCommand("cat-file")
	cmd.AddDynamicArguments("-test")
	assert.ErrorIs(t, cmd.Run(t.Context()), ErrBrokenCommand)

	cmd = NewCommand("cat-file")
	cmd.AddOptionValues("batch", "x")
	assert.ErrorIs(t, cmd.Run(t.Context()), ErrBrokenCommand)
}

func TestRunTimeout(t *testing.T) {
	requireGit(t)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	err := NewCommand("--version").WithTimeout(time.Minute).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGitArgument(t *testing.T) {
	assert.True(t, isValidArgumentOption("-x"))
	assert.True(t, isValidArgumentOption("--xx"))
	assert.False(t, isValidArgumentOption(""))
	assert.False(t, isValidArgumentOption("x"))

	assert.True(t, isSafeArgumentValue(""))
	assert.True(t, isSafeArgumentValue("x"))
	assert.False(t, isSafeArgumentValue("-x"))
}

func TestCommandLogString(t *testing.T) {
	cmd := NewCommand("cat-file", "--batch").WithDir("/root/dir-a/repo.git")
	cmd.AddDynamicArguments("it's a test")
	assert.Equal(t, cmd.prog+` cat-file --batch "it's a test" [repo_path: repo.git]`, cmd.LogString())
}

func TestToTrustedCmdArgs(t *testing.T) {
	cmd := NewCommand(ToTrustedCmdArgs([]string{"cat-file", "-t"})...)
	assert.Equal(t, []string{"cat-file", "-t"}, cmd.args)
}
