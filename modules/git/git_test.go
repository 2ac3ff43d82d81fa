// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGitVersion(t *testing.T) {
	v, err := parseGitVersionLine("git version 2.29.3")
	require.NoError(t, err)
	assert.Equal(t, "2.29.3", v.Original())

	v, err = parseGitVersionLine("git version 2.29.3.windows.1")
	require.NoError(t, err)
	assert.Equal(t, "2.29.3", v.Original())

	v, err = parseGitVersionLine("git version 2.39.3 (Apple Git-146)")
	require.NoError(t, err)
	assert.Equal(t, "2.39.3", v.Original())

	_, err = parseGitVersionLine("git version")
	assert.Error(t, err)
}

func TestFeatures(t *testing.T) {
	v, err := parseGitVersionLine("git version 2.28.0")
	require.NoError(t, err)
	features := &Features{gitVersion: v}
	assert.NoError(t, features.CheckGitVersionAtLeast(RequiredVersion))
	assert.Error(t, features.CheckGitVersionAtLeast(objectFormatVersion))
	assert.Equal(t, "2.28.0", features.Version())
}
