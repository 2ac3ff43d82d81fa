// Copyright 2019 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"fmt"
	"strings"
	"time"
)

// Backends of the object source
const (
	CatFileBackendNative = "native"
	CatFileBackendGoGit  = "gogit"
)

// Git settings
var Git = struct {
	Path string
	// AnsiCharset is used for commit messages whose encoding can't be detected
	AnsiCharset string
	Timeout     struct {
		Default int
	} `ini:"git.timeout"`
	CatFile struct {
		Backend      string
		CacheSize    int
		ObjectFormat string
	} `ini:"git.catfile"`
}{
	Path: "git",
	Timeout: struct {
		Default int
	}{
		Default: 360,
	},
	CatFile: struct {
		Backend      string
		CacheSize    int
		ObjectFormat string
	}{
		Backend:   CatFileBackendNative,
		CacheSize: 512,
	},
}

// DefaultTimeout returns the timeout for one-shot git commands
func DefaultTimeout() time.Duration {
	return time.Duration(Git.Timeout.Default) * time.Second
}

func loadGitFrom(rootCfg ConfigProvider) error {
	mustMapSetting(rootCfg, "git", &Git)

	Git.CatFile.Backend = strings.ToLower(strings.TrimSpace(Git.CatFile.Backend))
	switch Git.CatFile.Backend {
	case "":
		Git.CatFile.Backend = CatFileBackendNative
	case CatFileBackendNative, CatFileBackendGoGit:
	default:
		return fmt.Errorf("unknown [git.catfile] BACKEND: %q", Git.CatFile.Backend)
	}
	if Git.CatFile.CacheSize < 0 {
		Git.CatFile.CacheSize = 0
	}
	Git.CatFile.ObjectFormat = strings.ToLower(strings.TrimSpace(Git.CatFile.ObjectFormat))
	return nil
}
