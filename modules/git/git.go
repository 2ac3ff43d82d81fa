// Copyright 2015 The Gogs Authors. All rights reserved.
// Copyright 2017 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package git

import (
	"context"
	"fmt"
	"strings"

	"code.gitea.io/gitobject/modules/git/gitcmd"
	"code.gitea.io/gitobject/modules/log"
	"code.gitea.io/gitobject/modules/setting"

	"github.com/hashicorp/go-version"
)

const (
	// RequiredVersion is the minimum Git version required
	RequiredVersion = "2.0.0"

	// objectFormatVersion is the first version with "rev-parse --show-object-format"
	objectFormatVersion = "2.29"
)

// Features describes the git binary found by InitSimple
type Features struct {
	gitVersion *version.Version

	SupportObjectFormat bool
}

var defaultFeatures *Features

// DefaultFeatures returns the features of the git binary, InitSimple must be called first
func DefaultFeatures() *Features {
	if defaultFeatures == nil {
		panic("git.InitSimple must be called first")
	}
	return defaultFeatures
}

// Version returns the version of the git binary
func (f *Features) Version() string {
	return f.gitVersion.Original()
}

// CheckGitVersionAtLeast returns an error if git version is lower than the constraint version
func (f *Features) CheckGitVersionAtLeast(atLeast string) error {
	if f.gitVersion.LessThan(version.Must(version.NewVersion(atLeast))) {
		return fmt.Errorf("installed git binary version %s is not at least %s", f.gitVersion.Original(), atLeast)
	}
	return nil
}

func parseGitVersionLine(s string) (*version.Version, error) {
	fields := strings.Fields(s)
	if len(fields) < 3 {
		return nil, fmt.Errorf("invalid git version: %q", s)
	}

	// version string is like: "git version 2.29.3" or "git version 2.29.3.windows.1"
	versionString := fields[2]
	if pos := strings.Index(versionString, "windows"); pos >= 1 {
		versionString = versionString[:pos-1]
	}
	return version.NewVersion(versionString)
}

func loadGitVersion(ctx context.Context) (*version.Version, error) {
	stdout, _, runErr := gitcmd.NewCommand("version").WithTimeout(setting.DefaultTimeout()).RunStdString(ctx)
	if runErr != nil {
		return nil, runErr
	}
	return parseGitVersionLine(strings.TrimSpace(stdout))
}

// InitSimple sets the git executable from the settings and checks its version.
// It must be called before OpenRepository.
func InitSimple(ctx context.Context) error {
	if err := gitcmd.SetExecutablePath(setting.Git.Path); err != nil {
		return err
	}

	gitVersion, err := loadGitVersion(ctx)
	if err != nil {
		return fmt.Errorf("unable to load git version: %w", err)
	}
	features := &Features{gitVersion: gitVersion}
	if err := features.CheckGitVersionAtLeast(RequiredVersion); err != nil {
		return err
	}
	features.SupportObjectFormat = features.CheckGitVersionAtLeast(objectFormatVersion) == nil

	defaultFeatures = features
	log.Info("Using git %s at %s", gitVersion.Original(), gitcmd.GitExecutable)
	return nil
}
