// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package git

import (
	"context"
	"errors"
	"strings"

	"code.gitea.io/gitobject/modules/git/gitcmd"
	"code.gitea.io/gitobject/modules/git/object"
	"code.gitea.io/gitobject/modules/log"
	"code.gitea.io/gitobject/modules/setting"
	"code.gitea.io/gitobject/modules/util"
)

// GetObjectFormatOfRepo returns the object format of the repository.
// Git versions without "--show-object-format" only know sha1.
func GetObjectFormatOfRepo(ctx context.Context, repoPath string) (object.ObjectFormat, error) {
	if defaultFeatures != nil && !defaultFeatures.SupportObjectFormat {
		return object.Sha1ObjectFormat, nil
	}

	stdout, _, err := gitcmd.NewCommand("rev-parse", "--show-object-format").
		WithDir(repoPath).
		WithTimeout(setting.DefaultTimeout()).
		RunStdString(ctx)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(stdout)
	format := object.ObjectFormatFromName(name)
	if format == nil {
		return nil, util.NewInvalidArgumentErrorf("unsupported object format %q", name)
	}
	return format, nil
}

// objectFormatOfRepo uses the configured object format, or detects it and falls back to sha1
func objectFormatOfRepo(ctx context.Context, repoPath string) (object.ObjectFormat, error) {
	if name := setting.Git.CatFile.ObjectFormat; name != "" {
		format := object.ObjectFormatFromName(name)
		if format == nil {
			return nil, util.NewInvalidArgumentErrorf("unsupported [git.catfile] OBJECT_FORMAT %q", name)
		}
		return format, nil
	}

	format, err := GetObjectFormatOfRepo(ctx, repoPath)
	if err != nil {
		if errors.Is(err, util.ErrInvalidArgument) {
			return nil, err
		}
		log.Warn("Unable to detect the object format of %s, assuming sha1: %v", repoPath, err)
		return object.Sha1ObjectFormat, nil
	}
	return format, nil
}
