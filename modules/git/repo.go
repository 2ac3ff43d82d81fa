// Copyright 2015 The Gogs Authors. All rights reserved.
// Copyright 2017 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package git

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"code.gitea.io/gitobject/modules/cache"
	"code.gitea.io/gitobject/modules/git/object"
	"code.gitea.io/gitobject/modules/git/providers/gogit"
	"code.gitea.io/gitobject/modules/git/providers/native"
	"code.gitea.io/gitobject/modules/log"
	"code.gitea.io/gitobject/modules/setting"
	"code.gitea.io/gitobject/modules/util"

	"golang.org/x/sync/singleflight"
)

// ObjectSource returns raw objects of a repository.
// Get and Info return (nil, false, nil) for an unknown id.
type ObjectSource interface {
	Get(id string) (*object.RawObject, bool, error)
	Info(id string) (*object.ObjectInfo, bool, error)
	Close()
}

var (
	_ ObjectSource = (*native.Source)(nil)
	_ ObjectSource = (*gogit.Source)(nil)
)

// Repository represents a Git repository.
// It is safe for concurrent use, the source serializes its requests.
type Repository struct {
	Path string

	objectFormat object.ObjectFormat
	source       ObjectSource
	records      cache.Cache[string, object.Record]
	loads        singleflight.Group

	closeOnce sync.Once
}

// OpenRepository opens the repository at the given path with the provided context.
// The object source and the cache size come from the [git.catfile] settings.
func OpenRepository(ctx context.Context, repoPath string) (*Repository, error) {
	repoPath, err := filepath.Abs(repoPath)
	if err != nil {
		return nil, err
	}
	exist, err := util.IsDir(repoPath)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, util.NewNotExistErrorf("no such file or directory")
	}

	objectFormat, err := objectFormatOfRepo(ctx, repoPath)
	if err != nil {
		return nil, err
	}

	var source ObjectSource
	switch setting.Git.CatFile.Backend {
	case setting.CatFileBackendGoGit:
		if objectFormat != object.Sha1ObjectFormat {
			return nil, util.NewInvalidArgumentErrorf("object format %s is not supported by the %s backend", objectFormat.Name(), setting.CatFileBackendGoGit)
		}
		source, err = gogit.Open(repoPath)
	default:
		source, err = native.Open(ctx, repoPath)
	}
	if err != nil {
		return nil, err
	}

	repo, err := newRepository(repoPath, objectFormat, source, setting.Git.CatFile.CacheSize)
	if err != nil {
		source.Close()
		return nil, err
	}
	log.Debug("Opened repository %s [object format: %s, backend: %s]", filepath.Base(repoPath), objectFormat.Name(), setting.Git.CatFile.Backend)
	return repo, nil
}

func newRepository(repoPath string, objectFormat object.ObjectFormat, source ObjectSource, cacheSize int) (*Repository, error) {
	records, err := cache.NewTwoQueueCache[string, object.Record](cache.DefaultTwoQueueCacheConfig(cacheSize))
	if err != nil {
		return nil, fmt.Errorf("unable to create object cache: %w", err)
	}
	return &Repository{
		Path:         repoPath,
		objectFormat: objectFormat,
		source:       source,
		records:      records,
	}, nil
}

// ObjectFormat returns the object format of the repository
func (repo *Repository) ObjectFormat() object.ObjectFormat {
	return repo.objectFormat
}

// Close releases the object source, it is safe to call it more than once
func (repo *Repository) Close() error {
	if repo == nil {
		return nil
	}
	repo.closeOnce.Do(func() {
		repo.source.Close()
		repo.records.Flush()
	})
	return nil
}
