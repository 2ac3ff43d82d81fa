// Copyright 2020 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package gogit

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"code.gitea.io/gitobject/modules/git/object"
	"code.gitea.io/gitobject/modules/log"
	"code.gitea.io/gitobject/modules/util"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	formatcfg "github.com/go-git/go-git/v5/plumbing/format/config"
)

// Source reads objects through the go-git storage of a repository.
// Only sha1 repositories are supported.
type Source struct {
	path string

	mu     sync.RWMutex
	repo   *gogit.Repository
	closed bool
}

// Open opens the repository at path
func Open(path string) (*Source, error) {
	isDir, err := util.IsDir(path)
	if err != nil {
		return nil, err
	} else if !isDir {
		return nil, util.NewNotExistErrorf("repo %q doesn't exist", filepath.Base(path))
	}

	repo, err := gogit.PlainOpen(path)
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, util.NewNotExistErrorf("repo %q doesn't exist", filepath.Base(path))
		}
		return nil, fmt.Errorf("unable to open %s with go-git: %w", filepath.Base(path), err)
	}

	cfg, err := repo.Config()
	if err != nil {
		return nil, fmt.Errorf("unable to read config of %s: %w", filepath.Base(path), err)
	}
	if cfg.Extensions.ObjectFormat != "" && cfg.Extensions.ObjectFormat != formatcfg.SHA1 {
		return nil, util.NewInvalidArgumentErrorf("object format %q is not supported by the gogit backend", cfg.Extensions.ObjectFormat)
	}

	log.Debug("Opened %s with go-git", filepath.Base(path))
	return &Source{path: path, repo: repo}, nil
}

func (s *Source) encodedObject(id string) (plumbing.EncodedObject, bool, error) {
	if s.closed {
		return nil, false, util.NewSilentWrapErrorf(util.ErrNotExist, "repo %q is closed", filepath.Base(s.path))
	}
	if !object.Sha1ObjectFormat.IsValid(id) {
		return nil, false, util.NewInvalidArgumentErrorf("invalid object id %q", id)
	}
	obj, err := s.repo.Storer.EncodedObject(plumbing.AnyObject, plumbing.NewHash(id))
	if err != nil {
		if errors.Is(err, plumbing.ErrObjectNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return obj, true, nil
}

// Info returns the type and size of the object, (nil, false, nil) if it doesn't exist
func (s *Source) Info(id string) (*object.ObjectInfo, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, found, err := s.encodedObject(id)
	if err != nil || !found {
		return nil, found, err
	}
	return &object.ObjectInfo{ID: id, Type: obj.Type().String(), Size: obj.Size()}, true, nil
}

// Get reads the object, (nil, false, nil) if it doesn't exist.
// The payload must match the size declared by the storage.
func (s *Source) Get(id string) (*object.RawObject, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, found, err := s.encodedObject(id)
	if err != nil || !found {
		return nil, found, err
	}

	rd, err := obj.Reader()
	if err != nil {
		return nil, false, err
	}
	defer rd.Close()

	size := obj.Size()
	content, err := util.ReadExactly(rd, size)
	if err != nil {
		return nil, false, fmt.Errorf("short read of %s: got %d of %d bytes: %w", id, len(content), size, err)
	}
	if extra, _ := rd.Read(make([]byte, 1)); extra != 0 {
		return nil, false, fmt.Errorf("object %s is larger than its declared size %d", id, size)
	}

	return &object.RawObject{
		ObjectInfo: object.ObjectInfo{ID: id, Type: obj.Type().String(), Size: size},
		Content:    content,
	}, true, nil
}

// Close releases the repository, it is safe to call it more than once
func (s *Source) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.repo = nil
}
