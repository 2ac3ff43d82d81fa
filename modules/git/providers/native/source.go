// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package native

import (
	"context"
	"sync"

	"code.gitea.io/gitobject/modules/git/catfile"
	"code.gitea.io/gitobject/modules/git/object"
)

// Source reads objects through "git cat-file". The --batch process is started
// at open, the --batch-check process only when object info is first requested.
type Source struct {
	ctx      context.Context
	repoPath string

	batch *catfile.Batch

	checkMu sync.Mutex
	check   *catfile.BatchCheck
	closed  bool
}

// Open starts the cat-file --batch process of the repository
func Open(ctx context.Context, repoPath string) (*Source, error) {
	batch, err := catfile.NewBatch(ctx, repoPath)
	if err != nil {
		return nil, err
	}
	return &Source{ctx: ctx, repoPath: repoPath, batch: batch}, nil
}

// Get reads the object, (nil, false, nil) if it doesn't exist
func (s *Source) Get(id string) (*object.RawObject, bool, error) {
	return s.batch.Get(id)
}

func (s *Source) getBatchCheck() (*catfile.BatchCheck, error) {
	s.checkMu.Lock()
	defer s.checkMu.Unlock()
	if s.closed {
		return nil, catfile.ErrClosed
	}
	if s.check != nil {
		return s.check, nil
	}
	check, err := catfile.NewBatchCheck(s.ctx, s.repoPath)
	if err != nil {
		return nil, err
	}
	s.check = check
	return s.check, nil
}

// Info returns the type and size of the object, (nil, false, nil) if it doesn't exist
func (s *Source) Info(id string) (*object.ObjectInfo, bool, error) {
	check, err := s.getBatchCheck()
	if err != nil {
		return nil, false, err
	}
	return check.Info(id)
}

// Close stops the cat-file processes, it is safe to call it more than once
func (s *Source) Close() {
	s.batch.Close()

	s.checkMu.Lock()
	defer s.checkMu.Unlock()
	s.closed = true
	if s.check != nil {
		s.check.Close()
	}
}
