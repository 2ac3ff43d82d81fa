// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package catfile

import (
	"context"
	"io"

	"code.gitea.io/gitobject/modules/git/gitcmd"
	"code.gitea.io/gitobject/modules/git/object"
)

// BatchCheck reads object types and sizes through one "git cat-file --batch-check" process
type BatchCheck struct {
	c *communicator
}

// NewBatchCheck starts "git cat-file --batch-check" in the repository.
// The caller must Close it to release the process.
func NewBatchCheck(ctx context.Context, repoPath string) (*BatchCheck, error) {
	c, err := startCommunicator(ctx, repoPath, gitcmd.NewCommand("cat-file", "--batch-check"))
	if err != nil {
		return nil, err
	}
	return &BatchCheck{c: c}, nil
}

func newBatchCheck(w io.Writer, r io.Reader, closeFn func()) *BatchCheck {
	return &BatchCheck{c: newCommunicator("cat-file --batch-check", w, r, closeFn)}
}

// Info returns the type and size of the object, (nil, false, nil) if it doesn't exist
func (b *BatchCheck) Info(id string) (*object.ObjectInfo, bool, error) {
	b.c.mu.Lock()
	defer b.c.mu.Unlock()

	info, missing, err := b.c.query(id)
	if err != nil {
		return nil, false, err
	} else if missing {
		return nil, false, nil
	}
	return info, true, nil
}

// Close stops the process, it is safe to call it more than once
func (b *BatchCheck) Close() {
	b.c.close()
}
