// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package catfile

import (
	"context"
	"fmt"
	"io"

	"code.gitea.io/gitobject/modules/git/gitcmd"
	"code.gitea.io/gitobject/modules/git/object"
	"code.gitea.io/gitobject/modules/util"
)

// Batch reads object payloads through one "git cat-file --batch" process
type Batch struct {
	c *communicator
}

// NewBatch starts "git cat-file --batch" in the repository.
// The caller must Close the batch to release the process.
func NewBatch(ctx context.Context, repoPath string) (*Batch, error) {
	c, err := startCommunicator(ctx, repoPath, gitcmd.NewCommand("cat-file", "--batch"))
	if err != nil {
		return nil, err
	}
	return &Batch{c: c}, nil
}

// newBatch creates a batch over an existing request writer and response reader
func newBatch(w io.Writer, r io.Reader, closeFn func()) *Batch {
	return &Batch{c: newCommunicator("cat-file --batch", w, r, closeFn)}
}

// Get reads the object with the given id.
// An unknown id returns (nil, false, nil). A framing problem returns ErrTransportCorruption
// and leaves the batch broken.
func (b *Batch) Get(id string) (*object.RawObject, bool, error) {
	b.c.mu.Lock()
	defer b.c.mu.Unlock()

	info, missing, err := b.c.query(id)
	if err != nil {
		return nil, false, err
	} else if missing {
		return nil, false, nil
	}

	content, err := util.ReadExactly(b.c.respReader, info.Size)
	if err != nil {
		return nil, false, b.c.corrupt(ErrTransportCorruption{ID: id, Want: info.Size, Got: int64(len(content)), Err: err})
	}

	terminator, err := b.c.respReader.ReadByte()
	if err != nil {
		return nil, false, b.c.corrupt(ErrTransportCorruption{ID: id, Want: info.Size, Got: info.Size, Err: err})
	} else if terminator != '\n' {
		return nil, false, b.c.corrupt(ErrTransportCorruption{
			ID:   id,
			Want: info.Size,
			Got:  info.Size + 1,
			Err:  fmt.Errorf("unexpected payload terminator %q", terminator),
		})
	}

	return &object.RawObject{ObjectInfo: *info, Content: content}, true, nil
}

// Close stops the process, it is safe to call it more than once
func (b *Batch) Close() {
	b.c.close()
}
