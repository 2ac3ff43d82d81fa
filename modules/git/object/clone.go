// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package object

import (
	"bytes"
	"slices"
)

// Clone returns a deep copy of the commit
func (c *Commit) Clone() Record {
	clone := *c
	clone.Parents = slices.Clone(c.Parents)
	clone.MergeTags = slices.Clone(c.MergeTags)
	clone.ExtraHeaders = slices.Clone(c.ExtraHeaders)
	clone.Message = bytes.Clone(c.Message)
	clone.fields = slices.Clone(c.fields)
	return &clone
}

// Clone returns a deep copy of the tree
func (t *Tree) Clone() Record {
	return &Tree{ID: t.ID, Entries: slices.Clone(t.Entries)}
}

// Clone returns a deep copy of the blob
func (b *Blob) Clone() Record {
	return &Blob{ID: b.ID, Content: bytes.Clone(b.Content)}
}

// Clone returns a deep copy of the tag
func (t *Tag) Clone() Record {
	clone := *t
	clone.ExtraHeaders = slices.Clone(t.ExtraHeaders)
	clone.Message = bytes.Clone(t.Message)
	clone.fields = slices.Clone(t.fields)
	return &clone
}
