// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package object

// Record is a decoded object: one of *Commit, *Tree, *Blob or *Tag.
// Records are never modified after decoding, Clone gives a copy that the caller may change.
type Record interface {
	GetID() string
	Type() Type
	Clone() Record

	isRecord()
}

var (
	_ Record = (*Commit)(nil)
	_ Record = (*Tree)(nil)
	_ Record = (*Blob)(nil)
	_ Record = (*Tag)(nil)
)
