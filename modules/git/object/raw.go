// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package object

// ObjectInfo is the response header of the object store for one object
type ObjectInfo struct {
	ID   string
	Type string
	Size int64
}

// RawObject is one framed payload read from the object store.
// Content always holds exactly Size bytes, the sources reject anything else.
type RawObject struct {
	ObjectInfo
	Content []byte
}
