// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package object

// Blob represents a git blob, the content is never interpreted
type Blob struct {
	ID      string `json:"id"`
	Content []byte `json:"content"`
}

func (b *Blob) GetID() string { return b.ID }
func (b *Blob) Type() Type    { return TypeBlob }
func (b *Blob) isRecord()     {}

// Size returns the length of the blob content
func (b *Blob) Size() int64 {
	return int64(len(b.Content))
}

// DecodeBlob wraps content as it is
func DecodeBlob(id string, content []byte) *Blob {
	return &Blob{ID: id, Content: content}
}
