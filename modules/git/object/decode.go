// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package object

// Decode dispatches a raw object to the decoder of its type
func Decode(format ObjectFormat, raw *RawObject) (Record, error) {
	t, ok := ParseType(raw.Type)
	if !ok {
		return nil, ErrUnknownType{ID: raw.ID, Type: raw.Type}
	}

	switch t {
	case TypeCommit:
		return DecodeCommit(raw.ID, raw.Content)
	case TypeTree:
		return DecodeTree(format, raw.ID, raw.Content)
	case TypeBlob:
		return DecodeBlob(raw.ID, raw.Content), nil
	case TypeTag:
		return DecodeTag(raw.ID, raw.Content)
	default:
		return nil, ErrUnknownType{ID: raw.ID, Type: raw.Type}
	}
}

// ComputeID returns the id the object store would assign to the content
func ComputeID(format ObjectFormat, t Type, content []byte) string {
	return format.ComputeHash(t, content)
}
