// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package object

// Type is the kind of an object reported by the object store
type Type uint8

const (
	TypeCommit Type = iota + 1
	TypeTree
	TypeBlob
	TypeTag
)

var typeNames = [...]string{
	TypeCommit: "commit",
	TypeTree:   "tree",
	TypeBlob:   "blob",
	TypeTag:    "tag",
}

func (t Type) String() string {
	if t >= TypeCommit && t <= TypeTag {
		return typeNames[t]
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// ParseType converts the type name from the object store to a Type.
// This is the only place where an unknown type can appear.
func ParseType(name string) (Type, bool) {
	switch name {
	case "commit":
		return TypeCommit, true
	case "tree":
		return TypeTree, true
	case "blob":
		return TypeBlob, true
	case "tag":
		return TypeTag, true
	}
	return 0, false
}
