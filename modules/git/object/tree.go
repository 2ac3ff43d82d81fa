// Copyright 2015 The Gogs Authors. All rights reserved.
// Copyright 2019 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package object

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// TreeEntry the leaf in the git tree.
// Mode is kept as written in the tree object, use EntryMode to interpret it.
type TreeEntry struct {
	Mode string `json:"mode"`
	Name string `json:"name"`
	ID   string `json:"id"`
}

// EntryMode parses the mode of the entry
func (te *TreeEntry) EntryMode() (EntryMode, error) {
	return ParseEntryMode(te.Mode)
}

// IsDir if the entry is a sub dir
func (te *TreeEntry) IsDir() bool {
	mode, err := te.EntryMode()
	return err == nil && mode.IsDir()
}

// IsSubModule if the entry is a sub module
func (te *TreeEntry) IsSubModule() bool {
	mode, err := te.EntryMode()
	return err == nil && mode.IsSubModule()
}

// IsLink if the entry is a symlink
func (te *TreeEntry) IsLink() bool {
	mode, err := te.EntryMode()
	return err == nil && mode.IsLink()
}

// IsRegular if the entry is a regular file
func (te *TreeEntry) IsRegular() bool {
	mode, err := te.EntryMode()
	return err == nil && mode.IsRegular()
}

// IsExecutable if the entry is an executable file
func (te *TreeEntry) IsExecutable() bool {
	mode, err := te.EntryMode()
	return err == nil && mode.IsExecutable()
}

// Encode writes the entry in tree object form: "<mode> <name>\x00<raw id>"
func (te *TreeEntry) Encode(format ObjectFormat) ([]byte, error) {
	raw, err := hex.DecodeString(te.ID)
	if err != nil || len(raw) != format.RawLength() {
		return nil, fmt.Errorf("invalid %s id %q for entry %q", format.Name(), te.ID, te.Name)
	}
	buf := make([]byte, 0, len(te.Mode)+len(te.Name)+2+len(raw))
	buf = append(buf, te.Mode...)
	buf = append(buf, ' ')
	buf = append(buf, te.Name...)
	buf = append(buf, 0)
	buf = append(buf, raw...)
	return buf, nil
}

// Tree represents a flat directory listing.
// Entries are in the order they were stored, the decoder never sorts them.
type Tree struct {
	ID      string      `json:"id"`
	Entries []TreeEntry `json:"entries"`
}

func (t *Tree) GetID() string { return t.ID }
func (t *Tree) Type() Type    { return TypeTree }
func (t *Tree) isRecord()     {}

// Encode re-serializes the tree entries in their stored order
func (t *Tree) Encode(format ObjectFormat) ([]byte, error) {
	var buf bytes.Buffer
	for i := range t.Entries {
		b, err := t.Entries[i].Encode(format)
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	return buf.Bytes(), nil
}

// DecodeTree decodes the payload of a tree object.
// Each entry is "<octal mode> <name>\x00<raw id>", repeated to the end of the content.
func DecodeTree(format ObjectFormat, id string, content []byte) (*Tree, error) {
	tree := &Tree{ID: id, Entries: []TreeEntry{}}
	rawLength := format.RawLength()

	malformed := func(offset int, reason string) error {
		return ErrMalformedObject{ID: id, Type: TypeTree, Reason: fmt.Sprintf("%s at offset %d", reason, offset)}
	}

	pos := 0
	for pos < len(content) {
		start := pos

		spacePos := bytes.IndexByte(content[pos:], ' ')
		if spacePos < 0 {
			return nil, malformed(start, "truncated entry mode")
		}
		mode := content[pos : pos+spacePos]
		if len(mode) == 0 {
			return nil, malformed(start, "empty entry mode")
		}
		// any ASCII digits, the mode is kept verbatim and interpreted by ParseEntryMode
		for _, c := range mode {
			if c < '0' || c > '9' {
				return nil, malformed(start, "invalid entry mode")
			}
		}
		pos += spacePos + 1

		nulPos := bytes.IndexByte(content[pos:], 0)
		if nulPos < 0 {
			return nil, malformed(start, "truncated entry name")
		}
		name := content[pos : pos+nulPos]
		pos += nulPos + 1

		if len(content)-pos < rawLength {
			return nil, malformed(start, "truncated entry id")
		}
		entryID := hex.EncodeToString(content[pos : pos+rawLength])
		pos += rawLength

		tree.Entries = append(tree.Entries, TreeEntry{
			Mode: string(mode),
			Name: string(name),
			ID:   entryID,
		})
	}
	return tree, nil
}
