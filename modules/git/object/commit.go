// Copyright 2015 The Gogs Authors. All rights reserved.
// Copyright 2018 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package object

import (
	"strings"

	"code.gitea.io/gitobject/modules/charset"
	"code.gitea.io/gitobject/modules/git/header"
)

// Commit represents a git commit.
// Author, Committer and the other header values are kept as raw header values,
// use AuthorSignature or CommitterSignature to parse them.
type Commit struct {
	ID        string   `json:"id"`
	Tree      string   `json:"tree"`
	Parents   []string `json:"parents"`
	Author    string   `json:"author"`
	Committer string   `json:"committer"`
	// Encoding is the value of the "encoding" header, empty if the header is absent
	Encoding string `json:"encoding,omitempty"`
	// GPGSig is the unfolded signature block, empty if the commit is not signed
	GPGSig string `json:"gpgsig,omitempty"`
	// MergeTags holds one unfolded tag object per "mergetag" header, in order
	MergeTags    []string       `json:"mergetag"`
	ExtraHeaders []header.Field `json:"extra_headers,omitempty"`
	Message      []byte         `json:"message"`

	// fields keeps every header in stored order to rebuild the signed payload
	fields []header.Field
}

func (c *Commit) GetID() string { return c.ID }
func (c *Commit) Type() Type    { return TypeCommit }
func (c *Commit) isRecord()     {}

// DecodeCommit decodes the payload of a commit object
func DecodeCommit(id string, content []byte) (*Commit, error) {
	h, err := parseHeader(id, TypeCommit, content)
	if err != nil {
		return nil, err
	}

	commit := &Commit{
		ID:        id,
		Parents:   []string{},
		MergeTags: []string{},
		Message:   h.Message,
		fields:    h.Fields,
	}
	seen := make(map[string]bool, 5)
	first := func(key string) bool {
		if seen[key] {
			return false
		}
		seen[key] = true
		return true
	}
	for _, f := range h.Fields {
		switch f.Key {
		case "tree":
			if first(f.Key) {
				commit.Tree = f.Value
			}
		case "parent":
			commit.Parents = append(commit.Parents, f.Value)
		case "author":
			if first(f.Key) {
				commit.Author = f.Value
			}
		case "committer":
			if first(f.Key) {
				commit.Committer = f.Value
			}
		case "encoding":
			if first(f.Key) {
				commit.Encoding = f.Value
			}
		case "gpgsig":
			if first(f.Key) {
				commit.GPGSig = f.Value
			}
		case "mergetag":
			commit.MergeTags = append(commit.MergeTags, f.Value)
		default:
			commit.ExtraHeaders = append(commit.ExtraHeaders, f)
		}
	}
	if !seen["tree"] {
		return nil, ErrMalformedObject{ID: id, Type: TypeCommit, Reason: "missing tree header"}
	}
	return commit, nil
}

// ParentCount returns number of parents of the commit.
// 0 if this is the root commit,  otherwise 1,2, etc.
func (c *Commit) ParentCount() int {
	return len(c.Parents)
}

// IsMerge returns true if the commit has more than one parent
func (c *Commit) IsMerge() bool {
	return len(c.Parents) > 1
}

// AuthorSignature parses the author header
func (c *Commit) AuthorSignature() (*Signature, error) {
	return ParseSignature(c.Author)
}

// CommitterSignature parses the committer header
func (c *Commit) CommitterSignature() (*Signature, error) {
	return ParseSignature(c.Committer)
}

// MessageUTF8 returns the commit message converted from the declared encoding to UTF-8.
// Without an encoding header the message is assumed to be UTF-8, and detected if it is not valid.
func (c *Commit) MessageUTF8() string {
	return charset.ToUTF8WithLabel(c.Message, c.Encoding)
}

// Summary returns first line of commit message.
// The string is forced to be valid UTF8
func (c *Commit) Summary() string {
	return strings.ToValidUTF8(strings.Split(strings.TrimSpace(c.MessageUTF8()), "\n")[0], "?")
}
