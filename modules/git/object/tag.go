// Copyright 2015 The Gogs Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package object

import (
	"code.gitea.io/gitobject/modules/git/header"
)

// Tag represents an annotated tag object
type Tag struct {
	ID     string `json:"id"`
	Object string `json:"object"`
	// ObjectType is the raw value of the "type" header, the kind of the tagged object
	ObjectType string `json:"type"`
	Tag        string `json:"tag"`
	// Tagger is empty if the header is absent, as in some very old tags
	Tagger       string         `json:"tagger,omitempty"`
	ExtraHeaders []header.Field `json:"extra_headers,omitempty"`
	Message      []byte         `json:"message"`

	fields []header.Field
}

func (t *Tag) GetID() string { return t.ID }
func (t *Tag) Type() Type    { return TypeTag }
func (t *Tag) isRecord()     {}

// DecodeTag decodes the payload of an annotated tag object
func DecodeTag(id string, content []byte) (*Tag, error) {
	h, err := parseHeader(id, TypeTag, content)
	if err != nil {
		return nil, err
	}

	tag := &Tag{ID: id, Message: h.Message, fields: h.Fields}
	seen := make(map[string]bool, 4)
	for _, f := range h.Fields {
		var dst *string
		switch f.Key {
		case "object":
			dst = &tag.Object
		case "type":
			dst = &tag.ObjectType
		case "tag":
			dst = &tag.Tag
		case "tagger":
			dst = &tag.Tagger
		default:
			tag.ExtraHeaders = append(tag.ExtraHeaders, f)
			continue
		}
		if !seen[f.Key] {
			seen[f.Key] = true
			*dst = f.Value
		}
	}

	for _, required := range []string{"object", "type", "tag"} {
		if !seen[required] {
			return nil, ErrMalformedObject{ID: id, Type: TypeTag, Reason: "missing " + required + " header"}
		}
	}
	return tag, nil
}

// TaggerSignature parses the tagger header, nil if the tag has no tagger
func (t *Tag) TaggerSignature() (*Signature, error) {
	if t.Tagger == "" {
		return nil, nil
	}
	return ParseSignature(t.Tagger)
}
