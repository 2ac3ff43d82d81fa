// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package header decodes the "key SP value LF" header block shared by commit and tag objects.
//
// A value may span several lines: every following line that starts with a single space
// continues the value of the field right before it. Continuations are joined back with LF,
// so a folded gpgsig or mergetag block is returned as one multi-line value.
// The first empty line ends the header, everything after it is the message.
package header

import (
	"bytes"
	"fmt"
	"strings"

	"code.gitea.io/gitobject/modules/util"
)

// Field is a single header entry, keys are not unique within a header
type Field struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Header is the ordered list of fields plus the raw message following the header
type Header struct {
	Fields  []Field
	Message []byte
}

// ErrMalformedHeader is returned when a header line is neither "key value" nor a continuation
type ErrMalformedHeader struct {
	LineNo int
	Line   string
}

func (err ErrMalformedHeader) Error() string {
	return fmt.Sprintf("malformed header line %d: %q", err.LineNo, err.Line)
}

func (err ErrMalformedHeader) Unwrap() error {
	return util.ErrInvalidArgument
}

// IsErrMalformedHeader checks if an error is a ErrMalformedHeader
func IsErrMalformedHeader(err error) bool {
	_, ok := err.(ErrMalformedHeader)
	return ok
}

// Parse splits data into header fields and message.
// The returned Message aliases nothing in data, it is safe to keep after data is reused.
func Parse(data []byte) (*Header, error) {
	h := &Header{}
	rest := data
	for lineNo := 1; len(rest) > 0; lineNo++ {
		var line []byte
		if idx := bytes.IndexByte(rest, '\n'); idx >= 0 {
			line, rest = rest[:idx], rest[idx+1:]
		} else {
			line, rest = rest, nil
		}

		if len(line) == 0 {
			h.Message = bytes.Clone(rest)
			break
		}

		if line[0] == ' ' {
			if len(h.Fields) == 0 {
				return nil, ErrMalformedHeader{LineNo: lineNo, Line: string(line)}
			}
			last := &h.Fields[len(h.Fields)-1]
			last.Value += "\n" + string(line[1:])
			continue
		}

		key, value, ok := bytes.Cut(line, []byte{' '})
		if !ok || len(key) == 0 {
			return nil, ErrMalformedHeader{LineNo: lineNo, Line: string(line)}
		}
		h.Fields = append(h.Fields, Field{Key: string(key), Value: string(value)})
	}
	if h.Message == nil {
		h.Message = []byte{}
	}
	return h, nil
}

// First returns the value of the first field with the given key
func (h *Header) First(key string) (string, bool) {
	for _, f := range h.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// All returns the values of every field with the given key, in order
func (h *Header) All(key string) []string {
	var values []string
	for _, f := range h.Fields {
		if f.Key == key {
			values = append(values, f.Value)
		}
	}
	return values
}

// Encode folds fields back into header lines, followed by an empty line and the message.
// Encode(Parse(b)) reproduces b for any object git writes.
func Encode(fields []Field, message []byte) []byte {
	var buf bytes.Buffer
	for _, f := range fields {
		buf.WriteString(f.Key)
		buf.WriteByte(' ')
		buf.WriteString(strings.ReplaceAll(f.Value, "\n", "\n "))
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')
	buf.Write(message)
	return buf.Bytes()
}
