// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package object

import (
	"fmt"

	"code.gitea.io/gitobject/modules/git/header"
	"code.gitea.io/gitobject/modules/util"
)

// ErrUnknownType is returned when the object store reports a type without a decoder
type ErrUnknownType struct {
	ID   string
	Type string
}

// IsErrUnknownType checks if an error is a ErrUnknownType
func IsErrUnknownType(err error) bool {
	_, ok := err.(ErrUnknownType)
	return ok
}

func (err ErrUnknownType) Error() string {
	return fmt.Sprintf("unknown object type [id: %s, type: %q]", err.ID, err.Type)
}

func (err ErrUnknownType) Unwrap() error {
	return util.ErrInvalidArgument
}

// ErrMalformedHeader is returned when a commit or tag header line can't be decoded
type ErrMalformedHeader struct {
	ID   string
	Type Type
	Err  header.ErrMalformedHeader
}

// IsErrMalformedHeader checks if an error is a ErrMalformedHeader
func IsErrMalformedHeader(err error) bool {
	_, ok := err.(ErrMalformedHeader)
	return ok
}

func (err ErrMalformedHeader) Error() string {
	return fmt.Sprintf("malformed %s object [id: %s]: %v", err.Type, err.ID, err.Err)
}

func (err ErrMalformedHeader) Unwrap() error {
	return err.Err
}

// ErrMalformedObject is returned when a payload can't be decoded for any other reason
type ErrMalformedObject struct {
	ID     string
	Type   Type
	Reason string
}

// IsErrMalformedObject checks if an error is a ErrMalformedObject
func IsErrMalformedObject(err error) bool {
	_, ok := err.(ErrMalformedObject)
	return ok
}

func (err ErrMalformedObject) Error() string {
	return fmt.Sprintf("malformed %s object [id: %s]: %s", err.Type, err.ID, err.Reason)
}

func (err ErrMalformedObject) Unwrap() error {
	return util.ErrInvalidArgument
}

func parseHeader(id string, t Type, content []byte) (*header.Header, error) {
	h, err := header.Parse(content)
	if err != nil {
		if malformed, ok := err.(header.ErrMalformedHeader); ok {
			return nil, ErrMalformedHeader{ID: id, Type: t, Err: malformed}
		}
		return nil, err
	}
	return h, nil
}
