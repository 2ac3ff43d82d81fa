// Copyright 2015 The Gogs Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package git

import (
	"fmt"

	"code.gitea.io/gitobject/modules/git/object"
	"code.gitea.io/gitobject/modules/util"
)

// ErrNotExist object not exist error
type ErrNotExist struct {
	ID string
}

// IsErrNotExist if some error is ErrNotExist
func IsErrNotExist(err error) bool {
	_, ok := err.(ErrNotExist)
	return ok
}

func (err ErrNotExist) Error() string {
	return fmt.Sprintf("object does not exist [id: %s]", err.ID)
}

func (err ErrNotExist) Unwrap() error {
	return util.ErrNotExist
}

// ErrObjectType is returned when an object exists but is of another type than requested
type ErrObjectType struct {
	ID       string
	Expected object.Type
	Actual   object.Type
}

// IsErrObjectType if some error is ErrObjectType
func IsErrObjectType(err error) bool {
	_, ok := err.(ErrObjectType)
	return ok
}

func (err ErrObjectType) Error() string {
	return fmt.Sprintf("object is not a %s [id: %s, type: %s]", err.Expected, err.ID, err.Actual)
}

func (err ErrObjectType) Unwrap() error {
	return util.ErrInvalidArgument
}
