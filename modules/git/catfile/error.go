// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package catfile

import (
	"errors"
	"fmt"
)

// ErrClosed is returned by queries on a closed batch
var ErrClosed = errors.New("cat-file batch is closed")

// ErrTransportCorruption is returned when the response stream of the object store
// no longer matches the framing: a short payload, a missing terminator or a dead process.
// The batch which returned it is unusable afterwards.
type ErrTransportCorruption struct {
	ID   string
	Want int64
	Got  int64
	Err  error
}

// IsErrTransportCorruption checks if an error is a ErrTransportCorruption
func IsErrTransportCorruption(err error) bool {
	var corruption ErrTransportCorruption
	return errors.As(err, &corruption)
}

func (err ErrTransportCorruption) Error() string {
	return fmt.Sprintf("cat-file transport corrupted [id: %s, want: %d, got: %d]: %v", err.ID, err.Want, err.Got, err.Err)
}

func (err ErrTransportCorruption) Unwrap() error {
	return err.Err
}

// ErrProtocol is returned when a response header line has an unexpected shape
type ErrProtocol struct {
	Line string
}

// IsErrProtocol checks if an error is a ErrProtocol
func IsErrProtocol(err error) bool {
	var protocol ErrProtocol
	return errors.As(err, &protocol)
}

func (err ErrProtocol) Error() string {
	return fmt.Sprintf("unexpected cat-file response: %q", err.Line)
}
