// Copyright 2021 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package util

import (
	"bytes"
	"errors"
	"io"
	"math"
)

// maxPreallocSize bounds the buffer allocated before any byte of a sized read arrives
const maxPreallocSize = 1 << 20

// ReadExactly reads exactly size bytes from r.
// The buffer grows with the data actually read, so a bogus size fails as a short read
// (io.ErrUnexpectedEOF) instead of one huge allocation. It returns the bytes read so far
// together with the error.
func ReadExactly(r io.Reader, size int64) ([]byte, error) {
	if size < 0 || uint64(size) > math.MaxInt {
		return nil, NewInvalidArgumentErrorf("invalid read size %d", size)
	}
	buf := bytes.NewBuffer(make([]byte, 0, min(size, maxPreallocSize)))
	n, err := io.CopyN(buf, r, size)
	if n < size && (err == nil || errors.Is(err, io.EOF)) {
		err = io.ErrUnexpectedEOF
	}
	return buf.Bytes(), err
}
