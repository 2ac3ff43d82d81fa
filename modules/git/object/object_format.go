// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package object

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"strconv"
)

// ObjectFormat describes the hash algorithm of a repository
type ObjectFormat interface {
	// Name returns the name of the object format
	Name() string
	// EmptyObjectID returns the all-zero object id
	EmptyObjectID() string
	// EmptyTree is the hash of an empty tree
	EmptyTree() string
	// FullLength is the length of the hash's hex string
	FullLength() int
	// RawLength is the length of the raw hash as stored inside tree objects
	RawLength() int
	// IsValid returns true if the input is a full lowercase hex id of this format
	IsValid(input string) bool
	// ComputeHash computes the object id of an object with the given type and content
	ComputeHash(t Type, content []byte) string

	newHasher() hash.Hash
}

type Sha1ObjectFormatImpl struct{}

var (
	emptySha1ObjectID = "0000000000000000000000000000000000000000"
	emptySha1Tree     = "4b825dc642cb6eb9a060e54bf8d69288fbee4904"
)

func (Sha1ObjectFormatImpl) Name() string { return "sha1" }
func (Sha1ObjectFormatImpl) EmptyObjectID() string {
	return emptySha1ObjectID
}

func (Sha1ObjectFormatImpl) EmptyTree() string {
	return emptySha1Tree
}
func (Sha1ObjectFormatImpl) FullLength() int      { return 40 }
func (Sha1ObjectFormatImpl) RawLength() int       { return 20 }
func (Sha1ObjectFormatImpl) newHasher() hash.Hash { return sha1.New() }

func (h Sha1ObjectFormatImpl) IsValid(input string) bool {
	return isLowerHex(input, h.FullLength())
}

func (h Sha1ObjectFormatImpl) ComputeHash(t Type, content []byte) string {
	return computeHash(h, t, content)
}

type Sha256ObjectFormatImpl struct{}

var (
	emptySha256ObjectID = "0000000000000000000000000000000000000000000000000000000000000000"
	emptySha256Tree     = "6ef19b41225c5369f1c104d45d8d85efa9b057b53b14b4b9b939dd74decc5321"
)

func (Sha256ObjectFormatImpl) Name() string { return "sha256" }
func (Sha256ObjectFormatImpl) EmptyObjectID() string {
	return emptySha256ObjectID
}

func (Sha256ObjectFormatImpl) EmptyTree() string {
	return emptySha256Tree
}
func (Sha256ObjectFormatImpl) FullLength() int      { return 64 }
func (Sha256ObjectFormatImpl) RawLength() int       { return 32 }
func (Sha256ObjectFormatImpl) newHasher() hash.Hash { return sha256.New() }

func (h Sha256ObjectFormatImpl) IsValid(input string) bool {
	return isLowerHex(input, h.FullLength())
}

func (h Sha256ObjectFormatImpl) ComputeHash(t Type, content []byte) string {
	return computeHash(h, t, content)
}

var (
	Sha1ObjectFormat   ObjectFormat = Sha1ObjectFormatImpl{}
	Sha256ObjectFormat ObjectFormat = Sha256ObjectFormatImpl{}
)

// SupportedObjectFormats lists the object formats, the first one is the default
var SupportedObjectFormats = []ObjectFormat{
	Sha1ObjectFormat,
	Sha256ObjectFormat,
}

// ObjectFormatFromName returns the object format with the given name, or nil
func ObjectFormatFromName(name string) ObjectFormat {
	for _, objectFormat := range SupportedObjectFormats {
		if name == objectFormat.Name() {
			return objectFormat
		}
	}
	return nil
}

func isLowerHex(input string, length int) bool {
	if len(input) != length {
		return false
	}
	for i := 0; i < len(input); i++ {
		c := input[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

func computeHash(format ObjectFormat, t Type, content []byte) string {
	hasher := format.newHasher()
	_, _ = hasher.Write([]byte(t.String()))
	_, _ = hasher.Write([]byte{' '})
	_, _ = hasher.Write([]byte(strconv.Itoa(len(content))))
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.Write(content)
	return hex.EncodeToString(hasher.Sum(nil))
}
