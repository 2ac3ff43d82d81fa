// Copyright 2019 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package charset

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const latin1Text = "Les na\xefves caf\xe9s de l'\xe9t\xe9 sont d\xe9licieux et tr\xe8s appr\xe9ci\xe9s."

func TestMaybeRemoveBOM(t *testing.T) {
	res := MaybeRemoveBOM([]byte{}, ConvertOpts{})
	assert.Equal(t, []byte{}, res)

	res = MaybeRemoveBOM([]byte{0xef, 0xbb, 0xbf}, ConvertOpts{})
	assert.Equal(t, []byte{}, res)

	res = MaybeRemoveBOM([]byte{0xef, 0xbb, 0xbf, 0x2a}, ConvertOpts{KeepBOM: true})
	assert.Equal(t, []byte{0xef, 0xbb, 0xbf, 0x2a}, res)

	res = MaybeRemoveBOM([]byte{0xef, 0xbb, 0xbf, 0x2a, 0xe5}, ConvertOpts{})
	assert.Equal(t, []byte{0x2a, 0xe5}, res)
}

func TestDetectEncoding(t *testing.T) {
	enc, err := DetectEncoding([]byte("plain ascii"))
	require.NoError(t, err)
	assert.Equal(t, "UTF-8", enc)

	// truncated multi-byte character at the end is still utf-8
	enc, err = DetectEncoding([]byte("\xe2\x9b\x94 ok \xe2\x9b"))
	require.NoError(t, err)
	assert.Equal(t, "UTF-8", enc)

	enc, err = DetectEncoding([]byte(latin1Text))
	require.NoError(t, err)
	assert.NotEqual(t, "UTF-8", enc)
}

func TestToUTF8(t *testing.T) {
	res, err := ToUTF8([]byte{0xef, 0xbb, 0xbf, 'a', 'b'}, ConvertOpts{})
	require.NoError(t, err)
	assert.Equal(t, "ab", res)

	res, err = ToUTF8([]byte(latin1Text), ConvertOpts{})
	require.NoError(t, err)
	assert.True(t, utf8.ValidString(res))
	assert.True(t, strings.HasPrefix(res, "Les na"))
}

func TestToUTF8WithLabel(t *testing.T) {
	assert.Equal(t, "café", ToUTF8WithLabel([]byte("caf\xe9"), "ISO-8859-1"))
	assert.Equal(t, "café", ToUTF8WithLabel([]byte("caf\xe9"), " latin1 "))
	assert.Equal(t, "été", ToUTF8WithLabel([]byte("\xc3\xa9t\xc3\xa9"), ""))
	assert.Equal(t, "été", ToUTF8WithLabel([]byte("\xc3\xa9t\xc3\xa9"), "UTF-8"))
	assert.Equal(t, "Привет", ToUTF8WithLabel([]byte{0xcf, 0xf0, 0xe8, 0xe2, 0xe5, 0xf2}, "windows-1251"))

	// an unknown label falls back to detection
	assert.Equal(t, "plain", ToUTF8WithLabel([]byte("plain"), "no-such-charset"))
}
