// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalRecord(t *testing.T) {
	data, err := MarshalRecord(DecodeBlob("e965047ad7c57865823c7d992b1d046ea66edf78", []byte("Hello\n")))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"blob","object":{"id":"e965047ad7c57865823c7d992b1d046ea66edf78","content":"SGVsbG8K"}}`, string(data))

	tree, err := DecodeTree(Sha1ObjectFormat, testTreeID, nil)
	require.NoError(t, err)
	data, err = MarshalRecord(tree)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"tree","object":{"id":"`+testTreeID+`","entries":[]}}`, string(data))

	commit, err := DecodeCommit("c", []byte("tree "+testTreeID+"\nmergetag object a\n type commit\n\nhi\n"))
	require.NoError(t, err)
	data, err = MarshalRecord(commit)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"commit","object":{
		"id":"c","tree":"`+testTreeID+`","parents":[],"author":"","committer":"",
		"mergetag":["object a\ntype commit"],"message":"aGkK"}}`, string(data))
}
