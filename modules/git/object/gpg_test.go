// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package object

import (
	"strings"
	"testing"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/packet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEntity(t *testing.T) *openpgp.Entity {
	entity, err := openpgp.NewEntity("Signer", "", "signer@example.com", &packet.Config{Algorithm: packet.PubKeyAlgoEdDSA})
	require.NoError(t, err)
	return entity
}

func armoredSign(t *testing.T, entity *openpgp.Entity, payload string) string {
	var sb strings.Builder
	require.NoError(t, openpgp.ArmoredDetachSign(&sb, entity, strings.NewReader(payload), nil))
	return strings.TrimRight(sb.String(), "\n")
}

func TestCommitSignature(t *testing.T) {
	entity := newTestEntity(t)

	headers := "tree " + testTreeID + "\n" +
		"parent " + testParent1 + "\n" +
		"author " + testAuthor + "\n" +
		"committer " + testCommitter + "\n"
	message := "signed commit\n"
	payload := headers + "\n" + message
	armored := armoredSign(t, entity, payload)

	content := headers + "gpgsig " + strings.ReplaceAll(armored, "\n", "\n ") + "\n\n" + message
	c, err := DecodeCommit("x", []byte(content))
	require.NoError(t, err)
	assert.Equal(t, armored, c.GPGSig)

	sig := c.Signature()
	require.NotNil(t, sig)
	assert.Equal(t, payload, sig.Payload)
	assert.False(t, sig.IsSSH())

	keyID, err := GPGSignatureKeyID(sig)
	require.NoError(t, err)
	assert.Equal(t, entity.PrimaryKey.KeyIdString(), keyID)

	signer, err := VerifyGPGSignature(sig, openpgp.EntityList{entity})
	require.NoError(t, err)
	assert.Equal(t, entity.PrimaryKey.KeyId, signer.PrimaryKey.KeyId)

	tampered := &ObjectSignature{Signature: sig.Signature, Payload: sig.Payload + "x"}
	_, err = VerifyGPGSignature(tampered, openpgp.EntityList{entity})
	assert.Error(t, err)

	_, err = VerifyGPGSignature(sig, openpgp.EntityList{newTestEntity(t)})
	assert.Error(t, err)
}

func TestUnsignedCommit(t *testing.T) {
	c, err := DecodeCommit("x", []byte("tree "+testTreeID+"\n\nmsg\n"))
	require.NoError(t, err)
	assert.Nil(t, c.Signature())
}

func TestTagSignature(t *testing.T) {
	entity := newTestEntity(t)

	payload := "object " + testParent1 + "\n" +
		"type commit\n" +
		"tag v1.0.0\n" +
		"tagger " + testAuthor + "\n" +
		"\n" +
		"Release v1.0.0\n"
	armored := armoredSign(t, entity, payload) + "\n"

	tag, err := DecodeTag("x", []byte(payload+armored))
	require.NoError(t, err)

	sig := tag.Signature()
	require.NotNil(t, sig)
	assert.Equal(t, payload, sig.Payload)
	assert.Equal(t, armored, sig.Signature)

	signer, err := VerifyGPGSignature(sig, openpgp.EntityList{entity})
	require.NoError(t, err)
	assert.Equal(t, entity.PrimaryKey.KeyIdString(), signer.PrimaryKey.KeyIdString())
}

func TestSSHSignatureIsNotOpenPGP(t *testing.T) {
	sig := &ObjectSignature{Signature: "-----BEGIN SSH SIGNATURE-----\nU1NIU0lH\n-----END SSH SIGNATURE-----", Payload: "p"}
	assert.True(t, sig.IsSSH())
	_, err := GPGSignatureKeyID(sig)
	assert.Error(t, err)
	_, err = VerifyGPGSignature(sig, openpgp.EntityList{})
	assert.Error(t, err)
}
