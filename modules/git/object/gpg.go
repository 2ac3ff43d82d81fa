// Copyright 2021 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package object

import (
	"bytes"
	"fmt"
	"strings"

	"code.gitea.io/gitobject/modules/git/header"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/armor"
	"github.com/ProtonMail/go-crypto/openpgp/packet"
)

// ObjectSignature represents a detached signature of a commit or a tag,
// together with the exact bytes that were signed
type ObjectSignature struct {
	Signature string
	Payload   string
}

const (
	beginPGPSignature = "-----BEGIN PGP SIGNATURE-----"
	beginSSHSignature = "-----BEGIN SSH SIGNATURE-----"
)

// Signature returns the gpgsig of the commit and the signed payload,
// nil if the commit is not signed
func (c *Commit) Signature() *ObjectSignature {
	if c.GPGSig == "" {
		return nil
	}
	payloadFields := make([]header.Field, 0, len(c.fields))
	removed := false
	for _, f := range c.fields {
		if !removed && f.Key == "gpgsig" {
			removed = true
			continue
		}
		payloadFields = append(payloadFields, f)
	}
	return &ObjectSignature{
		Signature: c.GPGSig,
		Payload:   string(header.Encode(payloadFields, c.Message)),
	}
}

// Signature returns the signature block appended to the tag message and the signed payload,
// nil if the tag is not signed
func (t *Tag) Signature() *ObjectSignature {
	idx := bytes.LastIndex(t.Message, []byte(beginPGPSignature))
	if sshIdx := bytes.LastIndex(t.Message, []byte(beginSSHSignature)); sshIdx > idx {
		idx = sshIdx
	}
	if idx < 0 || (idx > 0 && t.Message[idx-1] != '\n') {
		return nil
	}
	return &ObjectSignature{
		Signature: string(t.Message[idx:]),
		Payload:   string(header.Encode(t.fields, t.Message[:idx])),
	}
}

// IsSSH returns true if the signature is an ssh signature rather than an openpgp one
func (s *ObjectSignature) IsSSH() bool {
	return strings.HasPrefix(s.Signature, beginSSHSignature)
}

// readArmoredSign read an armored signature block with the given type.
func readArmoredSign(s string) (*packet.Signature, error) {
	block, err := armor.Decode(strings.NewReader(s))
	if err != nil {
		return nil, fmt.Errorf("failed to read signature armor: %w", err)
	}
	if block.Type != openpgp.SignatureType {
		return nil, fmt.Errorf("expected '%s', got: %s", openpgp.SignatureType, block.Type)
	}
	p, err := packet.Read(block.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read signature packet: %w", err)
	}
	sig, ok := p.(*packet.Signature)
	if !ok {
		return nil, fmt.Errorf("packet is not a signature")
	}
	return sig, nil
}

// GPGSignatureKeyID returns the issuer key id of an armored openpgp signature,
// formatted as 16 upper case hex digits like openpgp's KeyIdString
func GPGSignatureKeyID(sig *ObjectSignature) (string, error) {
	if sig.IsSSH() {
		return "", fmt.Errorf("not an openpgp signature")
	}
	s, err := readArmoredSign(sig.Signature)
	if err != nil {
		return "", err
	}
	if s.IssuerKeyId == nil {
		return "", fmt.Errorf("signature has no issuer key id")
	}
	return fmt.Sprintf("%016X", *s.IssuerKeyId), nil
}

// VerifyGPGSignature checks the signature against the payload with the given keyring.
// It returns the entity which made the signature.
func VerifyGPGSignature(sig *ObjectSignature, keyring openpgp.KeyRing) (*openpgp.Entity, error) {
	if sig.IsSSH() {
		return nil, fmt.Errorf("not an openpgp signature")
	}
	return openpgp.CheckArmoredDetachedSignature(keyring, strings.NewReader(sig.Payload), strings.NewReader(sig.Signature), nil)
}
