// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package object

import (
	"code.gitea.io/gitobject/modules/json"
)

type recordEnvelope struct {
	Type   Type   `json:"type"`
	Object Record `json:"object"`
}

// MarshalRecord marshals a record as {"type": "<kind>", "object": {...}}
func MarshalRecord(rec Record) ([]byte, error) {
	return json.Marshal(recordEnvelope{Type: rec.Type(), Object: rec})
}
