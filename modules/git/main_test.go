// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package git

import (
	"context"
	"fmt"
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	if err := InitSimple(context.Background()); err != nil {
		// tests which need the git binary skip themselves
		_, _ = fmt.Fprintf(os.Stderr, "git is not usable: %v\n", err)
	}
	os.Exit(m.Run())
}
