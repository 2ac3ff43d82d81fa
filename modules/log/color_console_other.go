// Copyright 2022 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build !windows

package log

import (
	"os"

	"github.com/mattn/go-isatty"
)

// canColorConsole reports if escape sequences written to f reach a terminal.
// Piped output or a service journal would only show them as noise.
func canColorConsole(f *os.File) bool {
	return isatty.IsTerminal(f.Fd())
}
