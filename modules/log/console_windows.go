// Copyright 2019 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/sys/windows"
)

// EnableVirtualTerminalProcessing is the console mode to allow ANSI code
// interpretation on the console. See
// https://docs.microsoft.com/en-us/windows/console/setconsolemode
const EnableVirtualTerminalProcessing = 0x0004

func enableVTMode(console windows.Handle) bool {
	mode := uint32(0)
	if err := windows.GetConsoleMode(console, &mode); err != nil {
		return false
	}
	return windows.SetConsoleMode(console, mode|EnableVirtualTerminalProcessing) == nil
}

func canColorConsole(f *os.File) bool {
	if isatty.IsTerminal(f.Fd()) {
		return enableVTMode(windows.Handle(f.Fd()))
	}
	return isatty.IsCygwinTerminal(f.Fd())
}
