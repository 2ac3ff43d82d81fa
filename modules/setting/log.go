// Copyright 2019 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"code.gitea.io/gitobject/modules/log"
)

// Log settings
var Log = struct {
	Level    log.Level
	Flags    log.Flags
	Prefix   string
	Colorize bool
}{
	Level:    log.INFO,
	Flags:    log.FlagsFromBits(log.LstdFlags),
	Colorize: log.CanColorStderr,
}

func loadLogFrom(rootCfg ConfigProvider) {
	sec := rootCfg.Section("log")
	Log.Level = log.LevelFromString(sec.Key("LEVEL").MustString("Info"))
	Log.Flags = log.FlagsFromString(sec.Key("FLAGS").MustString("stdflags"))
	Log.Prefix = sec.Key("PREFIX").MustString("")
	Log.Colorize = sec.Key("COLORIZE").MustBool(log.CanColorStderr)

	log.GetLogger().SetMode(log.WriterMode{
		Level:    Log.Level,
		Prefix:   Log.Prefix,
		Colorize: Log.Colorize,
		Flags:    Log.Flags,
	})
}
