// Copyright 2019 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import (
	"strings"
)

// Level is the severity of a log event
type Level int

const (
	UNDEFINED Level = iota
	TRACE
	DEBUG
	INFO
	WARN
	ERROR
	FATAL
	NONE
)

const CRITICAL = ERROR // nothing in the reader needs a level between ERROR and FATAL

var levelNames = [...]string{
	UNDEFINED: "undefined",
	TRACE:     "trace",
	DEBUG:     "debug",
	INFO:      "info",
	WARN:      "warn",
	ERROR:     "error",
	FATAL:     "fatal",
	NONE:      "none",
}

func (l Level) String() string {
	if l < UNDEFINED || l > NONE {
		return "info"
	}
	return levelNames[l]
}

// ColorAttributes returns the SGR attributes used to highlight this level
func (l Level) ColorAttributes() []ColorAttribute {
	switch l {
	case TRACE:
		return []ColorAttribute{Bold, FgCyan}
	case DEBUG:
		return []ColorAttribute{Bold, FgBlue}
	case INFO:
		return []ColorAttribute{Bold, FgGreen}
	case WARN:
		return []ColorAttribute{Bold, FgYellow}
	case ERROR:
		return []ColorAttribute{Bold, FgRed}
	case FATAL:
		return []ColorAttribute{Bold, BgRed}
	}
	return []ColorAttribute{Reset}
}

// MarshalText implements encoding.TextMarshaler, it is used by JSON and INI
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, unknown names become INFO
func (l *Level) UnmarshalText(b []byte) error {
	*l = LevelFromString(string(b))
	return nil
}

// LevelFromString takes a level string and returns a Level
func LevelFromString(level string) Level {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "warning" {
		return WARN
	}
	for l, name := range levelNames {
		if name == level {
			return Level(l)
		}
	}
	return INFO
}
