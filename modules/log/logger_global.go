// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import (
	"fmt"
	"os"
)

var defaultLogger = newDefaultLogger()

// GetLogger returns the default logger
func GetLogger() *LoggerImpl {
	return defaultLogger
}

// GetLevel returns the minimal level of the default logger
func GetLevel() Level {
	return defaultLogger.GetLevel()
}

// IsTrace returns true if at least one logger is TRACE
func IsTrace() bool {
	return GetLevel() <= TRACE
}

// IsDebug returns true if at least one logger is DEBUG
func IsDebug() bool {
	return GetLevel() <= DEBUG
}

func Trace(format string, v ...any) {
	Log(1, TRACE, format, v...)
}

func Debug(format string, v ...any) {
	Log(1, DEBUG, format, v...)
}

func Info(format string, v ...any) {
	Log(1, INFO, format, v...)
}

func Warn(format string, v ...any) {
	Log(1, WARN, format, v...)
}

func Error(format string, v ...any) {
	Log(1, ERROR, format, v...)
}

func Critical(format string, v ...any) {
	Log(1, ERROR, format, v...)
}

// Fatal records fatal log and exit process
func Fatal(format string, v ...any) {
	Log(1, FATAL, format, v...)
	if !defaultLogger.LevelEnabled(FATAL) {
		_, _ = fmt.Fprintf(os.Stderr, format+"\n", v...)
	}
	os.Exit(1)
}

// Log logs a message with the default logger, skip is the number of extra frames to skip
func Log(skip int, level Level, format string, v ...any) {
	defaultLogger.Log(skip+1, level, format, v...)
}
