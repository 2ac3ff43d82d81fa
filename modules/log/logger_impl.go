// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import (
	"io"
	"os"
	"sync"
	"sync/atomic"
)

// WriterMode is the mode for creating a new LoggerImpl
type WriterMode struct {
	Level    Level
	Prefix   string
	Colorize bool
	Flags    Flags
}

// LoggerImpl writes formatted events to a single writer
type LoggerImpl struct {
	mu    sync.Mutex
	out   io.Writer
	mode  WriterMode
	level atomic.Int32
}

var _ Logger = (*LoggerImpl)(nil)

// NewLoggerWithWriter creates a logger writing to out
func NewLoggerWithWriter(out io.Writer, mode WriterMode) *LoggerImpl {
	l := &LoggerImpl{out: out}
	l.SetMode(mode)
	return l
}

// SetMode replaces the writer mode
func (l *LoggerImpl) SetMode(mode WriterMode) {
	if mode.Level == UNDEFINED {
		mode.Level = INFO
	}
	l.mu.Lock()
	l.mode = mode
	l.mu.Unlock()
	l.level.Store(int32(mode.Level))
}

// SetWriter replaces the output writer
func (l *LoggerImpl) SetWriter(out io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = out
}

// GetLevel returns the minimal level of this logger
func (l *LoggerImpl) GetLevel() Level {
	return Level(l.level.Load())
}

// LevelEnabled checks if the level is enabled
func (l *LoggerImpl) LevelEnabled(level Level) bool {
	return level >= l.GetLevel()
}

// Log prepares the log event, if the level matches, the event will be written
func (l *LoggerImpl) Log(skip int, level Level, format string, v ...any) {
	if !l.LevelEnabled(level) {
		return
	}
	event := newEvent(skip+1, level, format, v...)

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.out.Write(EventFormatText(&l.mode, event))
}

// Trace logs a message with trace level
func (l *LoggerImpl) Trace(format string, v ...any) {
	l.Log(1, TRACE, format, v...)
}

// Debug logs a message with debug level
func (l *LoggerImpl) Debug(format string, v ...any) {
	l.Log(1, DEBUG, format, v...)
}

// Info logs a message with info level
func (l *LoggerImpl) Info(format string, v ...any) {
	l.Log(1, INFO, format, v...)
}

// Warn logs a message with warning level
func (l *LoggerImpl) Warn(format string, v ...any) {
	l.Log(1, WARN, format, v...)
}

// Error logs a message with error level
func (l *LoggerImpl) Error(format string, v ...any) {
	l.Log(1, ERROR, format, v...)
}

// Critical logs a message with critical level
func (l *LoggerImpl) Critical(format string, v ...any) {
	l.Log(1, CRITICAL, format, v...)
}

func newDefaultLogger() *LoggerImpl {
	return NewLoggerWithWriter(os.Stderr, WriterMode{Level: INFO, Colorize: CanColorStderr, Flags: FlagsFromBits(LstdFlags)})
}
