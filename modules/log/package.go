// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package log provides logging capabilities for the object reader.
// Concepts:
//
// * Logger: a Logger provides leveled, printf-style logging functions
//
// * LoggerImpl: the default Logger, it formats each Event with the configured Flags
//   and writes it to a single io.Writer (stderr by default)
//
// * WriterMode: the common options for the writer, eg: level, flags, prefix, colorize.
//
// Call graph:
// -> log.Info()
// -> LoggerImpl.Log()
// -> newEvent, the caller information is resolved here
// -> LoggerImpl.writeEvent formats the event and writes it under the lock
package log
