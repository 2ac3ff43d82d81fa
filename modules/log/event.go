// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import (
	"bytes"
	"fmt"
	"runtime"
	"strings"
	"time"
)

// Event represents a logging event
type Event struct {
	Time          time.Time
	Level         Level
	Caller        string
	Filename      string
	Line          int
	MsgSimpleText string
}

func newEvent(skip int, level Level, format string, v ...any) *Event {
	event := &Event{Time: time.Now(), Level: level}
	pc, filename, line, ok := runtime.Caller(skip + 1)
	if ok {
		event.Filename, event.Line = filename, line
		if fn := runtime.FuncForPC(pc); fn != nil {
			event.Caller = fn.Name() + "()"
		}
	}
	for i, arg := range v {
		if s, ok := arg.(LogStringer); ok {
			v[i] = s.LogString()
		}
	}
	if len(v) == 0 {
		event.MsgSimpleText = format
	} else {
		event.MsgSimpleText = fmt.Sprintf(format, v...)
	}
	return event
}

// Copy of cheap integer to fixed-width decimal to ascii from logger.
func itoa(buf []byte, i, wid int) []byte {
	var b [20]byte
	bp := len(b) - 1
	for i >= 10 || wid > 1 {
		wid--
		q := i / 10
		b[bp] = byte('0' + i - q*10)
		bp--
		i = q
	}
	// i < 10
	b[bp] = byte('0' + i)
	return append(buf, b[bp:]...)
}

// EventFormatText formats the event as a single text line (continuation lines are indented)
func EventFormatText(mode *WriterMode, event *Event) []byte {
	flags := mode.Flags.Bits()
	buf := make([]byte, 0, 1024)
	buf = append(buf, mode.Prefix...)
	t := event.Time
	if flags&(Ldate|Ltime|Lmicroseconds) != 0 {
		if mode.Colorize {
			buf = append(buf, fgCyanBytes...)
		}
		if flags&LUTC != 0 {
			t = t.UTC()
		}
		if flags&Ldate != 0 {
			year, month, day := t.Date()
			buf = itoa(buf, year, 4)
			buf = append(buf, '/')
			buf = itoa(buf, int(month), 2)
			buf = append(buf, '/')
			buf = itoa(buf, day, 2)
			buf = append(buf, ' ')
		}
		if flags&(Ltime|Lmicroseconds) != 0 {
			hour, minute, sec := t.Clock()
			buf = itoa(buf, hour, 2)
			buf = append(buf, ':')
			buf = itoa(buf, minute, 2)
			buf = append(buf, ':')
			buf = itoa(buf, sec, 2)
			if flags&Lmicroseconds != 0 {
				buf = append(buf, '.')
				buf = itoa(buf, t.Nanosecond()/1e3, 6)
			}
			buf = append(buf, ' ')
		}
		if mode.Colorize {
			buf = append(buf, resetBytes...)
		}
	}
	if flags&(Lshortfile|Llongfile) != 0 && event.Filename != "" {
		if mode.Colorize {
			buf = append(buf, fgGreenBytes...)
		}
		file := event.Filename
		if flags&Lmedfile == Lmedfile {
			startIndex := len(file) - 20
			if startIndex > 0 {
				file = "..." + file[startIndex:]
			}
		} else if flags&Lshortfile != 0 {
			startIndex := strings.LastIndexByte(file, '/')
			if startIndex > 0 && startIndex < len(file) {
				file = file[startIndex+1:]
			}
		}
		buf = append(buf, file...)
		buf = append(buf, ':')
		buf = itoa(buf, event.Line, -1)
		if flags&(Lfuncname|Lshortfuncname) != 0 {
			buf = append(buf, ':')
		} else {
			if mode.Colorize {
				buf = append(buf, resetBytes...)
			}
			buf = append(buf, ' ')
		}
	}
	if flags&(Lfuncname|Lshortfuncname) != 0 && event.Caller != "" {
		if mode.Colorize {
			buf = append(buf, fgGreenBytes...)
		}
		funcname := event.Caller
		if flags&Lshortfuncname != 0 {
			lastIndex := strings.LastIndexByte(funcname, '.')
			if lastIndex > 0 && len(funcname) > lastIndex+1 {
				funcname = funcname[lastIndex+1:]
			}
		}
		buf = append(buf, funcname...)
		if mode.Colorize {
			buf = append(buf, resetBytes...)
		}
		buf = append(buf, ' ')
	}
	if flags&(Llevel|Llevelinitial) != 0 {
		level := strings.ToUpper(event.Level.String())
		if mode.Colorize {
			buf = append(buf, ColorBytes(event.Level.ColorAttributes()...)...)
		}
		buf = append(buf, '[')
		if flags&Llevelinitial != 0 {
			buf = append(buf, level[0])
		} else {
			buf = append(buf, level...)
		}
		buf = append(buf, ']')
		if mode.Colorize {
			buf = append(buf, resetBytes...)
		}
		buf = append(buf, ' ')
	}

	// Now we need to prevent log spoofing:
	msg := strings.TrimSuffix(event.MsgSimpleText, "\n")
	lines := bytes.Split([]byte(msg), []byte("\n"))
	buf = append(buf, lines[0]...)
	for _, line := range lines[1:] {
		buf = append(buf, "\n        "...)
		buf = append(buf, line...)
	}
	buf = append(buf, '\n')
	return buf
}
