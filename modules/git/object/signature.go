// Copyright 2015 The Gogs Authors. All rights reserved.
// Copyright 2019 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package object

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"code.gitea.io/gitobject/modules/util"
)

// Signature represents the Author, Committer or Tagger information.
type Signature struct {
	Name  string
	Email string
	When  time.Time
}

// ParseSignature parses a raw identity header value:
// "Name <email> 1234567890 +0800". The timestamp part is optional in old objects.
func ParseSignature(line string) (*Signature, error) {
	emailStart := strings.LastIndexByte(line, '<')
	emailEnd := strings.LastIndexByte(line, '>')
	if emailStart < 0 || emailEnd < emailStart {
		return nil, util.NewInvalidArgumentErrorf("malformed signature %q", line)
	}

	sig := &Signature{
		Name:  strings.TrimSpace(line[:emailStart]),
		Email: line[emailStart+1 : emailEnd],
	}

	fields := strings.Fields(line[emailEnd+1:])
	if len(fields) == 0 {
		return sig, nil
	}

	seconds, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return nil, util.NewInvalidArgumentErrorf("malformed signature time %q", line)
	}
	sig.When = time.Unix(seconds, 0).UTC()
	if len(fields) > 1 {
		loc, err := parseTimezone(fields[1])
		if err != nil {
			return nil, util.NewInvalidArgumentErrorf("malformed signature timezone %q", line)
		}
		sig.When = sig.When.In(loc)
	}
	return sig, nil
}

func parseTimezone(tz string) (*time.Location, error) {
	if len(tz) != 5 || (tz[0] != '+' && tz[0] != '-') {
		return nil, fmt.Errorf("invalid timezone %q", tz)
	}
	hours, err := strconv.Atoi(tz[1:3])
	if err != nil {
		return nil, err
	}
	minutes, err := strconv.Atoi(tz[3:])
	if err != nil {
		return nil, err
	}
	offset := hours*3600 + minutes*60
	if tz[0] == '-' {
		offset = -offset
	}
	return time.FixedZone("", offset), nil
}

// String returns the signature in git's raw format
func (s *Signature) String() string {
	if s.When.IsZero() {
		return fmt.Sprintf("%s <%s>", s.Name, s.Email)
	}
	return fmt.Sprintf("%s <%s> %d %s", s.Name, s.Email, s.When.Unix(), s.When.Format("-0700"))
}
