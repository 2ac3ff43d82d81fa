// Copyright 2020 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package catfile

import (
	"bufio"
	"strconv"
	"strings"

	"code.gitea.io/gitobject/modules/git/object"
)

// ReadBatchLine reads the response header of cat-file --batch or --batch-check.
// It is "<id> <type> <size>\n" for an existing object and "<id> missing\n" for an unknown one.
// Any other line, including "<id> ambiguous\n", is an ErrProtocol.
func ReadBatchLine(rd *bufio.Reader) (info *object.ObjectInfo, missing bool, err error) {
	line, err := rd.ReadString('\n')
	if err != nil {
		return nil, false, err
	}
	content := strings.TrimSuffix(line, "\n")

	fields := strings.Split(content, " ")
	switch {
	case len(fields) == 2 && fields[1] == "missing" && fields[0] != "":
		return &object.ObjectInfo{ID: fields[0]}, true, nil
	case len(fields) != 3 || fields[0] == "" || fields[1] == "":
		return nil, false, ErrProtocol{Line: line}
	}

	size, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil || size < 0 {
		return nil, false, ErrProtocol{Line: line}
	}
	return &object.ObjectInfo{ID: fields[0], Type: fields[1], Size: size}, false, nil
}
