// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package catfile

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sync"

	"code.gitea.io/gitobject/modules/git/gitcmd"
	"code.gitea.io/gitobject/modules/git/object"
	"code.gitea.io/gitobject/modules/log"
	"code.gitea.io/gitobject/modules/util"
)

// communicator owns one request/response channel to a cat-file process.
// Requests are serialized by mu, only one of them is in flight at any time.
type communicator struct {
	mu         sync.Mutex
	name       string
	reqWriter  io.Writer
	respReader *bufio.Reader
	closeFn    func()

	broken error
	closed bool
}

func newCommunicator(name string, w io.Writer, r io.Reader, closeFn func()) *communicator {
	return &communicator{
		name:       name,
		reqWriter:  w,
		respReader: bufio.NewReaderSize(r, 32*1024),
		closeFn:    closeFn,
	}
}

// startCommunicator runs a long-lived cat-file command in the repository.
// The process has no timeout, it lives until Close or until ctx is done.
func startCommunicator(ctx context.Context, repoPath string, cmd *gitcmd.Command) (*communicator, error) {
	isDir, err := util.IsDir(repoPath)
	if err != nil {
		return nil, err
	} else if !isDir {
		return nil, util.NewNotExistErrorf("repo %q doesn't exist", filepath.Base(repoPath))
	}

	ctx, cancel := context.WithCancel(ctx)
	stdinReader, stdinWriter := io.Pipe()
	stdoutReader, stdoutWriter := io.Pipe()
	stderr := &bytes.Buffer{}
	done := make(chan struct{})

	name := cmd.WithDir(repoPath).LogString()
	log.Debug("Starting %s", name)
	go func() {
		defer close(done)
		err := cmd.WithStdin(stdinReader).
			WithStdout(stdoutWriter).
			WithStderr(stderr).
			Run(ctx)
		if err != nil {
			err = gitcmd.ConcatenateError(err, stderr.String())
			if ctx.Err() == nil {
				log.Error("%s exited unexpectedly: %v", name, err)
			}
		}
		// wake up any reader or writer still waiting on the process
		_ = stdoutWriter.CloseWithError(err)
		_ = stdinReader.CloseWithError(err)
		log.Debug("Stopped %s", name)
	}()

	closeFn := func() {
		_ = stdinWriter.Close()
		_ = stdoutReader.Close()
		cancel()
		<-done
	}
	return newCommunicator(name, stdinWriter, stdoutReader, closeFn), nil
}

// query writes one request and reads the response header.
// The caller must hold c.mu and must consume the payload of an existing object.
func (c *communicator) query(id string) (*object.ObjectInfo, bool, error) {
	if c.closed {
		return nil, false, ErrClosed
	}
	if c.broken != nil {
		return nil, false, c.broken
	}
	// git answers with the canonical lowercase id, anything else can't be matched to its response
	if !object.Sha1ObjectFormat.IsValid(id) && !object.Sha256ObjectFormat.IsValid(id) {
		return nil, false, util.NewInvalidArgumentErrorf("invalid object id %q", id)
	}

	// single write, the request must not be split or buffered on our side
	if _, err := io.WriteString(c.reqWriter, id+"\n"); err != nil {
		return nil, false, c.corrupt(ErrTransportCorruption{ID: id, Err: err})
	}

	info, missing, err := ReadBatchLine(c.respReader)
	if err != nil {
		if IsErrProtocol(err) {
			return nil, false, c.corrupt(err)
		}
		return nil, false, c.corrupt(ErrTransportCorruption{ID: id, Err: err})
	}
	if info.ID != id {
		line := fmt.Sprintf("%s %s %d\n", info.ID, info.Type, info.Size)
		if missing {
			line = info.ID + " missing\n"
		}
		return nil, false, c.corrupt(ErrProtocol{Line: line})
	}
	return info, missing, nil
}

// corrupt marks the channel as unusable, every later query returns err
func (c *communicator) corrupt(err error) error {
	log.Error("%s: %v", c.name, err)
	c.broken = err
	return err
}

func (c *communicator) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if c.closeFn != nil {
		c.closeFn()
	}
}
