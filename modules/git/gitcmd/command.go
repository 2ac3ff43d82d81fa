// Copyright 2015 The Gogs Authors. All rights reserved.
// Copyright 2016 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package gitcmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"code.gitea.io/gitobject/modules/git/gitcmd/internal"
	"code.gitea.io/gitobject/modules/log"
)

// TrustedCmdArgs returns the trusted arguments for git command.
// It's mainly for passing user-provided and trusted arguments to git command
// In most cases, it shouldn't be used. Use AddXxx function instead
type TrustedCmdArgs []internal.CmdArg

// ToTrustedCmdArgs converts a list of strings (trusted as argument) to TrustedCmdArgs
// In most cases, it shouldn't be used. Use NewCommand().AddXxx() function instead
func ToTrustedCmdArgs(args []string) TrustedCmdArgs {
	ret := make(TrustedCmdArgs, len(args))
	for i, arg := range args {
		ret[i] = internal.CmdArg(arg)
	}
	return ret
}

// DefaultLocale is the default LC_ALL to run git commands in.
const DefaultLocale = "C"

// GitExecutable is the command name of git
// Could be updated to an absolute path while initialization
var GitExecutable = "git"

// ErrBrokenCommand is returned when a command was built with an argument that is not safe to pass to git
var ErrBrokenCommand = errors.New("git command is broken")

// Command represents a command with its subcommands or arguments.
type Command struct {
	prog      string
	args      []string
	brokenArg string

	dir     string
	env     []string
	timeout time.Duration
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

// SetExecutablePath changes the path of git executable and checks it can be found
func SetExecutablePath(path string) error {
	if path == "" {
		path = "git"
	}
	absPath, err := exec.LookPath(path)
	if err != nil {
		return fmt.Errorf("git not found: %w", err)
	}
	GitExecutable = absPath
	return nil
}

// NewCommand creates and returns a new Git Command based on given command and arguments.
// Each argument should be safe to be trusted. User-provided arguments should be passed to AddDynamicArguments instead.
func NewCommand(args ...internal.CmdArg) *Command {
	cargs := make([]string, 0, len(args))
	for _, arg := range args {
		cargs = append(cargs, string(arg))
	}
	return &Command{
		prog: GitExecutable,
		args: cargs,
	}
}

// isSafeArgumentValue checks if the argument is safe to be used as a value (not an option)
func isSafeArgumentValue(s string) bool {
	return s == "" || s[0] != '-'
}

// isValidArgumentOption checks if the argument is a valid option (starting with '-').
// It doesn't check whether the option is supported or not
func isValidArgumentOption(s string) bool {
	return s != "" && s[0] == '-'
}

// AddArguments adds new git arguments (option/value) to the command. It only accepts string literals, or trusted CmdArg.
func (c *Command) AddArguments(args ...internal.CmdArg) *Command {
	for _, arg := range args {
		c.args = append(c.args, string(arg))
	}
	return c
}

// AddOptionValues adds a new option with a list of non-option values
// For example: AddOptionValues("--opt", val) means 2 arguments: {"--opt", val}.
// The values are treated as dynamic argument values. It equals to: AddArguments("--opt") then AddDynamicArguments(val).
func (c *Command) AddOptionValues(opt internal.CmdArg, args ...string) *Command {
	if !isValidArgumentOption(string(opt)) {
		c.brokenArg = string(opt)
		return c
	}
	c.args = append(c.args, string(opt))
	c.AddDynamicArguments(args...)
	return c
}

// AddDynamicArguments adds new dynamic argument values to the command.
// The arguments may come from user input and can not be trusted, so no leading '-' is allowed to avoid passing options.
func (c *Command) AddDynamicArguments(args ...string) *Command {
	for _, arg := range args {
		if !isSafeArgumentValue(arg) {
			c.brokenArg = arg
		}
	}
	if c.brokenArg != "" {
		return c
	}
	c.args = append(c.args, args...)
	return c
}

// WithDir sets the working directory of the command
func (c *Command) WithDir(dir string) *Command {
	c.dir = dir
	return c
}

// WithEnv sets extra environment variables, they are appended to os.Environ
func (c *Command) WithEnv(env []string) *Command {
	c.env = env
	return c
}

// WithTimeout bounds the command run time, zero or negative means no timeout
func (c *Command) WithTimeout(timeout time.Duration) *Command {
	c.timeout = timeout
	return c
}

// WithStdin sets the stdin of the command
func (c *Command) WithStdin(stdin io.Reader) *Command {
	c.stdin = stdin
	return c
}

// WithStdout sets the stdout of the command
func (c *Command) WithStdout(stdout io.Writer) *Command {
	c.stdout = stdout
	return c
}

// WithStderr sets the stderr of the command
func (c *Command) WithStderr(stderr io.Writer) *Command {
	c.stderr = stderr
	return c
}

// LogString returns a loggable description of the command, the program path and the working directory are shortened
func (c *Command) LogString() string {
	// WARNING: this function is for debugging purposes only. It's much better than old code (which only joins args with space),
	// It's impossible to make a simple and 100% correct implementation of argument quoting for different platforms here.
	debugQuote := func(s string) string {
		if strings.ContainsAny(s, " `'\"\t\r\n") {
			return fmt.Sprintf("%q", s)
		}
		return s
	}
	a := make([]string, 0, len(c.args)+1)
	a = append(a, debugQuote(c.prog))
	for _, arg := range c.args {
		a = append(a, debugQuote(arg))
	}
	if c.dir != "" {
		a = append(a, "[repo_path: "+filepath.Base(c.dir)+"]")
	}
	return strings.Join(a, " ")
}

// Run runs the command, it blocks until the process exits or the context is done
func (c *Command) Run(ctx context.Context) error {
	if c.brokenArg != "" {
		log.Error("git command is broken: %s, broken args: %s", c.LogString(), c.brokenArg)
		return ErrBrokenCommand
	}

	log.Debug("git.Command: %s", c.LogString())

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.prog, c.args...)
	cmd.Env = append(os.Environ(), c.env...)
	cmd.Env = append(
		cmd.Env,
		"LC_ALL="+DefaultLocale,
		// avoid prompting for credentials interactively, supported since git v2.3
		"GIT_TERMINAL_PROMPT=0",
		// ignore replace references (https://git-scm.com/docs/git-replace)
		"GIT_NO_REPLACE_OBJECTS=1",
	)
	cmd.Dir = c.dir
	cmd.Stdin = c.stdin
	cmd.Stdout = c.stdout
	cmd.Stderr = c.stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%w: %w", ctxErr, err)
		}
		return err
	}
	return nil
}

type RunStdError interface {
	error
	Unwrap() error
	Stderr() string
}

type runStdError struct {
	err    error
	stderr string
	errMsg string
}

func (r *runStdError) Error() string {
	// the stderr must be in the returned error text, some code only checks `strings.Contains(err.Error(), "git error")`
	if r.errMsg == "" {
		r.errMsg = ConcatenateError(r.err, r.stderr).Error()
	}
	return r.errMsg
}

func (r *runStdError) Unwrap() error {
	return r.err
}

func (r *runStdError) Stderr() string {
	return r.stderr
}

// IsErrorExitCode returns true if the error is an *exec.ExitError with the given exit code
func IsErrorExitCode(err error, code int) bool {
	var exitError *exec.ExitError
	if errors.As(err, &exitError) {
		return exitError.ExitCode() == code
	}
	return false
}

// RunStdString runs the command and returns stdout/stderr as string. and store stderr to returned error (err combined with stderr).
func (c *Command) RunStdString(ctx context.Context) (stdout, stderr string, runErr RunStdError) {
	stdoutBytes, stderrBytes, runErr := c.RunStdBytes(ctx)
	return string(stdoutBytes), string(stderrBytes), runErr
}

// RunStdBytes runs the command and returns stdout/stderr as bytes. and store stderr to returned error (err combined with stderr).
func (c *Command) RunStdBytes(ctx context.Context) (stdout, stderr []byte, runErr RunStdError) {
	if c.stdout != nil || c.stderr != nil {
		// we must panic here, otherwise there would be bugs if developers set Stdin/Stderr by mistake, and it would be very difficult to debug
		panic("stdout and stderr field must be nil when using RunStdBytes")
	}
	stdoutBuf := &bytes.Buffer{}
	stderrBuf := &bytes.Buffer{}
	c.stdout, c.stderr = stdoutBuf, stderrBuf
	defer func() {
		c.stdout, c.stderr = nil, nil
	}()
	if err := c.Run(ctx); err != nil {
		return nil, stderrBuf.Bytes(), &runStdError{err: err, stderr: stderrBuf.String()}
	}
	// even if there is no err, there could still be some stderr output
	return stdoutBuf.Bytes(), stderrBuf.Bytes(), nil
}

// ConcatenateError concatenats an error with stderr string
func ConcatenateError(err error, stderr string) error {
	if len(stderr) == 0 {
		return err
	}
	return fmt.Errorf("%w - %s", err, stderr)
}
