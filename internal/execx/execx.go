// Package execx runs external tools with explicit argument lists.
//
// Commands are never routed through a shell: arguments are passed verbatim
// to the binary, which removes any need for quoting or escaping of note
// paths and search queries.
package execx

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
)

// ErrNotInstalled reports that the requested binary could not be found in
// PATH.
var ErrNotInstalled = errors.New("tool not installed")

// Error describes a command that ran but exited non-zero. The combined
// stdout/stderr is captured so callers can surface it to the user.
type Error struct {
	Name     string
	Args     []string
	ExitCode int
	Output   string
	cause    error
}

func (e *Error) Error() string {
	msg := e.Name + " " + strings.Join(e.Args, " ") + " failed"
	if e.Output != "" {
		msg += ": " + e.Output
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Run executes name with args in dir, blocking until it exits. Stdout is
// returned trimmed on success. An empty dir runs the command in the
// caller's working directory; the process-wide working directory is never
// changed.
//
// Failures are reported as ErrNotInstalled when the binary is missing and
// as *Error (carrying the exit code and captured output) otherwise.
func Run(ctx context.Context, dir, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return "", ErrNotInstalled
		}

		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		output := strings.TrimSpace(stderr.String())
		if output == "" {
			output = strings.TrimSpace(stdout.String())
		}
		return "", &Error{
			Name:     name,
			Args:     args,
			ExitCode: exitCode,
			Output:   output,
			cause:    err,
		}
	}

	return strings.TrimSpace(stdout.String()), nil
}

// LookPath reports whether name resolves to an executable in PATH.
func LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
