package sources

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

type RunResult struct {
	Stdout string
	Stderr string
}

// RunError describes a command that did not exit cleanly. Stdout holds whatever the command
// printed before failing. Started is true once the process ran, Exited only when it also
// returned an exit status rather than dying on a signal.
type RunError struct {
	Command  string
	Stdout   string
	Stderr   string
	ExitCode int
	Started  bool
	Exited   bool
	Timeout  bool
	Err      error
}

func (e *RunError) Error() string {
	base := fmt.Sprintf("command %q failed", e.Command)
	if e.Timeout {
		base += " (timeout)"
	}
	if e.ExitCode != 0 {
		base += fmt.Sprintf(" [exit=%d]", e.ExitCode)
	}
	if s := strings.TrimSpace(e.Stderr); s != "" {
		base += ": " + s
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *RunError) Unwrap() error {
	return e.Err
}

type CommandRunner interface {
	// Run executes name with args and no shell in between. A non-nil error is a *RunError.
	Run(ctx context.Context, name string, args []string) (RunResult, error)
}

type execRunner struct{}

func NewExecRunner() CommandRunner {
	return &execRunner{}
}

func (r *execRunner) Run(ctx context.Context, name string, args []string) (RunResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	result := RunResult{
		Stdout: outBuf.String(),
		Stderr: errBuf.String(),
	}
	if err == nil {
		return result, nil
	}

	runErr := &RunError{
		Command: strings.Join(append([]string{name}, args...), " "),
		Stdout:  result.Stdout,
		Stderr:  result.Stderr,
		Err:     err,
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		runErr.ExitCode = exitErr.ExitCode()
		runErr.Started = true
		runErr.Exited = exitErr.Exited()
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		runErr.Timeout = true
		runErr.Exited = false
	}

	return result, runErr
}
