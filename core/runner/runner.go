package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// Output holds what a finished process wrote and how it exited.
type Output struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// ExitError is returned when a process ran but exited with a non-zero status.
type ExitError struct {
	Name   string
	Code   int
	Stdout []byte
	Stderr []byte
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command %q returned non-zero exit status %d", e.Name, e.Code)
}

// CommandRunner defines the interface for executing external commands.
type CommandRunner interface {
	// Capture runs name with args in dir and collects stdout and stderr separately.
	Capture(ctx context.Context, dir, name string, args ...string) (*Output, error)
}

// ExecRunner is a concrete implementation of CommandRunner using os/exec.
type ExecRunner struct{}

func (r ExecRunner) Capture(ctx context.Context, dir, name string, args ...string) (*Output, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := &Output{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err == nil {
		return out, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && ctx.Err() == nil {
		out.ExitCode = exitErr.ExitCode()
		return out, &ExitError{
			Name:   name,
			Code:   out.ExitCode,
			Stdout: out.Stdout,
			Stderr: out.Stderr,
		}
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return out, fmt.Errorf("failed to run %s: %w", name, ctxErr)
	}
	return out, fmt.Errorf("failed to run %s: %w", name, err)
}
