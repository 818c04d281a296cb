package mocks

import (
	"context"

	"gallery-build/core/runner"

	"github.com/stretchr/testify/mock"
)

// Runner is a mock implementation of runner.CommandRunner
type Runner struct {
	mock.Mock
}

func (m *Runner) Capture(ctx context.Context, dir, name string, args ...string) (*runner.Output, error) {
	callArgs := m.Called(ctx, dir, name, args)
	out, _ := callArgs.Get(0).(*runner.Output)
	return out, callArgs.Error(1)
}

// Exit builds the Capture results of a process that exited with code.
func Exit(code int, stdout, stderr string) (*runner.Output, error) {
	out := &runner.Output{Stdout: []byte(stdout), Stderr: []byte(stderr), ExitCode: code}
	if code == 0 {
		return out, nil
	}
	return out, &runner.ExitError{Name: "pio", Code: code, Stdout: out.Stdout, Stderr: out.Stderr}
}
