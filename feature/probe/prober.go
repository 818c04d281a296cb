package probe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"gallery-build/core/runner"

	"go.uber.org/zap"
)

// Report is the outcome of a successful live probe.
type Report struct {
	Document     *Document
	Environments []string
}

// Prober runs the PlatformIO configuration dump and inspects its output.
type Prober struct {
	cfg    Config
	runner runner.CommandRunner
	logger *zap.Logger
}

// NewProber creates a new live prober.
func NewProber(cfg Config, r runner.CommandRunner, logger *zap.Logger) *Prober {
	return &Prober{cfg: cfg, runner: r, logger: logger}
}

// Run invokes the configured command and prints what it found to w.
// It fails when the command exits non-zero, when its output is not JSON,
// or when the command cannot be run at all. Finding no environments is
// not a failure.
func (p *Prober) Run(ctx context.Context, w io.Writer) (*Report, error) {
	if p.cfg.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(p.cfg.TimeoutSeconds)*time.Second)
		defer cancel()
	}

	name, args := p.cfg.CommandLine()
	out, err := p.runner.Capture(ctx, p.cfg.WorkDir, name, args...)
	if err != nil {
		var exitErr *runner.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintf(w, "Error running PlatformIO: %v\n", exitErr)
			fmt.Fprintf(w, "stdout: %s\n", exitErr.Stdout)
			fmt.Fprintf(w, "stderr: %s\n", exitErr.Stderr)
			p.logger.Error("PlatformIO exited with an error", zap.Int("exit_code", exitErr.Code))
			return nil, fmt.Errorf("platformio config dump failed: %w", err)
		}
		fmt.Fprintf(w, "Unexpected error: %v\n", err)
		p.logger.Error("PlatformIO could not be run", zap.String("command", name), zap.Error(err))
		return nil, err
	}

	doc, err := ParseDocument(out.Stdout)
	if err != nil {
		fmt.Fprintf(w, "Error parsing JSON: %v\n", err)
		p.logger.Error("PlatformIO output is not JSON", zap.Error(err))
		return nil, err
	}

	fmt.Fprintln(w, "PlatformIO Configuration Test")
	fmt.Fprintln(w, strings.Repeat("=", 40))
	fmt.Fprintf(w, "Config type: %s\n", doc.Shape)
	if doc.IsMapping() {
		fmt.Fprintf(w, "Config keys: %s\n", formatList(doc.Keys))
	} else {
		fmt.Fprintln(w, "Config keys: Not a mapping")
	}

	envs, _ := doc.Environments()
	for _, env := range envs {
		fmt.Fprintf(w, "Found environment: %s\n", env)
	}

	if len(envs) > 0 {
		fmt.Fprintf(w, "\nTotal environments found: %d\n", len(envs))
		for _, env := range envs {
			fmt.Fprintf(w, "  - %s\n", env)
		}
	} else {
		fmt.Fprintln(w, "\nNo environments found")
	}

	if envs == nil {
		envs = []string{}
	}
	return &Report{Document: doc, Environments: envs}, nil
}
