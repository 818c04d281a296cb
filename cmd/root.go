package cmd

import (
	"errors"
	"fmt"
	"os"

	"gallery-build/core/config"
	"gallery-build/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "gallery-build",
	Short: "Little Gallery firmware build helpers",
	Long: `gallery-build prepares the Little Gallery ESP32 firmware build.
It verifies and compresses the web assets, checks the PlatformIO project
configuration, previews the web UI locally and publishes assets to S3/MinIO.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// errReported marks failures whose diagnostics were already printed.
var errReported = errors.New("failure already reported")

func Execute() {
	err := RootCmd.Execute()
	if code := exitCode(err); code != 0 {
		if !errors.Is(err, errReported) {
			reportError(err)
		}
		os.Exit(code)
	}
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

func reportError(err error) {
	// Console format with the development config gives readable ISO8601 timestamps.
	cfg := &logger.Config{
		Level:  "debug",
		Format: "console",
		Output: "stdout",
	}

	l, logErr := logger.New(cfg)
	if logErr == nil {
		l.Error("command failed", zap.Error(err))
		_ = l.Sync()
	} else {
		// Absolute fallback if logger creation fails (rare)
		fmt.Println(err)
	}
}

// bootstrap loads the configuration and builds the logger every command uses.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, logg, nil
}
