package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"gallery-build/core/runner"
	"gallery-build/feature/probe"

	"github.com/spf13/cobra"
)

// probeCmd represents the probe command
var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Check the PlatformIO project configuration",
	Long: `Runs the JSON parsing self-test against canned payloads, then runs
"pio project config --json-output" and lists the environments it declares.
Exits with status 1 when PlatformIO fails or prints something that is not JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()

		prober := probe.NewProber(cfg.Probe, runner.ExecRunner{}, logg)
		return runProbe(cmd.Context(), cmd.OutOrStdout(), prober)
	},
}

// runProbe prints both checks to out. Only the live probe decides the result.
func runProbe(ctx context.Context, out io.Writer, prober *probe.Prober) error {
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Fprintln(out, "PlatformIO Configuration Test Script")
	fmt.Fprintln(out, strings.Repeat("=", 50))

	probe.RunFixtures(out)

	fmt.Fprintln(out, "\n"+strings.Repeat("=", 50))
	if _, err := prober.Run(ctx, out); err != nil {
		fmt.Fprintln(out, "\n❌ PlatformIO configuration test failed")
		return fmt.Errorf("%w: %w", errReported, err)
	}

	fmt.Fprintln(out, "\n✅ PlatformIO configuration test passed")
	return nil
}

func init() {
	RootCmd.AddCommand(probeCmd)
}
