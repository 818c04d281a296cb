package cmd

import (
	"gallery-build/feature/webassets"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	webProjectDir string
	webCompress   string
	webEnv        string
)

// webCmd represents the web command
var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Verify and optionally compress the web assets",
	Long: `Checks that index.html, style.css and app.js exist in <project>/data and,
when custom_compress_web is "true", writes a gzip copy of each next to it.
Every problem is reported as a warning; the command never fails the build.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()

		if webProjectDir != "" {
			cfg.Web.ProjectDir = webProjectDir
		}
		if cmd.Flags().Changed("compress") {
			cfg.Web.Compress = webCompress
		}
		if webEnv != "" {
			cfg.Web.Environment = webEnv
		}

		runWebBuild(cfg.Web, logg)
		return nil
	},
}

func runWebBuild(cfg webassets.Config, logg *zap.Logger) *webassets.BuildReport {
	value, source := cfg.CompressValue()
	logg.Debug("Resolved compression option",
		zap.String("option", webassets.CompressOption),
		zap.String("value", value),
		zap.String("source", source),
	)

	svc := webassets.NewService(cfg.DataPath(), cfg.CompressEnabled(), logg)
	return svc.Build()
}

func init() {
	webCmd.Flags().StringVar(&webProjectDir, "project-dir", "", "Firmware project root (defaults to $PROJECT_DIR or .)")
	webCmd.Flags().StringVar(&webCompress, "compress", "", `Override custom_compress_web ("true" enables compression)`)
	webCmd.Flags().StringVar(&webEnv, "env", "", "PlatformIO environment used to read custom_compress_web")
	RootCmd.AddCommand(webCmd)
}
