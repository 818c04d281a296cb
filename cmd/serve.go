package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gallery-build/core/config"
	"gallery-build/core/loader"
	"gallery-build/core/logger"
	"gallery-build/core/middleware/rayid"
	"gallery-build/core/runner"
	"gallery-build/feature/probe"
	"gallery-build/feature/webassets"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var servePort string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Preview the web UI from the data directory",
	Long: `Starts a local HTTP server that serves <project>/data the way the firmware
does: "/" maps to index.html and .gz siblings are sent to gzip-capable clients.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()

		if servePort != "" {
			cfg.Server.Port = servePort
		}
		if !cfg.Server.IsValidPort() {
			return fmt.Errorf("invalid server port %q", cfg.Server.Port)
		}

		app, err := newPreviewApp(cfg, runner.ExecRunner{}, logg)
		if err != nil {
			return err
		}

		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting preview server",
				zap.String("address", cfg.Server.Address()),
				zap.String("data_dir", cfg.Web.DataPath()),
			)
			errCh <- app.Listen(cfg.Server.Address())
		}()

		// Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return fmt.Errorf("preview server failed: %w", err)
		case <-c:
		}
		logg.Info("Shutting down preview server...")
		return app.Shutdown()
	},
}

// newPreviewApp builds the fiber app with middleware and features loaded.
func newPreviewApp(cfg *config.Config, r runner.CommandRunner, logg *zap.Logger) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true, // We log our own startup message
	})

	// RayID must be first so every log line below carries it.
	app.Use(rayid.New())
	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		err := c.Next()
		l.Info("Request handled",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
		)
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	mgr := loader.NewManager()
	// webassets owns the catch-all route and must come last.
	mgr.Register(probe.NewFeature(cfg.Probe, r, logg))
	mgr.Register(webassets.NewFeature(cfg.Web.DataPath(), logg))

	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}
	return app, nil
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (defaults to SERVER_PORT or 8080)")
	RootCmd.AddCommand(serveCmd)
}
