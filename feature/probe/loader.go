package probe

import (
	"gallery-build/core/runner"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
}

// NewFeature creates a new probe feature.
func NewFeature(cfg Config, r runner.CommandRunner, logger *zap.Logger) *Feature {
	return &Feature{handler: NewHandler(NewProber(cfg, r, logger), logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "probe"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
