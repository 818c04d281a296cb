package probe

import (
	"io"

	"gallery-build/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler exposes the live probe to the preview server.
type Handler struct {
	prober *Prober
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(prober *Prober, logger *zap.Logger) *Handler {
	return &Handler{prober: prober, logger: logger}
}

// RegisterRoutes registers the probe routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api")
	group.Get("/environments", h.HandleEnvironments)
}

// HandleEnvironments runs the live probe and returns the environments it found.
func (h *Handler) HandleEnvironments(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	report, err := h.prober.Run(c.UserContext(), io.Discard)
	if err != nil {
		l.Warn("Configuration probe failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"ok":    false,
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"ok":           true,
		"shape":        report.Document.Shape,
		"environments": report.Environments,
	})
}
