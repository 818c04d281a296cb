package webassets

import (
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"gallery-build/core/logger"
	"gallery-build/feature/webassets/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DefaultFile is served for "/" and directory paths, like the firmware does.
const DefaultFile = "index.html"

// Handler handles HTTP requests for the web assets.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the asset routes. The static catch-all is
// registered last so it never shadows API routes of this feature.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/api/assets", h.HandleInventory)
	app.Get("/", h.HandleStatic)
	app.Get("/*", h.HandleStatic)
}

// HandleInventory reports which required web files are present and compressed.
func (h *Handler) HandleInventory(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	inv, err := h.service.Inspect()
	if err != nil {
		l.Error("Asset inventory failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if len(inv.Missing) > 0 {
		l.Warn("Missing web files", zap.Strings("missing", inv.Missing))
	}
	return c.JSON(inv)
}

// HandleStatic serves a file from the data directory. A .gz sibling is
// preferred when the client accepts gzip, and is also used when only the
// compressed copy exists.
func (h *Handler) HandleStatic(c *fiber.Ctx) error {
	rel := path.Clean("/" + c.Path())
	if strings.HasSuffix(c.Path(), "/") || rel == "/" {
		rel = path.Join(rel, DefaultFile)
	}
	file := filepath.Join(h.service.DataDir(), filepath.FromSlash(strings.TrimPrefix(rel, "/")))

	if info, err := os.Stat(file); err == nil && info.IsDir() {
		file = filepath.Join(file, DefaultFile)
	}

	gz := file + checks.GzipSuffix
	plain := isFile(file)
	compressed := isFile(gz)

	switch {
	case compressed && (!plain || acceptsGzip(c)):
		return h.send(c, gz, filepath.Ext(file), true)
	case plain:
		return h.send(c, file, filepath.Ext(file), false)
	default:
		return c.Status(fiber.StatusNotFound).SendString("Not found")
	}
}

func (h *Handler) send(c *fiber.Ctx, file, ext string, gzipped bool) error {
	data, err := os.ReadFile(file)
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Failed to read web file", zap.String("file", file), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	c.Type(ext)
	c.Vary(fiber.HeaderAcceptEncoding)
	if gzipped {
		c.Set(fiber.HeaderContentEncoding, "gzip")
	}
	return c.Send(data)
}

func acceptsGzip(c *fiber.Ctx) bool {
	for _, part := range strings.Split(c.Get(fiber.HeaderAcceptEncoding), ",") {
		name, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		name = strings.TrimSpace(name)
		if !strings.EqualFold(name, "gzip") && name != "*" {
			continue
		}
		q, ok := strings.CutPrefix(strings.TrimSpace(params), "q=")
		if !ok {
			return true
		}
		weight, err := strconv.ParseFloat(q, 64)
		return err == nil && weight > 0
	}
	return false
}

func isFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
