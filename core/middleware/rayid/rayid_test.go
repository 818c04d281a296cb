package rayid_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"gallery-build/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp() *fiber.App {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		id, _ := c.Locals(rayid.LocalsKey).(string)
		return c.SendString(id)
	})
	return app
}

func TestNew(t *testing.T) {
	t.Run("Generated", func(t *testing.T) {
		resp, err := setupApp().Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)

		header := resp.Header.Get(rayid.HeaderName)
		_, parseErr := uuid.Parse(header)
		assert.NoError(t, parseErr)

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, header, string(body))
	})

	t.Run("Propagated", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(rayid.HeaderName, "upstream-id")

		resp, err := setupApp().Test(req)
		require.NoError(t, err)
		assert.Equal(t, "upstream-id", resp.Header.Get(rayid.HeaderName))

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "upstream-id", string(body))
	})
}
