package loader_test

import (
	"errors"
	"net/http/httptest"
	"testing"

	"gallery-build/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (f *stubFeature) Name() string    { return f.name }
func (f *stubFeature) IsEnabled() bool { return f.enabled }
func (f *stubFeature) Load(app fiber.Router) error {
	f.loaded = true
	if f.err != nil {
		return f.err
	}
	app.Get("/"+f.name, func(c *fiber.Ctx) error { return c.SendString(f.name) })
	return nil
}

func TestManager_LoadAll(t *testing.T) {
	t.Run("SkipsDisabled", func(t *testing.T) {
		on := &stubFeature{name: "on", enabled: true}
		off := &stubFeature{name: "off", enabled: false}

		mgr := loader.NewManager()
		mgr.Register(on)
		mgr.Register(off)

		app := fiber.New()
		require.NoError(t, mgr.LoadAll(app))
		assert.True(t, on.loaded)
		assert.False(t, off.loaded)
		assert.Len(t, mgr.Features(), 2)

		resp, err := app.Test(httptest.NewRequest("GET", "/on", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		resp, err = app.Test(httptest.NewRequest("GET", "/off", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})

	t.Run("StopsOnError", func(t *testing.T) {
		broken := &stubFeature{name: "broken", enabled: true, err: errors.New("boom")}
		after := &stubFeature{name: "after", enabled: true}

		mgr := loader.NewManager()
		mgr.Register(broken)
		mgr.Register(after)

		err := mgr.LoadAll(fiber.New())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "broken")
		assert.False(t, after.loaded)
	})
}
