package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"gallery-build/core/runner"
	"gallery-build/core/runner/mocks"
	"gallery-build/feature/probe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMockProber(stdout string, code int) *probe.Prober {
	r := new(mocks.Runner)
	r.On("Capture", mock.Anything, "", "pio", []string{"project", "config", "--json-output"}).
		Return(mocks.Exit(code, stdout, ""))
	return probe.NewProber(probe.Config{Command: "pio", Args: "project config --json-output"}, r, zap.NewNop())
}

func TestRunProbe(t *testing.T) {
	t.Run("Success Exits Zero", func(t *testing.T) {
		var out bytes.Buffer
		err := runProbe(context.Background(), &out, newMockProber(`{"env:esp32dev":{"platform":"espressif32"}}`, 0))
		require.NoError(t, err)
		assert.Equal(t, 0, exitCode(err))

		text := out.String()
		assert.Contains(t, text, "PlatformIO Configuration Test Script")
		assert.Contains(t, text, "Testing JSON parsing logic")
		assert.Contains(t, text, "Found environment: esp32dev")
		assert.Contains(t, text, "✅ PlatformIO configuration test passed")
	})

	t.Run("Non Zero Exit Exits One", func(t *testing.T) {
		var out bytes.Buffer
		err := runProbe(context.Background(), &out, newMockProber("", 1))
		require.Error(t, err)
		assert.Equal(t, 1, exitCode(err))
		assert.True(t, errors.Is(err, errReported))

		var exitErr *runner.ExitError
		assert.True(t, errors.As(err, &exitErr))
		assert.Contains(t, out.String(), "❌ PlatformIO configuration test failed")
		// The self-test still ran and printed its cases.
		assert.Contains(t, out.String(), "Test case 3:")
	})

	t.Run("Invalid JSON Exits One", func(t *testing.T) {
		var out bytes.Buffer
		err := runProbe(context.Background(), &out, newMockProber("not valid json", 0))
		require.Error(t, err)
		assert.Equal(t, 1, exitCode(err))

		var parseErr *probe.ParseError
		assert.True(t, errors.As(err, &parseErr))
		assert.Contains(t, out.String(), "Error parsing JSON")
	})
}
