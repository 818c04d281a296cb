package webassets

import (
	"path/filepath"
	"strings"

	"gallery-build/core/platformio"
	"gallery-build/core/utils"
)

// CompressOption is the project option that turns gzip compression on.
const CompressOption = "custom_compress_web"

// Config holds configuration for the web asset helpers.
type Config struct {
	// ProjectDir is the firmware project root (PlatformIO's PROJECT_DIR).
	ProjectDir string `mapstructure:"project_dir" default:"."`
	// DataDir is the web asset directory, relative to ProjectDir.
	DataDir string `mapstructure:"data_dir" default:"data"`
	// Compress overrides custom_compress_web from platformio.ini when set.
	Compress string `mapstructure:"custom_compress_web" default:""`
	// Environment selects the platformio.ini environment (PlatformIO's PIOENV).
	Environment string `mapstructure:"environment" default:""`
	// Publish holds the bucket upload settings.
	Publish PublishConfig `mapstructure:"publish"`
}

// PublishConfig holds configuration for uploading the data directory.
type PublishConfig struct {
	// Prefix is prepended to every object key.
	Prefix string `mapstructure:"prefix" default:""`
	// Include is a comma separated list of doublestar globs, relative to the data directory.
	Include string `mapstructure:"include" default:"**/*"`
}

// IncludePatterns splits Include into its globs.
func (c PublishConfig) IncludePatterns() []string {
	var patterns []string
	for _, p := range strings.Split(c.Include, ",") {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}

// DataPath returns the absolute-or-relative path of the data directory.
func (c Config) DataPath() string {
	if filepath.IsAbs(c.DataDir) {
		return c.DataDir
	}
	return filepath.Join(c.ProjectDir, c.DataDir)
}

// CompressValue returns the raw custom_compress_web value and where it came
// from. An explicit Compress wins, then platformio.ini, then "false".
func (c Config) CompressValue() (value, source string) {
	if c.Compress != "" {
		return c.Compress, "config"
	}
	project, err := platformio.Load(c.ProjectDir)
	if err != nil {
		return "false", "default"
	}
	env := project.SelectEnvironment(c.Environment)
	return project.Option(env, CompressOption, "false"), platformio.FileName
}

// CompressEnabled interprets the resolved option; only "true" (any case) enables it.
func (c Config) CompressEnabled() bool {
	value, _ := c.CompressValue()
	return utils.OptionEnabled(value)
}
