package probe

import "strings"

// Config holds configuration for the live PlatformIO probe.
type Config struct {
	// Command is the PlatformIO executable.
	Command string `mapstructure:"command" default:"pio"`
	// Args are the space separated arguments that make PlatformIO dump its configuration.
	Args string `mapstructure:"args" default:"project config --json-output"`
	// WorkDir is the directory the command runs in. Empty uses the current directory.
	WorkDir string `mapstructure:"work_dir" default:""`
	// TimeoutSeconds bounds the command run. Zero waits until the process exits.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"120"`
}

// CommandLine returns the executable and its argument list.
func (c Config) CommandLine() (string, []string) {
	name := c.Command
	if name == "" {
		name = "pio"
	}
	return name, strings.Fields(c.Args)
}
