package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info"`
	// Format is the encoding of log lines (console, json).
	Format string `mapstructure:"format" default:"console"`
	// Output is where log lines are written (stdout, stderr or a file path).
	Output string `mapstructure:"output" default:"stdout"`
}
