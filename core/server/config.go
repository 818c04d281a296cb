package server

import "strconv"

// Config holds configuration for the preview HTTP server.
type Config struct {
	// Host is the interface the server binds to. Empty binds all interfaces.
	Host string `mapstructure:"host" default:""`
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
}

// IsValidPort checks if the configured port is a usable TCP port.
func (c Config) IsValidPort() bool {
	p, err := strconv.Atoi(c.Port)
	return err == nil && p > 0 && p < 65536
}

// Address returns the listen address for the server.
func (c Config) Address() string {
	return c.Host + ":" + c.Port
}
