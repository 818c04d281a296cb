package server_test

import (
	"testing"

	"gallery-build/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsValidPort(t *testing.T) {
	tests := []struct {
		name string
		port string
		want bool
	}{
		{"Default", "8080", true},
		{"Low", "1", true},
		{"Max", "65535", true},
		{"Zero", "0", false},
		{"TooHigh", "65536", false},
		{"NotNumber", "http", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Port: tt.port}
			assert.Equal(t, tt.want, c.IsValidPort())
		})
	}
}

func TestConfig_Address(t *testing.T) {
	assert.Equal(t, ":8080", server.Config{Port: "8080"}.Address())
	assert.Equal(t, "127.0.0.1:3000", server.Config{Host: "127.0.0.1", Port: "3000"}.Address())
}
