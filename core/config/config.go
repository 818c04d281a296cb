package config

import (
	"path/filepath"
	"reflect"
	"strings"

	"gallery-build/core/logger"
	"gallery-build/core/server"
	"gallery-build/core/storage"
	"gallery-build/feature/probe"
	"gallery-build/feature/webassets"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the build helpers.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Web holds configuration for the web asset helpers.
	Web webassets.Config `mapstructure:"web"`
	// Probe holds configuration for the PlatformIO configuration probe.
	Probe probe.Config `mapstructure:"probe"`
	// Server holds configuration for the preview HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// platformEnv maps keys to the variables PlatformIO exports to build scripts.
var platformEnv = map[string]string{
	"web.project_dir": "PROJECT_DIR",
	"web.environment": "PIOENV",
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// Load .env file if it exists; a missing file is the normal case in CI.
	envPath := filepath.Join(path, ".env")
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicit variables (WEB_PROJECT_DIR) win over the PlatformIO ones.
	for key, env := range platformEnv {
		name := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, name, env); err != nil {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
