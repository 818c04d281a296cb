// Package config provides configuration management for gallery-build.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults are declared on the config structs with
// `default` tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all settings, divided into subsections:
//   - Web: project and data directories, custom_compress_web override, publish globs
//   - Probe: the PlatformIO command used by the configuration probe
//   - Server: preview server host and port
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: logging level, format and output
//
// PlatformIO's PROJECT_DIR and PIOENV variables are honoured as fallbacks for
// WEB_PROJECT_DIR and WEB_ENVIRONMENT.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Web.DataPath())
package config
