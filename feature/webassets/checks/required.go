package checks

import (
	"fmt"
	"os"
	"path/filepath"
)

// RequiredFiles lists the web files the firmware serves from its filesystem.
var RequiredFiles = []string{
	"index.html", "style.css", "app.js",
}

// GzipSuffix is appended to a web file name to form its compressed sibling.
const GzipSuffix = ".gz"

// EnsureDataDir creates dataDir when it does not exist yet.
// It reports whether the directory had to be created.
func EnsureDataDir(dataDir string) (bool, error) {
	if _, err := os.Stat(dataDir); err == nil {
		return false, nil
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return true, fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}
	return true, nil
}

// CheckRequired returns the required files missing from dataDir, in
// RequiredFiles order.
func CheckRequired(dataDir string) []string {
	var missing []string
	for _, name := range RequiredFiles {
		if !exists(filepath.Join(dataDir, name)) {
			missing = append(missing, name)
		}
	}
	return missing
}

// CheckCompressed returns the required files that have a gzip sibling in dataDir.
func CheckCompressed(dataDir string) []string {
	var compressed []string
	for _, name := range RequiredFiles {
		if exists(filepath.Join(dataDir, name+GzipSuffix)) {
			compressed = append(compressed, name)
		}
	}
	return compressed
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
