package webassets

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"gallery-build/feature/webassets/checks"

	"go.uber.org/zap"
)

// BuildReport summarizes one pre-build pass over the data directory.
type BuildReport struct {
	DataDir string `json:"data_dir"`
	// Created is set when the data directory did not exist and was created.
	Created    bool                    `json:"created"`
	Missing    []string                `json:"missing"`
	Compressed []checks.CompressResult `json:"compressed,omitempty"`
}

// Inventory describes the required web files without touching the filesystem.
type Inventory struct {
	DataDir    string   `json:"data_dir"`
	Required   []string `json:"required"`
	Present    []string `json:"present"`
	Missing    []string `json:"missing"`
	Compressed []string `json:"compressed"`
}

// Service verifies and compresses the firmware web assets.
type Service struct {
	dataDir  string
	compress bool
	logger   *zap.Logger
}

// NewService creates a new web asset service for dataDir.
func NewService(dataDir string, compress bool, logger *zap.Logger) *Service {
	return &Service{
		dataDir:  dataDir,
		compress: compress,
		logger:   logger,
	}
}

// DataDir returns the directory the service works on.
func (s *Service) DataDir() string {
	return s.dataDir
}

// Build runs the pre-build checks. Every condition is a warning; the
// returned report is informational and Build never fails the build.
func (s *Service) Build() *BuildReport {
	report := &BuildReport{DataDir: s.dataDir}

	created, err := checks.EnsureDataDir(s.dataDir)
	if created {
		report.Created = true
		s.logger.Warn("Data directory not found, creating...", zap.String("data_dir", s.dataDir))
		if err != nil {
			s.logger.Error("Failed to create data directory", zap.Error(err))
		}
		return report
	}

	s.logger.Info("Building web files...")

	report.Missing = checks.CheckRequired(s.dataDir)
	if len(report.Missing) > 0 {
		s.logger.Warn(fmt.Sprintf("Missing web files: %s", strings.Join(report.Missing, ", ")),
			zap.Strings("missing", report.Missing))
		s.logger.Warn("Please ensure all web files are in the data/ directory")
	} else {
		s.logger.Info("All web files found")
	}

	if s.compress {
		s.logger.Info("Compressing web files...")
		report.Compressed = checks.CompressRequired(s.dataDir, s.logger)
	}

	s.logger.Info("Web files build complete")
	return report
}

// Inspect lists which required files are present, missing and compressed.
func (s *Service) Inspect() (*Inventory, error) {
	info, err := os.Stat(s.dataDir)
	if err != nil {
		return nil, fmt.Errorf("data directory %s not found: %w", s.dataDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("data directory %s is not a directory", s.dataDir)
	}

	inv := &Inventory{
		DataDir:    s.dataDir,
		Required:   checks.RequiredFiles,
		Present:    []string{},
		Missing:    []string{},
		Compressed: []string{},
	}
	missing := checks.CheckRequired(s.dataDir)
	inv.Missing = append(inv.Missing, missing...)
	for _, name := range checks.RequiredFiles {
		if !slices.Contains(missing, name) {
			inv.Present = append(inv.Present, name)
		}
	}
	inv.Compressed = append(inv.Compressed, checks.CheckCompressed(s.dataDir)...)
	return inv, nil
}
