package platformio

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-ini/ini"
)

// FileName is the project file PlatformIO expects in the project root.
const FileName = "platformio.ini"

// EnvPrefix marks the sections that declare build environments.
const EnvPrefix = "env:"

const (
	commonSection   = "env"
	platformSection = "platformio"
)

// Project is a parsed platformio.ini.
type Project struct {
	file *ini.File
}

// Load parses <projectDir>/platformio.ini.
func Load(projectDir string) (*Project, error) {
	path := filepath.Join(projectDir, FileName)
	f, err := ini.LoadSources(ini.LoadOptions{
		AllowPythonMultilineValues: true,
		SpaceBeforeInlineComment:   true,
	}, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return &Project{file: f}, nil
}

// Environments returns the declared environment names in file order.
func (p *Project) Environments() []string {
	var names []string
	for _, s := range p.file.Sections() {
		if name, ok := strings.CutPrefix(s.Name(), EnvPrefix); ok && name != "" {
			names = append(names, name)
		}
	}
	return names
}

// DefaultEnvironments returns the [platformio] default_envs entries.
func (p *Project) DefaultEnvironments() []string {
	s, err := p.file.GetSection(platformSection)
	if err != nil || !s.HasKey("default_envs") {
		return nil
	}
	return splitList(s.Key("default_envs").String())
}

// SelectEnvironment picks env when set, otherwise the first default_envs
// entry, otherwise the first declared environment.
func (p *Project) SelectEnvironment(env string) string {
	if env != "" {
		return env
	}
	if defaults := p.DefaultEnvironments(); len(defaults) > 0 {
		return defaults[0]
	}
	if envs := p.Environments(); len(envs) > 0 {
		return envs[0]
	}
	return ""
}

// Option returns the value of name for env, falling back to the [env]
// section and then to fallback.
func (p *Project) Option(env, name, fallback string) string {
	seen := map[string]bool{}
	section := EnvPrefix + env
	for env != "" && !seen[section] {
		seen[section] = true
		s, err := p.file.GetSection(section)
		if err != nil {
			break
		}
		if s.HasKey(name) {
			return strings.TrimSpace(s.Key(name).String())
		}
		if !s.HasKey("extends") {
			break
		}
		// Only the first parent is followed.
		parents := splitList(s.Key("extends").String())
		if len(parents) == 0 {
			break
		}
		section = parents[0]
		if !strings.HasPrefix(section, EnvPrefix) && section != commonSection {
			section = EnvPrefix + section
		}
	}

	if s, err := p.file.GetSection(commonSection); err == nil && s.HasKey(name) {
		return strings.TrimSpace(s.Key(name).String())
	}
	return fallback
}

func splitList(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}
