package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/promptforge-dev/promptforge/internal/apperrors"
)

// ConfigDirName is the per-workdir directory holding profile files.
const ConfigDirName = ".promptforge/config"

// ProfileLoader loads profile config files from a working directory.
// Profiles live at {workdir}/.promptforge/config/{name}-app.yml.
type ProfileLoader struct {
	workdir string
}

// NewProfileLoader creates a loader rooted at workdir.
func NewProfileLoader(workdir string) *ProfileLoader {
	if workdir == "" {
		workdir = "."
	}
	return &ProfileLoader{workdir: workdir}
}

// ProfilePath returns the config file path for a profile name.
func (l *ProfileLoader) ProfilePath(name string) string {
	return filepath.Join(l.workdir, ConfigDirName, name+"-app.yml")
}

// Load loads and compiles the named profile. The default profile
// falls back to compiled-in defaults when no config file exists, so
// the tool works without prior setup; any other missing profile is a
// configuration error.
func (l *ProfileLoader) Load(name string) (*ProfileConfig, error) {
	if name == "" {
		name = DefaultProfile
	}

	path := l.ProfilePath(name)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if name == DefaultProfile {
			return DefaultDocument().Compile(name, l.workdir)
		}
		return nil, apperrors.NewConfigurationError(name, "file",
			fmt.Sprintf("profile config not found at %s", path), nil)
	}

	// Security: Use os.OpenRoot to prevent path traversal attacks
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, apperrors.NewConfigurationError(name, "file", "failed to open config directory", err)
	}
	defer func() {
		_ = root.Close() // Best-effort cleanup
	}()

	file, err := root.Open(base)
	if err != nil {
		return nil, apperrors.NewConfigurationError(name, "file", "failed to open profile config", err)
	}
	defer func() {
		_ = file.Close() // Best-effort cleanup
	}()

	return l.LoadFromReader(name, file)
}

// LoadFromReader loads and compiles a profile from an io.Reader.
// Useful for testing with in-memory YAML data.
func (l *ProfileLoader) LoadFromReader(name string, r io.Reader) (*ProfileConfig, error) {
	var doc Document

	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&doc); err != nil {
		return nil, apperrors.NewConfigurationError(name, "yaml", "failed to decode profile YAML", err)
	}

	return doc.Compile(name, l.workdir)
}
