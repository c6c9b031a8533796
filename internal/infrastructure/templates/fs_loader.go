// Package templates provides the file-system implementation of the
// template loader capability consumed by the resolution engine.
package templates

import (
	"fmt"
	"io"
	"os"
)

// FSLoader reads template files below a fixed base directory.
// All access goes through os.OpenRoot so a selector component
// containing path separators or ".." cannot escape the template root.
type FSLoader struct {
	baseDir string
}

// NewFSLoader creates a loader rooted at baseDir.
func NewFSLoader(baseDir string) *FSLoader {
	return &FSLoader{baseDir: baseDir}
}

// BaseDir returns the template root directory.
func (l *FSLoader) BaseDir() string {
	return l.baseDir
}

// Exists reports whether a regular file exists at the given path
// relative to the base directory. A missing or unreadable base
// directory reads as "nothing exists", which lets the resolver fall
// through to its not-found diagnostics.
func (l *FSLoader) Exists(name string) bool {
	root, err := os.OpenRoot(l.baseDir)
	if err != nil {
		return false
	}
	defer func() {
		_ = root.Close() // Best-effort cleanup
	}()

	info, err := root.Stat(name)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// Read returns the contents of a template relative to the base
// directory.
func (l *FSLoader) Read(name string) (string, error) {
	root, err := os.OpenRoot(l.baseDir)
	if err != nil {
		return "", fmt.Errorf("failed to open template root: %w", err)
	}
	defer func() {
		_ = root.Close() // Best-effort cleanup
	}()

	file, err := root.Open(name)
	if err != nil {
		return "", fmt.Errorf("failed to open template: %w", err)
	}
	defer func() {
		_ = file.Close() // Best-effort cleanup
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read template: %w", err)
	}
	return string(data), nil
}
