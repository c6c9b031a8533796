package services

import (
	"github.com/promptforge-dev/promptforge/internal/apperrors"
	"github.com/promptforge-dev/promptforge/internal/domain/prompt"
)

// ExistsFunc reports whether a template exists at a path relative to
// the prompt base directory. This predicate is the resolver's only
// I/O boundary.
type ExistsFunc func(path string) bool

// TemplatePathResolver walks a selector's candidate chain and picks
// the first existing template.
type TemplatePathResolver struct{}

// NewTemplatePathResolver creates a new template path resolver.
func NewTemplatePathResolver() *TemplatePathResolver {
	return &TemplatePathResolver{}
}

// Resolve tries each candidate in strict chain order and returns the
// first path for which exists is true. Resolution stops at the first
// hit. If every candidate is absent it fails with a
// TemplateNotFoundError carrying the full attempted chain, the most
// common failure users hit, so the diagnostics list every fallback
// level that was checked. baseDir is used for diagnostics only.
func (r *TemplatePathResolver) Resolve(selector prompt.Selector, baseDir string, exists ExistsFunc) (string, error) {
	chain := selector.Candidates()
	for _, candidate := range chain {
		if exists(candidate) {
			return candidate, nil
		}
	}
	return "", apperrors.NewTemplateNotFoundError(baseDir, chain)
}
