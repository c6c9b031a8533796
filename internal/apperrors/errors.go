// Package apperrors defines the typed errors surfaced by the prompt
// resolution pipeline. Each stage fails with its most specific error;
// callers inspect them with errors.As and print structured detail.
package apperrors

import (
	"fmt"
	"strings"
)

// InvalidDirectiveError indicates the directive token failed the
// profile-configured pattern.
type InvalidDirectiveError struct {
	Token   string // Offending token
	Pattern string // Pattern it was matched against
	Profile string // Active profile name
}

func (e *InvalidDirectiveError) Error() string {
	return fmt.Sprintf("invalid directive %q: does not match pattern %s (profile %s)",
		e.Token, e.Pattern, e.Profile)
}

// NewInvalidDirectiveError creates a new invalid directive error.
func NewInvalidDirectiveError(token, pattern, profile string) *InvalidDirectiveError {
	return &InvalidDirectiveError{
		Token:   token,
		Pattern: pattern,
		Profile: profile,
	}
}

// InvalidLayerError indicates the layer token failed the
// profile-configured pattern.
type InvalidLayerError struct {
	Token   string
	Pattern string
	Profile string
}

func (e *InvalidLayerError) Error() string {
	return fmt.Sprintf("invalid layer %q: does not match pattern %s (profile %s)",
		e.Token, e.Pattern, e.Profile)
}

// NewInvalidLayerError creates a new invalid layer error.
func NewInvalidLayerError(token, pattern, profile string) *InvalidLayerError {
	return &InvalidLayerError{
		Token:   token,
		Pattern: pattern,
		Profile: profile,
	}
}

// BindingConflictError indicates a custom variable collides with a
// reserved standard variable name. Collisions are rejected rather than
// silently overwriting, because templates reference variables by bare
// name and resolution must stay unambiguous.
type BindingConflictError struct {
	Name string // Bare custom variable name (uv- prefix already stripped)
}

func (e *BindingConflictError) Error() string {
	return fmt.Sprintf("custom variable %q collides with a reserved standard variable", e.Name)
}

// NewBindingConflictError creates a new binding conflict error.
func NewBindingConflictError(name string) *BindingConflictError {
	return &BindingConflictError{Name: name}
}

// TemplateNotFoundError indicates every candidate in the fallback
// chain was absent. Attempted carries the full ordered chain so the
// user can see exactly which fallback levels were checked.
type TemplateNotFoundError struct {
	BaseDir   string
	Attempted []string // Relative candidate paths, in the order tried
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("no template found under %s (tried: %s)",
		e.BaseDir, strings.Join(e.Attempted, ", "))
}

// NewTemplateNotFoundError creates a new template-not-found error.
func NewTemplateNotFoundError(baseDir string, attempted []string) *TemplateNotFoundError {
	return &TemplateNotFoundError{
		BaseDir:   baseDir,
		Attempted: attempted,
	}
}

// TemplateLoadError indicates a template existed but could not be
// read (permissions, race, corruption). Distinct from not-found
// because the remediation differs.
type TemplateLoadError struct {
	Path  string
	Cause error
}

func (e *TemplateLoadError) Error() string {
	return fmt.Sprintf("failed to read template %s: %v", e.Path, e.Cause)
}

func (e *TemplateLoadError) Unwrap() error {
	return e.Cause
}

// NewTemplateLoadError creates a new template load error.
func NewTemplateLoadError(path string, cause error) *TemplateLoadError {
	return &TemplateLoadError{
		Path:  path,
		Cause: cause,
	}
}

// ConfigurationError indicates a profile config or setup issue.
type ConfigurationError struct {
	Cause   error
	Profile string
	Aspect  string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error (profile %s, %s): %s: %v",
			e.Profile, e.Aspect, e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error (profile %s, %s): %s",
		e.Profile, e.Aspect, e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(profile, aspect, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		Profile: profile,
		Aspect:  aspect,
		Message: message,
		Cause:   cause,
	}
}
