// Package output formats resolved prompts for emission. The text
// format writes the prompt alone; json and yaml include resolution
// metadata (template path, unresolved placeholders, invocation ID).
package output

import (
	"fmt"
	"io"

	"github.com/promptforge-dev/promptforge/internal/domain/prompt"
)

// Formatter renders a resolved prompt to its writer.
type Formatter interface {
	Format(resolved prompt.Resolved) error
}

// New returns the formatter for a format name.
func New(format string, w io.Writer) (Formatter, error) {
	switch format {
	case "text":
		return NewTextFormatter(w), nil
	case "json":
		return NewJSONFormatter(w, true), nil
	case "yaml":
		return NewYAMLFormatter(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s (supported: text, json, yaml)", format)
	}
}
