package output

import (
	"io"

	"github.com/goccy/go-yaml"
	"github.com/promptforge-dev/promptforge/internal/domain/prompt"
)

// YAMLFormatter writes the resolved prompt with metadata as YAML.
type YAMLFormatter struct {
	writer io.Writer
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{writer: w}
}

// Format encodes the resolved prompt as YAML.
func (f *YAMLFormatter) Format(resolved prompt.Resolved) error {
	encoder := yaml.NewEncoder(f.writer)
	defer func() {
		_ = encoder.Close() // Best-effort cleanup
	}()
	return encoder.Encode(resolved)
}
