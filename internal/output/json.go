package output

import (
	"encoding/json"
	"io"

	"github.com/promptforge-dev/promptforge/internal/domain/prompt"
)

// JSONFormatter writes the resolved prompt with metadata as JSON.
type JSONFormatter struct {
	writer io.Writer
	pretty bool
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(w io.Writer, pretty bool) *JSONFormatter {
	return &JSONFormatter{writer: w, pretty: pretty}
}

// Format encodes the resolved prompt as JSON.
func (f *JSONFormatter) Format(resolved prompt.Resolved) error {
	encoder := json.NewEncoder(f.writer)
	if f.pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(resolved)
}
