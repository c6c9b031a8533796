package output

import (
	"io"
	"strings"

	"github.com/promptforge-dev/promptforge/internal/domain/prompt"
)

// TextFormatter writes the rendered prompt text verbatim, ensuring a
// trailing newline so shell pipelines behave.
type TextFormatter struct {
	writer io.Writer
}

// NewTextFormatter creates a new text formatter.
func NewTextFormatter(w io.Writer) *TextFormatter {
	return &TextFormatter{writer: w}
}

// Format writes the prompt text.
func (f *TextFormatter) Format(resolved prompt.Resolved) error {
	text := resolved.Text
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, err := io.WriteString(f.writer, text)
	return err
}
