// Package input resolves the source material a prompt is rendered
// from: an explicit --from file, piped standard input, or nothing.
package input

import (
	"fmt"
	"io"
	"os"
)

// Source is the resolved input material. Text is empty when the user
// supplied neither a file nor piped input; templates then keep their
// documentation placeholders for manual editing.
type Source struct {
	Text string
	Path string // Set only when the input came from a file
}

// Read resolves the input source. An explicit file path wins over
// stdin; stdin is consumed only when it is not a terminal.
func Read(fromPath string, stdin *os.File) (Source, error) {
	if fromPath != "" {
		data, err := os.ReadFile(fromPath) //nolint:gosec // G304: user-chosen input file is the point
		if err != nil {
			return Source{}, fmt.Errorf("failed to read input file %s: %w", fromPath, err)
		}
		return Source{Text: string(data), Path: fromPath}, nil
	}

	if stdin != nil && isPiped(stdin) {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return Source{}, fmt.Errorf("failed to read stdin: %w", err)
		}
		return Source{Text: string(data)}, nil
	}

	return Source{}, nil
}

// isPiped reports whether f is fed by a pipe or file rather than a
// terminal.
func isPiped(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}
