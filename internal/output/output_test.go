package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptforge-dev/promptforge/internal/domain/prompt"
	"github.com/promptforge-dev/promptforge/internal/domain/values"
)

func sampleResolved() prompt.Resolved {
	return prompt.Resolved{
		ID:           values.NewInvocationID(),
		Profile:      "default",
		TemplatePath: ".promptforge/prompts/to/task/f_default.md",
		Text:         "# Task\n\nfix the login bug",
		Unresolved:   []string{"schema_file"},
	}
}

func TestNew_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	_, err := New("xml", &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestTextFormatter_AppendsTrailingNewline(t *testing.T) {
	var buf bytes.Buffer
	f, err := New("text", &buf)
	require.NoError(t, err)

	require.NoError(t, f.Format(sampleResolved()))
	assert.Equal(t, "# Task\n\nfix the login bug\n", buf.String())
}

func TestTextFormatter_KeepsExistingNewline(t *testing.T) {
	var buf bytes.Buffer
	resolved := sampleResolved()
	resolved.Text = "done\n"

	require.NoError(t, NewTextFormatter(&buf).Format(resolved))
	assert.Equal(t, "done\n", buf.String())
}

func TestJSONFormatter_IncludesMetadata(t *testing.T) {
	var buf bytes.Buffer
	resolved := sampleResolved()

	f, err := New("json", &buf)
	require.NoError(t, err)
	require.NoError(t, f.Format(resolved))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, resolved.ID.String(), decoded["invocation_id"])
	assert.Equal(t, "default", decoded["profile"])
	assert.Equal(t, resolved.TemplatePath, decoded["template_path"])
	assert.Equal(t, resolved.Text, decoded["text"])
	assert.Equal(t, []any{"schema_file"}, decoded["unresolved_placeholders"])
}

func TestYAMLFormatter_IncludesMetadata(t *testing.T) {
	var buf bytes.Buffer
	resolved := sampleResolved()

	f, err := New("yaml", &buf)
	require.NoError(t, err)
	require.NoError(t, f.Format(resolved))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "default", decoded["profile"])
	assert.Contains(t, buf.String(), "f_default.md")
	assert.True(t, strings.Contains(buf.String(), "schema_file"))
}
