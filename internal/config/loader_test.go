package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptforge-dev/promptforge/internal/apperrors"
)

const profileYAML = `
version: 2.1.0
params:
  two:
    directiveType:
      pattern: ^(to|summary)$
    layerType:
      pattern: ^(project|task)$
app_prompt:
  base_dir: prompts
app_schema:
  base_dir: schema
vars:
  team: core
`

func TestLoadFromReader(t *testing.T) {
	loader := NewProfileLoader("/work")

	profile, err := loader.LoadFromReader("team", strings.NewReader(profileYAML))
	require.NoError(t, err)

	assert.Equal(t, "team", profile.Name())
	assert.Equal(t, "2.1.0", profile.Version().String())
	assert.True(t, profile.DirectivePattern().Match("summary"))
	assert.False(t, profile.DirectivePattern().Match("defect"))
	assert.Equal(t, filepath.Join("/work", "prompts"), profile.PromptBaseDir())
	assert.Equal(t, filepath.Join("/work", "schema"), profile.SchemaBaseDir())
}

func TestLoadFromReader_BadYAML(t *testing.T) {
	loader := NewProfileLoader(".")

	_, err := loader.LoadFromReader("broken", strings.NewReader(":\n  - ]["))
	var cfgErr *apperrors.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "yaml", cfgErr.Aspect)
}

func TestLoad_FromFile(t *testing.T) {
	workdir := t.TempDir()
	configDir := filepath.Join(workdir, ConfigDirName)
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(configDir, "team-app.yml"), []byte(profileYAML), 0o644))

	profile, err := NewProfileLoader(workdir).Load("team")
	require.NoError(t, err)
	assert.Equal(t, "team", profile.Name())
	assert.Equal(t, filepath.Join(workdir, "prompts"), profile.PromptBaseDir())
}

func TestLoad_DefaultProfileFallsBackToBuiltins(t *testing.T) {
	workdir := t.TempDir() // no config dir at all

	profile, err := NewProfileLoader(workdir).Load(DefaultProfile)
	require.NoError(t, err)
	assert.True(t, profile.DirectivePattern().Match("find"))
	assert.Equal(t, filepath.Join(workdir, DefaultPromptBaseDir), profile.PromptBaseDir())
}

func TestLoad_EmptyNameMeansDefault(t *testing.T) {
	profile, err := NewProfileLoader(t.TempDir()).Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultProfile, profile.Name())
}

func TestLoad_MissingNamedProfile(t *testing.T) {
	_, err := NewProfileLoader(t.TempDir()).Load("nope")
	require.Error(t, err)

	var cfgErr *apperrors.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "nope", cfgErr.Profile)
	assert.Contains(t, cfgErr.Message, "not found")
}

func TestProfilePath(t *testing.T) {
	loader := NewProfileLoader("/work")
	assert.Equal(t,
		filepath.Join("/work", ConfigDirName, "team-app.yml"),
		loader.ProfilePath("team"))
}
