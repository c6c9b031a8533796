// Package config provides profile configuration loading for
// promptforge. A profile is a named YAML bundle supplying the
// directive/layer validation patterns and the template/schema base
// directories, selected per invocation via --config.
package config

import (
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/promptforge-dev/promptforge/internal/apperrors"
	"github.com/promptforge-dev/promptforge/internal/domain/values"
)

// DefaultProfile is the profile name used when --config is not given.
const DefaultProfile = "default"

// Default base directories, relative to the working directory.
const (
	DefaultPromptBaseDir = ".promptforge/prompts"
	DefaultSchemaBaseDir = ".promptforge/schema"
)

// Compiled-in patterns used by the default profile when no config
// file exists, so the tool works out of the box.
const (
	DefaultDirectivePattern = "^(to|summary|defect|find)$"
	DefaultLayerPattern     = "^(project|issue|task|bugs)$"
)

// Document is the raw YAML shape of a profile config file
// ({profile}-app.yml).
type Document struct {
	Version   string         `yaml:"version"`
	Params    ParamsSection  `yaml:"params"`
	AppPrompt BaseDirSection `yaml:"app_prompt"`
	AppSchema BaseDirSection `yaml:"app_schema"`
	Vars      map[string]any `yaml:"vars,omitempty"`
}

// ParamsSection holds the two-token command validation rules.
type ParamsSection struct {
	Two TwoSection `yaml:"two"`
}

// TwoSection configures the directive and layer token patterns.
type TwoSection struct {
	DirectiveType PatternSection `yaml:"directiveType"`
	LayerType     PatternSection `yaml:"layerType"`
}

// PatternSection wraps a single regex string.
type PatternSection struct {
	Pattern string `yaml:"pattern"`
}

// BaseDirSection wraps a base directory setting.
type BaseDirSection struct {
	BaseDir string `yaml:"base_dir"`
}

// DefaultDocument returns the compiled-in default profile document.
func DefaultDocument() Document {
	return Document{
		Version: "1.0.0",
		Params: ParamsSection{
			Two: TwoSection{
				DirectiveType: PatternSection{Pattern: DefaultDirectivePattern},
				LayerType:     PatternSection{Pattern: DefaultLayerPattern},
			},
		},
		AppPrompt: BaseDirSection{BaseDir: DefaultPromptBaseDir},
		AppSchema: BaseDirSection{BaseDir: DefaultSchemaBaseDir},
	}
}

// ProfileConfig is the compiled, immutable form of a profile
// document. Built once per invocation and passed explicitly into
// every call that needs it, never read from ambient state, so
// resolutions with different profiles can run side by side.
type ProfileConfig struct {
	name             string
	version          *semver.Version
	directivePattern values.Pattern
	layerPattern     values.Pattern
	promptBaseDir    string
	schemaBaseDir    string
	extra            map[string]any
}

// Compile validates and freezes a document into a ProfileConfig.
// Base directories are resolved against workdir when relative.
func (d Document) Compile(name, workdir string) (*ProfileConfig, error) {
	if d.Version == "" {
		return nil, apperrors.NewConfigurationError(name, "version", "profile version is required", nil)
	}
	version, err := semver.NewVersion(d.Version)
	if err != nil {
		return nil, apperrors.NewConfigurationError(name, "version", "profile version is not valid semver", err)
	}

	directivePattern, err := values.CompilePattern(d.Params.Two.DirectiveType.Pattern)
	if err != nil {
		return nil, apperrors.NewConfigurationError(name, "params.two.directiveType.pattern", "cannot compile directive pattern", err)
	}
	layerPattern, err := values.CompilePattern(d.Params.Two.LayerType.Pattern)
	if err != nil {
		return nil, apperrors.NewConfigurationError(name, "params.two.layerType.pattern", "cannot compile layer pattern", err)
	}

	promptBaseDir := d.AppPrompt.BaseDir
	if promptBaseDir == "" {
		promptBaseDir = DefaultPromptBaseDir
	}
	schemaBaseDir := d.AppSchema.BaseDir
	if schemaBaseDir == "" {
		schemaBaseDir = DefaultSchemaBaseDir
	}
	if !filepath.IsAbs(promptBaseDir) {
		promptBaseDir = filepath.Join(workdir, promptBaseDir)
	}
	if !filepath.IsAbs(schemaBaseDir) {
		schemaBaseDir = filepath.Join(workdir, schemaBaseDir)
	}

	extra := make(map[string]any, len(d.Vars))
	for k, v := range d.Vars {
		extra[k] = v
	}

	return &ProfileConfig{
		name:             name,
		version:          version,
		directivePattern: directivePattern,
		layerPattern:     layerPattern,
		promptBaseDir:    promptBaseDir,
		schemaBaseDir:    schemaBaseDir,
		extra:            extra,
	}, nil
}

// Name returns the profile name.
func (p *ProfileConfig) Name() string { return p.name }

// Version returns the profile document version.
func (p *ProfileConfig) Version() *semver.Version { return p.version }

// DirectivePattern returns the compiled directive token pattern.
func (p *ProfileConfig) DirectivePattern() values.Pattern { return p.directivePattern }

// LayerPattern returns the compiled layer token pattern.
func (p *ProfileConfig) LayerPattern() values.Pattern { return p.layerPattern }

// PromptBaseDir returns the template root directory.
func (p *ProfileConfig) PromptBaseDir() string { return p.promptBaseDir }

// SchemaBaseDir returns the schema root directory.
func (p *ProfileConfig) SchemaBaseDir() string { return p.schemaBaseDir }

// Extra returns an extra profile setting by key.
func (p *ProfileConfig) Extra(key string) (any, bool) {
	v, ok := p.extra[key]
	return v, ok
}
