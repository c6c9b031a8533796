// Package engine orchestrates prompt resolution: validate the token
// pair, resolve the template path through the fallback chain, load
// the template, and substitute variables. One engine call is one
// stateless invocation; nothing is shared or reused across calls.
package engine

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/promptforge-dev/promptforge/internal/apperrors"
	"github.com/promptforge-dev/promptforge/internal/config"
	"github.com/promptforge-dev/promptforge/internal/domain/prompt"
	"github.com/promptforge-dev/promptforge/internal/domain/services"
	"github.com/promptforge-dev/promptforge/internal/domain/values"
)

// TemplateLoader is the engine's only file-system capability.
// Exists backs the candidate-chain walk; Read loads the winning
// template. Paths are relative to the profile's prompt base dir.
type TemplateLoader interface {
	Exists(name string) bool
	Read(name string) (string, error)
}

// SchemaResolver supplies the schema_file standard variable. An
// implementation may return "" to leave the variable unbound.
type SchemaResolver interface {
	Resolve(directive, layer string) (string, error)
}

// Stage names the pipeline states. No stage is re-entered; failure at
// any stage aborts the pipeline with that stage's specific error.
type Stage string

const (
	StageValidating   Stage = "validating"
	StageResolving    Stage = "resolving"
	StageLoading      Stage = "loading"
	StageSubstituting Stage = "substituting"
	StageDone         Stage = "done"
)

// Request carries everything a single resolution needs. The engine
// reads no ambient state: profile, tokens, modifiers, and variables
// all arrive here.
type Request struct {
	Directive       string
	Layer           string
	OriginLayer     string // "" means the default origin layer
	Adaptation      string
	InputText       string
	InputTextFile   string
	DestinationPath string
	CustomVariables map[string]string // bare names, uv- prefix stripped
}

// Engine is the prompt resolution orchestrator.
type Engine struct {
	profile     *config.ProfileConfig
	loader      TemplateLoader
	schemas     SchemaResolver
	validator   *services.PatternValidator
	resolver    *services.TemplatePathResolver
	substitutor *prompt.Substitutor
}

// Option configures optional engine collaborators.
type Option func(*Engine)

// WithSchemaResolver wires a schema resolver for the schema_file
// variable. Without it the variable stays unbound.
func WithSchemaResolver(r SchemaResolver) Option {
	return func(e *Engine) {
		e.schemas = r
	}
}

// New creates an engine for one profile and template loader.
func New(profile *config.ProfileConfig, loader TemplateLoader, opts ...Option) *Engine {
	e := &Engine{
		profile:     profile,
		loader:      loader,
		validator:   services.NewPatternValidator(),
		resolver:    services.NewTemplatePathResolver(),
		substitutor: prompt.NewSubstitutor(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Resolve runs the pipeline for one request. Each stage fails fast
// with its most specific error; errors are never merged or downgraded
// across stages, so callers can tell a bad command from a missing
// template from a bad variable.
func (e *Engine) Resolve(ctx context.Context, req Request) (*prompt.Resolved, error) {
	// Validating: tokens first, then variable names, all before I/O.
	slog.Debug("prompt resolution", "stage", StageValidating, "profile", e.profile.Name())

	directive, layer, err := e.validator.Validate(
		services.TwoTokenCommand{Directive: req.Directive, Layer: req.Layer},
		services.ValidationRules{
			ProfileName:      e.profile.Name(),
			DirectivePattern: e.profile.DirectivePattern(),
			LayerPattern:     e.profile.LayerPattern(),
		},
	)
	if err != nil {
		return nil, err
	}

	bindings, err := e.bindVariables(directive, layer, req)
	if err != nil {
		return nil, err
	}

	// Resolving: walk the candidate chain against the loader.
	slog.Debug("prompt resolution", "stage", StageResolving,
		"directive", directive.String(), "layer", layer.String())

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	selector := prompt.NewSelector(directive, layer, req.OriginLayer, req.Adaptation)
	templateName, err := e.resolver.Resolve(selector, e.profile.PromptBaseDir(), e.loader.Exists)
	if err != nil {
		return nil, err
	}

	// Loading: a read failure after a positive Exists is a load
	// error, not a not-found. The remediation differs.
	slog.Debug("prompt resolution", "stage", StageLoading, "template", templateName)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	templatePath := filepath.Join(e.profile.PromptBaseDir(), templateName)
	templateText, err := e.loader.Read(templateName)
	if err != nil {
		return nil, apperrors.NewTemplateLoadError(templatePath, err)
	}

	// Substituting: single pass, unknown placeholders kept verbatim.
	slog.Debug("prompt resolution", "stage", StageSubstituting, "bindings", bindings.Len())

	text, unresolved := e.substitutor.Substitute(templateText, bindings)

	resolved := &prompt.Resolved{
		ID:           values.NewInvocationID(),
		Profile:      e.profile.Name(),
		TemplatePath: templatePath,
		Text:         text,
		Unresolved:   unresolved,
	}

	slog.Debug("prompt resolution", "stage", StageDone,
		"invocation_id", resolved.ID.String(), "unresolved", len(unresolved))
	return resolved, nil
}

// bindVariables populates the standard variables that have values and
// merges the user's custom variables. A standard variable without a
// value stays unbound so templates keep their documentation
// placeholders.
func (e *Engine) bindVariables(directive values.DirectiveType, layer values.LayerType, req Request) (prompt.BindingSet, error) {
	standard := make(map[string]string, 4)
	if req.InputText != "" {
		standard[prompt.VarInputText] = req.InputText
	}
	if req.InputTextFile != "" {
		standard[prompt.VarInputTextFile] = req.InputTextFile
	}
	if req.DestinationPath != "" {
		standard[prompt.VarDestinationPath] = req.DestinationPath
	}
	if e.schemas != nil {
		schemaPath, err := e.schemas.Resolve(directive.String(), layer.String())
		if err != nil {
			return prompt.BindingSet{}, err
		}
		if schemaPath != "" {
			standard[prompt.VarSchemaFile] = schemaPath
		}
	}

	return prompt.MergeBindings(standard, req.CustomVariables)
}
