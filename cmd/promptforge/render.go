package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/promptforge-dev/promptforge/internal/apperrors"
	"github.com/promptforge-dev/promptforge/internal/config"
	"github.com/promptforge-dev/promptforge/internal/engine"
	"github.com/promptforge-dev/promptforge/internal/infrastructure/schema"
	"github.com/promptforge-dev/promptforge/internal/infrastructure/templates"
	"github.com/promptforge-dev/promptforge/internal/input"
	"github.com/promptforge-dev/promptforge/internal/output"
)

var renderOpts = DefaultRenderOptions()

// renderCmd represents the render command.
var renderCmd = &cobra.Command{
	Use:   "render <directive> <layer>",
	Short: "Resolve a template and render a prompt",
	Long: `Validate the directive/layer pair against the active profile,
resolve the matching template through the fallback chain, and render
it with standard and custom variables.

Template lookup (first hit wins):
  {base_dir}/{directive}/{layer}/f_{origin}_{adaptation}.md
  {base_dir}/{directive}/{layer}/f_{origin}.md
  {base_dir}/{directive}/{layer}/f_default.md

Custom variables:
  --uv-<name>=<value>    Bind {name} in the template (repeatable)`,
	Example: `  cat notes.txt | promptforge render to task
  promptforge render summary issue -f report.md -o out/summary.md
  promptforge render to task -i project -a strict --uv-author=alice`,
	Args: cobra.ExactArgs(2),
	// Unknown flags are tolerated so --uv-* can be scanned from argv.
	FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender(cmd.Context(), args[0], args[1], os.Args[1:])
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderOpts.RegisterFlags(renderCmd)
}

// runRender implements the core logic for the render command.
func runRender(ctx context.Context, directive, layer string, rawArgs []string) error {
	if err := renderOpts.ValidateFlags(); err != nil {
		return err
	}

	customVars, err := parseCustomVariables(rawArgs)
	if err != nil {
		return err
	}

	workdir := effectiveWorkdir()
	profile, err := config.NewProfileLoader(workdir).Load(profileName)
	if err != nil {
		return err
	}
	slog.Debug("profile loaded", "name", profile.Name(),
		"version", profile.Version().String(), "prompts", profile.PromptBaseDir())

	source, err := input.Read(renderOpts.From, os.Stdin)
	if err != nil {
		return err
	}

	eng := engine.New(
		profile,
		templates.NewFSLoader(profile.PromptBaseDir()),
		engine.WithSchemaResolver(schema.NewResolver(profile.SchemaBaseDir(), profile.Name())),
	)

	resolved, err := eng.Resolve(ctx, engine.Request{
		Directive:       directive,
		Layer:           layer,
		OriginLayer:     renderOpts.OriginLayer,
		Adaptation:      renderOpts.Adaptation,
		InputText:       source.Text,
		InputTextFile:   source.Path,
		DestinationPath: renderOpts.Destination,
		CustomVariables: customVars,
	})
	if err != nil {
		return describeResolveError(err)
	}

	if resolved.HasUnresolved() {
		slog.Warn("unresolved placeholders left verbatim", "names", resolved.Unresolved)
	}

	writer, closeWriter, err := destinationWriter(renderOpts.Destination, renderOpts.Force)
	if err != nil {
		return err
	}
	defer closeWriter()

	formatter, err := output.New(renderOpts.Format, writer)
	if err != nil {
		return err
	}
	if err := formatter.Format(*resolved); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	if renderOpts.Destination != "" {
		slog.Info("prompt written", "destination", renderOpts.Destination,
			"template", resolved.TemplatePath)
	}
	return nil
}

// describeResolveError turns the engine's typed errors into the
// actionable messages the CLI contract requires: the offending token
// and pattern, the full attempted chain, or the conflicting name.
// Never a generic failure line.
func describeResolveError(err error) error {
	var notFound *apperrors.TemplateNotFoundError
	if errors.As(err, &notFound) {
		msg := fmt.Sprintf("no template found under %s; tried in order:", notFound.BaseDir)
		for _, candidate := range notFound.Attempted {
			msg += "\n  - " + candidate
		}
		msg += "\ncreate one of these files or adjust --input/--adaptation"
		return errors.New(msg)
	}

	var invalidDirective *apperrors.InvalidDirectiveError
	if errors.As(err, &invalidDirective) {
		return fmt.Errorf("directive %q is not allowed by profile %s (pattern: %s)",
			invalidDirective.Token, invalidDirective.Profile, invalidDirective.Pattern)
	}

	var invalidLayer *apperrors.InvalidLayerError
	if errors.As(err, &invalidLayer) {
		return fmt.Errorf("layer %q is not allowed by profile %s (pattern: %s)",
			invalidLayer.Token, invalidLayer.Profile, invalidLayer.Pattern)
	}

	var conflict *apperrors.BindingConflictError
	if errors.As(err, &conflict) {
		return fmt.Errorf("--uv-%s collides with the reserved standard variable %q",
			conflict.Name, conflict.Name)
	}

	return err
}

// destinationWriter returns the output writer: the destination file
// when set (creating parent directories, confirming overwrite unless
// --force), stdout otherwise.
func destinationWriter(destination string, force bool) (io.Writer, func(), error) {
	if destination == "" {
		return os.Stdout, func() {}, nil
	}

	if _, err := os.Stat(destination); err == nil && !force {
		confirmed := false
		err := huh.NewConfirm().
			Title(fmt.Sprintf("Overwrite %s?", destination)).
			Value(&confirmed).
			Run()
		if err != nil {
			return nil, nil, fmt.Errorf("%s exists; re-run with --force to overwrite", destination)
		}
		if !confirmed {
			return nil, nil, fmt.Errorf("aborted: %s not overwritten", destination)
		}
	}

	if dir := filepath.Dir(destination); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create destination directory: %w", err)
		}
	}

	//nolint:gosec // G304: user-controlled output path is intentional
	file, err := os.Create(destination)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create destination file: %w", err)
	}
	return file, func() {
		_ = file.Close() // Best-effort cleanup
	}, nil
}
