package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/promptforge-dev/promptforge/internal/config"
)

var initForce bool

// initCmd scaffolds a promptforge working directory.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold a promptforge working directory",
	Long: `Create the .promptforge directory with the default profile config
and a starter set of templates and schemas. Existing templates are
left untouched; the config file is only replaced after confirmation.`,
	Example: `  promptforge init
  promptforge init --workdir ./docs --force`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runInit(effectiveWorkdir())
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing profile config without confirmation")
	rootCmd.AddCommand(initCmd)
}

// Starter templates, keyed by path relative to the prompt base dir.
// Each keeps documentation placeholders for variables the user may
// not supply on the first run.
var starterTemplates = map[string]string{
	"to/task/f_default.md": `# Task breakdown

Break the following material into concrete, actionable tasks.
Write the result to {destination_path}.

## Input

{input_text}
`,
	"to/task/f_project.md": `# Project to tasks

Decompose the project description below into ordered tasks with
dependencies. Write the result to {destination_path}.

## Project description

{input_text}
`,
	"to/project/f_default.md": `# Project outline

Turn the following notes into a structured project outline.

## Notes

{input_text}
`,
	"summary/issue/f_default.md": `# Issue summary

Summarize the following material as a single issue report:
context, observed behavior, and impact.

## Material

{input_text}
`,
	"defect/issue/f_default.md": `# Defect analysis

Analyze the following error logs and describe the defect: symptoms,
suspected cause, and reproduction hints. Structure the result
according to {schema_file}.

## Logs

{input_text}
`,
	"find/bugs/f_default.md": `# Bug hunt

Inspect the following code and list potential bugs with file and
line references.

## Code

{input_text}
`,
}

// Starter schemas, keyed by path relative to the schema base dir.
var starterSchemas = map[string]string{
	"defect/issue/base.schema.json": `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "symptoms": { "type": "string" },
    "suspected_cause": { "type": "string" },
    "reproduction": { "type": "array", "items": { "type": "string" } }
  },
  "required": ["symptoms"]
}
`,
}

// runInit implements the core logic for the init command.
func runInit(workdir string) error {
	loader := config.NewProfileLoader(workdir)
	configPath := loader.ProfilePath(config.DefaultProfile)

	if _, err := os.Stat(configPath); err == nil && !initForce {
		confirmed := false
		err := huh.NewConfirm().
			Title(fmt.Sprintf("Overwrite %s?", configPath)).
			Description("Existing profile configuration will be replaced.").
			Value(&confirmed).
			Run()
		if err != nil {
			return fmt.Errorf("%s exists; re-run with --force to overwrite", configPath)
		}
		if !confirmed {
			return fmt.Errorf("aborted: %s not overwritten", configPath)
		}
	}

	doc := config.DefaultDocument()
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to render default config: %w", err)
	}
	if err := writeFile(configPath, string(data)); err != nil {
		return err
	}
	slog.Info("profile config written", "path", configPath)

	// Compile once so the scaffold and the render command agree on
	// the resolved base directories.
	profile, err := doc.Compile(config.DefaultProfile, workdir)
	if err != nil {
		return err
	}

	written := 0
	for rel, content := range starterTemplates {
		path := filepath.Join(profile.PromptBaseDir(), filepath.FromSlash(rel))
		if _, err := os.Stat(path); err == nil {
			continue // Never clobber user templates
		}
		if err := writeFile(path, content); err != nil {
			return err
		}
		written++
	}
	for rel, content := range starterSchemas {
		path := filepath.Join(profile.SchemaBaseDir(), filepath.FromSlash(rel))
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := writeFile(path, content); err != nil {
			return err
		}
		written++
	}

	slog.Info("workspace initialized", "workdir", workdir, "starter_files", written)
	fmt.Printf("Initialized promptforge workspace in %s\n", workdir)
	fmt.Println("Try: cat notes.txt | promptforge render to task")
	return nil
}

// writeFile writes content, creating parent directories.
func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
