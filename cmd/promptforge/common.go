package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var errVerboseQuiet = fmt.Errorf("--verbose and --quiet are mutually exclusive")

// RenderOptions contains the flags of the render command.
type RenderOptions struct {
	// Template selection
	OriginLayer string
	Adaptation  string

	// Input / output
	From        string
	Destination string
	Format      string

	// Flags
	Force bool
}

// DefaultRenderOptions returns sensible defaults.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Format: "text",
	}
}

// RegisterFlags adds the render flags to a cobra command.
func (opts *RenderOptions) RegisterFlags(cmd *cobra.Command) {
	// Template selection
	cmd.Flags().StringVarP(&opts.OriginLayer, "input", "i", "",
		"Origin layer of the source material (default: \"default\")")
	cmd.Flags().StringVarP(&opts.Adaptation, "adaptation", "a", "",
		"Named template adaptation (e.g. strict, agile)")

	// Input / output
	cmd.Flags().StringVarP(&opts.From, "from", "f", "",
		"Input file for {input_text} (default: stdin when piped)")
	cmd.Flags().StringVarP(&opts.Destination, "destination", "o", "",
		"Destination path: bound to {destination_path} and used as the output file")
	cmd.Flags().StringVar(&opts.Format, "format", opts.Format,
		"Output format: text, json, yaml")
	cmd.Flags().BoolVar(&opts.Force, "force", false,
		"Overwrite the destination without confirmation")
}

// ValidateFlags validates the render options.
func (opts *RenderOptions) ValidateFlags() error {
	validFormats := map[string]bool{
		"text": true, "json": true, "yaml": true,
	}
	if !validFormats[opts.Format] {
		return fmt.Errorf("invalid format: %s (valid: text, json, yaml)", opts.Format)
	}
	return nil
}
