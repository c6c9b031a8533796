// Package prompt contains the pure domain model of prompt resolution:
// template selectors and their fallback chains, variable binding sets,
// placeholder substitution, and the resolved prompt itself. Nothing in
// this package touches the file system.
package prompt

import (
	"path"

	"github.com/promptforge-dev/promptforge/internal/domain/values"
)

// DefaultOriginLayer is the origin layer assumed when --input is not
// given, and the final fallback of every candidate chain.
const DefaultOriginLayer = "default"

// Selector identifies the template variant to resolve. OriginLayer is
// the layer type of the source material ("from X to Y"); Adaptation is
// an optional named style suffix.
type Selector struct {
	Directive   values.DirectiveType
	Layer       values.LayerType
	OriginLayer string
	Adaptation  string
}

// NewSelector builds a Selector, applying the default origin layer
// when none was specified.
func NewSelector(directive values.DirectiveType, layer values.LayerType, originLayer, adaptation string) Selector {
	if originLayer == "" {
		originLayer = DefaultOriginLayer
	}
	return Selector{
		Directive:   directive,
		Layer:       layer,
		OriginLayer: originLayer,
		Adaptation:  adaptation,
	}
}

// Dir returns the template directory for this selector, relative to
// the prompt base directory.
func (s Selector) Dir() string {
	return path.Join(s.Directive.String(), s.Layer.String())
}

// Candidates returns the ordered fallback chain of template paths
// relative to the prompt base directory, most specific first:
//
//  1. f_{originLayer}_{adaptation}.md  (only when adaptation is set)
//  2. f_{originLayer}.md
//  3. f_default.md                     (always last)
//
// The chain is computed purely from the selector, never from
// directory contents, so candidate order is stable across file
// systems. Duplicate candidates (origin layer "default" with no
// adaptation) are collapsed while preserving order; the chain is
// never empty.
func (s Selector) Candidates() []string {
	names := make([]string, 0, 3)
	if s.Adaptation != "" {
		names = append(names, templateFileName(s.OriginLayer, s.Adaptation))
	}
	names = append(names, templateFileName(s.OriginLayer, ""))
	names = append(names, templateFileName(DefaultOriginLayer, ""))

	dir := s.Dir()
	seen := make(map[string]bool, len(names))
	chain := make([]string, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		chain = append(chain, path.Join(dir, name))
	}
	return chain
}

// templateFileName builds the f_{originLayer}[_{adaptation}].md name.
func templateFileName(originLayer, adaptation string) string {
	if adaptation != "" {
		return "f_" + originLayer + "_" + adaptation + ".md"
	}
	return "f_" + originLayer + ".md"
}
