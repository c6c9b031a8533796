package prompt

import (
	"github.com/promptforge-dev/promptforge/internal/domain/values"
)

// Resolved is the final output of a prompt resolution: the rendered
// text plus metadata about how it was produced. Constructed once per
// invocation and never mutated afterwards.
type Resolved struct {
	ID           values.InvocationID `json:"invocation_id" yaml:"invocation_id"`
	Profile      string              `json:"profile" yaml:"profile"`
	TemplatePath string              `json:"template_path" yaml:"template_path"`
	Text         string              `json:"text" yaml:"text"`
	// Unresolved lists placeholders left verbatim in Text because no
	// binding covered them. Warning-level signal, not a failure.
	Unresolved []string `json:"unresolved_placeholders,omitempty" yaml:"unresolved_placeholders,omitempty"`
}

// HasUnresolved reports whether any placeholder was left unresolved.
func (r Resolved) HasUnresolved() bool {
	return len(r.Unresolved) > 0
}
