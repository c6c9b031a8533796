package prompt

import (
	"regexp"
	"sort"
)

// Placeholder pattern: {name}. Names start with an alphanumeric or
// underscore and may contain hyphens so stripped uv- variables stay
// addressable. Anything else between braces is not a placeholder and
// passes through untouched.
var placeholderPattern = regexp.MustCompile(`\{([A-Za-z0-9_][A-Za-z0-9_-]*)\}`)

// Substitutor replaces {name} placeholders in template text using a
// BindingSet. It is stateless; the same inputs always yield the same
// output.
type Substitutor struct{}

// NewSubstitutor creates a new substitutor.
func NewSubstitutor() *Substitutor {
	return &Substitutor{}
}

// Substitute performs a single left-to-right pass over templateText.
// Known placeholders are replaced with their bound value; every
// occurrence of the same placeholder receives the same value.
// Substitution is literal: a bound value containing {other} text is
// emitted verbatim, never re-scanned, so expansion cannot recurse.
// Unknown placeholders stay verbatim in the output and are returned
// as a sorted, deduplicated list: a reportable condition, not an
// error, since some templates intentionally keep documentation
// placeholders for manual editing.
func (s *Substitutor) Substitute(templateText string, bindings BindingSet) (string, []string) {
	unresolved := make(map[string]bool)

	result := placeholderPattern.ReplaceAllStringFunc(templateText, func(match string) string {
		name := match[1 : len(match)-1]
		if value, ok := bindings.Lookup(name); ok {
			return value
		}
		unresolved[name] = true
		return match
	})

	if len(unresolved) == 0 {
		return result, nil
	}
	names := make([]string, 0, len(unresolved))
	for name := range unresolved {
		names = append(names, name)
	}
	sort.Strings(names)
	return result, names
}
