// Package values contains domain value objects that encapsulate
// primitive types with validation and such.
package values

import (
	"fmt"
	"regexp"
)

// Pattern is a compiled validation rule for a command token.
// Patterns are supplied by profile configuration at runtime, so the
// validator itself carries no directive/layer vocabulary. Matching is
// always full-string: the raw expression is wrapped in \A(?:...)\z
// regardless of any anchors the config author wrote.
type Pattern struct {
	raw string
	re  *regexp.Regexp
}

// CompilePattern compiles a raw expression into a Pattern.
func CompilePattern(raw string) (Pattern, error) {
	if raw == "" {
		return Pattern{}, fmt.Errorf("pattern cannot be empty")
	}
	re, err := regexp.Compile(`\A(?:` + raw + `)\z`)
	if err != nil {
		return Pattern{}, fmt.Errorf("invalid pattern %q: %w", raw, err)
	}
	return Pattern{raw: raw, re: re}, nil
}

// MustCompilePattern compiles a pattern or panics (for tests/defaults).
func MustCompilePattern(raw string) Pattern {
	p, err := CompilePattern(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// Match reports whether the whole token matches the pattern.
// Partial matches never count: "to2" does not match ^to$.
func (p Pattern) Match(token string) bool {
	if p.re == nil {
		return false
	}
	return p.re.MatchString(token)
}

// String returns the raw expression as configured.
func (p Pattern) String() string {
	return p.raw
}

// IsZero returns true if this is the zero value.
func (p Pattern) IsZero() bool {
	return p.re == nil
}
