// Package services contains pure domain services for prompt
// resolution: token validation and template path resolution. All I/O
// is injected; nothing here touches the file system directly.
package services

import (
	"github.com/promptforge-dev/promptforge/internal/apperrors"
	"github.com/promptforge-dev/promptforge/internal/domain/values"
)

// TwoTokenCommand is the raw directive/layer pair as typed by the
// user. It carries no validity guarantee; a command is only acted on
// after PatternValidator accepts both tokens.
type TwoTokenCommand struct {
	Directive string
	Layer     string
}

// ValidationRules are the profile-supplied patterns the validator
// applies. Passed explicitly per call, never read from ambient
// state, so resolutions with different profiles can interleave.
type ValidationRules struct {
	ProfileName      string
	DirectivePattern values.Pattern
	LayerPattern     values.Pattern
}

// PatternValidator checks a two-token command against configured
// patterns. Pure: no side effects, no I/O.
type PatternValidator struct{}

// NewPatternValidator creates a new pattern validator.
func NewPatternValidator() *PatternValidator {
	return &PatternValidator{}
}

// Validate applies full-string matching to both tokens independently.
// On success it returns the validated value objects; on failure the
// error names the offending token, the pattern, and the profile so
// the CLI can report exactly what was rejected. The directive is
// checked first; validation fails fast on the first mismatch.
func (v *PatternValidator) Validate(cmd TwoTokenCommand, rules ValidationRules) (values.DirectiveType, values.LayerType, error) {
	directive, err := values.NewDirectiveType(cmd.Directive, rules.DirectivePattern)
	if err != nil {
		return values.DirectiveType{}, values.LayerType{},
			apperrors.NewInvalidDirectiveError(cmd.Directive, rules.DirectivePattern.String(), rules.ProfileName)
	}

	layer, err := values.NewLayerType(cmd.Layer, rules.LayerPattern)
	if err != nil {
		return values.DirectiveType{}, values.LayerType{},
			apperrors.NewInvalidLayerError(cmd.Layer, rules.LayerPattern.String(), rules.ProfileName)
	}

	return directive, layer, nil
}
