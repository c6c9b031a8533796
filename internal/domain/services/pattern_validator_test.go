package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptforge-dev/promptforge/internal/apperrors"
	"github.com/promptforge-dev/promptforge/internal/domain/values"
)

func testRules() ValidationRules {
	return ValidationRules{
		ProfileName:      "default",
		DirectivePattern: values.MustCompilePattern("^(to|summary|defect|find)$"),
		LayerPattern:     values.MustCompilePattern("^(project|issue|task|bugs)$"),
	}
}

func TestValidate_AcceptsMatchingPair(t *testing.T) {
	v := NewPatternValidator()

	directive, layer, err := v.Validate(TwoTokenCommand{Directive: "to", Layer: "task"}, testRules())
	require.NoError(t, err)
	assert.Equal(t, "to", directive.String())
	assert.Equal(t, "task", layer.String())
}

func TestValidate_InvalidDirective(t *testing.T) {
	// (migrate, component): the directive fails first, before the
	// layer is even looked at.
	v := NewPatternValidator()

	_, _, err := v.Validate(TwoTokenCommand{Directive: "migrate", Layer: "component"}, testRules())
	require.Error(t, err)

	var invalid *apperrors.InvalidDirectiveError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "migrate", invalid.Token)
	assert.Equal(t, "^(to|summary|defect|find)$", invalid.Pattern)
	assert.Equal(t, "default", invalid.Profile)
}

func TestValidate_InvalidLayer(t *testing.T) {
	v := NewPatternValidator()

	_, _, err := v.Validate(TwoTokenCommand{Directive: "to", Layer: "component"}, testRules())
	require.Error(t, err)

	var invalid *apperrors.InvalidLayerError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "component", invalid.Token)
	assert.Equal(t, "^(project|issue|task|bugs)$", invalid.Pattern)
	assert.Equal(t, "default", invalid.Profile)
}

func TestValidate_NoPartialMatches(t *testing.T) {
	v := NewPatternValidator()
	rules := ValidationRules{
		ProfileName:      "default",
		DirectivePattern: values.MustCompilePattern("^to$"),
		LayerPattern:     values.MustCompilePattern("^task$"),
	}

	_, _, err := v.Validate(TwoTokenCommand{Directive: "to2", Layer: "task"}, rules)

	var invalid *apperrors.InvalidDirectiveError
	require.ErrorAs(t, err, &invalid)
}

func TestValidate_EmptyTokens(t *testing.T) {
	v := NewPatternValidator()

	_, _, err := v.Validate(TwoTokenCommand{Directive: "", Layer: "task"}, testRules())
	var invalidDirective *apperrors.InvalidDirectiveError
	require.ErrorAs(t, err, &invalidDirective)

	_, _, err = v.Validate(TwoTokenCommand{Directive: "to", Layer: ""}, testRules())
	var invalidLayer *apperrors.InvalidLayerError
	require.ErrorAs(t, err, &invalidLayer)
}
