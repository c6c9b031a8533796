package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptforge-dev/promptforge/internal/apperrors"
	"github.com/promptforge-dev/promptforge/internal/domain/prompt"
	"github.com/promptforge-dev/promptforge/internal/domain/values"
)

func selector(t *testing.T, origin, adaptation string) prompt.Selector {
	t.Helper()
	rules := testRules()
	return prompt.NewSelector(
		values.MustNewDirectiveType("to", rules.DirectivePattern),
		values.MustNewLayerType("task", rules.LayerPattern),
		origin, adaptation,
	)
}

// existsOnly returns a predicate true for exactly the given paths,
// recording every query in order.
func existsOnly(queried *[]string, paths ...string) ExistsFunc {
	set := make(map[string]bool, len(paths))
	for _, p := range paths {
		set[p] = true
	}
	return func(path string) bool {
		*queried = append(*queried, path)
		return set[path]
	}
}

func TestResolve_MostSpecificWins(t *testing.T) {
	r := NewTemplatePathResolver()
	var queried []string

	path, err := r.Resolve(selector(t, "project", "strict"), "/prompts",
		existsOnly(&queried, "to/task/f_project_strict.md", "to/task/f_project.md"))
	require.NoError(t, err)
	assert.Equal(t, "to/task/f_project_strict.md", path)
	assert.Equal(t, []string{"to/task/f_project_strict.md"}, queried,
		"resolution stops at the first hit")
}

func TestResolve_FallsBackToUnqualified(t *testing.T) {
	// Adaptation "strict" requested but only f_project.md exists,
	// no _strict variant and no f_default.md.
	r := NewTemplatePathResolver()
	var queried []string

	path, err := r.Resolve(selector(t, "project", "strict"), "/prompts",
		existsOnly(&queried, "to/task/f_project.md"))
	require.NoError(t, err)
	assert.Equal(t, "to/task/f_project.md", path)
	assert.Equal(t, []string{
		"to/task/f_project_strict.md",
		"to/task/f_project.md",
	}, queried, "adaptation-qualified path tried strictly first")
}

func TestResolve_FallsBackToDefault(t *testing.T) {
	// A loader that only has the last candidate still resolves.
	r := NewTemplatePathResolver()
	var queried []string

	path, err := r.Resolve(selector(t, "project", "strict"), "/prompts",
		existsOnly(&queried, "to/task/f_default.md"))
	require.NoError(t, err)
	assert.Equal(t, "to/task/f_default.md", path)
	assert.Equal(t, []string{
		"to/task/f_project_strict.md",
		"to/task/f_project.md",
		"to/task/f_default.md",
	}, queried)
}

func TestResolve_Exhaustion(t *testing.T) {
	r := NewTemplatePathResolver()
	var queried []string

	_, err := r.Resolve(selector(t, "project", "strict"), "/prompts", existsOnly(&queried))
	require.Error(t, err)

	var notFound *apperrors.TemplateNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "/prompts", notFound.BaseDir)
	assert.Equal(t, []string{
		"to/task/f_project_strict.md",
		"to/task/f_project.md",
		"to/task/f_default.md",
	}, notFound.Attempted, "error lists exactly the attempted candidates in order")
}
