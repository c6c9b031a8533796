package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptforge-dev/promptforge/internal/apperrors"
)

func TestMergeBindings(t *testing.T) {
	set, err := MergeBindings(
		map[string]string{VarInputText: "some notes", VarDestinationPath: "out.md"},
		map[string]string{"author": "alice", "team-name": "core"},
	)
	require.NoError(t, err)

	v, ok := set.Lookup(VarInputText)
	assert.True(t, ok)
	assert.Equal(t, "some notes", v)

	v, ok = set.Lookup("author")
	assert.True(t, ok)
	assert.Equal(t, "alice", v)

	_, ok = set.Lookup("missing")
	assert.False(t, ok)

	assert.Equal(t, 4, set.Len())
	assert.Equal(t, []string{"author", "destination_path", "input_text", "team-name"}, set.Names())
}

func TestMergeBindings_ConflictWithStandard(t *testing.T) {
	// A custom variable named input_text must fail, not overwrite.
	_, err := MergeBindings(
		map[string]string{VarInputText: "original"},
		map[string]string{"input_text": "shadowed"},
	)
	require.Error(t, err)

	var conflict *apperrors.BindingConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "input_text", conflict.Name)
}

func TestMergeBindings_ConflictEvenWhenStandardUnbound(t *testing.T) {
	// Reserved names are off limits whether or not the engine bound
	// them this invocation.
	_, err := MergeBindings(nil, map[string]string{"schema_file": "x"})

	var conflict *apperrors.BindingConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestMergeBindings_UnknownStandardRejected(t *testing.T) {
	_, err := MergeBindings(map[string]string{"not_reserved": "x"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown standard variable")
}

func TestMergeBindings_Empty(t *testing.T) {
	set, err := MergeBindings(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
}

func TestIsReservedName(t *testing.T) {
	assert.True(t, IsReservedName(VarInputText))
	assert.True(t, IsReservedName(VarInputTextFile))
	assert.True(t, IsReservedName(VarDestinationPath))
	assert.True(t, IsReservedName(VarSchemaFile))
	assert.False(t, IsReservedName("author"))
}
