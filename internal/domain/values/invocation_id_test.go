package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvocationID_Unique(t *testing.T) {
	a := NewInvocationID()
	b := NewInvocationID()

	assert.False(t, a.IsZero())
	assert.NotEqual(t, a.String(), b.String())
}

func TestParseInvocationID(t *testing.T) {
	original := NewInvocationID()

	parsed, err := ParseInvocationID(original.String())
	require.NoError(t, err)
	assert.Equal(t, original.String(), parsed.String())
}

func TestParseInvocationID_Invalid(t *testing.T) {
	_, err := ParseInvocationID("not-a-uuid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid invocation ID")
}
