package values

import (
	"fmt"
	"strings"
)

// LayerType is the structural level being produced or analyzed
// (e.g. "project", "issue", "task", "bugs"). Like DirectiveType it
// only exists after passing its profile pattern.
type LayerType struct {
	value string
}

// NewLayerType validates a layer token against a pattern.
func NewLayerType(token string, pattern Pattern) (LayerType, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return LayerType{}, fmt.Errorf("layer cannot be empty")
	}
	if !pattern.Match(token) {
		return LayerType{}, fmt.Errorf("layer %q does not match pattern %s", token, pattern)
	}
	return LayerType{value: token}, nil
}

// MustNewLayerType creates a LayerType or panics (for tests).
func MustNewLayerType(token string, pattern Pattern) LayerType {
	l, err := NewLayerType(token, pattern)
	if err != nil {
		panic(err)
	}
	return l
}

// String returns the string representation.
func (l LayerType) String() string {
	return l.value
}

// IsEmpty returns true if this is the zero value.
func (l LayerType) IsEmpty() bool {
	return l.value == ""
}

// Equals checks if two LayerTypes are equal.
func (l LayerType) Equals(other LayerType) bool {
	return l.value == other.value
}
