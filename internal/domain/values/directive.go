package values

import (
	"fmt"
	"strings"
)

// DirectiveType is the top-level command verb selecting the
// transformation intent (e.g. "to", "summary", "defect", "find").
// A DirectiveType only exists after passing its profile pattern.
type DirectiveType struct {
	value string
}

// NewDirectiveType validates a directive token against a pattern.
func NewDirectiveType(token string, pattern Pattern) (DirectiveType, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return DirectiveType{}, fmt.Errorf("directive cannot be empty")
	}
	if !pattern.Match(token) {
		return DirectiveType{}, fmt.Errorf("directive %q does not match pattern %s", token, pattern)
	}
	return DirectiveType{value: token}, nil
}

// MustNewDirectiveType creates a DirectiveType or panics (for tests).
func MustNewDirectiveType(token string, pattern Pattern) DirectiveType {
	d, err := NewDirectiveType(token, pattern)
	if err != nil {
		panic(err)
	}
	return d
}

// String returns the string representation.
func (d DirectiveType) String() string {
	return d.value
}

// IsEmpty returns true if this is the zero value.
func (d DirectiveType) IsEmpty() bool {
	return d.value == ""
}

// Equals checks if two DirectiveTypes are equal.
func (d DirectiveType) Equals(other DirectiveType) bool {
	return d.value == other.value
}
