package values

import (
	"fmt"

	"github.com/google/uuid"
)

// InvocationID uniquely identifies a single prompt resolution.
// Stamped on every ResolvedPrompt so callers can correlate output
// with logs.
type InvocationID struct {
	value uuid.UUID
}

// NewInvocationID creates a new random invocation ID.
func NewInvocationID() InvocationID {
	return InvocationID{value: uuid.New()}
}

// ParseInvocationID parses a string into an InvocationID.
func ParseInvocationID(s string) (InvocationID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return InvocationID{}, fmt.Errorf("invalid invocation ID: %w", err)
	}
	return InvocationID{value: id}, nil
}

// String returns the string representation.
func (i InvocationID) String() string {
	return i.value.String()
}

// IsZero returns true if this is the zero value.
func (i InvocationID) IsZero() bool {
	return i.value == uuid.Nil
}

// MarshalJSON implements json.Marshaler.
func (i InvocationID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.value.String() + `"`), nil
}

// MarshalYAML implements yaml.BytesMarshaler for goccy/go-yaml.
func (i InvocationID) MarshalYAML() ([]byte, error) {
	return []byte(i.value.String()), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (i *InvocationID) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 {
		return fmt.Errorf("invalid invocation ID JSON")
	}
	s = s[1 : len(s)-1]

	id, err := ParseInvocationID(s)
	if err != nil {
		return err
	}
	*i = id
	return nil
}
