package prompt

import (
	"fmt"
	"sort"

	"github.com/promptforge-dev/promptforge/internal/apperrors"
)

// Standard variable names. These form a fixed, closed set populated by
// the engine; custom variables may not shadow them.
const (
	VarInputText       = "input_text"
	VarInputTextFile   = "input_text_file"
	VarDestinationPath = "destination_path"
	VarSchemaFile      = "schema_file"
)

// CustomVariablePrefix marks user-supplied variables on the command
// line (--uv-<name>=<value>). The prefix is stripped before storage.
const CustomVariablePrefix = "uv-"

var reservedNames = map[string]bool{
	VarInputText:       true,
	VarInputTextFile:   true,
	VarDestinationPath: true,
	VarSchemaFile:      true,
}

// IsReservedName reports whether name belongs to the standard set.
func IsReservedName(name string) bool {
	return reservedNames[name]
}

// BindingSet is the immutable merged map of standard and custom
// variables consumed by substitution. Keys are case-sensitive bare
// names. Construct-then-freeze: the set is never mutated after
// MergeBindings returns.
type BindingSet struct {
	vars map[string]string
}

// MergeBindings merges engine-populated standard variables with
// user-supplied custom variables (bare names, uv- prefix already
// stripped). A standard key outside the reserved set is an engine
// bug and is rejected; a custom key inside it is a
// BindingConflictError.
func MergeBindings(standard, custom map[string]string) (BindingSet, error) {
	merged := make(map[string]string, len(standard)+len(custom))

	for name, value := range standard {
		if !IsReservedName(name) {
			return BindingSet{}, fmt.Errorf("unknown standard variable %q", name)
		}
		merged[name] = value
	}

	for name, value := range custom {
		if IsReservedName(name) {
			return BindingSet{}, apperrors.NewBindingConflictError(name)
		}
		merged[name] = value
	}

	return BindingSet{vars: merged}, nil
}

// Lookup returns the value bound to name.
func (b BindingSet) Lookup(name string) (string, bool) {
	v, ok := b.vars[name]
	return v, ok
}

// Len returns the number of bound variables.
func (b BindingSet) Len() int {
	return len(b.vars)
}

// Names returns all bound names in sorted order, for logging.
func (b BindingSet) Names() []string {
	names := make([]string, 0, len(b.vars))
	for name := range b.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
