package main

import (
	"fmt"
	"strings"
)

// customVarFlagPrefix marks user variable flags: --uv-<name>=<value>.
const customVarFlagPrefix = "--uv-"

// parseCustomVariables scans raw argv for --uv-<name>=<value> entries
// and returns them as a bare-name map. pflag cannot register flags
// whose names are unknown until invocation time, so these are scanned
// out of argv before cobra parsing (the render command whitelists
// unknown flags). Only the --uv-name=value form is accepted; a
// separate value argument would be indistinguishable from a
// positional token. Duplicate names are a configuration error, not
// last-writer-wins.
func parseCustomVariables(argv []string) (map[string]string, error) {
	vars := make(map[string]string)
	for _, arg := range argv {
		if !strings.HasPrefix(arg, customVarFlagPrefix) {
			continue
		}
		rest := arg[len(customVarFlagPrefix):]
		name, value, ok := strings.Cut(rest, "=")
		if !ok {
			return nil, fmt.Errorf("custom variable %s: expected --uv-<name>=<value>", arg)
		}
		if name == "" {
			return nil, fmt.Errorf("custom variable %s: name cannot be empty", arg)
		}
		if _, exists := vars[name]; exists {
			return nil, fmt.Errorf("duplicate custom variable %q", name)
		}
		vars[name] = value
	}
	return vars, nil
}
