// Package schema resolves the JSON Schema accompanying a
// directive/layer pair. The schema path is bound to the schema_file
// template variable after a compile check, so corrupt schema trees
// surface at render time instead of when the prompt is consumed.
package schema

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/promptforge-dev/promptforge/internal/apperrors"
)

// SchemaFileName is the fixed schema file name under
// {schemaBaseDir}/{directive}/{layer}/.
const SchemaFileName = "base.schema.json"

// Resolver locates and compile-checks schema files below a base
// directory.
type Resolver struct {
	baseDir string
	profile string
}

// NewResolver creates a resolver rooted at baseDir. The profile name
// is carried for error reporting only.
func NewResolver(baseDir, profile string) *Resolver {
	return &Resolver{baseDir: baseDir, profile: profile}
}

// Resolve returns the schema path for a directive/layer pair, or ""
// when no schema file exists. An absent schema is not an error; the
// schema_file variable simply stays unbound and any {schema_file}
// placeholder surfaces as an unresolved-placeholder warning. A schema
// that exists but does not compile under Draft 2020-12 is a
// configuration error.
func (r *Resolver) Resolve(directive, layer string) (string, error) {
	path := filepath.Join(r.baseDir, directive, layer, SchemaFileName)

	root, err := os.OpenRoot(r.baseDir)
	if err != nil {
		return "", nil
	}
	defer func() {
		_ = root.Close() // Best-effort cleanup
	}()

	rel := filepath.ToSlash(filepath.Join(directive, layer, SchemaFileName))
	file, err := root.Open(rel)
	if err != nil {
		return "", nil
	}
	defer func() {
		_ = file.Close() // Best-effort cleanup
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", apperrors.NewConfigurationError(r.profile, "schema",
			fmt.Sprintf("failed to read schema %s", path), err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(SchemaFileName, bytes.NewReader(data)); err != nil {
		return "", apperrors.NewConfigurationError(r.profile, "schema",
			fmt.Sprintf("schema %s is not valid JSON", path), err)
	}
	if _, err := compiler.Compile(SchemaFileName); err != nil {
		return "", apperrors.NewConfigurationError(r.profile, "schema",
			fmt.Sprintf("schema %s does not compile", path), err)
	}

	return path, nil
}
