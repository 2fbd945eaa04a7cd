package validation

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaSuffix marks schema files inside a schema filesystem
const SchemaSuffix = ".schema.json"

// SchemaValidator validates JSON data against JSON schemas
type SchemaValidator interface {
	ValidateFile(dataPath, schemaName string) error
	ValidateBytes(data []byte, schemaName string) error
}

type validator struct {
	files    fs.FS
	compiler *jsonschema.Compiler

	mu      sync.Mutex
	loaded  bool
	schemas map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a validator that reads schemas and data from files.
// Every *.schema.json in the root of files is registered before the first
// compile so cross-file $ref values resolve.
func NewSchemaValidator(files fs.FS) SchemaValidator {
	return &validator{
		files:    files,
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

// ValidateFile validates a JSON file against a schema
func (v *validator) ValidateFile(dataPath, schemaName string) error {
	data, err := fs.ReadFile(v.files, dataPath)
	if err != nil {
		return fmt.Errorf("failed to read data file %s: %w", dataPath, err)
	}

	return v.ValidateBytes(data, schemaName)
}

// ValidateBytes validates JSON data bytes against a schema
func (v *validator) ValidateBytes(data []byte, schemaName string) error {
	schema, err := v.loadSchema(schemaName)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", schemaName, err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// loadSchema compiles a schema, caching the result
func (v *validator) loadSchema(schemaName string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if schema, ok := v.schemas[schemaName]; ok {
		return schema, nil
	}

	if !v.loaded {
		if err := v.registerAll(); err != nil {
			return nil, err
		}
		v.loaded = true
	}

	if _, err := fs.Stat(v.files, schemaName); err != nil {
		return nil, fmt.Errorf("schema file not found: %s", schemaName)
	}

	schema, err := v.compiler.Compile(schemaName)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	v.schemas[schemaName] = schema
	return schema, nil
}

func (v *validator) registerAll() error {
	names, err := fs.Glob(v.files, "*"+SchemaSuffix)
	if err != nil {
		return fmt.Errorf("failed to list schemas: %w", err)
	}

	for _, name := range names {
		raw, err := fs.ReadFile(v.files, name)
		if err != nil {
			return fmt.Errorf("failed to read schema file: %w", err)
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			return fmt.Errorf("failed to parse schema JSON %s: %w", path.Base(name), err)
		}
		if err := v.compiler.AddResource(name, doc); err != nil {
			return fmt.Errorf("failed to add schema resource: %w", err)
		}
	}
	return nil
}

// formatValidationError flattens nested schema errors into one message
func formatValidationError(err error) error {
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) {
		var lines []string
		collectErrors(validationErr, &lines)
		return fmt.Errorf("schema validation failed:\n%s", strings.Join(lines, "\n"))
	}
	return fmt.Errorf("validation error: %w", err)
}

func collectErrors(err *jsonschema.ValidationError, lines *[]string) {
	if msg := formatError(err); msg != "" {
		*lines = append(*lines, msg)
	}
	for _, cause := range err.Causes {
		collectErrors(cause, lines)
	}
}

func formatError(err *jsonschema.ValidationError) string {
	location := "/" + strings.Join(err.InstanceLocation, "/")
	if len(err.InstanceLocation) == 0 {
		location = "(root)"
	}

	if err.ErrorKind != nil {
		if keywords := err.ErrorKind.KeywordPath(); len(keywords) > 0 {
			return fmt.Sprintf("  - at %s: %s validation failed", location, strings.Join(keywords, "."))
		}
	}
	return fmt.Sprintf("  - at %s: validation failed", location)
}
