package schema

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"
)

// ErrBodyNotJSON is returned when a body is validated but is not JSON.
var ErrBodyNotJSON = errors.New("body is not valid JSON")

// ValidationError lists every schema violation found in a body.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("schema validation failed: %s", strings.Join(e.Problems, "; "))
}

// Schema is a compiled JSON Schema.
type Schema struct {
	Path   string
	schema *gojsonschema.Schema
}

// Load reads and compiles the schema file at path.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	s, err := Compile(data)
	if err != nil {
		return nil, err
	}
	s.Path = path
	return s, nil
}

// Compile builds a Schema from raw schema JSON.
func Compile(data []byte) (*Schema, error) {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	return &Schema{schema: compiled}, nil
}

// ValidateBody checks body against the schema. An empty body is not JSON.
func (s *Schema) ValidateBody(body string) error {
	if !gjson.Valid(body) {
		return ErrBodyNotJSON
	}

	result, err := s.schema.Validate(gojsonschema.NewStringLoader(body))
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return &ValidationError{Problems: problems}
}
