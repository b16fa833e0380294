// Package schema validates raw hook configuration documents against an
// embedded JSON Schema. It complements the struct-level rules in hookcfg:
// this pass catches structural problems with JSON Pointer locations before
// the document is decoded into typed records.
package schema

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

//go:embed hookcfg.schema.json
var schemaJSON []byte

const schemaName = "hookcfg.schema.json"

var compiled = mustCompile()

func mustCompile() *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		panic(fmt.Sprintf("schema: parse embedded schema: %v", err))
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaName, doc); err != nil {
		panic(fmt.Sprintf("schema: add embedded schema: %v", err))
	}

	s, err := c.Compile(schemaName)
	if err != nil {
		panic(fmt.Sprintf("schema: compile embedded schema: %v", err))
	}
	return s
}

// ValidationError wraps a JSON Schema validation failure.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("schema validation failed: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks a raw YAML document against the embedded schema.
// The document must be a mapping with string keys.
func Validate(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("schema: decode document: %w", err)
	}

	if err := compiled.Validate(normalize(doc)); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}

// normalize converts YAML-decoded values into the JSON shapes the schema
// validator expects: yaml.v3 produces map[string]any and []any for nested
// collections but decodes numbers as int, which the validator does not
// recognize as a JSON number.
func normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalize(item)
		}
		return out
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case uint64:
		return float64(val)
	default:
		return v
	}
}

// Describe flattens a validation error into one line per leaf failure, each
// pointing at the offending instance location.
func Describe(err error) []string {
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return []string{err.Error()}
	}

	printer := message.NewPrinter(language.English)

	var lines []string
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			loc := "/" + strings.Join(e.InstanceLocation, "/")
			lines = append(lines, fmt.Sprintf("%s: %s", loc, e.ErrorKind.LocalizedString(printer)))
			return
		}
		for _, cause := range e.Causes {
			walk(cause)
		}
	}
	walk(verr)
	return lines
}
