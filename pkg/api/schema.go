package api

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.json
var schemaFiles embed.FS

// validator checks response bodies against the embedded schemas before decoding.
type validator struct {
	summarize *gojsonschema.Schema
	analytics *gojsonschema.Schema
	batch     *gojsonschema.Schema
}

func newValidator() (*validator, error) {
	summarize, err := loadSchema("schemas/summarize.schema.json")
	if err != nil {
		return nil, err
	}

	analytics, err := loadSchema("schemas/analytics.schema.json")
	if err != nil {
		return nil, err
	}

	batch, err := loadSchema("schemas/batch.schema.json")
	if err != nil {
		return nil, err
	}

	return &validator{summarize: summarize, analytics: analytics, batch: batch}, nil
}

func loadSchema(name string) (*gojsonschema.Schema, error) {
	data, err := schemaFiles.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read schema %s: %w", name, err)
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", name, err)
	}

	return schema, nil
}

// check validates body against schema. A body that is not JSON at all surfaces as the
// decoder error, so callers can tell "not JSON" apart from "wrong shape".
func check(schema *gojsonschema.Schema, what string, body []byte) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("decode %s response: %w", what, err)
	}

	if result.Valid() {
		return nil
	}

	details := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		details = append(details, e.Field()+": "+e.Description())
	}

	return fmt.Errorf("%w: %s response: %s", ErrSchema, what, strings.Join(details, "; "))
}
