package experiment

import (
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const sessionSchemaJSON = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["participantId", "conditionOrder", "setOrder", "currentStep", "completed"],
	"properties": {
		"participantId": {"type": "string", "pattern": "^[A-Z][0-9]{3}$"},
		"conditionOrder": {
			"type": "array",
			"items": {"enum": ["RM", "LV", "CO"]},
			"minItems": 3, "maxItems": 3, "uniqueItems": true
		},
		"setOrder": {
			"type": "array",
			"items": {"type": "string"},
			"minItems": 3, "maxItems": 3, "uniqueItems": true
		},
		"currentStep": {"type": "integer", "minimum": 0, "maximum": 3},
		"completed": {"type": "boolean"}
	}
}`

const trialsSchemaJSON = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "array",
	"items": {
		"type": "object",
		"required": ["participantId", "condition", "set", "step", "word", "isTarget",
			"response", "isCorrect", "responseTime", "isTimeout", "timestamp"],
		"properties": {
			"participantId": {"type": "string"},
			"condition": {"enum": ["RM", "LV", "CO"]},
			"set": {"type": "string"},
			"step": {"type": "integer", "minimum": 1, "maximum": 3},
			"word": {"type": "string"},
			"isTarget": {"type": "boolean"},
			"response": {"enum": ["yes", "no", "timeout"]},
			"isCorrect": {"type": "boolean"},
			"responseTime": {"type": "number", "minimum": 0},
			"isTimeout": {"type": "boolean"},
			"timestamp": {"type": "string"}
		}
	}
}`

var (
	sessionSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
		return compileSchema("session", sessionSchemaJSON)
	})
	trialsSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
		return compileSchema("trials", trialsSchemaJSON)
	})
)

func compileSchema(name, def string) (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(def))
	if err != nil {
		return nil, fmt.Errorf("parse %s schema: %w", name, err)
	}
	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(url)
}

// validateJSON checks raw against the schema returned by get.
func validateJSON(get func() (*jsonschema.Schema, error), raw string) error {
	sch, err := get()
	if err != nil {
		return err
	}
	inst, err := jsonschema.UnmarshalJSON(strings.NewReader(raw))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := sch.Validate(inst); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
