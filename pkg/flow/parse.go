package flow

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"
)

// definitionSchemaJSON validates the raw definition shape before decoding.
// Embedded as a constant to avoid filesystem dependencies.
const definitionSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://studiomap.dev/schemas/flow-definition.json",
  "type": "object",
  "required": ["states"],
  "properties": {
    "description": { "type": "string" },
    "initial_state": { "type": "string" },
    "flags": { "type": "object" },
    "states": {
      "type": "array",
      "items": { "$ref": "#/$defs/state" }
    }
  },
  "$defs": {
    "state": {
      "type": "object",
      "required": ["name", "type"],
      "properties": {
        "name": { "type": "string", "minLength": 1 },
        "type": { "type": "string", "minLength": 1 },
        "properties": { "type": "object" },
        "transitions": {
          "type": "array",
          "items": { "$ref": "#/$defs/transition" }
        }
      }
    },
    "transition": {
      "type": "object",
      "required": ["event"],
      "properties": {
        "event": { "type": "string" },
        "next": { "type": "string" },
        "conditions": {
          "type": "array",
          "items": { "$ref": "#/$defs/condition" }
        }
      }
    },
    "condition": {
      "type": "object",
      "required": ["friendly_name"],
      "properties": {
        "friendly_name": { "type": "string" },
        "type": { "type": "string" },
        "arguments": { "type": "array", "items": { "type": "string" } },
        "value": { "type": "string" }
      }
    }
  }
}`

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func definitionSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(definitionSchemaJSON))
		if err != nil {
			schemaErr = fmt.Errorf("unmarshal definition schema: %w", err)
			return
		}
		if err := c.AddResource("https://studiomap.dev/schemas/flow-definition.json", doc); err != nil {
			schemaErr = fmt.Errorf("add definition schema resource: %w", err)
			return
		}
		schema, schemaErr = c.Compile("https://studiomap.dev/schemas/flow-definition.json")
	})
	return schema, schemaErr
}

// Parse validates raw definition JSON against the embedded schema and
// decodes it into a Definition.
func Parse(data []byte) (*Definition, error) {
	s, err := definitionSchema()
	if err != nil {
		return nil, err
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("flow definition is not valid JSON: %w", err)
	}
	if err := s.Validate(doc); err != nil {
		return nil, fmt.Errorf("flow definition failed schema validation: %w", err)
	}

	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("decode flow definition: %w", err)
	}
	return &def, nil
}
