package hookrelay

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compileSchema compiles a JSON Schema given as any JSON-marshalable value
// (typically a map[string]any or a decoded schema document).
func compileSchema(schema any) (*jsonschema.Schema, error) {
	raw, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal: %s", ErrInvalidSchema, err)
	}

	var doc any
	if unmarshalErr := json.Unmarshal(raw, &doc); unmarshalErr != nil {
		return nil, fmt.Errorf("%w: unmarshal: %s", ErrInvalidSchema, unmarshalErr)
	}

	const url = "hookrelay://schema"
	c := jsonschema.NewCompiler()
	if addErr := c.AddResource(url, doc); addErr != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSchema, addErr)
	}

	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSchema, err)
	}
	return compiled, nil
}

// validatePayload checks the parsed delivery payload against a compiled schema.
func validatePayload(s *jsonschema.Schema, payload json.RawMessage) error {
	var doc any
	if err := json.Unmarshal(payload, &doc); err != nil {
		return err
	}
	return s.Validate(doc)
}
