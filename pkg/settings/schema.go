package settings

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema.json
var schemaJSON []byte

var compiledSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(string(schemaJSON)))
	if err != nil {
		panic(fmt.Sprintf("settings schema is not valid JSON: %v", err))
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("settings.json", doc); err != nil {
		panic(fmt.Sprintf("failed to add settings schema resource: %v", err))
	}
	schema, err := compiler.Compile("settings.json")
	if err != nil {
		panic(fmt.Sprintf("failed to compile settings schema: %v", err))
	}
	return schema
}

// Validate checks a resolved settings document against the schema. A
// failure here is a fatal configuration error: the build must not start.
func Validate(resolved map[string]any) error {
	// The validator works on generic JSON values; round-trip to
	// normalize numeric types.
	raw, err := json.Marshal(resolved)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(string(raw)))
	if err != nil {
		return fmt.Errorf("failed to deserialize settings: %w", err)
	}
	if err := compiledSchema.Validate(doc); err != nil {
		return fmt.Errorf("settings failed schema validation: %w", err)
	}
	return nil
}
