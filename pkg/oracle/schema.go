package oracle

import (
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const planSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["settings", "rationale"],
  "properties": {
    "settings": {"type": "object"},
    "rationale": {"type": "object", "additionalProperties": {"type": "string"}},
    "expectedPerformance": {
      "type": "object",
      "properties": {
        "score": {"type": "number"},
        "lcpMs": {"type": "number"},
        "payloadBytes": {"type": "integer"}
      }
    }
  }
}`

const reviewSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["verdict", "reasoning"],
  "properties": {
    "verdict": {"type": "string", "enum": ["pass", "needs-changes", "critical-failure"]},
    "settingsDelta": {"type": "object"},
    "reasoning": {"type": "string"},
    "shouldRebuild": {"type": "boolean"},
    "confidence": {"type": "number", "minimum": 0, "maximum": 1}
  }
}`

var (
	planSchema   = mustCompile("plan.json", planSchemaJSON)
	reviewSchema = mustCompile("review.json", reviewSchemaJSON)
)

func mustCompile(name, source string) *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(source))
	if err != nil {
		panic(fmt.Sprintf("oracle schema %s is not valid JSON: %v", name, err))
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, doc); err != nil {
		panic(fmt.Sprintf("failed to add oracle schema %s: %v", name, err))
	}
	schema, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("failed to compile oracle schema %s: %v", name, err))
	}
	return schema
}
