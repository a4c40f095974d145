package extract

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/vmp-veiculos/contratos/internal/schema"
)

// BuildContractJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing the provider's expected output: one object per
// section, every field a string. We send it to the provider as part of the
// prompt and validate its answer against it locally.
//
// Nothing is "required": the provider reports what it can read and the
// normalizer defaults the rest to empty strings. That includes the lessor
// document tag: the configured lessor identity replaces the whole section
// after normalization, so the closed set is enforced there, not here.
func BuildContractJSONSchema() map[string]any {
	sections := map[string]any{}
	for _, name := range schema.Sections() {
		props := map[string]any{}
		for _, field := range schema.SectionFields(name) {
			props[field] = map[string]any{"type": "string"}
		}
		sections[name] = map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties":           props,
		}
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           sections,
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := compiled.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
