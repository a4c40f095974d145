package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vmp-veiculos/contratos/constants"
	"github.com/vmp-veiculos/contratos/internal/schema"
)

// NormalizeProviderOutput coerces the provider's free-form JSON into the
// fixed schema. The provider is treated as hostile input:
//   - section and field names are matched case-insensitively
//   - unknown keys are dropped
//   - numbers and booleans are coerced to display text, nulls to ""
//   - every schema field is present in the result, defaulting to ""
//
// The lessor section is never taken from the provider; the configured
// identity wins unconditionally.
//
// The returned slice names everything that was dropped or coerced, for
// logging by the caller.
func NormalizeProviderOutput(raw []byte, locador schema.Locador) (schema.ExtractedData, []string, error) {
	var root map[string]any
	if err := json.Unmarshal(raw, &root); err != nil {
		return schema.ExtractedData{}, nil, fmt.Errorf("normalize: decode: %w", err)
	}

	dropped := make([]string, 0, 8)
	cleaned := make(map[string]map[string]string, 5)
	for _, section := range schema.Sections() {
		fields := make(map[string]string, len(schema.SectionFields(section)))
		for _, field := range schema.SectionFields(section) {
			fields[field] = ""
		}
		cleaned[section] = fields
	}

	for rawSection, rawValue := range root {
		section, ok := matchKey(rawSection, schema.Sections())
		if !ok {
			dropped = append(dropped, rawSection+"(unknown section)")
			continue
		}
		obj, ok := rawValue.(map[string]any)
		if !ok {
			dropped = append(dropped, rawSection+"(not an object)")
			continue
		}
		for rawField, v := range obj {
			field, ok := matchKey(rawField, schema.SectionFields(section))
			if !ok {
				dropped = append(dropped, rawSection+"."+rawField+"(unknown field)")
				continue
			}
			s, note := coerceScalar(v)
			if note != "" {
				dropped = append(dropped, section+"."+field+"("+note+")")
			}
			cleaned[section][field] = s
		}
	}

	// Belt and braces: the cleaned document must satisfy the provider
	// schema before it becomes an ExtractedData.
	b, err := json.Marshal(cleaned)
	if err != nil {
		return schema.ExtractedData{}, dropped, fmt.Errorf("normalize: encode: %w", err)
	}
	if err := ValidateJSONAgainstSchema(BuildContractJSONSchema(), b); err != nil {
		return schema.ExtractedData{}, dropped, fmt.Errorf("normalize: %w", err)
	}

	var out schema.ExtractedData
	for section, fields := range cleaned {
		for field, value := range fields {
			if err := schema.Set(&out, section, field, value); err != nil {
				return schema.ExtractedData{}, dropped, err
			}
		}
	}

	out.Locador = locador
	if tipo, ok := constants.CanonicalizeTipo(out.Locador.TipoDocumento); ok {
		out.Locador.TipoDocumento = string(tipo)
	}
	return out, dropped, nil
}

// matchKey resolves a provider key against the canonical set, ignoring
// case, surrounding blanks and separator noise ("orgao_emissor" matches
// "orgaoEmissor").
func matchKey(raw string, canonical []string) (string, bool) {
	flat := flatten(raw)
	for _, c := range canonical {
		if flatten(c) == flat {
			return c, true
		}
	}
	return "", false
}

func flatten(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, " ", "")
	return s
}

// coerceScalar turns a decoded JSON value into display text. The note is
// empty when the value was already a plain string.
func coerceScalar(v any) (string, string) {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t), ""
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t)), "number"
		}
		return fmt.Sprintf("%v", t), "number"
	case bool:
		return fmt.Sprintf("%t", t), "bool"
	case nil:
		return "", "null"
	default:
		return "", "type"
	}
}
