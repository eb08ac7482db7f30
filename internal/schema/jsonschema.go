package schema

// BuildPageJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map for one page of the form. We pass it to the model as a
// structured output constraint and also use it locally to validate.
func BuildPageJSONSchema(page PageSchema) map[string]any {
	props := make(map[string]any, len(page.Fields))
	var required []string
	for _, f := range page.Fields {
		props[f.Name] = fieldProp(f)
		if f.Required {
			required = append(required, f.Name)
		}
	}
	s := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

// BuildConsentJSONSchema returns the schema for the single-page consent form.
func BuildConsentJSONSchema() map[string]any {
	return BuildPageJSONSchema(ConsentSchema)
}

func fieldProp(f FieldDef) map[string]any {
	switch f.Kind {
	case KindYesNo:
		// Accept the raw token variants; canonicalization happens at decode.
		return map[string]any{
			"type": "string",
			"enum": []string{"Yes", "No", "Y", "N", "yes", "no", ""},
		}
	case KindInt:
		return map[string]any{"type": "string", "pattern": `^\d*$`}
	case KindDecimal:
		return map[string]any{"type": "string", "pattern": `^(\d+(\.\d{1,2})?)?$`}
	case KindDate:
		// Dates arrive in whatever format the form uses; normalized later.
		return map[string]any{"type": "string"}
	default:
		return map[string]any{"type": "string"}
	}
}
