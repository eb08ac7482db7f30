package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/joseph-ayodele/claims-extract/constants"
	"github.com/joseph-ayodele/claims-extract/internal/schema"
)

// SanitizePageJSON normalizes a model response toward the page schema so the
// document can still validate:
//   - removes unknown keys (strict additionalProperties friendliness)
//   - drops nulls and coerces numeric values to strings
//   - canonicalizes yes/no tokens ("y", "TRUE", "checked" -> "Yes")
//
// Returns the cleaned JSON and the list of keys touched.
func SanitizePageJSON(raw []byte, page schema.PageSchema, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	defs := make(map[string]schema.FieldDef, len(page.Fields))
	for _, f := range page.Fields {
		defs[f.Name] = f
	}

	var touched []string
	for key, value := range m {
		def, known := defs[key]
		if !known {
			delete(m, key)
			touched = append(touched, key+"(unknown)")
			continue
		}
		if value == nil {
			m[key] = ""
			touched = append(touched, key+"(null)")
			continue
		}

		switch def.Kind {
		case schema.KindYesNo:
			s := asString(value)
			if a, ok := constants.ParseAnswer(s); ok {
				if string(a) != s {
					touched = append(touched, key+"(token)")
				}
				m[key] = string(a)
			} else if strings.TrimSpace(s) != "" {
				// unrecognized token, keep provenance out of the record
				m[key] = ""
				touched = append(touched, key+"(unparsable)")
			} else {
				m[key] = ""
			}
		case schema.KindInt:
			m[key] = coerceInt(value, key, &touched)
		case schema.KindDecimal:
			m[key] = coerceDecimal(value, key, &touched)
		default:
			s := strings.TrimSpace(asString(value))
			if s != asString(value) {
				touched = append(touched, key+"(trim)")
			}
			m[key] = s
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, touched, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(touched) > 0 {
		logger.Warn("llm.extract.sanitized", "page", page.Index, "touched", touched)
	}
	return out, touched, nil
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		if t {
			return "true"
		}
		return "false"
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

func coerceInt(v any, key string, touched *[]string) string {
	switch t := v.(type) {
	case float64:
		*touched = append(*touched, key+"(number)")
		return fmt.Sprintf("%d", int64(t))
	case string:
		s := strings.TrimSpace(t)
		// strip a trailing unit the model sometimes includes ("180 cm")
		if i := strings.IndexByte(s, ' '); i > 0 {
			head := s[:i]
			if isDigits(head) {
				*touched = append(*touched, key+"(unit)")
				return head
			}
		}
		if isDigits(s) || s == "" {
			return s
		}
		*touched = append(*touched, key+"(unparsable)")
		return ""
	default:
		*touched = append(*touched, key+"(type)")
		return ""
	}
}

func coerceDecimal(v any, key string, touched *[]string) string {
	switch t := v.(type) {
	case float64:
		*touched = append(*touched, key+"(number)")
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", t), "0"), ".")
	case string:
		return strings.TrimSpace(t)
	default:
		*touched = append(*touched, key+"(type)")
		return ""
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
