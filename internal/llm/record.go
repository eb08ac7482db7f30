package llm

import (
	"encoding/json"
	"fmt"

	"github.com/joseph-ayodele/claims-extract/constants"
	"github.com/joseph-ayodele/claims-extract/internal/report"
	"github.com/joseph-ayodele/claims-extract/internal/schema"
)

// DecodePageRecord turns sanitized page JSON into a complete PageRecord.
// Every schema field is present in the result: fields the model could not
// determine come out as "" (or the explicit "No" default for checkbox
// fields), never as an error.
func DecodePageRecord(clean []byte, page schema.PageSchema) (report.PageRecord, error) {
	var m map[string]any
	if err := json.Unmarshal(clean, &m); err != nil {
		return nil, fmt.Errorf("decode page %d record: %w", page.Index, err)
	}

	rec := make(report.PageRecord, len(page.Fields))
	for _, f := range page.Fields {
		raw, present := m[f.Name]
		if !present {
			rec[f.Name] = defaultToken(f)
			continue
		}
		s, _ := raw.(string) // sanitize pass guarantees strings
		if f.Kind == schema.KindYesNo {
			answer, ok := constants.ParseAnswer(s)
			if !ok {
				answer = constants.Unknown
			}
			rec[f.Name] = answer.Token()
			continue
		}
		rec[f.Name] = s
	}
	return rec, nil
}

func defaultToken(f schema.FieldDef) string {
	if f.Kind == schema.KindYesNo {
		return constants.No.Token()
	}
	return ""
}
