package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/claims-extract/internal/schema"
)

var sanitizePage = schema.PageSchema{
	Index: 3,
	Fields: []schema.FieldDef{
		{Name: "has_diabetes_or_high_blood_sugar", Kind: schema.KindYesNo, Group: schema.GroupMedicalHist},
		{Name: "height_cm", Kind: schema.KindInt, Group: schema.GroupExamination},
		{Name: "weight_kg", Kind: schema.KindInt, Group: schema.GroupExamination},
		{Name: "examination_date", Kind: schema.KindDate, Group: schema.GroupExamination},
		{Name: "notes", Kind: schema.KindLongText, Group: schema.GroupSummary},
	},
}

func sanitized(t *testing.T, input string) map[string]any {
	t.Helper()
	out, _, err := SanitizePageJSON([]byte(input), sanitizePage, nil)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	return m
}

func TestSanitizeRemovesUnknownKeys(t *testing.T) {
	m := sanitized(t, `{"height_cm":"180","surprise":"hello"}`)
	assert.NotContains(t, m, "surprise")
	assert.Equal(t, "180", m["height_cm"])
}

func TestSanitizeNullsBecomeEmpty(t *testing.T) {
	m := sanitized(t, `{"notes":null}`)
	assert.Equal(t, "", m["notes"])
}

func TestSanitizeCanonicalizesYesNo(t *testing.T) {
	m := sanitized(t, `{"has_diabetes_or_high_blood_sugar":"y"}`)
	assert.Equal(t, "Yes", m["has_diabetes_or_high_blood_sugar"])

	m = sanitized(t, `{"has_diabetes_or_high_blood_sugar":"FALSE"}`)
	assert.Equal(t, "No", m["has_diabetes_or_high_blood_sugar"])

	m = sanitized(t, `{"has_diabetes_or_high_blood_sugar":"illegible"}`)
	assert.Equal(t, "", m["has_diabetes_or_high_blood_sugar"])
}

func TestSanitizeCoercesNumbers(t *testing.T) {
	m := sanitized(t, `{"height_cm":180,"weight_kg":"75 kg"}`)
	assert.Equal(t, "180", m["height_cm"])
	assert.Equal(t, "75", m["weight_kg"])
}

func TestSanitizeRejectsUnparsableInt(t *testing.T) {
	m := sanitized(t, `{"height_cm":"about six feet"}`)
	assert.Equal(t, "", m["height_cm"])
}

func TestSanitizeTrimsText(t *testing.T) {
	m := sanitized(t, `{"notes":"  trimmed  "}`)
	assert.Equal(t, "trimmed", m["notes"])
}

func TestSanitizeReportsTouchedKeys(t *testing.T) {
	_, touched, err := SanitizePageJSON([]byte(`{"height_cm":180,"extra":"x"}`), sanitizePage, nil)
	require.NoError(t, err)
	assert.Len(t, touched, 2)
}

func TestSanitizeBadJSON(t *testing.T) {
	_, _, err := SanitizePageJSON([]byte(`not json`), sanitizePage, nil)
	assert.Error(t, err)
}
