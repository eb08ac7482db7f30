package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePageRecordDefaultsMissingFields(t *testing.T) {
	rec, err := DecodePageRecord([]byte(`{"height_cm":"182"}`), sanitizePage)
	require.NoError(t, err)

	// Every declared field is present.
	require.Len(t, rec, len(sanitizePage.Fields))
	assert.Equal(t, "182", rec["height_cm"])
	assert.Equal(t, "", rec["notes"])
	// Checkbox fields default to the explicit "No".
	assert.Equal(t, "No", rec["has_diabetes_or_high_blood_sugar"])
}

func TestDecodePageRecordCanonicalizesAnswers(t *testing.T) {
	rec, err := DecodePageRecord([]byte(`{"has_diabetes_or_high_blood_sugar":"yes"}`), sanitizePage)
	require.NoError(t, err)
	assert.Equal(t, "Yes", rec["has_diabetes_or_high_blood_sugar"])

	rec, err = DecodePageRecord([]byte(`{"has_diabetes_or_high_blood_sugar":""}`), sanitizePage)
	require.NoError(t, err)
	assert.Equal(t, "No", rec["has_diabetes_or_high_blood_sugar"])
}

func TestDecodePageRecordBadJSON(t *testing.T) {
	_, err := DecodePageRecord([]byte(`[1,2]`), sanitizePage)
	assert.Error(t, err)
}
