package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionCatalogs(t *testing.T) {
	require.Len(t, MedicalHistoryQuestions, 27)
	require.Len(t, FamilyHistoryQuestions, 9)

	// IDs follow the printed numbering and every question stores to a
	// declared yes/no field.
	for i, q := range MedicalHistoryQuestions {
		assert.Equal(t, i+1, q.ID)
		assert.True(t, strings.HasPrefix(q.FieldName, "has_"), "field %q", q.FieldName)
		f, ok := FieldByName(q.FieldName)
		require.True(t, ok, "field %q not in registry", q.FieldName)
		assert.Equal(t, KindYesNo, f.Kind, "field %q", q.FieldName)
	}
	for i, q := range FamilyHistoryQuestions {
		assert.Equal(t, i+1, q.ID)
		assert.True(t, strings.HasPrefix(q.FieldName, "family_history_"), "field %q", q.FieldName)
		_, ok := FieldByName(q.FieldName)
		require.True(t, ok, "field %q not in registry", q.FieldName)
	}
}

func TestDefaultAnswers(t *testing.T) {
	defaults := DefaultAnswers()
	require.Len(t, defaults, len(MedicalHistoryQuestions)+len(FamilyHistoryQuestions))
	for name, v := range defaults {
		assert.Equal(t, "No", v, "field %q", name)
	}
}

func TestQuestionFor(t *testing.T) {
	q, ok := QuestionFor("has_diabetes_or_high_blood_sugar")
	require.True(t, ok)
	assert.Equal(t, 2, q.ID)

	_, ok = QuestionFor("examiner_name")
	assert.False(t, ok)
}
