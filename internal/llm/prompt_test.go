package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/claims-extract/internal/schema"
)

func TestBuildSystemPrompt(t *testing.T) {
	p := BuildSystemPrompt()
	assert.Contains(t, p, "JSON")
	assert.Contains(t, p, "checkboxes")
	assert.Contains(t, p, "Never output null")
}

func TestBuildPagePromptListsFields(t *testing.T) {
	page, err := schema.Page(1)
	require.NoError(t, err)

	prompt := BuildPagePrompt(page, nil)
	assert.Contains(t, prompt, "PAGE 1 FIELDS TO EXTRACT:")
	assert.Contains(t, prompt, "CONTEXT: "+page.Context)
	for _, f := range page.Fields {
		assert.Contains(t, prompt, "- "+f.Name+":")
	}
}

func TestBuildPagePromptIncludesQuestionText(t *testing.T) {
	page, err := schema.Page(1)
	require.NoError(t, err)
	require.True(t, pageHasField(page, "has_diabetes_or_high_blood_sugar"))

	prompt := BuildPagePrompt(page, nil)
	q, ok := schema.QuestionFor("has_diabetes_or_high_blood_sugar")
	require.True(t, ok)
	assert.Contains(t, prompt, q.Text)
}

func TestBuildPagePromptNarrowing(t *testing.T) {
	page, err := schema.Page(1)
	require.NoError(t, err)
	want := page.Fields[0].Name

	prompt := BuildPagePrompt(page, []string{want})
	assert.Contains(t, prompt, "- "+want+":")
	// Only the configured field appears.
	assert.Equal(t, 1, strings.Count(prompt, "\n- ")+boolToInt(strings.HasPrefix(prompt, "- ")))

	// Unknown names fall back to the full field list.
	full := BuildPagePrompt(page, []string{"no_such_field"})
	for _, f := range page.Fields {
		assert.Contains(t, full, "- "+f.Name+":")
	}
}

func pageHasField(p schema.PageSchema, name string) bool {
	for _, f := range p.Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
