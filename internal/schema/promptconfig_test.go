package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPromptConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prompts.json")
	content := `{"pages":[{"page_number":1,"fields":["reference_number","has_diabetes_or_high_blood_sugar"]}]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg := LoadPromptConfig(path, nil)
	require.NotNil(t, cfg)
	assert.Equal(t, []string{"reference_number", "has_diabetes_or_high_blood_sugar"}, cfg.FieldsFor(1))
	assert.Nil(t, cfg.FieldsFor(2))
}

func TestLoadPromptConfigMissingFileIsNotFatal(t *testing.T) {
	cfg := LoadPromptConfig("/nonexistent/prompts.json", nil)
	require.NotNil(t, cfg)
	assert.Nil(t, cfg.FieldsFor(0))
}

func TestLoadPromptConfigMalformedIsNotFatal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0644))

	cfg := LoadPromptConfig(path, nil)
	require.NotNil(t, cfg)
	assert.Nil(t, cfg.FieldsFor(0))
}

func TestLoadPromptConfigEmptyPath(t *testing.T) {
	cfg := LoadPromptConfig("", nil)
	require.NotNil(t, cfg)
	assert.Nil(t, cfg.FieldsFor(0))
}
