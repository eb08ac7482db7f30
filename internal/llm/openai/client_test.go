package openai

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/claims-extract/internal/llm"
	"github.com/joseph-ayodele/claims-extract/internal/schema"
)

var testPage = schema.PageSchema{
	Index: 1,
	Fields: []schema.FieldDef{
		{Name: "reference_number", Kind: schema.KindText, Group: schema.GroupPersonalInfo},
		{Name: "has_diabetes_or_high_blood_sugar", Kind: schema.KindYesNo, Group: schema.GroupMedicalHist},
		{Name: "height_cm", Kind: schema.KindInt, Group: schema.GroupExamination},
	},
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// completionServer returns a stub chat/completions endpoint that replies with
// the given message content.
func completionServer(t *testing.T, content string, capture *map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		if capture != nil {
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(body, capture))
		}
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func newTestClient(baseURL string) *Client {
	return NewClient(Config{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Model:   "gpt-4o-mini",
	}, testLogger())
}

func TestExtractPageHappyPath(t *testing.T) {
	var captured map[string]any
	srv := completionServer(t, `{"reference_number":"REF1","has_diabetes_or_high_blood_sugar":"Yes","height_cm":"180"}`, &captured)
	defer srv.Close()

	client := newTestClient(srv.URL)
	rec, raw, err := client.ExtractPage(context.Background(), llm.ExtractPageRequest{
		Page:      testPage,
		ImageB64:  "aW1hZ2U=",
		ImageMIME: "image/jpeg",
	})
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	assert.Equal(t, "REF1", rec["reference_number"])
	assert.Equal(t, "Yes", rec["has_diabetes_or_high_blood_sugar"])
	assert.Equal(t, "180", rec["height_cm"])

	// The request carried the vision content part and JSON response format.
	messages, ok := captured["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 3)
	user, ok := messages[1].(map[string]any)
	require.True(t, ok)
	parts, ok := user["content"].([]any)
	require.True(t, ok)
	require.Len(t, parts, 2)
	imagePart, ok := parts[1].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "image_url", imagePart["type"])
	rf, ok := captured["response_format"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "json_object", rf["type"])
}

func TestExtractPageSanitizesLooseOutput(t *testing.T) {
	// Numeric height and a lowercase token violate the strict schema but
	// survive the lenient pass.
	srv := completionServer(t, `{"reference_number":"REF2","has_diabetes_or_high_blood_sugar":"TRUE","height_cm":180,"hallucinated":"x"}`, nil)
	defer srv.Close()

	client := newTestClient(srv.URL)
	rec, _, err := client.ExtractPage(context.Background(), llm.ExtractPageRequest{Page: testPage})
	require.NoError(t, err)
	assert.Equal(t, "Yes", rec["has_diabetes_or_high_blood_sugar"])
	assert.Equal(t, "180", rec["height_cm"])
	assert.NotContains(t, rec, "hallucinated")
}

func TestExtractPageStrictModeFails(t *testing.T) {
	srv := completionServer(t, `{"height_cm":180}`, nil)
	defer srv.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, Strict: true}, testLogger())
	_, _, err := client.ExtractPage(context.Background(), llm.ExtractPageRequest{Page: testPage})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestExtractPageServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, _, err := client.ExtractPage(context.Background(), llm.ExtractPageRequest{Page: testPage})
	require.Error(t, err)
}

func TestExtractPageNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, _, err := client.ExtractPage(context.Background(), llm.ExtractPageRequest{Page: testPage})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(Config{APIKey: "k"}, nil)
	assert.Equal(t, "https://api.openai.com/v1", c.cfg.BaseURL)
	assert.Equal(t, "gpt-4o-mini", c.cfg.Model)
	assert.NotNil(t, c.httpClient)
}
