package llm

import (
	"fmt"
	"strings"

	"github.com/joseph-ayodele/claims-extract/internal/schema"
)

// BuildSystemPrompt composes the fixed extraction preamble with
// strict-but-practical formatting rules.
func BuildSystemPrompt() string {
	parts := []string{
		"You are extracting fillable data from a scanned page of a medical examination form.",
		"Return ONLY JSON that matches the provided JSON Schema.",
		"Extract only the information that is clearly visible in the image.",
		"For checkboxes, look for yes or no marks and answer 'Yes' or 'No'.",
		"For dates, extract in the format found on the form (DD/MM/YYYY, YYYY-MM-DD, etc.).",
		"For measurements, extract the number only, without units.",
		"If text is unclear or illegible, use an empty string rather than guessing.",
		"Never output null.",
	}
	return strings.Join(parts, " ")
}

// BuildPagePrompt composes the user message for one page: the field list for
// that page (the prompt config may narrow it) followed by the page's
// positional context sentence. Catalog-backed fields carry their printed
// question text so the model can match the numbered questions.
func BuildPagePrompt(page schema.PageSchema, configured []string) string {
	fields := page.Fields
	if len(configured) > 0 {
		fields = narrowFields(page, configured)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "PAGE %d FIELDS TO EXTRACT:\n", page.Index)
	for _, f := range fields {
		b.WriteString("- ")
		b.WriteString(f.Name)
		b.WriteString(": ")
		switch {
		case f.Hint != "":
			b.WriteString(f.Hint)
		default:
			if q, ok := schema.QuestionFor(f.Name); ok {
				b.WriteString("answer to the question: ")
				b.WriteString(q.Text)
			} else {
				b.WriteString("Extract the value for this field")
			}
		}
		b.WriteByte('\n')
	}
	b.WriteString("\nCONTEXT: ")
	b.WriteString(page.Context)
	b.WriteByte('\n')
	return b.String()
}

// narrowFields keeps page fields in declaration order, restricted to the
// configured names. Unknown configured names are ignored; an intersection
// that comes up empty falls back to the full page.
func narrowFields(page schema.PageSchema, configured []string) []schema.FieldDef {
	want := make(map[string]struct{}, len(configured))
	for _, n := range configured {
		want[n] = struct{}{}
	}
	var out []schema.FieldDef
	for _, f := range page.Fields {
		if _, ok := want[f.Name]; ok {
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return page.Fields
	}
	return out
}
