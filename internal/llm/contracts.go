package llm

import (
	"context"

	"github.com/joseph-ayodele/claims-extract/internal/report"
	"github.com/joseph-ayodele/claims-extract/internal/schema"
)

// ExtractPageRequest carries one page image plus the schema and prompt
// material the model needs to return conformant fields.
type ExtractPageRequest struct {
	Page         schema.PageSchema
	ImageB64     string // base64 JPEG, no data-URL prefix
	ImageMIME    string // defaults to image/jpeg
	PromptFields []string
}

// PageExtractor is the interface the pipeline depends on: give me fields
// matching this page's schema for this image. Implementations return the
// decoded record plus the raw JSON for auditing.
type PageExtractor interface {
	ExtractPage(ctx context.Context, req ExtractPageRequest) (report.PageRecord, []byte, error)
}
