package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/joseph-ayodele/claims-extract/internal/common"
	"github.com/joseph-ayodele/claims-extract/internal/imaging"
	"github.com/joseph-ayodele/claims-extract/internal/llm"
	"github.com/joseph-ayodele/claims-extract/internal/report"
	"github.com/joseph-ayodele/claims-extract/internal/schema"
)

const (
	maxAttempts  = 3
	retryBackoff = 2 * time.Second
)

// Processor orchestrates extraction of a scanned document: image prep,
// per-page vision extraction with retries, and aggregation into a report.
type Processor struct {
	log       *slog.Logger
	extractor llm.PageExtractor
	promptCfg *schema.PromptConfig
	imgOpts   imaging.Options

	// sleep is swappable so retry pacing can be observed in tests.
	sleep func(time.Duration)
}

func NewProcessor(extractor llm.PageExtractor, promptCfg *schema.PromptConfig, imgOpts imaging.Options, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if promptCfg == nil {
		promptCfg = &schema.PromptConfig{}
	}
	return &Processor{
		log:       logger,
		extractor: extractor,
		promptCfg: promptCfg,
		imgOpts:   imgOpts,
		sleep:     time.Sleep,
	}
}

// ProcessPage extracts one page, retrying transient failures. Attempts are
// paced at 2s then 4s; after the third failure the page is declared failed.
func (p *Processor) ProcessPage(ctx context.Context, img imaging.PreparedPage, pageSchema schema.PageSchema) (report.PageRecord, error) {
	start := time.Now()
	req := llm.ExtractPageRequest{
		Page:         pageSchema,
		ImageB64:     img.B64,
		ImageMIME:    img.MIME,
		PromptFields: p.promptCfg.FieldsFor(pageSchema.Index),
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rec, _, err := p.extractor.ExtractPage(ctx, req)
		if err == nil {
			p.log.Info("pipeline.page.ok",
				"page", pageSchema.Index,
				"attempt", attempt,
				"fields", len(rec),
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return rec, nil
		}
		lastErr = err
		p.log.Warn("pipeline.page.attempt_failed",
			"page", pageSchema.Index,
			"attempt", attempt,
			"error", err,
		)
		if attempt < maxAttempts {
			p.sleep(retryBackoff * time.Duration(attempt))
		}
	}

	p.log.Error("pipeline.page.failed",
		"page", pageSchema.Index,
		"attempts", maxAttempts,
		"error", lastErr,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil, common.NewAppError("EXTRACTION_FAILED",
		fmt.Sprintf("page %d failed after %d attempts: %v", pageSchema.Index, maxAttempts, lastErr),
		common.ErrExtraction)
}

// ProcessDocument runs extraction over prepared pages in order. A failed page
// leaves its slot nil and processing continues; the report is returned even
// when partial or empty, so callers always have whatever was recovered. Pages
// beyond the form's known layout are ignored.
func (p *Processor) ProcessDocument(ctx context.Context, sourcePath string, pages []imaging.PreparedPage) (*report.AggregateReport, error) {
	start := time.Now()
	agg := report.NewAggregateReport(sourcePath)

	if len(pages) > schema.NumPages {
		p.log.Warn("pipeline.document.extra_pages_ignored",
			"path", sourcePath,
			"pages", len(pages),
			"expected", schema.NumPages,
		)
		pages = pages[:schema.NumPages]
	}

	var extracted, failed int
	for i, img := range pages {
		pageSchema, err := schema.Page(i)
		if err != nil {
			return agg, err
		}
		rec, err := p.ProcessPage(ctx, img, pageSchema)
		if err != nil {
			if ctx.Err() != nil {
				return agg, err
			}
			failed++
			continue
		}
		agg.SetPage(i, rec)
		extracted++
	}

	p.log.Info("pipeline.document.done",
		"path", sourcePath,
		"pages", len(pages),
		"extracted", extracted,
		"failed", failed,
		"reference_number", agg.ReferenceNumber(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if extracted == 0 && len(pages) > 0 {
		p.log.Error("pipeline.document.no_pages_extracted",
			"path", sourcePath,
			"failed", failed,
		)
	}
	return agg, nil
}

// ProcessFile prepares the document's page images and extracts them.
func (p *Processor) ProcessFile(ctx context.Context, path string) (*report.AggregateReport, error) {
	pages, err := imaging.DocumentPages(path, p.imgOpts, p.log)
	if err != nil {
		return nil, err
	}
	return p.ProcessDocument(ctx, path, pages)
}

// ProcessConsentForm extracts the single-page consent authority form. Only
// the first page of the source document is read.
func (p *Processor) ProcessConsentForm(ctx context.Context, path string) (report.PageRecord, error) {
	img, err := imaging.Page(path, 0, p.imgOpts, p.log)
	if err != nil {
		return nil, err
	}
	return p.ProcessPage(ctx, img, schema.ConsentSchema)
}
