package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/claims-extract/internal/common"
	"github.com/joseph-ayodele/claims-extract/internal/imaging"
	"github.com/joseph-ayodele/claims-extract/internal/llm"
	"github.com/joseph-ayodele/claims-extract/internal/report"
	"github.com/joseph-ayodele/claims-extract/internal/schema"
)

// fakeExtractor fails failures times before succeeding, or fails every call
// when failures < 0.
type fakeExtractor struct {
	failures int
	calls    int
	record   report.PageRecord
}

func (f *fakeExtractor) ExtractPage(_ context.Context, req llm.ExtractPageRequest) (report.PageRecord, []byte, error) {
	f.calls++
	if f.failures < 0 || f.calls <= f.failures {
		return nil, nil, errors.New("model timeout")
	}
	rec := f.record
	if rec == nil {
		rec = report.PageRecord{"page": "ok"}
	}
	return rec, nil, nil
}

func newTestProcessor(ext llm.PageExtractor) (*Processor, *[]time.Duration) {
	p := NewProcessor(ext, nil, imaging.Options{}, nil)
	var sleeps []time.Duration
	p.sleep = func(d time.Duration) { sleeps = append(sleeps, d) }
	return p, &sleeps
}

func TestProcessPageSucceedsFirstTry(t *testing.T) {
	ext := &fakeExtractor{}
	p, sleeps := newTestProcessor(ext)

	page, err := schema.Page(0)
	require.NoError(t, err)
	rec, err := p.ProcessPage(context.Background(), imaging.PreparedPage{}, page)
	require.NoError(t, err)
	assert.NotNil(t, rec)
	assert.Equal(t, 1, ext.calls)
	assert.Empty(t, *sleeps)
}

func TestProcessPageRetriesThenSucceeds(t *testing.T) {
	ext := &fakeExtractor{failures: 2}
	p, sleeps := newTestProcessor(ext)

	page, err := schema.Page(0)
	require.NoError(t, err)
	_, err = p.ProcessPage(context.Background(), imaging.PreparedPage{}, page)
	require.NoError(t, err)
	assert.Equal(t, 3, ext.calls)
	// Backoff paced 2s then 4s between attempts.
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, *sleeps)
}

func TestProcessPageGivesUpAfterThreeAttempts(t *testing.T) {
	ext := &fakeExtractor{failures: -1}
	p, sleeps := newTestProcessor(ext)

	page, err := schema.Page(0)
	require.NoError(t, err)
	_, err = p.ProcessPage(context.Background(), imaging.PreparedPage{}, page)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrExtraction))
	assert.Equal(t, 3, ext.calls)
	// No sleep after the final attempt.
	assert.Len(t, *sleeps, 2)
}

func TestProcessPageHonorsContextCancellation(t *testing.T) {
	ext := &fakeExtractor{failures: -1}
	p, _ := newTestProcessor(ext)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	page, err := schema.Page(0)
	require.NoError(t, err)
	_, err = p.ProcessPage(ctx, imaging.PreparedPage{}, page)
	require.Error(t, err)
	assert.Equal(t, 0, ext.calls)
}

func TestProcessDocumentPartialFailure(t *testing.T) {
	// Fail the first page's three attempts, then succeed.
	ext := &fakeExtractor{failures: 3, record: report.PageRecord{"reference_number": "REF1"}}
	p, _ := newTestProcessor(ext)

	pages := []imaging.PreparedPage{{Index: 0}, {Index: 1}}
	agg, err := p.ProcessDocument(context.Background(), "claim.pdf", pages)
	require.NoError(t, err)
	require.NotNil(t, agg)
	assert.Nil(t, agg.Pages[0])
	assert.NotNil(t, agg.Pages[1])
	assert.Equal(t, 1, agg.PageCount())
}

func TestProcessDocumentAllPagesFailStillReturnsReport(t *testing.T) {
	ext := &fakeExtractor{failures: -1}
	p, _ := newTestProcessor(ext)

	// A document where every page failed still yields an empty report with
	// no error; the failure is per-page, never document-level.
	agg, err := p.ProcessDocument(context.Background(), "claim.pdf", []imaging.PreparedPage{{Index: 0}})
	require.NoError(t, err)
	require.NotNil(t, agg)
	assert.Equal(t, 0, agg.PageCount())
}

func TestProcessDocumentIgnoresExtraPages(t *testing.T) {
	ext := &fakeExtractor{}
	p, _ := newTestProcessor(ext)

	pages := make([]imaging.PreparedPage, schema.NumPages+3)
	for i := range pages {
		pages[i] = imaging.PreparedPage{Index: i}
	}
	agg, err := p.ProcessDocument(context.Background(), "claim.pdf", pages)
	require.NoError(t, err)
	assert.Equal(t, schema.NumPages, agg.PageCount())
	assert.Equal(t, schema.NumPages, ext.calls)
}

func TestProcessDocumentEmpty(t *testing.T) {
	p, _ := newTestProcessor(&fakeExtractor{})
	agg, err := p.ProcessDocument(context.Background(), "claim.pdf", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, agg.PageCount())
}
