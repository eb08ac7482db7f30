// Package report holds the extracted data model: per-page records, the
// per-document aggregate, and the flatten/group steps that reshape a
// document into its five storage tables.
package report

import (
	"github.com/joseph-ayodele/claims-extract/internal/schema"
)

// PageRecord is the structured result extracted from one physical page,
// keyed by registry field name. Values are canonical tokens: "Yes"/"No" for
// checkbox fields, plain digit strings for measurements, "" for unknowns.
// Records are treated as immutable once produced.
type PageRecord map[string]string

// Clone returns an independent copy of the record.
func (r PageRecord) Clone() PageRecord {
	if r == nil {
		return nil
	}
	out := make(PageRecord, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// AggregateReport collects the per-page records of one document. A nil slot
// means that page failed extraction or was not supplied; downstream
// consumers treat that as "no data for this section", not an error.
type AggregateReport struct {
	SourcePath string
	Pages      [schema.NumPages]PageRecord
}

// NewAggregateReport returns an empty report for a source file.
func NewAggregateReport(sourcePath string) *AggregateReport {
	return &AggregateReport{SourcePath: sourcePath}
}

// SetPage stores a completed page record. Out-of-range indexes are ignored;
// the pipeline has already bounded them.
func (a *AggregateReport) SetPage(i int, rec PageRecord) {
	if i < 0 || i >= len(a.Pages) {
		return
	}
	a.Pages[i] = rec
}

// PageCount returns the number of populated page slots.
func (a *AggregateReport) PageCount() int {
	n := 0
	for _, p := range a.Pages {
		if p != nil {
			n++
		}
	}
	return n
}

// ReferenceNumber returns the report's natural key, if page 0 was extracted.
func (a *AggregateReport) ReferenceNumber() string {
	if p := a.Pages[0]; p != nil {
		return p["reference_number"]
	}
	return ""
}
