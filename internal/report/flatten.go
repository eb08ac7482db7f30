package report

// FlatRow is the single denormalized key-value view of a whole document:
// one claim, one row.
type FlatRow map[string]string

// Flatten unions all present page records into one flat row. The schema
// registry guarantees no cross-page field-name collisions, so this is a
// plain union; if a duplicate ever slips in, last page wins (pages are
// applied in order), which the registry audit and tests guard against.
func Flatten(a *AggregateReport) FlatRow {
	flat := make(FlatRow)
	for _, page := range a.Pages {
		for name, value := range page {
			flat[name] = value
		}
	}
	return flat
}
