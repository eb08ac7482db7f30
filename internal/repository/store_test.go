package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/claims-extract/internal/report"
	"github.com/joseph-ayodele/claims-extract/internal/schema"
)

func TestTablesDeclaration(t *testing.T) {
	tables := Tables()
	require.Len(t, tables, len(schema.Groups))

	byGroup := make(map[schema.Group]Table)
	for _, tab := range tables {
		byGroup[tab.Group] = tab
	}

	pi := byGroup[schema.GroupPersonalInfo]
	assert.Equal(t, "personal_info", pi.Name)
	assert.Equal(t, "reference_number", pi.PK)
	names := columnNames(pi)
	assert.Contains(t, names, report.ColClaimID)
	assert.Contains(t, names, report.ColPolicyID)
	assert.Contains(t, names, report.ColProcessDate)
	assert.Contains(t, names, report.ColStatus)
	assert.NotContains(t, names, "reference_number")

	mh := byGroup[schema.GroupMedicalHist]
	assert.Equal(t, "medical_history", mh.Name)
	assert.Equal(t, report.ColClaimID, mh.PK)
	for _, c := range mh.Columns {
		if c.Kind == schema.KindYesNo {
			assert.Equal(t, "VARCHAR(10)", c.Type, "column %s", c.Name)
		}
	}
}

func TestCreateSQLShape(t *testing.T) {
	for _, tab := range Tables() {
		ddl := tab.CreateSQL()
		assert.Contains(t, ddl, "CREATE TABLE IF NOT EXISTS "+tab.Name)
		assert.Contains(t, ddl, tab.PK+" VARCHAR(255) PRIMARY KEY")
		assert.Contains(t, ddl, "created_at TIMESTAMP NOT NULL")
		assert.Contains(t, ddl, "data_version INTEGER NOT NULL DEFAULT 1")
	}
}

func columnNames(t Table) []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

func newTestStore(t *testing.T) (*Store, *sql.DB) {
	t.Helper()
	db, err := OpenSQLite(":memory:", testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store, err := NewStore(db, SQLite, testLogger())
	require.NoError(t, err)
	require.NoError(t, store.EnsureSchema(context.Background(), EnsureOptions{}))
	return store, db
}

func groupedFor(ref string) report.GroupedTables {
	flat := report.FlatRow{
		"reference_number":                 ref,
		"name_of_life_to_be_insured":       "A Person",
		"has_diabetes_or_high_blood_sugar": "Yes",
		"height_cm":                        "180",
		"examiner_name":                    "Dr Who",
	}
	return report.Group(flat, report.GroupOptions{ProcessDate: "2026-08-01"})
}

func TestEnsureSchemaIdempotent(t *testing.T) {
	store, _ := newTestStore(t)
	// Second run must not fail on existing tables.
	require.NoError(t, store.EnsureSchema(context.Background(), EnsureOptions{}))
}

func TestUpsertGroupedTxInsertAndUpdate(t *testing.T) {
	store, db := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.UpsertGroupedTx(ctx, groupedFor("REF1"), true))

	var claimID, name string
	var version int
	row := db.QueryRowContext(ctx,
		"SELECT claim_id, name_of_life_to_be_insured, data_version FROM personal_info WHERE reference_number = ?",
		"REF1")
	require.NoError(t, row.Scan(&claimID, &name, &version))
	assert.Equal(t, "CLM_REF1", claimID)
	assert.Equal(t, "A Person", name)
	assert.Equal(t, 1, version)

	// Re-import the same claim with changed data bumps the version.
	grouped := groupedFor("REF1")
	grouped[schema.GroupPersonalInfo]["name_of_life_to_be_insured"] = "A Renamed Person"
	require.NoError(t, store.UpsertGroupedTx(ctx, grouped, true))

	row = db.QueryRowContext(ctx,
		"SELECT name_of_life_to_be_insured, data_version FROM personal_info WHERE reference_number = ?",
		"REF1")
	require.NoError(t, row.Scan(&name, &version))
	assert.Equal(t, "A Renamed Person", name)
	assert.Equal(t, 2, version)

	// Dependent tables keyed on claim_id got their rows too.
	var answer string
	row = db.QueryRowContext(ctx,
		"SELECT has_diabetes_or_high_blood_sugar FROM medical_history WHERE claim_id = ?",
		"CLM_REF1")
	require.NoError(t, row.Scan(&answer))
	assert.Equal(t, "Yes", answer)
}

func TestDuplicateInsertWithoutUpdateReportsError(t *testing.T) {
	store, db := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.UpsertGroupedTx(ctx, groupedFor("REF2"), true))

	// Without updateOnDuplicate the second import must fail on the key
	// constraint, not silently succeed, and the stored row stays intact.
	grouped := groupedFor("REF2")
	grouped[schema.GroupPersonalInfo]["name_of_life_to_be_insured"] = "Changed"
	err := store.UpsertGroupedTx(ctx, grouped, false)
	require.Error(t, err)

	results, err := store.UpsertGrouped(ctx, grouped, false)
	require.Error(t, err)
	for g, ok := range results {
		assert.False(t, ok, "group %s", g)
	}

	var name string
	var version int
	row := db.QueryRowContext(ctx,
		"SELECT name_of_life_to_be_insured, data_version FROM personal_info WHERE reference_number = ?",
		"REF2")
	require.NoError(t, row.Scan(&name, &version))
	assert.Equal(t, "A Person", name)
	assert.Equal(t, 1, version)
}

func TestUpsertNullsSentinels(t *testing.T) {
	store, db := newTestStore(t)
	ctx := context.Background()

	flat := report.FlatRow{
		"reference_number": "REF3",
		"height_cm":        "N/A",
		"examiner_name":    "-",
	}
	require.NoError(t, store.UpsertGroupedTx(ctx, report.Group(flat, report.GroupOptions{}), true))

	var height sql.NullInt64
	row := db.QueryRowContext(ctx,
		"SELECT height_cm FROM examination_results WHERE claim_id = ?", "CLM_REF3")
	require.NoError(t, row.Scan(&height))
	assert.False(t, height.Valid)

	var examiner sql.NullString
	row = db.QueryRowContext(ctx,
		"SELECT examiner_name FROM examiner_details WHERE claim_id = ?", "CLM_REF3")
	require.NoError(t, row.Scan(&examiner))
	assert.False(t, examiner.Valid)
}

func TestUpsertMissingPrimaryKey(t *testing.T) {
	store, _ := newTestStore(t)
	tables := Tables()
	err := store.Upsert(context.Background(), tables[0], map[string]string{}, true)
	require.Error(t, err)
}

func TestForceRecreateDropsData(t *testing.T) {
	store, db := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.UpsertGroupedTx(ctx, groupedFor("REF4"), true))
	require.NoError(t, store.EnsureSchema(ctx, EnsureOptions{ForceRecreate: true}))

	var count int
	row := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM personal_info")
	require.NoError(t, row.Scan(&count))
	assert.Equal(t, 0, count)
}

func TestBatchUpsert(t *testing.T) {
	store, db := newTestStore(t)
	ctx := context.Background()

	good1 := report.NewAggregateReport("a.pdf")
	good1.SetPage(0, report.PageRecord{"reference_number": "REF10"})
	good2 := report.NewAggregateReport("b.pdf")
	good2.SetPage(0, report.PageRecord{"reference_number": "REF11"})
	noRef := report.NewAggregateReport("c.pdf")
	noRef.SetPage(1, report.PageRecord{"has_diabetes_or_high_blood_sugar": "Yes"})

	stats, err := store.BatchUpsert(ctx,
		[]*report.AggregateReport{good1, nil, good2, noRef}, 2, report.GroupOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Successful)
	assert.Equal(t, 0, stats.Failed)
	assert.Equal(t, 2, stats.Skipped)

	var count int
	row := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM personal_info")
	require.NoError(t, row.Scan(&count))
	assert.Equal(t, 2, count)
}
