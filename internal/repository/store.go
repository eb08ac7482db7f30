package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joseph-ayodele/claims-extract/internal/common"
	"github.com/joseph-ayodele/claims-extract/internal/report"
	"github.com/joseph-ayodele/claims-extract/internal/schema"
)

// Store persists grouped extraction results into the five claim tables.
type Store struct {
	db      *sql.DB
	dialect Dialect
	log     *slog.Logger
	tables  []Table
}

// NewStore builds a store over an open database. The field registry is
// audited up front so a grouping or declaration mistake fails at startup, not
// at the first insert.
func NewStore(db *sql.DB, dialect Dialect, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := schema.Validate(); err != nil {
		return nil, common.NewAppError("STORAGE_ERROR",
			fmt.Sprintf("field registry invalid: %v", err), common.ErrStorage)
	}
	if err := schema.VerifyPartition(); err != nil {
		return nil, common.NewAppError("STORAGE_ERROR",
			fmt.Sprintf("field grouping invalid: %v", err), common.ErrStorage)
	}
	return &Store{
		db:      db,
		dialect: dialect,
		log:     logger,
		tables:  Tables(),
	}, nil
}

// EnsureOptions controls schema creation.
type EnsureOptions struct {
	// ForceRecreate drops the claim tables first. Destroys data.
	ForceRecreate bool
}

// EnsureSchema creates the five claim tables if they do not exist.
func (s *Store) EnsureSchema(ctx context.Context, opts EnsureOptions) error {
	start := time.Now()
	for _, t := range s.tables {
		if opts.ForceRecreate {
			if _, err := s.db.ExecContext(ctx, t.DropSQL()); err != nil {
				return s.storageErr("drop table "+t.Name, err)
			}
		}
		if _, err := s.db.ExecContext(ctx, t.CreateSQL()); err != nil {
			return s.storageErr("create table "+t.Name, err)
		}
	}
	s.log.Info("repository.schema.ok",
		"dialect", s.dialect.String(),
		"tables", len(s.tables),
		"schema_version", schema.SchemaVersion,
		"force_recreate", opts.ForceRecreate,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// execer abstracts *sql.DB and *sql.Tx for the upsert path.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Upsert writes one grouped row into its table. With updateOnDuplicate the
// existing row is overwritten column by column and its data_version bumped;
// without it the statement is a plain INSERT, so a duplicate key surfaces as
// the constraint error rather than being swallowed.
func (s *Store) Upsert(ctx context.Context, t Table, row map[string]string, updateOnDuplicate bool) error {
	return s.upsertOn(ctx, s.db, t, row, updateOnDuplicate)
}

func (s *Store) upsertOn(ctx context.Context, ex execer, t Table, row map[string]string, updateOnDuplicate bool) error {
	pkVal := strings.TrimSpace(row[t.PK])
	if pkVal == "" {
		return common.NewAppError("STORAGE_ERROR",
			fmt.Sprintf("%s: missing primary key %s", t.Name, t.PK), common.ErrStorage)
	}

	cols := []string{t.PK}
	args := []any{pkVal}
	for _, c := range t.Columns {
		if c.Name == t.PK {
			continue
		}
		cols = append(cols, c.Name)
		args = append(args, bindValue(c, row[c.Name]))
	}
	now := time.Now().UTC()
	cols = append(cols, colCreatedAt, colUpdatedAt, colDataVersion)
	args = append(args, now, now, 1)

	var b strings.Builder
	fmt.Fprintf(&b, "INSERT INTO %s (%s) VALUES (", t.Name, strings.Join(cols, ", "))
	for i := range cols {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(s.dialect.Placeholder(i + 1))
	}
	b.WriteString(")")

	if updateOnDuplicate {
		fmt.Fprintf(&b, " ON CONFLICT (%s) DO UPDATE SET ", t.PK)
		first := true
		for _, c := range t.Columns {
			if c.Name == t.PK {
				continue
			}
			if !first {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s = excluded.%s", c.Name, c.Name)
			first = false
		}
		fmt.Fprintf(&b, ", %s = excluded.%s", colUpdatedAt, colUpdatedAt)
		fmt.Fprintf(&b, ", %s = %s.%s + 1", colDataVersion, t.Name, colDataVersion)
	}

	if _, err := ex.ExecContext(ctx, b.String(), args...); err != nil {
		return s.storageErr("upsert "+t.Name, err)
	}
	return nil
}

// UpsertGrouped writes all five grouped rows, continuing past per-table
// failures. The returned map records which tables succeeded; the error is
// non-nil when any table failed.
func (s *Store) UpsertGrouped(ctx context.Context, grouped report.GroupedTables, updateOnDuplicate bool) (map[schema.Group]bool, error) {
	results := make(map[schema.Group]bool, len(s.tables))
	var failed []string
	for _, t := range s.tables {
		row, ok := grouped[t.Group]
		if !ok {
			results[t.Group] = false
			failed = append(failed, t.Name+" (no row)")
			continue
		}
		if err := s.Upsert(ctx, t, row, updateOnDuplicate); err != nil {
			s.log.Error("repository.upsert.table_failed", "table", t.Name, "error", err)
			results[t.Group] = false
			failed = append(failed, t.Name)
			continue
		}
		results[t.Group] = true
	}
	if len(failed) > 0 {
		return results, common.NewAppError("STORAGE_ERROR",
			"failed tables: "+strings.Join(failed, ", "), common.ErrStorage)
	}
	return results, nil
}

// UpsertGroupedTx writes all five grouped rows in one transaction. Any table
// failure rolls the whole claim back.
func (s *Store) UpsertGroupedTx(ctx context.Context, grouped report.GroupedTables, updateOnDuplicate bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return s.storageErr("begin tx", err)
	}
	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
				s.log.Warn("repository.tx.rollback_error", "error", rbErr)
			}
		}
	}()

	for _, t := range s.tables {
		if err := s.upsertOn(ctx, tx, t, grouped[t.Group], updateOnDuplicate); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return s.storageErr("commit tx", err)
	}
	committed = true
	return nil
}

// Stats summarizes a batch import.
type Stats struct {
	Successful int
	Failed     int
	Skipped    int
}

// BatchUpsert flattens, groups and stores a set of extracted reports. Reports
// with no reference number are skipped rather than written under a synthetic
// key; each report is stored atomically across its five tables.
func (s *Store) BatchUpsert(ctx context.Context, reports []*report.AggregateReport, batchSize int, gopts report.GroupOptions) (Stats, error) {
	if batchSize <= 0 {
		batchSize = 10
	}
	start := time.Now()
	var stats Stats
	for i, agg := range reports {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if agg == nil || agg.ReferenceNumber() == "" {
			stats.Skipped++
			s.log.Warn("repository.batch.skipped",
				"index", i,
				"reason", "missing reference number",
			)
			continue
		}
		grouped := report.Group(report.Flatten(agg), gopts)
		if err := s.UpsertGroupedTx(ctx, grouped, true); err != nil {
			stats.Failed++
			s.log.Error("repository.batch.claim_failed",
				"index", i,
				"reference_number", agg.ReferenceNumber(),
				"error", err,
			)
			continue
		}
		stats.Successful++
		if (i+1)%batchSize == 0 {
			s.log.Info("repository.batch.progress",
				"processed", i+1,
				"total", len(reports),
				"successful", stats.Successful,
				"failed", stats.Failed,
				"skipped", stats.Skipped,
			)
		}
	}
	s.log.Info("repository.batch.done",
		"total", len(reports),
		"successful", stats.Successful,
		"failed", stats.Failed,
		"skipped", stats.Skipped,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return stats, nil
}

func (s *Store) storageErr(op string, err error) error {
	return common.NewAppError("STORAGE_ERROR",
		fmt.Sprintf("%s: %v", op, err), common.ErrStorage)
}
