package repository

import (
	"fmt"
	"strings"

	"github.com/joseph-ayodele/claims-extract/internal/report"
	"github.com/joseph-ayodele/claims-extract/internal/schema"
)

// Bookkeeping columns every table carries.
const (
	colCreatedAt   = "created_at"
	colUpdatedAt   = "updated_at"
	colDataVersion = "data_version"
)

// Column is one declared table column.
type Column struct {
	Name string
	Type string
	Kind schema.FieldKind
}

// Table is one of the five storage tables, with its columns declared from the
// field registry. Column types are derived from field kinds, never guessed
// from values.
type Table struct {
	Name    string
	Group   schema.Group
	PK      string
	Columns []Column // data columns, PK first; bookkeeping columns excluded
}

var tableNames = map[schema.Group]string{
	schema.GroupPersonalInfo: "personal_info",
	schema.GroupMedicalHist:  "medical_history",
	schema.GroupExamination:  "examination_results",
	schema.GroupSummary:      "summary",
	schema.GroupExaminer:     "examiner_details",
}

// columnType maps a field kind to its SQL column type. The names are valid in
// both PostgreSQL and SQLite.
func columnType(kind schema.FieldKind) string {
	switch kind {
	case schema.KindYesNo:
		return "VARCHAR(10)"
	case schema.KindLongText:
		return "TEXT"
	case schema.KindInt:
		return "INTEGER"
	case schema.KindDecimal:
		return "DECIMAL(10,2)"
	case schema.KindDate:
		return "DATE"
	default:
		return "VARCHAR(255)"
	}
}

// Tables declares the five storage tables. PERSONAL_INFO is keyed by the form
// reference number and carries the synthesized identifiers; the other tables
// key on claim_id.
func Tables() []Table {
	out := make([]Table, 0, len(schema.Groups))
	for _, g := range schema.Groups {
		t := Table{
			Name:  tableNames[g],
			Group: g,
		}
		if g == schema.GroupPersonalInfo {
			t.PK = "reference_number"
			t.Columns = append(t.Columns,
				Column{Name: report.ColClaimID, Type: "VARCHAR(255)", Kind: schema.KindText},
				Column{Name: report.ColPolicyID, Type: "VARCHAR(255)", Kind: schema.KindText},
				Column{Name: report.ColProcessDate, Type: "DATE", Kind: schema.KindDate},
				Column{Name: report.ColStatus, Type: "VARCHAR(50)", Kind: schema.KindText},
			)
		} else {
			t.PK = report.ColClaimID
			t.Columns = append(t.Columns,
				Column{Name: report.ColClaimID, Type: "VARCHAR(255)", Kind: schema.KindText},
			)
		}
		for _, f := range schema.AllFields() {
			if f.Group != g {
				continue
			}
			if g == schema.GroupPersonalInfo && f.Name == "reference_number" {
				continue // declared below as the PK
			}
			t.Columns = append(t.Columns, Column{
				Name: f.Name,
				Type: columnType(f.Kind),
				Kind: f.Kind,
			})
		}
		out = append(out, t)
	}
	return out
}

// CreateSQL renders the table's CREATE TABLE statement.
func (t Table) CreateSQL() string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", t.Name)
	fmt.Fprintf(&b, "    %s VARCHAR(255) PRIMARY KEY", t.PK)
	for _, c := range t.Columns {
		if c.Name == t.PK {
			continue
		}
		fmt.Fprintf(&b, ",\n    %s %s", c.Name, c.Type)
	}
	fmt.Fprintf(&b, ",\n    %s TIMESTAMP NOT NULL", colCreatedAt)
	fmt.Fprintf(&b, ",\n    %s TIMESTAMP NOT NULL", colUpdatedAt)
	fmt.Fprintf(&b, ",\n    %s INTEGER NOT NULL DEFAULT 1", colDataVersion)
	b.WriteString("\n)")
	return b.String()
}

// DropSQL renders the table's DROP TABLE statement.
func (t Table) DropSQL() string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s", t.Name)
}
