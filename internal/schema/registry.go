// Package schema declares the canonical per-page field registry for the
// medical examiner's report, the question catalogs, and the five-way storage
// grouping. It is pure data: the extraction pipeline reads it to request
// conformant model output, and the storage layer reads it to declare column
// types. A field's shape is declared exactly once, here.
package schema

import (
	"fmt"

	"github.com/joseph-ayodele/claims-extract/internal/common"
)

// NumPages is the number of physical pages the report form has.
const NumPages = 9

// SchemaVersion tags the declared field/column set. Bump when field
// declarations change shape so stored data can be told apart.
const SchemaVersion = 1

// FieldKind is the semantic type of a form field.
type FieldKind int

const (
	KindText     FieldKind = iota // short free text
	KindLongText                  // details, addresses, narrative answers
	KindYesNo                     // bounded Yes/No checkbox
	KindInt                       // integer measurement
	KindDecimal                   // decimal measurement
	KindDate                      // date-as-text, normalized downstream
)

func (k FieldKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindLongText:
		return "longtext"
	case KindYesNo:
		return "yesno"
	case KindInt:
		return "int"
	case KindDecimal:
		return "decimal"
	case KindDate:
		return "date"
	}
	return fmt.Sprintf("FieldKind(%d)", int(k))
}

// Group names one of the five storage partitions of a flattened report.
type Group string

const (
	GroupPersonalInfo Group = "PERSONAL_INFO"
	GroupMedicalHist  Group = "MEDICAL_HISTORY"
	GroupExamination  Group = "EXAMINATION_RESULTS"
	GroupSummary      Group = "SUMMARY"
	GroupExaminer     Group = "EXAMINER_DETAILS"
)

// Groups lists the partitions in storage order.
var Groups = []Group{
	GroupPersonalInfo,
	GroupMedicalHist,
	GroupExamination,
	GroupSummary,
	GroupExaminer,
}

// FieldDef declares one extractable field: its wire/column name, semantic
// kind, storage group, and an optional prompt hint.
type FieldDef struct {
	Name     string
	Kind     FieldKind
	Group    Group
	Required bool
	Hint     string
}

// PageSchema enumerates the fields expected on one physical page.
type PageSchema struct {
	Index   int
	Title   string
	Context string // positional hint handed to the model
	Fields  []FieldDef
}

// FieldNames returns the page's field names in declaration order.
func (p PageSchema) FieldNames() []string {
	names := make([]string, len(p.Fields))
	for i, f := range p.Fields {
		names[i] = f.Name
	}
	return names
}

// Page returns the schema for page index i (0..NumPages-1).
func Page(i int) (PageSchema, error) {
	if i < 0 || i >= len(pages) {
		return PageSchema{}, common.NewAppError("SCHEMA_PAGE",
			fmt.Sprintf("page %d not supported, must be 0-%d", i, len(pages)-1),
			common.ErrPageOutOfRange)
	}
	return pages[i], nil
}

// Pages returns all nine page schemas in order.
func Pages() []PageSchema {
	out := make([]PageSchema, len(pages))
	copy(out, pages)
	return out
}

// AllFields returns every declared field across all pages, page order first.
func AllFields() []FieldDef {
	var out []FieldDef
	for _, p := range pages {
		out = append(out, p.Fields...)
	}
	return out
}

// FieldByName looks a field declaration up by name.
func FieldByName(name string) (FieldDef, bool) {
	f, ok := fieldIndex[name]
	return f, ok
}

// GroupFor returns the storage group a field belongs to.
func GroupFor(name string) (Group, bool) {
	f, ok := fieldIndex[name]
	if !ok {
		return "", false
	}
	return f.Group, true
}

var fieldIndex = buildFieldIndex()

func buildFieldIndex() map[string]FieldDef {
	idx := make(map[string]FieldDef)
	for _, p := range pages {
		for _, f := range p.Fields {
			idx[f.Name] = f
		}
	}
	return idx
}

// Validate checks the registry's construction invariants: page indexes are
// dense, and no field name repeats across pages (the guarantee that makes
// flattening a plain union).
func Validate() error {
	seen := make(map[string]int)
	for i, p := range pages {
		if p.Index != i {
			return fmt.Errorf("page %d declared with index %d", i, p.Index)
		}
		if len(p.Fields) == 0 {
			return fmt.Errorf("page %d has no fields", i)
		}
		for _, f := range p.Fields {
			if f.Name == "" {
				return fmt.Errorf("page %d has an unnamed field", i)
			}
			if prev, dup := seen[f.Name]; dup {
				return fmt.Errorf("field %q declared on page %d and page %d", f.Name, prev, i)
			}
			seen[f.Name] = i
		}
	}
	return nil
}

// VerifyPartition checks that the five-way grouping is a true partition of
// the registry: every field carries exactly one known group. Run at startup
// by the storage layer so grouping drift fails fast instead of silently
// dropping columns.
func VerifyPartition() error {
	known := make(map[Group]struct{}, len(Groups))
	for _, g := range Groups {
		known[g] = struct{}{}
	}
	counts := make(map[Group]int)
	for _, f := range AllFields() {
		if _, ok := known[f.Group]; !ok {
			return fmt.Errorf("field %q assigned to unknown group %q", f.Name, f.Group)
		}
		counts[f.Group]++
	}
	for _, g := range Groups {
		if counts[g] == 0 {
			return fmt.Errorf("group %s has no fields", g)
		}
	}
	return nil
}
