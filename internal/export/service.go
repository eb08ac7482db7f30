package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/claims-extract/internal/report"
	"github.com/joseph-ayodele/claims-extract/internal/schema"
)

// Service produces XLSX bytes for extracted reports: one sheet per storage
// group plus a combined flat sheet, so reviewers can eyeball a batch without
// a database.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

var sheetNames = map[schema.Group]string{
	schema.GroupPersonalInfo: "Personal Info",
	schema.GroupMedicalHist:  "Medical History",
	schema.GroupExamination:  "Examination Results",
	schema.GroupSummary:      "Summary",
	schema.GroupExaminer:     "Examiner Details",
}

// ExportReportsXLSX returns an XLSX workbook (as bytes) for the given reports.
// Reports keep their input order; a report with no reference number is still
// exported so reviewers can spot it.
func (s *Service) ExportReportsXLSX(reports []*report.AggregateReport, gopts report.GroupOptions) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()

	type exported struct {
		flat    report.FlatRow
		grouped report.GroupedTables
	}
	rows := make([]exported, 0, len(reports))
	for _, agg := range reports {
		if agg == nil {
			continue
		}
		flat := report.Flatten(agg)
		rows = append(rows, exported{flat: flat, grouped: report.Group(flat, gopts)})
	}

	// One sheet per storage group, columns in registry order.
	for _, g := range schema.Groups {
		sheet := sheetNames[g]
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
		headers := groupHeaders(g)
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			_ = f.SetCellValue(sheet, cell, h)
		}
		for rowIdx, r := range rows {
			for colIdx, h := range headers {
				cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
				_ = f.SetCellValue(sheet, cell, r.grouped[g][h])
			}
		}
		_ = f.SetColWidth(sheet, "A", "C", 18)
	}

	// Combined flat sheet: every registry field, page order.
	const flatSheet = "All Fields"
	if _, err := f.NewSheet(flatSheet); err != nil {
		return nil, err
	}
	flatHeaders := make([]string, 0, 8)
	for _, fd := range schema.AllFields() {
		flatHeaders = append(flatHeaders, fd.Name)
	}
	for i, h := range flatHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(flatSheet, cell, h)
	}
	for rowIdx, r := range rows {
		for colIdx, h := range flatHeaders {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			_ = f.SetCellValue(flatSheet, cell, r.flat[h])
		}
	}

	// Drop excelize's default sheet and land on the first group.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		s.logger.Warn("export.xlsx.delete_default_sheet", "error", err)
	}
	if idx, err := f.GetSheetIndex(sheetNames[schema.GroupPersonalInfo]); err == nil {
		f.SetActiveSheet(idx)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"reports", len(rows),
		"sheets", len(schema.Groups)+1,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// groupHeaders lists a group sheet's columns: identifiers first, then the
// group's registry fields in page order.
func groupHeaders(g schema.Group) []string {
	headers := []string{report.ColClaimID}
	if g == schema.GroupPersonalInfo {
		headers = append(headers, report.ColPolicyID, report.ColProcessDate, report.ColStatus)
	}
	for _, fd := range schema.AllFields() {
		if fd.Group == g {
			headers = append(headers, fd.Name)
		}
	}
	return headers
}
