package exporter

import (
	"fmt"

	"intf-report/internal/config"
	"intf-report/internal/exporter/common"
	"intf-report/internal/model"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the workbook
const (
	ReportSheet = "report"
	RawSheet    = "intf_raw_data"
)

// ExcelExporter handles the Excel generation
type ExcelExporter struct {
	// Stateless
}

// NewExcelExporter creates a new ExcelExporter
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Format returns the canonical format name
func (e *ExcelExporter) Format() string {
	return "xlsx"
}

// Export generates the two-sheet workbook: the report, then the raw kept interfaces
func (e *ExcelExporter) Export(result *model.ReportResult, cfg *config.Config) (string, error) {
	outputFile := cfg.GetOutputPath("xlsx")
	f := excelize.NewFile()
	defer f.Close()

	styler, err := NewStyler(f)
	if err != nil {
		return "", err
	}

	// The default sheet becomes the report so that it stays first
	if err := f.SetSheetName("Sheet1", ReportSheet); err != nil {
		return "", err
	}

	// 1. Report Sheet
	if err := e.writeReport(f, styler, result, cfg.Report.SortBy); err != nil {
		return "", fmt.Errorf("failed to write %s sheet: %w", ReportSheet, err)
	}

	// 2. Raw Data Sheet
	if err := e.writeRaw(f, styler, result.Raw); err != nil {
		return "", fmt.Errorf("failed to write %s sheet: %w", RawSheet, err)
	}

	f.SetActiveSheet(0)

	if err := f.SaveAs(outputFile); err != nil {
		return "", err
	}

	return outputFile, nil
}

// --- Report Sheet Logic ---

func (e *ExcelExporter) writeReport(f *excelize.File, s *Styler, result *model.ReportResult, sortBy string) error {
	sheet := ReportSheet
	summary := result.Summary

	// Section A: Fleet Summary
	row := 1
	f.SetCellValue(sheet, "A1", "Interfaces summary")
	f.SetCellStyle(sheet, "A1", "A1", s.TitleStyle)
	row++

	e.writeRow(f, sheet, row, common.SummaryHeaders, s.HeaderStyle)
	row++

	for _, st := range summary.Categories {
		cells := []interface{}{string(st.Category), st.Count, st.Percent}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &cells); err != nil {
			return err
		}
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), s.DefaultStyle)
		f.SetCellStyle(sheet, fmt.Sprintf("C%d", row), fmt.Sprintf("C%d", row), s.PercentStyle)
		row++
	}

	totalPercent := 0.0
	if summary.Total > 0 {
		totalPercent = 100
	}
	totals := []interface{}{"Total", summary.Total, totalPercent}
	if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &totals); err != nil {
		return err
	}
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("C%d", row), s.TotalStyle)
	row++

	extras := []struct {
		Key string
		Val int
	}{
		{"admin-down", summary.AdminDown},
		{"err-disabled", summary.ErrDisabled},
		{"excluded interfaces", result.Excluded},
	}
	for _, m := range extras {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), m.Key)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), m.Val)
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), s.DefaultStyle)
		row++
	}

	if result.Pattern != "" {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "exclusion pattern")
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), result.Pattern)
		row++
	}

	row += 2 // Spacer

	// Section B: Per-Device Table
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Interfaces per device")
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), s.TitleStyle)
	row++

	e.writeRow(f, sheet, row, common.DeviceHeaders, s.HeaderStyle)
	row++

	lastCol, _ := excelize.ColumnNumberToName(len(common.DeviceHeaders))
	for _, d := range common.SortDevices(summary.Devices, sortBy) {
		cells := common.DeviceRow(d)
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &cells); err != nil {
			return err
		}

		style := s.DefaultStyle
		if d.ErrDisabled > 0 {
			style = s.AlertStyle
		}
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("J%d", row), style)
		f.SetCellStyle(sheet, fmt.Sprintf("K%d", row), fmt.Sprintf("%s%d", lastCol, row), s.PercentStyle)
		row++
	}

	// Adjust column widths
	f.SetColWidth(sheet, "A", "A", 24)
	f.SetColWidth(sheet, "B", "C", 18)
	f.SetColWidth(sheet, "D", "J", 14)
	f.SetColWidth(sheet, "K", lastCol, 20)

	return nil
}

// --- Raw Data Sheet Logic ---

func (e *ExcelExporter) writeRaw(f *excelize.File, s *Styler, records []model.InterfaceRecord) error {
	sheet := RawSheet
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	e.writeRow(f, sheet, 1, model.RecordColumns, s.HeaderStyle)

	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	for i, rec := range records {
		cells := rec.Values()
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &cells); err != nil {
			return err
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(model.RecordColumns))
	if len(records) > 0 {
		ref := fmt.Sprintf("A1:%s%d", lastCol, len(records)+1)
		if err := f.AutoFilter(sheet, ref, nil); err != nil {
			return err
		}
	}

	f.SetColWidth(sheet, "A", "D", 22)
	f.SetColWidth(sheet, "E", lastCol, 14)

	return nil
}

func (e *ExcelExporter) writeRow(f *excelize.File, sheet string, row int, values []string, style int) {
	for i, val := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, val)
		f.SetCellStyle(sheet, cell, cell, style)
	}
}
