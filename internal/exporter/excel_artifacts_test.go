package exporter

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExcelExporter_Layout(t *testing.T) {
	cfg := testConfig(t)
	outputFile, err := NewExcelExporter().Export(sampleResult(t), cfg)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	f, err := excelize.OpenFile(outputFile)
	if err != nil {
		t.Fatalf("Failed to open generated file: %v", err)
	}
	defer f.Close()

	// Raw sheet keeps its header visible
	panes, err := f.GetPanes(RawSheet)
	if err != nil {
		t.Fatalf("Failed to read panes: %v", err)
	}
	if !panes.Freeze || panes.YSplit != 1 {
		t.Errorf("Raw sheet header is not frozen: %+v", panes)
	}

	// Percentages carry a two decimal number format
	rows, err := f.GetRows(ReportSheet)
	if err != nil {
		t.Fatalf("Failed to get rows: %v", err)
	}
	var percentCell string
	for i, row := range rows {
		if len(row) > 0 && row[0] == "core-1" {
			percentCell, _ = excelize.CoordinatesToCellName(11, i+1)
			break
		}
	}
	if percentCell == "" {
		t.Fatal("core-1 row not found")
	}

	styleID, err := f.GetCellStyle(ReportSheet, percentCell)
	if err != nil {
		t.Fatalf("Failed to get cell style: %v", err)
	}
	style, err := f.GetStyle(styleID)
	if err != nil {
		t.Fatalf("Failed to get style: %v", err)
	}
	if style.CustomNumFmt == nil || *style.CustomNumFmt != "0.00" {
		t.Errorf("Cell %s has no 0.00 number format", percentCell)
	}

	// The underlying value stays numeric
	raw, err := f.GetCellValue(ReportSheet, percentCell, excelize.Options{RawCellValue: true})
	if err != nil {
		t.Fatalf("Failed to get cell value: %v", err)
	}
	if raw != "66.67" {
		t.Errorf("Raw utilisation value = %q, expected 66.67", raw)
	}
}

func TestExcelExporter_AlertRows(t *testing.T) {
	cfg := testConfig(t)
	outputFile, err := NewExcelExporter().Export(sampleResult(t), cfg)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	f, err := excelize.OpenFile(outputFile)
	if err != nil {
		t.Fatalf("Failed to open generated file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(ReportSheet)
	if err != nil {
		t.Fatalf("Failed to get rows: %v", err)
	}

	styles := map[string]int{}
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		if row[0] == "core-1" || row[0] == "edge-2" {
			cell, _ := excelize.CoordinatesToCellName(1, i+1)
			id, err := f.GetCellStyle(ReportSheet, cell)
			if err != nil {
				t.Fatalf("Failed to get cell style: %v", err)
			}
			styles[row[0]] = id
		}
	}

	// edge-2 has an err-disabled port, core-1 has none
	if styles["core-1"] == styles["edge-2"] {
		t.Error("Device with err-disabled ports is not highlighted")
	}
}
