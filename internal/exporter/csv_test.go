package exporter

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"strings"
	"testing"

	"intf-report/internal/model"
)

func TestCSVExport(t *testing.T) {
	cfg := testConfig(t)
	cfg.Report.SortBy = "utilisation"

	outputFile, err := NewCSVExporter().Export(sampleResult(t), cfg)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if !strings.HasSuffix(outputFile, "-devices_interface_report.csv") {
		t.Errorf("Unexpected output path: %s", outputFile)
	}

	f, err := os.Open(outputFile)
	if err != nil {
		t.Fatalf("Failed to open output: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse CSV: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("Expected header and 2 device rows, got %d rows", len(rows))
	}
	if rows[0][0] != "hostname" || rows[0][10] != "port utilisation (%)" {
		t.Errorf("Unexpected header: %v", rows[0])
	}

	// core-1 (66.67) before edge-2 (50)
	if rows[1][0] != "core-1" || rows[1][10] != "66.67" {
		t.Errorf("Unexpected first row: %v", rows[1])
	}
	if rows[2][0] != "edge-2" || rows[2][10] != "50" {
		t.Errorf("Unexpected second row: %v", rows[2])
	}
}

func TestCSVExportEncoding(t *testing.T) {
	cfg := testConfig(t)
	cfg.Output.CSVEncoding = "windows-1252"

	result := &model.ReportResult{
		Summary: model.Summary{
			Devices: []model.DeviceSummary{{Hostname: "zürich-sw1", Total: 1, UpUp: 1, Utilisation: 100}},
		},
	}

	outputFile, err := NewCSVExporter().Export(result, cfg)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	content, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}

	// ü is a single 0xFC byte in windows-1252
	if !bytes.Contains(content, []byte("z\xfcrich-sw1")) {
		t.Errorf("Hostname was not encoded as windows-1252: %q", content)
	}
}

func TestCSVExportUnknownEncoding(t *testing.T) {
	cfg := testConfig(t)
	cfg.Output.CSVEncoding = "klingon-8"

	_, err := NewCSVExporter().Export(sampleResult(t), cfg)
	if !errors.Is(err, model.ErrConfiguration) {
		t.Errorf("Expected a configuration error, got %v", err)
	}
}
