package e2e

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"intf-report/internal/config"
	"intf-report/internal/exporter"
	"intf-report/internal/filter"
	"intf-report/internal/ipfabric"
	"intf-report/internal/ipfabric/ipfabrictest"
	"intf-report/internal/metrics"
	"intf-report/internal/model"
	"intf-report/internal/report"

	"github.com/xuri/excelize/v2"
)

func TestEndToEndFlow(t *testing.T) {
	server := ipfabrictest.NewServer("e2e-token", ipfabrictest.SampleRecords())
	defer server.Close()

	outputDir := t.TempDir()

	// 1. Configure
	cfg := &config.Config{
		IPFabric: config.IPFabricConfig{
			URL:      server.URL,
			Token:    "e2e-token",
			PageSize: 4,
		},
		Report: config.ReportConfig{
			ExcludePattern: filter.DefaultExcludePattern,
		},
		Output: config.OutputConfig{
			Dir:         outputDir,
			FileName:    "e2e_report",
			Formats:     []string{"xlsx", "csv", "html", "docx", "json"},
			CSVEncoding: "utf-8",
			MetricsFile: filepath.Join(outputDir, "intf_report.prom"),
		},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Config is invalid: %v", err)
	}
	cfg.Stamp(time.Date(2026, 2, 6, 9, 30, 0, 0, time.Local))

	// 2. Fetch
	client, err := ipfabric.NewClient(ipfabric.Options{
		BaseURL:  cfg.IPFabric.URL,
		Token:    cfg.IPFabric.Token,
		PageSize: cfg.IPFabric.PageSize,
	})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	count, err := client.Count(context.Background())
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 9 {
		t.Errorf("Count = %d, expected 9", count)
	}
	records, err := client.Interfaces(context.Background(), nil)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(records) != count || server.Requests() != 4 {
		t.Fatalf("Fetched %d records in %d requests, expected %d in 4", len(records), server.Requests(), count)
	}

	// 3. Build
	rule := filter.MustCompile(cfg.Report.ExcludePattern, cfg.Report.CaseSensitive)
	result, err := report.Build(records, rule, report.DefaultOptions())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if result.Excluded != 3 || result.Summary.Total != 6 {
		t.Errorf("Kept %d, excluded %d, expected 6 and 3", result.Summary.Total, result.Excluded)
	}

	sum := 0.0
	for _, st := range result.Summary.Categories {
		sum += st.Percent
	}
	if sum < 99.98 || sum > 100.02 {
		t.Errorf("Category percentages sum to %v", sum)
	}

	// 4. Export
	exporters, unknown := exporter.GetExporters(cfg.Output.Formats)
	if len(unknown) > 0 {
		t.Fatalf("Unknown formats: %v", unknown)
	}

	var paths []string
	for _, exp := range exporters {
		path, err := exp.Export(result, cfg)
		if err != nil {
			t.Errorf("%s export failed: %v", exp.Format(), err)
			continue
		}
		paths = append(paths, path)
	}
	if err := metrics.WriteTextfile(cfg.Output.MetricsFile, result, time.Now()); err != nil {
		t.Errorf("Metrics failed: %v", err)
	}

	// 5. Verify
	for _, ext := range []string{"xlsx", "csv", "html", "docx", "json"} {
		path := filepath.Join(outputDir, "2026-02-06_09-30-00-e2e_report."+ext)
		info, err := os.Stat(path)
		if err != nil {
			t.Errorf("Expected output file missing: %s", path)
		} else if info.Size() == 0 {
			t.Errorf("Output file is empty: %s", path)
		}
	}
	if len(paths) != 5 {
		t.Errorf("Expected 5 written paths, got %v", paths)
	}

	verifyWorkbook(t, filepath.Join(outputDir, "2026-02-06_09-30-00-e2e_report.xlsx"), rule)
}

func verifyWorkbook(t *testing.T, path string, rule *filter.Rule) {
	t.Helper()

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("Failed to open workbook: %v", err)
	}
	defer f.Close()

	raw, err := f.GetRows("intf_raw_data")
	if err != nil {
		t.Fatalf("Failed to read raw sheet: %v", err)
	}
	if len(raw) != 7 {
		t.Errorf("Raw sheet has %d rows, expected header and 6 records", len(raw))
	}
	for i, row := range raw[1:] {
		if rule.Excludes(row[2]) {
			t.Errorf("Raw row %d holds excluded interface %s", i+2, row[2])
		}
	}

	rows, err := f.GetRows("report")
	if err != nil {
		t.Fatalf("Failed to read report sheet: %v", err)
	}

	found := map[string]bool{}
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		found[row[0]] = true
		if row[0] == string(model.CategoryUpDown) && (len(row) < 3 || row[2] != "16.67") {
			t.Errorf("l1 up & l2 down line = %v, expected 16.67%%", row)
		}
	}
	for _, key := range []string{"core-1", "edge-2", "Total", "excluded interfaces"} {
		if !found[key] {
			t.Errorf("Report sheet has no %q line", key)
		}
	}
}
