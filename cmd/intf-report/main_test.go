package main

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"intf-report/internal/config"
	"intf-report/internal/filter"
	"intf-report/internal/ipfabric/ipfabrictest"
)

func TestRunReportUsesGenerationTime(t *testing.T) {
	server := ipfabrictest.NewServer("cli-token", ipfabrictest.SampleRecords())
	defer server.Close()

	quiet = true
	defer func() { quiet = false }()

	outputDir := t.TempDir()
	metricsFile := filepath.Join(outputDir, "intf_report.prom")
	cfg := &config.Config{
		IPFabric: config.IPFabricConfig{URL: server.URL, Token: "cli-token", PageSize: 4},
		Report:   config.ReportConfig{ExcludePattern: filter.DefaultExcludePattern},
		Output: config.OutputConfig{
			Dir:         outputDir,
			FileName:    "cli_report",
			Formats:     []string{"json"},
			MetricsFile: metricsFile,
		},
	}
	generated := time.Date(2026, 2, 6, 9, 30, 0, 0, time.UTC)
	cfg.Stamp(generated)

	paths, err := runReport(context.Background(), cfg, generated)
	if err != nil {
		t.Fatalf("runReport failed: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("Expected report and metrics paths, got %v", paths)
	}

	// One count request then three pages of four
	if got := server.Requests(); got != 4 {
		t.Errorf("Server saw %d requests, expected 4", got)
	}

	content, err := os.ReadFile(metricsFile)
	if err != nil {
		t.Fatalf("Failed to read metrics file: %v", err)
	}

	const prefix = "intf_report_generated_timestamp_seconds "
	var found bool
	for _, line := range strings.Split(string(content), "\n") {
		if !strings.HasPrefix(line, prefix) {
			continue
		}
		found = true
		value, err := strconv.ParseFloat(strings.TrimPrefix(line, prefix), 64)
		if err != nil {
			t.Fatalf("Invalid timestamp sample %q: %v", line, err)
		}
		if int64(value) != generated.Unix() {
			t.Errorf("Timestamp = %v, expected %d", value, generated.Unix())
		}
	}
	if !found {
		t.Errorf("Metrics file has no generation timestamp:\n%s", content)
	}
}

func TestApplyFlagsCombinesFormats(t *testing.T) {
	csvOutput, xlsxOutput, formats = true, true, "json"
	defer func() { csvOutput, xlsxOutput, formats = false, false, "" }()

	cfg := &config.Config{Output: config.OutputConfig{Formats: []string{"html"}}}
	if err := applyFlags(cfg); err != nil {
		t.Fatalf("applyFlags failed: %v", err)
	}

	expected := []string{"xlsx", "csv", "json"}
	if strings.Join(cfg.Output.Formats, ",") != strings.Join(expected, ",") {
		t.Errorf("Formats = %v, expected %v", cfg.Output.Formats, expected)
	}
}
