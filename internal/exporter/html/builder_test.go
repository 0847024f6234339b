package html

import (
	"os"
	"strings"
	"testing"
	"time"

	"intf-report/internal/config"
	"intf-report/internal/model"
)

func testResult() *model.ReportResult {
	return &model.ReportResult{
		Pattern:  "^vlan",
		Excluded: 3,
		Summary: model.Summary{
			Total: 3,
			Categories: []model.CategoryStat{
				{Category: model.CategoryUpUp, Count: 2, Percent: 66.67},
				{Category: model.CategoryDownDown, Count: 1, Percent: 33.33},
				{Category: model.CategoryUpDown},
				{Category: model.CategoryUnknown},
			},
			ErrDisabled: 1,
			Devices: []model.DeviceSummary{
				{Hostname: "sw<1>", SN: "SN1", SiteName: "LAB", Total: 3, UpUp: 2, DownDown: 1, ErrDisabled: 1, Utilisation: 66.67, Availability: 33.33},
			},
		},
	}
}

func TestHTMLExport(t *testing.T) {
	cfg := &config.Config{Output: config.OutputConfig{Dir: t.TempDir(), FileName: "report"}}
	cfg.Stamp(time.Date(2026, 2, 6, 9, 30, 0, 0, time.UTC))

	outputFile, err := NewHTMLExporter().Export(testResult(), cfg)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if !strings.HasSuffix(outputFile, "2026-02-06_09-30-00-report.html") {
		t.Errorf("Unexpected output path: %s", outputFile)
	}

	content, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	html := string(content)

	expected := []string{
		"Generated on 2026-02-06 09:30:00",
		"l1&amp;l2 up",
		"66.67%",
		"33.33",
		"Exclusion pattern: ^vlan",
		`class="alert"`,
		"sw&lt;1&gt;",
		"port utilisation (%)",
	}
	for _, s := range expected {
		if !strings.Contains(html, s) {
			t.Errorf("HTML output does not contain %q", s)
		}
	}
	if strings.Contains(html, "sw<1>") {
		t.Error("Hostname was not escaped")
	}
}

func TestHTMLExportEmpty(t *testing.T) {
	cfg := &config.Config{Output: config.OutputConfig{Dir: t.TempDir(), FileName: "report"}}

	outputFile, err := NewHTMLExporter().Export(&model.ReportResult{}, cfg)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	content, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if !strings.Contains(string(content), "No interfaces left after exclusion.") {
		t.Error("Empty report does not say so")
	}
}

func TestUsageClass(t *testing.T) {
	tests := []struct {
		in       float64
		expected string
	}{
		{95, "usage-high"},
		{90, "usage-high"},
		{66.67, "usage-mid"},
		{10, "usage-low"},
	}
	for _, tt := range tests {
		if got := usageClass(tt.in); got != tt.expected {
			t.Errorf("usageClass(%v) = %s, expected %s", tt.in, got, tt.expected)
		}
	}
}
