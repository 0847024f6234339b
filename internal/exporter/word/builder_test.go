package word

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"intf-report/internal/config"
	"intf-report/internal/model"

	"github.com/nguyenthenguyen/docx"
)

func TestWordExport(t *testing.T) {
	cfg := &config.Config{Output: config.OutputConfig{Dir: t.TempDir(), FileName: "report"}}
	cfg.Stamp(time.Date(2026, 2, 6, 9, 30, 0, 0, time.UTC))

	result := &model.ReportResult{
		Pattern:  "^vlan",
		Excluded: 4,
		Summary: model.Summary{
			Total: 3,
			Categories: []model.CategoryStat{
				{Category: model.CategoryUpUp, Count: 2, Percent: 66.67},
				{Category: model.CategoryDownDown, Count: 1, Percent: 33.33},
			},
			Devices: []model.DeviceSummary{
				{Hostname: "core-1", SiteName: "LAB", Total: 3, UpUp: 2, DownDown: 1, Utilisation: 66.67, Availability: 33.33},
			},
		},
	}

	outputFile, err := NewWordExporter().Export(result, cfg)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if !strings.HasSuffix(outputFile, "2026-02-06_09-30-00-report.docx") {
		t.Errorf("Unexpected output path: %s", outputFile)
	}

	r, err := docx.ReadDocxFile(outputFile)
	if err != nil {
		t.Fatalf("Failed to reopen document: %v", err)
	}
	defer r.Close()

	content := r.Editable().GetContent()
	if strings.Contains(content, "{{") {
		t.Error("Document still contains placeholders")
	}

	expected := []string{"2026-02-06 09:30:00", "^vlan", "Excluded interfaces: 4", "core-1", "66.67"}
	for _, s := range expected {
		if !strings.Contains(content, s) {
			t.Errorf("Document does not contain %q", s)
		}
	}
}

func TestBuildContentEmpty(t *testing.T) {
	content := buildContent(&model.ReportResult{}, "")
	if !strings.Contains(content, "No interfaces left after exclusion.") {
		t.Errorf("Unexpected content for an empty report:\n%s", content)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{"Short", "short", 10, "short"},
		{"Long ASCII", "a-very-long-hostname", 10, "a-very-..."},
		{"Multibyte fits", "zürich-ü", 8, "zürich-ü"},
		{"Multibyte cut", "zürich-büro-1", 8, "züric..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.input, tt.maxLen)
			if got != tt.expected {
				t.Errorf("truncate(%q, %d) = %q, expected %q", tt.input, tt.maxLen, got, tt.expected)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncate(%q, %d) produced invalid UTF-8", tt.input, tt.maxLen)
			}
		})
	}
}
