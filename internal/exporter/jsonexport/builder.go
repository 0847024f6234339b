package jsonexport

import (
	"encoding/json"
	"os"
	"time"

	"intf-report/internal/config"
	"intf-report/internal/exporter/common"
	"intf-report/internal/model"
)

// Document is the root object of the JSON report
type Document struct {
	GeneratedAt string                  `json:"generated_at"`
	Pattern     string                  `json:"pattern"`
	Excluded    int                     `json:"excluded"`
	Summary     Summary                 `json:"summary"`
	Devices     []model.DeviceSummary   `json:"devices"`
	Raw         []model.InterfaceRecord `json:"raw"`
}

// Summary is the fleet summary without the device list
type Summary struct {
	Total       int                  `json:"total"`
	Categories  []model.CategoryStat `json:"categories"`
	AdminDown   int                  `json:"adminDown"`
	ErrDisabled int                  `json:"errDisabled"`
}

// JSONExporter writes the whole report, raw kept records included, as one JSON document
type JSONExporter struct {
	// Stateless
}

func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Format returns the canonical format name
func (b *JSONExporter) Format() string {
	return "json"
}

func (b *JSONExporter) Export(result *model.ReportResult, cfg *config.Config) (string, error) {
	doc := Document{
		GeneratedAt: generatedAt(cfg),
		Pattern:     result.Pattern,
		Excluded:    result.Excluded,
		Summary: Summary{
			Total:       result.Summary.Total,
			Categories:  result.Summary.Categories,
			AdminDown:   result.Summary.AdminDown,
			ErrDisabled: result.Summary.ErrDisabled,
		},
		Devices: common.SortDevices(result.Summary.Devices, cfg.Report.SortBy),
		Raw:     result.Raw,
	}

	// Empty lists stay lists
	if doc.Summary.Categories == nil {
		doc.Summary.Categories = []model.CategoryStat{}
	}
	if doc.Raw == nil {
		doc.Raw = []model.InterfaceRecord{}
	}

	outputFile := cfg.GetOutputPath("json")
	file, err := os.Create(outputFile)
	if err != nil {
		return "", err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return "", err
	}
	return outputFile, nil
}

// generatedAt returns the run timestamp in RFC 3339
func generatedAt(cfg *config.Config) string {
	t, err := time.ParseInLocation(config.TimestampLayout, cfg.Output.Timestamp, time.Local)
	if err != nil {
		t = time.Now()
	}
	return t.Format(time.RFC3339)
}
