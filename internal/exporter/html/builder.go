package html

import (
	"html/template"
	"os"
	"strconv"
	"time"

	"intf-report/internal/config"
	"intf-report/internal/exporter/common"
	"intf-report/internal/model"
)

type HTMLExporter struct{}

func NewHTMLExporter() *HTMLExporter {
	return &HTMLExporter{}
}

// Format returns the canonical format name
func (e *HTMLExporter) Format() string {
	return "html"
}

// Data structures for the report template
type ReportData struct {
	GeneratedAt string
	Pattern     string
	Excluded    int
	Total       int
	AdminDown   int
	ErrDisabled int
	Categories  []model.CategoryStat
	Headers     []string
	Devices     []model.DeviceSummary
}

func (e *HTMLExporter) Export(result *model.ReportResult, cfg *config.Config) (string, error) {
	data := ReportData{
		GeneratedAt: generatedAt(cfg),
		Pattern:     result.Pattern,
		Excluded:    result.Excluded,
		Total:       result.Summary.Total,
		AdminDown:   result.Summary.AdminDown,
		ErrDisabled: result.Summary.ErrDisabled,
		Categories:  result.Summary.Categories,
		Headers:     common.DeviceHeaders,
		Devices:     common.SortDevices(result.Summary.Devices, cfg.Report.SortBy),
	}

	tmpl, err := template.New("intf-report").Funcs(template.FuncMap{
		"pct":        formatPercent,
		"usageClass": usageClass,
	}).Parse(ReportTemplate)
	if err != nil {
		return "", err
	}

	// Create Output
	outputFile := cfg.GetOutputPath("html")
	f, err := os.Create(outputFile)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return "", err
	}
	return outputFile, nil
}

// generatedAt renders the run timestamp, falling back to now when the config was never stamped
func generatedAt(cfg *config.Config) string {
	if cfg.Output.Timestamp != "" {
		if t, err := time.Parse(config.TimestampLayout, cfg.Output.Timestamp); err == nil {
			return t.Format("2006-01-02 15:04:05")
		}
	}
	return time.Now().Format("2006-01-02 15:04:05")
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// usageClass returns the CSS class of a utilisation cell
func usageClass(v float64) string {
	switch {
	case v >= 90:
		return "usage-high"
	case v >= 50:
		return "usage-mid"
	default:
		return "usage-low"
	}
}
