package word

import (
	"embed"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"intf-report/internal/config"
	"intf-report/internal/exporter/common"
	"intf-report/internal/model"

	"github.com/nguyenthenguyen/docx"
)

//go:embed template.docx
var templateFS embed.FS

type WordExporter struct{}

func NewWordExporter() *WordExporter {
	return &WordExporter{}
}

// Format returns the canonical format name
func (e *WordExporter) Format() string {
	return "docx"
}

func (e *WordExporter) Export(result *model.ReportResult, cfg *config.Config) (string, error) {
	// 1. Extract embedded template to temp file
	templateBytes, err := templateFS.ReadFile("template.docx")
	if err != nil {
		return "", fmt.Errorf("failed to read embedded template: %w", err)
	}

	tmpFile, err := os.CreateTemp("", "intf-report-template-*.docx")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(templateBytes); err != nil {
		tmpFile.Close()
		return "", fmt.Errorf("failed to write template to temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	r, err := docx.ReadDocxFile(tmpFile.Name())
	if err != nil {
		return "", fmt.Errorf("failed to read docx from temp file: %w", err)
	}
	defer r.Close()

	doc := r.Editable()

	// 2. Replace Summary Placeholders
	pattern := result.Pattern
	if pattern == "" {
		pattern = "(none)"
	}
	placeholders := []struct {
		Key   string
		Value string
	}{
		{"{{Date}}", reportDate(cfg)},
		{"{{Pattern}}", pattern},
		{"{{TotalInterfaces}}", strconv.Itoa(result.Summary.Total)},
		{"{{Excluded}}", strconv.Itoa(result.Excluded)},
		{"{{Devices}}", strconv.Itoa(len(result.Summary.Devices))},
	}
	for _, p := range placeholders {
		if err := doc.Replace(p.Key, p.Value, -1); err != nil {
			return "", fmt.Errorf("failed to fill %s: %w", p.Key, err)
		}
	}

	// 3. Inject content (the library handles XML encoding and line breaks)
	if err := doc.Replace("{{Content}}", buildContent(result, cfg.Report.SortBy), -1); err != nil {
		return "", fmt.Errorf("failed to fill content: %w", err)
	}

	outFile := cfg.GetOutputPath("docx")
	if err := doc.WriteToFile(outFile); err != nil {
		return "", fmt.Errorf("failed to write Word document: %w", err)
	}

	return outFile, nil
}

func reportDate(cfg *config.Config) string {
	if t, err := time.Parse(config.TimestampLayout, cfg.Output.Timestamp); err == nil {
		return t.Format("2006-01-02 15:04:05")
	}
	return time.Now().Format("2006-01-02 15:04:05")
}

// buildContent renders the summary and device tables as fixed width text
func buildContent(result *model.ReportResult, sortBy string) string {
	var sb strings.Builder

	sb.WriteString("SUMMARY\n\n")
	sb.WriteString(fmt.Sprintf("%-22s %8s %10s\n", "Category", "Count", "Percent"))
	sb.WriteString(strings.Repeat("-", 42) + "\n")
	for _, st := range result.Summary.Categories {
		sb.WriteString(fmt.Sprintf("%-22s %8d %9.2f%%\n", st.Category, st.Count, st.Percent))
	}
	sb.WriteString(strings.Repeat("-", 42) + "\n")
	sb.WriteString(fmt.Sprintf("%-22s %8d\n", "Total", result.Summary.Total))
	sb.WriteString(fmt.Sprintf("%-22s %8d\n", "admin-down", result.Summary.AdminDown))
	sb.WriteString(fmt.Sprintf("%-22s %8d\n", "err-disabled", result.Summary.ErrDisabled))
	sb.WriteString("\n" + strings.Repeat("=", 80) + "\n\n")

	sb.WriteString("INTERFACES PER DEVICE\n\n")
	if len(result.Summary.Devices) == 0 {
		sb.WriteString("No interfaces left after exclusion.\n")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("%-25s %-12s %6s %6s %6s %6s %6s %8s %8s\n",
		"Hostname", "Site", "Total", "Up", "Down", "UpDn", "Unkn", "Util%", "Avail%"))
	sb.WriteString(strings.Repeat("-", 100) + "\n")

	for _, d := range common.SortDevices(result.Summary.Devices, sortBy) {
		sb.WriteString(fmt.Sprintf("%-25s %-12s %6d %6d %6d %6d %6d %8.2f %8.2f\n",
			truncate(d.Hostname, 25),
			truncate(d.SiteName, 12),
			d.Total,
			d.UpUp,
			d.DownDown,
			d.UpDown,
			d.Unknown,
			d.Utilisation,
			d.Availability))
	}

	return sb.String()
}

// truncate cuts s to at most maxLen runes
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
