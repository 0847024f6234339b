package exporter

import (
	"strings"

	"intf-report/internal/exporter/html"
	"intf-report/internal/exporter/jsonexport"
	"intf-report/internal/exporter/word"
)

// GetExporters returns the Exporters for the requested formats, in request
// order and without duplicates. Unrecognised names are returned separately.
func GetExporters(formats []string) ([]Exporter, []string) {
	exporters := []Exporter{}
	var unknown []string
	seen := make(map[string]bool)

	for _, fmtStr := range formats {
		fmtStr = strings.ToLower(strings.TrimSpace(fmtStr))
		if fmtStr == "" {
			continue
		}

		var exp Exporter
		switch fmtStr {
		case "excel", "xlsx":
			exp = NewExcelExporter()
		case "csv":
			exp = NewCSVExporter()
		case "html":
			exp = html.NewHTMLExporter()
		case "word", "docx":
			exp = word.NewWordExporter()
		case "json":
			exp = jsonexport.NewJSONExporter()
		default:
			unknown = append(unknown, fmtStr)
			continue
		}

		if seen[exp.Format()] {
			continue
		}
		seen[exp.Format()] = true
		exporters = append(exporters, exp)
	}

	return exporters, unknown
}
