package exporter

import (
	"intf-report/internal/config"
	"intf-report/internal/model"
)

// Exporter is the unified interface for all output formats
type Exporter interface {
	// Export writes the report and returns the path of the written file
	Export(result *model.ReportResult, cfg *config.Config) (string, error)

	// Format returns the canonical format name (xlsx, csv, html, docx, json)
	Format() string
}
