package exporter

import (
	"encoding/csv"
	"fmt"
	"os"

	"intf-report/internal/config"
	"intf-report/internal/exporter/common"
	"intf-report/internal/model"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// CSVExporter writes the per-device table as a CSV file
type CSVExporter struct{}

// NewCSVExporter creates a new CSVExporter
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Format returns the canonical format name
func (e *CSVExporter) Format() string {
	return "csv"
}

// Export writes one line per device, encoded with output.csv_encoding
func (e *CSVExporter) Export(result *model.ReportResult, cfg *config.Config) (string, error) {
	name := cfg.Output.CSVEncoding
	if name == "" {
		name = "utf-8"
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return "", fmt.Errorf("%w: unknown csv encoding %q", model.ErrConfiguration, name)
	}

	outputFile := cfg.GetOutputPath("csv")
	file, err := os.Create(outputFile)
	if err != nil {
		return "", fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	// Characters missing from the target charset are replaced
	encoded := transform.NewWriter(file, encoding.ReplaceUnsupported(enc.NewEncoder()))
	w := csv.NewWriter(encoded)

	if err := w.Write(common.DeviceHeaders); err != nil {
		return "", err
	}
	for _, d := range common.SortDevices(result.Summary.Devices, cfg.Report.SortBy) {
		if err := w.Write(common.FormatRow(common.DeviceRow(d))); err != nil {
			return "", fmt.Errorf("failed to write device %s: %w", d.Hostname, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to write CSV file: %w", err)
	}
	if err := encoded.Close(); err != nil {
		return "", fmt.Errorf("failed to flush CSV file: %w", err)
	}

	return outputFile, nil
}
