package exporter

import (
	"reflect"
	"testing"
)

func TestGetExporters(t *testing.T) {
	tests := []struct {
		name     string
		formats  []string
		expected []string
		unknown  []string
	}{
		{"default", []string{"xlsx"}, []string{"xlsx"}, nil},
		{"aliases", []string{"excel", "word"}, []string{"xlsx", "docx"}, nil},
		{"all", []string{"xlsx", "csv", "html", "docx", "json"}, []string{"xlsx", "csv", "html", "docx", "json"}, nil},
		{"duplicates", []string{"xlsx", "EXCEL", " xlsx "}, []string{"xlsx"}, nil},
		{"unknown", []string{"csv", "pdf", ""}, []string{"csv"}, []string{"pdf"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exporters, unknown := GetExporters(tt.formats)

			got := make([]string, len(exporters))
			for i, e := range exporters {
				got[i] = e.Format()
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("GetExporters(%v) = %v, expected %v", tt.formats, got, tt.expected)
			}
			if !reflect.DeepEqual(unknown, tt.unknown) {
				t.Errorf("GetExporters(%v) unknown = %v, expected %v", tt.formats, unknown, tt.unknown)
			}
		})
	}
}
