package common

import (
	"testing"

	"intf-report/internal/model"
)

func TestSortDevices(t *testing.T) {
	devices := []model.DeviceSummary{
		{Hostname: "edge-2", Utilisation: 40},
		{Hostname: "core-1", Utilisation: 90},
		{Hostname: "access-3", Utilisation: 40},
	}

	tests := []struct {
		by       string
		expected []string
	}{
		{SortNone, []string{"edge-2", "core-1", "access-3"}},
		{SortHostname, []string{"access-3", "core-1", "edge-2"}},
		{SortUtilisation, []string{"core-1", "access-3", "edge-2"}},
	}

	for _, tt := range tests {
		sorted := SortDevices(devices, tt.by)
		for i, name := range tt.expected {
			if sorted[i].Hostname != name {
				t.Errorf("SortDevices(%q)[%d] = %s, expected %s", tt.by, i, sorted[i].Hostname, name)
			}
		}
	}

	if devices[0].Hostname != "edge-2" {
		t.Error("SortDevices modified its input")
	}
}

func TestFormatCell(t *testing.T) {
	tests := []struct {
		in       interface{}
		expected string
	}{
		{nil, ""},
		{"Gi0/1", "Gi0/1"},
		{12, "12"},
		{66.67, "66.67"},
		{1500.0, "1500"},
		{true, "true"},
	}

	for _, tt := range tests {
		if got := FormatCell(tt.in); got != tt.expected {
			t.Errorf("FormatCell(%v) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}

func TestDeviceRowMatchesHeaders(t *testing.T) {
	row := DeviceRow(model.DeviceSummary{Hostname: "sw1"})
	if len(row) != len(DeviceHeaders) {
		t.Errorf("DeviceRow has %d cells for %d headers", len(row), len(DeviceHeaders))
	}
	if len(model.InterfaceRecord{}.Values()) != len(model.RecordColumns) {
		t.Error("InterfaceRecord.Values does not match RecordColumns")
	}
}
