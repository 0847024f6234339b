package common

import (
	"strconv"

	"intf-report/internal/model"
)

// DeviceHeaders is the header of the per-device table, shared by every tabular exporter
var DeviceHeaders = []string{
	"hostname",
	"sn",
	"siteName",
	"total",
	string(model.CategoryUpUp),
	string(model.CategoryDownDown),
	string(model.CategoryUpDown),
	string(model.CategoryUnknown),
	"admin-down",
	"err-disabled",
	"port utilisation (%)",
	"port availability (%)",
}

// SummaryHeaders is the header of the fleet summary table
var SummaryHeaders = []string{"Category", "Count", "Percentage (%)"}

// DeviceRow returns the cells of a device in DeviceHeaders order
func DeviceRow(d model.DeviceSummary) []interface{} {
	return []interface{}{
		d.Hostname,
		d.SN,
		d.SiteName,
		d.Total,
		d.UpUp,
		d.DownDown,
		d.UpDown,
		d.Unknown,
		d.AdminDown,
		d.ErrDisabled,
		d.Utilisation,
		d.Availability,
	}
}

// FormatCell renders a cell as text for the text-based exporters.
// nil renders as an empty string.
func FormatCell(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}

// FormatRow renders every cell of a row with FormatCell
func FormatRow(cells []interface{}) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = FormatCell(c)
	}
	return out
}
