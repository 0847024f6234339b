package common

import (
	"sort"

	"intf-report/internal/model"
)

// Device orderings accepted by SortDevices
const (
	SortNone        = ""
	SortHostname    = "hostname"
	SortUtilisation = "utilisation"
)

// SortDevices returns the devices in the requested order without touching the input.
//
// Orders:
//   - "": as computed (first appearance in the fetched data)
//   - "hostname": alphabetical
//   - "utilisation": busiest first, ties broken by hostname
func SortDevices(devices []model.DeviceSummary, by string) []model.DeviceSummary {
	sorted := make([]model.DeviceSummary, len(devices))
	copy(sorted, devices)

	switch by {
	case SortHostname:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Hostname < sorted[j].Hostname
		})
	case SortUtilisation:
		sort.SliceStable(sorted, func(i, j int) bool {
			if sorted[i].Utilisation != sorted[j].Utilisation {
				return sorted[i].Utilisation > sorted[j].Utilisation
			}
			return sorted[i].Hostname < sorted[j].Hostname
		})
	}

	return sorted
}
