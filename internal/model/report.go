package model

// CategoryStat is one line of the fleet summary
type CategoryStat struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
	Percent  float64  `json:"percent"`
}

// DeviceSummary holds the per-device interface counters for the report sheet
type DeviceSummary struct {
	Hostname string `json:"hostname"`
	SN       string `json:"sn"`
	SiteName string `json:"siteName"`
	Total    int    `json:"total"`

	UpUp     int `json:"l1l2Up"`
	DownDown int `json:"l1l2Down"`
	UpDown   int `json:"l1UpL2Down"`
	Unknown  int `json:"l1l2Unknown"`

	AdminDown   int `json:"adminDown"`
	ErrDisabled int `json:"errDisabled"`

	Utilisation  float64 `json:"portUtilisation"`  // percent of ports in use
	Availability float64 `json:"portAvailability"` // percent of ports l1&l2 down
}

// Count returns the number of interfaces of the device in the given category
func (d DeviceSummary) Count(c Category) int {
	switch c {
	case CategoryUpUp:
		return d.UpUp
	case CategoryDownDown:
		return d.DownDown
	case CategoryUpDown:
		return d.UpDown
	case CategoryUnknown:
		return d.Unknown
	}
	return 0
}

// InUse returns the number of ports that are not l1&l2 down
func (d DeviceSummary) InUse() int {
	return d.UpUp + d.UpDown + d.Unknown
}

// Summary is the aggregate view computed over the kept interfaces only
type Summary struct {
	Total       int             `json:"total"`
	Categories  []CategoryStat  `json:"categories"`
	AdminDown   int             `json:"adminDown"`
	ErrDisabled int             `json:"errDisabled"`
	Devices     []DeviceSummary `json:"devices"`
}

// Stat returns the summary line for a category
func (s Summary) Stat(c Category) CategoryStat {
	for _, st := range s.Categories {
		if st.Category == c {
			return st
		}
	}
	return CategoryStat{Category: c}
}

// ReportResult is what one report run produces: the summary and the raw
// kept records it was computed from. Excluded records appear in neither.
type ReportResult struct {
	Pattern  string            `json:"pattern"`
	Excluded int               `json:"excluded"`
	Summary  Summary           `json:"summary"`
	Raw      []InterfaceRecord `json:"raw"`
}
