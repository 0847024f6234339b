package model

import "fmt"

// Category represents the link state bucket of an interface
type Category string

const (
	CategoryUpUp     Category = "l1&l2 up"
	CategoryDownDown Category = "l1&l2 down"
	CategoryUpDown   Category = "l1 up & l2 down"
	CategoryUnknown  Category = "l1 and l2 unknown"
)

// Categories lists every link state category in report column order.
// Together they partition any set of interfaces.
var Categories = []Category{
	CategoryUpUp,
	CategoryDownDown,
	CategoryUpDown,
	CategoryUnknown,
}

// Link state values reported by the platform for l1 and l2
const (
	StateUp   = "up"
	StateDown = "down"
)

// RecordColumns is the column set requested from the Inventory > Interfaces table.
// It is also the header of the raw data sheet, in the same order as InterfaceRecord.Values.
var RecordColumns = []string{
	"hostname",
	"sn",
	"intName",
	"siteName",
	"l1",
	"l2",
	"reason",
	"dscr",
	"mac",
	"duplex",
	"speed",
	"bandwidth",
	"speedValue",
	"speedType",
	"media",
	"errDisabled",
	"mtu",
	"primaryIp",
	"hasTransceiver",
	"transceiverType",
}

// InterfaceRecord is one row of the Inventory > Interfaces table.
// Text columns that are null upstream decode to "", numeric and boolean
// columns stay nil.
type InterfaceRecord struct {
	Hostname        string   `json:"hostname"`
	SN              string   `json:"sn"`
	IntName         string   `json:"intName"`
	SiteName        string   `json:"siteName"`
	L1              string   `json:"l1"`
	L2              string   `json:"l2"`
	Reason          string   `json:"reason"`
	Description     string   `json:"dscr"`
	MAC             string   `json:"mac"`
	Duplex          string   `json:"duplex"`
	Speed           string   `json:"speed"`
	Bandwidth       *float64 `json:"bandwidth"`
	SpeedValue      *float64 `json:"speedValue"`
	SpeedType       string   `json:"speedType"`
	Media           string   `json:"media"`
	ErrDisabled     string   `json:"errDisabled"`
	MTU             *float64 `json:"mtu"`
	PrimaryIP       string   `json:"primaryIp"`
	HasTransceiver  *bool    `json:"hasTransceiver"`
	TransceiverType string   `json:"transceiverType"`
}

// Values returns the record cells in RecordColumns order.
// Absent numeric and boolean cells are returned as nil.
func (r InterfaceRecord) Values() []interface{} {
	return []interface{}{
		r.Hostname,
		r.SN,
		r.IntName,
		r.SiteName,
		r.L1,
		r.L2,
		r.Reason,
		r.Description,
		r.MAC,
		r.Duplex,
		r.Speed,
		floatOrNil(r.Bandwidth),
		floatOrNil(r.SpeedValue),
		r.SpeedType,
		r.Media,
		r.ErrDisabled,
		floatOrNil(r.MTU),
		r.PrimaryIP,
		boolOrNil(r.HasTransceiver),
		r.TransceiverType,
	}
}

// String returns a human-readable representation of the record
func (r InterfaceRecord) String() string {
	return fmt.Sprintf("%s/%s [%s/%s]", r.Hostname, r.IntName, r.L1, r.L2)
}

func floatOrNil(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func boolOrNil(v *bool) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
