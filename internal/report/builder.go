package report

import (
	"fmt"
	"math"
	"strings"

	"intf-report/internal/filter"
	"intf-report/internal/model"
)

// DefaultAdminDownReasons lists the reasons for which an interface counts as admin down
var DefaultAdminDownReasons = []string{
	"admin",
	"admin-down",
	"parent-admin-down",
	"disable",
	"disabled",
}

// Options tunes how the report is computed
type Options struct {
	// AdminDownReasons are matched exactly against the record reason
	AdminDownReasons []string
	// RequireKept fails the build with ErrComputation when no record survives the rule
	RequireKept bool
}

// DefaultOptions returns the options used when nothing is configured
func DefaultOptions() Options {
	return Options{AdminDownReasons: DefaultAdminDownReasons}
}

// Build partitions records with the rule, computes the summary over the kept
// records and returns both views. The input slice is not modified.
func Build(records []model.InterfaceRecord, rule *filter.Rule, opts Options) (*model.ReportResult, error) {
	if err := validateRecords(records); err != nil {
		return nil, err
	}

	kept, excluded := rule.Partition(records)
	if opts.RequireKept && len(kept) == 0 {
		return nil, fmt.Errorf("%w: no interface left after exclusion (%d excluded)", model.ErrComputation, len(excluded))
	}

	return &model.ReportResult{
		Pattern:  rule.Pattern(),
		Excluded: len(excluded),
		Summary:  Summarize(kept, opts),
		Raw:      kept,
	}, nil
}

// BuildPattern compiles the exclusion pattern and builds the report
func BuildPattern(records []model.InterfaceRecord, pattern string, caseSensitive bool, opts Options) (*model.ReportResult, error) {
	rule, err := filter.Compile(pattern, caseSensitive)
	if err != nil {
		return nil, err
	}
	return Build(records, rule, opts)
}

// Summarize computes the fleet summary and the per-device rows of a population.
// Devices are listed in the order they first appear.
func Summarize(records []model.InterfaceRecord, opts Options) model.Summary {
	adminDown := reasonSet(opts.AdminDownReasons)

	counts := make(map[model.Category]int, len(model.Categories))
	devices := make([]model.DeviceSummary, 0)
	index := make(map[string]int)

	s := model.Summary{Total: len(records)}

	for _, rec := range records {
		i, ok := index[rec.Hostname]
		if !ok {
			i = len(devices)
			index[rec.Hostname] = i
			devices = append(devices, model.DeviceSummary{
				Hostname: rec.Hostname,
				SN:       rec.SN,
				SiteName: rec.SiteName,
			})
		}
		d := &devices[i]
		d.Total++

		category := Classify(rec)
		counts[category]++
		switch category {
		case model.CategoryUpUp:
			d.UpUp++
		case model.CategoryDownDown:
			d.DownDown++
		case model.CategoryUpDown:
			d.UpDown++
		default:
			d.Unknown++
		}

		if adminDown[rec.Reason] {
			d.AdminDown++
			s.AdminDown++
		}
		if IsErrDisabled(rec) {
			d.ErrDisabled++
			s.ErrDisabled++
		}
	}

	// admin-down and err-disabled interfaces are already l1&l2 down
	for i := range devices {
		d := &devices[i]
		d.Utilisation = Percent(d.InUse(), d.Total)
		d.Availability = Percent(d.DownDown, d.Total)
	}

	s.Categories = make([]model.CategoryStat, 0, len(model.Categories))
	for _, c := range model.Categories {
		s.Categories = append(s.Categories, model.CategoryStat{
			Category: c,
			Count:    counts[c],
			Percent:  Percent(counts[c], s.Total),
		})
	}
	s.Devices = devices

	return s
}

// Classify returns the link state category of a record.
// Anything that is not up/up, down/down or up/down is unknown.
func Classify(rec model.InterfaceRecord) model.Category {
	l1 := strings.ToLower(strings.TrimSpace(rec.L1))
	l2 := strings.ToLower(strings.TrimSpace(rec.L2))

	switch {
	case l1 == model.StateUp && l2 == model.StateUp:
		return model.CategoryUpUp
	case l1 == model.StateDown && l2 == model.StateDown:
		return model.CategoryDownDown
	case l1 == model.StateUp && l2 == model.StateDown:
		return model.CategoryUpDown
	default:
		return model.CategoryUnknown
	}
}

// IsErrDisabled reports whether the down reason of a record is an err-disable
func IsErrDisabled(rec model.InterfaceRecord) bool {
	return strings.Contains(rec.Reason, "err")
}

// Percent returns count/total as a percentage rounded to two decimals.
// A zero total yields 0.
func Percent(count, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(count)/float64(total)*10000) / 100
}

// RecordError reports an upstream record that lacks a required field
type RecordError struct {
	Index  int
	Field  string
	Record model.InterfaceRecord
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%v: record %d (%s) has no %s", model.ErrData, e.Index, e.Record, e.Field)
}

func (e *RecordError) Unwrap() error {
	return model.ErrData
}

func validateRecords(records []model.InterfaceRecord) error {
	for i, rec := range records {
		if strings.TrimSpace(rec.Hostname) == "" {
			return &RecordError{Index: i, Field: "hostname", Record: rec}
		}
		if strings.TrimSpace(rec.IntName) == "" {
			return &RecordError{Index: i, Field: "intName", Record: rec}
		}
	}
	return nil
}

func reasonSet(reasons []string) map[string]bool {
	set := make(map[string]bool, len(reasons))
	for _, r := range reasons {
		set[r] = true
	}
	return set
}
