package filter

import (
	"fmt"
	"regexp"

	"intf-report/internal/model"
)

// DefaultExcludePattern matches logical interfaces (aggregates, loopbacks,
// tunnels, VLAN interfaces, ...) and sub-interfaces, which are not physical
// ports and must not count towards port capacity.
const DefaultExcludePattern = `^(ae|bond|dock|ifb|lo|lxc|mgm|npu\d+_vl|oob|po|ssl|tep|tu|ucse|unb|veth|virtu|vl|vxl|wan|\/Common\/)|\.\d+`

// Rule decides whether an interface is left out of the report, based on its name.
// A Rule is immutable once compiled and safe to reuse.
type Rule struct {
	pattern string
	re      *regexp.Regexp
}

// Compile builds a Rule from a regular expression.
// Matching is case-insensitive unless caseSensitive is set.
// An empty pattern yields a Rule that excludes nothing.
func Compile(pattern string, caseSensitive bool) (*Rule, error) {
	r := &Rule{pattern: pattern}
	if pattern == "" {
		return r, nil
	}

	expr := pattern
	if !caseSensitive {
		expr = "(?i)" + pattern
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid exclusion pattern %q: %v", model.ErrConfiguration, pattern, err)
	}
	r.re = re

	return r, nil
}

// MustCompile is like Compile but panics on an invalid pattern
func MustCompile(pattern string, caseSensitive bool) *Rule {
	r, err := Compile(pattern, caseSensitive)
	if err != nil {
		panic(err)
	}
	return r
}

// Pattern returns the source pattern of the rule
func (r *Rule) Pattern() string {
	if r == nil {
		return ""
	}
	return r.pattern
}

// Excludes reports whether an interface name matches the rule
func (r *Rule) Excludes(name string) bool {
	if r == nil || r.re == nil {
		return false
	}
	return r.re.MatchString(name)
}

// Partition splits records into kept and excluded, preserving input order.
// Every record lands in exactly one of the two slices.
func (r *Rule) Partition(records []model.InterfaceRecord) (kept, excluded []model.InterfaceRecord) {
	kept = make([]model.InterfaceRecord, 0, len(records))
	excluded = make([]model.InterfaceRecord, 0)

	for _, rec := range records {
		if r.Excludes(rec.IntName) {
			excluded = append(excluded, rec)
			continue
		}
		kept = append(kept, rec)
	}

	return kept, excluded
}
