// Package region defines the closed set of Australian regions a playlist can
// be selected for.
package region

import (
	"errors"
	"slices"
)

// ErrUnknownRegion is returned when a value is not one of the known regions.
var ErrUnknownRegion = errors.New("unknown region")

// Region identifies which remote channel playlist is used.
type Region string

// Known regions, in the order they are offered to users.
const (
	Sydney    Region = "Sydney"
	Melbourne Region = "Melbourne"
	Brisbane  Region = "Brisbane"
	Adelaide  Region = "Adelaide"
	Perth     Region = "Perth"
	Canberra  Region = "Canberra"
	Hobart    Region = "Hobart"
	Darwin    Region = "Darwin"
)

// Default is used whenever a caller does not select a region.
const Default = Sydney

var all = []Region{Sydney, Melbourne, Brisbane, Adelaide, Perth, Canberra, Hobart, Darwin}

// All returns every known region in display order.
func All() []Region {
	return slices.Clone(all)
}

// Names returns the string form of every known region in display order.
func Names() []string {
	names := make([]string, len(all))
	for i, r := range all {
		names[i] = string(r)
	}
	return names
}

// Parse returns the Region matching s exactly.
// Matching is case-sensitive, the same way regions appear in playlist URLs.
func Parse(s string) (Region, error) {
	r := Region(s)
	if !r.Valid() {
		return "", ErrUnknownRegion
	}
	return r, nil
}

// OrDefault returns the Region matching s, or Default when s is empty or unknown.
func OrDefault(s string) Region {
	r, err := Parse(s)
	if err != nil {
		return Default
	}
	return r
}

// Valid reports whether r is one of the known regions.
func (r Region) Valid() bool {
	return slices.Contains(all, r)
}

func (r Region) String() string {
	return string(r)
}
