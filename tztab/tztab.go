// Package tztab provides a static table of standard and daylight UTC offsets
// for named time zones.
//
// The table is generated from the IANA time zone database and distributed
// with this module so that zone identifiers can be validated and offsets
// resolved even when the host has no zoneinfo data available. It records the
// currently observed standard and daylight offsets only; transition history
// is the job of an authoritative database such as the one wrapped by the
// zonedb package.
package tztab

import "sort"

// Record holds the UTC offsets observed by a zone, in seconds east of UTC.
type Record struct {
	// StdOffsetSeconds is the offset observed outside daylight saving time.
	StdOffsetSeconds int
	// DstOffsetSeconds is the offset observed during daylight saving time.
	// It equals StdOffsetSeconds for zones that do not observe DST.
	DstOffsetSeconds int
}

// ObservesDST reports whether the zone switches between standard and
// daylight time.
func (r Record) ObservesDST() bool {
	return r.StdOffsetSeconds != r.DstOffsetSeconds
}

// Lookup returns the offset record for the given zone identifier.
// The second return value is false if the zone is not in the table.
func Lookup(zone string) (Record, bool) {
	r, ok := table[zone]
	return r, ok
}

// Zones returns the identifiers of all zones in the table, sorted.
func Zones() []string {
	zones := make([]string, 0, len(table))
	for z := range table {
		zones = append(zones, z)
	}
	sort.Strings(zones)
	return zones
}
