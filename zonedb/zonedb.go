// Package zonedb wraps an authoritative time zone database behind a small
// interface so that callers can resolve exact offsets and DST status when a
// full database is available and degrade to static tables when it is not.
//
// The [System] implementation is backed by the Go runtime's location
// database via [time.LoadLocation]. On hosts without zoneinfo data every
// lookup fails; callers are expected to treat such failures as a signal to
// fall back, not as errors to surface. Programs that want the database to
// always be available can import the embedded copy:
//
//	import _ "time/tzdata"
package zonedb

import "time"

// Provider resolves exact offsets and wall-clock instants for named zones.
//
// Implementations report failure through the error return; a failing
// Provider is a degraded mode, not a broken one. The zero instant and
// offset accompany every non-nil error.
type Provider interface {
	// OffsetAt returns the UTC offset in seconds and the DST status
	// observed by zone at the given instant in unix milliseconds.
	OffsetAt(zone string, unixMs int64) (offsetSeconds int, dst bool, err error)

	// InstantFor converts wall-clock fields in the given zone to an
	// instant in unix milliseconds. Month is 1-12.
	InstantFor(zone string, year, month, day, hour, minute, second int) (unixMs int64, err error)
}

// System is a Provider backed by the Go runtime's time zone database.
//
// Loaded locations and failed load attempts are both remembered, so a zone
// that could not be loaded once is not retried on every call. Use [Reset]
// to make System retry.
//
// System is not safe for concurrent use.
type System struct {
	locs map[string]*time.Location
	errs map[string]error
}

// NewSystem returns a System ready for use.
func NewSystem() *System {
	return &System{
		locs: make(map[string]*time.Location),
		errs: make(map[string]error),
	}
}

// Reset forgets all loaded locations and remembered failures, forcing the
// next lookup of each zone to consult the runtime database again.
func (s *System) Reset() {
	s.locs = make(map[string]*time.Location)
	s.errs = make(map[string]error)
}

// load returns the location for zone, consulting the runtime database at
// most once per zone between resets.
func (s *System) load(zone string) (*time.Location, error) {
	if loc, ok := s.locs[zone]; ok {
		return loc, nil
	}
	if err, ok := s.errs[zone]; ok {
		return nil, err
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		s.errs[zone] = err
		return nil, err
	}
	s.locs[zone] = loc
	return loc, nil
}

// OffsetAt implements Provider.
func (s *System) OffsetAt(zone string, unixMs int64) (int, bool, error) {
	loc, err := s.load(zone)
	if err != nil {
		return 0, false, err
	}
	t := time.UnixMilli(unixMs).In(loc)
	_, offset := t.Zone()
	return offset, t.IsDST(), nil
}

// InstantFor implements Provider.
func (s *System) InstantFor(zone string, year, month, day, hour, minute, second int) (int64, error) {
	loc, err := s.load(zone)
	if err != nil {
		return 0, err
	}
	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, loc)
	return t.UnixMilli(), nil
}
