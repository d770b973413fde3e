package datetz

import (
	"github.com/lbdsh/mobile-date-tz/internal/caldate"
	"github.com/lbdsh/mobile-date-tz/tztab"
	"github.com/lbdsh/mobile-date-tz/zonedb"
)

// Offset is the result of resolving a zone at a specific instant.
type Offset struct {
	// Seconds is the UTC offset in seconds east of UTC.
	Seconds int
	// DST reports whether daylight saving time is in effect.
	DST bool
}

// Resolver turns (zone, instant) pairs into offsets and wall-clock fields
// into instants.
//
// DB is the authoritative zone database; it may be nil, in which case every
// resolution uses the static table's standard offset with the DST flag
// cleared. A failing DB is equivalent to a nil one: failures are absorbed,
// never surfaced. Tests substitute a stub Provider here.
type Resolver struct {
	DB zonedb.Provider
}

// DefaultResolver is used by the package-level constructors and Parse.
// It consults the Go runtime's zone database.
var DefaultResolver = &Resolver{DB: zonedb.NewSystem()}

// resolve returns the offset observed by zone at the given instant.
//
// Zones with identical standard and daylight offsets resolve immediately
// from the record without touching the database. Otherwise the database
// answer is used verbatim; on any failure the standard offset is returned
// with DST cleared, which never guesses DST without proof.
func (r *Resolver) resolve(zone string, rec tztab.Record, unixMs int64) Offset {
	if !rec.ObservesDST() {
		return Offset{Seconds: rec.StdOffsetSeconds}
	}
	if r.DB != nil {
		if offset, dst, err := r.DB.OffsetAt(zone, unixMs); err == nil {
			return Offset{Seconds: offset, DST: dst}
		}
	}
	return Offset{Seconds: rec.StdOffsetSeconds}
}

// instantFor converts wall-clock fields in zone to unix milliseconds.
//
// With a working database the conversion is authoritative. Without one the
// fields are first read as standard time; if the zone observes DST and the
// candidate instant itself resolves as DST, the candidate shifts by the
// daylight delta. Near transition boundaries this heuristic can pick the
// wrong side of the gap or of a repeated hour.
func (r *Resolver) instantFor(zone string, rec tztab.Record, year, month, day, hour, minute, second int) int64 {
	if r.DB != nil {
		if ms, err := r.DB.InstantFor(zone, year, month, day, hour, minute, second); err == nil {
			return ms
		}
	}
	utc := caldate.Unix(year, month, day, hour, minute, second) * 1000
	candidate := utc - int64(rec.StdOffsetSeconds)*1000
	if rec.ObservesDST() && r.resolve(zone, rec, candidate).DST {
		candidate -= int64(rec.DstOffsetSeconds-rec.StdOffsetSeconds) * 1000
	}
	return candidate
}
