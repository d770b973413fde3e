// Package datetz provides a minute-precision instant bound to a named time
// zone, with deterministic arithmetic, comparison and a compact token-based
// format/parse grammar.
//
// Offsets resolve against an authoritative zone database when one is
// available and degrade to the static table in package tztab when it is
// not, trading DST precision for availability. The database is injected
// through [Resolver]; the package-level constructors use [DefaultResolver],
// which consults the Go runtime's zone database.
//
// A DateTime is mutable and not safe for concurrent use. Mutating
// operations report failure before any field is written, so a failed call
// leaves the value unchanged.
package datetz

import (
	"time"

	"github.com/lbdsh/mobile-date-tz/internal/caldate"
	"github.com/lbdsh/mobile-date-tz/tztab"
)

// Unit selects the field affected by [DateTime.Add] and [DateTime.Set].
type Unit int

const (
	UnitMinute Unit = iota
	UnitHour
	UnitDay
	UnitMonth
	UnitYear
)

// String returns the unit name as used in error messages.
func (u Unit) String() string {
	switch u {
	case UnitMinute:
		return "minute"
	case UnitHour:
		return "hour"
	case UnitDay:
		return "day"
	case UnitMonth:
		return "month"
	case UnitYear:
		return "year"
	}
	return "invalid"
}

const msPerMinute = 60_000

// Fields is a bag of wall-clock fields for constructing a DateTime.
// Month is 1-12. A zero Month or Day is treated as 1 so that the zero
// value of omitted fields names a valid date.
type Fields struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// DateTime is an instant bound to a named time zone.
//
// The instant is stored as minute-aligned unix milliseconds; seconds and
// sub-second components are zeroed on every write. The resolved offset for
// the current instant is cached and recomputed after each mutation.
type DateTime struct {
	ms   int64 // unix milliseconds, minute-aligned
	zone string
	rec  tztab.Record
	res  *Resolver

	// Single-entry offset cache, valid only for cacheMs.
	cacheMs  int64
	cache    Offset
	hasCache bool
}

// New returns a DateTime for the given instant in unix milliseconds,
// truncated to the minute, in the given zone. It uses [DefaultResolver].
func New(unixMs int64, zone string) (*DateTime, error) {
	return DefaultResolver.New(unixMs, zone)
}

// New returns a DateTime for the given instant in unix milliseconds,
// truncated to the minute, in the given zone.
//
// The zone must be present in the tztab table; an unknown zone is an
// *InvalidArgumentError.
func (r *Resolver) New(unixMs int64, zone string) (*DateTime, error) {
	rec, ok := tztab.Lookup(zone)
	if !ok {
		return nil, unknownZoneError(zone)
	}
	return &DateTime{
		ms:   caldate.TruncateMinute(unixMs),
		zone: zone,
		rec:  rec,
		res:  r,
	}, nil
}

// Now returns the current instant, truncated to the minute, in the given
// zone. An empty zone means "UTC". It uses [DefaultResolver].
func Now(zone string) (*DateTime, error) {
	return DefaultResolver.Now(zone)
}

// Now returns the current instant, truncated to the minute, in the given
// zone. An empty zone means "UTC".
func (r *Resolver) Now(zone string) (*DateTime, error) {
	if zone == "" {
		zone = "UTC"
	}
	return r.New(time.Now().UnixMilli(), zone)
}

// FromValue returns a DateTime with the same instant as v, bound to the
// given zone. An empty zone keeps v's zone. The result shares no state
// with v. It uses [DefaultResolver].
func FromValue(v *DateTime, zone string) (*DateTime, error) {
	return DefaultResolver.FromValue(v, zone)
}

// FromValue returns a DateTime with the same instant as v, bound to the
// given zone. An empty zone keeps v's zone.
func (r *Resolver) FromValue(v *DateTime, zone string) (*DateTime, error) {
	if zone == "" {
		zone = v.zone
	}
	return r.New(v.ms, zone)
}

// FromFields returns a DateTime for the given wall-clock fields interpreted
// in the given zone. It uses [DefaultResolver].
func FromFields(f Fields, zone string) (*DateTime, error) {
	return DefaultResolver.FromFields(f, zone)
}

// FromFields returns a DateTime for the given wall-clock fields interpreted
// in the given zone.
//
// The fields resolve to an instant through the authoritative database when
// it is available, and through the static table with a DST correction
// heuristic otherwise, exactly like [Resolver.Parse].
func (r *Resolver) FromFields(f Fields, zone string) (*DateTime, error) {
	rec, ok := tztab.Lookup(zone)
	if !ok {
		return nil, unknownZoneError(zone)
	}
	if f.Month == 0 {
		f.Month = 1
	}
	if f.Day == 0 {
		f.Day = 1
	}
	ms := r.instantFor(zone, rec, f.Year, f.Month, f.Day, f.Hour, f.Minute, f.Second)
	return &DateTime{
		ms:   caldate.TruncateMinute(ms),
		zone: zone,
		rec:  rec,
		res:  r,
	}, nil
}

// resolver returns the Resolver the value was created with.
func (d *DateTime) resolver() *Resolver {
	if d.res == nil {
		return DefaultResolver
	}
	return d.res
}

// offset returns the resolved offset for the current instant, consulting
// the single-entry cache first.
func (d *DateTime) offset() Offset {
	if d.hasCache && d.cacheMs == d.ms {
		return d.cache
	}
	off := d.resolver().resolve(d.zone, d.rec, d.ms)
	d.cacheMs = d.ms
	d.cache = off
	d.hasCache = true
	return off
}

// invalidate drops the cached offset. Every mutation calls it.
func (d *DateTime) invalidate() {
	d.hasCache = false
}

// civil returns the local wall-clock fields for the current instant.
func (d *DateTime) civil() (year, month, day, hour, minute, second int) {
	off := d.offset()
	return caldate.Civil(d.ms/1000 + int64(off.Seconds))
}

// Zone returns the zone identifier the value is bound to.
func (d *DateTime) Zone() string { return d.zone }

// UnixMilli returns the stored instant in unix milliseconds. The instant
// is always minute-aligned.
func (d *DateTime) UnixMilli() int64 { return d.ms }

// Unix returns the stored instant in unix seconds.
func (d *DateTime) Unix() int64 { return d.ms / 1000 }

// Year returns the local wall-clock year.
func (d *DateTime) Year() int {
	y, _, _, _, _, _ := d.civil()
	return y
}

// Month returns the local wall-clock month, zero-indexed: 0=January.
func (d *DateTime) Month() int {
	_, m, _, _, _, _ := d.civil()
	return m - 1
}

// Day returns the local wall-clock day of the month.
func (d *DateTime) Day() int {
	_, _, day, _, _, _ := d.civil()
	return day
}

// Hour returns the local wall-clock hour in 24-hour form.
func (d *DateTime) Hour() int {
	_, _, _, h, _, _ := d.civil()
	return h
}

// Minute returns the local wall-clock minute.
func (d *DateTime) Minute() int {
	_, _, _, _, m, _ := d.civil()
	return m
}

// DayOfWeek returns the local day of the week, 0=Sunday.
func (d *DateTime) DayOfWeek() int {
	y, mo, day, _, _, _ := d.civil()
	return caldate.DayOfWeek(y, mo, day)
}

// IsDST reports whether the zone observes daylight saving time at the
// stored instant. Without an authoritative database this is always false.
func (d *DateTime) IsDST() bool {
	return d.offset().DST
}

// OffsetRecord returns the zone's static offset record.
func (d *DateTime) OffsetRecord() tztab.Record { return d.rec }

// Add steps the value by n units and truncates the result to the minute.
//
// Minute, hour and day steps are plain duration arithmetic on the stored
// instant. Month and year steps operate on the UTC wall-clock fields and
// clamp the day of the month instead of overflowing: January 31st plus one
// month is the last day of February. Negative month steps round toward
// earlier months, so month deltas below January land in the previous year.
//
// An unsupported unit is an *InvalidArgumentError and leaves the value
// unchanged.
func (d *DateTime) Add(n int, unit Unit) error {
	switch unit {
	case UnitMinute:
		d.ms += int64(n) * msPerMinute
	case UnitHour:
		d.ms += int64(n) * 60 * msPerMinute
	case UnitDay:
		d.ms += int64(n) * 24 * 60 * msPerMinute
	case UnitMonth:
		y, mo, day, h, mi, _ := caldate.Civil(d.ms / 1000)
		total := (mo - 1) + n
		y += caldate.FloorDiv(total, 12)
		mo = total - caldate.FloorDiv(total, 12)*12 + 1
		day = min(day, caldate.DaysInMonth(y, mo))
		d.ms = caldate.Unix(y, mo, day, h, mi, 0) * 1000
	case UnitYear:
		y, mo, day, h, mi, _ := caldate.Civil(d.ms / 1000)
		y += n
		day = min(day, caldate.DaysInMonth(y, mo))
		d.ms = caldate.Unix(y, mo, day, h, mi, 0) * 1000
	default:
		return unsupportedUnitError("add", unit)
	}
	d.ms = caldate.TruncateMinute(d.ms)
	d.invalidate()
	return nil
}

// Set overwrites a single UTC wall-clock field and truncates the result to
// the minute. Month is 1-12 on input.
//
// Unlike [DateTime.Add], out-of-range values normalize arithmetically
// instead of clamping: setting day 31 in a 30-day month rolls into the
// next month.
//
// An unsupported unit is an *InvalidArgumentError and leaves the value
// unchanged.
func (d *DateTime) Set(value int, unit Unit) error {
	y, mo, day, h, mi, _ := caldate.Civil(d.ms / 1000)
	switch unit {
	case UnitYear:
		y = value
	case UnitMonth:
		mo = value
	case UnitDay:
		day = value
	case UnitHour:
		h = value
	case UnitMinute:
		mi = value
	default:
		return unsupportedUnitError("set", unit)
	}
	d.ms = caldate.TruncateMinute(caldate.Unix(y, mo, day, h, mi, 0) * 1000)
	d.invalidate()
	return nil
}

// ConvertTo rebinds the value to another zone, keeping the instant. An
// unknown zone is an *InvalidArgumentError and leaves the value unchanged.
func (d *DateTime) ConvertTo(zone string) error {
	rec, ok := tztab.Lookup(zone)
	if !ok {
		return unknownZoneError(zone)
	}
	d.zone = zone
	d.rec = rec
	d.invalidate()
	return nil
}

// CloneTo returns a new DateTime with the same instant bound to the given
// zone. The result shares no state with the receiver.
func (d *DateTime) CloneTo(zone string) (*DateTime, error) {
	return d.resolver().New(d.ms, zone)
}

// Compare returns the difference between the two instants in milliseconds
// (receiver minus other).
//
// Both values must be bound to the same zone identifier; comparing across
// zones is an *InvalidArgumentError, never a silent normalization.
func (d *DateTime) Compare(other *DateTime) (int64, error) {
	if d.zone != other.zone {
		return 0, crossZoneError(d.zone, other.zone)
	}
	return d.ms - other.ms, nil
}

// IsComparable reports whether Compare would succeed for the two values.
func (d *DateTime) IsComparable(other *DateTime) bool {
	return other != nil && d.zone == other.zone
}

// String implements fmt.Stringer via Format with the default pattern.
func (d *DateTime) String() string {
	return d.Format("")
}
