package datetz

import (
	"strings"

	"github.com/lbdsh/mobile-date-tz/internal/caldate"
	"github.com/lbdsh/mobile-date-tz/tztab"
)

// Parse inverts the Format grammar using [DefaultResolver]. See
// [Resolver.Parse].
func Parse(input, pattern, zone string) (*DateTime, error) {
	return DefaultResolver.Parse(input, pattern, zone)
}

// Parse reconstructs a DateTime from input according to pattern,
// interpreting the wall-clock fields in the given zone. An empty pattern
// means [DefaultPattern] and an empty zone means "UTC".
//
// The pattern and input are walked in lock step: bracket literals must
// appear verbatim in the input, digit tokens consume exactly their fixed
// width (two digits, four for YYYY/yyyy), am-pm markers consume two
// characters matched case-insensitively, and every other pattern character
// must match the input exactly. Leftover input is an error. The LM and tz
// tokens are not invertible and their letters match literally.
//
// A captured two-digit year resolves to 2000+YY; with no year token the
// year is 1970. A 12-hour pattern without an am-pm marker token is
// rejected before any input is consumed.
//
// Structural problems surface as *FormatError; an unknown zone is an
// *InvalidArgumentError.
//
// The instant resolves through the authoritative database when available.
// Otherwise the fields are read as standard time and shifted by the
// daylight delta if the candidate instant resolves as DST. Wall-clock
// times inside a spring-forward gap land after the gap, and repeated
// fall-back hours resolve to their daylight occurrence; both are artifacts
// of the heuristic, not authoritative answers.
func (r *Resolver) Parse(input, pattern, zone string) (*DateTime, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if zone == "" {
		zone = "UTC"
	}
	rec, ok := tztab.Lookup(zone)
	if !ok {
		return nil, unknownZoneError(zone)
	}
	if err := checkMarker(pattern, input); err != nil {
		return nil, err
	}

	var (
		year        int
		yearSet     bool
		shortYear   int
		shortSet    bool
		month       = 1
		day         = 1
		hour        int
		minute      int
		second      int
		hour12      int
		hour12Set   bool
		pm          bool
		markerFound bool
	)

	pi, ii := 0, 0
	for pi < len(pattern) {
		if pattern[pi] == '[' {
			end := strings.IndexByte(pattern[pi+1:], ']')
			if end < 0 {
				return nil, formatError(pattern, input, "unclosed literal")
			}
			lit := pattern[pi+1 : pi+1+end]
			if !strings.HasPrefix(input[ii:], lit) {
				return nil, formatError(pattern, input, "literal %q not found", lit)
			}
			ii += len(lit)
			pi += end + 2
			continue
		}

		tok, n := nextToken(pattern[pi:])
		switch tok {
		case "", "LM", "tz":
			// Not part of the parse token set: plain characters that
			// must match the input one by one.
			if ii >= len(input) {
				return nil, formatError(pattern, input, "truncated input")
			}
			if input[ii] != pattern[pi] {
				return nil, formatError(pattern, input, "expected %q at position %d", pattern[pi], ii)
			}
			pi++
			ii++
			continue
		}
		pi += n

		if tok == "aa" || tok == "AA" {
			if ii+2 > len(input) {
				return nil, formatError(pattern, input, "truncated input")
			}
			switch m := input[ii : ii+2]; {
			case strings.EqualFold(m, "am"):
				pm = false
			case strings.EqualFold(m, "pm"):
				pm = true
			default:
				return nil, formatError(pattern, input, "invalid am/pm marker %q", m)
			}
			markerFound = true
			ii += 2
			continue
		}

		width := 2
		if tok == "YYYY" || tok == "yyyy" {
			width = 4
		}
		v, err := digits(pattern, input, ii, width)
		if err != nil {
			return nil, err
		}
		ii += width

		switch tok {
		case "YYYY", "yyyy":
			year = v
			yearSet = true
		case "YY", "yy":
			shortYear = v
			shortSet = true
		case "MM":
			month = v
		case "DD":
			day = v
		case "HH":
			hour = v
		case "hh":
			hour12 = v
			hour12Set = true
		case "mm":
			minute = v
		case "ss":
			second = v
		}
	}
	if ii != len(input) {
		return nil, formatError(pattern, input, "extra characters %q", input[ii:])
	}

	switch {
	case yearSet:
	case shortSet:
		year = 2000 + shortYear
	default:
		year = 1970
	}
	if hour12Set {
		if !markerFound {
			return nil, formatError(pattern, input, "12-hour value without am/pm marker")
		}
		hour = hour12 % 12
		if pm {
			hour += 12
		}
	}

	ms := r.instantFor(zone, rec, year, month, day, hour, minute, second)
	return &DateTime{
		ms:   caldate.TruncateMinute(ms),
		zone: zone,
		rec:  rec,
		res:  r,
	}, nil
}

// checkMarker rejects patterns that capture a 12-hour hour without an
// am-pm marker token, before any input is consumed. Bracket literals do
// not count as tokens.
func checkMarker(pattern, input string) error {
	var has12, hasMarker bool
	for i := 0; i < len(pattern); {
		if pattern[i] == '[' {
			end := strings.IndexByte(pattern[i+1:], ']')
			if end < 0 {
				return formatError(pattern, input, "unclosed literal")
			}
			i += end + 2
			continue
		}
		tok, n := nextToken(pattern[i:])
		switch tok {
		case "hh":
			has12 = true
		case "aa", "AA":
			hasMarker = true
		}
		if n == 0 {
			n = 1
		}
		i += n
	}
	if has12 && !hasMarker {
		return formatError(pattern, input, "pattern has a 12-hour hour but no am/pm marker")
	}
	return nil
}

// digits reads exactly width decimal digits from input at offset.
func digits(pattern, input string, offset, width int) (int, error) {
	if offset+width > len(input) {
		return 0, formatError(pattern, input, "truncated input")
	}
	v := 0
	for i := offset; i < offset+width; i++ {
		c := input[i]
		if c < '0' || c > '9' {
			return 0, formatError(pattern, input, "expected digit at position %d", i)
		}
		v = v*10 + int(c-'0')
	}
	return v, nil
}
