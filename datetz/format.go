package datetz

import (
	"strings"

	"github.com/lbdsh/mobile-date-tz/internal/caldate"
)

// DefaultPattern is the pattern used by Format, Parse and String when the
// caller passes an empty pattern. It is a module-wide setting.
var DefaultPattern = "YYYY-MM-DD HH:mm:ss"

// Format tokens, matched longest first. Tokens not listed here pass
// through unchanged; spans wrapped in brackets are emitted literally with
// the brackets stripped.
//
//	YYYY yyyy  4-digit year, zero-padded
//	YY yy      last two digits of the year
//	MM         2-digit month
//	LM         locale month name (see FormatInLocale)
//	DD         2-digit day of the month
//	HH         2-digit 24-hour hour
//	hh         2-digit 12-hour hour, 0 printed as 12
//	mm ss      2-digit minute, second
//	aa AA      lower/upper case am-pm marker
//	tz         the raw zone identifier
var formatTokens = []string{
	"YYYY", "yyyy",
	"YY", "yy", "MM", "LM", "DD", "HH", "hh", "mm", "ss", "aa", "AA", "tz",
}

// nextToken returns the token at the start of s, longest match first, and
// its length. It returns "" when s does not start with a token.
func nextToken(s string) (string, int) {
	for _, tok := range formatTokens {
		if strings.HasPrefix(s, tok) {
			return tok, len(tok)
		}
	}
	return "", 0
}

// Format renders the value using the given pattern and English month
// names. An empty pattern means [DefaultPattern].
func (d *DateTime) Format(pattern string) string {
	return d.FormatInLocale(pattern, "")
}

// FormatInLocale renders the value using the given pattern, resolving the
// LM token through the month-name table for the given locale. Locales with
// no table, and locale tags that fail to parse, fall back to English.
//
// The seconds column always renders as zeros since the stored instant is
// minute-aligned.
func (d *DateTime) FormatInLocale(pattern, locale string) string {
	if pattern == "" {
		pattern = DefaultPattern
	}
	off := d.offset()
	year, month, day, hour, minute, second := caldate.Civil(d.ms/1000 + int64(off.Seconds))

	b := make([]byte, 0, len(pattern)+8)
	for i := 0; i < len(pattern); {
		if pattern[i] == '[' {
			end := strings.IndexByte(pattern[i+1:], ']')
			if end < 0 {
				// Unclosed literal: emit the rest verbatim.
				b = append(b, pattern[i+1:]...)
				break
			}
			b = append(b, pattern[i+1:i+1+end]...)
			i += end + 2
			continue
		}
		tok, n := nextToken(pattern[i:])
		if tok == "" {
			b = append(b, pattern[i])
			i++
			continue
		}
		i += n
		switch tok {
		case "YYYY", "yyyy":
			b = append4(b, year)
		case "YY", "yy":
			b = append2(b, ((year%100)+100)%100)
		case "MM":
			b = append2(b, month)
		case "LM":
			b = append(b, monthName(month, locale)...)
		case "DD":
			b = append2(b, day)
		case "HH":
			b = append2(b, hour)
		case "hh":
			h := hour % 12
			if h == 0 {
				h = 12
			}
			b = append2(b, h)
		case "mm":
			b = append2(b, minute)
		case "ss":
			b = append2(b, second)
		case "aa":
			b = append(b, marker(hour, false)...)
		case "AA":
			b = append(b, marker(hour, true)...)
		case "tz":
			b = append(b, d.zone...)
		}
	}
	return string(b)
}

// marker returns the am-pm marker for a 24-hour hour.
func marker(hour int, upper bool) string {
	switch {
	case hour < 12 && upper:
		return "AM"
	case hour < 12:
		return "am"
	case upper:
		return "PM"
	}
	return "pm"
}

// append2 appends v as exactly two decimal digits.
func append2(b []byte, v int) []byte {
	return append(b, byte('0'+v/10%10), byte('0'+v%10))
}

// append4 appends v as exactly four decimal digits.
func append4(b []byte, v int) []byte {
	return append(b, byte('0'+v/1000%10), byte('0'+v/100%10), byte('0'+v/10%10), byte('0'+v%10))
}
