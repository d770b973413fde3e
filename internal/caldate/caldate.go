// Package caldate implements proleptic Gregorian calendar conversions
// without depending on time.Location, so that wall-clock arithmetic works
// identically whether or not the host has a time zone database.
package caldate

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	msPerMinute      = 60_000

	daysPerEra = 365*400 + 97 // days per 400-year cycle
	// Days between 0000-03-01 and 1970-01-01 in the era calendar below.
	unixEpochDays = 719468
)

// IsLeapYear determines if the year is a leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in a given month for a specific year.
func DaysInMonth(year, month int) int {
	if month == 2 {
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}
	if month == 4 || month == 6 || month == 9 || month == 11 {
		return 30
	}
	return 31
}

// DayOfWeek calculates the day of the week for a given date,
// where 0=Sunday, 1=Monday, ..., 6=Saturday.
func DayOfWeek(year, month, day int) int {
	// Zeller's Congruence algorithm adjustment for Gregorian calendar
	if month < 3 {
		month += 12
		year -= 1
	}
	k := year % 100
	j := year / 100
	h := (day + ((13 * (month + 1)) / 5) + k + (k / 4) + (j / 4) + (5 * j)) % 7
	// Adjust result to fit Sunday=0, Monday=1, ..., Saturday=6
	return (h + 6) % 7
}

// FloorDiv divides a by b rounding toward negative infinity.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorDiv64(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// TruncateMinute rounds a unix millisecond instant down to the start of
// its minute.
func TruncateMinute(ms int64) int64 {
	return floorDiv64(ms, msPerMinute) * msPerMinute
}

// daysFromCivil returns the number of days between 1970-01-01 and the
// given date, negative for earlier dates. It counts in 400-year eras
// starting at March 1st so that the leap day is the last day of the cycle.
func daysFromCivil(year, month, day int) int64 {
	y := int64(year)
	if month <= 2 {
		y--
	}
	era := floorDiv64(y, 400)
	yoe := y - era*400 // [0, 399]
	var mp int64
	if month > 2 {
		mp = int64(month) - 3
	} else {
		mp = int64(month) + 9
	}
	doy := (153*mp+2)/5 + int64(day) - 1   // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy // [0, 146096]
	return era*daysPerEra + doe - unixEpochDays
}

// civilFromDays inverts daysFromCivil.
func civilFromDays(days int64) (year, month, day int) {
	z := days + unixEpochDays
	era := floorDiv64(z, daysPerEra)
	doe := z - era*daysPerEra // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100) // [0, 365]
	mp := (5*doy + 2) / 153                  // [0, 11]
	day = int(doy - (153*mp+2)/5 + 1)
	if mp < 10 {
		month = int(mp + 3)
	} else {
		month = int(mp - 9)
	}
	if month <= 2 {
		y++
	}
	return int(y), month, day
}

// Unix converts wall-clock fields to the number of seconds since
// 1970-01-01 00:00:00. It ignores leap seconds but respects leap years and
// assumes the proleptic Gregorian calendar.
//
// Out-of-range fields normalize arithmetically: month 13 rolls into January
// of the next year, day 0 is the last day of the previous month, hour 24 is
// midnight of the next day, and so on.
func Unix(year, month, day, hour, minute, second int) int64 {
	year += FloorDiv(month-1, 12)
	month = month - 1 - FloorDiv(month-1, 12)*12 + 1
	d := daysFromCivil(year, month, day)
	return d*secondsPerDay +
		int64(hour)*secondsPerHour +
		int64(minute)*secondsPerMinute +
		int64(second)
}

// Civil converts seconds since 1970-01-01 00:00:00 to wall-clock fields.
// Month is 1-12.
func Civil(unix int64) (year, month, day, hour, minute, second int) {
	days := floorDiv64(unix, secondsPerDay)
	rem := unix - days*secondsPerDay // [0, 86399]
	year, month, day = civilFromDays(days)
	hour = int(rem / secondsPerHour)
	rem -= int64(hour) * secondsPerHour
	minute = int(rem / secondsPerMinute)
	second = int(rem - int64(minute)*secondsPerMinute)
	return
}
