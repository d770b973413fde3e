package caldate

import (
	"testing"
	"time"
)

func TestUnix(t *testing.T) {
	cases := []struct {
		y, mo, d, h, mi, s int
		want               int64
	}{
		{1970, 1, 1, 0, 0, 0, 0},
		{1970, 1, 2, 0, 0, 0, 86400},
		{1969, 12, 31, 23, 59, 59, -1},
		{2021, 1, 1, 0, 0, 0, 1609459200},
		{2000, 2, 29, 12, 0, 0, 951825600},
		{2038, 1, 19, 3, 14, 7, 2147483647},
		{1900, 1, 1, 0, 0, 0, -2208988800},
	}
	for _, c := range cases {
		if got := Unix(c.y, c.mo, c.d, c.h, c.mi, c.s); got != c.want {
			t.Errorf("Unix(%d-%02d-%02d %02d:%02d:%02d) = %d, want %d",
				c.y, c.mo, c.d, c.h, c.mi, c.s, got, c.want)
		}
	}
}

func TestUnixNormalizesFields(t *testing.T) {
	cases := []struct {
		name             string
		y, mo, d, h, mi  int
		wy, wmo, wd, wh  int
		wmi              int
	}{
		{"day overflow", 2021, 4, 31, 0, 0, 2021, 5, 1, 0, 0},
		{"month overflow", 2021, 13, 1, 0, 0, 2022, 1, 1, 0, 0},
		{"month underflow", 2021, 0, 1, 0, 0, 2020, 12, 1, 0, 0},
		{"hour overflow", 2021, 1, 1, 24, 0, 2021, 1, 2, 0, 0},
		{"minute overflow", 2021, 1, 1, 23, 60, 2021, 1, 2, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			gy, gmo, gd, gh, gmi, _ := Civil(Unix(c.y, c.mo, c.d, c.h, c.mi, 0))
			if gy != c.wy || gmo != c.wmo || gd != c.wd || gh != c.wh || gmi != c.wmi {
				t.Errorf("got %d-%02d-%02d %02d:%02d, want %d-%02d-%02d %02d:%02d",
					gy, gmo, gd, gh, gmi, c.wy, c.wmo, c.wd, c.wh, c.wmi)
			}
		})
	}
}

func TestCivilRoundTrip(t *testing.T) {
	// Sweep a few days around every month boundary of a leap and a
	// non-leap year, plus dates far from the epoch.
	years := []int{1880, 1970, 2020, 2021, 2100}
	for _, y := range years {
		for mo := 1; mo <= 12; mo++ {
			for _, d := range []int{1, 15, DaysInMonth(y, mo)} {
				unix := Unix(y, mo, d, 13, 45, 30)
				gy, gmo, gd, gh, gmi, gs := Civil(unix)
				if gy != y || gmo != mo || gd != d || gh != 13 || gmi != 45 || gs != 30 {
					t.Fatalf("Civil(Unix(%d-%02d-%02d)) = %d-%02d-%02d %02d:%02d:%02d",
						y, mo, d, gy, gmo, gd, gh, gmi, gs)
				}
			}
		}
	}
}

func TestCivilMatchesTimePackage(t *testing.T) {
	for unix := int64(-5e8); unix <= 5e9; unix += 997 * 3600 {
		y, mo, d, h, mi, s := Civil(unix)
		want := time.Unix(unix, 0).UTC()
		if y != want.Year() || time.Month(mo) != want.Month() || d != want.Day() ||
			h != want.Hour() || mi != want.Minute() || s != want.Second() {
			t.Fatalf("Civil(%d) = %d-%02d-%02d %02d:%02d:%02d, want %v",
				unix, y, mo, d, h, mi, s, want)
		}
	}
}

func TestIsLeapYear(t *testing.T) {
	cases := map[int]bool{
		1900: false,
		2000: true,
		2020: true,
		2021: false,
		2024: true,
		2100: false,
	}
	for year, want := range cases {
		if got := IsLeapYear(year); got != want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", year, got, want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year, month, want int
	}{
		{2021, 1, 31},
		{2021, 2, 28},
		{2024, 2, 29},
		{2021, 4, 30},
		{2021, 12, 31},
	}
	for _, c := range cases {
		if got := DaysInMonth(c.year, c.month); got != c.want {
			t.Errorf("DaysInMonth(%d, %d) = %d, want %d", c.year, c.month, got, c.want)
		}
	}
}

func TestDayOfWeek(t *testing.T) {
	cases := []struct {
		y, mo, d, want int
	}{
		{1970, 1, 1, 4},  // Thursday
		{2000, 2, 29, 2}, // Tuesday
		{2021, 1, 1, 5},  // Friday
		{2021, 1, 3, 0},  // Sunday
		{2024, 12, 31, 2}, // Tuesday
	}
	for _, c := range cases {
		if got := DayOfWeek(c.y, c.mo, c.d); got != c.want {
			t.Errorf("DayOfWeek(%d-%02d-%02d) = %d, want %d", c.y, c.mo, c.d, got, c.want)
		}
	}
}

func TestFloorDiv(t *testing.T) {
	cases := []struct {
		a, b, want int
	}{
		{7, 12, 0},
		{-1, 12, -1},
		{-12, 12, -1},
		{-13, 12, -2},
		{12, 12, 1},
	}
	for _, c := range cases {
		if got := FloorDiv(c.a, c.b); got != c.want {
			t.Errorf("FloorDiv(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestTruncateMinute(t *testing.T) {
	cases := []struct {
		ms, want int64
	}{
		{0, 0},
		{59_999, 0},
		{60_000, 60_000},
		{1609459261500, 1609459260000},
		{-1, -60_000},
		{-60_000, -60_000},
		{-60_001, -120_000},
	}
	for _, c := range cases {
		if got := TruncateMinute(c.ms); got != c.want {
			t.Errorf("TruncateMinute(%d) = %d, want %d", c.ms, got, c.want)
		}
	}
}
