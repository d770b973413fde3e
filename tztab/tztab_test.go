package tztab

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLookup(t *testing.T) {
	cases := []struct {
		zone   string
		want   Record
		wantOK bool
	}{
		{"UTC", Record{0, 0}, true},
		{"Europe/Rome", Record{3600, 7200}, true},
		{"America/New_York", Record{-18000, -14400}, true},
		{"Asia/Tokyo", Record{32400, 32400}, true},
		{"America/St_Johns", Record{-12600, -9000}, true},
		{"Mars/Olympus_Mons", Record{}, false},
		{"", Record{}, false},
	}
	for _, c := range cases {
		got, ok := Lookup(c.zone)
		if ok != c.wantOK {
			t.Errorf("Lookup(%q) ok = %v, want %v", c.zone, ok, c.wantOK)
		}
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("Lookup(%q) mismatch (-want +got):\n%s", c.zone, diff)
		}
	}
}

func TestObservesDST(t *testing.T) {
	cases := []struct {
		zone string
		want bool
	}{
		{"UTC", false},
		{"Asia/Tokyo", false},
		{"America/Phoenix", false},
		{"Europe/Rome", true},
		{"Pacific/Auckland", true},
	}
	for _, c := range cases {
		r, ok := Lookup(c.zone)
		if !ok {
			t.Fatalf("Lookup(%q) missing", c.zone)
		}
		if got := r.ObservesDST(); got != c.want {
			t.Errorf("ObservesDST(%q) = %v, want %v", c.zone, got, c.want)
		}
	}
}

func TestZones(t *testing.T) {
	zones := Zones()
	if len(zones) != len(table) {
		t.Fatalf("Zones() returned %d zones, table has %d", len(zones), len(table))
	}
	if !sort.StringsAreSorted(zones) {
		t.Error("Zones() is not sorted")
	}
	found := false
	for _, z := range zones {
		if z == "UTC" {
			found = true
			break
		}
	}
	if !found {
		t.Error("Zones() does not contain UTC")
	}
}
