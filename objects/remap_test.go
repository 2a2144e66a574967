package objects

import (
	"testing"
)

func TestMapToCurrentIdentifier(t *testing.T) {
	for _, tc := range []struct {
		in, want string
	}{
		{"official.scgpanda", "rct2dlc.scenery_group.scgpanda"},
		{"openrct2.railings.invisible", "openrct2.footpath_railings.invisible"},
		{"rct2.ride.ptct1", "rct2.ride.ptct1"}, // already current
		{"", ""},
		{"some.unknown.object", "some.unknown.object"},
	} {
		if got := MapToCurrentIdentifier(tc.in); got != tc.want {
			t.Errorf("MapToCurrentIdentifier(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMapToCurrentIdentifierPure(t *testing.T) {
	// Repeated lookups of the same identifier always agree; the table is
	// a single-pass translation, never applied transitively.
	first := MapToCurrentIdentifier("official.scgpanda")
	for i := 0; i < 3; i++ {
		if got := MapToCurrentIdentifier("official.scgpanda"); got != first {
			t.Fatalf("lookup changed between calls: %q then %q", first, got)
		}
	}
}
