package objects

import (
	"testing"
)

func TestLegacyEntryName(t *testing.T) {
	var e LegacyEntry
	e.SetName("TARMAC")
	if got := string(e.Name[:]); got != "TARMAC  " {
		t.Errorf("padded name = %q, want %q", got, "TARMAC  ")
	}
	if got := e.NameString(); got != "TARMAC" {
		t.Errorf("NameString() = %q, want %q", got, "TARMAC")
	}
}

func TestLegacyEntryType(t *testing.T) {
	e := LegacyEntry{Flags: 0x85} // path type in low nibble, extra high bits
	if got := e.Type(); got != TypePaths {
		t.Errorf("Type() = %v, want %v", got, TypePaths)
	}
}

func TestListSlotStability(t *testing.T) {
	var l List
	l.SetObject(TypeRide, 3, FromIdentifier(TypeRide, "rct2.ride.ptct1", ""))

	if got := l.Size(TypeRide); got != 4 {
		t.Fatalf("Size = %d, want 4", got)
	}
	for i := EntryIndex(0); i < 3; i++ {
		if l.Object(TypeRide, i) != nil {
			t.Errorf("slot %d should be empty", i)
		}
	}
	d := l.Object(TypeRide, 3)
	if d == nil || d.Identifier != "rct2.ride.ptct1" {
		t.Errorf("slot 3 = %+v, want rct2.ride.ptct1", d)
	}
}

func TestListFind(t *testing.T) {
	var l List
	var e LegacyEntry
	e.Flags = uint32(TypePaths)
	e.SetName("TARMAC")
	l.SetLegacyObject(2, e)
	l.SetObject(TypeFootpathSurface, 0, FromIdentifier(TypeFootpathSurface, "rct2.footpath_surface.tarmac", ""))

	if got := l.Find(TypePaths, "TARMAC"); got != 2 {
		t.Errorf("Find(TARMAC) = %d, want 2", got)
	}
	if got := l.Find(TypeFootpathSurface, "rct2.footpath_surface.tarmac"); got != 0 {
		t.Errorf("Find(surface) = %d, want 0", got)
	}
	if got := l.Find(TypeRide, "nothing"); got != EntryIndexNull {
		t.Errorf("Find(absent) = %#x, want EntryIndexNull", got)
	}
}

func TestListOutOfRange(t *testing.T) {
	var l List
	if l.Object(TypeWater, 0) != nil {
		t.Error("empty category should have no objects")
	}
	if got := l.Size(TypeCount); got != 0 {
		t.Errorf("Size(TypeCount) = %d, want 0", got)
	}
}

func TestSceneryTypeRoundTrip(t *testing.T) {
	for _, s := range []SceneryType{ScenerySmall, SceneryPathItem, SceneryWall, SceneryLarge, SceneryBanner} {
		if got := SceneryTypeFromObjectType(ObjectTypeFromSceneryType(s)); got != s {
			t.Errorf("round trip %v = %v", s, got)
		}
	}
}
