package world

import (
	"testing"
)

func TestEntityTableCreateAt(t *testing.T) {
	var tab EntityTable
	tab.Reset()

	e := tab.CreateAt(EntityKindDuck, 42)
	if e == nil || e.Duck == nil {
		t.Fatal("CreateAt returned no duck")
	}
	if got := e.Base().SpriteIndex; got != 42 {
		t.Errorf("SpriteIndex = %d, want 42", got)
	}
	if tab.Get(42) != e {
		t.Error("Get did not return the created entity")
	}
	if tab.Get(43) != nil {
		t.Error("vacant slot should be nil")
	}
	if tab.CreateAt(EntityKindDuck, MaxEntities) != nil {
		t.Error("out of range slot should fail")
	}
}

func TestEntityTableOfKindOrder(t *testing.T) {
	var tab EntityTable
	tab.Reset()
	tab.CreateAt(EntityKindBalloon, 9)
	tab.CreateAt(EntityKindBalloon, 2)
	tab.CreateAt(EntityKindDuck, 5)

	balloons := tab.OfKind(EntityKindBalloon)
	if len(balloons) != 2 {
		t.Fatalf("len = %d, want 2", len(balloons))
	}
	if balloons[0].Base().SpriteIndex != 2 || balloons[1].Base().SpriteIndex != 9 {
		t.Errorf("not in slot order: %d, %d",
			balloons[0].Base().SpriteIndex, balloons[1].Base().SpriteIndex)
	}
	if got := tab.Count(EntityKindDuck); got != 1 {
		t.Errorf("Count(duck) = %d, want 1", got)
	}
}

func TestStaffPatrolAreaRoundTrip(t *testing.T) {
	var s Staff
	s.PatrolArea = new([PatrolAreaSize]uint32)
	s.PatrolArea[0] |= 1 << 0 // block at tile (0,0)
	s.PatrolArea[2] |= 1 << 5 // an arbitrary later block

	tiles := s.PatrolAreaTiles()
	if len(tiles) != 2*PatrolBlockSize*PatrolBlockSize {
		t.Fatalf("tile count = %d, want %d", len(tiles), 2*16)
	}

	var s2 Staff
	s2.SetPatrolAreaTiles(tiles)
	if s2.PatrolArea == nil {
		t.Fatal("patrol area not rebuilt")
	}
	for i := 0; i < PatrolAreaSize; i++ {
		if s2.PatrolArea[i] != s.PatrolArea[i] {
			t.Fatalf("word %d = %#x, want %#x", i, s2.PatrolArea[i], s.PatrolArea[i])
		}
	}
}

func TestStaffPatrolAreaEmptyClears(t *testing.T) {
	var s Staff
	s.PatrolArea = new([PatrolAreaSize]uint32)
	s.SetPatrolAreaTiles(nil)
	if s.PatrolArea != nil {
		t.Error("empty tile list should clear the patrol area")
	}
	if s.PatrolAreaTiles() != nil {
		t.Error("roaming staff should expand to no tiles")
	}
}

func TestRidesFromBitmap(t *testing.T) {
	var bm [LegacyRidesBitmapSize]uint8
	bm[0] = 0x05  // rides 0 and 2
	bm[31] = 0x40 // ride 254
	got := RidesFromBitmap(bm)
	want := []uint16{0, 2, 254}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestRideTypesFromBitmap(t *testing.T) {
	var bm [LegacyRideTypesBitmapSize]uint8
	bm[1] = 0x01 // type 8
	got := RideTypesFromBitmap(bm)
	if len(got) != 1 || got[0] != 8 {
		t.Fatalf("got %v, want [8]", got)
	}
}

func TestSplitPackedCars(t *testing.T) {
	minCars, maxCars := SplitPackedCars(0x3B)
	if minCars != 3 || maxCars != 11 {
		t.Errorf("SplitPackedCars(0x3B) = %d, %d, want 3, 11", minCars, maxCars)
	}
}
