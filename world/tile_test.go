package world

import (
	"testing"
)

func TestTileElementKind(t *testing.T) {
	var e TileElement
	e.SetKind(TileElementKindPath)
	if got := e.Kind(); got != TileElementKindPath {
		t.Errorf("Kind = %d, want path", got)
	}
	e.SetKind(TileElementKindBanner)
	if got := e.Kind(); got != TileElementKindBanner {
		t.Errorf("Kind = %d, want banner", got)
	}
}

func TestPathElementSurfaceAndRailings(t *testing.T) {
	var e TileElement
	e.SetKind(TileElementKindPath)
	e.SetLegacyPathIndex(7)
	if !e.HasLegacyPath() {
		t.Fatal("expected legacy path bit")
	}
	if got := e.PathSurfaceIndex(); got != 7 {
		t.Errorf("legacy index = %d, want 7", got)
	}

	e.SetPathSurfaceIndex(3)
	e.SetPathRailingsIndex(12)
	if e.HasLegacyPath() {
		t.Error("legacy bit should clear on modern surface assignment")
	}
	if got := e.PathSurfaceIndex(); got != 3 {
		t.Errorf("surface = %d, want 3", got)
	}
	if got := e.PathRailingsIndex(); got != 12 {
		t.Errorf("railings = %d, want 12", got)
	}

	e.SetPathIsQueue(true)
	if !e.PathIsQueue() {
		t.Error("queue bit not set")
	}
	e.SetPathIsQueue(false)
	if e.PathIsQueue() {
		t.Error("queue bit not cleared")
	}
}

func TestTrackElementRideType(t *testing.T) {
	var e TileElement
	e.SetKind(TileElementKindTrack)
	e.setDataU16(0, 0x0102) // track type
	e.setDataU16(2, 5)      // ride index
	e.SetTrackRideType(42)
	if got := e.TrackType(); got != 0x0102 {
		t.Errorf("TrackType = %#x", got)
	}
	if got := e.TrackRideIndex(); got != 5 {
		t.Errorf("TrackRideIndex = %d", got)
	}
	if got := e.TrackRideType(); got != 42 {
		t.Errorf("TrackRideType = %d", got)
	}
}

func surfaceElement(last bool) TileElement {
	var e TileElement
	e.SetKind(TileElementKindSurface)
	e.SetLastForTile(last)
	return e
}

func TestMapTileCoords(t *testing.T) {
	m := Map{Size: 2}
	m.Elements = []TileElement{
		surfaceElement(true), // tile 0,0
		surfaceElement(false),
		surfaceElement(true), // tile 1,0
		surfaceElement(true), // tile 0,1
	}
	x, y := m.TileCoords(1)
	if x != 1 || y != 0 {
		t.Errorf("element 1 at (%d,%d), want (1,0)", x, y)
	}
	x, y = m.TileCoords(3)
	if x != 0 || y != 1 {
		t.Errorf("element 3 at (%d,%d), want (0,1)", x, y)
	}
}

func TestMapWithoutGhosts(t *testing.T) {
	ghost := surfaceElement(false)
	ghost.SetKind(TileElementKindSmallScenery)
	ghost.Flags |= TileElementFlagGhost

	m := Map{Size: 2}
	m.Elements = []TileElement{
		surfaceElement(false), ghost, surfaceElement(true),
	}
	out := m.WithoutGhosts()
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	for _, e := range out {
		if e.IsGhost() {
			t.Error("ghost survived")
		}
	}
	if !out[1].IsLastForTile() {
		t.Error("tile terminator lost")
	}

	// A tile consisting only of ghosts keeps a terminator element.
	ghostLast := ghost
	ghostLast.SetLastForTile(true)
	m.Elements = []TileElement{surfaceElement(true), ghostLast}
	out = m.WithoutGhosts()
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if !out[1].IsLastForTile() || out[1].IsGhost() {
		t.Errorf("all-ghost tile not padded: %+v", out[1])
	}
}
