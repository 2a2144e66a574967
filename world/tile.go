package world

// TileElementSize is the fixed encoded size of one tile element.
const TileElementSize = 16

// Tile element kinds, stored in bits 2..5 of the type byte.
const (
	TileElementKindSurface uint8 = iota
	TileElementKindPath
	TileElementKindTrack
	TileElementKindSmallScenery
	TileElementKindEntrance
	TileElementKindWall
	TileElementKindLargeScenery
	TileElementKindBanner
)

const (
	tileElementKindMask uint8 = 0x3C

	// TileElementFlagGhost marks preview elements that never persist.
	TileElementFlagGhost uint8 = 0x10

	// TileElementFlagLastForTile closes the element list of one tile.
	TileElementFlagLastForTile uint8 = 0x80

	// path element Data layout
	pathFlags2QueueBit      = 0x01
	pathFlags2LegacyPathBit = 0x02
)

// TileElement is one 16-byte map element. The four header bytes are
// common to all kinds; the remaining twelve are kind-specific and
// accessed through the typed helpers below.
type TileElement struct {
	Type            uint8
	Flags           uint8
	BaseHeight      uint8
	ClearanceHeight uint8
	Data            [12]byte
}

// Kind returns the element kind from the type byte.
func (e *TileElement) Kind() uint8 { return (e.Type & tileElementKindMask) >> 2 }

// SetKind stores the element kind, preserving the other type bits.
func (e *TileElement) SetKind(kind uint8) {
	e.Type = (e.Type &^ tileElementKindMask) | (kind << 2 & tileElementKindMask)
}

// IsGhost reports whether the element is a preview ghost.
func (e *TileElement) IsGhost() bool { return e.Flags&TileElementFlagGhost != 0 }

// IsLastForTile reports whether the element closes its tile.
func (e *TileElement) IsLastForTile() bool { return e.Flags&TileElementFlagLastForTile != 0 }

// SetLastForTile sets or clears the tile-closing flag.
func (e *TileElement) SetLastForTile(last bool) {
	if last {
		e.Flags |= TileElementFlagLastForTile
	} else {
		e.Flags &^= TileElementFlagLastForTile
	}
}

func (e *TileElement) dataU16(off int) uint16 {
	return uint16(e.Data[off]) | uint16(e.Data[off+1])<<8
}

func (e *TileElement) setDataU16(off int, v uint16) {
	e.Data[off] = byte(v)
	e.Data[off+1] = byte(v >> 8)
}

// Path element accessors. A path either references a modern surface and
// railings pair, or a single legacy path object; the legacy bit in the
// second flags byte selects the interpretation of the surface slot.

// PathSurfaceIndex returns the surface object slot of a path element,
// or the legacy path slot when HasLegacyPath reports true.
func (e *TileElement) PathSurfaceIndex() uint16 { return e.dataU16(0) }

// SetPathSurfaceIndex stores the surface object slot and clears the
// legacy interpretation.
func (e *TileElement) SetPathSurfaceIndex(idx uint16) {
	e.setDataU16(0, idx)
	e.Data[4] &^= pathFlags2LegacyPathBit
}

// SetLegacyPathIndex stores a legacy path object slot.
func (e *TileElement) SetLegacyPathIndex(idx uint16) {
	e.setDataU16(0, idx)
	e.Data[4] |= pathFlags2LegacyPathBit
}

// PathRailingsIndex returns the railings object slot of a path element.
func (e *TileElement) PathRailingsIndex() uint16 { return e.dataU16(2) }

// SetPathRailingsIndex stores the railings object slot.
func (e *TileElement) SetPathRailingsIndex(idx uint16) { e.setDataU16(2, idx) }

// HasLegacyPath reports whether the surface slot references a legacy
// single-object path.
func (e *TileElement) HasLegacyPath() bool { return e.Data[4]&pathFlags2LegacyPathBit != 0 }

// PathIsQueue reports whether the path element is a queue line.
func (e *TileElement) PathIsQueue() bool { return e.Data[4]&pathFlags2QueueBit != 0 }

// SetPathIsQueue sets or clears the queue bit.
func (e *TileElement) SetPathIsQueue(q bool) {
	if q {
		e.Data[4] |= pathFlags2QueueBit
	} else {
		e.Data[4] &^= pathFlags2QueueBit
	}
}

// Track element accessors.

// TrackType returns the track piece type of a track element.
func (e *TileElement) TrackType() uint16 { return e.dataU16(0) }

// TrackRideIndex returns the ride the track element belongs to.
func (e *TileElement) TrackRideIndex() uint16 { return e.dataU16(2) }

// TrackRideType returns the ride type stamped on the track element.
func (e *TileElement) TrackRideType() uint16 { return e.dataU16(4) }

// SetTrackRideType stamps a ride type on the track element.
func (e *TileElement) SetTrackRideType(t uint16) { e.setDataU16(4, t) }

// Direction returns the facing stored in the low bits of the type byte.
func (e *TileElement) Direction() uint8 { return e.Type & 0x03 }

// Entrance element accessors.

// EntranceType returns the entrance kind of an entrance element.
func (e *TileElement) EntranceType() uint8 { return e.Data[0] }

// EntranceSequenceIndex returns the part index of a multi-tile entrance;
// zero marks the centre tile.
func (e *TileElement) EntranceSequenceIndex() uint8 { return e.Data[1] }

// Entrance kinds stored in entrance elements.
const (
	EntranceTypeRideEntrance uint8 = iota
	EntranceTypeRideExit
	EntranceTypeParkEntrance
)

// Map is the tile grid. Elements are stored in reading order, each
// tile's run terminated by the last-for-tile flag.
type Map struct {
	Size     int32
	Elements []TileElement
}

// TileCoords walks the element list and returns the tile coordinates of
// the element at index i, recovered by counting tile terminators.
func (m *Map) TileCoords(i int) (x, y int32) {
	var n int32
	for j := 0; j < i && j < len(m.Elements); j++ {
		if m.Elements[j].IsLastForTile() {
			n++
		}
	}
	return n % m.Size, n / m.Size
}

// WithoutGhosts returns the element list with preview ghosts removed,
// keeping every tile's run terminated. A tile whose elements were all
// ghosts keeps a cleared surface terminator so the grid stays dense.
func (m *Map) WithoutGhosts() []TileElement {
	out := make([]TileElement, 0, len(m.Elements))
	tileStart := len(out)
	for i := range m.Elements {
		e := m.Elements[i]
		last := e.IsLastForTile()
		if !e.IsGhost() {
			e.SetLastForTile(false)
			out = append(out, e)
		}
		if last {
			if len(out) == tileStart {
				// every element of this tile was a ghost
				var pad TileElement
				pad.SetKind(TileElementKindSurface)
				out = append(out, pad)
			}
			out[len(out)-1].SetLastForTile(true)
			tileStart = len(out)
		}
	}
	return out
}
