// Package objects models references to game content objects as they
// appear in the park save container: the fixed-width legacy binary entry,
// the namespaced string identifier, and the per-category required-object
// list a save file depends on.
package objects

import (
	"strings"
)

// Type is an object category. Slot indices are scoped per category.
type Type uint16

const (
	TypeRide Type = iota
	TypeSmallScenery
	TypeLargeScenery
	TypeWalls
	TypeBanners
	TypePaths
	TypePathBits
	TypeSceneryGroup
	TypeParkEntrance
	TypeWater
	TypeScenarioText
	TypeTerrainSurface
	TypeTerrainEdge
	TypeStation
	TypeMusic
	TypeFootpathSurface
	TypeFootpathRailings

	TypeCount
)

// EntryIndex is a slot index inside one category of the object list.
// The index itself is the in-game reference used by tiles, rides and
// entities, so slots never compact.
type EntryIndex = uint16

// EntryIndexNull marks an unresolved or absent slot reference.
const EntryIndexNull EntryIndex = 0xFFFF

// MaxPathObjects is the slot capacity of the legacy path category,
// and therefore the size of the footpath migration mapping arrays.
const MaxPathObjects = 16

// LegacyEntry is the fixed 16-byte binary object reference used before
// namespaced identifiers: flags, an 8-byte space-padded name and a
// checksum over the object data.
type LegacyEntry struct {
	Flags    uint32
	Name     [8]byte
	Checksum uint32
}

// legacy entry flags carry the object type in the low nibble.
const legacyTypeMask = 0x0F

// Type returns the object category encoded in the entry flags.
func (e LegacyEntry) Type() Type { return Type(e.Flags & legacyTypeMask) }

// NameString returns the raw 8-character name, trailing padding trimmed.
func (e LegacyEntry) NameString() string {
	return strings.TrimRight(string(e.Name[:]), " ")
}

// SetName stores s as the space-padded 8-byte name.
func (e *LegacyEntry) SetName(s string) {
	for i := range e.Name {
		if i < len(s) {
			e.Name[i] = s[i]
		} else {
			e.Name[i] = ' '
		}
	}
}

// Generation tells which reference form a descriptor carries.
type Generation uint8

const (
	GenerationDAT  Generation = iota // legacy binary entry
	GenerationJSON                   // namespaced string identifier
)

// Descriptor is a tagged reference to one content object. It lives only
// for the duration of a load or save; the object list owns the slots.
type Descriptor struct {
	Generation Generation
	Type       Type

	// DAT form
	Entry LegacyEntry

	// JSON form
	Identifier string
	Version    string
}

// FromLegacyEntry builds a descriptor around a binary entry.
func FromLegacyEntry(e LegacyEntry) Descriptor {
	return Descriptor{Generation: GenerationDAT, Type: e.Type(), Entry: e}
}

// FromIdentifier builds a descriptor around a namespaced identifier.
func FromIdentifier(t Type, identifier, version string) Descriptor {
	return Descriptor{Generation: GenerationJSON, Type: t, Identifier: identifier, Version: version}
}

// Name returns the comparable name of the reference: the trimmed binary
// name for DAT descriptors, the identifier for JSON ones.
func (d Descriptor) Name() string {
	if d.Generation == GenerationDAT {
		return d.Entry.NameString()
	}
	return d.Identifier
}

// List is the per-category ordered set of object descriptors a save file
// depends on. Slots may be empty; empty slots round-trip as empty and
// populated slots keep their exact index.
type List struct {
	sub [TypeCount][]*Descriptor
}

// SetObject places d into the given slot of its category, growing the
// slot array as needed. Intermediate slots stay empty.
func (l *List) SetObject(t Type, index EntryIndex, d Descriptor) {
	if t >= TypeCount {
		return
	}
	for len(l.sub[t]) <= int(index) {
		l.sub[t] = append(l.sub[t], nil)
	}
	dd := d
	l.sub[t][index] = &dd
}

// SetLegacyObject places a binary entry into the category its flags name.
func (l *List) SetLegacyObject(index EntryIndex, e LegacyEntry) {
	l.SetObject(e.Type(), index, FromLegacyEntry(e))
}

// Object returns the descriptor at the given slot, or nil for an empty
// or out-of-range slot.
func (l *List) Object(t Type, index EntryIndex) *Descriptor {
	if t >= TypeCount || int(index) >= len(l.sub[t]) {
		return nil
	}
	return l.sub[t][index]
}

// Find returns the slot index of the descriptor with the given name in
// the category, or EntryIndexNull when absent.
func (l *List) Find(t Type, name string) EntryIndex {
	if t >= TypeCount {
		return EntryIndexNull
	}
	for i, d := range l.sub[t] {
		if d != nil && d.Name() == name {
			return EntryIndex(i)
		}
	}
	return EntryIndexNull
}

// Count returns the number of populated slots across every category.
func (l *List) Count() int {
	n := 0
	for _, sub := range l.sub {
		for _, d := range sub {
			if d != nil {
				n++
			}
		}
	}
	return n
}

// Size returns the slot count of the category, including empty slots.
func (l *List) Size(t Type) int {
	if t >= TypeCount {
		return 0
	}
	return len(l.sub[t])
}

// SceneryType is the scenery-window classification used by the
// restricted-scenery list. It is narrower than Type; conversion happens
// at the chunk boundary.
type SceneryType uint8

const (
	ScenerySmall SceneryType = iota
	SceneryPathItem
	SceneryWall
	SceneryLarge
	SceneryBanner
)

// SceneryTypeFromObjectType converts an object category to its scenery
// classification. Non-scenery categories map to ScenerySmall.
func SceneryTypeFromObjectType(t Type) SceneryType {
	switch t {
	case TypeSmallScenery:
		return ScenerySmall
	case TypePathBits:
		return SceneryPathItem
	case TypeWalls:
		return SceneryWall
	case TypeLargeScenery:
		return SceneryLarge
	case TypeBanners:
		return SceneryBanner
	default:
		return ScenerySmall
	}
}

// ObjectTypeFromSceneryType is the inverse of SceneryTypeFromObjectType.
func ObjectTypeFromSceneryType(s SceneryType) Type {
	switch s {
	case ScenerySmall:
		return TypeSmallScenery
	case SceneryPathItem:
		return TypePathBits
	case SceneryWall:
		return TypeWalls
	case SceneryLarge:
		return TypeLargeScenery
	case SceneryBanner:
		return TypeBanners
	default:
		return TypeSmallScenery
	}
}
