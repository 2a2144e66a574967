package parkfile

import (
	"github.com/mzki/parkfile/objects"
)

// ObjectCatalog is what the engine needs to know about installed
// content objects: how legacy footpaths split into surface and railings
// objects, and where packed object payloads live. Implementations sit
// outside this module, typically backed by an object repository.
type ObjectCatalog interface {
	objects.SurfaceResolver

	// HasObject reports whether a modern object identifier is installed.
	HasObject(identifier string) bool

	// HasLegacyObject reports whether a legacy DAT name is installed.
	HasLegacyObject(name string) bool

	// AddObject installs an object payload unpacked from a save file.
	AddObject(gen objects.Generation, identifier string, data []byte) error
}

// PackedObject is one object payload to embed in the save on export.
type PackedObject struct {
	Generation objects.Generation

	// Entry identifies DAT payloads; Identifier identifies modern ones.
	Entry      objects.LegacyEntry
	Identifier string

	Data []byte
}
