package parkfile

import (
	"fmt"
	"io"

	"github.com/mzki/parkfile/binio"
	"github.com/mzki/parkfile/chunk"
	"github.com/mzki/parkfile/objects"
	"github.com/mzki/parkfile/util/log"
	"github.com/mzki/parkfile/world"
)

// object descriptor kinds on the wire
const (
	objectDescriptorNone uint8 = 0
	objectDescriptorDAT  uint8 = 1
	objectDescriptorJSON uint8 = 2
)

func readLegacyEntry(r *binio.Reader) objects.LegacyEntry {
	var e objects.LegacyEntry
	e.Flags = r.Uint32()
	r.Read(e.Name[:])
	e.Checksum = r.Uint32()
	return e
}

func writeLegacyEntry(w *binio.Writer, e objects.LegacyEntry) {
	w.Uint32(e.Flags)
	w.Bytes(e.Name[:])
	w.Uint32(e.Checksum)
}

// readObjectsChunk decodes the object dependency list. For revisions
// that still stored single-object footpaths, each legacy path splits
// into surface and railings objects appended to their own categories,
// deduplicated by name, and the slot translation is kept for the tiles
// chunk to rewrite path elements.
func (e *Engine) readObjectsChunk() error {
	version := e.hdr.TargetVersion
	var surfaceCount, railingsCount objects.EntryIndex

	_, err := chunk.Find(e.rs, chunkObjects, func(r *binio.Reader) error {
		numSubLists := r.Uint16()
		for i := uint16(0); i < numSubLists; i++ {
			objectType := objects.Type(r.Uint16())
			subListSize := r.Uint32()
			for j := uint32(0); j < subListSize; j++ {
				index := objects.EntryIndex(j)
				kind := r.Uint8()
				switch kind {
				case objectDescriptorNone:
					// vacant slot

				case objectDescriptorDAT:
					entry := readLegacyEntry(r)
					desc := objects.FromLegacyEntry(entry)
					if version <= 2 && entry.Type() == objects.TypePaths {
						if m := objects.ResolveFootpathMapping(desc, e.resolver()); m != nil {
							e.mapLegacyFootpath(&surfaceCount, &railingsCount, index, m)
							continue
						}
					}
					e.Required.SetObject(desc.Type, index, desc)

				case objectDescriptorJSON:
					identifier := objects.MapToCurrentIdentifier(r.String())
					objVersion := r.String()
					desc := objects.FromIdentifier(objectType, identifier, objVersion)
					if version <= 2 {
						if m := objects.ResolveFootpathMapping(desc, e.resolver()); m != nil {
							e.mapLegacyFootpath(&surfaceCount, &railingsCount, index, m)
							continue
						}
					}
					e.Required.SetObject(objectType, index, desc)

				default:
					return fmt.Errorf("parkfile: unknown object descriptor kind %d", kind)
				}
			}
		}
		return nil
	})
	return err
}

func (e *Engine) resolver() objects.SurfaceResolver {
	if e.catalog == nil {
		return nil
	}
	return e.catalog
}

// mapLegacyFootpath appends the mapping's surface, queue surface and
// railings objects to the required list, reusing slots already claimed
// by an earlier path that mapped to the same object.
func (e *Engine) mapLegacyFootpath(surfaceCount, railingsCount *objects.EntryIndex, pathIndex objects.EntryIndex, m *objects.FootpathMapping) {
	if int(pathIndex) >= len(e.pathToSurfaceMap) {
		log.Debugf("parkfile: legacy path slot %d out of range, mapping skipped", pathIndex)
		return
	}

	idx := e.Required.Find(objects.TypeFootpathSurface, m.NormalSurface)
	if idx == objects.EntryIndexNull {
		idx = *surfaceCount
		e.Required.SetObject(objects.TypeFootpathSurface, idx,
			objects.FromIdentifier(objects.TypeFootpathSurface, m.NormalSurface, ""))
		*surfaceCount++
	}
	e.pathToSurfaceMap[pathIndex] = idx

	idx = e.Required.Find(objects.TypeFootpathSurface, m.QueueSurface)
	if idx == objects.EntryIndexNull {
		idx = *surfaceCount
		e.Required.SetObject(objects.TypeFootpathSurface, idx,
			objects.FromIdentifier(objects.TypeFootpathSurface, m.QueueSurface, ""))
		*surfaceCount++
	}
	e.pathToQueueSurfaceMap[pathIndex] = idx

	idx = e.Required.Find(objects.TypeFootpathRailings, m.Railings)
	if idx == objects.EntryIndexNull {
		idx = *railingsCount
		e.Required.SetObject(objects.TypeFootpathRailings, idx,
			objects.FromIdentifier(objects.TypeFootpathRailings, m.Railings, ""))
		*railingsCount++
	}
	e.pathToRailingsMap[pathIndex] = idx
}

// writeObjectsChunk emits the engine's object list, one sub list per
// category with vacant slots preserved.
func (e *Engine) writeObjectsChunk(ws io.WriteSeeker, _ *world.State) error {
	return chunk.Write(ws, chunkObjects, func(w *binio.Writer) error {
		w.Uint16(uint16(objects.TypeCount))
		for t := objects.Type(0); t < objects.TypeCount; t++ {
			size := e.Required.Size(t)
			w.Uint16(uint16(t))
			w.Uint32(uint32(size))
			for j := 0; j < size; j++ {
				d := e.Required.Object(t, objects.EntryIndex(j))
				switch {
				case d == nil:
					w.Uint8(objectDescriptorNone)
				case d.Generation == objects.GenerationJSON:
					w.Uint8(objectDescriptorJSON)
					w.String(d.Identifier)
					w.String("") // reserved for version
				default:
					w.Uint8(objectDescriptorDAT)
					writeLegacyEntry(w, d.Entry)
				}
			}
		}
		return nil
	})
}
