package parkfile

import (
	"io"

	"github.com/mzki/parkfile/binio"
	"github.com/mzki/parkfile/chunk"
	"github.com/mzki/parkfile/objects"
	"github.com/mzki/parkfile/world"
)

// The restricted scenery list stores object types on the wire so every
// category can be restricted eventually, while the in-memory selection
// still uses the narrower scenery classification.

func (e *Engine) readRestrictedObjectsChunk(st *world.State) error {
	_, err := chunk.Find(e.rs, chunkRestrictedObjects, func(r *binio.Reader) error {
		count := r.Uint32()
		st.RestrictedScenery = st.RestrictedScenery[:0]
		for i := uint32(0); i < count; i++ {
			objType := objects.Type(r.Uint16())
			entry := r.Uint16()
			st.RestrictedScenery = append(st.RestrictedScenery, world.ScenerySelection{
				SceneryType: uint8(objects.SceneryTypeFromObjectType(objType)),
				EntryIndex:  entry,
			})
		}
		return nil
	})
	return err
}

func (e *Engine) writeRestrictedObjectsChunk(ws io.WriteSeeker, st *world.State) error {
	return chunk.Write(ws, chunkRestrictedObjects, func(w *binio.Writer) error {
		w.Uint32(uint32(len(st.RestrictedScenery)))
		for _, sel := range st.RestrictedScenery {
			w.Uint16(uint16(objects.ObjectTypeFromSceneryType(objects.SceneryType(sel.SceneryType))))
			w.Uint16(sel.EntryIndex)
		}
		return nil
	})
}
