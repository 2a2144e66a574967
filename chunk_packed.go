package parkfile

import (
	"fmt"
	"io"

	"github.com/mzki/parkfile/binio"
	"github.com/mzki/parkfile/chunk"
	"github.com/mzki/parkfile/objects"
	"github.com/mzki/parkfile/util/log"
)

// packed object kinds on the wire. Unrelated to the object descriptor
// kinds of the objects chunk.
const (
	packedDescriptorDAT     uint8 = 0
	packedDescriptorParkObj uint8 = 1
)

// readPackedObjectsChunk unpacks embedded object payloads into the
// catalog. Objects already installed are left alone. Without a catalog
// the chunk is skipped entirely.
func (e *Engine) readPackedObjectsChunk() error {
	if e.catalog == nil {
		return nil
	}
	_, err := chunk.Find(e.rs, chunkPackedObjects, func(r *binio.Reader) error {
		numObjects := r.Uint32()
		for i := uint32(0); i < numObjects; i++ {
			kind := r.Uint8()
			switch kind {
			case packedDescriptorDAT:
				entry := readLegacyEntry(r)
				size := r.Uint32()
				data := r.Bytes(int(size))
				if err := r.Err(); err != nil {
					return err
				}
				name := entry.NameString()
				if !e.catalog.HasLegacyObject(name) {
					if err := e.catalog.AddObject(objects.GenerationDAT, name, data); err != nil {
						return err
					}
				}

			case packedDescriptorParkObj:
				identifier := r.String()
				size := r.Uint32()
				data := r.Bytes(int(size))
				if err := r.Err(); err != nil {
					return err
				}
				if !e.catalog.HasObject(identifier) {
					if err := e.catalog.AddObject(objects.GenerationJSON, identifier, data); err != nil {
						return err
					}
				}

			default:
				return fmt.Errorf("parkfile: unsupported packed object kind %d", kind)
			}
		}
		return nil
	})
	return err
}

// writePackedObjectsChunk embeds the export object payloads. No chunk
// is emitted when there is nothing to pack.
func (e *Engine) writePackedObjectsChunk(ws io.WriteSeeker) error {
	packable := make([]PackedObject, 0, len(e.ExportObjects))
	for _, po := range e.ExportObjects {
		switch po.Generation {
		case objects.GenerationDAT, objects.GenerationJSON:
			packable = append(packable, po)
		default:
			log.Infof("parkfile: %s not packed: unsupported kind", po.Identifier)
		}
	}
	if len(packable) == 0 {
		return nil
	}

	return chunk.Write(ws, chunkPackedObjects, func(w *binio.Writer) error {
		w.Uint32(uint32(len(packable)))
		for _, po := range packable {
			if po.Generation == objects.GenerationDAT {
				w.Uint8(packedDescriptorDAT)
				writeLegacyEntry(w, po.Entry)
			} else {
				w.Uint8(packedDescriptorParkObj)
				w.String(po.Identifier)
			}
			w.Uint32(uint32(len(po.Data)))
			w.Bytes(po.Data)
		}
		return nil
	})
}
