package parkfile

import (
	"fmt"
	"io"

	"github.com/mzki/parkfile/binio"
	"github.com/mzki/parkfile/chunk"
	"github.com/mzki/parkfile/objects"
	"github.com/mzki/parkfile/world"
)

func readTileElement(r *binio.Reader, el *world.TileElement) {
	el.Type = r.Uint8()
	el.Flags = r.Uint8()
	el.BaseHeight = r.Uint8()
	el.ClearanceHeight = r.Uint8()
	r.Read(el.Data[:])
}

func writeTileElement(w *binio.Writer, el *world.TileElement) {
	w.Uint8(el.Type)
	w.Uint8(el.Flags)
	w.Uint8(el.BaseHeight)
	w.Uint8(el.ClearanceHeight)
	w.Bytes(el.Data[:])
}

// readTilesChunk decodes the tile map. The chunk is mandatory. Path
// elements still referencing legacy path objects are rewritten to the
// split surface and railings slots recorded by the objects chunk.
func (e *Engine) readTilesChunk(st *world.State) error {
	found, err := chunk.Find(e.rs, chunkTiles, func(r *binio.Reader) error {
		st.Map.Size = r.Int32()
		r.Int32() // y size, always equal to x

		numElements := r.Uint32()
		st.Map.Elements = make([]world.TileElement, numElements)
		for i := range st.Map.Elements {
			readTileElement(r, &st.Map.Elements[i])
		}

		for i := range st.Map.Elements {
			el := &st.Map.Elements[i]
			if el.Kind() != world.TileElementKindPath || !el.HasLegacyPath() {
				continue
			}
			idx := el.PathSurfaceIndex()
			if idx >= objects.MaxPathObjects || e.pathToRailingsMap[idx] == objects.EntryIndexNull {
				continue
			}
			if el.PathIsQueue() {
				el.SetPathSurfaceIndex(e.pathToQueueSurfaceMap[idx])
			} else {
				el.SetPathSurfaceIndex(e.pathToSurfaceMap[idx])
			}
			el.SetPathRailingsIndex(e.pathToRailingsMap[idx])
		}
		return nil
	})
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: tiles", ErrMissingChunk)
	}
	return nil
}

func (e *Engine) writeTilesChunk(ws io.WriteSeeker, st *world.State) error {
	return chunk.Write(ws, chunkTiles, func(w *binio.Writer) error {
		w.Int32(st.Map.Size) // x
		w.Int32(st.Map.Size) // y

		elements := st.Map.WithoutGhosts()
		w.Uint32(uint32(len(elements)))
		for i := range elements {
			writeTileElement(w, &elements[i])
		}
		return nil
	})
}
