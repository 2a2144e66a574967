package parkfile

import (
	"io"

	"github.com/mzki/parkfile/binio"
	"github.com/mzki/parkfile/chunk"
	"github.com/mzki/parkfile/world"
)

// saved view zoom bounds; files may carry values from builds with a
// wider zoom range
const (
	minViewZoom int8 = -3
	maxViewZoom int8 = 3
)

func (e *Engine) readInterfaceChunk(st *world.State) error {
	_, err := chunk.Find(e.rs, chunkInterface, func(r *binio.Reader) error {
		i := &st.Interface
		i.SavedViewX = r.Int32()
		i.SavedViewY = r.Int32()
		zoom := r.Int8()
		if zoom < minViewZoom {
			zoom = minViewZoom
		} else if zoom > maxViewZoom {
			zoom = maxViewZoom
		}
		i.SavedViewZoom = zoom
		i.SavedViewRotation = r.Uint8()
		i.LastEntranceStyle = r.Uint16()
		i.EditorStep = r.Uint8()
		return nil
	})
	return err
}

func (e *Engine) writeInterfaceChunk(ws io.WriteSeeker, st *world.State) error {
	return chunk.Write(ws, chunkInterface, func(w *binio.Writer) error {
		i := &st.Interface
		w.Int32(i.SavedViewX)
		w.Int32(i.SavedViewY)
		w.Int8(i.SavedViewZoom)
		w.Uint8(i.SavedViewRotation)
		w.Uint16(i.LastEntranceStyle)
		w.Uint8(i.EditorStep)
		return nil
	})
}
