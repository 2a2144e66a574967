package parkfile

import (
	"fmt"
	"io"

	"github.com/mzki/parkfile/binio"
	"github.com/mzki/parkfile/chunk"
	"github.com/mzki/parkfile/util/log"
	"github.com/mzki/parkfile/world"
)

// The first revision stored banners as a dense array, the slot implied
// by position; later revisions store the slot explicitly so vacant
// slots cost nothing.

func readBanner(r *binio.Reader, version uint32, b *world.Banner) {
	if version >= 1 {
		b.ID = r.Uint16()
	}
	b.Type = r.Uint16()
	b.Flags = r.Uint8()
	b.Text = r.String()
	b.Colour = r.Uint8()
	b.RideIndex = r.Uint16()
	b.TextColour = r.Uint8()
	b.PositionX = r.Int32()
	b.PositionY = r.Int32()
}

func writeBanner(w *binio.Writer, b *world.Banner) {
	w.Uint16(b.ID)
	w.Uint16(b.Type)
	w.Uint8(b.Flags)
	w.String(b.Text)
	w.Uint8(b.Colour)
	w.Uint16(b.RideIndex)
	w.Uint8(b.TextColour)
	w.Int32(b.PositionX)
	w.Int32(b.PositionY)
}

func (e *Engine) readBannersChunk(st *world.State) error {
	version := e.hdr.TargetVersion
	_, err := chunk.Find(e.rs, chunkBanners, func(r *binio.Reader) error {
		count := r.Uint32()
		st.Banners.Reset()
		for i := uint32(0); i < count; i++ {
			var b world.Banner
			readBanner(r, version, &b)
			if version == 0 {
				b.ID = uint16(i)
			}
			slot := st.Banners.GetOrCreate(b.ID)
			if slot == nil {
				// The dense form has no explicit ids; positions past
				// the banner capacity are dropped rather than fatal.
				if version == 0 {
					log.Debugf("parkfile: dropping banner at position %d, over capacity", i)
					continue
				}
				return fmt.Errorf("parkfile: invalid banner index %d", b.ID)
			}
			*slot = b
		}
		return nil
	})
	return err
}

func (e *Engine) writeBannersChunk(ws io.WriteSeeker, st *world.State) error {
	return chunk.Write(ws, chunkBanners, func(w *binio.Writer) error {
		w.Uint32(uint32(st.Banners.Count()))
		for i := uint16(0); i < world.MaxBanners; i++ {
			if b := st.Banners.Get(i); b != nil {
				writeBanner(w, b)
			}
		}
		return nil
	})
}
