package parkfile

import (
	"io"

	"github.com/mzki/parkfile/binio"
	"github.com/mzki/parkfile/chunk"
	"github.com/mzki/parkfile/world"
)

func readNewsItem(r *binio.Reader, it *world.NewsItem) {
	it.Type = r.Uint8()
	it.Flags = r.Uint8()
	it.Assoc = r.Uint32()
	it.Ticks = r.Uint16()
	it.MonthYear = r.Uint16()
	it.Day = r.Uint8()
	it.Text = r.String()
}

func writeNewsItem(w *binio.Writer, it *world.NewsItem) {
	w.Uint8(it.Type)
	w.Uint8(it.Flags)
	w.Uint32(it.Assoc)
	w.Uint16(it.Ticks)
	w.Uint16(it.MonthYear)
	w.Uint8(it.Day)
	w.String(it.Text)
}

func readNewsQueue(r *binio.Reader, max int) []world.NewsItem {
	count := r.Uint32()
	var out []world.NewsItem
	for i := uint32(0); i < count; i++ {
		var it world.NewsItem
		readNewsItem(r, &it)
		// surplus entries beyond capacity are consumed and dropped
		if int(i) < max {
			out = append(out, it)
		}
	}
	return out
}

func writeNewsQueue(w *binio.Writer, items []world.NewsItem, max int) {
	if len(items) > max {
		items = items[:max]
	}
	w.Uint32(uint32(len(items)))
	for i := range items {
		writeNewsItem(w, &items[i])
	}
}

func (e *Engine) readNotificationsChunk(st *world.State) error {
	_, err := chunk.Find(e.rs, chunkNotifications, func(r *binio.Reader) error {
		st.News.Recent = readNewsQueue(r, world.MaxNewsRecent)
		st.News.Archived = readNewsQueue(r, world.MaxNewsArchived)
		return nil
	})
	return err
}

func (e *Engine) writeNotificationsChunk(ws io.WriteSeeker, st *world.State) error {
	return chunk.Write(ws, chunkNotifications, func(w *binio.Writer) error {
		writeNewsQueue(w, st.News.Recent, world.MaxNewsRecent)
		writeNewsQueue(w, st.News.Archived, world.MaxNewsArchived)
		return nil
	})
}
