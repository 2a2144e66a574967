package parkfile

import (
	"io"

	"github.com/mzki/parkfile/binio"
	"github.com/mzki/parkfile/chunk"
	"github.com/mzki/parkfile/world"
)

func readResearchItem(r *binio.Reader, it *world.ResearchItem) {
	it.Type = r.Uint8()
	it.BaseRideType = r.Uint16()
	it.EntryIndex = r.Uint16()
	it.Flags = r.Uint8()
	it.Category = r.Uint8()
}

func writeResearchItem(w *binio.Writer, it *world.ResearchItem) {
	w.Uint8(it.Type)
	w.Uint16(it.BaseRideType)
	w.Uint16(it.EntryIndex)
	w.Uint8(it.Flags)
	w.Uint8(it.Category)
}

// optional items carry a presence flag before the payload
func readOptionalResearchItem(r *binio.Reader) *world.ResearchItem {
	if !r.Bool() {
		return nil
	}
	var it world.ResearchItem
	readResearchItem(r, &it)
	return &it
}

func writeOptionalResearchItem(w *binio.Writer, it *world.ResearchItem) {
	if it == nil {
		w.Bool(false)
		return
	}
	w.Bool(true)
	writeResearchItem(w, it)
}

func readResearchItems(r *binio.Reader) []world.ResearchItem {
	count := r.Uint32()
	items := make([]world.ResearchItem, 0, count)
	for i := uint32(0); i < count; i++ {
		var it world.ResearchItem
		readResearchItem(r, &it)
		items = append(items, it)
	}
	return items
}

func writeResearchItems(w *binio.Writer, items []world.ResearchItem) {
	w.Uint32(uint32(len(items)))
	for i := range items {
		writeResearchItem(w, &items[i])
	}
}

func (e *Engine) readResearchChunk(st *world.State) error {
	_, err := chunk.Find(e.rs, chunkResearch, func(r *binio.Reader) error {
		rs := &st.Research
		rs.FundingLevel = r.Uint8()
		rs.Priorities = r.Uint8()
		rs.ProgressStage = r.Uint8()
		rs.Progress = r.Uint16()
		rs.ExpectedMonth = r.Uint8()
		rs.ExpectedDay = r.Uint8()
		rs.LastItem = readOptionalResearchItem(r)
		rs.NextItem = readOptionalResearchItem(r)
		rs.Uninvented = readResearchItems(r)
		rs.Invented = readResearchItems(r)
		return nil
	})
	return err
}

func (e *Engine) writeResearchChunk(ws io.WriteSeeker, st *world.State) error {
	return chunk.Write(ws, chunkResearch, func(w *binio.Writer) error {
		rs := &st.Research
		w.Uint8(rs.FundingLevel)
		w.Uint8(rs.Priorities)
		w.Uint8(rs.ProgressStage)
		w.Uint16(rs.Progress)
		w.Uint8(rs.ExpectedMonth)
		w.Uint8(rs.ExpectedDay)
		writeOptionalResearchItem(w, rs.LastItem)
		writeOptionalResearchItem(w, rs.NextItem)
		writeResearchItems(w, rs.Uninvented)
		writeResearchItems(w, rs.Invented)
		return nil
	})
}
