package parkfile

import (
	"io"
	"time"

	"github.com/mzki/parkfile/binio"
	"github.com/mzki/parkfile/chunk"
	"github.com/mzki/parkfile/infra/buildinfo"
)

// Authoring holds provenance metadata read from a save file. It is
// informational only; nothing else in the file depends on it.
type Authoring struct {
	EngineVersion string
	Authors       []string
	Notes         string
	DateStarted   uint64
	DateModified  uint64
}

// writeAuthoringChunk records which engine build produced the file and
// when. The chunk is write-only during a normal load; ReadAuthoring
// exists for tooling that wants the provenance back.
func (e *Engine) writeAuthoringChunk(ws io.WriteSeeker) error {
	return chunk.Write(ws, chunkAuthoring, func(w *binio.Writer) error {
		w.String(buildinfo.FullVersion())
		w.Uint32(0)  // author list
		w.String("") // custom notes that can be attached to the save
		now := uint64(time.Now().Unix())
		w.Uint64(now) // date started
		w.Uint64(now) // date modified
		return nil
	})
}

// ReadAuthoring returns the provenance chunk of the loaded file, or
// found=false when the file carries none.
func (e *Engine) ReadAuthoring() (a Authoring, found bool, err error) {
	if e.rs == nil {
		return Authoring{}, false, ErrNotLoaded
	}
	found, err = chunk.Find(e.rs, chunkAuthoring, func(r *binio.Reader) error {
		a.EngineVersion = r.String()
		numAuthors := r.Uint32()
		for i := uint32(0); i < numAuthors; i++ {
			a.Authors = append(a.Authors, r.String())
		}
		a.Notes = r.String()
		a.DateStarted = r.Uint64()
		a.DateModified = r.Uint64()
		return nil
	})
	return a, found, err
}
