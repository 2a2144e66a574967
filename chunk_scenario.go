package parkfile

import (
	"io"

	"github.com/mzki/parkfile/binio"
	"github.com/mzki/parkfile/chunk"
	"github.com/mzki/parkfile/world"
)

func (e *Engine) readScenarioChunk(st *world.State) error {
	version := e.hdr.TargetVersion
	locale := e.opts.Locale()
	_, err := chunk.Find(e.rs, chunkScenario, func(r *binio.Reader) error {
		sc := &st.Scenario
		sc.Category = r.Uint8()
		sc.Name = readStringTable(r, locale)
		sc.ParkName = readStringTable(r, locale)
		sc.Details = readStringTable(r, locale)

		sc.Objective.Type = r.Uint8()
		sc.Objective.Year = r.Uint8()
		sc.Objective.NumGuests = r.Uint16()
		sc.Objective.Currency = r.Int64()

		sc.ParkRatingWarningDays = r.Uint16()

		sc.CompletedCompanyValue = r.Int64()
		// Writers always emit a name here; for an open or failed
		// objective it is an empty placeholder.
		sc.CompletedBy = r.String()
		if sc.CompletedCompanyValue == world.Money64Undefined ||
			sc.CompletedCompanyValue == world.CompanyValueOnFailedObjective {
			sc.CompletedBy = ""
		}

		earlyCompletion := r.Bool()
		if e.opts.NetworkClient {
			sc.AllowEarlyCompletion = earlyCompletion
		}

		if version >= 1 {
			sc.FileName = r.String()
		}
		return nil
	})
	return err
}

func (e *Engine) writeScenarioChunk(ws io.WriteSeeker, st *world.State) error {
	locale := e.opts.Locale()
	return chunk.Write(ws, chunkScenario, func(w *binio.Writer) error {
		sc := &st.Scenario
		w.Uint8(sc.Category)
		writeStringTable(w, locale, sc.Name)
		writeStringTable(w, locale, sc.ParkName)
		writeStringTable(w, locale, sc.Details)

		w.Uint8(sc.Objective.Type)
		w.Uint8(sc.Objective.Year)
		w.Uint16(sc.Objective.NumGuests)
		w.Int64(sc.Objective.Currency)

		w.Uint16(sc.ParkRatingWarningDays)

		w.Int64(sc.CompletedCompanyValue)
		if sc.CompletedCompanyValue == world.Money64Undefined ||
			sc.CompletedCompanyValue == world.CompanyValueOnFailedObjective {
			w.String("")
		} else {
			w.String(sc.CompletedBy)
		}

		w.Bool(sc.AllowEarlyCompletion)
		w.String(sc.FileName)
		return nil
	})
}

// ScenarioSummary is the light-weight scenario listing extracted
// without importing the whole file.
type ScenarioSummary struct {
	Category      uint8
	Name          string
	ParkName      string
	Details       string
	ObjectiveType uint8
	ObjectiveYear uint8
	NumGuests     uint16
	Currency      int64

	// SourceCategory groups the scenario in the list; files from this
	// engine always land in the community bucket.
	SourceCategory uint8
}

// SummarySourceOther is the community bucket of the scenario list.
const SummarySourceOther uint8 = 3

// ReadScenarioSummary reads just enough of the loaded file to index it
// in a scenario list.
func (e *Engine) ReadScenarioSummary() (ScenarioSummary, error) {
	if e.rs == nil {
		return ScenarioSummary{}, ErrNotLoaded
	}
	locale := e.opts.Locale()
	var sum ScenarioSummary
	found, err := chunk.FindPrefix(e.rs, chunkScenario, func(r *binio.Reader) error {
		sum.Category = r.Uint8()
		sum.Name = readStringTable(r, locale)
		sum.ParkName = readStringTable(r, locale)
		sum.Details = readStringTable(r, locale)
		sum.ObjectiveType = r.Uint8()
		sum.ObjectiveYear = r.Uint8()
		sum.NumGuests = r.Uint16()
		sum.Currency = r.Int64()
		sum.SourceCategory = SummarySourceOther
		return nil
	})
	if err != nil {
		return ScenarioSummary{}, err
	}
	if !found {
		return ScenarioSummary{}, ErrMissingChunk
	}
	return sum, nil
}
