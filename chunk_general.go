package parkfile

import (
	"fmt"
	"io"

	"github.com/mzki/parkfile/binio"
	"github.com/mzki/parkfile/chunk"
	"github.com/mzki/parkfile/world"
)

func readRideRatingState(r *binio.Reader, rr *world.RideRatingState) {
	rr.AmountOfBrakes = r.Uint16()
	rr.ProximityX = r.Int32()
	rr.ProximityY = r.Int32()
	rr.ProximityZ = r.Int32()
	rr.ProximityStartX = r.Int32()
	rr.ProximityStartY = r.Int32()
	rr.ProximityStartZ = r.Int32()
	rr.CurrentRide = r.Uint16()
	rr.State = r.Uint8()
	rr.ProximityTrackType = r.Uint16()
	rr.ProximityBaseHeight = r.Uint8()
	rr.ProximityTotal = r.Uint16()
	readU16Array(r, rr.ProximityScores[:])
	// the brake count appears a second time; the second occurrence wins
	rr.AmountOfBrakes = r.Uint16()
	rr.AmountOfReversers = r.Uint16()
	rr.StationFlags = r.Uint16()
}

func writeRideRatingState(w *binio.Writer, rr *world.RideRatingState) {
	w.Uint16(rr.AmountOfBrakes)
	w.Int32(rr.ProximityX)
	w.Int32(rr.ProximityY)
	w.Int32(rr.ProximityZ)
	w.Int32(rr.ProximityStartX)
	w.Int32(rr.ProximityStartY)
	w.Int32(rr.ProximityStartZ)
	w.Uint16(rr.CurrentRide)
	w.Uint8(rr.State)
	w.Uint16(rr.ProximityTrackType)
	w.Uint8(rr.ProximityBaseHeight)
	w.Uint16(rr.ProximityTotal)
	writeU16Array(w, rr.ProximityScores[:])
	w.Uint16(rr.AmountOfBrakes)
	w.Uint16(rr.AmountOfReversers)
	w.Uint16(rr.StationFlags)
}

// readGeneralChunk decodes the simulation-wide state. The chunk is
// mandatory; a file without it is rejected.
func (e *Engine) readGeneralChunk(st *world.State) error {
	found, err := chunk.Find(e.rs, chunkGeneral, func(r *binio.Reader) error {
		g := &st.General
		g.GamePaused = r.Uint32()
		g.CurrentTicks = r.Uint32()
		g.MonthTicks = r.Uint16()
		g.MonthsElapsed = r.Int32()

		g.Rand.S0 = r.Uint32()
		g.Rand.S1 = r.Uint32()

		g.GuestInitialHappiness = r.Uint8()
		g.GuestInitialCash = r.Int16()
		g.GuestInitialHunger = r.Uint8()
		g.GuestInitialThirst = r.Uint8()

		g.NextGuestNumber = r.Uint32()
		numSpawns := r.Uint32()
		g.PeepSpawns = g.PeepSpawns[:0]
		for i := uint32(0); i < numSpawns; i++ {
			var sp world.PeepSpawn
			sp.X = r.Int32()
			sp.Y = r.Int32()
			sp.Z = r.Int32()
			sp.Direction = r.Uint8()
			g.PeepSpawns = append(g.PeepSpawns, sp)
		}

		g.LandPrice = r.Int16()
		g.ConstructionRightsPrice = r.Int16()
		g.GrassSceneryTileLoopPosition = r.Uint16()
		g.WidePathTileLoopX = r.Int32()
		g.WidePathTileLoopY = r.Int32()

		readRideRatingState(r, &g.RideRatings)
		return nil
	})
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: general", ErrMissingChunk)
	}
	return nil
}

func (e *Engine) writeGeneralChunk(ws io.WriteSeeker, st *world.State) error {
	return chunk.Write(ws, chunkGeneral, func(w *binio.Writer) error {
		g := &st.General
		w.Uint32(g.GamePaused)
		w.Uint32(g.CurrentTicks)
		w.Uint16(g.MonthTicks)
		w.Int32(g.MonthsElapsed)

		w.Uint32(g.Rand.S0)
		w.Uint32(g.Rand.S1)

		w.Uint8(g.GuestInitialHappiness)
		w.Int16(g.GuestInitialCash)
		w.Uint8(g.GuestInitialHunger)
		w.Uint8(g.GuestInitialThirst)

		w.Uint32(g.NextGuestNumber)
		w.Uint32(uint32(len(g.PeepSpawns)))
		for _, sp := range g.PeepSpawns {
			w.Int32(sp.X)
			w.Int32(sp.Y)
			w.Int32(sp.Z)
			w.Uint8(sp.Direction)
		}

		w.Int16(g.LandPrice)
		w.Int16(g.ConstructionRightsPrice)
		w.Uint16(g.GrassSceneryTileLoopPosition)
		w.Int32(g.WidePathTileLoopX)
		w.Int32(g.WidePathTileLoopY)

		writeRideRatingState(w, &g.RideRatings)
		return nil
	})
}
