package parkfile

import (
	"io"

	"github.com/mzki/parkfile/binio"
	"github.com/mzki/parkfile/chunk"
	"github.com/mzki/parkfile/world"
)

// The cheats chunk is a flat flag sequence with no count; both sides
// must agree on order. A file from a build with fewer toggles ends
// early and the remaining toggles keep their defaults.

func cheatFlags(c *world.Cheats) []*bool {
	return []*bool{
		&c.SandboxMode,
		&c.DisableClearanceChecks,
		&c.DisableSupportLimits,
		&c.ShowAllOperatingModes,
		&c.ShowVehiclesFromOtherTrackTypes,
		&c.UnlockOperatingLimits,
		&c.DisableBrakesFailure,
		&c.DisableAllBreakdowns,
		&c.BuildInPauseMode,
		&c.IgnoreRideIntensity,
		&c.DisableVandalism,
		&c.DisableLittering,
		&c.NeverendingMarketing,
		&c.FreezeWeather,
		&c.DisablePlantAging,
		&c.AllowArbitraryRideTypeChanges,
		&c.DisableRideValueAging,
		&c.IgnoreResearchStatus,
		&c.EnableAllDrawableTrackPieces,
		&c.AllowTrackPlaceInvalidHeights,
	}
}

func (e *Engine) readCheatsChunk(st *world.State) error {
	payload, found, err := chunk.Payload(e.rs, chunkCheats)
	if err != nil || !found {
		return err
	}
	for i, f := range cheatFlags(&st.Cheats) {
		if i >= len(payload) {
			break
		}
		*f = payload[i] != 0
	}
	return nil
}

func (e *Engine) writeCheatsChunk(ws io.WriteSeeker, st *world.State) error {
	return chunk.Write(ws, chunkCheats, func(w *binio.Writer) error {
		for _, f := range cheatFlags(&st.Cheats) {
			w.Bool(*f)
		}
		return nil
	})
}
