package parkfile

import "github.com/mzki/parkfile/world"

// Tile and height units of the world coordinate space.
const (
	coordsPerTile = 32
	coordsPerStep = 8
)

// applyImportFixups repairs state decoded from older revisions and
// recomputes the derived fields once all chunks are in.
func applyImportFixups(version uint32, st *world.State) {
	if version < 4 {
		// Track elements gained their own ride-type field in revision
		// 4; older files carry zeroes there, so the type is stamped
		// back from the owning ride.
		updateTrackElementRideTypes(st)
	}
	updateParkEntranceLocations(st)
	st.Park.InitialCash = st.Park.Cash
}

func updateTrackElementRideTypes(st *world.State) {
	byID := make(map[uint16]*world.Ride, len(st.Rides))
	for _, ride := range st.Rides {
		byID[ride.ID] = ride
	}
	for i := range st.Map.Elements {
		el := &st.Map.Elements[i]
		if el.Kind() != world.TileElementKindTrack {
			continue
		}
		if ride, ok := byID[el.TrackRideIndex()]; ok {
			el.SetTrackRideType(ride.Type)
		}
	}
}

func updateParkEntranceLocations(st *world.State) {
	st.Park.Entrances = st.Park.Entrances[:0]
	var tile int32
	for i := range st.Map.Elements {
		el := &st.Map.Elements[i]
		if el.Kind() == world.TileElementKindEntrance &&
			el.EntranceType() == world.EntranceTypeParkEntrance &&
			el.EntranceSequenceIndex() == 0 && !el.IsGhost() {
			st.Park.Entrances = append(st.Park.Entrances, world.EntranceLocation{
				X:         (tile % st.Map.Size) * coordsPerTile,
				Y:         (tile / st.Map.Size) * coordsPerTile,
				Z:         int32(el.BaseHeight) * coordsPerStep,
				Direction: el.Direction(),
			})
		}
		if el.IsLastForTile() {
			tile++
		}
	}
}
