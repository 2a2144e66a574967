package world

// Legacy ride-use bitmap capacities.
const (
	LegacyMaxRidesInPark      = 255
	LegacyMaxRideObjects      = 128
	LegacyRidesBitmapSize     = 32
	LegacyRideTypesBitmapSize = 16
)

// RideUseHistories tracks, per guest, which rides and ride types the
// guest has been on. Stored beside the entities rather than on them so
// the per-guest lists can grow without a fixed cap.
type RideUseHistories struct {
	rides     map[uint16][]uint16
	rideTypes map[uint16][]uint16
}

// Reset drops all histories.
func (h *RideUseHistories) Reset() {
	h.rides = make(map[uint16][]uint16)
	h.rideTypes = make(map[uint16][]uint16)
}

// SetRides replaces the ride history of one guest.
func (h *RideUseHistories) SetRides(guest uint16, rides []uint16) {
	if h.rides == nil {
		h.rides = make(map[uint16][]uint16)
	}
	h.rides[guest] = rides
}

// Rides returns the ride history of one guest, nil when none recorded.
func (h *RideUseHistories) Rides(guest uint16) []uint16 {
	return h.rides[guest]
}

// SetRideTypes replaces the ride-type history of one guest.
func (h *RideUseHistories) SetRideTypes(guest uint16, types []uint16) {
	if h.rideTypes == nil {
		h.rideTypes = make(map[uint16][]uint16)
	}
	h.rideTypes[guest] = types
}

// RideTypes returns the ride-type history of one guest.
func (h *RideUseHistories) RideTypes(guest uint16) []uint16 {
	return h.rideTypes[guest]
}

// RidesFromBitmap expands the legacy 32-byte rides-been-on bitmap into
// an id list.
func RidesFromBitmap(bm [LegacyRidesBitmapSize]uint8) []uint16 {
	var out []uint16
	for i := uint16(0); i < LegacyMaxRidesInPark; i++ {
		if bm[i/8]&(1<<(i%8)) != 0 {
			out = append(out, i)
		}
	}
	return out
}

// RideTypesFromBitmap expands the legacy 16-byte ride-types-been-on
// bitmap into an entry index list.
func RideTypesFromBitmap(bm [LegacyRideTypesBitmapSize]uint8) []uint16 {
	var out []uint16
	for i := uint16(0); i < LegacyMaxRideObjects; i++ {
		if bm[i/8]&(1<<(i%8)) != 0 {
			out = append(out, i)
		}
	}
	return out
}
