package world

// Cheats is the per-park cheat toggle block. It serializes as a flat
// sequence of flags, so field order here is load-bearing.
type Cheats struct {
	SandboxMode                     bool
	DisableClearanceChecks          bool
	DisableSupportLimits            bool
	ShowAllOperatingModes           bool
	ShowVehiclesFromOtherTrackTypes bool
	UnlockOperatingLimits           bool
	DisableBrakesFailure            bool
	DisableAllBreakdowns            bool
	BuildInPauseMode                bool
	IgnoreRideIntensity             bool
	DisableVandalism                bool
	DisableLittering                bool
	NeverendingMarketing            bool
	FreezeWeather                   bool
	DisablePlantAging               bool
	AllowArbitraryRideTypeChanges   bool
	DisableRideValueAging           bool
	IgnoreResearchStatus            bool
	EnableAllDrawableTrackPieces    bool
	AllowTrackPlaceInvalidHeights   bool
}

// DefaultCheats returns the cheat block with everything switched off.
func DefaultCheats() Cheats {
	return Cheats{}
}
