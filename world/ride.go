package world

// Ride capacities.
const (
	MaxRides            = 1000
	MaxStations         = 4
	MaxTrackColours     = 4
	MaxVehicleColours   = 32
	MaxVehiclesPerRide  = 32
	RidePriceCount      = 2
	CustomerHistorySize = 10
	DowntimeHistorySize = 8
)

// RideIDNull marks an absent ride reference.
const RideIDNull uint16 = 0xFFFF

// TrackColour is one track colour scheme.
type TrackColour struct {
	Main       uint8
	Additional uint8
	Supports   uint8
}

// VehicleColour is one car colour preset.
type VehicleColour struct {
	Body    uint8
	Trim    uint8
	Ternary uint8
}

// RideStation is one platform of a ride.
type RideStation struct {
	StartX          int32
	StartY          int32
	Height          uint8
	Length          uint8
	Depart          uint8
	TrainAtStation  uint8
	EntranceX       int32
	EntranceY       int32
	EntranceZ       int32
	EntranceDir     uint8
	ExitX           int32
	ExitY           int32
	ExitZ           int32
	ExitDir         uint8
	SegmentLength   int32
	SegmentTime     uint16
	QueueTime       uint8
	QueueLength     uint16
	LastPeepInQueue uint16
}

// RideMeasurementMaxItems is the sample capacity of one ride
// measurement recording.
const RideMeasurementMaxItems = 4800

// RideMeasurement is a G-force and speed recording of one circuit.
type RideMeasurement struct {
	Flags          uint8
	LastUseTick    uint32
	NumItems       uint16
	CurrentItem    uint16
	VehicleIndex   uint8
	CurrentStation uint8

	Vertical [RideMeasurementMaxItems]uint8
	Lateral  [RideMeasurementMaxItems]uint8
	Velocity [RideMeasurementMaxItems]uint8
	Altitude [RideMeasurementMaxItems]uint8
}

// Ride is one constructed ride or shop.
type Ride struct {
	ID uint16

	// status
	Type           uint16
	Subtype        uint16
	Mode           uint8
	Status         uint8
	DepartFlags    uint8
	LifecycleFlags uint32

	// meta
	CustomName        string
	DefaultNameNumber uint16
	Price             [RidePriceCount]int16

	// colours
	EntranceStyle    uint16
	ColourSchemeType uint8
	TrackColours     [MaxTrackColours]TrackColour
	VehicleColours   [MaxVehicleColours]VehicleColour

	// stations
	NumStations  uint8
	Stations     [MaxStations]RideStation
	OverallViewX int32
	OverallViewY int32

	// vehicles
	NumVehicles             uint8
	NumCarsPerTrain         uint8
	ProposedNumVehicles     uint8
	ProposedNumCarsPerTrain uint8
	MaxTrains               uint8
	MinCarsPerTrain         uint8
	MaxCarsPerTrain         uint8
	MinWaitingTime          uint8
	MaxWaitingTime          uint8
	Vehicles                [MaxVehiclesPerRide]uint16

	// operation
	OperationOption uint8
	LiftHillSpeed   uint8
	NumCircuits     uint8

	// special
	BoatHireReturnDirection     uint8
	BoatHireReturnPositionX     int32
	BoatHireReturnPositionY     int32
	ChairliftBullwheelLocation  [2]struct{ X, Y, Z int32 }
	ChairliftBullwheelRotation  uint8
	SlideInUse                  uint16
	SlidePeep                   uint16
	SlidePeepTShirtColour       uint8
	SpiralSlideProgress         uint8
	RaceWinner                  uint16
	CableLift                   uint16
	CableLiftLocX               int32
	CableLiftLocY               int32
	CableLiftLocZ               int32

	// stats
	Measurement             *RideMeasurement
	SpecialTrackElements    uint8
	MaxSpeed                int32
	AverageSpeed            int32
	CurrentTestSegment      uint8
	AverageSpeedTestTimeout uint8
	MaxPositiveVerticalG    int16
	MaxNegativeVerticalG    int16
	MaxLateralG             int16
	PreviousVerticalG       int16
	PreviousLateralG        int16
	TestingFlags            uint32
	CurTestTrackLocationX   int32
	CurTestTrackLocationY   int32
	CurTestTrackLocationZ   int32
	TurnCountDefault        uint16
	TurnCountBanked         uint16
	TurnCountSloped         uint16
	Inversions              uint8
	Drops                   uint8
	StartDropHeight         uint8
	HighestDropHeight       uint8
	ShelteredLength         int32
	Var11C                  uint8
	NumShelteredSections    uint8
	ShelteredEighths        uint8
	Holes                   uint8
	CurrentTestStation      uint8
	NumBlockBrakes          uint8
	TotalAirTime            int32

	Excitement int16
	Intensity  int16
	Nausea     int16

	Value int16

	NumRiders  uint16
	BuildDate  int32
	UpkeepCost int16

	CurNumCustomers     uint16
	NumCustomersTimeout uint16
	NumCustomers        [CustomerHistorySize]uint16

	TotalCustomers       uint32
	TotalProfit          int64
	Popularity           uint8
	PopularityTimeOut    uint8
	PopularityNext       uint8
	GuestsFavourite      uint16
	NoPrimaryItemsSold   uint32
	NoSecondaryItemsSold uint32
	IncomePerHour        int64
	Profit               int64
	Satisfaction         uint8
	SatisfactionTimeOut  uint8
	SatisfactionNext     uint8

	// breakdown
	BreakdownReasonPending   uint8
	MechanicStatus           uint8
	Mechanic                 uint16
	InspectionStation        uint8
	BrokenVehicle            uint8
	BrokenCar                uint8
	BreakdownReason          uint8
	ReliabilitySubvalue      uint16
	ReliabilityPercentage    uint8
	UnreliabilityFactor      uint8
	Downtime                 uint8
	InspectionInterval       uint8
	LastInspection           uint16
	DowntimeHistory          [DowntimeHistorySize]uint8
	BreakdownSoundModifier   uint8
	NotFixedTimeout          uint8
	LastCrashType            uint8
	ConnectedMessageThrottle uint8
	VehicleChangeTimeout     uint16
	CurrentIssues            uint32
	LastIssueTime            uint32

	// music
	Music         uint16
	MusicTuneID   uint8
	MusicPosition int32
}

// SplitPackedCars unpacks the legacy combined min/max cars per train
// byte, min in the high nibble.
func SplitPackedCars(v uint8) (minCars, maxCars uint8) {
	return v >> 4, v & 0x0F
}

// HasTrack reports whether the ride owns track elements on the map;
// shops and flat-only stalls never do. The caller supplies the lookup
// because track ownership lives on the tile map.
func (r *Ride) HasTrack(m *Map) bool {
	for i := range m.Elements {
		e := &m.Elements[i]
		if e.Kind() == TileElementKindTrack && e.TrackRideIndex() == r.ID {
			return true
		}
	}
	return false
}
