package parkfile

import (
	"io"

	"github.com/mzki/parkfile/binio"
	"github.com/mzki/parkfile/chunk"
	"github.com/mzki/parkfile/world"
)

func readRideStation(r *binio.Reader, s *world.RideStation) {
	s.StartX = r.Int32()
	s.StartY = r.Int32()
	s.Height = r.Uint8()
	s.Length = r.Uint8()
	s.Depart = r.Uint8()
	s.TrainAtStation = r.Uint8()
	s.EntranceX = r.Int32()
	s.EntranceY = r.Int32()
	s.EntranceZ = r.Int32()
	s.EntranceDir = r.Uint8()
	s.ExitX = r.Int32()
	s.ExitY = r.Int32()
	s.ExitZ = r.Int32()
	s.ExitDir = r.Uint8()
	s.SegmentLength = r.Int32()
	s.SegmentTime = r.Uint16()
	s.QueueTime = r.Uint8()
	s.QueueLength = r.Uint16()
	s.LastPeepInQueue = r.Uint16()
}

func writeRideStation(w *binio.Writer, s *world.RideStation) {
	w.Int32(s.StartX)
	w.Int32(s.StartY)
	w.Uint8(s.Height)
	w.Uint8(s.Length)
	w.Uint8(s.Depart)
	w.Uint8(s.TrainAtStation)
	w.Int32(s.EntranceX)
	w.Int32(s.EntranceY)
	w.Int32(s.EntranceZ)
	w.Uint8(s.EntranceDir)
	w.Int32(s.ExitX)
	w.Int32(s.ExitY)
	w.Int32(s.ExitZ)
	w.Uint8(s.ExitDir)
	w.Int32(s.SegmentLength)
	w.Uint16(s.SegmentTime)
	w.Uint8(s.QueueTime)
	w.Uint16(s.QueueLength)
	w.Uint16(s.LastPeepInQueue)
}

func readRideMeasurement(r *binio.Reader, m *world.RideMeasurement) {
	m.Flags = r.Uint8()
	m.LastUseTick = r.Uint32()
	m.NumItems = r.Uint16()
	m.CurrentItem = r.Uint16()
	m.VehicleIndex = r.Uint8()
	m.CurrentStation = r.Uint8()
	n := int(m.NumItems)
	if n > world.RideMeasurementMaxItems {
		n = world.RideMeasurementMaxItems
	}
	for i := 0; i < n; i++ {
		m.Vertical[i] = r.Uint8()
		m.Lateral[i] = r.Uint8()
		m.Velocity[i] = r.Uint8()
		m.Altitude[i] = r.Uint8()
	}
}

func writeRideMeasurement(w *binio.Writer, m *world.RideMeasurement) {
	w.Uint8(m.Flags)
	w.Uint32(m.LastUseTick)
	w.Uint16(m.NumItems)
	w.Uint16(m.CurrentItem)
	w.Uint8(m.VehicleIndex)
	w.Uint8(m.CurrentStation)
	n := int(m.NumItems)
	if n > world.RideMeasurementMaxItems {
		n = world.RideMeasurementMaxItems
	}
	for i := 0; i < n; i++ {
		w.Uint8(m.Vertical[i])
		w.Uint8(m.Lateral[i])
		w.Uint8(m.Velocity[i])
		w.Uint8(m.Altitude[i])
	}
}

func (e *Engine) readRide(r *binio.Reader, version uint32, ride *world.Ride) {
	ride.ID = r.Uint16()

	// status
	ride.Type = r.Uint16()
	ride.Subtype = r.Uint16()
	ride.Mode = r.Uint8()
	ride.Status = r.Uint8()
	ride.DepartFlags = r.Uint8()
	ride.LifecycleFlags = r.Uint32()

	// meta
	ride.CustomName = r.String()
	ride.DefaultNameNumber = r.Uint16()
	priceCount := r.Uint32()
	for i := uint32(0); i < priceCount; i++ {
		v := r.Int16()
		if int(i) < len(ride.Price) {
			ride.Price[i] = v
		}
	}

	// colours
	ride.EntranceStyle = r.Uint16()
	ride.ColourSchemeType = r.Uint8()
	tcCount := r.Uint32()
	for i := uint32(0); i < tcCount; i++ {
		var tc world.TrackColour
		tc.Main = r.Uint8()
		tc.Additional = r.Uint8()
		tc.Supports = r.Uint8()
		if int(i) < len(ride.TrackColours) {
			ride.TrackColours[i] = tc
		}
	}
	vcCount := r.Uint32()
	for i := uint32(0); i < vcCount; i++ {
		var vc world.VehicleColour
		vc.Body = r.Uint8()
		vc.Trim = r.Uint8()
		vc.Ternary = r.Uint8()
		if int(i) < len(ride.VehicleColours) {
			ride.VehicleColours[i] = vc
		}
	}

	// stations
	ride.NumStations = r.Uint8()
	stCount := r.Uint32()
	for i := uint32(0); i < stCount; i++ {
		var s world.RideStation
		readRideStation(r, &s)
		if int(i) < len(ride.Stations) {
			ride.Stations[i] = s
		}
	}
	ride.OverallViewX = r.Int32()
	ride.OverallViewY = r.Int32()

	// vehicles
	ride.NumVehicles = r.Uint8()
	ride.NumCarsPerTrain = r.Uint8()
	ride.ProposedNumVehicles = r.Uint8()
	ride.ProposedNumCarsPerTrain = r.Uint8()
	ride.MaxTrains = r.Uint8()
	if version < 5 {
		ride.MinCarsPerTrain, ride.MaxCarsPerTrain = world.SplitPackedCars(r.Uint8())
	} else {
		ride.MinCarsPerTrain = r.Uint8()
		ride.MaxCarsPerTrain = r.Uint8()
	}
	ride.MinWaitingTime = r.Uint8()
	ride.MaxWaitingTime = r.Uint8()
	readU16Array(r, ride.Vehicles[:])

	// operation
	ride.OperationOption = r.Uint8()
	ride.LiftHillSpeed = r.Uint8()
	ride.NumCircuits = r.Uint8()

	// special
	ride.BoatHireReturnDirection = r.Uint8()
	ride.BoatHireReturnPositionX = r.Int32()
	ride.BoatHireReturnPositionY = r.Int32()
	for i := range ride.ChairliftBullwheelLocation {
		ride.ChairliftBullwheelLocation[i].X = r.Int32()
		ride.ChairliftBullwheelLocation[i].Y = r.Int32()
		ride.ChairliftBullwheelLocation[i].Z = r.Int32()
	}
	ride.ChairliftBullwheelRotation = r.Uint8()
	ride.SlideInUse = r.Uint16()
	ride.SlidePeep = r.Uint16()
	ride.SlidePeepTShirtColour = r.Uint8()
	ride.SpiralSlideProgress = r.Uint8()
	ride.RaceWinner = r.Uint16()
	ride.CableLift = r.Uint16()
	ride.CableLiftLocX = r.Int32()
	ride.CableLiftLocY = r.Int32()
	ride.CableLiftLocZ = r.Int32()

	// stats
	if r.Uint8() != 0 {
		ride.Measurement = &world.RideMeasurement{}
		readRideMeasurement(r, ride.Measurement)
	} else {
		ride.Measurement = nil
	}

	ride.SpecialTrackElements = r.Uint8()
	ride.MaxSpeed = r.Int32()
	ride.AverageSpeed = r.Int32()
	ride.CurrentTestSegment = r.Uint8()
	ride.AverageSpeedTestTimeout = r.Uint8()

	ride.MaxPositiveVerticalG = r.Int16()
	ride.MaxNegativeVerticalG = r.Int16()
	ride.MaxLateralG = r.Int16()
	ride.PreviousVerticalG = r.Int16()
	ride.PreviousLateralG = r.Int16()

	ride.TestingFlags = r.Uint32()
	ride.CurTestTrackLocationX = r.Int32()
	ride.CurTestTrackLocationY = r.Int32()
	ride.CurTestTrackLocationZ = r.Int32()

	ride.TurnCountDefault = r.Uint16()
	ride.TurnCountBanked = r.Uint16()
	ride.TurnCountSloped = r.Uint16()

	ride.Inversions = r.Uint8()
	ride.Drops = r.Uint8()
	ride.StartDropHeight = r.Uint8()
	ride.HighestDropHeight = r.Uint8()
	ride.ShelteredLength = r.Int32()
	ride.Var11C = r.Uint8()
	ride.NumShelteredSections = r.Uint8()
	if version > 5 {
		ride.ShelteredEighths = r.Uint8()
		ride.Holes = r.Uint8()
	}
	ride.CurrentTestStation = r.Uint8()
	ride.NumBlockBrakes = r.Uint8()
	ride.TotalAirTime = r.Int32()

	ride.Excitement = r.Int16()
	ride.Intensity = r.Int16()
	ride.Nausea = r.Int16()

	ride.Value = r.Int16()

	ride.NumRiders = r.Uint16()
	ride.BuildDate = r.Int32()
	ride.UpkeepCost = r.Int16()

	ride.CurNumCustomers = r.Uint16()
	ride.NumCustomersTimeout = r.Uint16()
	readU16Array(r, ride.NumCustomers[:])

	ride.TotalCustomers = r.Uint32()
	ride.TotalProfit = r.Int64()
	ride.Popularity = r.Uint8()
	ride.PopularityTimeOut = r.Uint8()
	ride.PopularityNext = r.Uint8()
	ride.GuestsFavourite = r.Uint16()
	ride.NoPrimaryItemsSold = r.Uint32()
	ride.NoSecondaryItemsSold = r.Uint32()
	ride.IncomePerHour = r.Int64()
	ride.Profit = r.Int64()
	ride.Satisfaction = r.Uint8()
	ride.SatisfactionTimeOut = r.Uint8()
	ride.SatisfactionNext = r.Uint8()

	// breakdown
	ride.BreakdownReasonPending = r.Uint8()
	ride.MechanicStatus = r.Uint8()
	ride.Mechanic = r.Uint16()
	ride.InspectionStation = r.Uint8()
	ride.BrokenVehicle = r.Uint8()
	ride.BrokenCar = r.Uint8()
	ride.BreakdownReason = r.Uint8()
	ride.ReliabilitySubvalue = r.Uint16()
	ride.ReliabilityPercentage = r.Uint8()
	ride.UnreliabilityFactor = r.Uint8()
	ride.Downtime = r.Uint8()
	ride.InspectionInterval = r.Uint8()
	ride.LastInspection = r.Uint16()

	readU8Array(r, ride.DowntimeHistory[:])

	ride.BreakdownSoundModifier = r.Uint8()
	ride.NotFixedTimeout = r.Uint8()
	ride.LastCrashType = r.Uint8()
	ride.ConnectedMessageThrottle = r.Uint8()

	ride.VehicleChangeTimeout = r.Uint16()

	ride.CurrentIssues = r.Uint32()
	ride.LastIssueTime = r.Uint32()

	// music
	ride.Music = r.Uint16()
	ride.MusicTuneID = r.Uint8()
	ride.MusicPosition = r.Int32()
}

func (e *Engine) writeRide(w *binio.Writer, ride *world.Ride) {
	w.Uint16(ride.ID)

	// status
	w.Uint16(ride.Type)
	w.Uint16(ride.Subtype)
	w.Uint8(ride.Mode)
	w.Uint8(ride.Status)
	w.Uint8(ride.DepartFlags)
	w.Uint32(ride.LifecycleFlags)

	// meta
	w.String(ride.CustomName)
	w.Uint16(ride.DefaultNameNumber)
	w.Uint32(uint32(len(ride.Price)))
	for _, p := range ride.Price {
		w.Int16(p)
	}

	// colours
	w.Uint16(ride.EntranceStyle)
	w.Uint8(ride.ColourSchemeType)
	w.Uint32(uint32(len(ride.TrackColours)))
	for _, tc := range ride.TrackColours {
		w.Uint8(tc.Main)
		w.Uint8(tc.Additional)
		w.Uint8(tc.Supports)
	}
	w.Uint32(uint32(len(ride.VehicleColours)))
	for _, vc := range ride.VehicleColours {
		w.Uint8(vc.Body)
		w.Uint8(vc.Trim)
		w.Uint8(vc.Ternary)
	}

	// stations
	w.Uint8(ride.NumStations)
	w.Uint32(uint32(len(ride.Stations)))
	for i := range ride.Stations {
		writeRideStation(w, &ride.Stations[i])
	}
	w.Int32(ride.OverallViewX)
	w.Int32(ride.OverallViewY)

	// vehicles
	w.Uint8(ride.NumVehicles)
	w.Uint8(ride.NumCarsPerTrain)
	w.Uint8(ride.ProposedNumVehicles)
	w.Uint8(ride.ProposedNumCarsPerTrain)
	w.Uint8(ride.MaxTrains)
	w.Uint8(ride.MinCarsPerTrain)
	w.Uint8(ride.MaxCarsPerTrain)
	w.Uint8(ride.MinWaitingTime)
	w.Uint8(ride.MaxWaitingTime)
	writeU16Array(w, ride.Vehicles[:])

	// operation
	w.Uint8(ride.OperationOption)
	w.Uint8(ride.LiftHillSpeed)
	w.Uint8(ride.NumCircuits)

	// special
	w.Uint8(ride.BoatHireReturnDirection)
	w.Int32(ride.BoatHireReturnPositionX)
	w.Int32(ride.BoatHireReturnPositionY)
	for i := range ride.ChairliftBullwheelLocation {
		w.Int32(ride.ChairliftBullwheelLocation[i].X)
		w.Int32(ride.ChairliftBullwheelLocation[i].Y)
		w.Int32(ride.ChairliftBullwheelLocation[i].Z)
	}
	w.Uint8(ride.ChairliftBullwheelRotation)
	w.Uint16(ride.SlideInUse)
	w.Uint16(ride.SlidePeep)
	w.Uint8(ride.SlidePeepTShirtColour)
	w.Uint8(ride.SpiralSlideProgress)
	w.Uint16(ride.RaceWinner)
	w.Uint16(ride.CableLift)
	w.Int32(ride.CableLiftLocX)
	w.Int32(ride.CableLiftLocY)
	w.Int32(ride.CableLiftLocZ)

	// stats
	if ride.Measurement == nil {
		w.Uint8(0)
	} else {
		w.Uint8(1)
		writeRideMeasurement(w, ride.Measurement)
	}

	w.Uint8(ride.SpecialTrackElements)
	w.Int32(ride.MaxSpeed)
	w.Int32(ride.AverageSpeed)
	w.Uint8(ride.CurrentTestSegment)
	w.Uint8(ride.AverageSpeedTestTimeout)

	w.Int16(ride.MaxPositiveVerticalG)
	w.Int16(ride.MaxNegativeVerticalG)
	w.Int16(ride.MaxLateralG)
	w.Int16(ride.PreviousVerticalG)
	w.Int16(ride.PreviousLateralG)

	w.Uint32(ride.TestingFlags)
	w.Int32(ride.CurTestTrackLocationX)
	w.Int32(ride.CurTestTrackLocationY)
	w.Int32(ride.CurTestTrackLocationZ)

	w.Uint16(ride.TurnCountDefault)
	w.Uint16(ride.TurnCountBanked)
	w.Uint16(ride.TurnCountSloped)

	w.Uint8(ride.Inversions)
	w.Uint8(ride.Drops)
	w.Uint8(ride.StartDropHeight)
	w.Uint8(ride.HighestDropHeight)
	w.Int32(ride.ShelteredLength)
	w.Uint8(ride.Var11C)
	w.Uint8(ride.NumShelteredSections)
	w.Uint8(ride.ShelteredEighths)
	w.Uint8(ride.Holes)
	w.Uint8(ride.CurrentTestStation)
	w.Uint8(ride.NumBlockBrakes)
	w.Int32(ride.TotalAirTime)

	w.Int16(ride.Excitement)
	w.Int16(ride.Intensity)
	w.Int16(ride.Nausea)

	w.Int16(ride.Value)

	w.Uint16(ride.NumRiders)
	w.Int32(ride.BuildDate)
	w.Int16(ride.UpkeepCost)

	w.Uint16(ride.CurNumCustomers)
	w.Uint16(ride.NumCustomersTimeout)
	writeU16Array(w, ride.NumCustomers[:])

	w.Uint32(ride.TotalCustomers)
	w.Int64(ride.TotalProfit)
	w.Uint8(ride.Popularity)
	w.Uint8(ride.PopularityTimeOut)
	w.Uint8(ride.PopularityNext)
	w.Uint16(ride.GuestsFavourite)
	w.Uint32(ride.NoPrimaryItemsSold)
	w.Uint32(ride.NoSecondaryItemsSold)
	w.Int64(ride.IncomePerHour)
	w.Int64(ride.Profit)
	w.Uint8(ride.Satisfaction)
	w.Uint8(ride.SatisfactionTimeOut)
	w.Uint8(ride.SatisfactionNext)

	// breakdown
	w.Uint8(ride.BreakdownReasonPending)
	w.Uint8(ride.MechanicStatus)
	w.Uint16(ride.Mechanic)
	w.Uint8(ride.InspectionStation)
	w.Uint8(ride.BrokenVehicle)
	w.Uint8(ride.BrokenCar)
	w.Uint8(ride.BreakdownReason)
	w.Uint16(ride.ReliabilitySubvalue)
	w.Uint8(ride.ReliabilityPercentage)
	w.Uint8(ride.UnreliabilityFactor)
	w.Uint8(ride.Downtime)
	w.Uint8(ride.InspectionInterval)
	w.Uint16(ride.LastInspection)

	writeU8Array(w, ride.DowntimeHistory[:])

	w.Uint8(ride.BreakdownSoundModifier)
	w.Uint8(ride.NotFixedTimeout)
	w.Uint8(ride.LastCrashType)
	w.Uint8(ride.ConnectedMessageThrottle)

	w.Uint16(ride.VehicleChangeTimeout)

	w.Uint32(ride.CurrentIssues)
	w.Uint32(ride.LastIssueTime)

	// music
	w.Uint16(ride.Music)
	w.Uint8(ride.MusicTuneID)
	w.Int32(ride.MusicPosition)
}

func (e *Engine) readRidesChunk(st *world.State) error {
	version := e.hdr.TargetVersion
	_, err := chunk.Find(e.rs, chunkRides, func(r *binio.Reader) error {
		count := r.Uint32()
		st.Rides = st.Rides[:0]
		for i := uint32(0); i < count; i++ {
			ride := &world.Ride{}
			e.readRide(r, version, ride)
			st.Rides = append(st.Rides, ride)
		}
		return nil
	})
	return err
}

func (e *Engine) writeRidesChunk(ws io.WriteSeeker, st *world.State) error {
	rides := st.Rides
	if e.OmitTracklessRides {
		kept := make([]*world.Ride, 0, len(rides))
		for _, ride := range rides {
			if ride.HasTrack(&st.Map) {
				kept = append(kept, ride)
			}
		}
		rides = kept
	}
	return chunk.Write(ws, chunkRides, func(w *binio.Writer) error {
		w.Uint32(uint32(len(rides)))
		for _, ride := range rides {
			e.writeRide(w, ride)
		}
		return nil
	})
}
