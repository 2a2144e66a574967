package parkfile

import (
	"fmt"
	"io"

	"github.com/mzki/parkfile/binio"
	"github.com/mzki/parkfile/chunk"
	"github.com/mzki/parkfile/world"
)

// Entities are stored grouped by kind, each group tagged with the kind
// and a count. Every payload begins with the positional header, so the
// slot index appears twice per entity.

func readEntityBase(r *binio.Reader, b *world.EntityBase) {
	b.SpriteIndex = r.Uint16()
	b.SpriteHeightNegative = r.Uint8()
	b.X = r.Int16()
	b.Y = r.Int16()
	b.Z = r.Int16()
	b.SpriteWidth = r.Uint8()
	b.SpriteHeightPositive = r.Uint8()
	b.SpriteDirection = r.Uint8()
}

func writeEntityBase(w *binio.Writer, b *world.EntityBase) {
	w.Uint16(b.SpriteIndex)
	w.Uint8(b.SpriteHeightNegative)
	w.Int16(b.X)
	w.Int16(b.Y)
	w.Int16(b.Z)
	w.Uint8(b.SpriteWidth)
	w.Uint8(b.SpriteHeightPositive)
	w.Uint8(b.SpriteDirection)
}

func readVehicle(r *binio.Reader, version uint32, v *world.Vehicle) {
	readEntityBase(r, &v.EntityBase)
	v.SubType = r.Uint8()
	v.Pitch = r.Uint8()
	v.BankRotation = r.Uint8()
	v.RemainingDistance = r.Int32()
	v.Velocity = r.Int32()
	v.Acceleration = r.Int32()
	v.Ride = r.Uint16()
	v.VehicleType = r.Uint8()
	v.BodyColour = r.Uint8()
	v.TrimColour = r.Uint8()
	v.TrackProgress = r.Uint16()
	v.BoatLocationX = r.Int32()
	v.BoatLocationY = r.Int32()
	v.TrackTypeAndDirection = r.Uint16()
	v.TrackX = r.Int32()
	v.TrackY = r.Int32()
	v.TrackZ = r.Int32()
	v.NextVehicleOnTrain = r.Uint16()
	v.PrevVehicleOnRide = r.Uint16()
	v.NextVehicleOnRide = r.Uint16()
	v.Var44 = r.Uint16()
	v.Mass = r.Uint16()
	v.UpdateFlags = r.Uint32()
	v.SwingSprite = r.Uint8()
	v.CurrentStation = r.Uint8()
	v.CurrentTime = r.Int16()
	v.CrashZ = r.Int16()
	v.Status = r.Uint8()
	v.SubState = r.Uint8()
	for i := range v.Peeps {
		v.Peeps[i] = r.Uint16()
		v.PeepTshirtColours[i] = r.Uint8()
	}
	v.NumSeats = r.Uint8()
	v.NumPeeps = r.Uint8()
	v.NextFreeSeat = r.Uint8()
	v.RestraintsPosition = r.Uint8()
	v.CrashX = r.Int16()
	v.Sound2Flags = r.Uint16()
	v.SpinSprite = r.Uint8()
	v.Sound1ID = r.Uint8()
	v.Sound1Volume = r.Uint8()
	v.Sound2ID = r.Uint8()
	v.Sound2Volume = r.Uint8()
	v.SoundVectorFactor = r.Int16()
	v.TimeWaiting = r.Uint16()
	v.Speed = r.Uint8()
	v.PoweredAcceleration = r.Uint8()
	v.DodgemsCollisionDirection = r.Uint8()
	v.AnimationFrame = r.Uint8()
	if version <= 2 {
		lower := uint32(r.Uint16())
		upper := uint32(r.Uint16())
		v.AnimationState = lower | upper<<16
	} else {
		v.AnimationState = r.Uint32()
	}
	v.ScreamSoundID = r.Uint8()
	v.TrackSubposition = r.Uint8()
	v.VarCE = r.Uint8()
	v.VarCF = r.Uint8()
	v.LostTimeOut = r.Uint16()
	v.VerticalDropCountdown = r.Int8()
	v.VarD3 = r.Uint8()
	v.MiniGolfCurrentAnimation = r.Uint8()
	v.MiniGolfFlags = r.Uint8()
	v.RideSubtype = r.Uint16()
	v.ColoursExtended = r.Uint8()
	v.SeatRotation = r.Uint8()
	v.TargetSeatRotation = r.Uint8()
	v.IsCrashedVehicle = r.Bool()
}

func writeVehicle(w *binio.Writer, v *world.Vehicle) {
	writeEntityBase(w, &v.EntityBase)
	w.Uint8(v.SubType)
	w.Uint8(v.Pitch)
	w.Uint8(v.BankRotation)
	w.Int32(v.RemainingDistance)
	w.Int32(v.Velocity)
	w.Int32(v.Acceleration)
	w.Uint16(v.Ride)
	w.Uint8(v.VehicleType)
	w.Uint8(v.BodyColour)
	w.Uint8(v.TrimColour)
	w.Uint16(v.TrackProgress)
	w.Int32(v.BoatLocationX)
	w.Int32(v.BoatLocationY)
	w.Uint16(v.TrackTypeAndDirection)
	w.Int32(v.TrackX)
	w.Int32(v.TrackY)
	w.Int32(v.TrackZ)
	w.Uint16(v.NextVehicleOnTrain)
	w.Uint16(v.PrevVehicleOnRide)
	w.Uint16(v.NextVehicleOnRide)
	w.Uint16(v.Var44)
	w.Uint16(v.Mass)
	w.Uint32(v.UpdateFlags)
	w.Uint8(v.SwingSprite)
	w.Uint8(v.CurrentStation)
	w.Int16(v.CurrentTime)
	w.Int16(v.CrashZ)
	w.Uint8(v.Status)
	w.Uint8(v.SubState)
	for i := range v.Peeps {
		w.Uint16(v.Peeps[i])
		w.Uint8(v.PeepTshirtColours[i])
	}
	w.Uint8(v.NumSeats)
	w.Uint8(v.NumPeeps)
	w.Uint8(v.NextFreeSeat)
	w.Uint8(v.RestraintsPosition)
	w.Int16(v.CrashX)
	w.Uint16(v.Sound2Flags)
	w.Uint8(v.SpinSprite)
	w.Uint8(v.Sound1ID)
	w.Uint8(v.Sound1Volume)
	w.Uint8(v.Sound2ID)
	w.Uint8(v.Sound2Volume)
	w.Int16(v.SoundVectorFactor)
	w.Uint16(v.TimeWaiting)
	w.Uint8(v.Speed)
	w.Uint8(v.PoweredAcceleration)
	w.Uint8(v.DodgemsCollisionDirection)
	w.Uint8(v.AnimationFrame)
	w.Uint32(v.AnimationState)
	w.Uint8(v.ScreamSoundID)
	w.Uint8(v.TrackSubposition)
	w.Uint8(v.VarCE)
	w.Uint8(v.VarCF)
	w.Uint16(v.LostTimeOut)
	w.Int8(v.VerticalDropCountdown)
	w.Uint8(v.VarD3)
	w.Uint8(v.MiniGolfCurrentAnimation)
	w.Uint8(v.MiniGolfFlags)
	w.Uint16(v.RideSubtype)
	w.Uint8(v.ColoursExtended)
	w.Uint8(v.SeatRotation)
	w.Uint8(v.TargetSeatRotation)
	w.Bool(v.IsCrashedVehicle)
}

func readPathfindTarget(r *binio.Reader, t *world.PathfindTarget) {
	t.X = r.Uint8()
	t.Y = r.Uint8()
	t.Z = r.Uint8()
	t.Direction = r.Uint8()
}

func writePathfindTarget(w *binio.Writer, t *world.PathfindTarget) {
	w.Uint8(t.X)
	w.Uint8(t.Y)
	w.Uint8(t.Z)
	w.Uint8(t.Direction)
}

// The legacy been-on bitmaps travel as counted byte arrays.

func readLegacyRidesBitmap(r *binio.Reader) [world.LegacyRidesBitmapSize]uint8 {
	var bitmap [world.LegacyRidesBitmapSize]uint8
	count := r.Uint32()
	for i := uint32(0); i < count; i++ {
		b := r.Uint8()
		if int(i) < len(bitmap) {
			bitmap[i] = b
		}
	}
	return bitmap
}

func readLegacyRideTypesBitmap(r *binio.Reader) [world.LegacyRideTypesBitmapSize]uint8 {
	var bitmap [world.LegacyRideTypesBitmapSize]uint8
	count := r.Uint32()
	for i := uint32(0); i < count; i++ {
		b := r.Uint8()
		if int(i) < len(bitmap) {
			bitmap[i] = b
		}
	}
	return bitmap
}

func skipByteVector(r *binio.Reader) {
	count := r.Uint32()
	for i := uint32(0); i < count; i++ {
		r.Uint8()
	}
}

// readPeep decodes the fields guests and staff share. Revisions up to 1
// stored one combined record per peep, role-specific fields woven into
// the shared sequence; exactly one of guest or staff is non-nil and the
// other role's slots are consumed and dropped.
func (e *Engine) readPeep(r *binio.Reader, st *world.State, p *world.Peep, guest *world.Guest, staff *world.Staff) {
	version := e.hdr.TargetVersion

	readEntityBase(r, &p.EntityBase)
	p.Name = r.String()

	p.NextLocX = r.Int32()
	p.NextLocY = r.Int32()
	p.NextLocZ = r.Int32()
	p.NextFlags = r.Uint8()

	if version <= 1 {
		outside := r.Bool()
		if guest != nil {
			guest.OutsideOfPark = outside
		}
	}

	p.State = r.Uint8()
	p.SubState = r.Uint8()
	p.SpriteType = r.Uint8()

	if version <= 1 {
		b := r.Uint8()
		if guest != nil {
			guest.GuestNumRides = b
		} else {
			staff.AssignedStaffType = b
		}
	}

	p.TshirtColour = r.Uint8()
	p.TrousersColour = r.Uint8()
	p.DestinationX = r.Int16()
	p.DestinationY = r.Int16()
	p.DestinationTolerance = r.Uint8()
	p.Var37 = r.Uint8()
	p.Energy = r.Uint8()
	p.EnergyTarget = r.Uint8()

	if version <= 1 {
		var moods [7]uint8
		for i := range moods {
			moods[i] = r.Uint8()
		}
		if guest != nil {
			guest.Happiness = moods[0]
			guest.HappinessTarget = moods[1]
			guest.Nausea = moods[2]
			guest.NauseaTarget = moods[3]
			guest.Hunger = moods[4]
			guest.Thirst = moods[5]
			guest.Toilet = moods[6]
		}
	}

	p.Mass = r.Uint8()

	if version <= 1 {
		b := r.Uint8()
		if guest != nil {
			guest.TimeToConsume = b
		}
	}

	if version <= 1 {
		intensity := r.Uint8()
		tolerance := r.Uint8()
		if guest != nil {
			guest.Intensity = intensity
			guest.NauseaTolerance = tolerance
		}
	}

	p.WindowInvalidateFlags = r.Uint8()

	if version <= 1 {
		if guest != nil {
			guest.PaidOnDrink = r.Int16()
			st.RideUse.SetRideTypes(p.SpriteIndex, world.RideTypesFromBitmap(readLegacyRideTypesBitmap(r)))
			guest.ItemFlags = r.Uint64()
			guest.Photo2RideRef = r.Uint16()
			guest.Photo3RideRef = r.Uint16()
			guest.Photo4RideRef = r.Uint16()
		} else {
			r.Int16()
			skipByteVector(r)
			r.Uint64()
			r.Uint16()
			r.Uint16()
			r.Uint16()
		}
	}

	p.CurrentRide = r.Uint16()
	p.CurrentRideStation = r.Uint8()
	p.CurrentTrain = r.Uint8()
	p.TimeToSitdown = r.Uint8()
	p.SpecialSprite = r.Uint8()
	p.ActionSpriteType = r.Uint8()
	p.NextActionSpriteType = r.Uint8()
	p.ActionSpriteImageOffset = r.Uint8()
	p.Action = r.Uint8()
	p.ActionFrame = r.Uint8()
	p.StepProgress = r.Uint8()

	if version <= 1 {
		v := r.Uint16()
		if guest != nil {
			guest.GuestNextInQueue = v
		} else {
			staff.MechanicTimeSinceCall = v
		}
	}

	p.PeepDirection = r.Uint8()
	p.InteractionRideIndex = r.Uint16()

	if version <= 1 {
		if guest != nil {
			guest.TimeInQueue = r.Uint16()
			st.RideUse.SetRides(p.SpriteIndex, world.RidesFromBitmap(readLegacyRidesBitmap(r)))
		} else {
			r.Uint16()
			skipByteVector(r)
		}
	}

	p.ID = r.Uint32()

	if version <= 1 {
		if guest != nil {
			guest.CashInPocket = r.Int32()
			guest.CashSpent = r.Int32()
			guest.ParkEntryTime = r.Int32()
			guest.RejoinQueueTimeout = r.Uint8()
			guest.PreviousRide = r.Uint16()
			guest.PreviousRideTimeOut = r.Uint16()
			count := r.Uint32()
			for i := uint32(0); i < count; i++ {
				var t world.Thought
				t.Type = r.Uint8()
				item := r.Uint8()
				if item == 255 {
					t.Item = world.ThoughtItemNone
				} else {
					t.Item = uint16(item)
				}
				t.Freshness = r.Uint8()
				t.FreshTimeout = r.Uint8()
				if int(i) < len(guest.Thoughts) {
					guest.Thoughts[i] = t
				}
			}
		} else {
			r.Int32()
			r.Int32()
			staff.HireDate = r.Int32()
			r.Int8()
			r.Uint16()
			r.Uint16()
			count := r.Uint32()
			for i := uint32(0); i < count; i++ {
				r.Uint8()
				r.Uint16()
				r.Uint8()
				r.Uint8()
			}
		}
	}

	p.PathCheckOptimisation = r.Uint8()

	if version <= 1 {
		if guest != nil {
			guest.GuestHeadingToRideID = r.Uint16()
			guest.GuestIsLostCountdown = r.Uint8()
			guest.Photo1RideRef = r.Uint16()
		} else {
			r.Uint16()
			staff.StaffOrders = r.Uint8()
			r.Uint16()
		}
	}

	p.PeepFlags = r.Uint32()
	readPathfindTarget(r, &p.PathfindGoal)
	for i := range p.PathfindHistory {
		readPathfindTarget(r, &p.PathfindHistory[i])
	}
	p.WalkingFrameNum = r.Uint8()

	if version <= 1 {
		if guest != nil {
			guest.LitterCount = r.Uint8()
			guest.GuestTimeOnRide = r.Uint8()
			guest.DisgustingCount = r.Uint8()
			guest.PaidToEnter = r.Int16()
			guest.PaidOnRides = r.Int16()
			guest.PaidOnFood = r.Int16()
			guest.PaidOnSouvenirs = r.Int16()
			guest.AmountOfFood = r.Uint8()
			guest.AmountOfDrinks = r.Uint8()
			guest.AmountOfSouvenirs = r.Uint8()
			guest.VandalismSeen = r.Uint8()
			guest.VoucherType = r.Uint8()
			guest.VoucherRideID = r.Uint16()
			guest.SurroundingsThoughtTimeout = r.Uint8()
			guest.Angriness = r.Uint8()
			guest.TimeLost = r.Uint8()
			guest.DaysInQueue = r.Uint8()
			guest.BalloonColour = r.Uint8()
			guest.UmbrellaColour = r.Uint8()
			guest.HatColour = r.Uint8()
			guest.FavouriteRide = r.Uint16()
			guest.FavouriteRideRating = r.Uint8()
		} else {
			r.Uint8()
			staff.StaffMowingTimeout = r.Uint16()
			r.Uint8()
			staff.StaffLawnsMown = r.Uint32()
			staff.StaffGardensWatered = r.Uint32()
			staff.StaffLitterSwept = r.Uint32()
			staff.StaffBinsEmptied = r.Uint32()
			r.Uint8()
			r.Uint8()
			r.Uint8()
			r.Uint8()
			r.Uint8()
			r.Uint16()
			r.Uint8()
			r.Uint8()
			r.Uint8()
			r.Uint8()
			r.Uint8()
			r.Uint8()
			r.Uint8()
			r.Uint16()
			r.Uint8()
		}
	}
}

func writePeep(w *binio.Writer, p *world.Peep) {
	writeEntityBase(w, &p.EntityBase)
	w.String(p.Name)

	w.Int32(p.NextLocX)
	w.Int32(p.NextLocY)
	w.Int32(p.NextLocZ)
	w.Uint8(p.NextFlags)

	w.Uint8(p.State)
	w.Uint8(p.SubState)
	w.Uint8(p.SpriteType)

	w.Uint8(p.TshirtColour)
	w.Uint8(p.TrousersColour)
	w.Int16(p.DestinationX)
	w.Int16(p.DestinationY)
	w.Uint8(p.DestinationTolerance)
	w.Uint8(p.Var37)
	w.Uint8(p.Energy)
	w.Uint8(p.EnergyTarget)

	w.Uint8(p.Mass)
	w.Uint8(p.WindowInvalidateFlags)

	w.Uint16(p.CurrentRide)
	w.Uint8(p.CurrentRideStation)
	w.Uint8(p.CurrentTrain)
	w.Uint8(p.TimeToSitdown)
	w.Uint8(p.SpecialSprite)
	w.Uint8(p.ActionSpriteType)
	w.Uint8(p.NextActionSpriteType)
	w.Uint8(p.ActionSpriteImageOffset)
	w.Uint8(p.Action)
	w.Uint8(p.ActionFrame)
	w.Uint8(p.StepProgress)

	w.Uint8(p.PeepDirection)
	w.Uint16(p.InteractionRideIndex)

	w.Uint32(p.ID)
	w.Uint8(p.PathCheckOptimisation)

	w.Uint32(p.PeepFlags)
	writePathfindTarget(w, &p.PathfindGoal)
	for i := range p.PathfindHistory {
		writePathfindTarget(w, &p.PathfindHistory[i])
	}
	w.Uint8(p.WalkingFrameNum)
}

func (e *Engine) readGuest(r *binio.Reader, st *world.State, g *world.Guest) {
	version := e.hdr.TargetVersion
	e.readPeep(r, st, &g.Peep, g, nil)

	if version <= 1 {
		return
	}

	g.GuestNumRides = r.Uint8()
	g.GuestNextInQueue = r.Uint16()
	g.ParkEntryTime = r.Int32()
	g.GuestHeadingToRideID = r.Uint16()
	g.GuestIsLostCountdown = r.Uint8()
	g.GuestTimeOnRide = r.Uint8()
	g.PaidToEnter = r.Int16()
	g.PaidOnRides = r.Int16()
	g.PaidOnFood = r.Int16()
	g.PaidOnDrink = r.Int16()
	g.PaidOnSouvenirs = r.Int16()
	g.OutsideOfPark = r.Bool()
	g.Happiness = r.Uint8()
	g.HappinessTarget = r.Uint8()
	g.Nausea = r.Uint8()
	g.NauseaTarget = r.Uint8()
	g.Hunger = r.Uint8()
	g.Thirst = r.Uint8()
	g.Toilet = r.Uint8()
	g.TimeToConsume = r.Uint8()
	g.Intensity = r.Uint8()
	g.NauseaTolerance = r.Uint8()

	if version < 3 {
		st.RideUse.SetRideTypes(g.SpriteIndex, world.RideTypesFromBitmap(readLegacyRideTypesBitmap(r)))
	}

	g.TimeInQueue = r.Uint16()
	if version < 3 {
		st.RideUse.SetRides(g.SpriteIndex, world.RidesFromBitmap(readLegacyRidesBitmap(r)))
	} else {
		rides := make([]uint16, 0)
		count := r.Uint32()
		for i := uint32(0); i < count; i++ {
			rides = append(rides, r.Uint16())
		}
		st.RideUse.SetRides(g.SpriteIndex, rides)

		rideTypes := make([]uint16, 0)
		count = r.Uint32()
		for i := uint32(0); i < count; i++ {
			rideTypes = append(rideTypes, r.Uint16())
		}
		st.RideUse.SetRideTypes(g.SpriteIndex, rideTypes)
	}

	g.CashInPocket = r.Int32()
	g.CashSpent = r.Int32()
	g.Photo1RideRef = r.Uint16()
	g.Photo2RideRef = r.Uint16()
	g.Photo3RideRef = r.Uint16()
	g.Photo4RideRef = r.Uint16()
	g.RejoinQueueTimeout = r.Uint8()
	g.PreviousRide = r.Uint16()
	g.PreviousRideTimeOut = r.Uint16()

	count := r.Uint32()
	for i := uint32(0); i < count; i++ {
		var t world.Thought
		t.Type = r.Uint8()
		if version <= 2 {
			t.Item = uint16(r.Int16())
		} else {
			t.Item = r.Uint16()
		}
		t.Freshness = r.Uint8()
		t.FreshTimeout = r.Uint8()
		if int(i) < len(g.Thoughts) {
			g.Thoughts[i] = t
		}
	}

	g.LitterCount = r.Uint8()
	g.DisgustingCount = r.Uint8()
	g.AmountOfFood = r.Uint8()
	g.AmountOfDrinks = r.Uint8()
	g.AmountOfSouvenirs = r.Uint8()
	g.VandalismSeen = r.Uint8()
	g.VoucherType = r.Uint8()
	g.VoucherRideID = r.Uint16()
	g.SurroundingsThoughtTimeout = r.Uint8()
	g.Angriness = r.Uint8()
	g.TimeLost = r.Uint8()
	g.DaysInQueue = r.Uint8()
	g.BalloonColour = r.Uint8()
	g.UmbrellaColour = r.Uint8()
	g.HatColour = r.Uint8()
	g.FavouriteRide = r.Uint16()
	g.FavouriteRideRating = r.Uint8()
	g.ItemFlags = r.Uint64()
}

func (e *Engine) writeGuest(w *binio.Writer, st *world.State, g *world.Guest) {
	writePeep(w, &g.Peep)

	w.Uint8(g.GuestNumRides)
	w.Uint16(g.GuestNextInQueue)
	w.Int32(g.ParkEntryTime)
	w.Uint16(g.GuestHeadingToRideID)
	w.Uint8(g.GuestIsLostCountdown)
	w.Uint8(g.GuestTimeOnRide)
	w.Int16(g.PaidToEnter)
	w.Int16(g.PaidOnRides)
	w.Int16(g.PaidOnFood)
	w.Int16(g.PaidOnDrink)
	w.Int16(g.PaidOnSouvenirs)
	w.Bool(g.OutsideOfPark)
	w.Uint8(g.Happiness)
	w.Uint8(g.HappinessTarget)
	w.Uint8(g.Nausea)
	w.Uint8(g.NauseaTarget)
	w.Uint8(g.Hunger)
	w.Uint8(g.Thirst)
	w.Uint8(g.Toilet)
	w.Uint8(g.TimeToConsume)
	w.Uint8(g.Intensity)
	w.Uint8(g.NauseaTolerance)

	w.Uint16(g.TimeInQueue)
	rides := st.RideUse.Rides(g.SpriteIndex)
	w.Uint32(uint32(len(rides)))
	for _, id := range rides {
		w.Uint16(id)
	}
	rideTypes := st.RideUse.RideTypes(g.SpriteIndex)
	w.Uint32(uint32(len(rideTypes)))
	for _, id := range rideTypes {
		w.Uint16(id)
	}

	w.Int32(g.CashInPocket)
	w.Int32(g.CashSpent)
	w.Uint16(g.Photo1RideRef)
	w.Uint16(g.Photo2RideRef)
	w.Uint16(g.Photo3RideRef)
	w.Uint16(g.Photo4RideRef)
	w.Uint8(g.RejoinQueueTimeout)
	w.Uint16(g.PreviousRide)
	w.Uint16(g.PreviousRideTimeOut)

	w.Uint32(uint32(len(g.Thoughts)))
	for i := range g.Thoughts {
		w.Uint8(g.Thoughts[i].Type)
		w.Uint16(g.Thoughts[i].Item)
		w.Uint8(g.Thoughts[i].Freshness)
		w.Uint8(g.Thoughts[i].FreshTimeout)
	}

	w.Uint8(g.LitterCount)
	w.Uint8(g.DisgustingCount)
	w.Uint8(g.AmountOfFood)
	w.Uint8(g.AmountOfDrinks)
	w.Uint8(g.AmountOfSouvenirs)
	w.Uint8(g.VandalismSeen)
	w.Uint8(g.VoucherType)
	w.Uint16(g.VoucherRideID)
	w.Uint8(g.SurroundingsThoughtTimeout)
	w.Uint8(g.Angriness)
	w.Uint8(g.TimeLost)
	w.Uint8(g.DaysInQueue)
	w.Uint8(g.BalloonColour)
	w.Uint8(g.UmbrellaColour)
	w.Uint8(g.HatColour)
	w.Uint16(g.FavouriteRide)
	w.Uint8(g.FavouriteRideRating)
	w.Uint64(g.ItemFlags)
}

func (e *Engine) readStaff(r *binio.Reader, st *world.State, s *world.Staff) {
	version := e.hdr.TargetVersion
	e.readPeep(r, st, &s.Peep, nil, s)

	count := r.Uint32()
	area := make([]world.TileCoords, 0, count)
	for i := uint32(0); i < count; i++ {
		var c world.TileCoords
		c.X = r.Int32()
		c.Y = r.Int32()
		area = append(area, c)
	}
	s.SetPatrolAreaTiles(area)

	if version <= 1 {
		return
	}

	s.AssignedStaffType = r.Uint8()
	s.MechanicTimeSinceCall = r.Uint16()
	s.HireDate = r.Int32()
	if version <= 2 {
		r.Uint8()
	}
	s.StaffOrders = r.Uint8()
	s.StaffMowingTimeout = r.Uint16()
	s.StaffLawnsMown = r.Uint32()
	s.StaffGardensWatered = r.Uint32()
	s.StaffLitterSwept = r.Uint32()
	s.StaffBinsEmptied = r.Uint32()
}

func writeStaff(w *binio.Writer, s *world.Staff) {
	writePeep(w, &s.Peep)

	area := s.PatrolAreaTiles()
	w.Uint32(uint32(len(area)))
	for _, c := range area {
		w.Int32(c.X)
		w.Int32(c.Y)
	}

	w.Uint8(s.AssignedStaffType)
	w.Uint16(s.MechanicTimeSinceCall)
	w.Int32(s.HireDate)
	w.Uint8(s.StaffOrders)
	w.Uint16(s.StaffMowingTimeout)
	w.Uint32(s.StaffLawnsMown)
	w.Uint32(s.StaffGardensWatered)
	w.Uint32(s.StaffLitterSwept)
	w.Uint32(s.StaffBinsEmptied)
}

func readLitter(r *binio.Reader, l *world.Litter) {
	readEntityBase(r, &l.EntityBase)
	l.SubType = r.Uint8()
	l.CreationTick = r.Uint32()
}

func writeLitter(w *binio.Writer, l *world.Litter) {
	writeEntityBase(w, &l.EntityBase)
	w.Uint8(l.SubType)
	w.Uint32(l.CreationTick)
}

func readSteamParticle(r *binio.Reader, p *world.SteamParticle) {
	readEntityBase(r, &p.EntityBase)
	p.TimeToMove = r.Uint16()
	p.Frame = r.Uint16()
}

func writeSteamParticle(w *binio.Writer, p *world.SteamParticle) {
	writeEntityBase(w, &p.EntityBase)
	w.Uint16(p.TimeToMove)
	w.Uint16(p.Frame)
}

func readMoneyEffect(r *binio.Reader, m *world.MoneyEffect) {
	readEntityBase(r, &m.EntityBase)
	m.MoveDelay = r.Uint16()
	m.NumMovements = r.Uint8()
	m.Vertical = r.Uint8()
	m.Value = r.Int64()
	m.OffsetX = r.Int16()
	m.Wiggle = r.Uint16()
}

func writeMoneyEffect(w *binio.Writer, m *world.MoneyEffect) {
	writeEntityBase(w, &m.EntityBase)
	w.Uint16(m.MoveDelay)
	w.Uint8(m.NumMovements)
	w.Uint8(m.Vertical)
	w.Int64(m.Value)
	w.Int16(m.OffsetX)
	w.Uint16(m.Wiggle)
}

// The crash particle frame is stored twice; the second copy wins on
// read and both copies carry the same value on write.
func readCrashedVehicleParticle(r *binio.Reader, p *world.CrashedVehicleParticle) {
	readEntityBase(r, &p.EntityBase)
	p.Frame = r.Uint16()
	p.TimeToLive = r.Uint16()
	p.Frame = r.Uint16()
	p.Colour[0] = r.Uint8()
	p.Colour[1] = r.Uint8()
	p.CrashedSpriteBase = r.Uint16()
	p.VelocityX = r.Int16()
	p.VelocityY = r.Int16()
	p.VelocityZ = r.Int16()
	p.AccelerationX = r.Int16()
	p.AccelerationY = r.Int16()
	p.AccelerationZ = r.Int16()
}

func writeCrashedVehicleParticle(w *binio.Writer, p *world.CrashedVehicleParticle) {
	writeEntityBase(w, &p.EntityBase)
	w.Uint16(p.Frame)
	w.Uint16(p.TimeToLive)
	w.Uint16(p.Frame)
	w.Uint8(p.Colour[0])
	w.Uint8(p.Colour[1])
	w.Uint16(p.CrashedSpriteBase)
	w.Int16(p.VelocityX)
	w.Int16(p.VelocityY)
	w.Int16(p.VelocityZ)
	w.Int16(p.AccelerationX)
	w.Int16(p.AccelerationY)
	w.Int16(p.AccelerationZ)
}

// The fountain target y is stored twice as well.
func readJumpingFountain(r *binio.Reader, f *world.JumpingFountain) {
	readEntityBase(r, &f.EntityBase)
	f.NumTicksAlive = r.Uint16()
	f.Frame = r.Uint16()
	f.FountainFlags = r.Uint32()
	f.TargetX = r.Int16()
	f.TargetY = r.Int16()
	f.TargetY = r.Int16()
	f.Iteration = r.Uint8()
}

func writeJumpingFountain(w *binio.Writer, f *world.JumpingFountain) {
	writeEntityBase(w, &f.EntityBase)
	w.Uint16(f.NumTicksAlive)
	w.Uint16(f.Frame)
	w.Uint32(f.FountainFlags)
	w.Int16(f.TargetX)
	w.Int16(f.TargetY)
	w.Int16(f.TargetY)
	w.Uint8(f.Iteration)
}

func readBalloon(r *binio.Reader, b *world.Balloon) {
	readEntityBase(r, &b.EntityBase)
	b.Popped = r.Bool()
	b.TimeToMove = r.Uint8()
	b.Frame = r.Uint16()
	b.Colour = r.Uint8()
}

func writeBalloon(w *binio.Writer, b *world.Balloon) {
	writeEntityBase(w, &b.EntityBase)
	w.Bool(b.Popped)
	w.Uint8(b.TimeToMove)
	w.Uint16(b.Frame)
	w.Uint8(b.Colour)
}

func readDuck(r *binio.Reader, d *world.Duck) {
	readEntityBase(r, &d.EntityBase)
	d.Frame = r.Uint16()
	d.TargetX = r.Int16()
	d.TargetY = r.Int16()
	d.State = r.Uint8()
}

func writeDuck(w *binio.Writer, d *world.Duck) {
	writeEntityBase(w, &d.EntityBase)
	w.Uint16(d.Frame)
	w.Int16(d.TargetX)
	w.Int16(d.TargetY)
	w.Uint8(d.State)
}

func (e *Engine) readEntity(r *binio.Reader, st *world.State, ent *world.Entity) {
	version := e.hdr.TargetVersion
	switch ent.Kind {
	case world.EntityKindVehicle:
		readVehicle(r, version, ent.Vehicle)
	case world.EntityKindGuest:
		e.readGuest(r, st, ent.Guest)
	case world.EntityKindStaff:
		e.readStaff(r, st, ent.Staff)
	case world.EntityKindLitter:
		readLitter(r, ent.Litter)
	case world.EntityKindSteamParticle:
		readSteamParticle(r, ent.SteamParticle)
	case world.EntityKindMoneyEffect:
		readMoneyEffect(r, ent.MoneyEffect)
	case world.EntityKindCrashedVehicleParticle:
		readCrashedVehicleParticle(r, ent.CrashedVehicleParticle)
	case world.EntityKindExplosionCloud:
		readEntityBase(r, &ent.ExplosionCloud.EntityBase)
		ent.ExplosionCloud.Frame = r.Uint16()
	case world.EntityKindCrashSplash:
		readEntityBase(r, &ent.CrashSplash.EntityBase)
		ent.CrashSplash.Frame = r.Uint16()
	case world.EntityKindExplosionFlare:
		readEntityBase(r, &ent.ExplosionFlare.EntityBase)
		ent.ExplosionFlare.Frame = r.Uint16()
	case world.EntityKindJumpingFountain:
		readJumpingFountain(r, ent.JumpingFountain)
	case world.EntityKindBalloon:
		readBalloon(r, ent.Balloon)
	case world.EntityKindDuck:
		readDuck(r, ent.Duck)
	}
}

func (e *Engine) writeEntity(w *binio.Writer, st *world.State, ent *world.Entity) {
	switch ent.Kind {
	case world.EntityKindVehicle:
		writeVehicle(w, ent.Vehicle)
	case world.EntityKindGuest:
		e.writeGuest(w, st, ent.Guest)
	case world.EntityKindStaff:
		writeStaff(w, ent.Staff)
	case world.EntityKindLitter:
		writeLitter(w, ent.Litter)
	case world.EntityKindSteamParticle:
		writeSteamParticle(w, ent.SteamParticle)
	case world.EntityKindMoneyEffect:
		writeMoneyEffect(w, ent.MoneyEffect)
	case world.EntityKindCrashedVehicleParticle:
		writeCrashedVehicleParticle(w, ent.CrashedVehicleParticle)
	case world.EntityKindExplosionCloud:
		writeEntityBase(w, &ent.ExplosionCloud.EntityBase)
		w.Uint16(ent.ExplosionCloud.Frame)
	case world.EntityKindCrashSplash:
		writeEntityBase(w, &ent.CrashSplash.EntityBase)
		w.Uint16(ent.CrashSplash.Frame)
	case world.EntityKindExplosionFlare:
		writeEntityBase(w, &ent.ExplosionFlare.EntityBase)
		w.Uint16(ent.ExplosionFlare.Frame)
	case world.EntityKindJumpingFountain:
		writeJumpingFountain(w, ent.JumpingFountain)
	case world.EntityKindBalloon:
		writeBalloon(w, ent.Balloon)
	case world.EntityKindDuck:
		writeDuck(w, ent.Duck)
	}
}

func (e *Engine) readEntitiesChunk(st *world.State) error {
	_, err := chunk.Find(e.rs, chunkEntities, func(r *binio.Reader) error {
		st.Entities.Reset()
		for kind := world.EntityKind(0); kind < world.EntityKindCount; kind++ {
			tag := world.EntityKind(r.Uint8())
			if err := r.Err(); err != nil {
				return err
			}
			if tag != kind {
				return fmt.Errorf("parkfile: entity group %d out of order, got %d", kind, tag)
			}
			count := r.Uint16()
			for i := uint16(0); i < count; i++ {
				index := r.Uint16()
				ent := st.Entities.CreateAt(kind, index)
				if ent == nil {
					// Slot out of range; decode into a discard
					// entity to keep the stream aligned.
					ent = (&world.EntityTable{}).CreateAt(kind, 0)
				}
				e.readEntity(r, st, ent)
			}
		}
		return nil
	})
	return err
}

func (e *Engine) writeEntitiesChunk(ws io.WriteSeeker, st *world.State) error {
	return chunk.Write(ws, chunkEntities, func(w *binio.Writer) error {
		for kind := world.EntityKind(0); kind < world.EntityKindCount; kind++ {
			ents := st.Entities.OfKind(kind)
			w.Uint8(uint8(kind))
			w.Uint16(uint16(len(ents)))
			for _, ent := range ents {
				w.Uint16(ent.Base().SpriteIndex)
				e.writeEntity(w, st, ent)
			}
		}
		return nil
	})
}
