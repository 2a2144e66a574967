package world

// EntityKind identifies the concrete type of a map entity.
type EntityKind uint8

// Entity kinds in serialization order.
const (
	EntityKindVehicle EntityKind = iota
	EntityKindGuest
	EntityKindStaff
	EntityKindLitter
	EntityKindSteamParticle
	EntityKindMoneyEffect
	EntityKindCrashedVehicleParticle
	EntityKindExplosionCloud
	EntityKindCrashSplash
	EntityKindExplosionFlare
	EntityKindJumpingFountain
	EntityKindBalloon
	EntityKindDuck

	EntityKindCount
)

// MaxEntities is the entity slot capacity of one park.
const MaxEntities = 10000

// EntityIndexNull marks an absent entity reference.
const EntityIndexNull uint16 = 0xFFFF

// EntityBase is the positional state every entity carries.
type EntityBase struct {
	SpriteIndex          uint16
	SpriteHeightNegative uint8
	X, Y, Z              int16
	SpriteWidth          uint8
	SpriteHeightPositive uint8
	SpriteDirection      uint8
}

// VehicleSeatCount is the passenger capacity of one car.
const VehicleSeatCount = 32

// Vehicle is one train car.
type Vehicle struct {
	EntityBase

	SubType           uint8
	Pitch             uint8
	BankRotation      uint8
	RemainingDistance int32
	Velocity          int32
	Acceleration      int32
	Ride              uint16
	VehicleType       uint8
	BodyColour        uint8
	TrimColour        uint8
	TrackProgress     uint16
	BoatLocationX     int32
	BoatLocationY     int32

	TrackTypeAndDirection  uint16
	TrackX, TrackY, TrackZ int32

	NextVehicleOnTrain uint16
	PrevVehicleOnRide  uint16
	NextVehicleOnRide  uint16

	Var44       uint16
	Mass        uint16
	UpdateFlags uint32
	SwingSprite uint8

	CurrentStation uint8
	CurrentTime    int16
	CrashZ         int16

	Status   uint8
	SubState uint8

	Peeps             [VehicleSeatCount]uint16
	PeepTshirtColours [VehicleSeatCount]uint8

	NumSeats           uint8
	NumPeeps           uint8
	NextFreeSeat       uint8
	RestraintsPosition uint8
	CrashX             int16

	Sound2Flags       uint16
	SpinSprite        uint8
	Sound1ID          uint8
	Sound1Volume      uint8
	Sound2ID          uint8
	Sound2Volume      uint8
	SoundVectorFactor int16

	TimeWaiting               uint16
	Speed                     uint8
	PoweredAcceleration       uint8
	DodgemsCollisionDirection uint8
	AnimationFrame            uint8
	AnimationState            uint32
	ScreamSoundID             uint8
	TrackSubposition          uint8
	VarCE                     uint8
	VarCF                     uint8
	LostTimeOut               uint16
	VerticalDropCountdown     int8
	VarD3                     uint8
	MiniGolfCurrentAnimation  uint8
	MiniGolfFlags             uint8
	RideSubtype               uint16
	ColoursExtended           uint8
	SeatRotation              uint8
	TargetSeatRotation        uint8
	IsCrashedVehicle          bool
}

// Peep pathfinding capacities.
const PathfindHistorySize = 4

// PathfindTarget is one remembered pathfinding junction.
type PathfindTarget struct {
	X, Y, Z   uint8
	Direction uint8
}

// Peep is the state shared by guests and staff.
type Peep struct {
	EntityBase

	Name string

	NextLocX  int32
	NextLocY  int32
	NextLocZ  int32
	NextFlags uint8

	State      uint8
	SubState   uint8
	SpriteType uint8

	TshirtColour   uint8
	TrousersColour uint8

	DestinationX         int16
	DestinationY         int16
	DestinationTolerance uint8
	Var37                uint8

	Energy       uint8
	EnergyTarget uint8
	Mass         uint8

	WindowInvalidateFlags uint8

	CurrentRide        uint16
	CurrentRideStation uint8
	CurrentTrain       uint8

	TimeToSitdown           uint8
	SpecialSprite           uint8
	ActionSpriteType        uint8
	NextActionSpriteType    uint8
	ActionSpriteImageOffset uint8
	Action                  uint8
	ActionFrame             uint8
	StepProgress            uint8

	PeepDirection        uint8
	InteractionRideIndex uint16

	ID uint32

	PathCheckOptimisation uint8
	PeepFlags             uint32

	PathfindGoal    PathfindTarget
	PathfindHistory [PathfindHistorySize]PathfindTarget
	WalkingFrameNum uint8
}

// Guest thought capacities.
const (
	MaxThoughts = 5

	// ThoughtItemNone marks a thought with no subject.
	ThoughtItemNone uint16 = 0xFFFF
)

// Thought is one guest thought.
type Thought struct {
	Type         uint8
	Item         uint16
	Freshness    uint8
	FreshTimeout uint8
}

// Guest is one park visitor.
type Guest struct {
	Peep

	GuestNumRides        uint8
	GuestNextInQueue     uint16
	ParkEntryTime        int32
	GuestHeadingToRideID uint16
	GuestIsLostCountdown uint8
	GuestTimeOnRide      uint8

	PaidToEnter     int16
	PaidOnRides     int16
	PaidOnFood      int16
	PaidOnDrink     int16
	PaidOnSouvenirs int16

	OutsideOfPark bool

	Happiness       uint8
	HappinessTarget uint8
	Nausea          uint8
	NauseaTarget    uint8
	Hunger          uint8
	Thirst          uint8
	Toilet          uint8
	TimeToConsume   uint8
	Intensity       uint8
	NauseaTolerance uint8

	TimeInQueue uint16

	CashInPocket int32
	CashSpent    int32

	Photo1RideRef uint16
	Photo2RideRef uint16
	Photo3RideRef uint16
	Photo4RideRef uint16

	RejoinQueueTimeout  uint8
	PreviousRide        uint16
	PreviousRideTimeOut uint16

	Thoughts [MaxThoughts]Thought

	LitterCount                uint8
	DisgustingCount            uint8
	AmountOfFood               uint8
	AmountOfDrinks             uint8
	AmountOfSouvenirs          uint8
	VandalismSeen              uint8
	VoucherType                uint8
	VoucherRideID              uint16
	SurroundingsThoughtTimeout uint8
	Angriness                  uint8
	TimeLost                   uint8
	DaysInQueue                uint8
	BalloonColour              uint8
	UmbrellaColour             uint8
	HatColour                  uint8
	FavouriteRide              uint16
	FavouriteRideRating        uint8
	ItemFlags                  uint64
}

// Staff patrol area geometry. The bitmap covers the whole map in 4x4
// tile blocks, 32 blocks per array word.
const (
	PatrolAreaSize          = 128
	PatrolAreaBlocksPerLine = 64
	PatrolBlockSize         = 4
)

// TileCoords is one tile position.
type TileCoords struct {
	X, Y int32
}

// Staff is one staff member.
type Staff struct {
	Peep

	// PatrolArea is nil when the staff member roams freely.
	PatrolArea *[PatrolAreaSize]uint32

	AssignedStaffType     uint8
	MechanicTimeSinceCall uint16
	HireDate              int32
	StaffOrders           uint8
	StaffMowingTimeout    uint16
	StaffLawnsMown        uint32
	StaffGardensWatered   uint32
	StaffLitterSwept      uint32
	StaffBinsEmptied      uint32
}

// PatrolAreaTiles expands the patrol bitmap into the tile list it
// covers, block by block in bit order.
func (s *Staff) PatrolAreaTiles() []TileCoords {
	if s.PatrolArea == nil {
		return nil
	}
	var area []TileCoords
	for i := 0; i < PatrolAreaSize; i++ {
		word := s.PatrolArea[i]
		for j := 0; j < 32; j++ {
			if word&(1<<uint(j)) == 0 {
				continue
			}
			blockIndex := i*32 + j
			sx := int32(blockIndex%PatrolAreaBlocksPerLine) * PatrolBlockSize
			sy := int32(blockIndex/PatrolAreaBlocksPerLine) * PatrolBlockSize
			for y := int32(0); y < PatrolBlockSize; y++ {
				for x := int32(0); x < PatrolBlockSize; x++ {
					area = append(area, TileCoords{sx + x, sy + y})
				}
			}
		}
	}
	return area
}

// SetPatrolAreaTiles rebuilds the patrol bitmap from a tile list. An
// empty list clears the patrol area.
func (s *Staff) SetPatrolAreaTiles(area []TileCoords) {
	if len(area) == 0 {
		s.PatrolArea = nil
		return
	}
	s.PatrolArea = new([PatrolAreaSize]uint32)
	for _, c := range area {
		blockIndex := int(c.Y/PatrolBlockSize)*PatrolAreaBlocksPerLine + int(c.X/PatrolBlockSize)
		word := blockIndex / 32
		if word < 0 || word >= PatrolAreaSize {
			continue
		}
		s.PatrolArea[word] |= 1 << uint(blockIndex%32)
	}
}

// Litter is one piece of rubbish.
type Litter struct {
	EntityBase
	SubType      uint8
	CreationTick uint32
}

// SteamParticle is one locomotive steam puff.
type SteamParticle struct {
	EntityBase
	TimeToMove uint16
	Frame      uint16
}

// MoneyEffect is one floating money indicator.
type MoneyEffect struct {
	EntityBase
	MoveDelay    uint16
	NumMovements uint8
	Vertical     uint8
	Value        int64
	OffsetX      int16
	Wiggle       uint16
}

// CrashedVehicleParticle is one piece of crashed car debris.
type CrashedVehicleParticle struct {
	EntityBase
	Frame             uint16
	TimeToLive        uint16
	Colour            [2]uint8
	CrashedSpriteBase uint16
	VelocityX         int16
	VelocityY         int16
	VelocityZ         int16
	AccelerationX     int16
	AccelerationY     int16
	AccelerationZ     int16
}

// ExplosionCloud is one explosion smoke sprite.
type ExplosionCloud struct {
	EntityBase
	Frame uint16
}

// CrashSplash is one water crash splash sprite.
type CrashSplash struct {
	EntityBase
	Frame uint16
}

// ExplosionFlare is one explosion flare sprite.
type ExplosionFlare struct {
	EntityBase
	Frame uint16
}

// JumpingFountain is one animated fountain jet.
type JumpingFountain struct {
	EntityBase
	NumTicksAlive uint16
	Frame         uint16
	FountainFlags uint32
	TargetX       int16
	TargetY       int16
	Iteration     uint8
}

// Balloon is one released balloon.
type Balloon struct {
	EntityBase
	Popped     bool
	TimeToMove uint8
	Frame      uint16
	Colour     uint8
}

// Duck is one duck.
type Duck struct {
	EntityBase
	Frame   uint16
	TargetX int16
	TargetY int16
	State   uint8
}

// Entity is one entity slot: the kind tag plus exactly one populated
// payload.
type Entity struct {
	Kind EntityKind

	Vehicle                *Vehicle
	Guest                  *Guest
	Staff                  *Staff
	Litter                 *Litter
	SteamParticle          *SteamParticle
	MoneyEffect            *MoneyEffect
	CrashedVehicleParticle *CrashedVehicleParticle
	ExplosionCloud         *ExplosionCloud
	CrashSplash            *CrashSplash
	ExplosionFlare         *ExplosionFlare
	JumpingFountain        *JumpingFountain
	Balloon                *Balloon
	Duck                   *Duck
}

// Base returns the positional state of the populated payload.
func (e *Entity) Base() *EntityBase {
	switch e.Kind {
	case EntityKindVehicle:
		return &e.Vehicle.EntityBase
	case EntityKindGuest:
		return &e.Guest.EntityBase
	case EntityKindStaff:
		return &e.Staff.EntityBase
	case EntityKindLitter:
		return &e.Litter.EntityBase
	case EntityKindSteamParticle:
		return &e.SteamParticle.EntityBase
	case EntityKindMoneyEffect:
		return &e.MoneyEffect.EntityBase
	case EntityKindCrashedVehicleParticle:
		return &e.CrashedVehicleParticle.EntityBase
	case EntityKindExplosionCloud:
		return &e.ExplosionCloud.EntityBase
	case EntityKindCrashSplash:
		return &e.CrashSplash.EntityBase
	case EntityKindExplosionFlare:
		return &e.ExplosionFlare.EntityBase
	case EntityKindJumpingFountain:
		return &e.JumpingFountain.EntityBase
	case EntityKindBalloon:
		return &e.Balloon.EntityBase
	case EntityKindDuck:
		return &e.Duck.EntityBase
	}
	return nil
}

// EntityTable is the sparse entity slot table, keyed by sprite index.
type EntityTable struct {
	slots map[uint16]*Entity
}

// Reset vacates every slot.
func (t *EntityTable) Reset() {
	t.slots = make(map[uint16]*Entity)
}

// CreateAt allocates an entity of the given kind at the given slot,
// replacing any occupant. Out-of-range indices return nil.
func (t *EntityTable) CreateAt(kind EntityKind, index uint16) *Entity {
	if index >= MaxEntities {
		return nil
	}
	if t.slots == nil {
		t.slots = make(map[uint16]*Entity)
	}
	e := &Entity{Kind: kind}
	switch kind {
	case EntityKindVehicle:
		e.Vehicle = &Vehicle{}
	case EntityKindGuest:
		e.Guest = &Guest{}
	case EntityKindStaff:
		e.Staff = &Staff{}
	case EntityKindLitter:
		e.Litter = &Litter{}
	case EntityKindSteamParticle:
		e.SteamParticle = &SteamParticle{}
	case EntityKindMoneyEffect:
		e.MoneyEffect = &MoneyEffect{}
	case EntityKindCrashedVehicleParticle:
		e.CrashedVehicleParticle = &CrashedVehicleParticle{}
	case EntityKindExplosionCloud:
		e.ExplosionCloud = &ExplosionCloud{}
	case EntityKindCrashSplash:
		e.CrashSplash = &CrashSplash{}
	case EntityKindExplosionFlare:
		e.ExplosionFlare = &ExplosionFlare{}
	case EntityKindJumpingFountain:
		e.JumpingFountain = &JumpingFountain{}
	case EntityKindBalloon:
		e.Balloon = &Balloon{}
	case EntityKindDuck:
		e.Duck = &Duck{}
	default:
		return nil
	}
	e.Base().SpriteIndex = index
	t.slots[index] = e
	return e
}

// Get returns the entity at the given slot, or nil when vacant.
func (t *EntityTable) Get(index uint16) *Entity {
	return t.slots[index]
}

// OfKind returns the entities of one kind in ascending slot order.
func (t *EntityTable) OfKind(kind EntityKind) []*Entity {
	var out []*Entity
	for i := uint16(0); i < MaxEntities; i++ {
		if e, ok := t.slots[i]; ok && e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Count returns the number of occupied slots of one kind.
func (t *EntityTable) Count(kind EntityKind) int {
	n := 0
	for _, e := range t.slots {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
