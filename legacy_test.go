package parkfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mzki/parkfile/binio"
	"github.com/mzki/parkfile/chunk"
	"github.com/mzki/parkfile/objects"
	"github.com/mzki/parkfile/world"
)

// Fixtures for files written by older engine revisions. Save always
// emits the current revision, so old-format containers are built by
// hand here: a back-dated header plus the mandatory tiles and general
// chunks, then the chunk under test in its old layout.

func createLegacyPark(t *testing.T, version uint32) (*os.File, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "legacy.park")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { f.Close() })
	hdr := chunk.Header{Magic: Magic, TargetVersion: version, MinVersion: 0}
	if err := chunk.WriteHeader(f, hdr); err != nil {
		t.Fatal(err)
	}
	return f, path
}

func appendLegacyChunk(t *testing.T, f *os.File, typ uint32, fn func(w *binio.Writer) error) {
	t.Helper()
	if err := chunk.Write(f, typ, fn); err != nil {
		t.Fatal(err)
	}
}

// appendBaseChunks writes the two mandatory chunks; their layout never
// changed across revisions, so the current writers apply.
func appendBaseChunks(t *testing.T, f *os.File, st *world.State) {
	t.Helper()
	e := New(DefaultOptions(), nil)
	if err := e.writeTilesChunk(f, st); err != nil {
		t.Fatal(err)
	}
	if err := e.writeGeneralChunk(f, st); err != nil {
		t.Fatal(err)
	}
}

func minimalState() *world.State {
	st := world.NewState()
	st.Map.Size = 1
	st.Map.Elements = []world.TileElement{surfaceElement(true)}
	return st
}

func importLegacy(t *testing.T, path string, catalog ObjectCatalog) (*Engine, *world.State) {
	t.Helper()
	e := New(DefaultOptions(), catalog)
	if _, err := e.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	t.Cleanup(func() { e.Close() })
	st := world.NewState()
	if err := e.Import(st); err != nil {
		t.Fatalf("Import: %v", err)
	}
	return e, st
}

func writeByteVector(w *binio.Writer, p []uint8) {
	w.Uint32(uint32(len(p)))
	w.Bytes(p)
}

func ridesBitmap(ids ...uint16) []uint8 {
	bm := make([]uint8, world.LegacyRidesBitmapSize)
	for _, id := range ids {
		bm[id/8] |= 1 << (id % 8)
	}
	return bm
}

func rideTypesBitmap(ids ...uint16) []uint8 {
	bm := make([]uint8, world.LegacyRideTypesBitmapSize)
	for _, id := range ids {
		bm[id/8] |= 1 << (id % 8)
	}
	return bm
}

type legacyEntity struct {
	kind  world.EntityKind
	index uint16
	write func(w *binio.Writer)
}

func appendLegacyEntities(t *testing.T, f *os.File, ents []legacyEntity) {
	t.Helper()
	appendLegacyChunk(t, f, chunkEntities, func(w *binio.Writer) error {
		for kind := world.EntityKind(0); kind < world.EntityKindCount; kind++ {
			var group []legacyEntity
			for _, ent := range ents {
				if ent.kind == kind {
					group = append(group, ent)
				}
			}
			w.Uint8(uint8(kind))
			w.Uint16(uint16(len(group)))
			for _, ent := range group {
				w.Uint16(ent.index)
				ent.write(w)
			}
		}
		return nil
	})
}

// pathCatalog resolves legacy single-object footpaths for import tests.
type pathCatalog struct {
	mappings map[string]*objects.FootpathMapping
}

func (c *pathCatalog) FootpathSurface(d objects.Descriptor) *objects.FootpathMapping {
	return c.mappings[d.Name()]
}

func (c *pathCatalog) HasObject(string) bool       { return true }
func (c *pathCatalog) HasLegacyObject(string) bool { return true }

func (c *pathCatalog) AddObject(objects.Generation, string, []byte) error { return nil }

func legacyPathElement(slot uint16, queue bool) world.TileElement {
	var el world.TileElement
	el.SetKind(world.TileElementKindPath)
	el.SetLegacyPathIndex(slot)
	el.SetPathIsQueue(queue)
	el.SetLastForTile(true)
	return el
}

func TestImportSplitsLegacyFootpaths(t *testing.T) {
	catalog := &pathCatalog{mappings: map[string]*objects.FootpathMapping{
		"TARMAC": {
			Original:      "TARMAC",
			NormalSurface: "rct2.footpath_surface.tarmac",
			QueueSurface:  "rct2.footpath_surface.queue_yellow",
			Railings:      "rct2.footpath_railings.concrete",
		},
		"ROAD": {
			Original:      "ROAD",
			NormalSurface: "rct2.footpath_surface.road",
			QueueSurface:  "rct2.footpath_surface.queue_yellow",
			Railings:      "rct2.footpath_railings.concrete",
		},
	}}

	f, path := createLegacyPark(t, 2)
	appendLegacyChunk(t, f, chunkObjects, func(w *binio.Writer) error {
		w.Uint16(1)
		w.Uint16(uint16(objects.TypePaths))
		w.Uint32(2)
		for _, name := range []string{"TARMAC", "ROAD"} {
			var entry objects.LegacyEntry
			entry.Flags = uint32(objects.TypePaths)
			entry.SetName(name)
			w.Uint8(objectDescriptorDAT)
			writeLegacyEntry(w, entry)
		}
		return nil
	})

	st := world.NewState()
	st.Map.Size = 2
	st.Map.Elements = []world.TileElement{
		legacyPathElement(0, false),
		legacyPathElement(0, true),
		legacyPathElement(1, false),
		surfaceElement(true),
	}
	appendBaseChunks(t, f, st)

	e, got := importLegacy(t, path, catalog)

	// the two path slots split into three surfaces and one railings
	// object, shared slots deduplicated
	if n := e.Required.Size(objects.TypePaths); n != 0 {
		t.Errorf("path category size = %d, want 0 after split", n)
	}
	wantSurfaces := []string{
		"rct2.footpath_surface.tarmac",
		"rct2.footpath_surface.queue_yellow",
		"rct2.footpath_surface.road",
	}
	if n := e.Required.Size(objects.TypeFootpathSurface); n != len(wantSurfaces) {
		t.Fatalf("surface category size = %d, want %d", n, len(wantSurfaces))
	}
	for i, id := range wantSurfaces {
		if d := e.Required.Object(objects.TypeFootpathSurface, objects.EntryIndex(i)); d == nil || d.Identifier != id {
			t.Errorf("surface slot %d = %+v, want %s", i, d, id)
		}
	}
	if d := e.Required.Object(objects.TypeFootpathRailings, 0); d == nil || d.Identifier != "rct2.footpath_railings.concrete" {
		t.Errorf("railings slot 0 = %+v, want concrete", d)
	}

	wantPaths := []struct {
		surface uint16
		queue   bool
	}{
		{0, false}, // TARMAC
		{1, true},  // TARMAC queue
		{2, false}, // ROAD
	}
	for i, want := range wantPaths {
		el := &got.Map.Elements[i]
		if el.HasLegacyPath() {
			t.Errorf("element %d still marked legacy", i)
		}
		if el.PathSurfaceIndex() != want.surface {
			t.Errorf("element %d surface = %d, want %d", i, el.PathSurfaceIndex(), want.surface)
		}
		if el.PathRailingsIndex() != 0 {
			t.Errorf("element %d railings = %d, want 0", i, el.PathRailingsIndex())
		}
		if el.PathIsQueue() != want.queue {
			t.Errorf("element %d queue = %v, want %v", i, el.PathIsQueue(), want.queue)
		}
	}
}

func TestImportDenseBannerArray(t *testing.T) {
	f, path := createLegacyPark(t, 0)
	appendBaseChunks(t, f, minimalState())

	// one record past capacity; the dense form has no explicit ids, so
	// the overflow position is dropped rather than failing the import
	appendLegacyChunk(t, f, chunkBanners, func(w *binio.Writer) error {
		w.Uint32(world.MaxBanners + 1)
		for i := 0; i < world.MaxBanners+1; i++ {
			w.Uint16(2) // type
			w.Uint8(0)  // flags
			switch i {
			case 0:
				w.String("north gate")
			case world.MaxBanners - 1:
				w.String("last slot")
			default:
				w.String("")
			}
			w.Uint8(uint8(i % 32))
			w.Uint16(world.RideIDNull)
			w.Uint8(0)
			w.Int32(int32(i))
			w.Int32(0)
		}
		return nil
	})

	_, got := importLegacy(t, path, nil)

	if got.Banners.Count() != world.MaxBanners {
		t.Fatalf("banner count = %d, want %d", got.Banners.Count(), world.MaxBanners)
	}
	first := got.Banners.Get(0)
	if first == nil || first.ID != 0 || first.Text != "north gate" {
		t.Errorf("banner 0 = %+v, want implicit id 0 and text", first)
	}
	if b := got.Banners.Get(1); b == nil || b.ID != 1 || b.PositionX != 1 {
		t.Errorf("banner 1 = %+v, want implicit id 1", b)
	}
	if b := got.Banners.Get(world.MaxBanners - 1); b == nil || b.Text != "last slot" {
		t.Errorf("banner %d = %+v, want last slot", world.MaxBanners-1, b)
	}
}

func TestImportLegacyVehicleAnimationState(t *testing.T) {
	v := &world.Vehicle{}
	v.SpriteIndex = 4
	v.Ride = 3
	v.Velocity = 98304
	// revisions up to 2 stored the animation state as two words
	v.AnimationState = 0x00561234
	for i := range v.Peeps {
		v.Peeps[i] = world.EntityIndexNull
	}

	f, path := createLegacyPark(t, 2)
	appendBaseChunks(t, f, minimalState())
	appendLegacyEntities(t, f, []legacyEntity{
		{world.EntityKindVehicle, 4, func(w *binio.Writer) {
			writeVehicle(w, v)
		}},
	})

	_, got := importLegacy(t, path, nil)

	ent := got.Entities.Get(4)
	if ent == nil || ent.Kind != world.EntityKindVehicle {
		t.Fatalf("slot 4 = %+v, want vehicle", ent)
	}
	if ent.Vehicle.AnimationState != 0x00561234 {
		t.Errorf("animation state = %#x, want 0x00561234", ent.Vehicle.AnimationState)
	}
	if *ent.Vehicle != *v {
		t.Errorf("vehicle = %+v, want %+v", ent.Vehicle, v)
	}
}

func writeVersion2GuestExtras(w *binio.Writer, g *world.Guest, typesBM, ridesBM []uint8) {
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
	writeByteVector(w, typesBM)
	w.Uint16(g.TimeInQueue)
	writeByteVector(w, ridesBM)
	w.Int32(g.CashInPocket)
	w.Int32(g.CashSpent)
	w.Uint16(g.Photo1RideRef)
	w.Uint16(g.Photo2RideRef)
	w.Uint16(g.Photo3RideRef)
	w.Uint16(g.Photo4RideRef)
	w.Uint8(g.RejoinQueueTimeout)
	w.Uint16(g.PreviousRide)
	w.Uint16(g.PreviousRideTimeOut)
	// thought items were signed words in these revisions
	w.Uint32(uint32(len(g.Thoughts)))
	for i := range g.Thoughts {
		w.Uint8(g.Thoughts[i].Type)
		w.Int16(int16(g.Thoughts[i].Item))
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

func TestImportVersion2GuestAndStaff(t *testing.T) {
	g := &world.Guest{}
	g.SpriteIndex = 12
	g.Name = "Imogen"
	g.X = 96
	g.Y = 160
	g.State = 1
	g.Energy = 80
	g.Mass = 61
	g.InteractionRideIndex = world.RideIDNull
	g.ID = 654
	g.GuestNumRides = 2
	g.GuestNextInQueue = world.EntityIndexNull
	g.ParkEntryTime = 99
	g.GuestHeadingToRideID = 3
	g.PaidToEnter = 100
	g.PaidOnDrink = 35
	g.Happiness = 180
	g.Thirst = 40
	g.Intensity = 70
	g.NauseaTolerance = 2
	g.TimeInQueue = 12
	g.CashInPocket = 7000
	g.Photo1RideRef = 3
	g.RejoinQueueTimeout = 2
	g.PreviousRide = 1
	g.Thoughts[0] = world.Thought{Type: 2, Item: 7, Freshness: 1, FreshTimeout: 4}
	g.FavouriteRide = 3
	g.ItemFlags = 1 << 3

	s := &world.Staff{}
	s.SpriteIndex = 30
	s.Name = "Mechanic 2"
	s.State = 1
	s.Mass = 45
	s.InteractionRideIndex = world.RideIDNull
	s.ID = 888
	s.AssignedStaffType = 1
	s.MechanicTimeSinceCall = 77
	s.HireDate = 4321
	s.StaffOrders = 3
	s.StaffMowingTimeout = 9
	s.StaffLawnsMown = 5
	s.StaffGardensWatered = 6
	s.StaffLitterSwept = 7
	s.StaffBinsEmptied = 8
	patrol := []world.TileCoords{{X: 16, Y: 20}}

	f, path := createLegacyPark(t, 2)
	appendBaseChunks(t, f, minimalState())
	appendLegacyEntities(t, f, []legacyEntity{
		{world.EntityKindGuest, 12, func(w *binio.Writer) {
			writePeep(w, &g.Peep)
			writeVersion2GuestExtras(w, g, rideTypesBitmap(20), ridesBitmap(3))
		}},
		{world.EntityKindStaff, 30, func(w *binio.Writer) {
			writePeep(w, &s.Peep)
			w.Uint32(uint32(len(patrol)))
			for _, c := range patrol {
				w.Int32(c.X)
				w.Int32(c.Y)
			}
			w.Uint8(s.AssignedStaffType)
			w.Uint16(s.MechanicTimeSinceCall)
			w.Int32(s.HireDate)
			w.Uint8(0xEE) // dropped on read in these revisions
			w.Uint8(s.StaffOrders)
			w.Uint16(s.StaffMowingTimeout)
			w.Uint32(s.StaffLawnsMown)
			w.Uint32(s.StaffGardensWatered)
			w.Uint32(s.StaffLitterSwept)
			w.Uint32(s.StaffBinsEmptied)
		}},
	})

	_, got := importLegacy(t, path, nil)

	guest := got.Entities.Get(12)
	if guest == nil || guest.Kind != world.EntityKindGuest {
		t.Fatalf("slot 12 = %+v, want guest", guest)
	}
	if *guest.Guest != *g {
		t.Errorf("guest = %+v, want %+v", guest.Guest, g)
	}
	if guest.Guest.Thoughts[0].Item != 7 {
		t.Errorf("thought item = %d, want 7", guest.Guest.Thoughts[0].Item)
	}
	if rides := got.RideUse.Rides(12); len(rides) != 1 || rides[0] != 3 {
		t.Errorf("ride use = %v, want [3] from bitmap", rides)
	}
	if types := got.RideUse.RideTypes(12); len(types) != 1 || types[0] != 20 {
		t.Errorf("ride type use = %v, want [20] from bitmap", types)
	}

	staff := got.Entities.Get(30)
	if staff == nil || staff.Kind != world.EntityKindStaff {
		t.Fatalf("slot 30 = %+v, want staff", staff)
	}
	if staff.Staff.Peep != s.Peep {
		t.Errorf("staff peep = %+v, want %+v", staff.Staff.Peep, s.Peep)
	}
	if staff.Staff.AssignedStaffType != s.AssignedStaffType ||
		staff.Staff.MechanicTimeSinceCall != s.MechanicTimeSinceCall ||
		staff.Staff.HireDate != s.HireDate ||
		staff.Staff.StaffOrders != s.StaffOrders ||
		staff.Staff.StaffMowingTimeout != s.StaffMowingTimeout ||
		staff.Staff.StaffLawnsMown != s.StaffLawnsMown ||
		staff.Staff.StaffGardensWatered != s.StaffGardensWatered ||
		staff.Staff.StaffLitterSwept != s.StaffLitterSwept ||
		staff.Staff.StaffBinsEmptied != s.StaffBinsEmptied {
		t.Errorf("staff = %+v, want %+v", staff.Staff, s)
	}
	var want world.Staff
	want.SetPatrolAreaTiles(patrol)
	if staff.Staff.PatrolArea == nil || *staff.Staff.PatrolArea != *want.PatrolArea {
		t.Errorf("patrol area mismatch")
	}
}

// writeInterleavedGuest emits the single combined peep record of the
// first two revisions, guest slots populated and staff slots zero.
func writeInterleavedGuest(w *binio.Writer, g *world.Guest, typesBM, ridesBM []uint8) {
	writeEntityBase(w, &g.EntityBase)
	w.String(g.Name)
	w.Int32(g.NextLocX)
	w.Int32(g.NextLocY)
	w.Int32(g.NextLocZ)
	w.Uint8(g.NextFlags)
	w.Bool(g.OutsideOfPark)
	w.Uint8(g.State)
	w.Uint8(g.SubState)
	w.Uint8(g.SpriteType)
	w.Uint8(g.GuestNumRides)
	w.Uint8(g.TshirtColour)
	w.Uint8(g.TrousersColour)
	w.Int16(g.DestinationX)
	w.Int16(g.DestinationY)
	w.Uint8(g.DestinationTolerance)
	w.Uint8(g.Var37)
	w.Uint8(g.Energy)
	w.Uint8(g.EnergyTarget)
	w.Uint8(g.Happiness)
	w.Uint8(g.HappinessTarget)
	w.Uint8(g.Nausea)
	w.Uint8(g.NauseaTarget)
	w.Uint8(g.Hunger)
	w.Uint8(g.Thirst)
	w.Uint8(g.Toilet)
	w.Uint8(g.Mass)
	w.Uint8(g.TimeToConsume)
	w.Uint8(g.Intensity)
	w.Uint8(g.NauseaTolerance)
	w.Uint8(g.WindowInvalidateFlags)
	w.Int16(g.PaidOnDrink)
	writeByteVector(w, typesBM)
	w.Uint64(g.ItemFlags)
	w.Uint16(g.Photo2RideRef)
	w.Uint16(g.Photo3RideRef)
	w.Uint16(g.Photo4RideRef)
	w.Uint16(g.CurrentRide)
	w.Uint8(g.CurrentRideStation)
	w.Uint8(g.CurrentTrain)
	w.Uint8(g.TimeToSitdown)
	w.Uint8(g.SpecialSprite)
	w.Uint8(g.ActionSpriteType)
	w.Uint8(g.NextActionSpriteType)
	w.Uint8(g.ActionSpriteImageOffset)
	w.Uint8(g.Action)
	w.Uint8(g.ActionFrame)
	w.Uint8(g.StepProgress)
	w.Uint16(g.GuestNextInQueue)
	w.Uint8(g.PeepDirection)
	w.Uint16(g.InteractionRideIndex)
	w.Uint16(g.TimeInQueue)
	writeByteVector(w, ridesBM)
	w.Uint32(g.ID)
	w.Int32(g.CashInPocket)
	w.Int32(g.CashSpent)
	w.Int32(g.ParkEntryTime)
	w.Uint8(g.RejoinQueueTimeout)
	w.Uint16(g.PreviousRide)
	w.Uint16(g.PreviousRideTimeOut)
	// thought items were single bytes, 255 meaning no subject
	w.Uint32(uint32(len(g.Thoughts)))
	for i := range g.Thoughts {
		th := g.Thoughts[i]
		w.Uint8(th.Type)
		if th.Item == world.ThoughtItemNone {
			w.Uint8(255)
		} else {
			w.Uint8(uint8(th.Item))
		}
		w.Uint8(th.Freshness)
		w.Uint8(th.FreshTimeout)
	}
	w.Uint8(g.PathCheckOptimisation)
	w.Uint16(g.GuestHeadingToRideID)
	w.Uint8(g.GuestIsLostCountdown)
	w.Uint16(g.Photo1RideRef)
	w.Uint32(g.PeepFlags)
	writePathfindTarget(w, &g.PathfindGoal)
	for i := range g.PathfindHistory {
		writePathfindTarget(w, &g.PathfindHistory[i])
	}
	w.Uint8(g.WalkingFrameNum)
	w.Uint8(g.LitterCount)
	w.Uint8(g.GuestTimeOnRide)
	w.Uint8(g.DisgustingCount)
	w.Int16(g.PaidToEnter)
	w.Int16(g.PaidOnRides)
	w.Int16(g.PaidOnFood)
	w.Int16(g.PaidOnSouvenirs)
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
}

// writeInterleavedStaff emits the combined record with the guest-only
// slots filled with junk the reader must consume and drop.
func writeInterleavedStaff(w *binio.Writer, s *world.Staff, patrol []world.TileCoords) {
	writeEntityBase(w, &s.EntityBase)
	w.String(s.Name)
	w.Int32(s.NextLocX)
	w.Int32(s.NextLocY)
	w.Int32(s.NextLocZ)
	w.Uint8(s.NextFlags)
	w.Bool(true) // guest-only outside-of-park slot
	w.Uint8(s.State)
	w.Uint8(s.SubState)
	w.Uint8(s.SpriteType)
	w.Uint8(s.AssignedStaffType)
	w.Uint8(s.TshirtColour)
	w.Uint8(s.TrousersColour)
	w.Int16(s.DestinationX)
	w.Int16(s.DestinationY)
	w.Uint8(s.DestinationTolerance)
	w.Uint8(s.Var37)
	w.Uint8(s.Energy)
	w.Uint8(s.EnergyTarget)
	for i := 0; i < 7; i++ {
		w.Uint8(0xAA) // guest-only mood slots
	}
	w.Uint8(s.Mass)
	w.Uint8(0xAA) // guest-only consumption slot
	w.Uint8(0xAA) // guest-only intensity slots
	w.Uint8(0xAA)
	w.Uint8(s.WindowInvalidateFlags)
	w.Int16(0x2A2A) // guest-only drink money slot
	writeByteVector(w, nil)
	w.Uint64(0xAAAA)
	w.Uint16(0xAAAA)
	w.Uint16(0xAAAA)
	w.Uint16(0xAAAA)
	w.Uint16(s.CurrentRide)
	w.Uint8(s.CurrentRideStation)
	w.Uint8(s.CurrentTrain)
	w.Uint8(s.TimeToSitdown)
	w.Uint8(s.SpecialSprite)
	w.Uint8(s.ActionSpriteType)
	w.Uint8(s.NextActionSpriteType)
	w.Uint8(s.ActionSpriteImageOffset)
	w.Uint8(s.Action)
	w.Uint8(s.ActionFrame)
	w.Uint8(s.StepProgress)
	w.Uint16(s.MechanicTimeSinceCall)
	w.Uint8(s.PeepDirection)
	w.Uint16(s.InteractionRideIndex)
	w.Uint16(0xAAAA) // guest-only queue time slot
	writeByteVector(w, nil)
	w.Uint32(s.ID)
	w.Int32(0x2A2A) // guest-only cash slots
	w.Int32(0x2A2A)
	w.Int32(s.HireDate)
	w.Int8(0x2A)
	w.Uint16(0xAAAA)
	w.Uint16(0xAAAA)
	w.Uint32(0) // guest-only thought vector
	w.Uint8(s.PathCheckOptimisation)
	w.Uint16(0xAAAA) // guest-only heading slot
	w.Uint8(s.StaffOrders)
	w.Uint16(0xAAAA) // guest-only photo slot
	w.Uint32(s.PeepFlags)
	writePathfindTarget(w, &s.PathfindGoal)
	for i := range s.PathfindHistory {
		writePathfindTarget(w, &s.PathfindHistory[i])
	}
	w.Uint8(s.WalkingFrameNum)
	w.Uint8(0xAA)
	w.Uint16(s.StaffMowingTimeout)
	w.Uint8(0xAA)
	w.Uint32(s.StaffLawnsMown)
	w.Uint32(s.StaffGardensWatered)
	w.Uint32(s.StaffLitterSwept)
	w.Uint32(s.StaffBinsEmptied)
	for i := 0; i < 5; i++ {
		w.Uint8(0xAA) // guest-only tail, matching widths
	}
	w.Uint16(0xAAAA)
	for i := 0; i < 7; i++ {
		w.Uint8(0xAA)
	}
	w.Uint16(0xAAAA)
	w.Uint8(0xAA)
	// the patrol vector follows the combined record
	w.Uint32(uint32(len(patrol)))
	for _, c := range patrol {
		w.Int32(c.X)
		w.Int32(c.Y)
	}
}

func TestImportInterleavedPeeps(t *testing.T) {
	g := &world.Guest{}
	g.SpriteIndex = 12
	g.X = 128
	g.Y = 256
	g.Z = 16
	g.SpriteWidth = 12
	g.SpriteHeightPositive = 20
	g.SpriteDirection = 1
	g.Name = "Maya"
	g.NextLocX = 1
	g.NextLocY = 2
	g.NextLocZ = 3
	g.NextFlags = 4
	g.OutsideOfPark = true
	g.State = 1
	g.SubState = 2
	g.SpriteType = 5
	g.GuestNumRides = 4
	g.TshirtColour = 21
	g.TrousersColour = 22
	g.DestinationX = 100
	g.DestinationY = 200
	g.DestinationTolerance = 3
	g.Energy = 90
	g.EnergyTarget = 95
	g.Happiness = 210
	g.HappinessTarget = 215
	g.Nausea = 30
	g.NauseaTarget = 25
	g.Hunger = 13
	g.Thirst = 14
	g.Toilet = 15
	g.Mass = 60
	g.TimeToConsume = 11
	g.Intensity = 70
	g.NauseaTolerance = 2
	g.PaidOnDrink = 35
	g.ItemFlags = 1 << 5
	g.Photo2RideRef = 7
	g.CurrentRide = 3
	g.GuestNextInQueue = 99
	g.PeepDirection = 2
	g.InteractionRideIndex = world.RideIDNull
	g.TimeInQueue = 55
	g.ID = 777
	g.CashInPocket = 5000
	g.CashSpent = 100
	g.ParkEntryTime = 77
	g.RejoinQueueTimeout = 3
	g.PreviousRide = 4
	g.PreviousRideTimeOut = 6
	g.Thoughts[0] = world.Thought{Type: 3, Item: world.ThoughtItemNone, Freshness: 1, FreshTimeout: 2}
	g.Thoughts[1] = world.Thought{Type: 1, Item: 4, Freshness: 1}
	g.GuestHeadingToRideID = 3
	g.GuestIsLostCountdown = 9
	g.Photo1RideRef = 8
	g.WalkingFrameNum = 6
	g.LitterCount = 1
	g.GuestTimeOnRide = 2
	g.DisgustingCount = 3
	g.PaidToEnter = 10
	g.PaidOnRides = 20
	g.PaidOnFood = 30
	g.PaidOnSouvenirs = 40
	g.AmountOfFood = 1
	g.AmountOfDrinks = 2
	g.AmountOfSouvenirs = 3
	g.VandalismSeen = 1
	g.VoucherType = 2
	g.VoucherRideID = 3
	g.SurroundingsThoughtTimeout = 4
	g.Angriness = 5
	g.TimeLost = 6
	g.DaysInQueue = 7
	g.BalloonColour = 8
	g.UmbrellaColour = 9
	g.HatColour = 10
	g.FavouriteRide = 3
	g.FavouriteRideRating = 200

	s := &world.Staff{}
	s.SpriteIndex = 30
	s.X = 64
	s.Y = 32
	s.Name = "Mechanic 2"
	s.State = 1
	s.SpriteType = 6
	s.Mass = 45
	s.InteractionRideIndex = world.RideIDNull
	s.CurrentRide = world.RideIDNull
	s.ID = 888
	s.WalkingFrameNum = 2
	s.AssignedStaffType = 1
	s.MechanicTimeSinceCall = 77
	s.HireDate = 4321
	s.StaffOrders = 3
	s.StaffMowingTimeout = 9
	s.StaffLawnsMown = 5
	s.StaffGardensWatered = 6
	s.StaffLitterSwept = 7
	s.StaffBinsEmptied = 8
	patrol := []world.TileCoords{{X: 8, Y: 12}}

	f, path := createLegacyPark(t, 1)
	appendBaseChunks(t, f, minimalState())
	appendLegacyEntities(t, f, []legacyEntity{
		{world.EntityKindGuest, 12, func(w *binio.Writer) {
			writeInterleavedGuest(w, g, rideTypesBitmap(20), ridesBitmap(3))
		}},
		{world.EntityKindStaff, 30, func(w *binio.Writer) {
			writeInterleavedStaff(w, s, patrol)
		}},
	})

	_, got := importLegacy(t, path, nil)

	guest := got.Entities.Get(12)
	if guest == nil || guest.Kind != world.EntityKindGuest {
		t.Fatalf("slot 12 = %+v, want guest", guest)
	}
	if *guest.Guest != *g {
		t.Errorf("guest = %+v, want %+v", guest.Guest, g)
	}
	if guest.Guest.Thoughts[0].Item != world.ThoughtItemNone {
		t.Errorf("thought 0 item = %#x, want none", guest.Guest.Thoughts[0].Item)
	}
	if rides := got.RideUse.Rides(12); len(rides) != 1 || rides[0] != 3 {
		t.Errorf("ride use = %v, want [3] from bitmap", rides)
	}
	if types := got.RideUse.RideTypes(12); len(types) != 1 || types[0] != 20 {
		t.Errorf("ride type use = %v, want [20] from bitmap", types)
	}

	staff := got.Entities.Get(30)
	if staff == nil || staff.Kind != world.EntityKindStaff {
		t.Fatalf("slot 30 = %+v, want staff", staff)
	}
	if staff.Staff.Peep != s.Peep {
		t.Errorf("staff peep = %+v, want %+v", staff.Staff.Peep, s.Peep)
	}
	if staff.Staff.AssignedStaffType != 1 ||
		staff.Staff.MechanicTimeSinceCall != 77 ||
		staff.Staff.HireDate != 4321 ||
		staff.Staff.StaffOrders != 3 ||
		staff.Staff.StaffMowingTimeout != 9 ||
		staff.Staff.StaffLawnsMown != 5 ||
		staff.Staff.StaffGardensWatered != 6 ||
		staff.Staff.StaffLitterSwept != 7 ||
		staff.Staff.StaffBinsEmptied != 8 {
		t.Errorf("staff = %+v, want %+v", staff.Staff, s)
	}
	var want world.Staff
	want.SetPatrolAreaTiles(patrol)
	if staff.Staff.PatrolArea == nil || *staff.Staff.PatrolArea != *want.PatrolArea {
		t.Errorf("patrol area mismatch")
	}
}

// writeLegacyRide mirrors the current ride record with the two layout
// differences of revisions before 5: the car limits share one packed
// byte and the sheltered-eighths and holes fields are absent.
func writeLegacyRide(w *binio.Writer, ride *world.Ride, packedCars uint8) {
	w.Uint16(ride.ID)

	w.Uint16(ride.Type)
	w.Uint16(ride.Subtype)
	w.Uint8(ride.Mode)
	w.Uint8(ride.Status)
	w.Uint8(ride.DepartFlags)
	w.Uint32(ride.LifecycleFlags)

	w.String(ride.CustomName)
	w.Uint16(ride.DefaultNameNumber)
	w.Uint32(uint32(len(ride.Price)))
	for _, p := range ride.Price {
		w.Int16(p)
	}

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

	w.Uint8(ride.NumStations)
	w.Uint32(uint32(len(ride.Stations)))
	for i := range ride.Stations {
		writeRideStation(w, &ride.Stations[i])
	}
	w.Int32(ride.OverallViewX)
	w.Int32(ride.OverallViewY)

	w.Uint8(ride.NumVehicles)
	w.Uint8(ride.NumCarsPerTrain)
	w.Uint8(ride.ProposedNumVehicles)
	w.Uint8(ride.ProposedNumCarsPerTrain)
	w.Uint8(ride.MaxTrains)
	w.Uint8(packedCars)
	w.Uint8(ride.MinWaitingTime)
	w.Uint8(ride.MaxWaitingTime)
	writeU16Array(w, ride.Vehicles[:])

	w.Uint8(ride.OperationOption)
	w.Uint8(ride.LiftHillSpeed)
	w.Uint8(ride.NumCircuits)

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

	w.Uint16(ride.Music)
	w.Uint8(ride.MusicTuneID)
	w.Int32(ride.MusicPosition)
}

func TestImportLegacyRideRecord(t *testing.T) {
	ride := &world.Ride{ID: 3, Type: 20, Status: 1}
	ride.CustomName = "Woodchip Run"
	ride.NumStations = 1
	ride.Stations[0] = world.RideStation{StartX: 32, StartY: 64, Height: 14, LastPeepInQueue: world.EntityIndexNull}
	ride.Excitement = 612

	st := world.NewState()
	st.Map.Size = 1
	track := world.TileElement{}
	track.SetKind(world.TileElementKindTrack)
	track.Data[2] = 3 // ride index, type slot left zero
	track.SetLastForTile(true)
	st.Map.Elements = []world.TileElement{track}

	f, path := createLegacyPark(t, 3)
	appendBaseChunks(t, f, st)
	appendLegacyChunk(t, f, chunkRides, func(w *binio.Writer) error {
		w.Uint32(1)
		writeLegacyRide(w, ride, 0x3B) // min 3, max 11
		return nil
	})

	_, got := importLegacy(t, path, nil)

	if len(got.Rides) != 1 {
		t.Fatalf("rides = %d, want 1", len(got.Rides))
	}
	r := got.Rides[0]
	if r.ID != 3 || r.Type != 20 || r.CustomName != "Woodchip Run" ||
		r.Status != 1 || r.Excitement != 612 || r.Stations[0] != ride.Stations[0] {
		t.Errorf("ride = %+v, want %+v", r, ride)
	}
	if r.MinCarsPerTrain != 3 || r.MaxCarsPerTrain != 11 {
		t.Errorf("car limits = %d/%d, want 3/11 from packed byte", r.MinCarsPerTrain, r.MaxCarsPerTrain)
	}

	// revisions before 4 left the track type slot zero; import stamps
	// it back from the owning ride
	if got.Map.Elements[0].TrackRideType() != 20 {
		t.Errorf("track ride type = %d, want 20", got.Map.Elements[0].TrackRideType())
	}
}
