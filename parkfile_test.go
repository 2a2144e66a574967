package parkfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mzki/parkfile/chunk"
	"github.com/mzki/parkfile/objects"
	"github.com/mzki/parkfile/world"
)

func surfaceElement(last bool) world.TileElement {
	var el world.TileElement
	el.SetKind(world.TileElementKindSurface)
	el.SetLastForTile(last)
	return el
}

func testState() *world.State {
	st := world.NewState()

	st.Scenario.Category = 2
	st.Scenario.Name = "Gentle Glen"
	st.Scenario.ParkName = "Gentle Glen Park"
	st.Scenario.Details = "A quiet valley."
	st.Scenario.Objective.Type = 1
	st.Scenario.Objective.Year = 3
	st.Scenario.Objective.NumGuests = 750
	st.Scenario.CompletedCompanyValue = world.Money64Undefined
	st.Scenario.FileName = "gentle_glen.park"

	st.General.CurrentTicks = 123456
	st.General.MonthsElapsed = 14
	st.General.Rand = world.PRNGState{S0: 7, S1: 11}
	st.General.NextGuestNumber = 42
	st.General.PeepSpawns = []world.PeepSpawn{{X: 96, Y: 0, Z: 16, Direction: 2}}
	st.General.RideRatings.AmountOfBrakes = 3
	st.General.RideRatings.CurrentRide = 3

	st.Climate.Climate = 1
	st.Climate.Current = world.WeatherState{Weather: 2, Temperature: 21, Level: 1}
	st.Climate.Next = world.WeatherState{Weather: 4, Temperature: 17, Gloom: 1}

	st.Park.Name = "Gentle Glen Park"
	st.Park.Cash = 100000
	st.Park.BankLoan = 200000
	st.Park.Rating = 850
	st.Park.CurrentAwards[0] = world.Award{Time: 5, Type: 2}
	st.Park.MarketingCampaigns = []world.MarketingCampaign{{Type: 1, WeeksLeft: 4, RideID: 3}}
	st.Park.CashHistory[0] = 99999

	st.Research.FundingLevel = 2
	st.Research.NextItem = &world.ResearchItem{Type: 1, BaseRideType: 20, EntryIndex: 4, Category: 1}
	st.Research.Uninvented = []world.ResearchItem{{Type: 1, BaseRideType: 7, EntryIndex: 9}}
	st.Research.Invented = []world.ResearchItem{{Type: 0, BaseRideType: 20, EntryIndex: 4}}

	st.News.Recent = []world.NewsItem{{Type: 2, Assoc: 3, Ticks: 10, MonthYear: 20, Day: 5, Text: "New ride opened"}}
	st.News.Archived = []world.NewsItem{{Type: 1, Text: "Old news"}}

	st.Interface.SavedViewX = 1024
	st.Interface.SavedViewY = 2048
	st.Interface.SavedViewZoom = 1
	st.Interface.SavedViewRotation = 3
	st.Interface.LastEntranceStyle = 2

	st.Cheats.SandboxMode = true
	st.Cheats.DisableLittering = true

	st.RestrictedScenery = []world.ScenerySelection{
		{SceneryType: uint8(objects.SceneryWall), EntryIndex: 4},
	}

	// 2x2 map. Tile 1 carries a ghost that must not survive a save.
	st.Map.Size = 2
	track := world.TileElement{}
	track.SetKind(world.TileElementKindTrack)
	// ride 3 track piece
	track.Data[2] = 3
	track.SetTrackRideType(20)
	track.SetLastForTile(true)

	ghost := world.TileElement{Flags: world.TileElementFlagGhost}
	ghost.SetKind(world.TileElementKindSmallScenery)
	ghost.SetLastForTile(true)

	path := world.TileElement{}
	path.SetKind(world.TileElementKindPath)
	path.SetPathSurfaceIndex(1)
	path.SetPathRailingsIndex(2)
	path.SetLastForTile(true)

	entrance := world.TileElement{BaseHeight: 4}
	entrance.SetKind(world.TileElementKindEntrance)
	entrance.Type |= 1 // direction
	entrance.Data[0] = world.EntranceTypeParkEntrance
	entrance.SetLastForTile(true)

	st.Map.Elements = []world.TileElement{
		surfaceElement(false), track,
		surfaceElement(false), ghost,
		path,
		entrance,
	}

	ride := &world.Ride{ID: 3, Type: 20, Subtype: 2, Status: 1}
	ride.CustomName = "Woodchip Run"
	ride.Price[0] = 150
	ride.NumStations = 1
	ride.Stations[0] = world.RideStation{StartX: 32, StartY: 64, Height: 14, QueueLength: 6, LastPeepInQueue: world.EntityIndexNull}
	ride.MinCarsPerTrain = 3
	ride.MaxCarsPerTrain = 11
	ride.Excitement = 612
	ride.TotalProfit = 54321
	ride.Measurement = &world.RideMeasurement{NumItems: 3}
	ride.Measurement.Vertical[0] = 1
	ride.Measurement.Velocity[2] = 9
	ride.DowntimeHistory[1] = 4
	st.Rides = []*world.Ride{ride}

	banner := st.Banners.GetOrCreate(7)
	banner.Type = 2
	banner.Text = "This way up"
	banner.Colour = 5
	banner.RideIndex = world.RideIDNull
	banner.PositionX = 3
	banner.PositionY = 9

	vehicle := st.Entities.CreateAt(world.EntityKindVehicle, 2).Vehicle
	vehicle.Ride = 3
	vehicle.Velocity = 98304
	vehicle.AnimationState = 70000
	vehicle.Peeps[0] = 12
	for i := 1; i < len(vehicle.Peeps); i++ {
		vehicle.Peeps[i] = world.EntityIndexNull
	}

	guest := st.Entities.CreateAt(world.EntityKindGuest, 12).Guest
	guest.Name = "Hannah"
	guest.X = 128
	guest.Y = 256
	guest.Happiness = 200
	guest.CashInPocket = 5000
	guest.ItemFlags = 1 << 9
	guest.Thoughts[0] = world.Thought{Type: 3, Item: 3, Freshness: 1}
	for i := 1; i < len(guest.Thoughts); i++ {
		guest.Thoughts[i].Item = world.ThoughtItemNone
	}
	st.RideUse.SetRides(12, []uint16{3})
	st.RideUse.SetRideTypes(12, []uint16{20})

	staff := st.Entities.CreateAt(world.EntityKindStaff, 30).Staff
	staff.Name = "Handyman 1"
	staff.AssignedStaffType = 0
	staff.StaffOrders = 0x07
	staff.HireDate = 900
	staff.SetPatrolAreaTiles([]world.TileCoords{{X: 4, Y: 8}})

	duck := st.Entities.CreateAt(world.EntityKindDuck, 900).Duck
	duck.Frame = 2
	duck.TargetX = 64
	duck.State = 1

	return st
}

func saveToTemp(t *testing.T, e *Engine, st *world.State) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roundtrip.park")
	if err := e.SaveFile(path, st); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	return path
}

func loadAndImport(t *testing.T, path string) (*Engine, *world.State) {
	t.Helper()
	e := New(DefaultOptions(), nil)
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

func TestRoundTrip(t *testing.T) {
	src := testState()
	saver := New(DefaultOptions(), nil)
	saver.Required.SetObject(objects.TypeRide, 0,
		objects.FromIdentifier(objects.TypeRide, "openrct2.ride.wooden_rc", "1.0"))
	path := saveToTemp(t, saver, src)

	e, got := loadAndImport(t, path)

	if hdr := e.Header(); hdr.TargetVersion != CurrentVersion || hdr.MinVersion != MinVersion {
		t.Errorf("header versions = %#x/%#x, want %#x/%#x",
			hdr.TargetVersion, hdr.MinVersion, CurrentVersion, MinVersion)
	}
	if d := e.Required.Object(objects.TypeRide, 0); d == nil || d.Identifier != "openrct2.ride.wooden_rc" {
		t.Errorf("required object 0 = %+v, want openrct2.ride.wooden_rc", d)
	}

	if got.Scenario != src.Scenario {
		t.Errorf("scenario = %+v, want %+v", got.Scenario, src.Scenario)
	}
	if got.General.Rand != src.General.Rand ||
		got.General.CurrentTicks != src.General.CurrentTicks ||
		len(got.General.PeepSpawns) != 1 ||
		got.General.PeepSpawns[0] != src.General.PeepSpawns[0] {
		t.Errorf("general mismatch: %+v", got.General)
	}
	if got.General.RideRatings.AmountOfBrakes != 3 {
		t.Errorf("AmountOfBrakes = %d, want 3", got.General.RideRatings.AmountOfBrakes)
	}
	if got.Climate != src.Climate {
		t.Errorf("climate = %+v, want %+v", got.Climate, src.Climate)
	}
	if got.Park.Name != src.Park.Name || got.Park.Cash != src.Park.Cash ||
		got.Park.CurrentAwards[0] != src.Park.CurrentAwards[0] ||
		got.Park.CashHistory[0] != src.Park.CashHistory[0] {
		t.Errorf("park mismatch: %+v", got.Park)
	}
	if len(got.Park.MarketingCampaigns) != 1 || got.Park.MarketingCampaigns[0] != src.Park.MarketingCampaigns[0] {
		t.Errorf("marketing campaigns = %+v", got.Park.MarketingCampaigns)
	}
	if got.Research.NextItem == nil || *got.Research.NextItem != *src.Research.NextItem {
		t.Errorf("research next = %+v, want %+v", got.Research.NextItem, src.Research.NextItem)
	}
	if got.Research.LastItem != nil {
		t.Errorf("research last = %+v, want nil", got.Research.LastItem)
	}
	if len(got.News.Recent) != 1 || got.News.Recent[0] != src.News.Recent[0] ||
		len(got.News.Archived) != 1 || got.News.Archived[0] != src.News.Archived[0] {
		t.Errorf("news mismatch: %+v", got.News)
	}
	if got.Interface != src.Interface {
		t.Errorf("interface = %+v, want %+v", got.Interface, src.Interface)
	}
	if got.Cheats != src.Cheats {
		t.Errorf("cheats = %+v, want %+v", got.Cheats, src.Cheats)
	}
	if len(got.RestrictedScenery) != 1 || got.RestrictedScenery[0] != src.RestrictedScenery[0] {
		t.Errorf("restricted scenery = %+v", got.RestrictedScenery)
	}
}

func TestRoundTripTilesDropGhosts(t *testing.T) {
	src := testState()
	path := saveToTemp(t, New(DefaultOptions(), nil), src)
	_, got := loadAndImport(t, path)

	if got.Map.Size != 2 {
		t.Fatalf("map size = %d, want 2", got.Map.Size)
	}
	want := src.Map.WithoutGhosts()
	if len(got.Map.Elements) != len(want) {
		t.Fatalf("element count = %d, want %d", len(got.Map.Elements), len(want))
	}
	for i := range want {
		if got.Map.Elements[i] != want[i] {
			t.Errorf("element %d = %+v, want %+v", i, got.Map.Elements[i], want[i])
		}
	}
	if got.Map.Elements[1].TrackRideType() != 20 {
		t.Errorf("track ride type = %d, want 20", got.Map.Elements[1].TrackRideType())
	}
}

func TestRoundTripParkEntrances(t *testing.T) {
	path := saveToTemp(t, New(DefaultOptions(), nil), testState())
	_, got := loadAndImport(t, path)

	if len(got.Park.Entrances) != 1 {
		t.Fatalf("entrances = %+v, want one", got.Park.Entrances)
	}
	want := world.EntranceLocation{X: 32, Y: 32, Z: 32, Direction: 1}
	if got.Park.Entrances[0] != want {
		t.Errorf("entrance = %+v, want %+v", got.Park.Entrances[0], want)
	}
	if got.Park.InitialCash != got.Park.Cash {
		t.Errorf("initial cash = %d, want %d", got.Park.InitialCash, got.Park.Cash)
	}
}

func TestRoundTripRides(t *testing.T) {
	src := testState()
	path := saveToTemp(t, New(DefaultOptions(), nil), src)
	_, got := loadAndImport(t, path)

	if len(got.Rides) != 1 {
		t.Fatalf("rides = %d, want 1", len(got.Rides))
	}
	ride := got.Rides[0]
	want := src.Rides[0]
	if ride.ID != want.ID || ride.Type != want.Type || ride.CustomName != want.CustomName ||
		ride.Price != want.Price || ride.Stations[0] != want.Stations[0] ||
		ride.MinCarsPerTrain != 3 || ride.MaxCarsPerTrain != 11 ||
		ride.Excitement != want.Excitement || ride.TotalProfit != want.TotalProfit ||
		ride.DowntimeHistory != want.DowntimeHistory {
		t.Errorf("ride mismatch: %+v", ride)
	}
	if ride.Measurement == nil || ride.Measurement.NumItems != 3 ||
		ride.Measurement.Vertical[0] != 1 || ride.Measurement.Velocity[2] != 9 {
		t.Errorf("measurement mismatch: %+v", ride.Measurement)
	}
}

func TestRoundTripEntities(t *testing.T) {
	src := testState()
	path := saveToTemp(t, New(DefaultOptions(), nil), src)
	_, got := loadAndImport(t, path)

	vehicle := got.Entities.Get(2)
	if vehicle == nil || vehicle.Kind != world.EntityKindVehicle {
		t.Fatalf("slot 2 = %+v, want vehicle", vehicle)
	}
	if *vehicle.Vehicle != *src.Entities.Get(2).Vehicle {
		t.Errorf("vehicle mismatch: %+v", vehicle.Vehicle)
	}

	guest := got.Entities.Get(12)
	if guest == nil || guest.Kind != world.EntityKindGuest {
		t.Fatalf("slot 12 = %+v, want guest", guest)
	}
	if *guest.Guest != *src.Entities.Get(12).Guest {
		t.Errorf("guest mismatch: %+v", guest.Guest)
	}
	if rides := got.RideUse.Rides(12); len(rides) != 1 || rides[0] != 3 {
		t.Errorf("guest ride use = %v, want [3]", rides)
	}
	if types := got.RideUse.RideTypes(12); len(types) != 1 || types[0] != 20 {
		t.Errorf("guest ride type use = %v, want [20]", types)
	}

	staff := got.Entities.Get(30)
	if staff == nil || staff.Kind != world.EntityKindStaff {
		t.Fatalf("slot 30 = %+v, want staff", staff)
	}
	srcStaff := src.Entities.Get(30).Staff
	if staff.Staff.Name != srcStaff.Name || staff.Staff.StaffOrders != srcStaff.StaffOrders ||
		staff.Staff.HireDate != srcStaff.HireDate {
		t.Errorf("staff mismatch: %+v", staff.Staff)
	}
	if staff.Staff.PatrolArea == nil || *staff.Staff.PatrolArea != *srcStaff.PatrolArea {
		t.Errorf("patrol area mismatch")
	}

	duck := got.Entities.Get(900)
	if duck == nil || duck.Kind != world.EntityKindDuck {
		t.Fatalf("slot 900 = %+v, want duck", duck)
	}
	if *duck.Duck != *src.Entities.Get(900).Duck {
		t.Errorf("duck mismatch: %+v", duck.Duck)
	}
}

func TestRoundTripBanners(t *testing.T) {
	src := testState()
	path := saveToTemp(t, New(DefaultOptions(), nil), src)
	_, got := loadAndImport(t, path)

	if got.Banners.Count() != 1 {
		t.Fatalf("banner count = %d, want 1", got.Banners.Count())
	}
	b := got.Banners.Get(7)
	if b == nil {
		t.Fatal("banner slot 7 vacant after import")
	}
	if *b != *src.Banners.Get(7) {
		t.Errorf("banner = %+v, want %+v", b, src.Banners.Get(7))
	}
}

func TestOmitTracklessRides(t *testing.T) {
	src := testState()
	src.Rides = append(src.Rides, &world.Ride{ID: 5, Type: 40, CustomName: "Half-built"})

	opts := DefaultOptions()
	opts.OmitTracklessRides = true
	path := saveToTemp(t, New(opts, nil), src)
	_, got := loadAndImport(t, path)

	if len(got.Rides) != 1 || got.Rides[0].ID != 3 {
		t.Errorf("rides after omit = %+v, want only ride 3", got.Rides)
	}
}

func TestScenarioSummaryWithoutImport(t *testing.T) {
	path := saveToTemp(t, New(DefaultOptions(), nil), testState())

	e := New(DefaultOptions(), nil)
	if _, err := e.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	defer e.Close()

	sum, err := e.ReadScenarioSummary()
	if err != nil {
		t.Fatalf("ReadScenarioSummary: %v", err)
	}
	if sum.Name != "Gentle Glen" || sum.ParkName != "Gentle Glen Park" ||
		sum.ObjectiveType != 1 || sum.NumGuests != 750 {
		t.Errorf("summary = %+v", sum)
	}
	if sum.SourceCategory != SummarySourceOther {
		t.Errorf("source category = %d, want %d", sum.SourceCategory, SummarySourceOther)
	}
}

func TestLoadRejectsFutureMinVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "future.park")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	hdr := chunk.Header{Magic: Magic, TargetVersion: CurrentVersion + 2, MinVersion: CurrentVersion + 1}
	if err := chunk.WriteHeader(f, hdr); err != nil {
		t.Fatal(err)
	}
	f.Close()

	e := New(DefaultOptions(), nil)
	if _, err := e.LoadFile(path); !errors.Is(err, ErrUnsupportedVersion) {
		t.Errorf("LoadFile err = %v, want ErrUnsupportedVersion", err)
	}
}

func TestLoadRejectsBadMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.park")
	if err := os.WriteFile(path, []byte("JUNKJUNKJUNKJUNK"), 0o644); err != nil {
		t.Fatal(err)
	}
	e := New(DefaultOptions(), nil)
	if _, err := e.LoadFile(path); !errors.Is(err, chunk.ErrBadMagic) {
		t.Errorf("LoadFile err = %v, want ErrBadMagic", err)
	}
}

func TestImportRequiresTilesChunk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "headeronly.park")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	hdr := chunk.Header{Magic: Magic, TargetVersion: CurrentVersion, MinVersion: MinVersion}
	if err := chunk.WriteHeader(f, hdr); err != nil {
		t.Fatal(err)
	}
	f.Close()

	e := New(DefaultOptions(), nil)
	if _, err := e.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	defer e.Close()
	if err := e.Import(world.NewState()); !errors.Is(err, ErrMissingChunk) {
		t.Errorf("Import err = %v, want ErrMissingChunk", err)
	}
}

func TestImportBeforeLoad(t *testing.T) {
	e := New(DefaultOptions(), nil)
	if err := e.Import(world.NewState()); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Import err = %v, want ErrNotLoaded", err)
	}
}

func TestCompletedByClearedOnOpenObjective(t *testing.T) {
	src := testState()
	src.Scenario.CompletedCompanyValue = world.Money64Undefined
	src.Scenario.CompletedBy = "nobody yet"

	path := saveToTemp(t, New(DefaultOptions(), nil), src)
	_, got := loadAndImport(t, path)

	if got.Scenario.CompletedBy != "" {
		t.Errorf("CompletedBy = %q, want empty while objective is open", got.Scenario.CompletedBy)
	}
}
