// Package world holds the in-memory park state that the save container
// serializes: scenario metadata, finances, climate, research, the tile
// map, rides, banners and entities. The types here carry no behaviour
// beyond small accessors; serialization lives with the container codecs.
package world

import "math"

// Money64Undefined marks an unset monetary value.
const Money64Undefined int64 = math.MinInt64

// CompanyValueOnFailedObjective is the sentinel stored as the completed
// company value when the scenario objective was failed.
const CompanyValueOnFailedObjective int64 = Money64Undefined + 1

// State is the complete serializable game state of one park.
type State struct {
	Scenario          Scenario
	General           General
	Climate           Climate
	Park              Park
	Research          Research
	News              News
	Interface         Interface
	RestrictedScenery []ScenerySelection
	Map               Map
	Rides             []*Ride
	Banners           Banners
	Entities          EntityTable
	RideUse           RideUseHistories
	Cheats            Cheats
}

// NewState returns a state with capacity-dependent sub-structures ready
// for use and cheats at their defaults.
func NewState() *State {
	s := &State{}
	s.Entities.Reset()
	s.RideUse.Reset()
	s.Cheats = DefaultCheats()
	return s
}

// Objective is the scenario win condition.
type Objective struct {
	Type      uint8
	Year      uint8
	NumGuests uint16
	Currency  int64
}

// Scenario is the scenario identity and completion record.
type Scenario struct {
	Category              uint8
	Name                  string
	ParkName              string
	Details               string
	Objective             Objective
	ParkRatingWarningDays uint16

	// CompletedCompanyValue is Money64Undefined while the objective is
	// open and CompanyValueOnFailedObjective after a failure; CompletedBy
	// is meaningful only when neither sentinel is set.
	CompletedCompanyValue int64
	CompletedBy           string

	AllowEarlyCompletion bool
	FileName             string
}

// PRNGState is the simulation random stream, captured verbatim so a
// reload continues the exact sequence.
type PRNGState struct {
	S0 uint32
	S1 uint32
}

// PeepSpawn is a map edge location where new guests enter.
type PeepSpawn struct {
	X, Y, Z   int32
	Direction uint8
}

// ProximityScoreCount is the number of proximity categories tracked by
// the in-flight ride rating calculation.
const ProximityScoreCount = 26

// RideRatingState is the resumable state of the background ride rating
// calculation.
type RideRatingState struct {
	AmountOfBrakes      uint16
	ProximityX          int32
	ProximityY          int32
	ProximityZ          int32
	ProximityStartX     int32
	ProximityStartY     int32
	ProximityStartZ     int32
	CurrentRide         uint16
	State               uint8
	ProximityTrackType  uint16
	ProximityBaseHeight uint8
	ProximityTotal      uint16
	ProximityScores     [ProximityScoreCount]uint16
	AmountOfReversers   uint16
	StationFlags        uint16
}

// General is simulation-wide state that belongs to no other group.
type General struct {
	GamePaused    uint32
	CurrentTicks  uint32
	MonthTicks    uint16
	MonthsElapsed int32
	Rand          PRNGState

	GuestInitialHappiness uint8
	GuestInitialCash      int16
	GuestInitialHunger    uint8
	GuestInitialThirst    uint8

	NextGuestNumber uint32
	PeepSpawns      []PeepSpawn

	LandPrice               int16
	ConstructionRightsPrice int16

	GrassSceneryTileLoopPosition uint16
	WidePathTileLoopX            int32
	WidePathTileLoopY            int32

	RideRatings RideRatingState
}

// WeatherState is one sampled weather condition.
type WeatherState struct {
	Weather     uint8
	Temperature int8
	Effect      uint8
	Gloom       uint8
	Level       uint8
}

// Climate is the climate type plus the current and upcoming weather.
type Climate struct {
	Climate     uint8
	UpdateTimer uint16
	Current     WeatherState
	Next        WeatherState
}

// Capacities of the fixed park history tables.
const (
	ExpenditureMonthCount   = 16
	ExpenditureTypeCount    = 14
	MaxAwards               = 4
	PeepWarningThrottleSize = 16
	ParkRatingHistorySize   = 32
	GuestsInParkHistorySize = 32
	FinanceHistorySize      = 128
)

// Award is a park award currently on display. Time zero means the slot
// is vacant.
type Award struct {
	Time uint16
	Type uint16
}

// MarketingCampaign is one running advertising campaign.
type MarketingCampaign struct {
	Type      uint8
	WeeksLeft uint8
	Flags     uint8
	RideID    uint16
}

// Park is the park identity, finances and statistics.
type Park struct {
	Name                 string
	Cash                 int64
	BankLoan             int64
	MaxBankLoan          int64
	BankLoanInterestRate uint8
	Flags                uint32
	EntranceFee          int16
	StaffHandymanColour  uint8
	StaffMechanicColour  uint8
	StaffSecurityColour  uint8
	SamePriceThroughout  uint64

	ExpenditureTable [ExpenditureMonthCount][ExpenditureTypeCount]int64
	HistoricalProfit int64

	MarketingCampaigns []MarketingCampaign
	CurrentAwards      [MaxAwards]Award

	Value                       int64
	CompanyValue                int64
	Size                        uint32
	NumGuestsInPark             uint32
	NumGuestsHeadingForPark     uint32
	Rating                      int16
	RatingCasualtyPenalty       int16
	CurrentExpenditure          int64
	CurrentProfit               int64
	WeeklyProfitAverageDividend int64
	WeeklyProfitAverageDivisor  uint16
	TotalAdmissions             uint32
	TotalIncomeFromAdmissions   int64
	TotalRideValueForMoney      int16
	NumGuestsInParkLastWeek     uint32
	GuestChangeModifier         uint8
	GuestGenerationProbability  uint32
	SuggestedGuestMaximum       uint16

	PeepWarningThrottle [PeepWarningThrottleSize]uint8
	RatingHistory       [ParkRatingHistorySize]uint8
	GuestsInParkHistory [GuestsInParkHistorySize]uint32
	CashHistory         [FinanceHistorySize]int64
	WeeklyProfitHistory [FinanceHistorySize]int64
	ValueHistory        [FinanceHistorySize]int64

	// Derived on import, not stored.
	InitialCash int64
	Entrances   []EntranceLocation
}

// EntranceLocation is one park entrance position in world coordinates.
type EntranceLocation struct {
	X, Y, Z   int32
	Direction uint8
}

// ResearchItem is one researchable ride or scenery entry.
type ResearchItem struct {
	Type         uint8
	BaseRideType uint16
	EntryIndex   uint16
	Flags        uint8
	Category     uint8
}

// Research is the research funding state and invention lists.
type Research struct {
	FundingLevel  uint8
	Priorities    uint8
	ProgressStage uint8
	Progress      uint16
	ExpectedMonth uint8
	ExpectedDay   uint8

	// LastItem and NextItem are nil when no item is set.
	LastItem *ResearchItem
	NextItem *ResearchItem

	Uninvented []ResearchItem
	Invented   []ResearchItem
}

// News queue capacities. The recent queue feeds the ticker; older items
// move to the archive.
const (
	MaxNewsRecent   = 11
	MaxNewsArchived = 50
)

// NewsItem is one notification.
type NewsItem struct {
	Type      uint8
	Flags     uint8
	Assoc     uint32
	Ticks     uint16
	MonthYear uint16
	Day       uint8
	Text      string
}

// News holds the recent and archived notification queues.
type News struct {
	Recent   []NewsItem
	Archived []NewsItem
}

// Interface is the saved viewport and editor state.
type Interface struct {
	SavedViewX        int32
	SavedViewY        int32
	SavedViewZoom     int8
	SavedViewRotation uint8
	LastEntranceStyle uint16
	EditorStep        uint8
}

// ScenerySelection is one entry of the restricted scenery list kept by
// the scenario editor.
type ScenerySelection struct {
	SceneryType uint8
	EntryIndex  uint16
}
