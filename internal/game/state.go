package game

// Time constants: ten two-hour slots per day, Monday through Friday.
const (
	SlotsPerDay = 10
	LastDay     = 4 // Friday

	deadlineTarget     = 100
	moneyFloor         = -50000
	startingResilience = 2
)

var dayNames = [5]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

var slotLabels = [SlotsPerDay]string{
	"6:00 AM", "8:00 AM", "10:00 AM", "12:00 PM",
	"2:00 PM", "4:00 PM", "6:00 PM", "8:00 PM",
	"10:00 PM", "12:00 AM",
}

// DayName returns the display name for a day index, clamped to the week.
func DayName(day int) string {
	if day < 0 {
		day = 0
	}
	if day > LastDay {
		day = LastDay
	}
	return dayNames[day]
}

// SlotLabel returns the clock label for a slot index.
func SlotLabel(slot float64) string {
	i := int(slot)
	if i < 0 {
		i = 0
	}
	if i >= SlotsPerDay {
		i = SlotsPerDay - 1
	}
	return slotLabels[i]
}

// Location is the player's home district.
type Location struct {
	Name string `json:"name"`
	Area string `json:"area"`
}

// ActivityCounts tracks how often each evening activity has been repeated,
// driving diminishing or increasing returns.
type ActivityCounts struct {
	TV       int `json:"tv"`
	Social   int `json:"social"`
	Work     int `json:"work"`
	Exercise int `json:"exercise"`
	Creative int `json:"creative"`
}

// Streaks tracks multi-day patterns.
type Streaks struct {
	DaysWithoutFood     int `json:"days_without_food"`
	DaysWithHighStress  int `json:"days_with_high_stress"`
	DaysWithLowJoy      int `json:"days_with_low_joy"`
	ConsecutiveWorkDays int `json:"consecutive_work_days"`
}

// PlayerState is the single mutable aggregate for one play session. It is
// mutated only through Session methods; nothing here is persisted.
type PlayerState struct {
	// Core stats. Joy, fullness and stress live in [0, 100]; money floors
	// at a small allowed debt.
	Joy      float64 `json:"joy"`
	Fullness float64 `json:"fullness"`
	Stress   float64 `json:"stress"`
	Money    float64 `json:"money"`

	// Time.
	Day      int     `json:"day"`
	TimeSlot float64 `json:"time_slot"`

	// Character, fixed once creation finishes.
	Job         Job         `json:"job"`
	Class       SocialClass `json:"class"`
	Age         int         `json:"age"`
	Location    Location    `json:"location"`
	PlayerName  string      `json:"player_name"`
	CompanyName string      `json:"company_name"`

	// Flags.
	HasTransportation   bool         `json:"has_transportation"`
	HasFamilyEmergency  bool         `json:"has_family_emergency"`
	IsWorking           bool         `json:"is_working"`
	Sickness            SicknessType `json:"sickness"`
	RainedYesterday     bool         `json:"rained_yesterday"`
	HadRandomEventToday bool         `json:"had_random_event_today"`
	IsGameOver          bool         `json:"is_game_over"`

	// Work.
	WorkProgress     float64 `json:"work_progress"`
	WorkdayStage     int     `json:"workday_stage"` // 0 = not started, 1..3
	Deadline         float64 `json:"deadline"`      // 0 until assigned
	DeadlineProgress float64 `json:"deadline_progress"`

	// Meals and habits.
	MealsToday        int            `json:"meals_today"`
	LastMealTime      float64        `json:"last_meal_time"`
	EveningActivities ActivityCounts `json:"evening_activities"`
	Streaks           Streaks        `json:"streaks"`

	// Finite safety net against a single catastrophic roll chain.
	ResiliencePoints int `json:"resilience_points"`

	// Internal bookkeeping.
	created         bool            // creation finished, week underway
	lastDailyReset  int             // last day the daily counters were reset
	currentWorkTime float64         // slot cost of the active work stage
	warningsShown   map[string]bool // one-time warning dedupe
}

// newPlayerState returns the session-start defaults.
func newPlayerState() *PlayerState {
	return &PlayerState{
		Joy:              100,
		Fullness:         100,
		Stress:           0,
		Money:            0,
		LastMealTime:     -1,
		ResiliencePoints: startingResilience,
		lastDailyReset:   -1,
		warningsShown:    make(map[string]bool),
	}
}

// DeadlinePct returns deadline completion as a rounded percentage, or -1 if
// no deadline has been assigned yet.
func (p *PlayerState) DeadlinePct() int {
	if p.Deadline <= 0 {
		return -1
	}
	pct := p.DeadlineProgress / p.Deadline * 100
	if pct > 100 {
		pct = 100
	}
	return int(pct + 0.5)
}
