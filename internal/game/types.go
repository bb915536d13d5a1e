// Package game implements the one-week Lagos life simulation: the player
// state model, the clock, the random and scripted event engine, the activity
// resolver, and the game-over evaluator. Presentation is somebody else's
// problem; the engine talks to it only through the Presenter interface.
package game

import "errors"

// ErrGameOver is returned by Choose once a session has ended.
var ErrGameOver = errors.New("game: session is over")

// ErrInvalidChoice is returned by Choose when the given ID is not on the
// current menu.
var ErrInvalidChoice = errors.New("game: choice not on offer")

// Stat identifies one of the four core resources.
type Stat uint8

const (
	StatJoy Stat = iota
	StatFullness
	StatStress
	StatMoney
)

func (s Stat) String() string {
	switch s {
	case StatJoy:
		return "joy"
	case StatFullness:
		return "fullness"
	case StatStress:
		return "stress"
	case StatMoney:
		return "money"
	default:
		return "unknown"
	}
}

// Job is the player's profession, fixed at creation.
type Job uint8

const (
	JobMarketer Job = iota
	JobProgrammer
	JobDesigner
	JobArtist
)

func (j Job) String() string {
	switch j {
	case JobMarketer:
		return "marketer"
	case JobProgrammer:
		return "programmer"
	case JobDesigner:
		return "designer"
	case JobArtist:
		return "artist"
	default:
		return "unknown"
	}
}

// Title returns the job's display title.
func (j Job) Title() string {
	switch j {
	case JobMarketer:
		return "Marketing Executive"
	case JobProgrammer:
		return "Software Developer"
	case JobDesigner:
		return "Graphic Designer"
	case JobArtist:
		return "Visual Artist"
	default:
		return "Worker"
	}
}

// SocialClass is assigned probabilistically at creation and never changes.
// Its string form doubles as the balance-table key.
type SocialClass uint8

const (
	ClassWorking SocialClass = iota
	ClassMiddle
	ClassUpper
)

func (c SocialClass) String() string {
	switch c {
	case ClassWorking:
		return "working"
	case ClassMiddle:
		return "middle"
	case ClassUpper:
		return "upper"
	default:
		return "unknown"
	}
}

// Activity is the kind of thing the player is doing while time passes; each
// kind has its own decay rates. Its string form is the balance-table key.
type Activity uint8

const (
	ActivityIdle Activity = iota
	ActivityWork
	ActivityPhysical
	ActivitySleep
)

func (a Activity) String() string {
	switch a {
	case ActivityIdle:
		return "idle"
	case ActivityWork:
		return "work"
	case ActivityPhysical:
		return "physical"
	case ActivitySleep:
		return "sleep"
	default:
		return "idle"
	}
}

// SicknessType distinguishes the two ways a morning can be ruined.
type SicknessType uint8

const (
	SickNone SicknessType = iota
	SickFood
	SickHangover
)

// ChoiceID names a player choice. The presentation layer treats these as
// opaque; the engine dispatches on them.
type ChoiceID string

// Character creation.
const (
	ChooseJobMarketer   ChoiceID = "job.marketer"
	ChooseJobProgrammer ChoiceID = "job.programmer"
	ChooseJobDesigner   ChoiceID = "job.designer"
	ChooseJobArtist     ChoiceID = "job.artist"
	ChooseBeginWeek     ChoiceID = "begin.week"
)

// Morning routine.
const (
	ChoosePrepare ChoiceID = "morning.prepare"
	ChoosePhone   ChoiceID = "morning.phone"
	ChooseSnooze  ChoiceID = "morning.snooze"
)

// Sickness morning.
const (
	ChooseSickRest     ChoiceID = "sick.rest"
	ChooseSickMedicine ChoiceID = "sick.medicine"
	ChooseSickIgnore   ChoiceID = "sick.ignore"
)

// Family emergency.
const (
	ChooseSendFull ChoiceID = "family.send_full"
	ChooseSendHalf ChoiceID = "family.send_half"
	ChooseExplain  ChoiceID = "family.explain"
)

// Transportation.
const (
	ChooseCar  ChoiceID = "transport.car"
	ChooseUber ChoiceID = "transport.uber"
	ChooseBus  ChoiceID = "transport.bus"
	ChooseWalk ChoiceID = "transport.walk"
)

// Bus side events.
const (
	ChoosePickUpMoney ChoiceID = "bus.pickup"
	ChooseLeaveMoney  ChoiceID = "bus.leave"
	ChooseMediate     ChoiceID = "bus.mediate"
	ChooseStayOut     ChoiceID = "bus.stay_out"
)

// Police checkpoint.
const (
	ChoosePayBribe    ChoiceID = "police.pay"
	ChooseRefuseBribe ChoiceID = "police.refuse"
)

// Locked office.
const (
	ChooseWaitForKey ChoiceID = "office.wait"
	ChooseCallKey    ChoiceID = "office.call"
	ChooseBreakfast  ChoiceID = "office.breakfast"
)

// Work tasks, three per job.
const (
	ChooseTaskClient     ChoiceID = "work.client"
	ChooseTaskPitch      ChoiceID = "work.pitch"
	ChooseTaskResearch   ChoiceID = "work.research"
	ChooseTaskDebug      ChoiceID = "work.debug"
	ChooseTaskFeature    ChoiceID = "work.feature"
	ChooseTaskOptimize   ChoiceID = "work.optimize"
	ChooseTaskCreate     ChoiceID = "work.create"
	ChooseTaskRevise     ChoiceID = "work.revise"
	ChooseTaskMockup     ChoiceID = "work.mockup"
	ChooseTaskPaint      ChoiceID = "work.paint"
	ChooseTaskCommission ChoiceID = "work.commission"
	ChooseTaskExhibit    ChoiceID = "work.exhibit"
)

// Workday interludes.
const (
	ChooseBreak      ChoiceID = "work.break"
	ChooseLunch      ChoiceID = "work.lunch"
	ChooseStatus     ChoiceID = "work.status"
	ChooseBackToWork ChoiceID = "work.resume"
)

// Lunch venues.
const (
	ChooseLunchRoadside   ChoiceID = "lunch.roadside"
	ChooseLunchDelivery   ChoiceID = "lunch.delivery"
	ChooseLunchRestaurant ChoiceID = "lunch.restaurant"
	ChooseLunchSkip       ChoiceID = "lunch.skip"
)

// Evening.
const (
	ChooseGoHome      ChoiceID = "evening.home"
	ChooseSocialize   ChoiceID = "evening.social"
	ChooseKeepWorking ChoiceID = "evening.work"
	ChooseDinnerOut   ChoiceID = "evening.dinner"
	ChooseExercise    ChoiceID = "evening.exercise"
	ChooseCreative    ChoiceID = "evening.creative"
	ChooseRave        ChoiceID = "evening.rave"
)

// At home.
const (
	ChooseCook   ChoiceID = "home.cook"
	ChooseTV     ChoiceID = "home.tv"
	ChooseChores ChoiceID = "home.chores"
	ChooseSleep  ChoiceID = "home.sleep"
)

// Empty-kitchen fallback.
const (
	ChooseGroceries     ChoiceID = "cook.shop"
	ChooseOrderDelivery ChoiceID = "cook.delivery"
	ChooseSkipDinner    ChoiceID = "cook.skip"
)

// Pre-bed leisure.
const (
	ChooseLeisureTV  ChoiceID = "leisure.tv"
	ChooseCallFamily ChoiceID = "leisure.call"
	ChooseLeisureBed ChoiceID = "leisure.sleep"
)

// Rave substance offer.
const (
	ChooseAcceptOffer  ChoiceID = "rave.accept"
	ChooseDeclineOffer ChoiceID = "rave.decline"
)

// Choice is one selectable option. Param carries an amount rolled when the
// menu was built (a bribe, a found note, an emergency sum) so the handler
// charges exactly what was offered.
type Choice struct {
	ID    ChoiceID `json:"id"`
	Label string   `json:"label"`
	Param int      `json:"param,omitempty"`
}

// ChoiceMenu is the set of options currently on offer.
type ChoiceMenu struct {
	Prompt  string   `json:"prompt,omitempty"`
	Choices []Choice `json:"choices"`
}

// Get returns the menu entry with the given ID, if present.
func (m ChoiceMenu) Get(id ChoiceID) (Choice, bool) {
	for _, c := range m.Choices {
		if c.ID == id {
			return c, true
		}
	}
	return Choice{}, false
}

// Snapshot is the read-only stat view handed to the presentation layer.
type Snapshot struct {
	Joy         float64 `json:"joy"`
	Fullness    float64 `json:"fullness"`
	Stress      float64 `json:"stress"`
	Money       int     `json:"money"`
	Day         int     `json:"day"`
	DayName     string  `json:"day_name"`
	TimeSlot    float64 `json:"time_slot"`
	TimeLabel   string  `json:"time_label"`
	DeadlinePct int     `json:"deadline_pct"` // -1 until the deadline is assigned
	Resilience  int     `json:"resilience"`
}

// Result describes how a session ended: either a mid-week game over (Reason
// set) or a week completion (Ending set).
type Result struct {
	GameOver        bool     `json:"game_over"`
	Reason          string   `json:"reason,omitempty"`
	Ending          string   `json:"ending,omitempty"`
	EndingDesc      string   `json:"ending_desc,omitempty"`
	DeadlineVerdict string   `json:"deadline_verdict,omitempty"`
	Final           Snapshot `json:"final"`
}

// Presenter is the engine's outbound boundary. Implementations render however
// they like; the engine never blocks on them.
type Presenter interface {
	// Narrate delivers narrative text; replace indicates a fresh scene
	// rather than an appended beat.
	Narrate(text string, replace bool)
	// OfferChoices presents the current menu.
	OfferChoices(menu ChoiceMenu)
	// StatChanged reports the delta actually applied after clamping.
	StatChanged(stat Stat, applied float64)
	// Refresh delivers a fresh stat snapshot.
	Refresh(snap Snapshot)
	// GameEnded reports the terminal result.
	GameEnded(result Result)
}

// LogEntry records a notable occurrence for observers.
type LogEntry struct {
	Day      int     `json:"day"`
	TimeSlot float64 `json:"time_slot"`
	Category string  `json:"category"`
	Text     string  `json:"text"`
}
