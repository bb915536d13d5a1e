package game

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/tommyjgunn/lagosweek/internal/balance"
	"github.com/tommyjgunn/lagosweek/internal/entropy"
	"github.com/tommyjgunn/lagosweek/internal/weather"
)

// Session is one playthrough: a character, five days, and whatever Lagos
// throws at them. All mutation happens inside Choose (or a fired pacing
// continuation); the session is safe to observe concurrently through
// Snapshot and Events.
type Session struct {
	ID uuid.UUID

	mu        sync.Mutex
	seed      int64
	rng       entropy.Source
	p         *PlayerState
	foods     []balance.FoodItem
	weather   *weather.Week
	presenter Presenter
	sched     *Scheduler
	menu      ChoiceMenu
	events    []LogEntry

	// Set while a scripted interrupt (the family emergency) holds the
	// floor; the menu a handler tried to offer meanwhile is parked in
	// resume and restored once the interrupt resolves.
	interrupt bool
	resume    *ChoiceMenu
}

// New creates a session. The seed drives every roll, including the weather,
// so two sessions with the same seed and the same choices play out
// identically.
func New(presenter Presenter, seed int64) *Session {
	s := &Session{
		ID:        uuid.New(),
		seed:      seed,
		presenter: presenter,
		sched:     &Scheduler{},
	}
	s.init()
	return s
}

func (s *Session) init() {
	s.rng = entropy.NewSeeded(s.seed)
	s.p = newPlayerState()
	s.foods = balance.Foods()
	s.weather = weather.NewWeek(s.seed)
	s.menu = ChoiceMenu{}
	s.events = nil
	s.interrupt = false
	s.resume = nil
}

// Seed returns the seed the session was created with.
func (s *Session) Seed() int64 { return s.seed }

// Reset cancels any pending continuation and reinitializes the session to a
// fresh pre-creation state with the same seed.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sched.Cancel()
	s.init()
}

// Scheduler exposes the pacing scheduler so the driver can poll and fire
// pending continuations.
func (s *Session) Scheduler() *Scheduler { return s.sched }

// Begin starts character creation under the given player name and presents
// the job menu. An empty name gets the traditional default.
func (s *Session) Begin(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if name == "" {
		name = "Lagosian"
	}
	s.p.PlayerName = name
	s.narrate(fmt.Sprintf(
		"Welcome to Lagos. The city of dreams and struggles, of hustle and heart.\n"+
			"%s, what do you do for a living? Each path has its own challenges and rewards.", name), true)
	s.offer(ChoiceMenu{
		Prompt: "Choose your path",
		Choices: []Choice{
			{ID: ChooseJobMarketer, Label: "Marketer. Hustle is your middle name."},
			{ID: ChooseJobProgrammer, Label: "Software Developer. Late nights and digital solutions."},
			{ID: ChooseJobDesigner, Label: "Graphic Designer. Client revisions and pixel perfection."},
			{ID: ChooseJobArtist, Label: "Artist. Passion projects and financial uncertainty."},
		},
	})
}

// Choose applies the player's selection from the current menu. The choice
// must be one the menu offered; anything else is rejected without touching
// state.
func (s *Session) Choose(id ChoiceID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.p.IsGameOver {
		return ErrGameOver
	}
	c, ok := s.menu.Get(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidChoice, id)
	}
	slog.Debug("choice", "id", id, "day", s.p.Day, "slot", s.p.TimeSlot)
	s.dispatch(c)
	if !s.p.IsGameOver {
		s.interact()
		s.presenter.Refresh(s.snapshot())
	}
	return nil
}

func (s *Session) dispatch(c Choice) {
	switch c.ID {
	// Character creation.
	case ChooseJobMarketer:
		s.chooseJob(JobMarketer)
	case ChooseJobProgrammer:
		s.chooseJob(JobProgrammer)
	case ChooseJobDesigner:
		s.chooseJob(JobDesigner)
	case ChooseJobArtist:
		s.chooseJob(JobArtist)
	case ChooseBeginWeek:
		s.beginWeek()

	// Morning.
	case ChoosePrepare:
		s.prepareForWork()
	case ChoosePhone:
		s.checkPhone()
	case ChooseSnooze:
		s.snoozeAlarm()

	// Sickness.
	case ChooseSickRest:
		s.restAtHome()
	case ChooseSickMedicine:
		s.buyMedicine(float64(c.Param))
	case ChooseSickIgnore:
		s.ignoreSickness()

	// Family emergency.
	case ChooseSendFull:
		s.sendMoney(float64(c.Param))
	case ChooseSendHalf:
		s.sendPartialMoney(float64(c.Param))
	case ChooseExplain:
		s.explainNoMoney()

	// Transport.
	case ChooseCar:
		s.driveCar()
	case ChooseUber:
		s.callRide()
	case ChooseBus:
		s.takeBus()
	case ChooseWalk:
		s.walkToWork()
	case ChoosePickUpMoney:
		s.pickUpMoney(float64(c.Param))
	case ChooseLeaveMoney:
		s.leaveMoney()
	case ChooseMediate:
		s.mediateArgument()
	case ChooseStayOut:
		s.stayOutOfArgument()
	case ChoosePayBribe:
		s.payBribe(float64(c.Param))
	case ChooseRefuseBribe:
		s.refuseBribe()
	case ChooseWaitForKey:
		s.waitForKey()
	case ChooseCallKey:
		s.callKeyHolder()
	case ChooseBreakfast:
		s.roadsideBreakfast(float64(c.Param))

	// Work.
	case ChooseTaskClient, ChooseTaskPitch, ChooseTaskResearch,
		ChooseTaskDebug, ChooseTaskFeature, ChooseTaskOptimize,
		ChooseTaskCreate, ChooseTaskRevise, ChooseTaskMockup,
		ChooseTaskPaint, ChooseTaskCommission, ChooseTaskExhibit:
		s.doWorkTask(c.ID)
	case ChooseBreak:
		s.takeBreak()
	case ChooseLunch:
		s.lunchMenu()
	case ChooseStatus:
		s.checkStatus()
	case ChooseBackToWork:
		s.workStageMenu()
	case ChooseLunchRoadside:
		s.buyLunch("roadside")
	case ChooseLunchDelivery:
		s.buyLunch("delivery")
	case ChooseLunchRestaurant:
		s.buyLunch("restaurant")
	case ChooseLunchSkip:
		s.skipLunch()

	// Evening.
	case ChooseGoHome:
		s.goHome()
	case ChooseSocialize:
		s.socializeWithFriends(float64(c.Param))
	case ChooseKeepWorking:
		s.continueWorking()
	case ChooseDinnerOut:
		s.goOutForDinner(float64(c.Param))
	case ChooseExercise:
		s.doExercise()
	case ChooseCreative:
		s.creativeHobby()
	case ChooseRave:
		s.goToRave(float64(c.Param))
	case ChooseCook:
		s.cookDinner()
	case ChooseTV, ChooseLeisureTV:
		s.watchTV()
	case ChooseChores:
		s.doChores()
	case ChooseSleep, ChooseLeisureBed:
		s.goToSleep()
	case ChooseGroceries:
		s.buyGroceries(float64(c.Param))
	case ChooseOrderDelivery:
		s.orderFoodDelivery()
	case ChooseSkipDinner:
		s.skipDinner()
	case ChooseCallFamily:
		s.callFamily()
	case ChooseAcceptOffer:
		s.acceptSubstances()
	case ChooseDeclineOffer:
		s.declineSubstances()

	default:
		// Every menu the engine offers is built from the constants above.
		panic(fmt.Sprintf("game: unhandled choice %q", c.ID))
	}
}

// Snapshot returns the current stat view.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Menu returns the menu currently on offer.
func (s *Session) Menu() ChoiceMenu {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.menu
	m.Choices = append([]Choice(nil), s.menu.Choices...)
	return m
}

// Events returns a copy of the session's event log.
func (s *Session) Events() []LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]LogEntry(nil), s.events...)
}

// Player returns a copy of the full player state, for observers.
func (s *Session) Player() PlayerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.p
}

func (s *Session) snapshot() Snapshot {
	return Snapshot{
		Joy:         s.p.Joy,
		Fullness:    s.p.Fullness,
		Stress:      s.p.Stress,
		Money:       int(s.p.Money),
		Day:         s.p.Day,
		DayName:     DayName(s.p.Day),
		TimeSlot:    s.p.TimeSlot,
		TimeLabel:   SlotLabel(s.p.TimeSlot),
		DeadlinePct: s.p.DeadlinePct(),
		Resilience:  s.p.ResiliencePoints,
	}
}

func (s *Session) narrate(text string, replace bool) {
	if s.p.IsGameOver {
		return
	}
	s.presenter.Narrate(text, replace)
}

// offer installs a menu, unless a scripted interrupt holds the floor, in
// which case the menu is parked until the interrupt resolves.
func (s *Session) offer(menu ChoiceMenu) {
	if s.p.IsGameOver {
		return
	}
	if s.interrupt {
		s.resume = &menu
		return
	}
	s.menu = menu
	s.presenter.OfferChoices(menu)
}

// raiseInterrupt forces a menu on the player mid-flow. Whatever the in-flight
// handler offers afterwards is parked for clearInterrupt.
func (s *Session) raiseInterrupt(menu ChoiceMenu) {
	s.menu = menu
	s.interrupt = true
	s.presenter.OfferChoices(menu)
}

// clearInterrupt resolves the interrupt and restores the parked menu, falling
// back to the morning menu when the interrupt fired between scenes.
func (s *Session) clearInterrupt() {
	s.interrupt = false
	if s.resume != nil {
		m := *s.resume
		s.resume = nil
		s.offer(m)
		return
	}
	s.morningMenu()
}

func (s *Session) logEvent(category, text string) {
	s.events = append(s.events, LogEntry{
		Day:      s.p.Day,
		TimeSlot: s.p.TimeSlot,
		Category: category,
		Text:     text,
	})
}
