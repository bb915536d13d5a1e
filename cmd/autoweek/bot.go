package main

import (
	"errors"
	"log/slog"
	"time"

	"github.com/tommyjgunn/lagosweek/internal/game"
)

// bot is a Presenter that plays to survive: eat when hungry, rest when
// stressed, grind the deadline when it's safe to.
type bot struct {
	pace   time.Duration
	menu   chan game.ChoiceMenu
	done   chan game.Result
	result *game.Result
}

func newBot(pace time.Duration) *bot {
	return &bot{
		pace: pace,
		menu: make(chan game.ChoiceMenu, 8),
		done: make(chan game.Result, 1),
	}
}

func (b *bot) Narrate(text string, replace bool) {
	slog.Debug("narrate", "text", text)
}

func (b *bot) OfferChoices(menu game.ChoiceMenu) {
	b.menu <- menu
}

func (b *bot) StatChanged(stat game.Stat, applied float64) {
	slog.Debug("stat", "stat", stat.String(), "applied", applied)
}

func (b *bot) Refresh(snap game.Snapshot) {}

func (b *bot) GameEnded(result game.Result) {
	b.done <- result
}

// play drives one full week and returns the result.
func (b *bot) play(sess *game.Session, name string, job game.ChoiceID) game.Result {
	sess.Begin(name)

	for {
		// A pacing beat may be holding the next menu back.
		if _, ok := sess.Scheduler().Pending(); ok {
			sess.Scheduler().Fire()
		}

		select {
		case result := <-b.done:
			return result
		case menu := <-b.menu:
			menu = b.latest(menu)
			if b.pace > 0 {
				time.Sleep(b.pace)
			}
			choice := b.pick(menu, sess.Snapshot(), job)
			if err := sess.Choose(choice); err != nil {
				if errors.Is(err, game.ErrGameOver) {
					return <-b.done
				}
				slog.Error("choice rejected", "choice", choice, "error", err)
				return game.Result{GameOver: true, Reason: "bot stuck", Final: sess.Snapshot()}
			}
		case <-time.After(50 * time.Millisecond):
		}
	}
}

// latest drains queued menus so the bot always answers the newest one.
func (b *bot) latest(menu game.ChoiceMenu) game.ChoiceMenu {
	for {
		select {
		case m := <-b.menu:
			menu = m
		default:
			return menu
		}
	}
}

// pick scans the menu for the first preference that applies. Anything
// unrecognized falls back to the first option.
func (b *bot) pick(menu game.ChoiceMenu, snap game.Snapshot, job game.ChoiceID) game.ChoiceID {
	prefs := b.preferences(snap, job)
	for _, want := range prefs {
		if c, ok := menu.Get(want); ok {
			// Skip paid options the bot cannot cover.
			if c.Param > 0 && snap.Money < c.Param {
				continue
			}
			return c.ID
		}
	}
	return menu.Choices[0].ID
}

func (b *bot) preferences(snap game.Snapshot, job game.ChoiceID) []game.ChoiceID {
	hungry := snap.Fullness < 45
	stressed := snap.Stress > 65
	behind := snap.DeadlinePct >= 0 && snap.DeadlinePct < 70

	var prefs []game.ChoiceID

	// Creation and mornings.
	prefs = append(prefs, job, game.ChooseBeginWeek, game.ChoosePrepare)

	// Health first.
	prefs = append(prefs, game.ChooseSickMedicine, game.ChooseSickRest)

	// Family: send half if it can, explain otherwise.
	prefs = append(prefs, game.ChooseSendHalf, game.ChooseExplain)

	// Commute: own car, then the bus; walking is the last resort.
	prefs = append(prefs, game.ChooseCar, game.ChooseBus, game.ChooseWalk)
	prefs = append(prefs, game.ChooseLeaveMoney, game.ChooseStayOut)
	prefs = append(prefs, game.ChoosePayBribe, game.ChooseRefuseBribe)
	prefs = append(prefs, game.ChooseBreakfast, game.ChooseWaitForKey)

	// Workday: eat when hungry, breathe when fraying, otherwise the first
	// task of the trade.
	if hungry {
		prefs = append(prefs, game.ChooseLunch, game.ChooseLunchRoadside)
	}
	if stressed {
		prefs = append(prefs, game.ChooseBreak)
	}
	prefs = append(prefs,
		game.ChooseTaskClient, game.ChooseTaskDebug,
		game.ChooseTaskCreate, game.ChooseTaskCommission,
		game.ChooseLunchRoadside, game.ChooseLunchSkip,
		game.ChooseBackToWork,
	)

	// Evenings: grind the deadline while it's safe, otherwise recover.
	if behind && !stressed {
		prefs = append(prefs, game.ChooseKeepWorking)
	}
	if stressed {
		prefs = append(prefs, game.ChooseExercise)
	}
	prefs = append(prefs, game.ChooseGoHome, game.ChooseCook,
		game.ChooseGroceries, game.ChooseOrderDelivery)
	if hungry {
		prefs = append(prefs, game.ChooseSkipDinner)
	}
	prefs = append(prefs,
		game.ChooseCallFamily, game.ChooseLeisureBed, game.ChooseSleep,
		game.ChooseDeclineOffer, game.ChooseSkipDinner,
	)

	return prefs
}
