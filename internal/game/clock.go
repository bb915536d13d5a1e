package game

import (
	"fmt"

	"github.com/tommyjgunn/lagosweek/internal/balance"
)

// advanceTime moves the clock forward by slots under the given activity's
// decay rates, rolling into the next day (or the week's end) when the clock
// passes midnight, then runs the time-based event checks.
func (s *Session) advanceTime(slots float64, kind Activity) {
	if s.p.IsGameOver {
		return
	}

	s.p.TimeSlot += slots
	if s.p.TimeSlot >= SlotsPerDay {
		s.p.TimeSlot = 0
		s.p.Day++
		if s.p.Day > LastDay {
			s.finishWeek()
			return
		}
		s.startNewDay()
		if s.p.IsGameOver {
			return
		}
	}

	d := balance.Decay(kind.String())
	s.updateStat(StatFullness, -d.FullnessCost*slots)
	s.updateStat(StatJoy, d.JoyDelta*slots)
	s.updateStat(StatStress, d.StressDelta*slots)

	s.checkTimeBasedEvents()
	s.interact()
	if !s.p.IsGameOver {
		s.presenter.Refresh(s.snapshot())
	}
}

// dailyReset clears the per-day counters, updating the multi-day streaks
// against the day that just ended first. Guarded so the rollover paths can
// all call it without double-counting.
func (s *Session) dailyReset() {
	if s.p.lastDailyReset == s.p.Day {
		return
	}
	s.p.lastDailyReset = s.p.Day

	if s.p.MealsToday == 0 {
		s.p.Streaks.DaysWithoutFood++
	} else {
		s.p.Streaks.DaysWithoutFood = 0
	}
	if s.p.Stress > 65 {
		s.p.Streaks.DaysWithHighStress++
	} else {
		s.p.Streaks.DaysWithHighStress = 0
	}
	if s.p.Joy < 35 {
		s.p.Streaks.DaysWithLowJoy++
	} else {
		s.p.Streaks.DaysWithLowJoy = 0
	}

	s.p.MealsToday = 0
	s.p.HadRandomEventToday = false
	s.p.warningsShown = make(map[string]bool)
}

// checkTimeBasedEvents runs after every time advance: the daily counter
// reset, the random event roll, and the two scripted beats of the week.
func (s *Session) checkTimeBasedEvents() {
	if s.p.TimeSlot == 0 {
		s.dailyReset()
	}

	if s.p.created && !s.p.HadRandomEventToday {
		chance := 0.12
		if s.p.TimeSlot > 4 {
			chance = 0.18
		}
		if s.p.TimeSlot >= 8 {
			chance = 0.60
		}
		if s.p.Stress > 65 {
			chance += 0.08
		}
		chance *= balance.Class(s.p.Class.String()).EventChance

		if s.rng.Float64() < chance {
			s.p.HadRandomEventToday = true
			s.triggerRandomEvent()
		}
	}

	// Tuesday: the impossible deadline lands, if work hasn't assigned it yet.
	if s.p.Day == 1 && int(s.p.TimeSlot) == 1 && s.p.Deadline == 0 {
		s.p.Deadline = deadlineTarget
	}

	// Wednesday afternoon: the call from home.
	if s.p.Day == 2 && int(s.p.TimeSlot) == 4 && !s.p.HasFamilyEmergency {
		s.triggerFamilyEmergency()
	}
}

// startNewDay rolls the weather, clears the workday flags, and runs the
// day-specific opening beat. The sickness morning preempts everything else.
func (s *Session) startNewDay() {
	s.p.RainedYesterday = s.weather.RainedOvernight(s.p.Day)
	s.p.IsWorking = false
	s.p.WorkdayStage = 0
	s.dailyReset()

	if s.p.Sickness == SickFood {
		s.showSicknessEvent()
		return
	}
	if s.p.Sickness == SickHangover {
		s.wakeHungover()
		return
	}

	switch s.p.Day {
	case 1:
		s.narrate("Tuesday morning. You wake to the familiar sounds of Lagos. "+
			"Your phone buzzes with news alerts: prices have risen again.", true)
		s.inflateEconomy(12)
	case 2:
		s.narrate("Wednesday morning. Hump day. Traffic reports warn of major delays on all routes.", true)
	case 3:
		s.narrate("Thursday morning. The week's weight presses down on your shoulders. "+
			"Your phone shows more bad economic news.", true)
		s.inflateEconomy(15)
		if s.p.Deadline > 0 {
			pct := s.p.DeadlinePct()
			s.narrate(fmt.Sprintf("Your deadline project is %d%% complete. Friday is tomorrow.", pct), false)
			if pct < 50 {
				s.narrate("You're significantly behind. The pressure is mounting.", false)
				s.updateStat(StatStress, 12)
			}
		}
	case 4:
		s.narrate("Friday morning. The final day. If you can make it through today, "+
			"you'll have survived another week in Lagos.", true)
		s.inflateEconomy(18)
		if s.p.Deadline > 0 {
			pct := s.p.DeadlinePct()
			s.narrate(fmt.Sprintf("Today is D-Day. Your project is %d%% complete.", pct), false)
			if pct < 80 {
				s.narrate("You won't make the deadline at this rate. Panic sets in.", false)
				s.updateStat(StatStress, 20)
			} else {
				s.narrate("You can finish this. Just stay focused.", false)
				s.updateStat(StatStress, 8)
			}
		}
	}

	s.morningMenu()
}
