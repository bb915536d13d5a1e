package game

import (
	"fmt"
	"time"
)

var phoneNews = []string{
	"Twitter is ablaze with debates about the economy. Nothing new.",
	"WhatsApp groups are already buzzing with forwards and memes.",
	"Your data plan is dangerously low. You'll need to top up soon.",
	"A friend posted pictures from a party you couldn't attend.",
	"The naira fell again. Everything costs more now.",
	"Someone is selling land on your timeline. Classic Lagos.",
	"Your bank sent another promotion you'll never use.",
	"Traffic alerts warn of unusual congestion. Unusual for Lagos means apocalyptic.",
}

func (s *Session) morningMenu() {
	s.offer(ChoiceMenu{
		Prompt: "How do you start your day?",
		Choices: []Choice{
			{ID: ChoosePrepare, Label: "Get ready for work"},
			{ID: ChoosePhone, Label: "Check your phone first"},
			{ID: ChooseSnooze, Label: "Snooze the alarm"},
		},
	})
}

func (s *Session) prepareForWork() {
	s.narrate("You drag yourself out of bed and begin the morning ritual.", false)
	s.updateStat(StatFullness, -5)
	s.transportMenu()
}

// checkPhone delivers a morning headline, usually harmless, then schedules
// the get-ready beat on the pacing scheduler so the driver can let the
// moment land before the next menu appears.
func (s *Session) checkPhone() {
	news := phoneNews[s.rng.IntN(len(phoneNews))]
	if s.rng.Float64() < 0.35 {
		s.updateStat(StatJoy, -3)
		s.narrate(fmt.Sprintf("You check your phone. %s You feel slightly worse.", news), false)
	} else {
		s.updateStat(StatJoy, 2)
		s.narrate(fmt.Sprintf("You check your phone. %s At least you're informed.", news), false)
	}
	s.menu = ChoiceMenu{}
	s.sched.Schedule(800*time.Millisecond, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.p.IsGameOver {
			return
		}
		s.prepareForWork()
		s.presenter.Refresh(s.snapshot())
	})
}

func (s *Session) snoozeAlarm() {
	s.updateStat(StatJoy, 4)
	s.updateStat(StatStress, -3)
	s.advanceTime(1, ActivitySleep)
	if s.p.IsGameOver {
		return
	}
	s.narrate("You hit snooze and drift back to sleep. When you wake again, it's 8:00 AM.\n"+
		"You're running late!", false)
	s.updateStat(StatStress, 12)
	s.transportMenu()
}

// showSicknessEvent opens the sick-morning flow after a bad meal catches up
// with the player overnight.
func (s *Session) showSicknessEvent() {
	s.narrate("That food from earlier has caught up with you. Your stomach churns and "+
		"your head pounds.\n"+s.moodThought(), true)
	s.updateStat(StatJoy, -15)
	s.updateStat(StatStress, 18)
	s.logEvent("sickness", "woke up sick")

	medicineCost := s.modifyCost(8000)
	s.offer(ChoiceMenu{
		Prompt: "You're sick",
		Choices: []Choice{
			{ID: ChooseSickRest, Label: "Rest at home (lose the day)"},
			{ID: ChooseSickMedicine, Label: fmt.Sprintf("Buy medicine and push through (₦%.0f)", medicineCost), Param: int(medicineCost)},
			{ID: ChooseSickIgnore, Label: "Ignore it and go to work anyway"},
		},
	})
}

func (s *Session) restAtHome() {
	s.p.Sickness = SickNone
	s.narrate("You spend the day in bed, letting your body recover. The hours pass slowly, "+
		"but by evening you feel almost human again.", true)
	s.updateStat(StatJoy, -5)
	s.updateStat(StatStress, -15)
	s.updateStat(StatFullness, -25)
	s.advanceTime(8, ActivitySleep)
	if s.p.IsGameOver {
		return
	}
	s.goToSleep()
}

func (s *Session) buyMedicine(cost float64) {
	if !s.canAfford(cost) {
		s.narrate("You can't afford medicine right now.", false)
		return
	}
	s.p.Sickness = SickNone
	s.updateStat(StatMoney, -cost)
	s.updateStat(StatStress, 5)
	s.narrate("You down some medication and force yourself to function. "+
		"The day will be hard, but you'll manage.", true)
	s.morningMenu()
}

// wakeHungover is the morning after the rave: the day-opening beat is
// replaced by the headache.
func (s *Session) wakeHungover() {
	s.narrate("You wake up feeling terrible. Head pounding, stomach churning. "+
		"Worth it? You're not sure.", true)
	s.updateStat(StatJoy, -20)
	s.updateStat(StatStress, 25)
	s.p.Sickness = SickNone
	s.morningMenu()
}

func (s *Session) ignoreSickness() {
	s.narrate("You ignore your body's protests and head to work anyway. "+
		"Every step is a battle, but you refuse to give in.", true)
	s.updateStat(StatStress, 20)
	s.updateStat(StatJoy, -10)
	// Half the time it doesn't pass, and tomorrow starts the same way.
	if s.rng.Float64() >= 0.5 {
		s.p.Sickness = SickNone
	}
	s.morningMenu()
}
