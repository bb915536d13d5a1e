package game

import (
	"fmt"

	"github.com/tommyjgunn/lagosweek/internal/balance"
)

func (s *Session) eveningMenu() {
	s.narrate("The evening stretches ahead of you. What do you do?", false)

	social := s.modifyCost(7000)
	dinner := s.modifyCost(15000)
	choices := []Choice{
		{ID: ChooseGoHome, Label: "Go home and rest"},
		{ID: ChooseSocialize, Label: fmt.Sprintf("Meet up with friends (₦%.0f)", social), Param: int(social)},
		{ID: ChooseKeepWorking, Label: "Keep working on projects"},
		{ID: ChooseDinnerOut, Label: fmt.Sprintf("Treat yourself to dinner (₦%.0f)", dinner), Param: int(dinner)},
		{ID: ChooseExercise, Label: "Exercise"},
		{ID: ChooseCreative, Label: "Do something creative"},
	}
	if s.p.Day >= 3 {
		rave := s.modifyCost(15000)
		choices = append(choices, Choice{ID: ChooseRave, Label: fmt.Sprintf("Go out to party (₦%.0f)", rave), Param: int(rave)})
	}
	s.offer(ChoiceMenu{Prompt: "Evening", Choices: choices})
}

func (s *Session) goHome() {
	s.narrate(fmt.Sprintf("You return to your place in %s. The familiar walls offer some comfort.",
		s.p.Location.Name), true)
	s.updateStat(StatStress, -8)
	s.updateStat(StatJoy, 3)
	s.offer(ChoiceMenu{
		Prompt: "Home activities",
		Choices: []Choice{
			{ID: ChooseCook, Label: "Cook something"},
			{ID: ChooseTV, Label: "Relax with entertainment"},
			{ID: ChooseChores, Label: "Do some chores"},
			{ID: ChooseSleep, Label: "Go to bed early"},
		},
	})
}

func (s *Session) cookDinner() {
	if s.rng.Float64() >= 0.6 {
		grocery := s.modifyCost(6000)
		s.narrate("Your kitchen is nearly empty. You'll need to shop first.", false)
		s.offer(ChoiceMenu{
			Choices: []Choice{
				{ID: ChooseGroceries, Label: fmt.Sprintf("Buy groceries (₦%.0f)", grocery), Param: int(grocery)},
				{ID: ChooseOrderDelivery, Label: "Just order delivery"},
				{ID: ChooseSkipDinner, Label: "Skip dinner"},
			},
		})
		return
	}

	s.narrate("You cook a simple meal. The familiar routine is calming.", false)
	s.updateStat(StatFullness, 38)
	s.updateStat(StatJoy, 6)
	s.updateStat(StatStress, -4)
	s.p.MealsToday++
	s.advanceTime(1, ActivityIdle)
	if s.p.IsGameOver {
		return
	}
	s.leisureMenu()
}

func (s *Session) buyGroceries(cost float64) {
	if !s.canAfford(cost) {
		s.narrate("You can't afford groceries right now.", false)
		s.goHome()
		return
	}
	s.updateStat(StatMoney, -cost)
	s.updateStat(StatStress, 6)
	s.updateStat(StatFullness, -5)
	s.narrate("You make a quick trip to the market. Then cook a proper meal.", true)
	s.updateStat(StatFullness, 42)
	s.updateStat(StatJoy, 8)
	s.p.MealsToday++
	s.advanceTime(2, ActivityPhysical)
	if s.p.IsGameOver {
		return
	}
	s.leisureMenu()
}

func (s *Session) orderFoodDelivery() {
	cost := s.modifyCost(8000)
	if !s.canAfford(cost) {
		s.narrate("You can't afford delivery right now.", false)
		s.goHome()
		return
	}
	s.updateStat(StatMoney, -cost)

	if s.rng.Float64() < 0.3 {
		s.narrate("The delivery takes forever. When it finally arrives, it's lukewarm.", true)
		s.updateStat(StatFullness, 30)
		s.updateStat(StatStress, 8)
	} else {
		s.narrate("Your food arrives hot and delicious. Small victories.", true)
		s.updateStat(StatFullness, 35)
		s.updateStat(StatJoy, 8)
	}
	s.p.MealsToday++
	s.advanceTime(1, ActivityIdle)
	if s.p.IsGameOver {
		return
	}
	s.leisureMenu()
}

func (s *Session) skipDinner() {
	s.narrate("You go to bed hungry. It's not comfortable.", false)
	s.updateStat(StatFullness, -18)
	s.updateStat(StatJoy, -10)
	s.updateStat(StatStress, 5)
	s.goToSleep()
}

// watchTV is the diminishing-returns comfort: each repeat this week numbs a
// little more and delights a little less.
func (s *Session) watchTV() {
	s.p.EveningActivities.TV++
	joyGain := 10 - float64(s.p.EveningActivities.TV)*2
	if joyGain < 3 {
		joyGain = 3
	}

	if s.p.EveningActivities.TV > 3 {
		s.narrate("You scroll through channels, but nothing holds your attention. "+
			"The familiar numbing effect.", true)
	} else {
		s.narrate("You unwind with some entertainment. Your mind gets a break.", true)
	}
	s.updateStat(StatJoy, joyGain)
	s.updateStat(StatStress, -10)
	s.advanceTime(2, ActivityIdle)
	if s.p.IsGameOver {
		return
	}
	s.goToSleep()
}

func (s *Session) doChores() {
	s.narrate("You clean up, do laundry, and generally get your life in order. "+
		"It's satisfying work.", true)
	s.updateStat(StatStress, 3)
	s.updateStat(StatFullness, -5)
	s.updateStat(StatJoy, 5)
	s.advanceTime(1, ActivityPhysical)
	if s.p.IsGameOver {
		return
	}
	s.leisureMenu()
}

func (s *Session) leisureMenu() {
	s.narrate("You have some time before bed.", false)
	s.offer(ChoiceMenu{
		Choices: []Choice{
			{ID: ChooseLeisureTV, Label: "Watch something"},
			{ID: ChooseCallFamily, Label: "Call family or friends"},
			{ID: ChooseLeisureBed, Label: "Go to sleep"},
		},
	})
}

func (s *Session) callFamily() {
	s.narrate("You spend time on the phone with loved ones. "+
		"The connection reminds you why you keep going.", true)
	s.updateStat(StatJoy, 12)
	s.updateStat(StatStress, -8)
	s.advanceTime(1, ActivityIdle)
	if s.p.IsGameOver {
		return
	}
	s.goToSleep()
}

var socialMoments = []string{
	"Great conversations about life, dreams, and surviving Lagos.",
	"Your friend tells a story that has everyone in stitches.",
	"You all commiserate about work. Shared misery is lighter.",
	"Someone brought small chops. Perfect.",
	"The group makes plans for when life is easier. Someday.",
	"A friend shares good news. Their joy lifts everyone.",
}

func (s *Session) socializeWithFriends(cost float64) {
	if !s.canAfford(cost) {
		s.narrate("You can't afford to go out right now.", false)
		s.eveningMenu()
		return
	}
	s.p.EveningActivities.Social++
	s.updateStat(StatMoney, -cost)

	joy := 15 * balance.Class(s.p.Class.String()).JoyFromLeisure
	s.updateStat(StatJoy, joy)
	s.updateStat(StatStress, -12)

	s.narrate(socialMoments[s.rng.IntN(len(socialMoments))], true)
	s.updateStat(StatFullness, -10)
	s.advanceTime(3, ActivityIdle)
	if s.p.IsGameOver {
		return
	}
	s.goToSleep()
}

// continueWorking buys deadline progress with compounding stress: each
// repeat this week yields less and costs more.
func (s *Session) continueWorking() {
	s.p.EveningActivities.Work++
	n := float64(s.p.EveningActivities.Work)

	progress := 18 - n*3
	if progress < 8 {
		progress = 8
	}
	stress := 12 + n*4

	if s.p.EveningActivities.Work > 2 {
		s.narrate("You're exhausted, but you force yourself to keep working. "+
			"Every keystroke is a battle.\n"+s.moodThought(), true)
	} else {
		s.narrate("You put in extra hours. The office is quiet; just you and the work.", true)
	}

	s.p.WorkProgress += progress
	if s.p.Deadline > 0 {
		s.p.DeadlineProgress += progress * 0.9
	}
	s.updateStat(StatStress, stress)
	s.updateStat(StatFullness, -12)
	s.updateStat(StatJoy, -8)
	s.advanceTime(2, ActivityWork)
	if s.p.IsGameOver {
		return
	}

	s.narrate("You're hungry after all that work.", false)
	s.offer(ChoiceMenu{
		Choices: []Choice{
			{ID: ChooseOrderDelivery, Label: "Order something"},
			{ID: ChooseLeisureBed, Label: "Just go to sleep"},
		},
	})
}

func (s *Session) goOutForDinner(cost float64) {
	if !s.canAfford(cost) {
		s.narrate("You can't afford a nice dinner right now.", false)
		s.eveningMenu()
		return
	}
	s.updateStat(StatMoney, -cost)
	s.updateStat(StatFullness, 40)
	s.updateStat(StatJoy, 12)
	s.updateStat(StatStress, -10)
	s.p.MealsToday++
	s.narrate("You treat yourself to a proper meal. The atmosphere, the food, "+
		"the brief escape from routine. It's worth it.", true)
	s.advanceTime(2, ActivityIdle)
	if s.p.IsGameOver {
		return
	}
	s.goToSleep()
}

// doExercise is the one habit that compounds in the player's favor.
func (s *Session) doExercise() {
	s.p.EveningActivities.Exercise++
	n := float64(s.p.EveningActivities.Exercise)

	stressChange := -8 - n*2
	joyGain := 5 + n*1.5

	switch {
	case s.p.EveningActivities.Exercise == 1:
		s.narrate("You force yourself to work out. It's hard, but you feel better afterwards.", true)
	case s.p.EveningActivities.Exercise < 4:
		s.narrate("Another workout. Your body is getting used to this. It's becoming a habit.", true)
	default:
		s.narrate("Your exercise routine is paying off. You feel stronger, clearer, more capable.", true)
		joyGain += 5
	}

	s.updateStat(StatJoy, joyGain)
	s.updateStat(StatStress, stressChange)
	s.updateStat(StatFullness, -15)
	s.advanceTime(1.5, ActivityPhysical)
	if s.p.IsGameOver {
		return
	}

	s.narrate("You worked up an appetite.", false)
	s.offer(ChoiceMenu{
		Choices: []Choice{
			{ID: ChooseCook, Label: "Cook something healthy"},
			{ID: ChooseOrderDelivery, Label: "Order food"},
			{ID: ChooseLeisureBed, Label: "Skip dinner and sleep"},
		},
	})
}

var hobbies = []string{"writing", "sketching", "making music", "crafting"}

func (s *Session) creativeHobby() {
	s.p.EveningActivities.Creative++
	n := float64(s.p.EveningActivities.Creative)
	hobby := hobbies[(s.p.EveningActivities.Creative-1)%len(hobbies)]

	joyGain := 10 + n*2
	stressChange := -8 - n

	switch {
	case s.p.EveningActivities.Creative == 1:
		s.narrate(fmt.Sprintf("You spend time %s. It's been a while since you've done "+
			"something purely for yourself.", hobby), true)
	case s.p.EveningActivities.Creative < 4:
		s.narrate(fmt.Sprintf("More %s. You're finding your flow again. "+
			"The stress of Lagos fades a little.", hobby), true)
	default:
		s.narrate(fmt.Sprintf("Your %s practice is becoming meaningful. "+
			"This is who you are beyond the daily grind.", hobby), true)
		joyGain += 8
	}

	s.updateStat(StatJoy, joyGain)
	s.updateStat(StatStress, stressChange)
	s.advanceTime(2, ActivityIdle)
	if s.p.IsGameOver {
		return
	}
	s.goToSleep()
}

func (s *Session) goToRave(cost float64) {
	if !s.canAfford(cost) {
		s.narrate("You can't afford to party right now.", false)
		s.eveningMenu()
		return
	}
	s.updateStat(StatMoney, -cost)
	s.updateStat(StatJoy, 22)
	s.updateStat(StatStress, -20)
	s.updateStat(StatFullness, -18)
	s.narrate("The music, the lights, the energy. For a few hours, you forget about everything else.", true)
	s.offer(ChoiceMenu{
		Prompt: "Someone offers you something to \"enhance the experience.\"",
		Choices: []Choice{
			{ID: ChooseAcceptOffer, Label: "Why not"},
			{ID: ChooseDeclineOffer, Label: "No thanks"},
		},
	})
}

func (s *Session) acceptSubstances() {
	s.updateStat(StatJoy, 30)
	s.updateStat(StatStress, -30)
	s.p.Sickness = SickHangover
	s.narrate("The night becomes a blur of euphoria. You'll pay for this tomorrow, "+
		"but right now, you don't care.", true)
	s.advanceTime(4, ActivityPhysical)
	if s.p.IsGameOver {
		return
	}
	s.goToSleep()
}

func (s *Session) declineSubstances() {
	s.narrate("You decline politely and enjoy the night naturally. Still fun, still an escape.", false)
	s.advanceTime(3, ActivityPhysical)
	if s.p.IsGameOver {
		return
	}
	s.goToSleep()
}

// goToSleep closes the day: sleep quality keyed to stress and hunger, the
// hard rollover to the next morning, and the morning-after dispatch.
func (s *Session) goToSleep() {
	// A night that ran past midnight already rolled the day over.
	if s.p.TimeSlot == 0 && s.p.lastDailyReset == s.p.Day {
		return
	}

	joyBoost, stressDrop := 5.0, 10.0
	switch {
	case s.p.Stress > 65:
		joyBoost, stressDrop = 2, 5
		s.narrate("Sleep comes hard. Your mind races with worries.\n"+s.moodThought(), true)
	case s.p.Fullness < 30:
		joyBoost, stressDrop = 2, 5
		s.narrate("Your stomach keeps you awake. Hunger is a persistent companion.", true)
	case s.p.Stress > 40:
		joyBoost, stressDrop = 4, 7
		s.narrate("Sleep is fitful but you get some rest.", true)
	default:
		s.narrate("You sleep deeply. Tomorrow is another day.", true)
	}
	s.updateStat(StatJoy, joyBoost)
	s.updateStat(StatStress, -stressDrop)

	s.p.TimeSlot = 0
	s.p.Day++
	s.p.WorkdayStage = 0

	if s.p.Day > LastDay {
		s.finishWeek()
		return
	}

	s.updateStat(StatFullness, -20)
	s.dailyReset()

	switch s.p.Sickness {
	case SickHangover:
		s.wakeHungover()
	case SickFood:
		s.showSicknessEvent()
	default:
		s.startNewDay()
	}
}
