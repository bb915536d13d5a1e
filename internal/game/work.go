package game

import (
	"fmt"
	"math"

	"github.com/tommyjgunn/lagosweek/internal/balance"
)

type taskResult struct {
	desc     string
	progress float64
	stress   float64
	joy      float64
}

type taskOutcome struct {
	high taskResult
	mid  taskResult
	low  taskResult
}

// Per-job task outcomes. The roll lands high above 0.65, mid above 0.25,
// low otherwise.
var taskOutcomes = map[ChoiceID]taskOutcome{
	ChooseTaskClient: {
		high: taskResult{"The client meeting goes brilliantly. They're excited to work with you.", 28, -5, 12},
		mid:  taskResult{"The client seems interested but wants to think about it.", 15, 5, 0},
		low:  taskResult{"The client isn't receptive. Another wasted trip.", 5, 12, -8},
	},
	ChooseTaskPitch: {
		high: taskResult{"Your presentation comes together beautifully.", 22, -3, 8},
		mid:  taskResult{"Decent progress on the pitch deck.", 18, 8, 0},
		low:  taskResult{"Writer's block. The slides just won't cooperate.", 8, 12, -5},
	},
	ChooseTaskResearch: {
		high: taskResult{"You find some valuable market insights.", 18, 0, 6},
		mid:  taskResult{"Standard research day. Nothing exciting.", 14, 5, 0},
		low:  taskResult{"The data doesn't make sense. Frustrating.", 8, 10, -4},
	},
	ChooseTaskDebug: {
		high: taskResult{"You finally track down that bug that's been haunting the codebase. Victory!", 30, -8, 15},
		mid:  taskResult{"Some progress on debugging. The issues are complex.", 14, 10, -3},
		low:  taskResult{"The bugs multiply as you fix them. It's a nightmare.", 5, 18, -12},
	},
	ChooseTaskFeature: {
		high: taskResult{"The new feature comes together smoothly. Your code is elegant.", 25, -2, 10},
		mid:  taskResult{"Steady progress on the feature.", 18, 12, 2},
		low:  taskResult{"Technical debt catches up with you. Progress stalls.", 8, 15, -8},
	},
	ChooseTaskOptimize: {
		high: taskResult{"Your optimization cuts load time by 40%. Impressive.", 20, -5, 10},
		mid:  taskResult{"Small performance gains. Every bit helps.", 15, 6, 2},
		low:  taskResult{"The optimization breaks something else. Back to square one.", 5, 14, -8},
	},
	ChooseTaskCreate: {
		high: taskResult{"Inspiration strikes! Your designs flow effortlessly.", 28, -10, 18},
		mid:  taskResult{"Decent designs. Not your best work, but solid.", 16, 5, 3},
		low:  taskResult{"Designer's block. Everything you create looks wrong.", 5, 12, -10},
	},
	ChooseTaskRevise: {
		high: taskResult{"The client loves your revisions. Finally!", 22, -5, 10},
		mid:  taskResult{"Standard revisions. The client is satisfied enough.", 18, 10, -2},
		low:  taskResult{"More revisions requested. \"Can you make the logo bigger?\"", 10, 16, -10},
	},
	ChooseTaskMockup: {
		high: taskResult{"Your mockups impress the team.", 20, -3, 8},
		mid:  taskResult{"Mockups coming along steadily.", 16, 6, 2},
		low:  taskResult{"The mockups don't capture the vision. More work needed.", 8, 10, -5},
	},
	ChooseTaskPaint: {
		high: taskResult{"You enter a flow state. Hours disappear as you create something beautiful.", 18, -15, 25},
		mid:  taskResult{"Steady work on your art. Progress feels good.", 14, 0, 8},
		low:  taskResult{"Your vision exceeds your execution. Frustration sets in.", 5, 10, -6},
	},
	ChooseTaskCommission: {
		high: taskResult{"The commission comes together perfectly. The client will love it.", 25, -5, 12},
		mid:  taskResult{"Progress on the commission. It's coming along.", 18, 8, 3},
		low:  taskResult{"The client's requirements don't match your style. Struggling.", 10, 14, -8},
	},
	ChooseTaskExhibit: {
		high: taskResult{"Your exhibition pieces are stunning. You feel proud.", 22, -8, 15},
		mid:  taskResult{"Preparing pieces for the exhibition. Steady progress.", 18, 10, 5},
		low:  taskResult{"Nothing feels exhibition-worthy. Self-doubt creeps in.", 8, 12, -10},
	},
}

var jobTasks = map[Job][]Choice{
	JobMarketer: {
		{ID: ChooseTaskClient, Label: "Visit clients"},
		{ID: ChooseTaskPitch, Label: "Work on presentations"},
		{ID: ChooseTaskResearch, Label: "Research market trends"},
	},
	JobProgrammer: {
		{ID: ChooseTaskDebug, Label: "Fix bugs"},
		{ID: ChooseTaskFeature, Label: "Build new features"},
		{ID: ChooseTaskOptimize, Label: "Optimize code"},
	},
	JobDesigner: {
		{ID: ChooseTaskCreate, Label: "Create new designs"},
		{ID: ChooseTaskRevise, Label: "Handle revisions"},
		{ID: ChooseTaskMockup, Label: "Build mockups"},
	},
	JobArtist: {
		{ID: ChooseTaskPaint, Label: "Work on personal pieces"},
		{ID: ChooseTaskCommission, Label: "Complete commissions"},
		{ID: ChooseTaskExhibit, Label: "Prepare for exhibition"},
	},
}

var workStages = map[int]struct {
	name string
	time float64
}{
	1: {"Morning (8:00 AM - 12:00 PM)", 2},
	2: {"Midday (12:00 PM - 2:00 PM)", 1},
	3: {"Afternoon (2:00 PM - 5:00 PM)", 1.5},
}

// startWorkDay opens the workday. On Tuesday morning the impossible deadline
// lands with it.
func (s *Session) startWorkDay() {
	s.p.IsWorking = true
	s.p.WorkdayStage = 1

	if s.p.Day == 1 && s.p.TimeSlot <= 2 && s.p.Deadline == 0 {
		s.narrate("Your boss calls you into their office. Their expression is grim.\n"+
			"\"I need this project completed by Friday. No excuses.\"\n"+
			"You know it's nearly impossible. But you also know you have no choice.", true)
		s.updateStat(StatStress, 20)
		s.p.Deadline = deadlineTarget
		s.logEvent("work", "deadline assigned")
	} else {
		s.narrate("Time to earn your keep.", true)
	}

	s.workStageMenu()
}

func (s *Session) workStageMenu() {
	stage, ok := workStages[s.p.WorkdayStage]
	if !ok {
		stage = workStages[1]
	}
	s.p.currentWorkTime = stage.time
	s.narrate(fmt.Sprintf("Work: %s", stage.name), true)

	choices := append([]Choice(nil), jobTasks[s.p.Job]...)
	choices = append(choices,
		Choice{ID: ChooseBreak, Label: "Take a break"},
		Choice{ID: ChooseLunch, Label: "Get food"},
		Choice{ID: ChooseStatus, Label: "Check your status"},
	)
	s.offer(ChoiceMenu{Prompt: "What do you focus on?", Choices: choices})
}

// doWorkTask resolves one task attempt: a success roll shrunk by hunger, low
// mood, and high stress, mapped to a tier, scaled by class, and taxed by the
// deadline.
func (s *Session) doWorkTask(task ChoiceID) {
	successMod := 1.0
	if s.p.Fullness < 35 {
		successMod *= 0.75
	}
	if s.p.Joy < 35 {
		successMod *= 0.8
	}
	if s.p.Stress > 65 {
		successMod *= 0.8
	}
	roll := s.rng.Float64() * successMod

	outcome, ok := taskOutcomes[task]
	if !ok {
		panic(fmt.Sprintf("game: unknown work task %q", task))
	}
	var result taskResult
	switch {
	case roll > 0.65:
		result = outcome.high
	case roll > 0.25:
		result = outcome.mid
	default:
		result = outcome.low
	}

	stressChange := result.stress
	joyChange := result.joy
	mods := balance.Class(s.p.Class.String())
	stressChange *= mods.StressFromWork
	if joyChange > 0 {
		joyChange *= mods.JoyFromLeisure
	}

	if s.p.Deadline > 0 {
		s.p.DeadlineProgress += result.progress * 0.8
		stressChange += 4
		joyChange -= 3
	}

	s.p.WorkProgress += result.progress
	s.updateStat(StatStress, stressChange)
	s.updateStat(StatJoy, joyChange)
	s.updateStat(StatFullness, -10)

	s.narrate(result.desc, true)
	s.advanceTime(s.p.currentWorkTime, ActivityWork)
	if s.p.IsGameOver {
		return
	}

	if s.p.WorkdayStage < 3 {
		s.p.WorkdayStage++
		s.workStageMenu()
	} else {
		s.endWorkDay()
	}
}

var breakMoments = []string{
	"You step away for a quick coffee break. Your mind clears a little.",
	"You chat with a colleague about nothing important. It helps.",
	"You take a walk around the office. Movement helps.",
	"You scroll through your phone briefly. A guilty pleasure.",
	"You step outside for fresh air. Well, Lagos air anyway.",
	"You close your eyes for a moment. Brief respite.",
}

func (s *Session) takeBreak() {
	s.narrate(breakMoments[s.rng.IntN(len(breakMoments))], true)
	s.updateStat(StatStress, -8)
	s.updateStat(StatJoy, 4)
	s.advanceTime(0.5, ActivityIdle)
	if s.p.IsGameOver {
		return
	}

	if s.p.WorkdayStage < 3 {
		s.p.WorkdayStage++
		s.workStageMenu()
	} else {
		s.endWorkDay()
	}
}

func (s *Session) lunchMenu() {
	s.narrate("Your stomach is demanding attention.", true)
	roadside := s.modifyCost(4500)
	delivery := s.modifyCost(8000)
	restaurant := s.modifyCost(12000)
	s.offer(ChoiceMenu{
		Prompt: "Lunch time",
		Choices: []Choice{
			{ID: ChooseLunchRoadside, Label: fmt.Sprintf("Street food (₦%.0f)", roadside)},
			{ID: ChooseLunchDelivery, Label: fmt.Sprintf("Food delivery (₦%.0f)", delivery)},
			{ID: ChooseLunchRestaurant, Label: fmt.Sprintf("Restaurant (₦%.0f)", restaurant)},
			{ID: ChooseLunchSkip, Label: "Skip lunch"},
		},
	})
}

// pickFood draws a random item from the session's food menu matching the
// venue. Prices reflect any inflation applied so far this week.
func (s *Session) pickFood(venue string) balance.FoodItem {
	var pool []balance.FoodItem
	for _, f := range s.foods {
		switch venue {
		case "roadside":
			if f.Venue == "roadside" || (f.Venue == "all" && f.Cost < 5000) {
				pool = append(pool, f)
			}
		case "delivery":
			if f.Venue == "all" {
				pool = append(pool, f)
			}
		case "restaurant":
			if f.Venue == "restaurant" || f.Venue == "all" {
				pool = append(pool, f)
			}
		}
	}
	if len(pool) == 0 {
		// Inflation can price everything out of the cheap filter.
		pool = s.foods
	}
	return pool[s.rng.IntN(len(pool))]
}

func (s *Session) buyLunch(venue string) {
	food := s.pickFood(venue)

	var cost float64
	switch venue {
	case "roadside":
		cost = s.modifyCost(float64(food.Cost))
	case "delivery":
		cost = s.modifyCost(float64(food.Cost) + 2500)
	default:
		cost = s.modifyCost(float64(food.Cost) * 1.8)
	}

	if !s.canAfford(cost) {
		s.narrate("You can't afford this option.", false)
		s.lunchMenu()
		return
	}

	s.updateStat(StatMoney, -cost)
	s.updateStat(StatFullness, food.FullnessBoost)
	s.updateStat(StatJoy, food.JoyBoost)
	s.p.MealsToday++
	s.p.LastMealTime = s.p.TimeSlot

	switch {
	case venue == "delivery" && s.rng.Float64() < 0.25:
		s.narrate(fmt.Sprintf("The delivery takes forever. By the time your %s arrives, "+
			"you're starving and annoyed.", food.Name), true)
		s.updateStat(StatJoy, -food.JoyBoost/2)
		s.updateStat(StatStress, 8)
	case venue == "restaurant" && s.rng.Float64() < 0.15:
		s.narrate(fmt.Sprintf("The restaurant is packed. Service is slow, but the %s is worth it.", food.Name), true)
		s.updateStat(StatStress, -10)
	default:
		s.narrate(fmt.Sprintf("You enjoy your %s. Simple pleasures.", food.Name), true)
	}

	if s.rng.Float64() < food.SickChance {
		s.p.Sickness = SickFood
	}

	s.advanceTime(1, ActivityIdle)
	if s.p.IsGameOver {
		return
	}
	if s.p.WorkdayStage < 3 {
		s.p.WorkdayStage++
	}
	s.workStageMenu()
}

func (s *Session) skipLunch() {
	s.narrate("You decide to power through without eating. Your stomach protests.", true)
	s.updateStat(StatFullness, -15)
	s.updateStat(StatJoy, -8)
	s.updateStat(StatStress, 5)
	s.advanceTime(0.5, ActivityIdle)
	if s.p.IsGameOver {
		return
	}
	if s.p.WorkdayStage < 3 {
		s.p.WorkdayStage++
	}
	s.workStageMenu()
}

// checkStatus narrates the full wellbeing, work, and money picture without
// spending time.
func (s *Session) checkStatus() {
	joyWord := "Struggling"
	if s.p.Joy > 70 {
		joyWord = "Good"
	} else if s.p.Joy > 40 {
		joyWord = "Managing"
	}
	stressWord := "High"
	if s.p.Stress < 30 {
		stressWord = "Low"
	} else if s.p.Stress < 60 {
		stressWord = "Moderate"
	}
	fullWord := "Hungry"
	if s.p.Fullness > 70 {
		fullWord = "Satisfied"
	} else if s.p.Fullness > 40 {
		fullWord = "Could eat"
	}

	text := fmt.Sprintf(
		"Joy: %.0f/100 (%s)\nStress: %.0f/100 (%s)\nFullness: %.0f/100 (%s)\n%s\n\n"+
			"Work progress: %.0f/100\n",
		s.p.Joy, joyWord, s.p.Stress, stressWord, s.p.Fullness, fullWord,
		s.moodThought(), s.p.WorkProgress)
	if s.p.Deadline > 0 {
		text += fmt.Sprintf("Deadline: %d%% complete. %d day(s) left.\n",
			s.p.DeadlinePct(), LastDay+1-s.p.Day)
	}
	text += fmt.Sprintf("\nBalance: ₦%.0f\nResilience: %d point(s)",
		math.Round(s.p.Money), s.p.ResiliencePoints)

	s.narrate(text, true)
	s.offer(ChoiceMenu{
		Choices: []Choice{
			{ID: ChooseBackToWork, Label: "Back to work"},
		},
	})
}

func (s *Session) endWorkDay() {
	s.p.IsWorking = false
	s.p.Streaks.ConsecutiveWorkDays++
	s.narrate("The office empties. Another day survived.", true)

	if s.rng.Float64() < 0.20 {
		s.narrate("Your phone buzzes. NEPA has struck again; your area has no power.", false)
		s.updateStat(StatStress, 8)
		s.updateStat(StatJoy, -4)
	}

	s.eveningMenu()
}
