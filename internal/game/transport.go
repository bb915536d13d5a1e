package game

import (
	"fmt"
	"math"
)

func (s *Session) transportMenu() {
	s.narrate("Time to get to work. How are you getting there?", false)

	var choices []Choice
	if s.p.HasTransportation {
		fuel := s.modifyCost(2500)
		choices = append(choices, Choice{ID: ChooseCar, Label: fmt.Sprintf("Drive (₦%.0f fuel)", fuel), Param: int(fuel)})
	}
	uber := s.modifyCost(6500)
	bus := s.modifyCost(1800)
	choices = append(choices,
		Choice{ID: ChooseUber, Label: fmt.Sprintf("Call a ride (₦%.0f)", uber), Param: int(uber)},
		Choice{ID: ChooseBus, Label: fmt.Sprintf("Take a bus (₦%.0f)", bus), Param: int(bus)},
		Choice{ID: ChooseWalk, Label: "Walk (free, but risky)"},
	)
	s.offer(ChoiceMenu{Prompt: "Transportation", Choices: choices})
}

func (s *Session) driveCar() {
	fuel := s.modifyCost(2500)
	if !s.canAfford(fuel) {
		s.narrate("You're low on fuel and can't afford more right now.", false)
		s.transportMenu()
		return
	}
	s.updateStat(StatMoney, -fuel)
	s.narrate("You start the car and pull into Lagos traffic.", true)

	if s.rng.Float64() < 0.45 {
		s.narrate("Traffic is brutal today. You inch forward, watching time slip away.", false)
		s.updateStat(StatStress, 12)
		s.advanceTime(1.5, ActivityIdle)
	} else {
		s.narrate("Traffic is manageable for once. Small victories.", false)
		s.advanceTime(1, ActivityIdle)
	}
	if s.p.IsGameOver {
		return
	}
	s.checkForPolice()
}

func (s *Session) callRide() {
	base := s.modifyCost(6500)
	if !s.canAfford(base) {
		s.narrate("You can't afford a ride right now.", false)
		s.transportMenu()
		return
	}

	cost := base
	surge := s.rng.Float64() < 0.35
	if surge {
		cost = math.Round(base * 1.8)
		if !s.canAfford(cost) {
			s.narrate(fmt.Sprintf("It's surge pricing (₦%.0f) and you can't afford it.", cost), false)
			s.transportMenu()
			return
		}
	}

	s.updateStat(StatMoney, -cost)
	if surge {
		s.narrate(fmt.Sprintf("Surge pricing. You wince as you confirm the ride (₦%.0f).", cost), true)
		s.updateStat(StatStress, 8)
	} else {
		s.narrate("You call a ride and wait for it to arrive.", true)
	}
	s.advanceTime(1, ActivityIdle)
	if s.p.IsGameOver {
		return
	}
	s.checkForPolice()
}

func (s *Session) takeBus() {
	fare := s.modifyCost(1800)
	if !s.canAfford(fare) {
		s.narrate("You can't even afford the bus fare.", false)
		s.transportMenu()
		return
	}
	s.updateStat(StatMoney, -fare)
	s.narrate("You head to the bus stop and wait with the morning crowd.", true)

	// The rare but real danger of the wrong bus.
	if s.rng.Float64() < 0.03 {
		s.gameOver("You got into a 'one-chance' vehicle. These criminals robbed you of everything " +
			"and abandoned you far from home. Your week ends here.")
		return
	}

	if s.rng.Float64() < 0.25 {
		found := float64(s.rng.IntN(3000) + 1000)
		s.narrate(fmt.Sprintf("While waiting, you notice some money on the ground. ₦%.0f.", found), false)
		s.offer(ChoiceMenu{
			Choices: []Choice{
				{ID: ChoosePickUpMoney, Label: "Pick it up", Param: int(found)},
				{ID: ChooseLeaveMoney, Label: "Leave it alone"},
			},
		})
		return
	}

	if s.rng.Float64() < 0.15 {
		s.narrate("An argument erupts between the conductor and a passenger over change.", false)
		s.offer(ChoiceMenu{
			Choices: []Choice{
				{ID: ChooseMediate, Label: "Try to help calm things"},
				{ID: ChooseStayOut, Label: "Mind your business"},
			},
		})
		return
	}

	s.busRideDone()
}

func (s *Session) busRideDone() {
	s.advanceTime(1.5, ActivityIdle)
	if s.p.IsGameOver {
		return
	}
	s.arriveAtWork()
}

func (s *Session) pickUpMoney(amount float64) {
	if s.rng.Float64() < 0.08 {
		s.gameOver("As you reach for the money, something strange happens. Your limbs feel heavy, " +
			"your vision blurs... You've been transformed. The juju is real. Your journey ends here.")
		return
	}
	s.updateStat(StatMoney, amount)
	s.updateStat(StatJoy, 6)
	s.narrate("You pocket the money. Lucky day!", true)
	s.busRideDone()
}

func (s *Session) leaveMoney() {
	s.updateStat(StatJoy, 3)
	s.narrate("You leave the money where it is. Not worth the risk.", true)
	s.busRideDone()
}

func (s *Session) mediateArgument() {
	if s.rng.Float64() < 0.55 {
		s.narrate("You calmly help resolve the situation. Both parties thank you.", false)
		s.updateStat(StatJoy, 8)
		s.updateStat(StatStress, -3)
	} else {
		s.narrate("Your intervention backfires. \"Who invited you?\" someone snaps. "+
			"You retreat, embarrassed.", false)
		s.updateStat(StatJoy, -6)
		s.updateStat(StatStress, 10)
	}
	s.busRideDone()
}

func (s *Session) stayOutOfArgument() {
	s.narrate("You stay out of it. The argument eventually dies down on its own.", false)
	s.busRideDone()
}

func (s *Session) walkToWork() {
	s.narrate("You decide to walk. It's a long journey, but you'll save money.", true)
	s.updateStat(StatFullness, -12)
	s.updateStat(StatStress, 8)
	s.updateStat(StatJoy, -3)

	if s.p.RainedYesterday {
		s.narrate("Last night's rain has left puddles everywhere. The walk is miserable.", false)
		s.updateStat(StatJoy, -5)
		if s.rng.Float64() < 0.6 {
			s.narrate("A car speeds through a puddle, completely soaking you. "+
				"The driver doesn't even slow down.", false)
			s.updateStat(StatJoy, -8)
			s.updateStat(StatStress, 12)
		}
	}

	if s.rng.Float64() < 0.12 {
		stolen := math.Round(s.p.Money * 0.5)
		s.narrate("Someone bumps into you roughly. By the time you check, half your money is gone. "+
			"A pickpocket.", false)
		s.updateStat(StatMoney, -stolen)
		s.updateStat(StatJoy, -15)
		s.updateStat(StatStress, 20)
	}

	s.advanceTime(1.5, ActivityPhysical)
	if s.p.IsGameOver {
		return
	}
	s.arriveAtWork()
}

func (s *Session) checkForPolice() {
	if s.rng.Float64() < 0.35 {
		s.narrate("You're stopped at a checkpoint.", false)
		if s.rng.Float64() < 0.45 {
			bribe := s.modifyCost(6000)
			s.narrate("The officer claims there's an \"issue\" with your papers. "+
				"He suggests a \"settlement.\"", false)
			s.offer(ChoiceMenu{
				Choices: []Choice{
					{ID: ChoosePayBribe, Label: fmt.Sprintf("Pay ₦%.0f", bribe), Param: int(bribe)},
					{ID: ChooseRefuseBribe, Label: "Refuse and stand your ground"},
				},
			})
			return
		}
		s.narrate("They check your papers and wave you through. Relief.", false)
	}
	s.arriveAtWork()
}

func (s *Session) payBribe(amount float64) {
	if !s.canAfford(amount) {
		s.narrate("\"I don't have that much,\" you explain truthfully.", false)
		s.refuseBribe()
		return
	}
	s.updateStat(StatMoney, -amount)
	s.updateStat(StatStress, 10)
	s.updateStat(StatJoy, -5)
	s.narrate("You hand over the money. The officer pockets it and waves you through. "+
		"This is Lagos.", true)
	s.arriveAtWork()
}

func (s *Session) refuseBribe() {
	if s.rng.Float64() < 0.25 {
		s.gameOver("The officer doesn't take kindly to your refusal. You spend the rest of the day " +
			"at the station. Your boss fires you for not showing up.")
		return
	}
	confiscated := math.Min(math.Max(s.p.Money, 0), 8000)
	s.updateStat(StatMoney, -confiscated)
	s.updateStat(StatStress, 18)
	s.narrate("After a tense standoff, they let you go but somehow your wallet is lighter. "+
		"You're too rattled to argue.", true)
	s.arriveAtWork()
}

func (s *Session) arriveAtWork() {
	s.advanceTime(0.5, ActivityIdle)
	if s.p.IsGameOver {
		return
	}

	if s.rng.Float64() < 0.15 {
		s.narrate("You arrive to find everyone waiting outside. "+
			"The person with the office key isn't here yet.", true)
		s.updateStat(StatStress, 8)
		breakfast := s.modifyCost(3500)
		s.offer(ChoiceMenu{
			Choices: []Choice{
				{ID: ChooseWaitForKey, Label: "Wait patiently"},
				{ID: ChooseCallKey, Label: "Call the key holder"},
				{ID: ChooseBreakfast, Label: fmt.Sprintf("Get breakfast while waiting (₦%.0f)", breakfast), Param: int(breakfast)},
			},
		})
		return
	}

	s.narrate("You settle into your desk and prepare for the day ahead.", true)
	s.startWorkDay()
}

func (s *Session) waitForKey() {
	s.narrate("You wait. And wait. Eventually, they arrive and everyone files in.", false)
	s.updateStat(StatStress, 5)
	s.updateStat(StatFullness, -5)
	s.advanceTime(0.5, ActivityIdle)
	if s.p.IsGameOver {
		return
	}
	s.startWorkDay()
}

func (s *Session) callKeyHolder() {
	if s.rng.Float64() < 0.5 {
		s.narrate("Your call lights a fire under them. They arrive soon after.", false)
		s.advanceTime(0.25, ActivityIdle)
	} else {
		s.narrate("They apologize profusely but still take forever to arrive.", false)
		s.advanceTime(0.5, ActivityIdle)
		s.updateStat(StatStress, 6)
	}
	if s.p.IsGameOver {
		return
	}
	s.startWorkDay()
}

func (s *Session) roadsideBreakfast(cost float64) {
	if !s.canAfford(cost) {
		s.narrate("You can't afford breakfast right now.", false)
		s.waitForKey()
		return
	}
	s.updateStat(StatMoney, -cost)
	s.updateStat(StatFullness, 25)
	s.updateStat(StatJoy, 5)
	s.p.MealsToday++
	s.p.LastMealTime = s.p.TimeSlot

	food := s.pickFood("roadside")
	if s.rng.Float64() < food.SickChance {
		s.p.Sickness = SickFood
	}
	s.narrate(fmt.Sprintf("You grab some %s while waiting. When you return, the office is open.", food.Name), false)

	s.advanceTime(0.5, ActivityIdle)
	if s.p.IsGameOver {
		return
	}
	s.startWorkDay()
}
