package game

import (
	"fmt"
	"math"

	"github.com/tommyjgunn/lagosweek/internal/balance"
)

type randomEvent struct {
	name     string
	desc     string
	joy      float64
	stress   float64
	fullness float64
	money    float64
}

var goodEvents = []randomEvent{
	{
		name:   "Acts of Kindness",
		desc:   "You help someone carry their bags across the busy road. They thank you warmly, and the moment of connection lifts your spirits.",
		joy:    8, stress: -5,
	},
	{
		name:   "Office Treat",
		desc:   "A colleague brought small chops for everyone. The office feels lighter today.",
		joy:    10, stress: -4, fullness: 20,
	},
	{
		name:   "Unexpected Bonus",
		desc:   "Your manager slips you a small cash bonus for your recent effort. \"Don't tell the others,\" she winks.",
		joy:    12, stress: -8, money: 15000,
	},
	{
		name:   "Cool Weather",
		desc:   "The harmattan breeze brings relief from the usual Lagos heat. Everyone seems a bit more human today.",
		joy:    10, stress: -10,
	},
	{
		name:   "Found Money",
		desc:   "You find a crumpled note on the ground. Two thousand naira. Small mercies.",
		joy:    6, stress: -3, money: 2000,
	},
	{
		name:   "Generator Works",
		desc:   "For once, NEPA cooperates and your generator stays off all day. Fuel saved, stress avoided.",
		joy:    8, stress: -6, money: 4000,
	},
	{
		name:   "Encouragement",
		desc:   "An old friend messages you out of nowhere with words of encouragement. You feel less alone.",
		joy:    14, stress: -6,
	},
}

var badEvents = []randomEvent{
	{
		name:   "Price Increase",
		desc:   "Your regular lunch spot has raised prices again. The vendor shrugs apologetically.",
		joy:    -5, stress: 10, money: -3000,
	},
	{
		name:   "Tech Problems",
		desc:   "Your phone screen cracks. Not badly, but enough to be annoying.",
		joy:    -8, stress: 12,
	},
	{
		name:   "Extra Work",
		desc:   "Your boss drops another task on your desk. \"I need this by end of day.\" No room for negotiation.",
		joy:    -6, stress: 15,
	},
	{
		name:   "Headache",
		desc:   "A splitting headache develops. The noise of Lagos feels twice as loud.",
		joy:    -10, stress: 8, fullness: -5, money: -2000,
	},
	{
		name:   "Lost Item",
		desc:   "You can't find your earphones anywhere. It's a small thing, but it stings.",
		joy:    -6, stress: 5,
	},
	{
		name:   "Traffic Jam",
		desc:   "An unexpected go-slow delays everything. You sit in traffic, watching time drain away.",
		joy:    -7, stress: 12, fullness: -5, money: -1500,
	},
	{
		name:   "Bank Charges",
		desc:   "Your bank has deducted mysterious \"maintenance fees.\" Again.",
		joy:    -5, stress: 8, money: -3500,
	},
}

// triggerRandomEvent rolls good against bad, picks an entry, and applies its
// deltas. The good-event odds come from the player's class, knocked down when
// stress is high or joy is low, clamped to a valid probability.
func (s *Session) triggerRandomEvent() {
	goodChance := balance.Class(s.p.Class.String()).GoodEventChance
	if s.p.Stress > 65 {
		goodChance -= 0.08
	}
	if s.p.Joy < 35 {
		goodChance -= 0.08
	}
	goodChance = math.Max(0, math.Min(1, goodChance))

	table := badEvents
	if s.rng.Float64() < goodChance {
		table = goodEvents
	}
	ev := table[s.rng.IntN(len(table))]

	s.updateStat(StatJoy, ev.joy)
	s.updateStat(StatStress, ev.stress)
	s.updateStat(StatFullness, ev.fullness)
	if ev.money > 0 {
		s.receivePay(ev.money)
	} else {
		s.updateStat(StatMoney, ev.money)
	}

	s.logEvent("event", ev.name)
	s.narrate(fmt.Sprintf("%s: %s", ev.name, ev.desc), false)
}

// inflateEconomy raises every price on the session's food menu, capped at 18%
// per call. Only the session copy is touched.
func (s *Session) inflateEconomy(percent float64) {
	actual := math.Min(percent, 18)
	for i := range s.foods {
		s.foods[i].Cost = int(math.Round(float64(s.foods[i].Cost) * (1 + actual/100)))
	}
	s.logEvent("economy", fmt.Sprintf("prices rose %.0f%%", actual))
	s.narrate(fmt.Sprintf("Economic update: prices have risen by approximately %.0f%%. "+
		"Your naira stretches a little less today.", actual), false)
}

// triggerFamilyEmergency runs the Wednesday scripted beat: a call from home,
// a severity roll, a community support check, and either the upper-class
// auto-resolution or a three-way money choice that interrupts the day.
func (s *Session) triggerFamilyEmergency() {
	s.p.HasFamilyEmergency = true
	s.narrate("Your phone rings. It's home. The voice on the other end is worried.", true)

	severity := s.rng.Float64()
	var desc string
	var needed float64
	switch {
	case severity < 0.4:
		desc = "A family member needs money for medication. Nothing too serious, but it can't wait."
		needed = 25000
	case severity < 0.8:
		desc = "There's been an accident. Nothing life-threatening, but hospital bills are adding up."
		needed = 60000
	default:
		desc = "A family member has been hospitalized. It's serious. They need help immediately."
		needed = 120000
	}

	if s.rng.Float64() < balance.Class(s.p.Class.String()).CommunitySupport {
		s.narrate("A neighbor who heard about the situation stops by with some food and offers "+
			"to help cover part of the cost. \"We look out for each other here,\" they say.", false)
		s.updateStat(StatJoy, 10)
		needed = math.Round(needed * 0.6)
	}

	s.logEvent("family", desc)

	if s.p.Class == ClassUpper {
		s.narrate(desc+"\nFortunately, your family has savings and insurance to handle this.", false)
		s.updateStat(StatStress, 10)
		s.updateStat(StatJoy, -5)
		return
	}

	s.narrate(fmt.Sprintf("%s\nThey need ₦%.0f.", desc, needed), false)
	s.raiseInterrupt(ChoiceMenu{
		Prompt: "Family emergency",
		Choices: []Choice{
			{ID: ChooseSendFull, Label: fmt.Sprintf("Send the money (₦%.0f)", needed), Param: int(needed)},
			{ID: ChooseSendHalf, Label: fmt.Sprintf("Send what you can (₦%.0f)", math.Round(needed*0.5)), Param: int(math.Round(needed * 0.5))},
			{ID: ChooseExplain, Label: "Explain you can't afford it"},
		},
	})
}

func (s *Session) sendMoney(amount float64) {
	if !s.canAfford(amount) {
		s.narrate("You don't have enough. You'll have to find another way.", false)
		return
	}
	s.updateStat(StatMoney, -amount)
	s.updateStat(StatJoy, -5)
	s.updateStat(StatStress, 8)
	s.narrate("You transfer the money immediately. It hurts financially, but family comes first. "+
		"Always has in Lagos.", true)
	s.clearInterrupt()
}

func (s *Session) sendPartialMoney(amount float64) {
	if !s.canAfford(amount) {
		s.explainNoMoney()
		return
	}
	s.updateStat(StatMoney, -amount)
	s.updateStat(StatJoy, -10)
	s.updateStat(StatStress, 12)
	s.narrate("You send what you can. It's not enough, but it's something. "+
		"The guilt sits heavy in your chest.", true)
	s.clearInterrupt()
}

func (s *Session) explainNoMoney() {
	s.updateStat(StatJoy, -15)
	s.updateStat(StatStress, 20)
	s.narrate("You explain your situation. The silence on the other end speaks volumes. "+
		"You know they understand, but it doesn't make it easier.\n"+s.moodThought(), true)
	s.clearInterrupt()
}
