package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tommyjgunn/lagosweek/internal/balance"
)

func TestInflationCappedAtEighteenPercent(t *testing.T) {
	s, _ := newTestSession(t, 1)
	createCharacter(t, s, ChooseJobMarketer)
	before := append([]balance.FoodItem(nil), s.foods...)

	s.inflateEconomy(40)

	for i := range s.foods {
		want := int(math.Round(float64(before[i].Cost) * 1.18))
		require.Equal(t, want, s.foods[i].Cost, "food %s", s.foods[i].Name)
	}

	// The embedded table is never touched; only the session copy inflates.
	fresh := balance.Foods()
	for i := range fresh {
		require.Equal(t, before[i].Cost, fresh[i].Cost)
	}
}

func TestInflationCompounds(t *testing.T) {
	s, _ := newTestSession(t, 1)
	createCharacter(t, s, ChooseJobMarketer)
	first := s.foods[0].Cost

	s.inflateEconomy(12)
	afterOne := s.foods[0].Cost
	s.inflateEconomy(15)

	require.Equal(t, int(math.Round(float64(first)*1.12)), afterOne)
	require.Equal(t, int(math.Round(float64(afterOne)*1.15)), s.foods[0].Cost)
}

func TestRandomEventAppliesDeltas(t *testing.T) {
	s, _ := newTestSession(t, 1)
	createCharacter(t, s, ChooseJobProgrammer)
	s.p.Class = ClassMiddle
	s.p.Joy = 50
	s.p.Stress = 20
	script(s, 0.0, 0.0) // good table, first entry

	s.triggerRandomEvent()

	require.InDelta(t, 58, s.p.Joy, 1e-9)
	require.InDelta(t, 15, s.p.Stress, 1e-9)

	events := s.Events()
	require.NotEmpty(t, events)
	require.Equal(t, "event", events[len(events)-1].Category)
	require.Equal(t, "Acts of Kindness", events[len(events)-1].Text)
}

func TestRandomEventOddsDegradeUnderStrain(t *testing.T) {
	s, _ := newTestSession(t, 1)
	createCharacter(t, s, ChooseJobProgrammer)
	s.p.Class = ClassMiddle
	s.p.Joy = 20
	s.p.Stress = 70
	// Middle-class good odds 0.45 drop to 0.29 under high stress and low joy;
	// a 0.30 roll now lands on the bad table.
	script(s, 0.30, 0.0)

	s.triggerRandomEvent()

	events := s.Events()
	require.Equal(t, "Price Increase", events[len(events)-1].Text)
}

func TestFamilyEmergencyUpperClassAutoResolves(t *testing.T) {
	s, _ := newTestSession(t, 1)
	createCharacter(t, s, ChooseJobDesigner)
	s.p.Class = ClassUpper
	s.p.Joy = 60
	s.p.Stress = 20
	menuBefore := s.Menu()
	script(s, 0.9, 0.99) // severe, no community support

	s.triggerFamilyEmergency()

	require.True(t, s.p.HasFamilyEmergency)
	require.False(t, s.interrupt, "no money choice for the insured")
	require.InDelta(t, 30, s.p.Stress, 1e-9)
	require.InDelta(t, 55, s.p.Joy, 1e-9)
	require.Equal(t, menuBefore, s.Menu(), "menu stays untouched")
}

func TestFamilyEmergencyOffersScaledSums(t *testing.T) {
	s, _ := newTestSession(t, 1)
	createCharacter(t, s, ChooseJobDesigner)
	s.p.Class = ClassMiddle
	script(s, 0.5, 0.99) // moderate severity, no community support

	s.triggerFamilyEmergency()

	require.True(t, s.interrupt)
	menu := s.Menu()
	full, ok := menu.Get(ChooseSendFull)
	require.True(t, ok)
	require.Equal(t, 60000, full.Param)
	half, ok := menu.Get(ChooseSendHalf)
	require.True(t, ok)
	require.Equal(t, 30000, half.Param)
	_, ok = menu.Get(ChooseExplain)
	require.True(t, ok)
}

func TestCommunitySupportSoftensTheAsk(t *testing.T) {
	s, _ := newTestSession(t, 1)
	createCharacter(t, s, ChooseJobDesigner)
	s.p.Class = ClassWorking
	s.p.Joy = 50
	script(s, 0.5, 0.0) // moderate severity, support roll succeeds

	s.triggerFamilyEmergency()

	full, ok := s.Menu().Get(ChooseSendFull)
	require.True(t, ok)
	require.Equal(t, 36000, full.Param, "60000 reduced by the community share")
	require.InDelta(t, 60, s.p.Joy, 1e-9)
}

func TestInterruptParksAndRestoresMenu(t *testing.T) {
	s, _ := newTestSession(t, 1)
	createCharacter(t, s, ChooseJobDesigner)
	s.p.Class = ClassMiddle
	s.p.Money = 100000
	script(s, 0.5, 0.99)

	s.triggerFamilyEmergency()
	require.True(t, s.interrupt)

	// A handler finishing mid-interrupt gets its menu parked, not shown.
	parked := ChoiceMenu{Prompt: "parked", Choices: []Choice{{ID: ChoosePrepare, Label: "x"}}}
	s.offer(parked)
	_, stillFamily := s.Menu().Get(ChooseSendFull)
	require.True(t, stillFamily)

	s.sendPartialMoney(30000)

	require.False(t, s.interrupt)
	require.Equal(t, 70000.0, s.p.Money)
	require.Equal(t, "parked", s.Menu().Prompt, "the parked menu comes back")
}

func TestSendPartialFallsToExplainWhenBroke(t *testing.T) {
	s, _ := newTestSession(t, 1)
	createCharacter(t, s, ChooseJobDesigner)
	s.p.Class = ClassMiddle
	s.p.Money = 1000
	s.p.Joy = 60
	s.p.Stress = 20
	script(s, 0.5, 0.99)

	s.triggerFamilyEmergency()
	s.sendPartialMoney(30000)

	require.Equal(t, 1000.0, s.p.Money, "no partial payment without the funds")
	require.InDelta(t, 45, s.p.Joy, 1e-9)
	require.InDelta(t, 40, s.p.Stress, 1e-9)
	require.False(t, s.interrupt)
	// Nothing was parked, so the morning menu is the fallback.
	_, ok := s.Menu().Get(ChoosePrepare)
	require.True(t, ok)
}
