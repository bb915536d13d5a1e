package balance

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassTableComplete(t *testing.T) {
	for _, name := range []string{"working", "middle", "upper"} {
		m := Class(name)
		require.Greater(t, m.EventChance, 0.0, name)
		require.Greater(t, m.GoodEventChance, 0.0, name)
		require.Greater(t, m.IncomeMultiplier, 0.0, name)
		require.Greater(t, m.CostMultiplier, 0.0, name)
		require.Greater(t, m.CommunitySupport, 0.0, name)
		require.Greater(t, m.StressFromWork, 0.0, name)
		require.Greater(t, m.JoyFromLeisure, 0.0, name)
		require.Greater(t, m.StartingMoney, 0.0, name)
	}

	// Costs climb with class; community support falls.
	require.Less(t, Class("working").CostMultiplier, Class("middle").CostMultiplier)
	require.Less(t, Class("middle").CostMultiplier, Class("upper").CostMultiplier)
	require.Greater(t, Class("working").CommunitySupport, Class("upper").CommunitySupport)
}

func TestClassUnknownPanics(t *testing.T) {
	require.Panics(t, func() { Class("aristocrat") })
}

func TestDecayTableComplete(t *testing.T) {
	for _, kind := range []string{"idle", "work", "physical", "sleep"} {
		d := Decay(kind)
		require.Greater(t, d.FullnessCost, 0.0, kind)
	}
	require.Less(t, Decay("sleep").StressDelta, 0.0, "sleep relieves stress")
	require.Greater(t, Decay("work").StressDelta, 0.0, "work builds stress")
	require.Greater(t, Decay("physical").JoyDelta, 0.0, "exertion lifts joy")
}

func TestDecayUnknownPanics(t *testing.T) {
	require.Panics(t, func() { Decay("commute") })
}

func TestFoodTableSane(t *testing.T) {
	foods := Foods()
	require.NotEmpty(t, foods)
	for _, f := range foods {
		require.NotEmpty(t, f.Name)
		require.Greater(t, f.Cost, 0, f.Name)
		require.Greater(t, f.FullnessBoost, 0.0, f.Name)
		require.Contains(t, []string{"roadside", "restaurant", "all"}, f.Venue, f.Name)
		require.GreaterOrEqual(t, f.SickChance, 0.0, f.Name)
		require.Less(t, f.SickChance, 0.5, f.Name)
	}
}

func TestFoodsReturnsACopy(t *testing.T) {
	first := Foods()
	orig := first[0].Cost
	first[0].Cost = 1

	require.Equal(t, orig, Foods()[0].Cost, "callers must not reach the embedded table")
}
