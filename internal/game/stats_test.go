package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUpdateStatClampsAndReportsApplied(t *testing.T) {
	s, rec := newTestSession(t, 1)
	s.p.Joy = 90

	got := s.updateStat(StatJoy, 50)

	require.Equal(t, 100.0, got)
	require.Len(t, rec.stats, 1)
	require.Equal(t, StatJoy, rec.stats[0].stat)
	require.Equal(t, 10.0, rec.stats[0].applied, "applied delta, not requested delta")
}

func TestUpdateStatFloorsAtZero(t *testing.T) {
	s, _ := newTestSession(t, 1)
	s.p.Stress = 3

	require.Equal(t, 0.0, s.updateStat(StatStress, -40))
}

func TestUpdateStatMoneyDebtFloor(t *testing.T) {
	s, _ := newTestSession(t, 1)
	s.p.Money = 0

	require.Equal(t, float64(moneyFloor), s.updateStat(StatMoney, -1e9))
}

func TestUpdateStatSmallDeltaNotReported(t *testing.T) {
	s, rec := newTestSession(t, 1)
	s.p.Joy = 50

	s.updateStat(StatJoy, 0.3)

	require.Empty(t, rec.stats)
	require.InDelta(t, 50.3, s.p.Joy, 1e-9)
}

func TestInteractHungerFeedsStress(t *testing.T) {
	s, _ := newTestSession(t, 1)
	s.p.Joy = 50
	s.p.Fullness = 10
	s.p.Stress = 0

	s.interact()

	// severity = (25-10)/25 = 0.6
	require.InDelta(t, 0.9, s.p.Stress, 1e-9)
	require.InDelta(t, 50-0.72, s.p.Joy, 1e-9)
	require.False(t, s.p.IsGameOver)
}

func TestInteractHighJoyBleedsStress(t *testing.T) {
	s, _ := newTestSession(t, 1)
	s.p.Joy = 85
	s.p.Fullness = 80
	s.p.Stress = 30

	s.interact()

	require.InDelta(t, 29.8, s.p.Stress, 1e-9)
}

func TestModifyCostScalesByClass(t *testing.T) {
	s, _ := newTestSession(t, 1)

	require.Equal(t, 1000.0, s.modifyCost(1000), "nominal before creation")

	s.p.created = true
	s.p.Class = ClassUpper
	require.Equal(t, 1500.0, s.modifyCost(1000))

	s.p.Class = ClassWorking
	require.Equal(t, 850.0, s.modifyCost(1000))
}

func TestReceivePayScalesByClass(t *testing.T) {
	s, _ := newTestSession(t, 1)
	s.p.created = true
	s.p.Class = ClassWorking
	s.p.Money = 0

	got := s.receivePay(1000)

	require.Equal(t, 750.0, got)
	require.Equal(t, 750.0, s.p.Money)
}
