package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIgnoreSicknessMayPersist(t *testing.T) {
	cases := []struct {
		name string
		roll float64
		want SicknessType
	}{
		{"it lingers", 0.3, SickFood},
		{"it passes", 0.7, SickNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newTestSession(t, 1)
			createCharacter(t, s, ChooseJobDesigner)
			s.p.Sickness = SickFood
			s.p.Joy = 60
			s.p.Stress = 30
			script(s, tc.roll)

			s.ignoreSickness()

			require.Equal(t, tc.want, s.p.Sickness)
			require.InDelta(t, 50, s.p.Joy, 1e-9)
			require.InDelta(t, 50, s.p.Stress, 1e-9)
			_, ok := s.Menu().Get(ChoosePrepare)
			require.True(t, ok, "the day goes on either way")
		})
	}
}

func TestBuyMedicineNeedsTheMoney(t *testing.T) {
	s, _ := newTestSession(t, 1)
	createCharacter(t, s, ChooseJobDesigner)
	s.p.Sickness = SickFood
	s.p.Money = 0

	s.buyMedicine(8000)

	require.Equal(t, SickFood, s.p.Sickness, "no money, no medicine")
	require.Equal(t, 0.0, s.p.Money)
}

func TestBuyMedicineClearsSickness(t *testing.T) {
	s, _ := newTestSession(t, 1)
	createCharacter(t, s, ChooseJobDesigner)
	s.p.Sickness = SickFood
	s.p.Money = 20000
	s.p.Stress = 30

	s.buyMedicine(8000)

	require.Equal(t, SickNone, s.p.Sickness)
	require.Equal(t, 12000.0, s.p.Money)
	require.InDelta(t, 35, s.p.Stress, 1e-9)
	_, ok := s.Menu().Get(ChoosePrepare)
	require.True(t, ok)
}

func TestRestAtHomeLosesTheDay(t *testing.T) {
	s, _ := newTestSession(t, 1)
	createCharacter(t, s, ChooseJobDesigner)
	s.p.Sickness = SickFood
	s.p.Joy = 60
	s.p.Stress = 50
	s.p.Fullness = 80
	script(s, 0.99) // quiet afternoon

	s.restAtHome()

	require.Equal(t, SickNone, s.p.Sickness)
	require.Equal(t, 1, s.p.Day, "the whole day is gone")
	require.Equal(t, 0.0, s.p.TimeSlot)
	_, ok := s.Menu().Get(ChoosePrepare)
	require.True(t, ok)
}
