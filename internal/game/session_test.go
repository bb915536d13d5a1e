package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBeginOffersTheFourJobs(t *testing.T) {
	s, _ := newTestSession(t, 1)
	s.Begin("Ade")

	menu := s.Menu()
	require.Len(t, menu.Choices, 4)
	for _, id := range []ChoiceID{ChooseJobMarketer, ChooseJobProgrammer, ChooseJobDesigner, ChooseJobArtist} {
		_, ok := menu.Get(id)
		require.True(t, ok, "job %s missing from creation menu", id)
	}
}

func TestBeginDefaultsEmptyName(t *testing.T) {
	s, _ := newTestSession(t, 1)
	s.Begin("")
	require.Equal(t, "Lagosian", s.Player().PlayerName)
}

func TestChooseRejectsChoiceNotOnMenu(t *testing.T) {
	s, _ := newTestSession(t, 1)
	s.Begin("Ade")
	before := s.Player()

	err := s.Choose(ChooseSleep)

	require.ErrorIs(t, err, ErrInvalidChoice)
	require.Equal(t, before, s.Player(), "rejected choice must not touch state")
	require.Len(t, s.Menu().Choices, 4, "menu must stay on offer")
}

func TestChooseRejectedAfterGameOver(t *testing.T) {
	s, _ := newTestSession(t, 1)
	s.Begin("Ade")
	s.p.IsGameOver = true

	require.ErrorIs(t, s.Choose(ChooseJobArtist), ErrGameOver)
}

func TestCreationAssignsCharacter(t *testing.T) {
	s, _ := newTestSession(t, 3)
	createCharacter(t, s, ChooseJobArtist)

	p := s.Player()
	require.Equal(t, JobArtist, p.Job)
	require.Contains(t, []int{23, 28, 33}, p.Age)
	require.Greater(t, p.Money, 0.0)
	require.NotEmpty(t, p.Location.Name)
	require.NotEmpty(t, p.Location.Area)
	require.NotEmpty(t, p.CompanyName)
	require.Equal(t, startingResilience, p.ResiliencePoints)

	// Creation lands on Monday morning.
	require.Equal(t, 0, p.Day)
	_, ok := s.Menu().Get(ChoosePrepare)
	require.True(t, ok)
}

func TestCreationIsDeterministicPerSeed(t *testing.T) {
	a, _ := newTestSession(t, 42)
	b, _ := newTestSession(t, 42)
	createCharacter(t, a, ChooseJobProgrammer)
	createCharacter(t, b, ChooseJobProgrammer)

	require.Equal(t, a.Player(), b.Player())
}

func TestResetRestoresFreshState(t *testing.T) {
	s, _ := newTestSession(t, 5)
	createCharacter(t, s, ChooseJobMarketer)

	s.Reset()

	p := s.Player()
	require.Empty(t, p.PlayerName)
	require.Equal(t, 100.0, p.Joy)
	require.Equal(t, 100.0, p.Fullness)
	require.Equal(t, 0.0, p.Stress)
	require.Empty(t, s.Menu().Choices)
	require.Empty(t, s.Events())
}
