package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResilienceAbsorbsCollapses(t *testing.T) {
	s, rec := newTestSession(t, 1)
	createCharacter(t, s, ChooseJobArtist)
	require.Equal(t, 2, s.p.ResiliencePoints)

	s.p.Joy = 0
	s.checkGameOver()
	require.False(t, s.p.IsGameOver)
	require.Equal(t, 10.0, s.p.Joy, "joy rebounds to 10")
	require.Equal(t, 1, s.p.ResiliencePoints)

	s.p.Stress = 100
	s.checkGameOver()
	require.False(t, s.p.IsGameOver)
	require.Equal(t, 85.0, s.p.Stress, "stress pulls back to 85")
	require.Equal(t, 0, s.p.ResiliencePoints)

	s.p.Joy = 0
	s.checkGameOver()
	require.True(t, s.p.IsGameOver)
	require.NotNil(t, rec.result)
	require.True(t, rec.result.GameOver)
	require.NotEmpty(t, rec.result.Reason)
}

func TestStarvationPenaltyAndCollapse(t *testing.T) {
	s, _ := newTestSession(t, 1)
	createCharacter(t, s, ChooseJobMarketer)
	s.p.Fullness = 0
	s.p.Stress = 50
	s.p.Joy = 60

	s.checkGameOver()

	require.False(t, s.p.IsGameOver)
	require.InDelta(t, 52.5, s.p.Stress, 1e-9)
	require.InDelta(t, 57.0, s.p.Joy, 1e-9)

	s.p.Stress = 95
	s.checkGameOver()
	require.True(t, s.p.IsGameOver, "starving under extreme stress is terminal")
}

func TestGameOverCancelsPendingBeat(t *testing.T) {
	s, _ := newTestSession(t, 1)
	createCharacter(t, s, ChooseJobDesigner)
	s.sched.Schedule(100, func() { t.Fatal("continuation fired after game over") })

	s.gameOver("test collapse")

	_, pending := s.sched.Pending()
	require.False(t, pending)
	s.sched.Fire()
}

func TestFinishWeekEndings(t *testing.T) {
	cases := []struct {
		name     string
		joy      float64
		fullness float64
		stress   float64
	}{
		{"Barely Surviving", 15, 50, 30},
		{"On the Edge", 60, 50, 80},
		{"Survival", 35, 50, 30},
		{"Balance", 65, 50, 40},
		{"Thriving", 55, 60, 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, rec := newTestSession(t, 1)
			s.p.Joy = tc.joy
			s.p.Fullness = tc.fullness
			s.p.Stress = tc.stress

			s.finishWeek()

			require.NotNil(t, rec.result)
			require.False(t, rec.result.GameOver)
			require.Equal(t, tc.name, rec.result.Ending)
			require.NotEmpty(t, rec.result.EndingDesc)
			require.True(t, s.p.IsGameOver, "a finished week accepts no more choices")
		})
	}
}

func TestFinishWeekDeadlineVerdicts(t *testing.T) {
	cases := []struct {
		name     string
		progress float64
		want     string
	}{
		{"met", 100, "completed the impossible deadline"},
		{"close", 80, "substantial progress"},
		{"missed", 30, "deadline wasn't met"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, rec := newTestSession(t, 1)
			s.p.Joy = 65
			s.p.Fullness = 60
			s.p.Stress = 40
			s.p.Deadline = 100
			s.p.DeadlineProgress = tc.progress

			s.finishWeek()

			require.NotNil(t, rec.result)
			require.Contains(t, rec.result.DeadlineVerdict, tc.want)
		})
	}
}

func TestFinishWeekWithoutDeadlineHasNoVerdict(t *testing.T) {
	s, rec := newTestSession(t, 1)
	s.p.Joy = 65
	s.p.Fullness = 60
	s.p.Stress = 40

	s.finishWeek()

	require.NotNil(t, rec.result)
	require.Empty(t, rec.result.DeadlineVerdict)
}
