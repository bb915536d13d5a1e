package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSchedulerHoldsOneBeat(t *testing.T) {
	var sched Scheduler
	var fired []int

	first := sched.Schedule(time.Second, func() { fired = append(fired, 1) })
	second := sched.Schedule(2*time.Second, func() { fired = append(fired, 2) })
	require.Greater(t, second, first)

	delay, ok := sched.Pending()
	require.True(t, ok)
	require.Equal(t, 2*time.Second, delay)

	sched.Fire()
	require.Equal(t, []int{2}, fired, "only the latest beat survives")

	_, ok = sched.Pending()
	require.False(t, ok)
	sched.Fire() // firing with nothing pending is a no-op
	require.Equal(t, []int{2}, fired)
}

func TestSchedulerCancel(t *testing.T) {
	var sched Scheduler
	sched.Schedule(time.Second, func() { t.Fatal("cancelled beat fired") })
	sched.Cancel()

	_, ok := sched.Pending()
	require.False(t, ok)
	sched.Fire()
}

func TestCheckPhoneSchedulesTheGetReadyBeat(t *testing.T) {
	s, _ := newTestSession(t, 1)
	createCharacter(t, s, ChooseJobProgrammer)
	script(s, 0.0, 0.9, 0.99) // headline pick, good-news roll, event suppression

	require.NoError(t, s.Choose(ChoosePhone))

	require.Empty(t, s.Menu().Choices, "the menu clears while the moment lands")
	delay, ok := s.Scheduler().Pending()
	require.True(t, ok)
	require.Equal(t, 800*time.Millisecond, delay)

	s.Scheduler().Fire()

	_, ok = s.Menu().Get(ChooseBus)
	require.True(t, ok, "the continuation moves on to the commute")
}

func TestResetDropsPendingContinuation(t *testing.T) {
	s, _ := newTestSession(t, 1)
	createCharacter(t, s, ChooseJobProgrammer)
	script(s, 0.0, 0.9)
	require.NoError(t, s.Choose(ChoosePhone))

	s.Reset()

	_, ok := s.Scheduler().Pending()
	require.False(t, ok)
	s.Scheduler().Fire()
	require.Empty(t, s.Menu().Choices)
	require.Empty(t, s.Player().PlayerName)
}
