package chronicle

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleRun(name string, finished time.Time) Run {
	return Run{
		Seed:         42,
		PlayerName:   name,
		Job:          "programmer",
		Class:        "middle",
		DaysSurvived: 5,
		Ending:       "Balance",
		Joy:          65,
		Fullness:     50,
		Stress:       40,
		Money:        12000,
		Resilience:   1,
		FinishedAt:   finished,
	}
}

func TestRecordAndRecallRuns(t *testing.T) {
	db := newTestDB(t)
	base := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

	require.NoError(t, db.RecordRun(sampleRun("first", base)))
	require.NoError(t, db.RecordRun(sampleRun("second", base.Add(time.Hour))))

	runs, err := db.RecentRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	require.Equal(t, "second", runs[0].PlayerName, "newest first")
	require.Equal(t, "first", runs[1].PlayerName)

	got := runs[1]
	require.Equal(t, int64(42), got.Seed)
	require.Equal(t, "programmer", got.Job)
	require.Equal(t, "middle", got.Class)
	require.Equal(t, 5, got.DaysSurvived)
	require.Equal(t, "Balance", got.Ending)
	require.Equal(t, 65.0, got.Joy)
	require.Equal(t, int64(12000), got.Money)
	require.Equal(t, 1, got.Resilience)
	require.WithinDuration(t, base, got.FinishedAt, time.Second)
	require.NotEqual(t, got.ID, runs[0].ID, "ids are assigned per run")
}

func TestRecentRunsRespectsLimit(t *testing.T) {
	db := newTestDB(t)
	base := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, db.RecordRun(sampleRun("p", base.Add(time.Duration(i)*time.Minute))))
	}

	runs, err := db.RecentRuns(2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
}

func TestEndingCountsSkipGameOvers(t *testing.T) {
	db := newTestDB(t)
	base := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

	balanced := sampleRun("a", base)
	require.NoError(t, db.RecordRun(balanced))
	require.NoError(t, db.RecordRun(sampleRun("b", base.Add(time.Minute))))

	survived := sampleRun("c", base.Add(2*time.Minute))
	survived.Ending = "Survival"
	require.NoError(t, db.RecordRun(survived))

	crashed := sampleRun("d", base.Add(3*time.Minute))
	crashed.Ending = ""
	crashed.Reason = "collapsed from stress"
	crashed.DaysSurvived = 2
	require.NoError(t, db.RecordRun(crashed))

	counts, err := db.EndingCounts()
	require.NoError(t, err)
	require.Equal(t, map[string]int{"Balance": 2, "Survival": 1}, counts)
}
