package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tommyjgunn/lagosweek/internal/game"
)

type silentPresenter struct{}

func (silentPresenter) Narrate(string, bool)           {}
func (silentPresenter) OfferChoices(game.ChoiceMenu)   {}
func (silentPresenter) StatChanged(game.Stat, float64) {}
func (silentPresenter) Refresh(game.Snapshot)          {}
func (silentPresenter) GameEnded(game.Result)          {}

func TestStatusWithoutSession(t *testing.T) {
	srv := &Server{Live: func() *game.Session { return nil }}

	rr := httptest.NewRecorder()
	srv.handleStatus(rr, httptest.NewRequest(http.MethodGet, "/api/v1/status", nil))

	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestSnapshotReflectsLiveSession(t *testing.T) {
	sess := game.New(silentPresenter{}, 7)
	sess.Begin("Watcher")
	srv := &Server{Live: func() *game.Session { return sess }}

	rr := httptest.NewRecorder()
	srv.handleSnapshot(rr, httptest.NewRequest(http.MethodGet, "/api/v1/snapshot", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var snap game.Snapshot
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &snap))
	require.Equal(t, 100.0, snap.Joy)
	require.Equal(t, "Monday", snap.DayName)
	require.Equal(t, -1, snap.DeadlinePct)
}

func TestReadOnlyRejectsWrites(t *testing.T) {
	called := false
	h := readOnly(func(w http.ResponseWriter, r *http.Request) { called = true })

	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(http.MethodPost, "/api/v1/status", nil))

	require.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	require.False(t, called)
}

func TestEventsTailsTheLog(t *testing.T) {
	sess := game.New(silentPresenter{}, 7)
	srv := &Server{Live: func() *game.Session { return sess }}

	rr := httptest.NewRecorder()
	srv.handleEvents(rr, httptest.NewRequest(http.MethodGet, "/api/v1/events?limit=5", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var events []game.LogEntry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &events))
	require.LessOrEqual(t, len(events), 5)
}

func TestRunsWithoutChronicle(t *testing.T) {
	srv := &Server{Live: func() *game.Session { return nil }}

	rr := httptest.NewRecorder()
	srv.handleRuns(rr, httptest.NewRequest(http.MethodGet, "/api/v1/runs", nil))

	require.Equal(t, http.StatusNotFound, rr.Code)
}
