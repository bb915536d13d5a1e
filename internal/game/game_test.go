package game

import (
	"testing"

	"github.com/tommyjgunn/lagosweek/internal/entropy"
)

// recorder is a Presenter that captures everything the engine emits.
type recorder struct {
	narrations []string
	menus      []ChoiceMenu
	stats      []statNote
	snaps      []Snapshot
	result     *Result
}

type statNote struct {
	stat    Stat
	applied float64
}

func (r *recorder) Narrate(text string, replace bool) {
	r.narrations = append(r.narrations, text)
}

func (r *recorder) OfferChoices(menu ChoiceMenu) {
	r.menus = append(r.menus, menu)
}

func (r *recorder) StatChanged(stat Stat, applied float64) {
	r.stats = append(r.stats, statNote{stat, applied})
}

func (r *recorder) Refresh(snap Snapshot) {
	r.snaps = append(r.snaps, snap)
}

func (r *recorder) GameEnded(result Result) {
	r.result = &result
}

func newTestSession(t *testing.T, seed int64) (*Session, *recorder) {
	t.Helper()
	rec := &recorder{}
	return New(rec, seed), rec
}

// createCharacter runs creation so the session sits on the Monday morning menu.
func createCharacter(t *testing.T, s *Session, job ChoiceID) {
	t.Helper()
	s.Begin("Test")
	if err := s.Choose(job); err != nil {
		t.Fatalf("choose job: %v", err)
	}
	if err := s.Choose(ChooseBeginWeek); err != nil {
		t.Fatalf("begin week: %v", err)
	}
}

// script replaces the session's randomness with a fixed roll sequence.
func script(s *Session, rolls ...float64) {
	s.rng = entropy.NewScript(rolls...)
}
