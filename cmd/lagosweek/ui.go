package main

import (
	"fmt"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tommyjgunn/lagosweek/internal/game"
)

const maxScrollback = 24

// uiState is the Presenter: it collects what the engine emits so the model
// can render it. Engine callbacks arrive synchronously from inside Choose.
type uiState struct {
	mu    sync.Mutex
	lines []string
	menu  game.ChoiceMenu
	snap  game.Snapshot
	notes []string
	over  *game.Result
}

func newUI() *uiState {
	return &uiState{}
}

func (u *uiState) Narrate(text string, replace bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if replace {
		u.lines = u.lines[:0]
	}
	u.lines = append(u.lines, text)
	if len(u.lines) > maxScrollback {
		u.lines = u.lines[len(u.lines)-maxScrollback:]
	}
}

func (u *uiState) OfferChoices(menu game.ChoiceMenu) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.menu = menu
}

func (u *uiState) StatChanged(stat game.Stat, applied float64) {
	u.mu.Lock()
	defer u.mu.Unlock()
	sign := "+"
	if applied < 0 {
		sign = "-"
	}
	if stat == game.StatMoney {
		u.notes = append(u.notes, fmt.Sprintf("%s %s₦%.0f", stat, sign, abs(applied)))
	} else {
		u.notes = append(u.notes, fmt.Sprintf("%s %s%.0f", stat, sign, abs(applied)))
	}
	if len(u.notes) > 6 {
		u.notes = u.notes[len(u.notes)-6:]
	}
}

func (u *uiState) Refresh(snap game.Snapshot) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.snap = snap
}

func (u *uiState) GameEnded(result game.Result) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.over = &result
	u.menu = game.ChoiceMenu{}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// --- Styles ---
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	statStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	alertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	noteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	endStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
)

type phase int

const (
	phaseName phase = iota
	phasePlay
	phaseDone
)

type model struct {
	ui     *uiState
	sess   *game.Session
	phase  phase
	name   string
	cursor int
	err    string
	w, h   int
}

func newModel(ui *uiState, sess *game.Session) model {
	return model{ui: ui, sess: sess, phase: phaseName}
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.w, m.h = msg.Width, msg.Height
		return m, nil

	case tickMsg:
		// Fire pacing beats so delayed scene continuations land.
		if _, ok := m.sess.Scheduler().Pending(); ok {
			m.sess.Scheduler().Fire()
		}
		m.ui.mu.Lock()
		over := m.ui.over != nil
		m.ui.mu.Unlock()
		if over {
			m.phase = phaseDone
		}
		return m, tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.phase {
	case phaseName:
		switch msg.Type {
		case tea.KeyEnter:
			m.phase = phasePlay
			m.sess.Begin(strings.TrimSpace(m.name))
			return m, nil
		case tea.KeyBackspace:
			if len(m.name) > 0 {
				m.name = m.name[:len(m.name)-1]
			}
		case tea.KeyRunes:
			if len(m.name) < 20 {
				m.name += string(msg.Runes)
			}
		}
		return m, nil

	case phasePlay:
		m.ui.mu.Lock()
		menu := m.ui.menu
		m.ui.mu.Unlock()
		n := len(menu.Choices)
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < n-1 {
				m.cursor++
			}
		case "enter", " ":
			if n == 0 {
				return m, nil
			}
			if m.cursor >= n {
				m.cursor = n - 1
			}
			if err := m.sess.Choose(menu.Choices[m.cursor].ID); err != nil {
				m.err = err.Error()
			} else {
				m.err = ""
				m.cursor = 0
			}
		case "q":
			return m, tea.Quit
		}
		return m, nil

	case phaseDone:
		switch msg.String() {
		case "r":
			m.sess.Reset()
			m.ui.mu.Lock()
			m.ui.over = nil
			m.ui.lines = nil
			m.ui.notes = nil
			m.ui.menu = game.ChoiceMenu{}
			m.ui.mu.Unlock()
			m.phase = phaseName
			m.name = ""
			m.cursor = 0
		case "q", "enter":
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	switch m.phase {
	case phaseName:
		b.WriteString(titleStyle.Render("One Week in Lagos") + "\n\n")
		b.WriteString("The city of dreams and struggles. Can you survive one work week?\n\n")
		b.WriteString("What's your name?\n")
		b.WriteString("> " + m.name + "▌\n\n")
		b.WriteString(noteStyle.Render("enter to continue, ctrl+c to quit"))
		return b.String()

	case phaseDone:
		m.ui.mu.Lock()
		result := m.ui.over
		m.ui.mu.Unlock()
		if result == nil {
			return "..."
		}
		if result.GameOver {
			b.WriteString(endStyle.Render("Game Over") + "\n\n")
			b.WriteString(result.Reason + "\n\n")
		} else {
			b.WriteString(endStyle.Render("Friday Night: "+result.Ending) + "\n\n")
			b.WriteString(result.EndingDesc + "\n")
			if result.DeadlineVerdict != "" {
				b.WriteString("\n" + result.DeadlineVerdict + "\n")
			}
			b.WriteString("\n")
		}
		f := result.Final
		b.WriteString(fmt.Sprintf("Joy %.0f  Fullness %.0f  Stress %.0f  ₦%d\n\n",
			f.Joy, f.Fullness, f.Stress, f.Money))
		b.WriteString(noteStyle.Render("r to play again, q to quit"))
		return b.String()
	}

	m.ui.mu.Lock()
	snap := m.ui.snap
	lines := append([]string(nil), m.ui.lines...)
	notes := strings.Join(m.ui.notes, "  ")
	menu := m.ui.menu
	m.ui.mu.Unlock()

	header := fmt.Sprintf("%s %s  |  joy %.0f  full %.0f  stress %.0f  ₦%d",
		snap.DayName, snap.TimeLabel, snap.Joy, snap.Fullness, snap.Stress, snap.Money)
	if snap.DeadlinePct >= 0 {
		header += fmt.Sprintf("  |  deadline %d%%", snap.DeadlinePct)
	}
	b.WriteString(statStyle.Render(header) + "\n")
	if notes != "" {
		b.WriteString(noteStyle.Render(notes) + "\n")
	}
	b.WriteString("\n")

	for _, line := range lines {
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")

	if menu.Prompt != "" {
		b.WriteString(titleStyle.Render(menu.Prompt) + "\n")
	}
	for i, c := range menu.Choices {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> "+c.Label) + "\n")
		} else {
			b.WriteString("  " + c.Label + "\n")
		}
	}
	if len(menu.Choices) == 0 {
		b.WriteString(noteStyle.Render("...") + "\n")
	}

	if m.err != "" {
		b.WriteString("\n" + alertStyle.Render(m.err) + "\n")
	}
	b.WriteString("\n" + noteStyle.Render("↑/↓ move, enter select, q quit"))
	return b.String()
}
