// Command lagosweek is the interactive terminal frontend: one simulated work
// week in Lagos, rendered with bubbletea.
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tommyjgunn/lagosweek/internal/game"
)

func main() {
	var (
		seed    = flag.Int64("seed", time.Now().UnixNano(), "session seed")
		verbose = flag.Bool("v", false, "debug logging to lagosweek.log")
	)
	flag.Parse()

	// The TUI owns stdout; logs go to a file or nowhere.
	if *verbose {
		f, err := os.OpenFile("lagosweek.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err == nil {
			defer f.Close()
			slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
		}
	} else {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))
	}

	ui := newUI()
	sess := game.New(ui, *seed)

	p := tea.NewProgram(newModel(ui, sess), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("tui error", "error", err)
		os.Exit(1)
	}
}
