// Package api provides the HTTP API for watching a session. All endpoints
// are GET and read-only; spectators can observe, never steer.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/tommyjgunn/lagosweek/internal/chronicle"
	"github.com/tommyjgunn/lagosweek/internal/game"
)

// Server serves a live session over HTTP. Live is called per request so the
// driver can swap sessions between runs.
type Server struct {
	Live      func() *game.Session
	Chronicle *chronicle.DB // optional; enables /api/v1/runs
	Port      int
}

// Start registers the routes and begins serving in the background.
func (s *Server) Start() {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/status", readOnly(s.handleStatus))
	mux.HandleFunc("/api/v1/snapshot", readOnly(s.handleSnapshot))
	mux.HandleFunc("/api/v1/events", readOnly(s.handleEvents))
	mux.HandleFunc("/api/v1/runs", readOnly(s.handleRuns))

	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("HTTP API starting", "addr", addr)

	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

func readOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		next(w, r)
	}
}

func (s *Server) session(w http.ResponseWriter) *game.Session {
	sess := s.Live()
	if sess == nil {
		http.Error(w, "no session", http.StatusServiceUnavailable)
	}
	return sess
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w)
	if sess == nil {
		return
	}
	p := sess.Player()
	snap := sess.Snapshot()

	writeJSON(w, map[string]any{
		"session_id":  sess.ID,
		"seed":        sess.Seed(),
		"player":      p.PlayerName,
		"job":         p.Job.Title(),
		"class":       p.Class.String(),
		"location":    p.Location,
		"day":         snap.DayName,
		"time":        snap.TimeLabel,
		"game_over":   p.IsGameOver,
		"joy":         snap.Joy,
		"fullness":    snap.Fullness,
		"stress":      snap.Stress,
		"money":       snap.Money,
		"deadline":    snap.DeadlinePct,
		"resilience":  snap.Resilience,
	})
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w)
	if sess == nil {
		return
	}
	writeJSON(w, sess.Snapshot())
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	sess := s.session(w)
	if sess == nil {
		return
	}
	events := sess.Events()
	start := 0
	if len(events) > limit {
		start = len(events) - limit
	}
	writeJSON(w, events[start:])
}

func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	if s.Chronicle == nil {
		http.Error(w, "run history disabled", http.StatusNotFound)
		return
	}
	limit := 20
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}
	runs, err := s.Chronicle.RecentRuns(limit)
	if err != nil {
		slog.Error("recent runs", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, runs)
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(data)
}
