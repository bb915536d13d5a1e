// Command autoweek plays full weeks headlessly with a simple survival policy,
// records finished runs to the chronicle, and optionally serves the spectator
// API while it plays.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/tommyjgunn/lagosweek/internal/api"
	"github.com/tommyjgunn/lagosweek/internal/chronicle"
	"github.com/tommyjgunn/lagosweek/internal/game"
)

func main() {
	var (
		seed    = flag.Int64("seed", time.Now().UnixNano(), "base seed; run i plays with seed+i")
		runs    = flag.Int("runs", 1, "number of weeks to play")
		name    = flag.String("name", "Autoweek", "player name")
		job     = flag.String("job", "programmer", "job: marketer, programmer, designer, artist")
		dbPath  = flag.String("db", "data/lagosweek.db", "chronicle database path (empty to disable)")
		port    = flag.Int("port", 0, "spectator API port (0 to disable)")
		pace    = flag.Duration("pace", 0, "delay between choices, for spectators")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	var db *chronicle.DB
	if *dbPath != "" {
		os.MkdirAll("data", 0755)
		var err error
		db, err = chronicle.Open(*dbPath)
		if err != nil {
			slog.Error("failed to open chronicle", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		slog.Info("chronicle opened", "path", *dbPath)
	}

	var holder sessionHolder
	if *port > 0 {
		srv := &api.Server{Live: holder.get, Chronicle: db, Port: *port}
		srv.Start()
	}

	jobChoice, ok := jobChoices[*job]
	if !ok {
		slog.Error("unknown job", "job", *job)
		os.Exit(1)
	}

	for i := 0; i < *runs; i++ {
		runSeed := *seed + int64(i)
		bot := newBot(*pace)
		sess := game.New(bot, runSeed)
		holder.set(sess)

		slog.Info("starting week", "run", i+1, "seed", runSeed)
		result := bot.play(sess, *name, jobChoice)

		if result.GameOver {
			slog.Info("week ended early", "reason", result.Reason, "day", result.Final.DayName)
		} else {
			slog.Info("week complete",
				"ending", result.Ending,
				"deadline", result.DeadlineVerdict,
				"joy", fmt.Sprintf("%.0f", result.Final.Joy),
				"stress", fmt.Sprintf("%.0f", result.Final.Stress),
				"money", result.Final.Money,
			)
		}

		if db != nil {
			p := sess.Player()
			run := chronicle.Run{
				Seed:            runSeed,
				PlayerName:      p.PlayerName,
				Job:             p.Job.String(),
				Class:           p.Class.String(),
				DaysSurvived:    min(result.Final.Day, 5),
				Ending:          result.Ending,
				Reason:          result.Reason,
				DeadlineVerdict: result.DeadlineVerdict,
				Joy:             result.Final.Joy,
				Fullness:        result.Final.Fullness,
				Stress:          result.Final.Stress,
				Money:           int64(result.Final.Money),
				Resilience:      result.Final.Resilience,
			}
			if err := db.RecordRun(run); err != nil {
				slog.Error("failed to record run", "error", err)
			}
		}
	}

	if db != nil {
		if counts, err := db.EndingCounts(); err == nil {
			for ending, n := range counts {
				slog.Info("ending tally", "ending", ending, "count", n)
			}
		}
	}
}

var jobChoices = map[string]game.ChoiceID{
	"marketer":   game.ChooseJobMarketer,
	"programmer": game.ChooseJobProgrammer,
	"designer":   game.ChooseJobDesigner,
	"artist":     game.ChooseJobArtist,
}

// sessionHolder hands the current session to the API server across runs.
type sessionHolder struct {
	mu   sync.Mutex
	sess *game.Session
}

func (h *sessionHolder) set(s *game.Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sess = s
}

func (h *sessionHolder) get() *game.Session {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.sess
}
