// Package chronicle provides SQLite-backed history of finished runs. Only
// completed playthroughs are recorded; a week in progress is never persisted
// and cannot be resumed.
package chronicle

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Run is one finished playthrough: how it ended and what was left of the
// player.
type Run struct {
	ID              uuid.UUID `db:"id" json:"id"`
	Seed            int64     `db:"seed" json:"seed"`
	PlayerName      string    `db:"player_name" json:"player_name"`
	Job             string    `db:"job" json:"job"`
	Class           string    `db:"class" json:"class"`
	DaysSurvived    int       `db:"days_survived" json:"days_survived"`
	Ending          string    `db:"ending" json:"ending,omitempty"`
	Reason          string    `db:"reason" json:"reason,omitempty"`
	DeadlineVerdict string    `db:"deadline_verdict" json:"deadline_verdict,omitempty"`
	Joy             float64   `db:"joy" json:"joy"`
	Fullness        float64   `db:"fullness" json:"fullness"`
	Stress          float64   `db:"stress" json:"stress"`
	Money           int64     `db:"money" json:"money"`
	Resilience      int       `db:"resilience" json:"resilience"`
	FinishedAt      time.Time `db:"finished_at" json:"finished_at"`
}

// DB wraps a SQLite connection for run history.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		player_name TEXT NOT NULL,
		job TEXT NOT NULL,
		class TEXT NOT NULL,
		days_survived INTEGER NOT NULL,
		ending TEXT NOT NULL DEFAULT '',
		reason TEXT NOT NULL DEFAULT '',
		deadline_verdict TEXT NOT NULL DEFAULT '',
		joy REAL NOT NULL,
		fullness REAL NOT NULL,
		stress REAL NOT NULL,
		money INTEGER NOT NULL,
		resilience INTEGER NOT NULL,
		finished_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_finished_at ON runs(finished_at);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// RecordRun appends one finished run.
func (db *DB) RecordRun(run Run) error {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	if run.FinishedAt.IsZero() {
		run.FinishedAt = time.Now().UTC()
	}
	_, err := db.conn.NamedExec(`
		INSERT INTO runs (id, seed, player_name, job, class, days_survived,
			ending, reason, deadline_verdict, joy, fullness, stress, money,
			resilience, finished_at)
		VALUES (:id, :seed, :player_name, :job, :class, :days_survived,
			:ending, :reason, :deadline_verdict, :joy, :fullness, :stress,
			:money, :resilience, :finished_at)`, run)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// RecentRuns returns the most recently finished runs, newest first.
func (db *DB) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	var runs []Run
	err := db.conn.Select(&runs, `
		SELECT * FROM runs ORDER BY finished_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent runs: %w", err)
	}
	return runs, nil
}

// EndingCounts returns how many recorded runs landed on each ending.
func (db *DB) EndingCounts() (map[string]int, error) {
	rows, err := db.conn.Queryx(`
		SELECT ending, COUNT(*) AS n FROM runs WHERE ending != '' GROUP BY ending`)
	if err != nil {
		return nil, fmt.Errorf("ending counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var ending string
		var n int
		if err := rows.Scan(&ending, &n); err != nil {
			return nil, fmt.Errorf("ending counts: %w", err)
		}
		counts[ending] = n
	}
	return counts, rows.Err()
}
