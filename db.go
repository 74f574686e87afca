// db.go
//
// SQLite persistence for assessment runs.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying the embedded schema (idempotent).
//   - Inserting one run row plus one row per game, and reading back the
//     stored turn distribution.

package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/dsalas/wordle-solver/internal/report"
	"github.com/dsalas/wordle-solver/internal/sim"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id          TEXT PRIMARY KEY,
    strategy    TEXT NOT NULL,
    max_turns   INTEGER NOT NULL,
    games       INTEGER NOT NULL,
    wins        INTEGER NOT NULL,
    started_at  TEXT NOT NULL,
    finished_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS games (
    id         TEXT PRIMARY KEY,
    run_id     TEXT NOT NULL REFERENCES runs(id),
    secret     TEXT NOT NULL,
    status     TEXT NOT NULL,
    turns      INTEGER NOT NULL,
    failure    TEXT,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_games_run ON games(run_id);
`

// openDB opens (and creates if missing) a SQLite database file, ensuring the
// parent directory exists for relative paths like ./data/runs.db.
func openDB(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// migrate applies the embedded schema. Statements are idempotent, so the
// whole script re-runs safely on every start.
func migrate(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// persistRun writes a completed assessment run and its per-game rows, then
// logs the stored turn distribution read back from the database.
func persistRun(ctx context.Context, dsn, strategyName string, maxTurns int, startedAt time.Time, results []*sim.Result, stats report.Stats) error {
	db, err := openDB(dsn)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := migrate(db); err != nil {
		return err
	}

	runID := uuid.NewString()
	now := time.Now().UTC().Format(time.RFC3339)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `INSERT INTO runs (id, strategy, max_turns, games, wins, started_at, finished_at)
	                                  VALUES (?,?,?,?,?,?,?)`,
		runID, strategyName, maxTurns, stats.Games, stats.Wins,
		startedAt.Format(time.RFC3339), now); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, r := range results {
		if r == nil {
			continue
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO games (id, run_id, secret, status, turns, failure, created_at)
		                                  VALUES (?,?,?,?,?,?,?)`,
			r.ID, runID, r.Secret, string(r.Status), r.Turns,
			report.FailureKind(r.Err), now); err != nil {
			return fmt.Errorf("insert game %s: %w", r.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run: %w", err)
	}

	dist, err := runDistribution(ctx, db, runID)
	if err != nil {
		log.Warn().Err(err).Str("runId", runID).Msg("read back distribution")
	} else {
		log.Info().Str("runId", runID).Ints("distribution", dist).Msg("run persisted")
	}
	return nil
}

// runDistribution reads the stored wins-per-turn-count for a run.
// dist[n] holds the number of games won in n turns.
func runDistribution(ctx context.Context, db *sql.DB, runID string) ([]int, error) {
	rows, err := db.QueryContext(ctx, `
        SELECT turns, COUNT(1)
        FROM games
        WHERE run_id=? AND status='won'
        GROUP BY turns
        ORDER BY turns`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dist []int
	for rows.Next() {
		var turns, n int
		if err := rows.Scan(&turns, &n); err != nil {
			return nil, err
		}
		for len(dist) <= turns {
			dist = append(dist, 0)
		}
		dist[turns] = n
	}
	return dist, rows.Err()
}
