// internal/sim/sim.go
//
// Single-game simulator. Drives one game of hard-mode Wordle:
//   - NotStarted -> InProgress -> {Won, Lost}
//   - each turn: strategy proposes, evaluator scores, tracker absorbs,
//     history appends.
//
// A strategy that proposes a guess outside the allowed dictionary or one
// breaking hard-mode legality aborts the game with ErrHardModeViolation; the
// simulator never silently retries, since that indicates a strategy bug.

package sim

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/dsalas/wordle-solver/internal/constraint"
	"github.com/dsalas/wordle-solver/internal/game"
	"github.com/dsalas/wordle-solver/internal/pool"
	"github.com/dsalas/wordle-solver/internal/strategy"
	"github.com/dsalas/wordle-solver/internal/words"
)

// DefaultMaxTurns is the standard Wordle turn limit.
const DefaultMaxTurns = 6

// Status is the game state machine value.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
)

// Result is the final report for one simulated game. On a failed game
// (strategy bug, dictionary mismatch) Err carries the reason and History
// holds the turns completed before the abort.
type Result struct {
	ID       string
	Secret   string
	Strategy string
	Status   Status
	Turns    int
	History  []game.Turn
	Err      error
}

// Game holds the private per-game state: tracker, candidate pool, history.
// Nothing is shared between games, so many games may run concurrently over
// the same read-only word lists.
type Game struct {
	ID       string
	Secret   string
	MaxTurns int
	Status   Status
	History  []game.Turn

	lists   *words.Lists
	tracker *constraint.Tracker
	cands   *pool.Pool
}

// New prepares a game for the given secret. The secret must match the
// dictionary word length.
func New(secret string, lists *words.Lists, maxTurns int) (*Game, error) {
	secret = strings.ToLower(strings.TrimSpace(secret))
	if len(secret) != lists.Length || !game.IsAlpha(secret) {
		return nil, fmt.Errorf("secret %q: %w", secret, game.ErrInvalidLength)
	}
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}
	return &Game{
		ID:       randomID(),
		Secret:   secret,
		MaxTurns: maxTurns,
		Status:   StatusNotStarted,
		lists:    lists,
		tracker:  constraint.New(lists.Length),
		cands:    pool.New(lists.Answers),
	}, nil
}

// Play runs the game to completion with the given strategy and returns the
// final result. The returned error, if any, is also recorded in Result.Err
// and matches one of the sentinel kinds (ErrInvalidLength,
// ErrEmptyCandidates, ErrHardModeViolation) under errors.Is.
func (g *Game) Play(strat strategy.Strategy) (*Result, error) {
	g.Status = StatusInProgress

	for len(g.History) < g.MaxTurns {
		candidates := g.cands.Filter(g.tracker)
		if len(candidates) == 0 {
			return g.fail(strat, fmt.Errorf("after %d turns: %w", len(g.History), strategy.ErrEmptyCandidates))
		}
		legal := legalGuesses(g.lists.Allowed, g.tracker)

		guess, err := strat.Choose(candidates, legal, g.History)
		if err != nil {
			return g.fail(strat, err)
		}
		if !g.lists.IsAllowed(guess) {
			return g.fail(strat, fmt.Errorf("%w: %q is not in the allowed list", constraint.ErrHardModeViolation, guess))
		}
		if err := g.tracker.CheckGuess(guess); err != nil {
			return g.fail(strat, fmt.Errorf("guess %q: %w", guess, err))
		}

		fb, err := game.Evaluate(g.Secret, guess)
		if err != nil {
			return g.fail(strat, err)
		}
		if err := g.tracker.Absorb(guess, fb); err != nil {
			return g.fail(strat, err)
		}
		g.History = append(g.History, game.Turn{Guess: guess, Feedback: fb})

		if fb.AllCorrect() {
			g.Status = StatusWon
			return g.result(strat, nil), nil
		}
	}

	g.Status = StatusLost
	return g.result(strat, nil), nil
}

// Tracker exposes the accumulated constraints, mainly for interactive play
// and inspection.
func (g *Game) Tracker() *constraint.Tracker { return g.tracker }

// Candidates returns the words still consistent with all feedback.
func (g *Game) Candidates() []string { return g.cands.Filter(g.tracker) }

func (g *Game) fail(strat strategy.Strategy, err error) (*Result, error) {
	return g.result(strat, err), err
}

func (g *Game) result(strat strategy.Strategy, err error) *Result {
	return &Result{
		ID:       g.ID,
		Secret:   g.Secret,
		Strategy: strat.Name(),
		Status:   g.Status,
		Turns:    len(g.History),
		History:  g.History,
		Err:      err,
	}
}

// legalGuesses narrows the allowed dictionary to hard-mode-legal next
// guesses, preserving order.
func legalGuesses(allowed []string, t *constraint.Tracker) []string {
	out := make([]string, 0, len(allowed))
	for _, w := range allowed {
		if t.IsLegalNextGuess(w) {
			out = append(out, w)
		}
	}
	return out
}

// randomID returns a compact 16-hex-char identifier for correlating results.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
