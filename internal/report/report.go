// internal/report/report.go
//
// Reporting collaborator: renders per-game guess rows as colored tiles plus a
// keyboard status block, and aggregates batch statistics (win rate, average
// turns, turn distribution, failure counts by kind).

package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mitchellh/colorstring"

	"github.com/dsalas/wordle-solver/internal/constraint"
	"github.com/dsalas/wordle-solver/internal/game"
	"github.com/dsalas/wordle-solver/internal/sim"
	"github.com/dsalas/wordle-solver/internal/strategy"
)

// keyboard rows, rendered with each letter's best-known status.
var keyboardRows = []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}

// tile wraps a single letter in the background color for its mark.
func tile(letter byte, m game.Mark) string {
	body := fmt.Sprintf(" %c ", letter-'a'+'A')
	switch m {
	case game.MarkCorrect:
		return colorstring.Color("[_green_][black]" + body + "[reset]")
	case game.MarkPresent:
		return colorstring.Color("[_yellow_][black]" + body + "[reset]")
	default:
		return colorstring.Color("[_black_][white]" + body + "[reset]")
	}
}

// RenderTurn renders one guess row as colored tiles.
func RenderTurn(t game.Turn) string {
	var b strings.Builder
	for i := 0; i < len(t.Guess); i++ {
		b.WriteString(tile(t.Guess[i], t.Feedback[i]))
	}
	return b.String()
}

// RenderHistory renders every guess row so far, one per line.
func RenderHistory(w io.Writer, history []game.Turn) {
	for i, t := range history {
		fmt.Fprintf(w, "  %d/%d  %s\n", i+1, len(history), RenderTurn(t))
	}
}

// markRank orders marks so a letter's best-known status wins on the keyboard.
func markRank(m game.Mark) int {
	switch m {
	case game.MarkCorrect:
		return 3
	case game.MarkPresent:
		return 2
	case game.MarkAbsent:
		return 1
	}
	return 0
}

// RenderKeyboard prints a qwerty block with each guessed letter colored by
// its best outcome so far; untouched letters stay plain.
func RenderKeyboard(w io.Writer, history []game.Turn) {
	best := make(map[byte]game.Mark)
	for _, t := range history {
		for i := 0; i < len(t.Guess); i++ {
			c := t.Guess[i]
			if markRank(t.Feedback[i]) > markRank(best[c]) {
				best[c] = t.Feedback[i]
			}
		}
	}
	for i, row := range keyboardRows {
		fmt.Fprint(w, strings.Repeat(" ", i+2))
		for j := 0; j < len(row); j++ {
			if m, ok := best[row[j]]; ok {
				fmt.Fprint(w, tile(row[j], m))
			} else {
				fmt.Fprintf(w, " %c ", row[j])
			}
		}
		fmt.Fprintln(w)
	}
}

// Failure kind labels, stable for aggregation and persistence.
const (
	FailEmptyCandidates = "empty_candidates"
	FailHardMode        = "hard_mode_violation"
	FailInvalidLength   = "invalid_length"
	FailOther           = "error"
)

// FailureKind maps a game error to its taxonomy label, or "" for none.
func FailureKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, strategy.ErrEmptyCandidates):
		return FailEmptyCandidates
	case errors.Is(err, constraint.ErrHardModeViolation):
		return FailHardMode
	case errors.Is(err, game.ErrInvalidLength):
		return FailInvalidLength
	default:
		return FailOther
	}
}

// Stats aggregates a batch of game results.
type Stats struct {
	Games        int
	Wins         int
	Losses       int
	Failures     map[string]int // keyed by failure kind
	WinRate      float64
	AvgTurns     float64 // average turns to solve, over wins only
	Distribution []int   // Distribution[n] = games won in n turns; index 0 unused
}

// Summarize folds per-game results into batch statistics.
func Summarize(results []*sim.Result, maxTurns int) Stats {
	s := Stats{
		Failures:     make(map[string]int),
		Distribution: make([]int, maxTurns+1),
	}
	var turnSum int
	for _, r := range results {
		if r == nil {
			continue
		}
		s.Games++
		switch {
		case r.Err != nil:
			s.Failures[FailureKind(r.Err)]++
		case r.Status == sim.StatusWon:
			s.Wins++
			turnSum += r.Turns
			if r.Turns >= 1 && r.Turns < len(s.Distribution) {
				s.Distribution[r.Turns]++
			}
		default:
			s.Losses++
		}
	}
	if s.Games > 0 {
		s.WinRate = float64(s.Wins) / float64(s.Games)
	}
	if s.Wins > 0 {
		s.AvgTurns = float64(turnSum) / float64(s.Wins)
	}
	return s
}

// Print writes a human-readable batch summary with a turn histogram.
func (s Stats) Print(w io.Writer) {
	fmt.Fprintf(w, "games: %d  wins: %d  losses: %d  win rate: %.1f%%\n",
		s.Games, s.Wins, s.Losses, 100*s.WinRate)
	if s.Wins > 0 {
		fmt.Fprintf(w, "average turns to solve: %.2f\n", s.AvgTurns)
	}
	for turns := 1; turns < len(s.Distribution); turns++ {
		n := s.Distribution[turns]
		bar := ""
		if s.Wins > 0 {
			bar = strings.Repeat("#", n*40/s.Wins)
		}
		fmt.Fprintf(w, "  %d: %4d %s\n", turns, n, bar)
	}
	for kind, n := range s.Failures {
		fmt.Fprintf(w, "failed (%s): %d\n", kind, n)
	}
}
