// internal/report/report_test.go

package report

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsalas/wordle-solver/internal/constraint"
	"github.com/dsalas/wordle-solver/internal/game"
	"github.com/dsalas/wordle-solver/internal/sim"
	"github.com/dsalas/wordle-solver/internal/strategy"
)

func fb(t *testing.T, s string) game.Feedback {
	t.Helper()
	out := make(game.Feedback, len(s))
	for i, c := range s {
		switch c {
		case 'G':
			out[i] = game.MarkCorrect
		case 'Y':
			out[i] = game.MarkPresent
		case 'K':
			out[i] = game.MarkAbsent
		default:
			t.Fatalf("bad mark %q", c)
		}
	}
	return out
}

func TestFailureKind(t *testing.T) {
	assert.Equal(t, "", FailureKind(nil))
	assert.Equal(t, FailEmptyCandidates, FailureKind(strategy.ErrEmptyCandidates))
	assert.Equal(t, FailHardMode, FailureKind(constraint.ErrHardModeViolation))
	assert.Equal(t, FailInvalidLength, FailureKind(game.ErrInvalidLength))
	assert.Equal(t, FailOther, FailureKind(errors.New("disk on fire")))

	// Wrapped errors still map to their kind.
	wrapped := fmt.Errorf("turn 3: %w", constraint.ErrHardModeViolation)
	assert.Equal(t, FailHardMode, FailureKind(wrapped))
}

func TestSummarize(t *testing.T) {
	results := []*sim.Result{
		{Status: sim.StatusWon, Turns: 3},
		{Status: sim.StatusWon, Turns: 3},
		{Status: sim.StatusWon, Turns: 5},
		{Status: sim.StatusLost, Turns: 6},
		{Err: strategy.ErrEmptyCandidates},
		{Err: fmt.Errorf("guess: %w", constraint.ErrHardModeViolation)},
		nil, // slots for skipped games stay out of the totals
	}

	s := Summarize(results, 6)

	assert.Equal(t, 6, s.Games)
	assert.Equal(t, 3, s.Wins)
	assert.Equal(t, 1, s.Losses)
	assert.Equal(t, 1, s.Failures[FailEmptyCandidates])
	assert.Equal(t, 1, s.Failures[FailHardMode])
	assert.InDelta(t, 0.5, s.WinRate, 1e-9)
	assert.InDelta(t, (3+3+5)/3.0, s.AvgTurns, 1e-9)

	require.Len(t, s.Distribution, 7)
	assert.Equal(t, 2, s.Distribution[3])
	assert.Equal(t, 1, s.Distribution[5])
	assert.Equal(t, 0, s.Distribution[6])
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, 6)
	assert.Equal(t, 0, s.Games)
	assert.Zero(t, s.WinRate)
	assert.Zero(t, s.AvgTurns)
}

func TestRenderTurnContainsLetters(t *testing.T) {
	row := RenderTurn(game.Turn{Guess: "slate", Feedback: fb(t, "KKGKG")})
	for _, c := range "SLATE" {
		assert.Contains(t, row, string(c))
	}
}

func TestRenderHistoryNumbersRows(t *testing.T) {
	var buf bytes.Buffer
	RenderHistory(&buf, []game.Turn{
		{Guess: "slate", Feedback: fb(t, "KKGKG")},
		{Guess: "crane", Feedback: fb(t, "GGGGG")},
	})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "1/2")
	assert.Contains(t, lines[1], "2/2")
}

func TestRenderKeyboard(t *testing.T) {
	var buf bytes.Buffer
	RenderKeyboard(&buf, []game.Turn{
		{Guess: "slate", Feedback: fb(t, "KKGKG")},
	})
	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	// Guessed letters are uppercased inside their tiles; untouched letters
	// stay lowercase.
	assert.Contains(t, out, " A ")
	assert.Contains(t, out, " q ")
}

func TestStatsPrint(t *testing.T) {
	s := Stats{
		Games:        4,
		Wins:         2,
		Losses:       1,
		WinRate:      0.5,
		AvgTurns:     3.5,
		Distribution: []int{0, 0, 0, 1, 1, 0, 0},
		Failures:     map[string]int{FailEmptyCandidates: 1},
	}
	var buf bytes.Buffer
	s.Print(&buf)
	out := buf.String()
	assert.Contains(t, out, "win rate: 50.0%")
	assert.Contains(t, out, "average turns to solve: 3.50")
	assert.Contains(t, out, "failed (empty_candidates): 1")
}
