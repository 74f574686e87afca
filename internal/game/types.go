// internal/game/types.go
//
// Core type definitions for the feedback evaluator.
// Defines:
//   - Mark: per-letter result of a guess (correct/present/absent).
//   - Feedback: ordered marks for one guess, one per position.
//   - Turn: one (guess, feedback) pair of the append-only guess history.

package game

import "errors"

// ErrInvalidLength is returned when a guess does not match the secret's
// length. It is a precondition failure and is never recovered silently.
var ErrInvalidLength = errors.New("guess/secret length mismatch")

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter matches the secret at this position.
//   - "present": letter exists in the secret but at a different position.
//   - "absent":  letter does not appear (further) in the secret.
type Mark string

const (
	MarkCorrect Mark = "correct"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// Feedback is the ordered per-position marks produced for one guess.
// Immutable once produced.
type Feedback []Mark

// Turn records one guess and the feedback it received.
type Turn struct {
	Guess    string   // the guessed word (lowercase)
	Feedback Feedback // marks, one per letter
}

// AllCorrect reports whether every mark is MarkCorrect (a winning guess).
func (f Feedback) AllCorrect() bool {
	for _, m := range f {
		if m != MarkCorrect {
			return false
		}
	}
	return len(f) > 0
}

// Key packs the feedback into a base-3 code (absent=0, present=1, correct=2).
// Two guesses produce the same key iff they produce the same per-position
// marks, which makes Key usable for partitioning candidate pools by outcome.
func (f Feedback) Key() uint32 {
	var k uint32
	for _, m := range f {
		k *= 3
		switch m {
		case MarkPresent:
			k++
		case MarkCorrect:
			k += 2
		}
	}
	return k
}

// String renders the feedback as one letter per position:
// 'G' correct, 'Y' present, 'K' absent.
func (f Feedback) String() string {
	b := make([]byte, len(f))
	for i, m := range f {
		switch m {
		case MarkCorrect:
			b[i] = 'G'
		case MarkPresent:
			b[i] = 'Y'
		default:
			b[i] = 'K'
		}
	}
	return string(b)
}
