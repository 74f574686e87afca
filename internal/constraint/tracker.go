// internal/constraint/tracker.go
//
// Constraint tracker for hard-mode play.
// Accumulates feedback across turns into a normalized constraint set and
// answers two related but distinct questions:
//   - IsLegal:          could this word still be the secret?
//   - IsLegalNextGuess: is a strategy allowed to guess this word?
//
// State is monotonic for the lifetime of one game: fixed positions never
// change, required minimum counts never decrease, forbidden letters and
// per-position exclusions never shrink, and max-count upper bounds only
// tighten. A tracker is created empty at game start and discarded at the end.

package constraint

import (
	"errors"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/dsalas/wordle-solver/internal/game"
)

// ErrHardModeViolation is returned when a proposed guess breaks a hard-mode
// legality rule. It indicates a bug in the strategy and is fatal to the game.
var ErrHardModeViolation = errors.New("hard mode violation")

// Tracker is the accumulated constraint set for one game.
type Tracker struct {
	length     int
	fixed      []byte             // fixed[i] is the pinned letter at i, 0 if unknown
	required   map[byte]int       // letter -> minimum occurrence count
	maxCount   map[byte]int       // letter -> maximum occurrence count (over-guessed letters)
	forbidden  mapset.Set[byte]   // letters confirmed absent and not required anywhere
	excludedAt []mapset.Set[byte] // excludedAt[i]: letters known wrong at position i
}

// New constructs an empty tracker for words of the given length.
func New(length int) *Tracker {
	t := &Tracker{
		length:     length,
		fixed:      make([]byte, length),
		required:   make(map[byte]int),
		maxCount:   make(map[byte]int),
		forbidden:  mapset.NewThreadUnsafeSet[byte](),
		excludedAt: make([]mapset.Set[byte], length),
	}
	for i := range t.excludedAt {
		t.excludedAt[i] = mapset.NewThreadUnsafeSet[byte]()
	}
	return t
}

// Length returns the fixed word length this tracker was built for.
func (t *Tracker) Length() int { return t.length }

// Absorb folds one turn's feedback into the constraint set.
//
// Count reconciliation: for each letter, the number of correct+present marks
// in this guess raises required[letter] to at least that count. A letter with
// one or more absent marks in the same guess is added to forbidden only when
// its reconciled required count is zero; otherwise the absent mark means "the
// secret has no more than required[letter] of this letter", which is recorded
// as a max-count upper bound rather than a flat exclusion. That distinction
// is what keeps repeated-letter guesses from incorrectly eliminating
// otherwise-valid candidates.
func (t *Tracker) Absorb(guess string, fb game.Feedback) error {
	if len(guess) != t.length || len(fb) != t.length {
		return game.ErrInvalidLength
	}

	var total, hits [26]int
	var sawAbsent [26]bool

	for i := 0; i < t.length; i++ {
		c := guess[i]
		total[c-'a']++
		switch fb[i] {
		case game.MarkCorrect:
			hits[c-'a']++
			if t.fixed[i] == 0 {
				t.fixed[i] = c
			}
		case game.MarkPresent:
			hits[c-'a']++
			t.excludedAt[i].Add(c)
		default:
			// An absent mark still pins "not this letter here".
			sawAbsent[c-'a'] = true
			t.excludedAt[i].Add(c)
		}
	}

	for j := 0; j < 26; j++ {
		if total[j] == 0 {
			continue
		}
		c := byte('a' + j)
		if hits[j] > t.required[c] {
			t.required[c] = hits[j]
		}
		if !sawAbsent[j] {
			continue
		}
		if t.required[c] == 0 {
			t.forbidden.Add(c)
			continue
		}
		// Over-guessed: the secret holds exactly the reconciled count,
		// so cap the letter rather than forbid it.
		if cur, ok := t.maxCount[c]; !ok || hits[j] < cur {
			t.maxCount[c] = hits[j]
		}
	}
	return nil
}

// IsLegal reports whether word is still consistent with every accumulated
// constraint, i.e. whether it could be the secret. Used by the candidate
// filter.
func (t *Tracker) IsLegal(word string) bool {
	if len(word) != t.length {
		return false
	}
	var counts [26]int
	for i := 0; i < t.length; i++ {
		c := word[i]
		if t.fixed[i] != 0 && t.fixed[i] != c {
			return false
		}
		if t.excludedAt[i].Contains(c) {
			return false
		}
		counts[c-'a']++
	}
	for c, min := range t.required {
		if counts[c-'a'] < min {
			return false
		}
	}
	for c, max := range t.maxCount {
		if counts[c-'a'] > max {
			return false
		}
	}
	for j := 0; j < 26; j++ {
		if counts[j] > 0 && t.forbidden.Contains(byte('a'+j)) {
			return false
		}
	}
	return true
}

// CheckGuess enforces hard-mode guess legality, which is stricter in intent
// than candidate legality: a next guess must keep every fixed position, must
// include every required letter at least its minimum count, must never
// re-guess a forbidden letter at any position, and must respect max-count
// bounds and per-position exclusions. Returns nil or an error wrapping
// ErrHardModeViolation naming the first rule broken.
func (t *Tracker) CheckGuess(word string) error {
	if len(word) != t.length {
		return game.ErrInvalidLength
	}
	var counts [26]int
	for i := 0; i < t.length; i++ {
		counts[word[i]-'a']++
	}
	for i := 0; i < t.length; i++ {
		c := word[i]
		if t.fixed[i] != 0 && t.fixed[i] != c {
			return fmt.Errorf("%w: position %d must be %q", ErrHardModeViolation, i+1, string(t.fixed[i]))
		}
		if t.forbidden.Contains(c) {
			return fmt.Errorf("%w: letter %q cannot be used", ErrHardModeViolation, string(c))
		}
		if t.excludedAt[i].Contains(c) {
			return fmt.Errorf("%w: letter %q cannot be at position %d", ErrHardModeViolation, string(c), i+1)
		}
	}
	for c, min := range t.required {
		if counts[c-'a'] < min {
			return fmt.Errorf("%w: must use %q at least %d times", ErrHardModeViolation, string(c), min)
		}
	}
	for c, max := range t.maxCount {
		if counts[c-'a'] > max {
			return fmt.Errorf("%w: must use %q at most %d times", ErrHardModeViolation, string(c), max)
		}
	}
	return nil
}

// IsLegalNextGuess reports whether a strategy may guess word under hard mode.
func (t *Tracker) IsLegalNextGuess(word string) bool {
	return t.CheckGuess(word) == nil
}
