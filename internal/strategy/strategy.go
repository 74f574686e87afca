// internal/strategy/strategy.go
//
// Strategy: the policy that picks the next guess. One capability, several
// implementations; the simulator never branches on strategy names, it only
// calls Choose. Every variant must return a word drawn from legalGuesses
// (already filtered for hard-mode legality by the caller).

package strategy

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/dsalas/wordle-solver/internal/game"
)

// ErrEmptyCandidates is returned when the constraint set has eliminated every
// candidate. That is always a bug (inconsistent constraints or a dictionary
// that does not contain the secret), never a normal runtime condition, so it
// is surfaced rather than recovered.
var ErrEmptyCandidates = errors.New("no candidates remain")

// Strategy selects the next guess.
//
// candidates is the non-empty set of words still consistent with all feedback
// (possible secrets, in dictionary order). legalGuesses is the allowed guess
// dictionary filtered for hard-mode legality; it is a superset of candidates.
// history holds every (guess, feedback) pair so far.
type Strategy interface {
	Name() string
	Choose(candidates, legalGuesses []string, history []game.Turn) (string, error)
}

// ForName builds the named strategy. seed feeds the random variant so runs
// can be reproduced.
func ForName(name string, seed int64) (Strategy, error) {
	switch name {
	case "random":
		return NewRandom(seed), nil
	case "frequency":
		return Frequency{}, nil
	case "entropy":
		return Entropy{}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}

// Names lists the selectable strategies.
func Names() []string { return []string{"random", "frequency", "entropy"} }

// argBest returns the word with the best score under better, breaking ties
// by lexicographic order of the word for determinism.
func argBest[K constraints.Ordered](words []string, key func(string) K, better func(a, b K) bool) string {
	best := words[0]
	bestKey := key(best)
	for _, w := range words[1:] {
		k := key(w)
		if better(k, bestKey) || (k == bestKey && w < best) {
			best, bestKey = w, k
		}
	}
	return best
}
