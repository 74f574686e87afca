package strategy

import (
	"math/rand"

	"github.com/dsalas/wordle-solver/internal/game"
)

// Random samples uniformly from the surviving candidates. Candidates are
// possible secrets, so every one of them also satisfies hard-mode legality.
type Random struct {
	rng *rand.Rand
}

// NewRandom builds a Random strategy with its own seeded source, so parallel
// games never contend on a shared generator.
func NewRandom(seed int64) Random {
	return Random{rng: rand.New(rand.NewSource(seed))}
}

func (Random) Name() string { return "random" }

func (r Random) Choose(candidates, legalGuesses []string, history []game.Turn) (string, error) {
	if len(candidates) == 0 {
		return "", ErrEmptyCandidates
	}
	return candidates[r.rng.Intn(len(candidates))], nil
}
