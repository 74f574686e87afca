package strategy

import "github.com/dsalas/wordle-solver/internal/game"

// Entropy picks the guess that most evenly splits the remaining candidates.
// For each legal guess it partitions the candidates by the feedback the guess
// would receive against each of them, then minimizes the expected size of the
// surviving partition (sum of squared partition sizes over the pool size).
// Quadratic in the candidate pool per legal guess, so it pays off once the
// pool has already been narrowed.
type Entropy struct{}

func (Entropy) Name() string { return "entropy" }

func (Entropy) Choose(candidates, legalGuesses []string, history []game.Turn) (string, error) {
	if len(candidates) == 0 {
		return "", ErrEmptyCandidates
	}

	expected := func(guess string) float64 {
		parts := make(map[uint32]int, len(candidates))
		for _, secret := range candidates {
			fb, err := game.Evaluate(secret, guess)
			if err != nil {
				// Dictionary guarantees equal lengths; treat as a
				// non-partitioning (worst) guess if violated.
				return float64(len(candidates))
			}
			parts[fb.Key()]++
		}
		var sq int
		for _, sz := range parts {
			sq += sz * sz
		}
		return float64(sq) / float64(len(candidates))
	}

	pick := legalGuesses
	if len(pick) == 0 {
		pick = candidates
	}
	return argBest(pick, expected, func(a, b float64) bool { return a < b }), nil
}
