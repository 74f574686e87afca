package strategy

import "github.com/dsalas/wordle-solver/internal/game"

// Frequency is the greedy letter-frequency policy: rank guesses by how common
// their letters are among the remaining candidates, both at the exact
// position (inplace) and anywhere in the word (across), then take the
// highest-scoring legal guess. Repeated letters in a guess earn their across
// component only once, so "geese" is not rewarded for three e's.
type Frequency struct{}

func (Frequency) Name() string { return "frequency" }

func (Frequency) Choose(candidates, legalGuesses []string, history []game.Turn) (string, error) {
	if len(candidates) == 0 {
		return "", ErrEmptyCandidates
	}
	n := len(candidates[0])

	// Letter counts over the remaining candidate pool.
	perPos := make([][26]int, n)
	var across [26]int
	for _, w := range candidates {
		for i := 0; i < n; i++ {
			j := int(w[i] - 'a')
			perPos[i][j]++
			across[j]++
		}
	}

	score := func(w string) int {
		var s int
		var seen [26]bool
		for i := 0; i < n && i < len(w); i++ {
			j := int(w[i] - 'a')
			s += perPos[i][j]
			if !seen[j] {
				s += across[j]
				seen[j] = true
			}
		}
		return s
	}

	pick := legalGuesses
	if len(pick) == 0 {
		pick = candidates
	}
	return argBest(pick, score, func(a, b int) bool { return a > b }), nil
}
