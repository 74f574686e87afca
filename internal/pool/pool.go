// internal/pool/pool.go
//
// Candidate pool: the working set of words still consistent with the
// accumulated constraints. Backed by an alive-bitmask over the original
// dictionary indices so that elimination is monotonic by construction and
// dictionary order is preserved; a word cleared once can never come back.

package pool

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/dsalas/wordle-solver/internal/constraint"
)

// Pool owns the surviving candidates for one game.
type Pool struct {
	words []string       // the full dictionary, never mutated
	alive *bitset.BitSet // indices of words not yet eliminated
}

// New starts a pool containing every word of the dictionary.
func New(words []string) *Pool {
	alive := bitset.New(uint(len(words)))
	for i := range words {
		alive.Set(uint(i))
	}
	return &Pool{words: words, alive: alive}
}

// Filter clears every surviving word that the tracker no longer considers
// legal and returns the survivors in dictionary order. Linear in the current
// pool size; calling it twice with the same tracker returns the same set.
func (p *Pool) Filter(t *constraint.Tracker) []string {
	for i, ok := p.alive.NextSet(0); ok; i, ok = p.alive.NextSet(i + 1) {
		if !t.IsLegal(p.words[i]) {
			p.alive.Clear(i)
		}
	}
	return p.Words()
}

// Words returns the surviving candidates in dictionary order.
func (p *Pool) Words() []string {
	out := make([]string, 0, p.alive.Count())
	for i, ok := p.alive.NextSet(0); ok; i, ok = p.alive.NextSet(i + 1) {
		out = append(out, p.words[i])
	}
	return out
}

// Len reports the number of surviving candidates.
func (p *Pool) Len() int { return int(p.alive.Count()) }

// Filter is the stateless form used when no pool is kept between calls:
// it returns the subsequence of words for which t.IsLegal holds, preserving
// input order and leaving words untouched.
func Filter(words []string, t *constraint.Tracker) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if t.IsLegal(w) {
			out = append(out, w)
		}
	}
	return out
}
