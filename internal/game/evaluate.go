// internal/game/evaluate.go
//
// Feedback evaluator: scores a guess against a secret word.
// Responsibilities:
//   - Validate that guess and secret have the same length.
//   - Score with the classic two-pass Wordle algorithm so repeated
//     letters are never over-credited.
//
// Pure functions only; no state lives in this package.

package game

// Evaluate scores guess against secret and returns one Mark per position.
//
// Pass 1:
//   - Mark exact matches as correct.
//   - Count remaining (non-correct) secret letters by letter index.
//
// Pass 2:
//   - For each non-correct guess letter: if there is remaining count for
//     that letter, mark present and decrement the count; otherwise absent.
//
// A letter therefore never receives more correct+present marks than its
// occurrence count in the secret. Returns ErrInvalidLength when the guess
// length differs from the secret length.
func Evaluate(secret, guess string) (Feedback, error) {
	if len(guess) != len(secret) {
		return nil, ErrInvalidLength
	}
	n := len(guess)
	fb := make(Feedback, n)

	// Letter frequency for the non-correct positions (a-z).
	var counts [26]int

	for i := 0; i < n; i++ {
		if guess[i] == secret[i] {
			fb[i] = MarkCorrect
		} else {
			counts[idx(secret[i])]++
		}
	}

	for i := 0; i < n; i++ {
		if fb[i] == MarkCorrect {
			continue
		}
		j := idx(guess[i])
		if j >= 0 && j < 26 && counts[j] > 0 {
			fb[i] = MarkPresent
			counts[j]--
		} else {
			fb[i] = MarkAbsent
		}
	}
	return fb, nil
}

// idx maps a lowercase ASCII letter to 0..25.
// Inputs are validated to a-z by the words package.
func idx(b byte) int { return int(b - 'a') }

// IsAlpha checks that a string consists only of lowercase a-z.
func IsAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
