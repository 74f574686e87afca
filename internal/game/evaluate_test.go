package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fb(s string) Feedback {
	out := make(Feedback, len(s))
	for i, c := range s {
		switch c {
		case 'G':
			out[i] = MarkCorrect
		case 'Y':
			out[i] = MarkPresent
		default:
			out[i] = MarkAbsent
		}
	}
	return out
}

func TestEvaluateSelfIsAllCorrect(t *testing.T) {
	for _, w := range []string{"crane", "speed", "llama", "aa"} {
		got, err := Evaluate(w, w)
		assert.NoError(t, err)
		assert.True(t, got.AllCorrect(), "evaluate(%q, %q)", w, w)
	}
}

func TestEvaluateLengthMismatch(t *testing.T) {
	_, err := Evaluate("crane", "cranes")
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestEvaluateDuplicateLetters(t *testing.T) {
	cases := []struct {
		secret, guess, want string
	}{
		// Two e-marks at most: the secret has two e's.
		{"speed", "erase", "YKKYY"},
		// Two l-marks (one correct, one present), third a scores absent.
		{"allow", "llama", "YGYKK"},
		// Single e in the secret: only the exact match scores.
		{"crane", "geese", "KKKKG"},
		{"crane", "slate", "KKGKG"},
		{"crane", "crane", "GGGGG"},
	}
	for _, c := range cases {
		got, err := Evaluate(c.secret, c.guess)
		assert.NoError(t, err)
		assert.Equal(t, fb(c.want), got, "evaluate(%q, %q)", c.secret, c.guess)
	}
}

func TestEvaluateNeverOverCredits(t *testing.T) {
	// The guess repeats a letter more often than the secret holds it; the
	// correct+present marks for that letter must not exceed the secret count.
	got, err := Evaluate("allow", "llama")
	assert.NoError(t, err)

	marks := 0
	for i := 0; i < len("llama"); i++ {
		if "llama"[i] == 'l' && got[i] != MarkAbsent {
			marks++
		}
	}
	assert.Equal(t, 2, marks, "l-marks must equal the secret's l count")

	aMarks := 0
	for i := 0; i < len("llama"); i++ {
		if "llama"[i] == 'a' && got[i] != MarkAbsent {
			aMarks++
		}
	}
	assert.Equal(t, 1, aMarks, "a-marks must equal the secret's a count")
}

func TestFeedbackKey(t *testing.T) {
	assert.Equal(t, uint32(0), fb("KKKKK").Key())
	assert.Equal(t, uint32(2*81+1*27+0+2*3+1), fb("GYKGY").Key())

	a, _ := Evaluate("crane", "slate")
	b, _ := Evaluate("brake", "slate")
	// Same marks, same key.
	assert.Equal(t, a.String(), b.String())
	assert.Equal(t, a.Key(), b.Key())
}

func TestFeedbackString(t *testing.T) {
	got, _ := Evaluate("allow", "llama")
	assert.Equal(t, "YGYKK", got.String())
	assert.False(t, Feedback{}.AllCorrect())
}
