// internal/words/words.go
//
// Word list management for the simulator.
//
// Responsibilities:
//   - Load the answer pool (valid secrets) and the allowed pool (valid
//     guesses, always a superset of the answers) from files or fall back to
//     the embedded defaults in assets/.
//   - Normalize to lowercase and keep only alphabetic words of the
//     configured length.
//   - Supply lookups (IsAllowed, IsAnswer), RandomAnswer, and Stats.
//
// Resolution order for each list: explicit path argument, then the
// WORDS_ANSWERS_FILE / WORDS_ALLOWED_FILE environment variables, then the
// embedded defaults. If only an allowed list is available it doubles as the
// answer pool. Lists are loaded once per process and never mutated.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"math/big"
	"os"
	"strings"

	"github.com/dsalas/wordle-solver/assets"
	"github.com/dsalas/wordle-solver/internal/game"
)

// DefaultLength is the classic Wordle word length.
const DefaultLength = 5

// Lists holds the two read-only word pools for a process.
type Lists struct {
	Length  int
	Answers []string // canonical secrets, file order
	Allowed []string // answers followed by extra guess words, deduplicated

	allowedSet map[string]struct{}
	answersSet map[string]struct{}
}

// Load builds the word lists for the given length. Empty paths fall back to
// the environment and then to the embedded defaults.
func Load(answersPath, allowedPath string, length int) (*Lists, error) {
	if length <= 0 {
		length = DefaultLength
	}
	if answersPath == "" {
		answersPath = os.Getenv("WORDS_ANSWERS_FILE")
	}
	if allowedPath == "" {
		allowedPath = os.Getenv("WORDS_ALLOWED_FILE")
	}

	var ansList, allowList []string
	var err error

	switch {
	case answersPath != "" && allowedPath != "":
		if ansList, err = readWordFile(answersPath, length); err != nil {
			return nil, err
		}
		if allowList, err = readWordFile(allowedPath, length); err != nil {
			return nil, err
		}

	case answersPath == "" && allowedPath != "":
		if allowList, err = readWordFile(allowedPath, length); err != nil {
			return nil, err
		}
		ansList = allowList

	case answersPath != "" && allowedPath == "":
		if ansList, err = readWordFile(answersPath, length); err != nil {
			return nil, err
		}

	default:
		raw, err := assets.AnswersList()
		if err != nil {
			return nil, err
		}
		ansList = keep(raw, length)
		if raw, err = assets.AllowedList(); err == nil {
			allowList = keep(raw, length)
		}
	}

	return build(ansList, allowList, length)
}

// FromSlices builds lists directly from word slices; used by tests and by
// callers that manage their own dictionaries.
func FromSlices(answers, allowed []string, length int) (*Lists, error) {
	return build(keep(answers, length), keep(allowed, length), length)
}

func build(ansList, allowList []string, length int) (*Lists, error) {
	if len(ansList) == 0 {
		return nil, errors.New("words: answers list is empty")
	}
	ansList = dedup(ansList)
	l := &Lists{
		Length:     length,
		Answers:    ansList,
		answersSet: toSet(ansList),
		allowedSet: toSet(ansList),
	}
	// Allowed keeps answers first so candidate order and guess order agree.
	l.Allowed = append([]string{}, ansList...)
	for _, w := range allowList {
		if _, dup := l.allowedSet[w]; dup {
			continue
		}
		l.allowedSet[w] = struct{}{}
		l.Allowed = append(l.Allowed, w)
	}
	return l, nil
}

// readWordFile loads one word per line, lowercases, trims, and keeps only
// alphabetic words of the wanted length.
func readWordFile(path string, length int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if len(w) == length && game.IsAlpha(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// keep filters a slice down to valid lowercase words of the wanted length.
func keep(list []string, length int) []string {
	var out []string
	for _, w := range list {
		w = strings.TrimSpace(strings.ToLower(w))
		if len(w) == length && game.IsAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

// dedup drops repeated words, keeping first occurrence order.
func dedup(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, w := range list {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// RandomAnswer returns a cryptographically random word from the answer pool.
func (l *Lists) RandomAnswer() string {
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(l.Answers))))
	return l.Answers[nBig.Int64()]
}

// IsAllowed reports whether w is a valid guess (answers ∪ guesses).
func (l *Lists) IsAllowed(w string) bool {
	_, ok := l.allowedSet[strings.ToLower(w)]
	return ok
}

// IsAnswer reports whether w is in the answer pool.
func (l *Lists) IsAnswer(w string) bool {
	_, ok := l.answersSet[strings.ToLower(w)]
	return ok
}

// Stats returns counts of loaded words: (answers, allowed).
func (l *Lists) Stats() (answersCount, allowedCount int) {
	return len(l.Answers), len(l.Allowed)
}
