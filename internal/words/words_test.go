package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSlicesNormalizesAndFilters(t *testing.T) {
	l, err := FromSlices(
		[]string{" CRANE ", "brake", "x", "toolong", "sl4te"},
		[]string{"slate", "crane"}, // crane duplicates an answer
		5)
	require.NoError(t, err)

	assert.Equal(t, []string{"crane", "brake"}, l.Answers)
	assert.Equal(t, []string{"crane", "brake", "slate"}, l.Allowed, "answers first, extras deduplicated")
	assert.True(t, l.IsAllowed("SLATE"), "lookups are case-insensitive")
	assert.True(t, l.IsAnswer("crane"))
	assert.False(t, l.IsAnswer("slate"))
}

func TestFromSlicesEmptyAnswers(t *testing.T) {
	_, err := FromSlices(nil, []string{"crane"}, 5)
	assert.Error(t, err)
}

func TestLoadEmbeddedDefaults(t *testing.T) {
	t.Setenv("WORDS_ANSWERS_FILE", "")
	t.Setenv("WORDS_ALLOWED_FILE", "")

	l, err := Load("", "", DefaultLength)
	require.NoError(t, err)

	a, g := l.Stats()
	assert.Greater(t, a, 0)
	assert.GreaterOrEqual(t, g, a, "allowed is a superset of answers")
	for _, w := range []string{"crane", "slate", "allow", "llama", "speed", "erase"} {
		assert.True(t, l.IsAnswer(w), "%q should be in the embedded answers", w)
	}
	assert.True(t, l.IsAllowed("adieu"), "embedded extras are valid guesses")
	assert.False(t, l.IsAnswer("adieu"))
}

func TestLoadFromFiles(t *testing.T) {
	dir := t.TempDir()
	answers := filepath.Join(dir, "answers.txt")
	allowed := filepath.Join(dir, "allowed.txt")
	require.NoError(t, os.WriteFile(answers, []byte("crane\nshort\nbad\n"), 0o644))
	require.NoError(t, os.WriteFile(allowed, []byte("slate\ncrane\n"), 0o644))

	l, err := Load(answers, allowed, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "short"}, l.Answers)
	assert.True(t, l.IsAllowed("slate"))
}

func TestLoadAllowedOnlyDoublesAsAnswers(t *testing.T) {
	dir := t.TempDir()
	allowed := filepath.Join(dir, "allowed.txt")
	require.NoError(t, os.WriteFile(allowed, []byte("crane\nslate\n"), 0o644))

	t.Setenv("WORDS_ANSWERS_FILE", "")
	l, err := Load("", allowed, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "slate"}, l.Answers)
}

func TestRandomAnswerIsAnAnswer(t *testing.T) {
	l, err := FromSlices([]string{"crane", "brake", "stone"}, nil, 5)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		assert.True(t, l.IsAnswer(l.RandomAnswer()))
	}
}
