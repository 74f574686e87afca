package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKeyIsUTC(t *testing.T) {
	loc := time.FixedZone("UTC+13", 13*3600)
	late := time.Date(2024, 3, 1, 1, 0, 0, 0, loc) // still Feb 29 in UTC
	assert.Equal(t, "2024-02-29", DateKey(late))
}

func TestWordIndexDeterministicAndInRange(t *testing.T) {
	day := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	a := WordIndex(day, "salt", 2309)
	b := WordIndex(day, "salt", 2309)
	assert.Equal(t, a, b)
	assert.GreaterOrEqual(t, a, 0)
	assert.Less(t, a, 2309)

	// Same date at a different clock time maps to the same word.
	later := day.Add(9 * time.Hour)
	assert.Equal(t, a, WordIndex(later, "salt", 2309))

	// Different dates spread across the pool rather than repeating one word.
	seen := map[int]bool{}
	for i := 0; i < 30; i++ {
		seen[WordIndex(day.AddDate(0, 0, i), "salt", 2309)] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestWordIndexEmptyPool(t *testing.T) {
	assert.Equal(t, 0, WordIndex(time.Now(), "salt", 0))
}
