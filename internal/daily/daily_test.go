package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKey(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC.
	loc := time.FixedZone("EST", -5*3600)
	at := time.Date(2026, 3, 1, 23, 30, 0, 0, loc)
	assert.Equal(t, "2026-03-02", DateKey(at))
}

func TestWordIndexDeterministic(t *testing.T) {
	day := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	a := WordIndex(day, "salt", 100)
	b := WordIndex(day.Add(10*time.Hour), "salt", 100)
	assert.Equal(t, a, b, "same date gives the same index regardless of time of day")

	// The sequence varies across days (not a constant function).
	varied := false
	for i := 1; i <= 30 && !varied; i++ {
		varied = WordIndex(day.AddDate(0, 0, i), "salt", 100) != a
	}
	assert.True(t, varied)

	// And across salts.
	varied = false
	for i := 0; i < 30 && !varied; i++ {
		varied = WordIndex(day.AddDate(0, 0, i), "other-salt", 100) != WordIndex(day.AddDate(0, 0, i), "salt", 100)
	}
	assert.True(t, varied)
}

func TestWordIndexBounds(t *testing.T) {
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for n := 1; n <= 50; n++ {
		idx := WordIndex(day, "salt", n)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, n)
	}
	assert.Zero(t, WordIndex(day, "salt", 0))
	assert.Zero(t, WordIndex(day, "salt", -3))
}
