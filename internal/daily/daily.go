// internal/daily/daily.go
//
// Deterministic word-of-the-day selection for the daily challenge. Every
// player gets the same secret for a given date; the salt keeps the sequence
// unpredictable without the server config.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using
// HMAC(salt, YYYY-MM-DD) % answersLen.
func WordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}
