// internal/game/evaluate.go
//
// Guess evaluation for the WordPlay engine: the classic two-pass Wordle
// scoring algorithm, generalized to variable word lengths (5-8) and
// upper-case input.
//
// The pass ordering matters for repeated letters: a letter may collect at
// most as many correct+partial marks as it occurs in the secret word, with
// exact matches claiming occurrences first and leftmost pending positions
// winning ties.

package game

// Evaluate scores guess against secret and returns one Mark per letter.
// Both strings are expected to be equal-length, upper-case A-Z; callers
// validate before evaluating.
//
// Pass 1:
//   - Mark exact matches as correct.
//   - Count remaining (non-matched) secret letters by letter index.
//
// Pass 2:
//   - For each pending position: if the guessed letter still has remaining
//     count, mark partial and consume one occurrence; otherwise absent.
func Evaluate(secret, guess string) []Mark {
	n := len(guess)
	res := make([]Mark, n)
	secretRunes := []rune(secret)
	guessRunes := []rune(guess)

	// Letter frequency for the non-matched positions (A-Z).
	var counts [26]int

	for i := 0; i < n; i++ {
		if guessRunes[i] == secretRunes[i] {
			res[i] = MarkCorrect
		} else {
			counts[letterIdx(secretRunes[i])]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == MarkCorrect {
			continue
		}
		j := letterIdx(guessRunes[i])
		if j >= 0 && j < 26 && counts[j] > 0 {
			res[i] = MarkPartial
			counts[j]--
		} else {
			res[i] = MarkAbsent
		}
	}
	return res
}

// letterIdx maps an upper-case ASCII letter rune to 0..25.
func letterIdx(r rune) int { return int(r - 'A') }

// allCorrect returns true if every mark is MarkCorrect.
func allCorrect(m []Mark) bool {
	for _, x := range m {
		if x != MarkCorrect {
			return false
		}
	}
	return true
}

// isUpperAlpha checks that a string consists only of upper-case A-Z.
func isUpperAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return len(s) > 0
}
