// internal/game/validate.go
//
// Anti-cheat validation for guesses. These are game-balance heuristics
// rejecting degenerate guesses (vowel dumping and friends), not a security
// boundary. Rules run in a fixed order and the first failure wins; a
// rejected guess never consumes a guess slot.

package game

import "fmt"

const vowels = "AEIOU"

// ValidateGuess applies the anti-cheat rules to an upper-cased, trimmed
// guess in the context of the session's current round. Returns nil when the
// guess is acceptable.
//
// Rule order:
//  1. length must match the round's word length
//  2. letters only
//  3. no duplicate of an earlier guess
//  4. at least one consonant
//  5. vowel fraction of distinct letters must not exceed 0.6
//  6. at least 2 distinct consonants for word lengths >= 5
func ValidateGuess(guess string, s *Session) *Rejection {
	if len(guess) != s.WordLength {
		return reject(RejectBadInput, fmt.Sprintf("Guess must be %d letters", s.WordLength))
	}
	if !isUpperAlpha(guess) {
		return reject(RejectBadInput, "Guess must contain only letters")
	}
	for _, prev := range s.Guesses {
		if prev == guess {
			return reject(RejectRule, "Already guessed that word")
		}
	}

	vowelCount, consonantCount := distinctLetterSplit(guess)
	if consonantCount == 0 {
		return reject(RejectRule, "Guess must contain at least one consonant (no vowel dumping!)")
	}
	// Threshold is on distinct letters, so AEIOU+1 consonant still fails.
	if float64(vowelCount)/float64(vowelCount+consonantCount) > 0.6 {
		return reject(RejectRule, "Too many vowels! Try a more balanced word")
	}
	if s.WordLength >= 5 && consonantCount < 2 {
		return reject(RejectRule, "Need at least 2 different consonants for fair play")
	}
	return nil
}

// distinctLetterSplit counts the distinct vowels and distinct consonants in
// an upper-case guess.
func distinctLetterSplit(guess string) (vowelCount, consonantCount int) {
	var seen [26]bool
	for _, r := range guess {
		j := letterIdx(r)
		if seen[j] {
			continue
		}
		seen[j] = true
		if isVowel(r) {
			vowelCount++
		} else {
			consonantCount++
		}
	}
	return vowelCount, consonantCount
}

func isVowel(r rune) bool {
	for _, v := range vowels {
		if r == v {
			return true
		}
	}
	return false
}
