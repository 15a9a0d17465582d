package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateExactMatch(t *testing.T) {
	for _, w := range []string{"HOUSE", "CASTLE", "RAINBOW", "COMPLETE"} {
		marks := Evaluate(w, w)
		require.Len(t, marks, len(w))
		for i, m := range marks {
			assert.Equal(t, MarkCorrect, m, "position %d of %s", i, w)
		}
	}
}

func TestEvaluateScenarios(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		guess  string
		want   []Mark
	}{
		{
			name:   "mouse vs house",
			secret: "HOUSE",
			guess:  "MOUSE",
			want:   []Mark{MarkAbsent, MarkCorrect, MarkCorrect, MarkCorrect, MarkCorrect},
		},
		{
			name:   "all absent",
			secret: "HOUSE",
			guess:  "TRAIN",
			want:   []Mark{MarkAbsent, MarkAbsent, MarkAbsent, MarkAbsent, MarkAbsent},
		},
		{
			name:   "full anagram is all partial",
			secret: "STEAM",
			guess:  "MEATS",
			want:   []Mark{MarkPartial, MarkPartial, MarkPartial, MarkPartial, MarkPartial},
		},
		{
			// ROBOT has two O's; OODOO must not earn more than two O marks,
			// and the exact-match O's claim them first.
			name:   "repeated letters never over-counted",
			secret: "ROBOT",
			guess:  "OODOO",
			want:   []Mark{MarkAbsent, MarkCorrect, MarkAbsent, MarkCorrect, MarkAbsent},
		},
		{
			name:   "leftmost pending position wins the tie",
			secret: "ROBOT",
			guess:  "OOOZE",
			want:   []Mark{MarkPartial, MarkCorrect, MarkAbsent, MarkAbsent, MarkAbsent},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Evaluate(tc.secret, tc.guess))
		})
	}
}

// Marks for any letter must never exceed that letter's occurrence count in
// the secret word.
func TestEvaluateNeverOverCountsLetters(t *testing.T) {
	cases := []struct{ secret, guess string }{
		{"ROBOT", "BOOZE"},
		{"ROBOT", "OODOO"},
		{"LLAMA", "ALLAY"},
		{"GEESE", "EEEEE"},
		{"BRIDGE", "BUBBLE"},
	}
	for _, tc := range cases {
		marks := Evaluate(tc.secret, tc.guess)
		require.Len(t, marks, len(tc.guess))
		for letter := 'A'; letter <= 'Z'; letter++ {
			inSecret := strings.Count(tc.secret, string(letter))
			marked := 0
			for i, m := range marks {
				if rune(tc.guess[i]) == letter && (m == MarkCorrect || m == MarkPartial) {
					marked++
				}
			}
			assert.LessOrEqual(t, marked, inSecret,
				"%s vs %s over-counted %c", tc.secret, tc.guess, letter)
		}
	}
}
