package hints

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordplaylabs/wordplay/internal/game"
)

func dictServer(t *testing.T, status int, body string) *Provider {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return New(Config{
		Timeout:   2 * time.Second,
		Endpoints: map[string]string{"en": srv.URL + "/{word}"},
	})
}

func dictBody(definition string) string {
	return `[{"meanings":[{"definitions":[{"definition":"` + definition + `"}]}]}]`
}

func TestFetchHintFirstSentence(t *testing.T) {
	p := dictServer(t, http.StatusOK, dictBody("a building for living in. Additional senses follow."))
	got := p.FetchHint(context.Background(), "HOUSE", "en", game.DifficultyNormal)
	assert.Equal(t, "A building for living in", got)
}

func TestFetchHintStripsSecretWord(t *testing.T) {
	p := dictServer(t, http.StatusOK, dictBody("a house is a building where people live"))
	got := p.FetchHint(context.Background(), "HOUSE", "en", game.DifficultyNormal)
	assert.Equal(t, "A is a building where people live", got)
	assert.NotContains(t, strings.ToUpper(got), "HOUSE")
}

func TestFetchHintStripsSecretWithPunctuation(t *testing.T) {
	p := dictServer(t, http.StatusOK, dictBody(`relating to a "house," or dwelling`))
	got := p.FetchHint(context.Background(), "HOUSE", "en", game.DifficultyNormal)
	assert.NotContains(t, strings.ToUpper(got), "HOUSE")
}

func TestFetchHintTruncation(t *testing.T) {
	long := strings.Repeat("very ", 30) + "long definition"

	t.Run("normal caps at 60", func(t *testing.T) {
		p := dictServer(t, http.StatusOK, dictBody(long))
		got := p.FetchHint(context.Background(), "HOUSE", "en", game.DifficultyNormal)
		assert.Len(t, got, 60)
		assert.True(t, strings.HasSuffix(got, "..."))
	})

	t.Run("easy caps at 80", func(t *testing.T) {
		p := dictServer(t, http.StatusOK, dictBody(long))
		got := p.FetchHint(context.Background(), "HOUSE", "en", game.DifficultyEasy)
		assert.Len(t, got, 80)
		assert.True(t, strings.HasSuffix(got, "..."))
	})
}

func TestFetchHintTruncatesOnRuneBoundary(t *testing.T) {
	// The é straddles the 57-byte cut position; truncation must back up to
	// the rune boundary instead of emitting a half rune.
	definition := strings.Repeat("a", 56) + "é and then a few more trailing words"
	p := dictServer(t, http.StatusOK, dictBody(definition))

	got := p.FetchHint(context.Background(), "HOUSE", "en", game.DifficultyNormal)
	assert.True(t, utf8.ValidString(got))
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.NotContains(t, got, "é")
}

func TestFetchHintFallbacks(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"not found", http.StatusNotFound, `{"title":"No Definitions Found"}`},
		{"malformed payload", http.StatusOK, `not json`},
		{"empty entries", http.StatusOK, `[]`},
		{"empty definition", http.StatusOK, dictBody("")},
		{"definition is only the secret", http.StatusOK, dictBody("house")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := dictServer(t, tc.status, tc.body)
			got := p.FetchHint(context.Background(), "HOUSE", "en", game.DifficultyNormal)
			assert.Equal(t, "A common 5-letter English word", got)
		})
	}
}

func TestFallbackHintTables(t *testing.T) {
	tests := []struct {
		length     int
		difficulty game.Difficulty
		want       string
	}{
		{5, game.DifficultyNormal, "A common 5-letter English word"},
		{6, game.DifficultyNormal, "A 6-letter word you might use daily"},
		{7, game.DifficultyNormal, "A 7-letter word with good letter variety"},
		{8, game.DifficultyNormal, "An 8-letter word - think carefully!"},
		{5, game.DifficultyEasy, "A common 5-letter English word you use often"},
		{8, game.DifficultyEasy, "An 8-letter word - think of longer, descriptive words"},
		{9, game.DifficultyNormal, "A word you need to guess!"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, fallbackHint(tc.length, tc.difficulty))
	}
}

func TestFetchHintUnknownLanguageFallsBackToEnglishEndpoint(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_, _ = w.Write([]byte(dictBody("a fortified building")))
	}))
	t.Cleanup(srv.Close)
	p := New(Config{Endpoints: map[string]string{"en": srv.URL + "/{word}"}})

	got := p.FetchHint(context.Background(), "CASTLE", "xx", game.DifficultyNormal)
	require.Equal(t, "A fortified building", got)
	assert.Equal(t, "/castle", path, "word is substituted lower-cased")
}
