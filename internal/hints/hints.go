// internal/hints/hints.go
//
// Hint provider: fetches a dictionary definition for the secret word and
// reduces it to a safe hint string. The secret itself is stripped from the
// hint, and length is capped by difficulty (80 chars easy, 60 otherwise).
// Any failure (network, non-200, malformed payload, empty definition)
// resolves to a static fallback hint; FetchHint never fails.

package hints

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/wordplaylabs/wordplay/internal/game"
)

const defaultTimeout = 10 * time.Second

// dictionary endpoints per language; {word} is substituted lower-cased.
var defaultEndpoints = map[string]string{
	"en": "https://api.dictionaryapi.dev/api/v2/entries/en/{word}",
}

// Config tunes the provider. Endpoints is only overridden in tests.
type Config struct {
	Timeout   time.Duration
	Endpoints map[string]string
}

// Provider fetches and simplifies dictionary definitions.
type Provider struct {
	client    *http.Client
	endpoints map[string]string
}

// New builds a Provider from cfg.
func New(cfg Config) *Provider {
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Endpoints == nil {
		cfg.Endpoints = defaultEndpoints
	}
	return &Provider{
		client:    &http.Client{Timeout: cfg.Timeout},
		endpoints: cfg.Endpoints,
	}
}

// dictionaryapi.dev payload: entries -> meanings -> definitions.
type dictEntry struct {
	Meanings []struct {
		Definitions []struct {
			Definition string `json:"definition"`
		} `json:"definitions"`
	} `json:"meanings"`
}

// FetchHint returns a hint for the word, or a static fallback when the
// dictionary is unavailable or useless.
func (p *Provider) FetchHint(ctx context.Context, word, language string, difficulty game.Difficulty) string {
	if def := p.fetchDefinition(ctx, word, language); def != "" {
		if hint := simplify(def, word, difficulty); hint != "" {
			return hint
		}
	}
	return fallbackHint(len(word), difficulty)
}

func (p *Provider) fetchDefinition(ctx context.Context, word, language string) string {
	endpoint, ok := p.endpoints[language]
	if !ok {
		endpoint = p.endpoints["en"]
	}
	if endpoint == "" {
		return ""
	}
	url := strings.ReplaceAll(endpoint, "{word}", strings.ToLower(word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ""
	}
	resp, err := p.client.Do(req)
	if err != nil {
		log.Debug().Err(err).Msg("dictionary fetch failed")
		return ""
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Debug().Int("status", resp.StatusCode).Msg("dictionary returned non-200")
		return ""
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<18))
	if err != nil {
		return ""
	}

	var entries []dictEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		log.Debug().Err(err).Msg("malformed dictionary payload")
		return ""
	}
	if len(entries) == 0 || len(entries[0].Meanings) == 0 || len(entries[0].Meanings[0].Definitions) == 0 {
		return ""
	}
	return entries[0].Meanings[0].Definitions[0].Definition
}

// simplify reduces a definition to a hint: first sentence, secret word
// removed, truncated by difficulty, first letter capitalized.
func simplify(definition, secret string, difficulty game.Difficulty) string {
	first, _, _ := strings.Cut(definition, ".")
	hint := strings.TrimSpace(first)
	if hint == "" {
		return ""
	}

	// Drop any token that spells the secret once punctuation is stripped.
	secret = strings.ToUpper(secret)
	var kept []string
	for _, tok := range strings.Fields(hint) {
		if stripToLetters(tok) != secret {
			kept = append(kept, tok)
		}
	}
	hint = strings.Join(kept, " ")

	maxLen := 60
	if difficulty == game.DifficultyEasy {
		maxLen = 80
	}
	if len(hint) > maxLen {
		// Back the cut up to a rune boundary so multi-byte text stays valid.
		cut := maxLen - 3
		for cut > 0 && !utf8.RuneStart(hint[cut]) {
			cut--
		}
		hint = hint[:cut] + "..."
	}
	return capitalize(hint)
}

// stripToLetters removes non-letter runes and upper-cases the rest.
func stripToLetters(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return ""
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// fallbackHint serves the canned per-length hints, with friendlier texts on
// easy difficulty.
func fallbackHint(length int, difficulty game.Difficulty) string {
	var table map[int]string
	if difficulty == game.DifficultyEasy {
		table = map[int]string{
			5: "A common 5-letter English word you use often",
			6: "A 6-letter word you might encounter daily",
			7: "A 7-letter word with interesting letter patterns",
			8: "An 8-letter word - think of longer, descriptive words",
		}
	} else {
		table = map[int]string{
			5: "A common 5-letter English word",
			6: "A 6-letter word you might use daily",
			7: "A 7-letter word with good letter variety",
			8: "An 8-letter word - think carefully!",
		}
	}
	if h, ok := table[length]; ok {
		return h
	}
	return "A word you need to guess!"
}
