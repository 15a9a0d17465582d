// internal/words/words.go
//
// Word source for the WordPlay engine.
//
// Responsibilities:
//   - Fetch a random word of a requested length and language from a cascade
//     of remote providers (primary, then backups, fixed attempt budget).
//   - Accept only alphabetic candidates of the right length, upper-cased.
//   - Never fail hard: FetchWord returns "" when every provider is down and
//     FallbackWord serves from the embedded per-language lists.
//
// Latency is bounded: per-request timeout, at most two attempts per
// provider, a fixed one-second pause between attempts, no further retries.

package words

import (
	"context"
	"crypto/rand"
	"io"
	"math/big"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/wordplaylabs/wordplay/assets"
)

const (
	defaultTimeout  = 10 * time.Second
	defaultAttempts = 2 // per provider
	defaultPause    = time.Second
)

// Config tunes the cascade. Zero values take the defaults above; Providers
// is only overridden in tests.
type Config struct {
	Timeout    time.Duration
	Attempts   int
	RetryPause time.Duration
	Providers  map[string][]Provider
}

// Cascade fetches random words across the configured providers.
type Cascade struct {
	client    *http.Client
	providers map[string][]Provider
	attempts  int
	pause     time.Duration
}

// New builds a Cascade from cfg.
func New(cfg Config) *Cascade {
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Attempts == 0 {
		cfg.Attempts = defaultAttempts
	}
	if cfg.RetryPause == 0 {
		cfg.RetryPause = defaultPause
	}
	if cfg.Providers == nil {
		cfg.Providers = defaultProviders
	}
	return &Cascade{
		client:    &http.Client{Timeout: cfg.Timeout},
		providers: cfg.Providers,
		attempts:  cfg.Attempts,
		pause:     cfg.RetryPause,
	}
}

// FetchWord tries the language's providers in order and returns the first
// upper-cased candidate of the requested length, or "" when everything
// failed. Provider errors are logged at debug level and absorbed.
func (c *Cascade) FetchWord(ctx context.Context, length int, language string) string {
	for _, p := range providersFor(c.providers, language) {
		if w := c.tryProvider(ctx, p, length); w != "" {
			log.Info().Str("provider", p.Name).Int("length", length).Msg("word fetched")
			return w
		}
	}
	log.Warn().Str("language", language).Int("length", length).Msg("all word providers failed")
	return ""
}

// tryProvider runs the fixed attempt budget against a single provider.
func (c *Cascade) tryProvider(ctx context.Context, p Provider, length int) string {
	for attempt := 0; attempt < c.attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ""
			case <-time.After(c.pause):
			}
		}
		word, err := c.fetchOnce(ctx, p, length)
		if err != nil {
			log.Debug().Err(err).Str("provider", p.Name).Int("attempt", attempt+1).Msg("word fetch failed")
			continue
		}
		word = strings.ToUpper(strings.TrimSpace(word))
		if len(word) == length && isAlpha(word) {
			return word
		}
		log.Debug().Str("provider", p.Name).Str("candidate", word).Msg("rejected candidate word")
	}
	return ""
}

func (c *Cascade) fetchOnce(ctx context.Context, p Provider, length int) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.buildURL(length), nil)
	if err != nil {
		return "", err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", &statusError{code: resp.StatusCode}
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return "", err
	}
	return p.extractWord(body)
}

type statusError struct{ code int }

func (e *statusError) Error() string { return http.StatusText(e.code) }

// ----------------------------- fallback lists ------------------------------

var (
	fallbackOnce  sync.Once
	fallbackLists map[int][]string // keyed by word length
)

// ultimate per-length defaults when even the embedded list has no entry.
var ultimateFallbacks = map[int]string{
	5: "HOUSE",
	6: "CASTLE",
	7: "RAINBOW",
	8: "COMPLETE",
}

func initFallback() {
	fallbackLists = make(map[int][]string)
	list, err := assets.FallbackList("en")
	if err != nil {
		log.Error().Err(err).Msg("failed to load embedded fallback words")
		return
	}
	for _, w := range list {
		if isAlpha(w) {
			fallbackLists[len(w)] = append(fallbackLists[len(w)], w)
		}
	}
}

// FallbackWord picks a uniform random word of the given length from the
// embedded lists. Every language currently shares the English lists.
func (c *Cascade) FallbackWord(language string, length int) string {
	fallbackOnce.Do(initFallback)
	list := fallbackLists[length]
	if len(list) == 0 {
		if w, ok := ultimateFallbacks[length]; ok {
			return w
		}
		return "HOUSE"
	}
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(list))))
	return list[nBig.Int64()]
}

// Answers returns the five-letter fallback list, used by the daily
// challenge for deterministic word-of-the-day selection.
func Answers() []string {
	fallbackOnce.Do(initFallback)
	return fallbackLists[5]
}

// isAlpha reports whether s is non-empty, upper-case ASCII letters only.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
