// internal/words/providers.go
//
// Remote provider table for the word source cascade. Each language gets a
// primary provider plus up to two backups, tried in order. Two response
// shapes exist in the wild:
//   - a bare JSON list of words (take index 0)
//   - a JSON list of objects carrying a "word" key
//
// Unknown language codes fall back to the English providers.

package words

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// Shape describes how a provider encodes its response.
type Shape string

const (
	// ShapeWordList is a JSON array of strings; the word sits at index 0.
	ShapeWordList Shape = "list"

	// ShapeObjectList is a JSON array of objects with a "word" key.
	ShapeObjectList Shape = "objects"
)

// Provider is one remote random-word endpoint.
type Provider struct {
	Name  string
	URL   string // may contain a {length} placeholder
	Shape Shape
}

// buildURL substitutes the requested word length into the provider URL.
func (p Provider) buildURL(length int) string {
	return strings.ReplaceAll(p.URL, "{length}", strconv.Itoa(length))
}

// extractWord pulls the candidate word out of a raw provider response.
func (p Provider) extractWord(body []byte) (string, error) {
	switch p.Shape {
	case ShapeObjectList:
		var list []struct {
			Word string `json:"word"`
		}
		if err := json.Unmarshal(body, &list); err != nil {
			return "", err
		}
		if len(list) == 0 {
			return "", errors.New("empty response list")
		}
		return list[0].Word, nil
	default:
		var list []string
		if err := json.Unmarshal(body, &list); err != nil {
			return "", err
		}
		if len(list) == 0 {
			return "", errors.New("empty response list")
		}
		return list[0], nil
	}
}

// defaultProviders maps language codes to their cascade order.
var defaultProviders = map[string][]Provider{
	"en": {
		{Name: "primary", URL: "https://random-word-api.herokuapp.com/word?length={length}", Shape: ShapeWordList},
		{Name: "backup1", URL: "https://random-word-api.vercel.app/api?words=1&length={length}", Shape: ShapeWordList},
		{Name: "backup2", URL: "https://random-words-api.vercel.app/word", Shape: ShapeObjectList},
	},
}

// providersFor returns the cascade for a language, falling back to English
// when the language is not configured.
func providersFor(table map[string][]Provider, language string) []Provider {
	if ps, ok := table[language]; ok {
		return ps
	}
	return table["en"]
}
