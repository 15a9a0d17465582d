package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed fallback_en.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToUpper(s))
	}
	return out, sc.Err()
}

// FallbackList returns the embedded fallback words for a language code.
// Only "en" ships today; unknown codes fall back to it.
func FallbackList(language string) ([]string, error) {
	switch language {
	case "en":
		return readLines("fallback_en.txt")
	default:
		return readLines("fallback_en.txt")
	}
}
