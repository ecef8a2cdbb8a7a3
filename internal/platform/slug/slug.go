// Package slug turns free text into file name fragments.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxLen caps a slug so journal paths stay short.
const MaxLen = 48

var nonAlphaNum = regexp.MustCompile(`[^a-z0-9]+`)

// Make folds accents, lowercases and joins the remaining words with hyphens.
// Input with nothing usable becomes "untitled".
func Make(input string) string {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, err := transform.String(fold, input)
	if err != nil {
		s = input
	}
	s = nonAlphaNum.ReplaceAllString(strings.ToLower(s), "-")
	s = strings.Trim(s, "-")
	if len(s) > MaxLen {
		s = strings.TrimRight(s[:MaxLen], "-")
	}
	if s == "" {
		return "untitled"
	}
	return s
}
