package quiz

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents decomposes to NFD, drops combining marks, and recomposes,
// mapping accented letters to their closest ASCII form ("São" -> "Sao").
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize prepares a capital name for comparison: accents stripped, hyphens
// treated as spaces, runs of whitespace collapsed, trimmed, lowercased.
func Normalize(s string) string {
	out, _, err := transform.String(stripAccents, s)
	if err != nil {
		out = s
	}
	out = strings.ReplaceAll(out, "-", " ")
	out = strings.Join(strings.Fields(out), " ")
	return strings.ToLower(out)
}

// AnswersMatch reports whether two spellings name the same capital.
func AnswersMatch(expected, actual string) bool {
	return Normalize(expected) == Normalize(actual)
}
