package tasks

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// VerifiedTag marks tasks whose effectiveness has been verified.
const VerifiedTag = "efectividad verificada"

// Fold lower-cases s, strips accents and trims surrounding space.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// NormalizeTags splits the tag text on commas and semicolons and folds each
// tag. VerifiedTag is appended when the bucket name folds to it.
func NormalizeTags(tags, bucket *string) []string {
	var out []string
	if tags != nil {
		parts := strings.FieldsFunc(*tags, func(r rune) bool { return r == ',' || r == ';' })
		for _, p := range parts {
			if f := Fold(p); f != "" {
				out = append(out, f)
			}
		}
	}

	if bucket != nil && Fold(*bucket) == VerifiedTag && !contains(out, VerifiedTag) {
		out = append(out, VerifiedTag)
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
