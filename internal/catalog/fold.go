// Package catalog holds the hand-authored tables the pipeline consults:
// curated coordinates and landmarks, category definitions, kind
// translations, stock photos and fallback data.
package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CustomPrefix marks ids served by the curated landmark table.
const CustomPrefix = "custom_"

var dotless = strings.NewReplacer("ı", "i")

// Fold lowercases s, strips diacritics and collapses whitespace so that
// "İstanbul", "istanbul" and "ISTANBUL" compare equal.
func Fold(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}
	// transformers carry state; build one per call
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, dotless.Replace(s))
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Slug builds the curated id for a landmark name.
func Slug(name string) string {
	return CustomPrefix + strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
}

// Unslug reverses Slug. ok is false when id lacks the curated prefix.
func Unslug(id string) (string, bool) {
	if !strings.HasPrefix(id, CustomPrefix) {
		return "", false
	}
	return strings.ReplaceAll(strings.TrimPrefix(id, CustomPrefix), "_", " "), true
}
