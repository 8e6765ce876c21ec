package app

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"city_explorer/internal/catalog"
	"city_explorer/internal/domain"
)

const (
	maxDescriptionRunes = 150
	ellipsis            = "..."
	unknownLocation     = "Bilinmeyen Konum"
)

// Normalizer turns adapter details into canonical places.
type Normalizer struct {
	synth SyntheticDataPolicy
}

func NewNormalizer(synth SyntheticDataPolicy) *Normalizer {
	return &Normalizer{synth: synth}
}

// Normalize returns ok == false for records without a usable name.
func (n *Normalizer) Normalize(d domain.Detail, rc domain.ReviewContext, defaultLocation string) (domain.Place, bool) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return domain.Place{}, false
	}
	location := firstNonEmpty(d.Locality, defaultLocation, unknownLocation)
	category := catalog.TranslateKind(d.Kinds)

	desc := CleanDescription(d.Description, d.Encyclopedic)
	if desc == "" {
		desc = fmt.Sprintf("%s, %s bölgesindeki %s arasında yer alıyor.", name, location, strings.ToLower(string(category)))
	}

	rating, ok := ScaleRating(d.Source, d.Rating)
	if !ok {
		rating = n.synth.Rating()
	}
	reviews := 0
	if d.ReviewCount != nil && *d.ReviewCount > 0 {
		reviews = *d.ReviewCount
	} else {
		reviews = n.synth.ReviewCount(rc)
	}

	img := strings.TrimSpace(d.ImageURL)
	if img == "" {
		img = catalog.PlaceholderImage(name + " " + location)
	}

	return domain.Place{
		ID:          d.ID,
		Name:        name,
		Location:    location,
		Category:    category,
		Description: desc,
		Rating:      rating,
		ReviewCount: reviews,
		ImageURL:    img,
		Source:      d.Source,
		Website:     d.Website,
		Phone:       d.Phone,
		Hours:       d.Hours,
		PriceLevel:  d.PriceLevel,
	}, true
}

// ScaleRating converts a provider rating to the 0..5 scale. Foursquare
// rates out of 10. ok is false when there is no usable value (absent or
// non-positive).
func ScaleRating(src domain.Source, raw *float64) (float64, bool) {
	if raw == nil || *raw <= 0 || math.IsNaN(*raw) {
		return 0, false
	}
	r := *raw
	if src == domain.SourceFoursquare {
		r /= 2
	}
	r = math.Max(0, math.Min(5, r))
	return math.Round(r*10) / 10, true
}

var vocabularyPattern = func() *regexp.Regexp {
	terms := make([]string, 0, len(catalog.Vocabulary))
	for k := range catalog.Vocabulary {
		terms = append(terms, regexp.QuoteMeta(k))
	}
	// longest first so "old town" wins over shorter terms
	sort.Slice(terms, func(i, j int) bool {
		if len(terms[i]) != len(terms[j]) {
			return len(terms[i]) > len(terms[j])
		}
		return terms[i] < terms[j]
	})
	return regexp.MustCompile(`(?i)(?:` + strings.Join(terms, "|") + `)`)
}()

// CleanDescription collapses whitespace and truncates to 150 runes.
// Encyclopedic text also gets the vocabulary pass first.
func CleanDescription(s string, encyclopedic bool) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}
	if encyclopedic {
		s = TranslateVocabulary(s)
	}
	return Truncate(s, maxDescriptionRunes)
}

// TranslateVocabulary replaces whole-word English landmark terms,
// keeping a leading capital. Word edges are Unicode aware, so a term
// glued to a Turkish letter is left alone.
func TranslateVocabulary(s string) string {
	matches := vocabularyPattern.FindAllStringIndex(s, -1)
	if matches == nil {
		return s
	}
	var b strings.Builder
	last := 0
	for _, m := range matches {
		if !wholeWord(s, m[0], m[1]) {
			continue
		}
		b.WriteString(s[last:m[0]])
		b.WriteString(translateTerm(s[m[0]:m[1]]))
		last = m[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

func translateTerm(m string) string {
	tr, ok := catalog.Vocabulary[strings.ToLower(m)]
	if !ok {
		return m
	}
	if r, _ := utf8.DecodeRuneInString(m); unicode.IsUpper(r) {
		first, size := utf8.DecodeRuneInString(tr)
		return string(unicode.ToUpper(first)) + tr[size:]
	}
	return tr
}

func wholeWord(s string, start, end int) bool {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(s[:start]); isWordRune(r) {
			return false
		}
	}
	if end < len(s) {
		if r, _ := utf8.DecodeRuneInString(s[end:]); isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func Truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return strings.TrimRightFunc(string(r[:max]), unicode.IsSpace) + ellipsis
}

func firstNonEmpty(vs ...string) string {
	for _, v := range vs {
		if t := strings.TrimSpace(v); t != "" {
			return t
		}
	}
	return ""
}
