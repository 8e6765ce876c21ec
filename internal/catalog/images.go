package catalog

import (
	"hash/fnv"
	"net/url"
	"strings"
)

const placeholderBase = "https://placehold.co/800x600?text="

// PlaceholderImage builds a deterministic placeholder URL from query text.
func PlaceholderImage(query string) string {
	q := strings.TrimSpace(query)
	if q == "" {
		q = "travel"
	}
	return placeholderBase + url.QueryEscape(q)
}

type photoBucket struct {
	keywords []string
	ids      []string
}

var (
	landmarkPhotos = photoBucket{
		keywords: []string{"museum", "müze", "palace", "saray", "castle", "kale", "tower", "kule", "historic", "tarihi", "church", "mosque", "cami", "monument", "anıt"},
		ids: []string{
			"1524231757912-21f4fe3a7200",
			"1541432901042-2d8bd64b4a9b",
			"1548013146-72479768bada",
		},
	}
	tourismPhotos = photoBucket{
		keywords: []string{"beach", "plaj", "park", "nature", "natural", "doğa", "lake", "göl", "mountain", "dağ", "garden", "bahçe"},
		ids: []string{
			"1507525428034-b723cf961d3e",
			"1500530855697-b586d89ba3ee",
			"1469474968028-56623f02e42e",
		},
	}
	travelPhotos = photoBucket{
		ids: []string{
			"1488646953014-85cb44e25828",
			"1476514525535-07fb3b4ae5f1",
			"1500835556837-99ac94a94552",
		},
	}
)

// StockPhoto picks a stock photo for query: landmark or tourism bucket on a
// keyword match, travel otherwise. The same query always yields the same URL.
func StockPhoto(query string) string {
	q := strings.ToLower(query)
	b := travelPhotos
	for _, cand := range []photoBucket{landmarkPhotos, tourismPhotos} {
		if hasAny(q, cand.keywords) {
			b = cand
			break
		}
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(q))
	id := b.ids[int(h.Sum32()%uint32(len(b.ids)))]
	return "https://images.unsplash.com/photo-" + id + "?w=800&q=80"
}

func hasAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
