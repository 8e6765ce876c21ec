package app

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"city_explorer/internal/catalog"
	"city_explorer/internal/domain"
)

// Synthetic value ranges. Ratings are drawn when a provider has none so
// cards never show an empty score; the two review ranges belong to
// different card types and are kept apart on purpose.
const (
	SyntheticRatingMin = 3.5
	SyntheticRatingMax = 4.8

	DetailCardReviewsMin = 10
	DetailCardReviewsMax = 200
	CityGuideReviewsMin  = 100
	CityGuideReviewsMax  = 1000
)

// SyntheticDataPolicy produces every value the pipeline makes up.
type SyntheticDataPolicy interface {
	Rating() float64
	ReviewCount(rc domain.ReviewContext) int
	FallbackID() string
	// CityFallback returns the authored table for city, or generic filler.
	CityFallback(city string) []domain.Place
	// CategoryFallback returns mock entries for a category id, or generic
	// filler labelled with location.
	CategoryFallback(categoryID, location string) []domain.Place
}

var _ SyntheticDataPolicy = (*RandomPolicy)(nil)

// RandomPolicy draws from a seeded PCG source. It is safe for concurrent use.
type RandomPolicy struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomPolicy seeds from the clock when seed is 0.
func NewRandomPolicy(seed uint64) *RandomPolicy {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &RandomPolicy{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (p *RandomPolicy) Rating() float64 {
	p.mu.Lock()
	f := p.rng.Float64()
	p.mu.Unlock()
	r := SyntheticRatingMin + f*(SyntheticRatingMax-SyntheticRatingMin)
	return math.Round(r*10) / 10
}

func (p *RandomPolicy) ReviewCount(rc domain.ReviewContext) int {
	lo, hi := DetailCardReviewsMin, DetailCardReviewsMax
	if rc == domain.CityGuide {
		lo, hi = CityGuideReviewsMin, CityGuideReviewsMax
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return lo + p.rng.IntN(hi-lo+1)
}

// FallbackID is time-ordered; ids are unique within the process but carry
// no meaning across calls.
func (p *RandomPolicy) FallbackID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("fallback_%d", time.Now().UnixNano())
	}
	return "fallback_" + id.String()
}

func (p *RandomPolicy) CityFallback(city string) []domain.Place {
	entries, ok := catalog.CityFallback(city)
	if !ok {
		entries = filler(city)
	}
	return p.places(entries, city, domain.CityGuide)
}

func (p *RandomPolicy) CategoryFallback(categoryID, location string) []domain.Place {
	entries, ok := catalog.CategoryFallback(categoryID)
	if !ok {
		entries = filler(location)
	}
	return p.places(entries, location, domain.DetailCard)
}

func (p *RandomPolicy) places(entries []catalog.FallbackEntry, location string, rc domain.ReviewContext) []domain.Place {
	out := make([]domain.Place, 0, len(entries))
	for _, e := range entries {
		loc := e.Location
		if loc == "" {
			loc = location
		}
		out = append(out, domain.Place{
			ID:          p.FallbackID(),
			Name:        e.Name,
			Location:    loc,
			Category:    catalog.TranslateKind(e.Kind),
			Description: e.Description,
			Rating:      p.Rating(),
			ReviewCount: p.ReviewCount(rc),
			ImageURL:    catalog.PlaceholderImage(e.Name + " " + loc),
			Source:      domain.SourceSynthetic,
		})
	}
	return out
}

func filler(location string) []catalog.FallbackEntry {
	out := make([]catalog.FallbackEntry, 0, len(catalog.Filler))
	for _, f := range catalog.Filler {
		out = append(out, catalog.FallbackEntry{
			Name:        fmt.Sprintf(f.Name, location),
			Kind:        f.Kind,
			Description: fmt.Sprintf(f.Description, location),
			Location:    location,
		})
	}
	return out
}
