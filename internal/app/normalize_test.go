package app_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"city_explorer/internal/app"
	"city_explorer/internal/domain"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func TestScaleRating(t *testing.T) {
	cases := []struct {
		name string
		src  domain.Source
		raw  *float64
		want float64
		ok   bool
	}{
		{"foursquare halves", domain.SourceFoursquare, fptr(8), 4, true},
		{"foursquare clamps", domain.SourceFoursquare, fptr(12), 5, true},
		{"opentripmap passes", domain.SourceOpenTripMap, fptr(4.33), 4.3, true},
		{"missing", domain.SourceFoursquare, nil, 0, false},
		{"zero is missing", domain.SourceOpenTripMap, fptr(0), 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := app.ScaleRating(c.src, c.raw)
			if ok != c.ok || got != c.want {
				t.Fatalf("got %v,%v want %v,%v", got, ok, c.want, c.ok)
			}
		})
	}
}

func TestNormalizeFillsMissingFields(t *testing.T) {
	n := app.NewNormalizer(app.NewRandomPolicy(3))
	p, ok := n.Normalize(domain.Detail{ID: "x", Name: " Galata ", Source: domain.SourceOpenTripMap, Kinds: "towers,architecture"}, domain.CityGuide, "İstanbul")
	if !ok {
		t.Fatal("expected ok")
	}
	if p.Name != "Galata" || p.Location != "İstanbul" {
		t.Fatalf("unexpected identity fields %+v", p)
	}
	if p.Rating < 3.5 || p.Rating > 4.8 {
		t.Fatalf("synthesized rating %v out of range", p.Rating)
	}
	if p.ReviewCount < 100 || p.ReviewCount > 1000 {
		t.Fatalf("city-guide reviews %d out of range", p.ReviewCount)
	}
	if p.ImageURL == "" || p.Description == "" || p.Category == "" {
		t.Fatalf("empty synthesized field in %+v", p)
	}
}

func TestNormalizePassesUpstreamValues(t *testing.T) {
	n := app.NewNormalizer(app.NewRandomPolicy(3))
	p, ok := n.Normalize(domain.Detail{
		ID: "fsq1", Name: "Louvre", Source: domain.SourceFoursquare, Kinds: "Art Museum",
		Rating: fptr(9.2), ReviewCount: iptr(321), ImageURL: "https://x/y.jpg", Locality: "Paris",
		Phone: "+33 1 40 20 50 50", Hours: "Wed-Mon 9:00-18:00", PriceLevel: 3,
	}, domain.DetailCard, "İstanbul")
	if !ok {
		t.Fatal("expected ok")
	}
	if p.Rating != 4.6 || p.ReviewCount != 321 || p.ImageURL != "https://x/y.jpg" || p.Location != "Paris" {
		t.Fatalf("upstream values not kept: %+v", p)
	}
	if p.Phone != "+33 1 40 20 50 50" || p.Hours != "Wed-Mon 9:00-18:00" || p.PriceLevel != 3 {
		t.Fatalf("detail card fields dropped: %+v", p)
	}
	if p.Category != domain.CategoryMuseum {
		t.Fatalf("category = %q", p.Category)
	}
}

func TestNormalizeDropsNameless(t *testing.T) {
	n := app.NewNormalizer(app.NewRandomPolicy(3))
	if _, ok := n.Normalize(domain.Detail{ID: "x", Name: "  "}, domain.DetailCard, "Ankara"); ok {
		t.Fatal("nameless record must be dropped")
	}
}

func TestCleanDescription(t *testing.T) {
	got := app.CleanDescription("The  old town\nTower and the castle", true)
	if got != "The eski şehir Kule and the kale" {
		t.Fatalf("got %q", got)
	}
	// non-encyclopedic text is left untranslated
	if got := app.CleanDescription("A tower", false); got != "A tower" {
		t.Fatalf("got %q", got)
	}
	// substring matches are not replaced
	if got := app.CleanDescription("Towerside", true); got != "Towerside" {
		t.Fatalf("got %q", got)
	}

	long := strings.Repeat("ç", 200)
	out := app.CleanDescription(long, false)
	if utf8.RuneCountInString(out) != 153 || !strings.HasSuffix(out, "...") {
		t.Fatalf("bad truncation: %d runes", utf8.RuneCountInString(out))
	}
}

func TestTranslateVocabularyUnicodeEdges(t *testing.T) {
	cases := map[string]string{
		"tower tower":              "kule kule",
		"Museumş and museum":       "Museumş and müze",
		"ıtower, tower.":           "ıtower, kule.",
		"the historic Castle":      "the tarihi Kale",
		"çcastle castleı (castle)": "çcastle castleı (kale)",
	}
	for in, want := range cases {
		if got := app.TranslateVocabulary(in); got != want {
			t.Errorf("TranslateVocabulary(%q) = %q, want %q", in, got, want)
		}
	}
}
