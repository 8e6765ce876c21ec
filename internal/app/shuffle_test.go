package app_test

import (
	"context"
	"testing"

	"city_explorer/internal/domain"
)

// reverseShuffle records every call and reverses the slice so the effect
// is visible in the result.
type reverseShuffle struct{ calls int }

func (r *reverseShuffle) shuffle(n int, swap func(i, j int)) {
	r.calls++
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		swap(i, j)
	}
}

func withShuffle(h *harness) *reverseShuffle {
	r := &reverseShuffle{}
	h.agg.SetShuffle(r.shuffle)
	return r
}

func TestShuffleRunsOnlyForTwoLiveSources(t *testing.T) {
	cases := []struct {
		name       string
		commercial *fakeSource
		openData   *fakeSource
		req        domain.Request
		want       int
	}{
		{"city two sources", newSource(domain.SourceFoursquare, "a", "b"), newSource(domain.SourceOpenTripMap, "x"), domain.Request{City: "Ankara"}, 1},
		{"city commercial only", newSource(domain.SourceFoursquare, "a", "b", "c", "d", "e"), newSource(domain.SourceOpenTripMap, "x"), domain.Request{City: "Ankara"}, 0},
		{"city open data only", &fakeSource{}, newSource(domain.SourceOpenTripMap, "x", "y"), domain.Request{City: "Ankara"}, 0},
		{"city curated", newSource(domain.SourceFoursquare, "a"), newSource(domain.SourceOpenTripMap, "x"), domain.Request{City: "Paris"}, 0},
		{"city fallback", &fakeSource{}, &fakeSource{}, domain.Request{City: "Ankara"}, 0},
		{"category two sources", newSource(domain.SourceFoursquare, "a"), newSource(domain.SourceOpenTripMap, "x"), domain.Request{CategoryID: "museums"}, 1},
		{"category single source", newSource(domain.SourceFoursquare, "a", "b"), &fakeSource{}, domain.Request{CategoryID: "museums"}, 0},
		{"category fallback", &fakeSource{}, &fakeSource{}, domain.Request{CategoryID: "museums"}, 0},
		{"unknown category", newSource(domain.SourceFoursquare, "a"), newSource(domain.SourceOpenTripMap, "x"), domain.Request{CategoryID: "nightlife"}, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := newHarness(c.commercial, c.openData)
			rs := withShuffle(h)
			if _, err := h.agg.Aggregate(context.Background(), c.req); err != nil {
				t.Fatal(err)
			}
			if rs.calls != c.want {
				t.Fatalf("shuffle ran %d times, want %d", rs.calls, c.want)
			}
		})
	}
}

func TestShuffleAppliesToMergedList(t *testing.T) {
	h := newHarness(newSource(domain.SourceFoursquare, "a", "b"), newSource(domain.SourceOpenTripMap, "x"))
	withShuffle(h)
	res, err := h.agg.Aggregate(context.Background(), domain.Request{City: "Ankara"})
	if err != nil {
		t.Fatal(err)
	}
	got := make([]string, 0, len(res.Places))
	for _, p := range res.Places {
		got = append(got, p.Name)
	}
	want := []string{"x", "b", "a"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
