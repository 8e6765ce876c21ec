package app_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"city_explorer/internal/domain"
)

// ---- fakes ----

type fakeSource struct {
	mu       sync.Mutex
	stubs    []domain.Stub
	details  map[string]domain.Detail
	searches []domain.SearchQuery
	fetched  []string
	panics   bool
}

func (f *fakeSource) Search(ctx context.Context, q domain.SearchQuery) []domain.Stub {
	if f.panics {
		panic("upstream exploded")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searches = append(f.searches, q)
	return append([]domain.Stub(nil), f.stubs...)
}

func (f *fakeSource) Details(ctx context.Context, id string) (domain.Detail, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetched = append(f.fetched, id)
	d, ok := f.details[id]
	return d, ok
}

func (f *fakeSource) searchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.searches)
}

func (f *fakeSource) fetchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.fetched)
}

// newSource builds a source whose every stub has a matching detail record.
func newSource(src domain.Source, names ...string) *fakeSource {
	f := &fakeSource{details: map[string]domain.Detail{}}
	for _, n := range names {
		id := string(src) + ":" + n
		f.stubs = append(f.stubs, domain.Stub{ID: id, Name: n, Source: src})
		f.details[id] = domain.Detail{ID: id, Name: n, Source: src, Kinds: "museums"}
	}
	return f
}

type fakeImages struct {
	calls atomic.Int32
	delay time.Duration
}

func (f *fakeImages) Resolve(ctx context.Context, primary, secondary string) string {
	f.calls.Add(1)
	if f.delay > 0 {
		select {
		case <-ctx.Done():
			return "https://placeholder.test/" + secondary
		case <-time.After(f.delay):
		}
	}
	return "https://img.test/" + secondary
}

func (f *fakeImages) Lookup(ctx context.Context, query string) (string, bool) {
	return "", false
}

type fakeGeocoder struct {
	calls atomic.Int32
	city  domain.City
	err   error
}

func (f *fakeGeocoder) Geocode(ctx context.Context, name string) (domain.City, error) {
	f.calls.Add(1)
	if f.err != nil {
		return domain.City{}, f.err
	}
	c := f.city
	if c.Name == "" {
		c.Name = name
	}
	return c, nil
}

func (f *fakeGeocoder) Reverse(ctx context.Context, at domain.Coordinates) (domain.City, error) {
	f.calls.Add(1)
	if f.err != nil {
		return domain.City{}, f.err
	}
	return domain.City{Name: f.city.Name, Coordinates: at}, nil
}

var errUpstream = errors.New("upstream down")
