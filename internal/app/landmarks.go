package app

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"city_explorer/internal/catalog"
	"city_explorer/internal/domain"
)

var _ domain.LandmarkOverride = (*Landmarks)(nil)

// Landmarks serves the curated landmark table. Images are resolved on first
// access and kept for the life of the process; concurrent first accesses
// for one landmark share a single photo search.
type Landmarks struct {
	images  domain.ImageResolver
	cache   *gocache.Cache
	group   singleflight.Group
	timeout time.Duration
}

// landmarkImageTimeout bounds one shared photo search.
const landmarkImageTimeout = 10 * time.Second

func NewLandmarks(images domain.ImageResolver) *Landmarks {
	return &Landmarks{
		images:  images,
		cache:   gocache.New(gocache.NoExpiration, 0),
		timeout: landmarkImageTimeout,
	}
}

func (l *Landmarks) Match(city string) bool {
	_, ok := catalog.LandmarkCity(city)
	return ok
}

func (l *Landmarks) Stubs(city string) []domain.Stub {
	display, ok := catalog.LandmarkCity(city)
	if !ok {
		return nil
	}
	entries := catalog.Landmarks(display)
	out := make([]domain.Stub, 0, len(entries))
	for _, e := range entries {
		out = append(out, domain.Stub{
			ID:      catalog.Slug(e.Name),
			Name:    e.Name,
			Source:  domain.SourceCurated,
			Kinds:   e.Kind,
			Curated: true,
		})
	}
	return out
}

func (l *Landmarks) Detail(ctx context.Context, id string) (domain.Detail, bool) {
	name, ok := catalog.Unslug(id)
	if !ok {
		return domain.Detail{}, false
	}
	city, e, ok := findLandmark(name)
	if !ok {
		return domain.Detail{}, false
	}
	return domain.Detail{
		ID:          id,
		Name:        e.Name,
		Source:      domain.SourceCurated,
		Kinds:       e.Kind,
		Locality:    city,
		Description: e.Description,
		ImageURL:    l.image(ctx, id, city, e),
	}, true
}

func (l *Landmarks) image(ctx context.Context, id, city string, e catalog.Landmark) string {
	if e.Image != "" {
		return e.Image
	}
	if v, ok := l.cache.Get(id); ok {
		return v.(string)
	}
	// the flight ignores caller cancellation; each caller stops waiting on
	// its own ctx
	ch := l.group.DoChan(id, func() (any, error) {
		// a caller that lost the race to the previous flight finds it here
		if v, ok := l.cache.Get(id); ok {
			return v, nil
		}
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), l.timeout)
		defer cancel()
		u := l.images.Resolve(fctx, e.Name+" "+city, e.Name)
		if fctx.Err() == nil {
			l.cache.Set(id, u, gocache.NoExpiration)
		}
		return u, nil
	})
	select {
	case r := <-ch:
		return r.Val.(string)
	case <-ctx.Done():
		return catalog.PlaceholderImage(e.Name + " " + city)
	}
}

func findLandmark(name string) (string, catalog.Landmark, bool) {
	want := catalog.Fold(name)
	for _, city := range catalog.LandmarkCities() {
		for _, e := range catalog.Landmarks(city) {
			if catalog.Fold(e.Name) == want {
				return city, e, true
			}
		}
	}
	return "", catalog.Landmark{}, false
}
