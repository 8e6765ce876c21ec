package domain

import (
	"context"
	"time"
)

// PlaceSource is implemented by each provider adapter. Neither method
// surfaces transport faults: a failed search is an empty slice, a failed
// detail fetch is ok == false.
type PlaceSource interface {
	Search(ctx context.Context, q SearchQuery) []Stub
	Details(ctx context.Context, id string) (Detail, bool)
}

type RemoteGeocoder interface {
	Geocode(ctx context.Context, name string) (City, error)
	Reverse(ctx context.Context, c Coordinates) (City, error)
}

type ImageResolver interface {
	// Resolve never returns "".
	Resolve(ctx context.Context, primary, secondary string) string
	// Lookup reports whether the photo search found anything for query.
	Lookup(ctx context.Context, query string) (string, bool)
}

// LandmarkOverride serves hand-authored landmark data for recognized cities.
type LandmarkOverride interface {
	Match(city string) bool
	Stubs(city string) []Stub
	Detail(ctx context.Context, id string) (Detail, bool)
}

type Cache interface {
	// Get reports true with a non-nil error when a value is stored but
	// cannot be decoded into dst.
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}
