package app

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"city_explorer/internal/catalog"
	"city_explorer/internal/domain"
)

// GeocodeService resolves city names: curated table first, then the shared
// cache, then a single remote lookup.
type GeocodeService struct {
	remote domain.RemoteGeocoder
	cache  domain.Cache
	ttl    time.Duration
}

// NewGeocodeService accepts a nil cache (or ttl <= 0) to disable caching.
func NewGeocodeService(r domain.RemoteGeocoder, c domain.Cache, ttl time.Duration) *GeocodeService {
	if ttl <= 0 {
		c = nil
	}
	return &GeocodeService{remote: r, cache: c, ttl: ttl}
}

func (s *GeocodeService) Resolve(ctx context.Context, name string) (domain.City, error) {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) < 2 {
		return domain.City{}, fmt.Errorf("%w: %q", domain.ErrCityNotFound, name)
	}
	if c, ok := catalog.LookupCity(name); ok {
		return c, nil
	}

	key := "geo:" + catalog.Fold(name)
	if c, ok := s.cached(ctx, key); ok {
		return c, nil
	}
	if s.remote == nil {
		return domain.City{}, fmt.Errorf("%w: %q", domain.ErrCityNotFound, name)
	}
	c, err := s.remote.Geocode(ctx, name)
	if err != nil {
		return domain.City{}, fmt.Errorf("%w: %q", domain.ErrCityNotFound, name)
	}
	s.store(ctx, key, c)
	return c, nil
}

// Reverse finds the locality containing at.
func (s *GeocodeService) Reverse(ctx context.Context, at domain.Coordinates) (domain.City, error) {
	key := fmt.Sprintf("geo:rev:%.4f,%.4f", at.Lat, at.Lon)
	if c, ok := s.cached(ctx, key); ok {
		return c, nil
	}
	if s.remote == nil {
		return domain.City{}, domain.ErrNotFound
	}
	c, err := s.remote.Reverse(ctx, at)
	if err != nil {
		return domain.City{}, err
	}
	s.store(ctx, key, c)
	return c, nil
}

func (s *GeocodeService) cached(ctx context.Context, key string) (domain.City, bool) {
	if s.cache == nil {
		return domain.City{}, false
	}
	var c domain.City
	ok, err := s.cache.Get(ctx, key, &c)
	if err != nil {
		log.Debug().Err(err).Str("key", key).Msg("geocode cache read failed")
		// a stored value that no longer decodes is dropped so the next
		// lookup refills it
		if ok {
			if err := s.cache.Del(ctx, key); err != nil {
				log.Debug().Err(err).Str("key", key).Msg("geocode cache evict failed")
			}
		}
		return domain.City{}, false
	}
	return c, ok
}

func (s *GeocodeService) store(ctx context.Context, key string, c domain.City) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, c, s.ttl); err != nil {
		log.Debug().Err(err).Str("key", key).Msg("geocode cache write failed")
	}
}
