package opentripmap

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"city_explorer/internal/domain"
)

type geoname struct {
	Name    string   `json:"name"`
	Country string   `json:"country"`
	Lat     *float64 `json:"lat"`
	Lon     *float64 `json:"lon"`
	Status  string   `json:"status"`
}

// Geocode resolves a city name. Every failure, transport or payload, is
// reported as domain.ErrNotFound.
func (c *Client) Geocode(ctx context.Context, name string) (domain.City, error) {
	name = strings.TrimSpace(name)
	if c.key == "" || name == "" {
		return domain.City{}, domain.ErrNotFound
	}
	g, err := c.geoname(ctx, url.Values{"name": {name}})
	if err != nil {
		log.Warn().Err(err).Str("name", name).Msg("geocoding failed")
		return domain.City{}, domain.ErrNotFound
	}
	if g.Name == "" {
		g.Name = name
	}
	return domain.City{Name: g.Name, Coordinates: domain.Coordinates{Lat: *g.Lat, Lon: *g.Lon}}, nil
}

func (c *Client) Reverse(ctx context.Context, at domain.Coordinates) (domain.City, error) {
	if c.key == "" {
		return domain.City{}, domain.ErrNotFound
	}
	g, err := c.geoname(ctx, url.Values{"lat": {coord(at.Lat)}, "lon": {coord(at.Lon)}})
	if err != nil || g.Name == "" {
		if err != nil {
			log.Warn().Err(err).Float64("lat", at.Lat).Float64("lon", at.Lon).Msg("reverse geocoding failed")
		}
		return domain.City{}, domain.ErrNotFound
	}
	return domain.City{Name: g.Name, Coordinates: domain.Coordinates{Lat: *g.Lat, Lon: *g.Lon}}, nil
}

func (c *Client) geoname(ctx context.Context, q url.Values) (geoname, error) {
	q.Set("apikey", c.key)
	var g geoname
	if err := c.rc.GetJSON(ctx, "geoname", "/places/geoname", q, &g); err != nil {
		return geoname{}, err
	}
	if g.Lat == nil || g.Lon == nil || (g.Status != "" && g.Status != "OK") {
		return geoname{}, domain.ErrNotFound
	}
	return g, nil
}

// coord formats a coordinate with six decimal digits.
func coord(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }
