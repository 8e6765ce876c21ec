package opentripmap

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"city_explorer/internal/catalog"
	"city_explorer/internal/domain"
)

const (
	PrimaryKinds  = "interesting_places,museums,historic,architecture"
	FallbackKinds = "cultural,natural,amusements"

	minRadius, maxRadius = 1_000, 20_000
	minLimit, maxLimit   = 3, 15
	minPopularity        = "2"
	detailLang           = "tr"
)

type feature struct {
	Xid   string `json:"xid"`
	Name  string `json:"name"`
	Kinds string `json:"kinds"`
	Point struct {
		Lon float64 `json:"lon"`
		Lat float64 `json:"lat"`
	} `json:"point"`
}

type record struct {
	Xid     string `json:"xid"`
	Name    string `json:"name"`
	Kinds   string `json:"kinds"`
	Rate    rate   `json:"rate"`
	Address struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		Suburb  string `json:"suburb"`
		County  string `json:"county"`
		State   string `json:"state"`
		Country string `json:"country"`
	} `json:"address"`
	WikipediaExtracts struct {
		Title string `json:"title"`
		Text  string `json:"text"`
	} `json:"wikipedia_extracts"`
	Info struct {
		Descr string `json:"descr"`
	} `json:"info"`
	Preview struct {
		Source string `json:"source"`
	} `json:"preview"`
	URL string `json:"url"`
}

// rate accepts both the numeric and the "3h" string forms the API emits.
type rate struct{ v *float64 }

func (r *rate) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		r.v = &n
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return nil // unknown shape: treat as absent
	}
	s = strings.TrimRight(strings.TrimSpace(s), "hH")
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		r.v = &f
	}
	return nil
}

// Search clamps radius and limit, and retries once with the broader
// fallback kinds when the first query comes back empty.
func (c *Client) Search(ctx context.Context, q domain.SearchQuery) []domain.Stub {
	if c.key == "" {
		return nil
	}
	radius := clamp(q.Radius, minRadius, maxRadius)
	limit := clamp(q.Limit, minLimit, maxLimit)
	kinds := strings.TrimSpace(q.Kinds)
	if kinds == "" {
		kinds = PrimaryKinds
	}

	stubs := c.radius(ctx, q.Near, radius, limit, kinds)
	if len(stubs) == 0 && kinds != FallbackKinds {
		log.Debug().Str("kinds", kinds).Msg("no open-data results, retrying with fallback kinds")
		stubs = c.radius(ctx, q.Near, radius, limit, FallbackKinds)
	}
	return stubs
}

func (c *Client) radius(ctx context.Context, at domain.Coordinates, radius, limit int, kinds string) []domain.Stub {
	params := url.Values{
		"radius": {strconv.Itoa(radius)},
		"lon":    {coord(at.Lon)},
		"lat":    {coord(at.Lat)},
		"kinds":  {kinds},
		"rate":   {minPopularity},
		"limit":  {strconv.Itoa(limit)},
		"format": {"json"},
		"apikey": {c.key},
	}
	var out []feature
	if err := c.rc.GetJSON(ctx, "radius", "/places/radius", params, &out); err != nil {
		log.Warn().Err(err).Str("kinds", kinds).Msg("open-data search failed")
		return nil
	}
	stubs := make([]domain.Stub, 0, len(out))
	for _, f := range out {
		if f.Xid == "" || strings.TrimSpace(f.Name) == "" {
			continue
		}
		stubs = append(stubs, domain.Stub{ID: f.Xid, Name: f.Name, Source: domain.SourceOpenTripMap, Kinds: f.Kinds})
	}
	return stubs
}

// Details resolves custom_ ids from the curated table. Everything else goes
// through the pacer, so concurrent callers are served one at a time with
// the configured pause before each request.
func (c *Client) Details(ctx context.Context, id string) (domain.Detail, bool) {
	if _, curated := catalog.Unslug(id); curated {
		if c.landmarks == nil {
			return domain.Detail{}, false
		}
		return c.landmarks.Detail(ctx, id)
	}
	if c.key == "" || id == "" {
		return domain.Detail{}, false
	}

	var rec record
	err := c.pacer.Do(ctx, func(ctx context.Context) error {
		params := url.Values{"lang": {detailLang}, "apikey": {c.key}}
		return c.rc.GetJSON(ctx, "xid", "/places/xid/"+url.PathEscape(id), params, &rec)
	})
	if err != nil {
		log.Warn().Err(err).Str("xid", id).Msg("open-data details failed")
		return domain.Detail{}, false
	}
	if strings.TrimSpace(rec.Name) == "" {
		return domain.Detail{}, false
	}

	d := domain.Detail{
		ID:       id,
		Name:     rec.Name,
		Source:   domain.SourceOpenTripMap,
		Kinds:    rec.Kinds,
		Locality: firstNonEmpty(rec.Address.City, rec.Address.Town, rec.Address.Village, rec.Address.County, rec.Address.State),
		Rating:   rec.Rate.v,
		Website:  rec.URL,
	}
	switch {
	case strings.TrimSpace(rec.WikipediaExtracts.Text) != "":
		d.Description = rec.WikipediaExtracts.Text
		d.Encyclopedic = true
	case strings.TrimSpace(rec.Info.Descr) != "":
		d.Description = rec.Info.Descr
	default:
		d.Description = synthesizeDescription(rec.Name, rec.Kinds, rec.Rate.v)
	}
	d.ImageURL = c.photo(ctx, rec)
	return d, true
}

func (c *Client) photo(ctx context.Context, rec record) string {
	if rec.Preview.Source != "" {
		return rec.Preview.Source
	}
	if c.images != nil {
		if u, ok := c.images.Lookup(ctx, rec.Name); ok {
			return u
		}
	}
	return catalog.StockPhoto(rec.Name)
}

func synthesizeDescription(name, kinds string, rating *float64) string {
	label := strings.ToLower(string(catalog.TranslateKind(kinds)))
	s := fmt.Sprintf("%s, %s arasında öne çıkan bir durak.", name, label)
	if rating != nil && *rating > 0 {
		s += fmt.Sprintf(" Popülerlik puanı %.1f/5.", *rating)
	}
	return s
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func firstNonEmpty(vs ...string) string {
	for _, v := range vs {
		if t := strings.TrimSpace(v); t != "" {
			return t
		}
	}
	return ""
}
