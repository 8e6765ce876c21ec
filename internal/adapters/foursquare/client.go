// internal/adapters/foursquare/client.go
package foursquare

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"city_explorer/internal/adapters/remote"
	"city_explorer/internal/domain"
)

var _ domain.PlaceSource = (*Client)(nil)

const (
	searchRadius   = 100_000 // meters, the API maximum
	maxResults     = 20
	categoryFilter = "10000,16000" // Arts & Entertainment, Landmarks & Outdoors
	detailFields   = "name,location,categories,description,photos,rating,stats,website,price,hours,tel"
)

type Client struct {
	rc     *remote.Client
	key    string
	locale string
}

// New returns the commercial places adapter. Without a key every call
// returns an empty result.
func New(base, key, locale string, rps int, timeout time.Duration) *Client {
	rc := remote.New("foursquare", base, rps, timeout)
	if key != "" {
		rc.SetHeader("Authorization", key)
	}
	return &Client{rc: rc, key: key, locale: locale}
}

type place struct {
	FsqID      string `json:"fsq_id"`
	Name       string `json:"name"`
	Categories []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"categories"`
	Location struct {
		Locality         string `json:"locality"`
		Region           string `json:"region"`
		Country          string `json:"country"`
		FormattedAddress string `json:"formatted_address"`
	} `json:"location"`
	Description string `json:"description"`
	Photos      []struct {
		Prefix string `json:"prefix"`
		Suffix string `json:"suffix"`
	} `json:"photos"`
	Rating *float64 `json:"rating"`
	Stats  struct {
		TotalRatings *int `json:"total_ratings"`
	} `json:"stats"`
	Website string `json:"website"`
	Price   int    `json:"price"`
	Hours   struct {
		Display string `json:"display"`
	} `json:"hours"`
	Tel string `json:"tel"`
}

type searchResponse struct {
	Results []place `json:"results"`
}

// Search ignores q.Radius and q.Kinds: the commercial API is always queried
// with the fixed 100 km radius and category filter set.
func (c *Client) Search(ctx context.Context, q domain.SearchQuery) []domain.Stub {
	if c.key == "" {
		return nil
	}
	limit := q.Limit
	if limit <= 0 || limit > maxResults {
		limit = maxResults
	}
	params := url.Values{
		"query":      {q.Text},
		"ll":         {fmt.Sprintf("%.6f,%.6f", q.Near.Lat, q.Near.Lon)},
		"limit":      {strconv.Itoa(limit)},
		"radius":     {strconv.Itoa(searchRadius)},
		"sort":       {"POPULARITY"},
		"categories": {categoryFilter},
		"locale":     {c.locale},
	}
	var out searchResponse
	if err := c.rc.GetJSON(ctx, "search", "/places/search", params, &out); err != nil {
		log.Warn().Err(err).Str("query", q.Text).Msg("foursquare search failed")
		return nil
	}
	stubs := make([]domain.Stub, 0, len(out.Results))
	for _, p := range out.Results {
		if p.FsqID == "" || strings.TrimSpace(p.Name) == "" {
			continue
		}
		stubs = append(stubs, domain.Stub{
			ID:     p.FsqID,
			Name:   p.Name,
			Source: domain.SourceFoursquare,
			Kinds:  p.primaryCategory(),
		})
		if len(stubs) == limit {
			break
		}
	}
	return stubs
}

func (c *Client) Details(ctx context.Context, id string) (domain.Detail, bool) {
	if c.key == "" || id == "" {
		return domain.Detail{}, false
	}
	params := url.Values{"fields": {detailFields}, "locale": {c.locale}}
	var p place
	if err := c.rc.GetJSON(ctx, "details", "/places/"+url.PathEscape(id), params, &p); err != nil {
		log.Warn().Err(err).Str("id", id).Msg("foursquare details failed")
		return domain.Detail{}, false
	}
	if strings.TrimSpace(p.Name) == "" {
		return domain.Detail{}, false
	}
	d := domain.Detail{
		ID:          id,
		Name:        p.Name,
		Source:      domain.SourceFoursquare,
		Kinds:       p.primaryCategory(),
		Locality:    firstNonEmpty(p.Location.Locality, p.Location.Region, p.Location.Country),
		Description: p.Description,
		Rating:      p.Rating,
		ReviewCount: p.Stats.TotalRatings,
		Website:     p.Website,
		Phone:       strings.TrimSpace(p.Tel),
		Hours:       strings.TrimSpace(p.Hours.Display),
	}
	if p.Price >= 1 && p.Price <= 4 {
		d.PriceLevel = p.Price
	}
	if len(p.Photos) > 0 && p.Photos[0].Prefix != "" {
		d.ImageURL = p.Photos[0].Prefix + "original" + p.Photos[0].Suffix
	}
	return d, true
}

func (p place) primaryCategory() string {
	if len(p.Categories) == 0 {
		return ""
	}
	return p.Categories[0].Name
}

func firstNonEmpty(vs ...string) string {
	for _, v := range vs {
		if t := strings.TrimSpace(v); t != "" {
			return t
		}
	}
	return ""
}
