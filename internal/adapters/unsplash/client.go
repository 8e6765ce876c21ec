// internal/adapters/unsplash/client.go
package unsplash

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"city_explorer/internal/adapters/remote"
	"city_explorer/internal/catalog"
	"city_explorer/internal/domain"
)

var _ domain.ImageResolver = (*Client)(nil)

type Client struct {
	rc  *remote.Client
	key string
}

// New returns a photo-search client. An empty key is allowed: every call
// then answers with a placeholder and never touches the network.
func New(base, key string, rps int, timeout time.Duration) *Client {
	return &Client{rc: remote.New("unsplash", base, rps, timeout), key: key}
}

type searchResponse struct {
	Total   int `json:"total"`
	Results []struct {
		ID   string `json:"id"`
		URLs struct {
			Raw     string `json:"raw"`
			Full    string `json:"full"`
			Regular string `json:"regular"`
			Small   string `json:"small"`
		} `json:"urls"`
	} `json:"results"`
}

func (c *Client) Lookup(ctx context.Context, query string) (string, bool) {
	q := strings.TrimSpace(query)
	if c.key == "" || q == "" {
		return "", false
	}
	params := url.Values{
		"query":     {q},
		"client_id": {c.key},
		"per_page":  {"1"},
	}
	var out searchResponse
	if err := c.rc.GetJSON(ctx, "search_photos", "/search/photos", params, &out); err != nil {
		log.Warn().Err(err).Str("query", q).Msg("photo search failed")
		return "", false
	}
	for _, r := range out.Results {
		for _, u := range []string{r.URLs.Regular, r.URLs.Small, r.URLs.Full, r.URLs.Raw} {
			if u != "" {
				return u, true
			}
		}
	}
	return "", false
}

// Resolve tries primary, then secondary, then falls back to a placeholder
// built from the query text.
func (c *Client) Resolve(ctx context.Context, primary, secondary string) string {
	if u, ok := c.Lookup(ctx, primary); ok {
		return u
	}
	if strings.TrimSpace(secondary) != "" && !strings.EqualFold(strings.TrimSpace(secondary), strings.TrimSpace(primary)) {
		if u, ok := c.Lookup(ctx, secondary); ok {
			return u
		}
	}
	if strings.TrimSpace(primary) == "" {
		return catalog.PlaceholderImage(secondary)
	}
	return catalog.PlaceholderImage(primary)
}
