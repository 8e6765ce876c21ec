// internal/adapters/opentripmap/client.go
package opentripmap

import (
	"time"

	"city_explorer/internal/adapters/remote"
	"city_explorer/internal/domain"
)

var (
	_ domain.PlaceSource    = (*Client)(nil)
	_ domain.RemoteGeocoder = (*Client)(nil)
)

type Options struct {
	Base    string
	Key     string
	RPS     int
	Timeout time.Duration
	// Pacer serializes detail lookups; nil means 300ms pacing.
	Pacer *remote.Pacer
	// Images backs the photo chain for records without a preview.
	Images domain.ImageResolver
	// Landmarks serves custom_ ids. Optional.
	Landmarks domain.LandmarkOverride
}

// Client is both the open-data places adapter and the remote geocoder.
type Client struct {
	rc        *remote.Client
	key       string
	pacer     *remote.Pacer
	images    domain.ImageResolver
	landmarks domain.LandmarkOverride
}

func New(o Options) *Client {
	p := o.Pacer
	if p == nil {
		p = remote.NewPacer(300*time.Millisecond, nil)
	}
	return &Client{
		rc:        remote.New("opentripmap", o.Base, o.RPS, o.Timeout),
		key:       o.Key,
		pacer:     p,
		images:    o.Images,
		landmarks: o.Landmarks,
	}
}
