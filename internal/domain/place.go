package domain

type Source string

const (
	SourceFoursquare  Source = "foursquare"
	SourceOpenTripMap Source = "opentripmap"
	SourceCurated     Source = "curated"
	SourceSynthetic   Source = "synthetic"
)

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type City struct {
	Name string `json:"name"`
	Coordinates
}

// Place is the canonical record handed to callers.
type Place struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"review_count"`
	ImageURL    string   `json:"image_url"`
	Source      Source   `json:"source"`
	Website     string   `json:"website,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Hours       string   `json:"hours,omitempty"`
	PriceLevel  int      `json:"price_level,omitempty"` // 1..4, 0 when unknown
}

// Stub is a search hit that still needs a detail fetch.
type Stub struct {
	ID      string
	Name    string
	Source  Source
	Kinds   string
	Curated bool
}

// Detail is an adapter's record before normalization. Rating stays on the
// provider's own scale.
type Detail struct {
	ID           string
	Name         string
	Source       Source
	Kinds        string // raw category/kind tokens
	Locality     string
	Description  string
	Encyclopedic bool // Description came from an encyclopedic summary
	Rating       *float64
	ReviewCount  *int
	ImageURL     string
	Website      string
	Phone        string
	Hours        string // provider display string, e.g. "Tue-Sun 10:00-18:00"
	PriceLevel   int
}

type SearchQuery struct {
	Text   string // free-text query (commercial adapter)
	Kinds  string // category-tag string (open-data adapter)
	Near   Coordinates
	Radius int // meters
	Limit  int
}
