package domain

type Stage string

const (
	StageGeocoding   Stage = "geocoding"
	StageSearching   Stage = "searching"
	StageDetailing   Stage = "detailing"
	StageNormalizing Stage = "normalizing"
	StageDone        Stage = "done"
	StageFallback    Stage = "fallback"
)

// Request names either a city or a category; City wins when both are set.
type Request struct {
	City       string
	CategoryID string
	Near       *Coordinates // optional origin for category requests
}

type Result struct {
	Places        []Place `json:"places"`
	UsingFallback bool    `json:"using_fallback"`
	Stage         Stage   `json:"stage"`
}

// ReviewContext selects which review-count range synthesized values use.
type ReviewContext int

const (
	DetailCard ReviewContext = iota // 10..200
	CityGuide                       // 100..1000
)
