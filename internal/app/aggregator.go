package app

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"city_explorer/internal/catalog"
	"city_explorer/internal/domain"
)

const (
	cityQuery         = "tourist attraction"
	citySearchLimit   = 20
	topUpThreshold    = 5
	openDataCap       = 5
	openDataRadius    = 10_000 // meters
	commercialCap     = 10
	commercialWorkers = 5
	categoryCap       = 5
	categoryRadius    = 20_000
)

// Sources groups the upstreams the aggregator fans out to. Any nil source
// behaves as one that always returns nothing.
type Sources struct {
	Commercial domain.PlaceSource
	OpenData   domain.PlaceSource
	Landmarks  domain.LandmarkOverride
	Images     domain.ImageResolver
}

type Aggregator struct {
	geo         *GeocodeService
	src         Sources
	synth       SyntheticDataPolicy
	norm        *Normalizer
	defaultCity string
	shuffle     func(n int, swap func(i, j int))
}

func NewAggregator(geo *GeocodeService, src Sources, synth SyntheticDataPolicy, defaultCity string) *Aggregator {
	if defaultCity == "" {
		defaultCity = "İstanbul"
	}
	return &Aggregator{
		geo:         geo,
		src:         src,
		synth:       synth,
		norm:        NewNormalizer(synth),
		defaultCity: defaultCity,
		shuffle:     rand.Shuffle,
	}
}

// Aggregate runs one city or category request. Empty live results are
// replaced by synthetic data; only an unknown city or an aborted request
// is an error.
func (a *Aggregator) Aggregate(ctx context.Context, req domain.Request) (res domain.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("city", req.City).Str("category", req.CategoryID).Msg("aggregation panicked")
			res, err = domain.Result{Stage: domain.StageFallback}, fmt.Errorf("%w: %v", domain.ErrFetchFailed, r)
		}
		log.Info().
			Str("city", req.City).
			Str("category", req.CategoryID).
			Int("places", len(res.Places)).
			Bool("fallback", res.UsingFallback).
			Str("stage", string(res.Stage)).
			Err(err).
			Msg("aggregation finished")
	}()
	if strings.TrimSpace(req.City) != "" {
		return a.city(ctx, strings.TrimSpace(req.City))
	}
	return a.category(ctx, req)
}

// Categories lists the curated category definitions in display order.
func (a *Aggregator) Categories() []domain.CategoryDefinition {
	return catalog.CategoryDefinitions()
}

// Place fetches and normalizes one item for a detail card.
func (a *Aggregator) Place(ctx context.Context, source domain.Source, id string) (domain.Place, error) {
	var (
		d  domain.Detail
		ok bool
	)
	switch {
	case strings.HasPrefix(id, catalog.CustomPrefix) && a.src.Landmarks != nil:
		d, ok = a.src.Landmarks.Detail(ctx, id)
	case source == domain.SourceFoursquare && a.src.Commercial != nil:
		d, ok = a.src.Commercial.Details(ctx, id)
	case source == domain.SourceOpenTripMap && a.src.OpenData != nil:
		d, ok = a.src.OpenData.Details(ctx, id)
	}
	if !ok {
		if ctx.Err() != nil {
			return domain.Place{}, fmt.Errorf("%w: %w", domain.ErrFetchFailed, ctx.Err())
		}
		return domain.Place{}, fmt.Errorf("%w: %s/%s", domain.ErrNotFound, source, id)
	}
	p, ok := a.norm.Normalize(a.withImage(ctx, d, ""), domain.DetailCard, "")
	if !ok {
		return domain.Place{}, fmt.Errorf("%w: %s/%s", domain.ErrNotFound, source, id)
	}
	return p, nil
}

func (a *Aggregator) city(ctx context.Context, name string) (domain.Result, error) {
	stage(name, domain.StageGeocoding)
	city, err := a.geo.Resolve(ctx, name)
	if err != nil {
		return domain.Result{Stage: domain.StageGeocoding}, err
	}

	if l := a.src.Landmarks; l != nil && (l.Match(name) || l.Match(city.Name)) {
		stubs := l.Stubs(name)
		if len(stubs) == 0 {
			stubs = l.Stubs(city.Name)
		}
		stage(name, domain.StageDetailing)
		details := a.concurrentDetails(ctx, nil, stubs, len(stubs), city.Name)
		places := a.normalizeAll(details, domain.CityGuide, city.Name)
		if len(places) > 0 {
			stage(name, domain.StageDone)
			return domain.Result{Places: places, Stage: domain.StageDone}, nil
		}
		return a.cityFallback(ctx, city)
	}

	stage(name, domain.StageSearching)
	stubsA := search(ctx, a.src.Commercial, domain.SearchQuery{Text: cityQuery, Near: city.Coordinates, Limit: citySearchLimit})
	var stubsB []domain.Stub
	if len(stubsA) < topUpThreshold {
		stubsB = search(ctx, a.src.OpenData, domain.SearchQuery{Near: city.Coordinates, Radius: openDataRadius, Limit: openDataCap})
	}

	stage(name, domain.StageDetailing)
	detailsA := a.concurrentDetails(ctx, a.src.Commercial, stubsA, commercialCap, city.Name)
	detailsB := a.sequentialDetails(ctx, a.src.OpenData, stubsB, openDataCap, city.Name)

	stage(name, domain.StageNormalizing)
	placesA := a.normalizeAll(detailsA, domain.CityGuide, city.Name)
	placesB := a.normalizeAll(detailsB, domain.CityGuide, city.Name)
	places := dedupe(append(placesA, placesB...))
	if len(places) == 0 {
		return a.cityFallback(ctx, city)
	}
	if len(placesA) > 0 && len(placesB) > 0 {
		a.shuffle(len(places), func(i, j int) { places[i], places[j] = places[j], places[i] })
	}
	stage(name, domain.StageDone)
	return domain.Result{Places: places, Stage: domain.StageDone}, nil
}

func (a *Aggregator) cityFallback(ctx context.Context, city domain.City) (domain.Result, error) {
	if err := ctx.Err(); err != nil {
		return domain.Result{Stage: domain.StageFallback}, fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
	}
	stage(city.Name, domain.StageFallback)
	return domain.Result{Places: a.synth.CityFallback(city.Name), UsingFallback: true, Stage: domain.StageFallback}, nil
}

func (a *Aggregator) category(ctx context.Context, req domain.Request) (domain.Result, error) {
	def, ok := catalog.Category(req.CategoryID)
	if !ok {
		return a.categoryFallback(ctx, req.CategoryID, a.defaultCity)
	}

	label := def.ID
	stage(label, domain.StageGeocoding)
	var origin domain.City
	if req.Near != nil {
		origin = domain.City{Name: a.defaultCity, Coordinates: *req.Near}
		if c, err := a.geo.Reverse(ctx, *req.Near); err == nil && c.Name != "" {
			origin.Name = c.Name
		}
	} else {
		c, err := a.geo.Resolve(ctx, a.defaultCity)
		if err != nil {
			return a.categoryFallback(ctx, def.ID, a.defaultCity)
		}
		origin = c
	}

	stage(label, domain.StageSearching)
	stubsA := search(ctx, a.src.Commercial, domain.SearchQuery{Text: def.Query, Near: origin.Coordinates, Limit: categoryCap})
	if len(stubsA) > categoryCap {
		stubsA = stubsA[:categoryCap]
	}
	var stubsB []domain.Stub
	if missing := categoryCap - len(stubsA); missing > 0 {
		stubsB = search(ctx, a.src.OpenData, domain.SearchQuery{Kinds: def.Kinds, Near: origin.Coordinates, Radius: categoryRadius, Limit: missing})
	}

	stage(label, domain.StageDetailing)
	detailsA := a.concurrentDetails(ctx, a.src.Commercial, stubsA, categoryCap, origin.Name)
	detailsB := a.sequentialDetails(ctx, a.src.OpenData, stubsB, categoryCap-len(stubsA), origin.Name)

	stage(label, domain.StageNormalizing)
	placesA := a.normalizeAll(detailsA, domain.DetailCard, origin.Name)
	placesB := a.normalizeAll(detailsB, domain.DetailCard, origin.Name)
	places := dedupe(append(placesA, placesB...))
	if len(places) > categoryCap {
		places = places[:categoryCap]
	}
	if len(places) == 0 {
		return a.categoryFallback(ctx, def.ID, origin.Name)
	}
	if len(placesA) > 0 && len(placesB) > 0 {
		a.shuffle(len(places), func(i, j int) { places[i], places[j] = places[j], places[i] })
	}
	stage(label, domain.StageDone)
	return domain.Result{Places: places, Stage: domain.StageDone}, nil
}

func (a *Aggregator) categoryFallback(ctx context.Context, id, location string) (domain.Result, error) {
	if err := ctx.Err(); err != nil {
		return domain.Result{Stage: domain.StageFallback}, fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
	}
	stage(id, domain.StageFallback)
	return domain.Result{Places: a.synth.CategoryFallback(id, location), UsingFallback: true, Stage: domain.StageFallback}, nil
}

// fetchDetail sends curated stubs to the landmark override whatever list
// they arrived in; everything else goes to src.
func (a *Aggregator) fetchDetail(ctx context.Context, src domain.PlaceSource, s domain.Stub) (domain.Detail, bool) {
	if s.Curated {
		if a.src.Landmarks == nil {
			return domain.Detail{}, false
		}
		return a.src.Landmarks.Detail(ctx, s.ID)
	}
	if src == nil {
		return domain.Detail{}, false
	}
	return src.Details(ctx, s.ID)
}

// concurrentDetails keeps input order; failed items are dropped.
func (a *Aggregator) concurrentDetails(ctx context.Context, src domain.PlaceSource, stubs []domain.Stub, max int, city string) []domain.Detail {
	if len(stubs) == 0 {
		return nil
	}
	if len(stubs) > max {
		stubs = stubs[:max]
	}
	slots := make([]*domain.Detail, len(stubs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(commercialWorkers)
	for i, s := range stubs {
		g.Go(func() error {
			d, ok := a.fetchDetail(gctx, src, s)
			if !ok {
				return nil
			}
			d = a.withImage(gctx, d, city)
			slots[i] = &d
			return nil
		})
	}
	_ = g.Wait()
	out := make([]domain.Detail, 0, len(slots))
	for _, d := range slots {
		if d != nil {
			out = append(out, *d)
		}
	}
	return out
}

// sequentialDetails fetches one item at a time; the open-data adapter
// paces each call on its own.
func (a *Aggregator) sequentialDetails(ctx context.Context, src domain.PlaceSource, stubs []domain.Stub, max int, city string) []domain.Detail {
	if max <= 0 {
		return nil
	}
	if len(stubs) > max {
		stubs = stubs[:max]
	}
	out := make([]domain.Detail, 0, len(stubs))
	for _, s := range stubs {
		if ctx.Err() != nil {
			break
		}
		d, ok := a.fetchDetail(ctx, src, s)
		if !ok {
			continue
		}
		out = append(out, a.withImage(ctx, d, city))
	}
	return out
}

func (a *Aggregator) withImage(ctx context.Context, d domain.Detail, city string) domain.Detail {
	if d.ImageURL != "" || a.src.Images == nil || strings.TrimSpace(d.Name) == "" {
		return d
	}
	primary := strings.TrimSpace(d.Name + " " + firstNonEmpty(d.Locality, city))
	d.ImageURL = a.src.Images.Resolve(ctx, primary, d.Name)
	return d
}

func (a *Aggregator) normalizeAll(details []domain.Detail, rc domain.ReviewContext, location string) []domain.Place {
	out := make([]domain.Place, 0, len(details))
	for _, d := range details {
		if p, ok := a.norm.Normalize(d, rc, location); ok {
			out = append(out, p)
		}
	}
	return out
}

func search(ctx context.Context, s domain.PlaceSource, q domain.SearchQuery) []domain.Stub {
	if s == nil || ctx.Err() != nil {
		return nil
	}
	return s.Search(ctx, q)
}

// dedupe drops later places whose id was already seen. Ids are only
// compared within one response.
func dedupe(places []domain.Place) []domain.Place {
	seen := make(map[string]struct{}, len(places))
	out := places[:0]
	for _, p := range places {
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out
}

func stage(subject string, s domain.Stage) {
	log.Debug().Str("subject", subject).Str("stage", string(s)).Msg("aggregation stage")
}
