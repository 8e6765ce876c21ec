// Command explore aggregates places for a batch of cities and logs a
// summary per city. With no arguments it walks every curated city.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"city_explorer/internal/adapters/foursquare"
	"city_explorer/internal/adapters/observability"
	"city_explorer/internal/adapters/opentripmap"
	"city_explorer/internal/adapters/remote"
	"city_explorer/internal/adapters/unsplash"
	"city_explorer/internal/app"
	"city_explorer/internal/catalog"
	"city_explorer/internal/domain"
	"city_explorer/internal/shared"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	_ = godotenv.Load()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	cities := os.Args[1:]
	if len(cities) == 0 {
		cities = catalog.LandmarkCities()
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	log.Info().Int("cities", len(cities)).Int("workers", workers).Msg("explore starting")

	images := unsplash.New(cfg.UnsplashBase, cfg.UnsplashKey, cfg.ProviderRPS, cfg.ExternalTimeout)
	// one landmark cache and one pacer for every worker
	landmarks := app.NewLandmarks(images)
	otm := opentripmap.New(opentripmap.Options{
		Base:      cfg.OpenTripMapBase,
		Key:       cfg.OpenTripMapKey,
		RPS:       cfg.ProviderRPS,
		Timeout:   cfg.ExternalTimeout,
		Pacer:     remote.NewPacer(cfg.DetailPacing, nil),
		Images:    images,
		Landmarks: landmarks,
	})
	fsq := foursquare.New(cfg.FoursquareBase, cfg.FoursquareKey, cfg.Locale, cfg.ProviderRPS, cfg.ExternalTimeout)
	agg := app.NewAggregator(app.NewGeocodeService(otm, nil, 0), app.Sources{
		Commercial: fsq,
		OpenData:   otm,
		Landmarks:  landmarks,
		Images:     images,
	}, app.NewRandomPolicy(0), cfg.DefaultCity)

	sem := semaphore.NewWeighted(int64(workers))
	var (
		wg     sync.WaitGroup
		failed atomic.Int32
	)
	for _, city := range cities {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Warn().Err(err).Msg("explore interrupted")
			break
		}

		wg.Add(1)
		go func(city string) {
			defer wg.Done()
			defer sem.Release(1)

			res, err := agg.Aggregate(ctx, domain.Request{City: city})
			if err != nil {
				failed.Add(1)
				lvl := zerolog.WarnLevel
				if errors.Is(err, domain.ErrCityNotFound) {
					lvl = zerolog.InfoLevel
				}
				log.WithLevel(lvl).Str("city", city).Err(err).Msg("explore failed")
				return
			}
			log.Info().
				Str("city", city).
				Int("places", len(res.Places)).
				Bool("fallback", res.UsingFallback).
				Msg("explore ok")
		}(city)
	}

	wg.Wait()
	log.Info().Int32("failed", failed.Load()).Msg("explore completed")
	if failed.Load() > 0 {
		stop()
		os.Exit(1)
	}
}
