package main

import (
	"context"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"city_explorer/internal/adapters/foursquare"
	server "city_explorer/internal/adapters/http_server"
	"city_explorer/internal/adapters/observability"
	"city_explorer/internal/adapters/opentripmap"
	redisad "city_explorer/internal/adapters/redis"
	"city_explorer/internal/adapters/remote"
	"city_explorer/internal/adapters/unsplash"
	"city_explorer/internal/app"
	"city_explorer/internal/domain"
	"city_explorer/internal/shared"
)

func main() {
	// .env is optional; real environment variables win
	_ = godotenv.Load()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	// optional shared cache for geocoding
	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := rc.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable, geocode cache disabled")
		} else {
			log.Info().Str("addr", cfg.RedisAddr).Msg("redis connection ok")
			cache = rc
			defer rc.Close()
		}
		cancel()
	}

	// deps
	images := unsplash.New(cfg.UnsplashBase, cfg.UnsplashKey, cfg.ProviderRPS, cfg.ExternalTimeout)
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

	geo := app.NewGeocodeService(otm, cache, cfg.CacheTTL)
	agg := app.NewAggregator(geo, app.Sources{
		Commercial: fsq,
		OpenData:   otm,
		Landmarks:  landmarks,
		Images:     images,
	}, app.NewRandomPolicy(0), cfg.DefaultCity)

	// http
	srv := server.New()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{A: agg, G: geo})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
