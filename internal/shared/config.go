package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	LogLevel    string
	HTTPAddr    string
	MetricsAddr string

	RedisAddr string // empty disables the shared geocode cache
	RedisDB   int
	RedisPass string
	CacheTTL  time.Duration

	FoursquareBase  string
	FoursquareKey   string
	OpenTripMapBase string
	OpenTripMapKey  string
	UnsplashBase    string
	UnsplashKey     string
	Locale          string

	DefaultCity     string
	ExternalTimeout time.Duration
	DetailPacing    time.Duration
	ProviderRPS     int
	Workers         int
}

func Load() Config {
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		LogLevel:    env("LOG_LEVEL", "info"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),

		RedisAddr: env("REDIS_ADDR", ""),
		RedisPass: env("REDIS_PASSWORD", ""),
		RedisDB:   atoi("REDIS_DB", 0),
		CacheTTL:  time.Duration(atoi("CACHE_TTL_SECONDS", 86400)) * time.Second,

		FoursquareBase:  env("FOURSQUARE_BASE_URL", "https://api.foursquare.com/v3"),
		FoursquareKey:   env("FOURSQUARE_API_KEY", ""),
		OpenTripMapBase: env("OPENTRIPMAP_BASE_URL", "https://api.opentripmap.com/0.1/en"),
		OpenTripMapKey:  env("OPENTRIPMAP_API_KEY", ""),
		UnsplashBase:    env("UNSPLASH_BASE_URL", "https://api.unsplash.com"),
		UnsplashKey:     env("UNSPLASH_ACCESS_KEY", ""),
		Locale:          env("LOCALE", "tr"),

		DefaultCity:     env("DEFAULT_CITY", "İstanbul"),
		ExternalTimeout: time.Duration(atoi("EXTERNAL_TIMEOUT_SECONDS", 10)) * time.Second,
		DetailPacing:    time.Duration(atoi("DETAIL_PACING_MS", 300)) * time.Millisecond,
		ProviderRPS:     atoi("PROVIDER_RPS", 5),
		Workers:         atoi("EXPLORE_WORKERS", 4),
	}
	// every provider degrades to empty results without a key
	for k, v := range map[string]string{
		"FOURSQUARE_API_KEY":  c.FoursquareKey,
		"OPENTRIPMAP_API_KEY": c.OpenTripMapKey,
		"UNSPLASH_ACCESS_KEY": c.UnsplashKey,
	} {
		if v == "" {
			log.Warn().Str("key", k).Msg("API key is empty")
		}
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func atoi(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Warn().Str("key", k).Str("value", v).Msg("not an integer, using default")
	}
	return def
}
