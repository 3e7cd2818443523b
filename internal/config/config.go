package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port     string     `env:"PORT" envDefault:"8080"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`

	// HTTPTimeout bounds every outbound provider call.
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
	UserAgent   string        `env:"USER_AGENT" envDefault:"weather-lookup/1.0"`

	GeocodingBaseURL string `env:"GEOCODING_BASE_URL" envDefault:"https://geocoding-api.open-meteo.com"`
	NominatimBaseURL string `env:"NOMINATIM_BASE_URL" envDefault:"https://nominatim.openstreetmap.org"`
	ForecastBaseURL  string `env:"FORECAST_BASE_URL" envDefault:"https://api.open-meteo.com"`

	// GoogleGeocoderAPIKey enables the Google geocoding step when set.
	GoogleGeocoderAPIKey string `env:"GOOGLE_GEOCODER_API_KEY"`

	BreakerTimeout time.Duration `env:"BREAKER_TIMEOUT" envDefault:"2m"`

	// RefreshInterval re-runs the last query on a schedule (0 = disabled).
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL" envDefault:"0s"`

	// DefaultQuery is submitted once at startup when set.
	DefaultQuery string `env:"DEFAULT_QUERY"`
}

// Load reads configuration from an optional .env file and the environment.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	cfg, err := env.ParseAs[AppConfig]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.HTTPTimeout <= 0 {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT %s: must be positive", cfg.HTTPTimeout)
	}
	if cfg.RefreshInterval < 0 {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL %s: must not be negative", cfg.RefreshInterval)
	}
	return &cfg, nil
}
