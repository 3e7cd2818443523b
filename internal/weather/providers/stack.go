package providers

import (
	"log/slog"

	"github.com/i474232898/weather-lookup/internal/weather"
)

// Endpoints holds the base URLs of the backends.
type Endpoints struct {
	Geocoding string
	Nominatim string
	Forecast  string
}

// NewResolver wires the standard geocoding chain and forecast fetcher.
// The Google step is appended only when googleAPIKey is set.
func NewResolver(cfg HTTPClientConfig, endpoints Endpoints, googleAPIKey string, logger *slog.Logger) *weather.Resolver {
	primary := NewOpenMeteoGeocoder(cfg, endpoints.Geocoding)
	secondary := NewNominatimGeocoder(cfg, endpoints.Nominatim)

	var extra []weather.GeocodeProvider
	if googleAPIKey != "" {
		extra = append(extra, NewGoogleGeocoder(cfg, googleAPIKey))
	}

	chain := weather.NewChain(logger, weather.DefaultSteps(primary, secondary, extra...)...)
	return weather.NewResolver(chain, NewOpenMeteoForecast(cfg, endpoints.Forecast), logger)
}
