package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-lookup/internal/weather"
)

const DefaultGeocodingBaseURL = "https://geocoding-api.open-meteo.com"

// OpenMeteoGeocoder implements weather.GeocodeProvider for the Open-Meteo geocoding API.
type OpenMeteoGeocoder struct {
	name    string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewOpenMeteoGeocoder(cfg HTTPClientConfig, baseURL string) *OpenMeteoGeocoder {
	if baseURL == "" {
		baseURL = DefaultGeocodingBaseURL
	}
	return &OpenMeteoGeocoder{
		name:    "openmeteo-geocoding",
		baseURL: strings.TrimRight(baseURL, "/") + "/v1/search",
		httpCfg: cfg,
		circuit: newBreaker("openmeteo-geocoding", cfg.BreakerTimeout),
	}
}

func (p *OpenMeteoGeocoder) Name() string {
	return p.name
}

func (p *OpenMeteoGeocoder) Search(ctx context.Context, query string, opts weather.SearchOptions) (weather.GeoCandidate, error) {
	buildRequest := func(ctx context.Context) (*http.Request, error) {
		values := url.Values{}
		values.Set("name", query)
		values.Set("count", "1")
		if opts.Language != "" {
			values.Set("language", opts.Language)
		}

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	}

	resp, err := doRequest(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return weather.GeoCandidate{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Results []struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
			Name      string  `json:"name"`
			Country   string  `json:"country"`
		} `json:"results"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.GeoCandidate{}, fmt.Errorf("%w: decoding geocoding response: %w", weather.ErrTransport, err)
	}

	if len(payload.Results) == 0 {
		return weather.GeoCandidate{}, weather.ErrNoResults
	}

	first := payload.Results[0]
	return weather.GeoCandidate{
		Latitude:    first.Latitude,
		Longitude:   first.Longitude,
		DisplayName: first.Name,
		Country:     first.Country,
	}, nil
}
