package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-lookup/internal/common"
	"github.com/i474232898/weather-lookup/internal/weather"
)

const DefaultNominatimBaseURL = "https://nominatim.openstreetmap.org"

// NominatimGeocoder implements weather.GeocodeProvider for the OpenStreetMap
// Nominatim free-text search. It ignores SearchOptions.Language.
type NominatimGeocoder struct {
	name    string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewNominatimGeocoder(cfg HTTPClientConfig, baseURL string) *NominatimGeocoder {
	if baseURL == "" {
		baseURL = DefaultNominatimBaseURL
	}
	return &NominatimGeocoder{
		name:    "nominatim",
		baseURL: strings.TrimRight(baseURL, "/") + "/search",
		httpCfg: cfg,
		circuit: newBreaker("nominatim", cfg.BreakerTimeout),
	}
}

func (p *NominatimGeocoder) Name() string {
	return p.name
}

func (p *NominatimGeocoder) Search(ctx context.Context, query string, _ weather.SearchOptions) (weather.GeoCandidate, error) {
	buildRequest := func(ctx context.Context) (*http.Request, error) {
		values := url.Values{}
		values.Set("format", "json")
		values.Set("q", query)
		values.Set("limit", "1")

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	}

	resp, err := doRequest(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return weather.GeoCandidate{}, err
	}
	defer resp.Body.Close()

	// Nominatim encodes coordinates as strings.
	var payload []struct {
		Lat         string `json:"lat"`
		Lon         string `json:"lon"`
		DisplayName string `json:"display_name"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.GeoCandidate{}, fmt.Errorf("%w: decoding nominatim response: %w", weather.ErrTransport, err)
	}

	if len(payload) == 0 {
		return weather.GeoCandidate{}, weather.ErrNoResults
	}

	first := payload[0]
	lat, err := strconv.ParseFloat(strings.TrimSpace(first.Lat), 64)
	if err != nil {
		return weather.GeoCandidate{}, fmt.Errorf("%w: invalid latitude %q: %w", weather.ErrTransport, first.Lat, err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(first.Lon), 64)
	if err != nil {
		return weather.GeoCandidate{}, fmt.Errorf("%w: invalid longitude %q: %w", weather.ErrTransport, first.Lon, err)
	}

	return weather.GeoCandidate{
		Latitude:    lat,
		Longitude:   lon,
		DisplayName: common.FirstNonBlank(first.DisplayName, query),
	}, nil
}
