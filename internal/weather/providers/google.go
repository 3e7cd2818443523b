package providers

import (
	"context"
	"fmt"
	"sync"

	"github.com/kelvins/geocoder"
	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-lookup/internal/common"
	"github.com/i474232898/weather-lookup/internal/weather"
)

// geocoder keeps its API key in a package variable.
var googleKeyMu sync.Mutex

// GoogleGeocoder implements weather.GeocodeProvider on top of the Google
// Geocoding API. It is only wired into the chain when an API key is configured.
type GoogleGeocoder struct {
	name    string
	apiKey  string
	circuit *gobreaker.CircuitBreaker

	geocode func(geocoder.Address) (geocoder.Location, error)
}

func NewGoogleGeocoder(cfg HTTPClientConfig, apiKey string) *GoogleGeocoder {
	return &GoogleGeocoder{
		name:    "google",
		apiKey:  apiKey,
		circuit: newBreaker("google", cfg.BreakerTimeout),
		geocode: geocoder.Geocoding,
	}
}

func (p *GoogleGeocoder) Name() string {
	return p.name
}

func (p *GoogleGeocoder) Search(ctx context.Context, query string, _ weather.SearchOptions) (weather.GeoCandidate, error) {
	if p.apiKey == "" {
		return weather.GeoCandidate{}, fmt.Errorf("%w: google geocoder api key is not configured", weather.ErrTransport)
	}

	type result struct {
		loc geocoder.Location
		err error
	}
	done := make(chan result, 1)

	go func() {
		v, err := p.circuit.Execute(func() (interface{}, error) {
			googleKeyMu.Lock()
			defer googleKeyMu.Unlock()
			geocoder.ApiKey = p.apiKey
			return p.geocode(geocoder.Address{City: query})
		})
		if err != nil {
			done <- result{err: err}
			return
		}
		loc, _ := v.(geocoder.Location)
		done <- result{loc: loc}
	}()

	select {
	case <-ctx.Done():
		return weather.GeoCandidate{}, fmt.Errorf("%w: %w", weather.ErrTransport, ctx.Err())
	case r := <-done:
		if r.err != nil {
			return weather.GeoCandidate{}, classifyGoogleError(r.err)
		}
		return weather.GeoCandidate{
			Latitude:    r.loc.Latitude,
			Longitude:   r.loc.Longitude,
			DisplayName: query,
		}, nil
	}
}

func classifyGoogleError(err error) error {
	if common.HasAny(err.Error(), "ZERO_RESULTS", "no results") {
		return weather.ErrNoResults
	}
	return fmt.Errorf("%w: %w", weather.ErrTransport, err)
}
