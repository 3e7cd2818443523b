package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kelvins/geocoder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-lookup/internal/weather"
)

func TestGoogleGeocoderSearch(t *testing.T) {
	p := NewGoogleGeocoder(testConfig(), "test-key")

	var gotAddress geocoder.Address
	p.geocode = func(a geocoder.Address) (geocoder.Location, error) {
		gotAddress = a
		assert.Equal(t, "test-key", geocoder.ApiKey)
		return geocoder.Location{Latitude: -33.8688, Longitude: 151.2093}, nil
	}

	cand, err := p.Search(context.Background(), "Sydney", weather.SearchOptions{Language: "en"})
	require.NoError(t, err)
	assert.Equal(t, "Sydney", gotAddress.City)
	assert.Equal(t, weather.GeoCandidate{Latitude: -33.8688, Longitude: 151.2093, DisplayName: "Sydney"}, cand)
}

func TestGoogleGeocoderErrors(t *testing.T) {
	_, err := NewGoogleGeocoder(testConfig(), "").Search(context.Background(), "x", weather.SearchOptions{})
	assert.ErrorIs(t, err, weather.ErrTransport)

	p := NewGoogleGeocoder(testConfig(), "k")
	p.geocode = func(geocoder.Address) (geocoder.Location, error) {
		return geocoder.Location{}, errors.New("ZERO_RESULTS")
	}
	_, err = p.Search(context.Background(), "x", weather.SearchOptions{})
	assert.ErrorIs(t, err, weather.ErrNoResults)

	p.geocode = func(geocoder.Address) (geocoder.Location, error) {
		return geocoder.Location{}, errors.New("REQUEST_DENIED")
	}
	_, err = p.Search(context.Background(), "x", weather.SearchOptions{})
	assert.ErrorIs(t, err, weather.ErrTransport)
}

func TestGoogleGeocoderHonoursContext(t *testing.T) {
	p := NewGoogleGeocoder(testConfig(), "k")
	release := make(chan struct{})
	defer close(release)
	p.geocode = func(geocoder.Address) (geocoder.Location, error) {
		<-release
		return geocoder.Location{}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := p.Search(ctx, "x", weather.SearchOptions{})
	require.ErrorIs(t, err, weather.ErrTransport)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
