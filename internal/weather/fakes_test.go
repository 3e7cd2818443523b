package weather_test

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/i474232898/weather-lookup/internal/weather"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type searchCall struct {
	query string
	lang  string
}

// scriptedProvider answers each Search with the next scripted response.
type scriptedProvider struct {
	name      string
	responses []scriptedResponse
	calls     []searchCall
}

type scriptedResponse struct {
	cand weather.GeoCandidate
	err  error
}

func (p *scriptedProvider) Name() string { return p.name }

func (p *scriptedProvider) Search(_ context.Context, query string, opts weather.SearchOptions) (weather.GeoCandidate, error) {
	p.calls = append(p.calls, searchCall{query: query, lang: opts.Language})
	if len(p.responses) == 0 {
		return weather.GeoCandidate{}, weather.ErrNoResults
	}
	r := p.responses[0]
	p.responses = p.responses[1:]
	return r.cand, r.err
}

type fakeFetcher struct {
	cond  weather.CurrentConditions
	err   error
	calls int
	lat   float64
	lon   float64
}

func (f *fakeFetcher) FetchConditions(_ context.Context, lat, lon float64) (weather.CurrentConditions, error) {
	f.calls++
	f.lat, f.lon = lat, lon
	return f.cond, f.err
}

var errBoom = errors.New("connection refused")
