package weather

import (
	"context"
	"errors"
)

var (
	// ErrNoResults is returned by a GeocodeProvider whose backend answered with an empty result set.
	ErrNoResults = errors.New("no geocoding results")

	// ErrNotFound means no step of the geocoding chain produced a candidate.
	ErrNotFound = errors.New("location not found")

	// ErrFetchFailed means the forecast backend answered without a current-conditions block.
	ErrFetchFailed = errors.New("current conditions missing from forecast response")

	// ErrTransport marks network, status or decoding failures of a backend call.
	ErrTransport = errors.New("transport error")

	// ErrBlankQuery is returned for empty or whitespace-only queries.
	ErrBlankQuery = errors.New("blank query")
)

// SearchOptions tunes a single geocoding attempt.
// An empty Language asks the provider for a language-agnostic search.
type SearchOptions struct {
	Language string
}

// GeocodeProvider abstracts a geocoding backend (e.g. Open-Meteo, Nominatim).
type GeocodeProvider interface {
	Name() string
	Search(ctx context.Context, query string, opts SearchOptions) (GeoCandidate, error)
}

// Geocoder turns a free-form place name into a single candidate.
type Geocoder interface {
	Resolve(ctx context.Context, query string) (GeoCandidate, error)
}

// ConditionsFetcher retrieves current conditions for a coordinate pair.
type ConditionsFetcher interface {
	FetchConditions(ctx context.Context, lat, lon float64) (CurrentConditions, error)
}
