package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/i474232898/weather-lookup/internal/common"
)

// User-visible error messages. No other error text is ever rendered.
const (
	MsgInvalidCity   = "Invalid city name"
	MsgFetchingError = "Error fetching weather"
)

// State is the lifecycle of one resolution.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateError   State = "error"
)

// Outcome is the immutable result of one resolution.
type Outcome struct {
	Query   string          `json:"query"`
	State   State           `json:"state"`
	Reading *WeatherReading `json:"reading,omitempty"`
	Message string          `json:"error,omitempty"`
	Err     error           `json:"-"`
}

// UserMessage maps a resolution error to one of the two rendered messages.
func UserMessage(err error) string {
	if errors.Is(err, ErrNotFound) {
		return MsgInvalidCity
	}
	return MsgFetchingError
}

// Resolver orchestrates geocoding, the weather fetch and reading assembly.
type Resolver struct {
	geocoder Geocoder
	fetcher  ConditionsFetcher
	logger   *slog.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(geocoder Geocoder, fetcher ConditionsFetcher, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		geocoder: geocoder,
		fetcher:  fetcher,
		logger:   logger,
	}
}

// Resolve runs the pipeline for one query. Steps run strictly in sequence.
func (r *Resolver) Resolve(ctx context.Context, query string) (WeatherReading, error) {
	if common.IsBlank(query) {
		return WeatherReading{}, ErrBlankQuery
	}

	cand, err := r.geocoder.Resolve(ctx, query)
	if err != nil {
		r.logger.Info("no location for query", "query", query, "error", err)
		return WeatherReading{}, fmt.Errorf("resolving %q: %w", query, ErrNotFound)
	}

	cond, err := r.fetcher.FetchConditions(ctx, cand.Latitude, cand.Longitude)
	if err != nil {
		r.logger.Error("weather fetch failed", "query", query,
			"lat", cand.Latitude, "lon", cand.Longitude, "error", err)
		return WeatherReading{}, fmt.Errorf("fetching conditions for %q: %w", query, err)
	}

	reading := Assemble(cand, cond)
	r.logger.Debug("reading assembled", "query", query, "city", reading.City,
		"temp", reading.TemperatureLabel, "icon", string(reading.IconClass))
	return reading, nil
}

// Run resolves the query and wraps the result as an Outcome. Blank queries
// yield an idle outcome.
func (r *Resolver) Run(ctx context.Context, query string) Outcome {
	reading, err := r.Resolve(ctx, query)
	switch {
	case errors.Is(err, ErrBlankQuery):
		return Outcome{Query: query, State: StateIdle}
	case err != nil:
		return Outcome{Query: query, State: StateError, Message: UserMessage(err), Err: err}
	default:
		return Outcome{Query: query, State: StateSuccess, Reading: &reading}
	}
}
