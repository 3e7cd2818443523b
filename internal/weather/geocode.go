package weather

import (
	"context"
	"errors"
	"log/slog"
)

// LanguageFunc picks the language tag for one step from the preferred tag.
// A nil LanguageFunc means the step is language-agnostic.
type LanguageFunc func(preferred string) string

// Preferred uses the tag derived from the query's script.
func Preferred(preferred string) string { return preferred }

// Alternate uses the other tag of the bilingual pair.
func Alternate(preferred string) string { return OtherLanguage(preferred) }

// GeocodeStep is one attempt in the fallback chain.
type GeocodeStep struct {
	Provider GeocodeProvider
	Language LanguageFunc
}

// DefaultSteps builds the standard order: primary in the preferred language,
// primary in the other language, then the free-text secondary and any extra
// language-agnostic providers.
func DefaultSteps(primary, secondary GeocodeProvider, extra ...GeocodeProvider) []GeocodeStep {
	steps := []GeocodeStep{
		{Provider: primary, Language: Preferred},
		{Provider: primary, Language: Alternate},
		{Provider: secondary},
	}
	for _, p := range extra {
		steps = append(steps, GeocodeStep{Provider: p})
	}
	return steps
}

// Chain resolves a query by trying each step in order until one yields a candidate.
type Chain struct {
	steps  []GeocodeStep
	logger *slog.Logger
}

// NewChain creates a Chain. A nil logger falls back to slog.Default.
func NewChain(logger *slog.Logger, steps ...GeocodeStep) *Chain {
	if logger == nil {
		logger = slog.Default()
	}
	return &Chain{steps: steps, logger: logger}
}

// Resolve returns the first candidate of the first successful step, or
// ErrNotFound. Provider failures never abort the chain.
func (c *Chain) Resolve(ctx context.Context, query string) (GeoCandidate, error) {
	hint := DetectScript(query)
	preferred := hint.Language()
	c.logger.Debug("geocoding query", "query", query, "script", hint.String(), "preferred_lang", preferred)

	for i, step := range c.steps {
		if err := ctx.Err(); err != nil {
			c.logger.Warn("geocoding aborted", "query", query, "step", i, "error", err)
			break
		}

		var opts SearchOptions
		if step.Language != nil {
			opts.Language = step.Language(preferred)
		}

		cand, err := step.Provider.Search(ctx, query, opts)
		switch {
		case err == nil:
			c.logger.Debug("geocoding attempt succeeded",
				"provider", step.Provider.Name(), "step", i, "lang", opts.Language,
				"lat", cand.Latitude, "lon", cand.Longitude, "name", cand.DisplayName)
			return cand, nil
		case errors.Is(err, ErrNoResults):
			c.logger.Debug("geocoding attempt empty",
				"provider", step.Provider.Name(), "step", i, "lang", opts.Language)
		default:
			c.logger.Warn("geocoding attempt failed",
				"provider", step.Provider.Name(), "step", i, "lang", opts.Language, "error", err)
		}
	}

	return GeoCandidate{}, ErrNotFound
}
