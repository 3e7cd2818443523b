// Package main implements a one-shot terminal weather lookup.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/i474232898/weather-lookup/internal/config"
	"github.com/i474232898/weather-lookup/internal/session"
	"github.com/i474232898/weather-lookup/internal/weather"
	"github.com/i474232898/weather-lookup/internal/weather/providers"
)

var (
	verbose = flag.Bool("verbose", false, "Enable debug logging of every provider attempt")
	noColor = flag.Bool("no-color", false, "Disable colored output")
)

func main() {
	flag.Parse()

	query := strings.Join(flag.Args(), " ")
	if strings.TrimSpace(query) == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <location>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	level := slog.LevelError
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *noColor {
		color.NoColor = true
	}

	resolver := providers.NewResolver(providers.HTTPClientConfig{
		Client:         &http.Client{Timeout: cfg.HTTPTimeout},
		UserAgent:      cfg.UserAgent,
		BreakerTimeout: cfg.BreakerTimeout,
	}, providers.Endpoints{
		Geocoding: cfg.GeocodingBaseURL,
		Nominatim: cfg.NominatimBaseURL,
		Forecast:  cfg.ForecastBaseURL,
	}, cfg.GoogleGeocoderAPIKey, logger)

	fmt.Fprintln(os.Stderr, "Loading...")
	snap, _ := session.New(resolver, logger).SubmitSync(context.Background(), query)
	if !render(os.Stdout, snap) {
		os.Exit(1)
	}
}

// render prints the snapshot and reports whether it holds a reading.
func render(w io.Writer, snap session.Snapshot) bool {
	if snap.State != weather.StateSuccess || snap.Reading == nil {
		color.New(color.FgRed).Fprintln(w, snap.Error)
		return false
	}

	r := snap.Reading
	title := color.New(color.FgCyan, color.Bold)
	label := color.New(color.FgHiBlack)

	title.Fprintf(w, "%s  %s\n", r.TemperatureLabel, r.City)
	fmt.Fprintf(w, "%s %s\n", label.Sprint("Condition:"), r.IconClass)
	fmt.Fprintf(w, "%s %s\n", label.Sprint("Humidity: "), r.HumidityLabel)
	fmt.Fprintf(w, "%s %s\n", label.Sprint("Wind Speed:"), r.WindLabel)
	return true
}
