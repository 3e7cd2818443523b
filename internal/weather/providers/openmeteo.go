package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-lookup/internal/weather"
)

const DefaultForecastBaseURL = "https://api.open-meteo.com"

// OpenMeteoForecast implements weather.ConditionsFetcher for the Open-Meteo forecast API.
type OpenMeteoForecast struct {
	name    string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewOpenMeteoForecast(cfg HTTPClientConfig, baseURL string) *OpenMeteoForecast {
	if baseURL == "" {
		baseURL = DefaultForecastBaseURL
	}
	return &OpenMeteoForecast{
		name:    "openmeteo",
		baseURL: strings.TrimRight(baseURL, "/") + "/v1/forecast",
		httpCfg: cfg,
		circuit: newBreaker("openmeteo", cfg.BreakerTimeout),
	}
}

func (p *OpenMeteoForecast) Name() string {
	return p.name
}

type forecastPayload struct {
	CurrentWeather *struct {
		Temperature float64 `json:"temperature"`
		WindSpeed   float64 `json:"windspeed"`
		WeatherCode int     `json:"weathercode"`
		Time        string  `json:"time"`
	} `json:"current_weather"`
	Hourly *struct {
		Time     []string   `json:"time"`
		Humidity []*float64 `json:"relativehumidity_2m"`
	} `json:"hourly"`
}

func (p *OpenMeteoForecast) FetchConditions(ctx context.Context, lat, lon float64) (weather.CurrentConditions, error) {
	buildRequest := func(ctx context.Context) (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
		values.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
		values.Set("current_weather", "true")
		values.Set("hourly", "relativehumidity_2m")
		values.Set("temperature_unit", "celsius")
		values.Set("windspeed_unit", "kmh")
		values.Set("timezone", "auto")

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	}

	resp, err := doRequest(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return weather.CurrentConditions{}, err
	}
	defer resp.Body.Close()

	var payload forecastPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.CurrentConditions{}, fmt.Errorf("%w: decoding forecast response: %w", weather.ErrTransport, err)
	}

	if payload.CurrentWeather == nil {
		return weather.CurrentConditions{}, weather.ErrFetchFailed
	}

	cw := payload.CurrentWeather
	return weather.CurrentConditions{
		TemperatureC:    cw.Temperature,
		WindSpeedKmh:    cw.WindSpeed,
		WeatherCode:     cw.WeatherCode,
		ObservationTime: cw.Time,
		HumidityPercent: payload.humidityAt(cw.Time),
	}, nil
}

// humidityAt looks up the hourly humidity recorded at exactly ts.
func (f forecastPayload) humidityAt(ts string) *int {
	if f.Hourly == nil {
		return nil
	}
	for i, t := range f.Hourly.Time {
		if t != ts {
			continue
		}
		if i >= len(f.Hourly.Humidity) || f.Hourly.Humidity[i] == nil {
			return nil
		}
		v := int(math.Round(*f.Hourly.Humidity[i]))
		return &v
	}
	return nil
}
