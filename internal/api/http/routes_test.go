package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-lookup/internal/session"
	"github.com/i474232898/weather-lookup/internal/weather"
)

type stubResolver struct {
	calls []string
}

func (s *stubResolver) Run(_ context.Context, query string) weather.Outcome {
	s.calls = append(s.calls, query)
	switch query {
	case "Atlantis":
		return weather.Outcome{Query: query, State: weather.StateError, Message: weather.MsgInvalidCity,
			Err: fmt.Errorf("resolving: %w", weather.ErrNotFound)}
	case "Broken":
		return weather.Outcome{Query: query, State: weather.StateError, Message: weather.MsgFetchingError,
			Err: weather.ErrFetchFailed}
	}
	return weather.Outcome{Query: query, State: weather.StateSuccess, Reading: &weather.WeatherReading{
		City: "Berlin, Germany", TemperatureLabel: "15°C", WindLabel: "10 km/h",
		HumidityLabel: "--", IconClass: weather.IconPartlyCloudy,
	}}
}

func newTestApp(r Resolver, w Widget) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	RegisterRoutes(app, r, w)
	return app
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, v), string(body))
}

func TestCurrentWeather(t *testing.T) {
	resolver := &stubResolver{}
	app := newTestApp(resolver, session.New(resolver, nil))

	tests := []struct {
		name       string
		url        string
		wantStatus int
		wantError  string
	}{
		{name: "missing q", url: "/api/v1/weather/current", wantStatus: http.StatusBadRequest},
		{name: "blank q", url: "/api/v1/weather/current?q=%20%20", wantStatus: http.StatusBadRequest},
		{name: "not found", url: "/api/v1/weather/current?q=Atlantis", wantStatus: http.StatusNotFound, wantError: "Invalid city name"},
		{name: "fetch failed", url: "/api/v1/weather/current?q=Broken", wantStatus: http.StatusBadGateway, wantError: "Error fetching weather"},
		{name: "ok", url: "/api/v1/weather/current?q=Berlin", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.url, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.wantError != "" {
				var body map[string]string
				decodeBody(t, resp, &body)
				assert.Equal(t, tt.wantError, body["error"])
			}
			if tt.wantStatus == http.StatusOK {
				var reading weather.WeatherReading
				decodeBody(t, resp, &reading)
				assert.Equal(t, "Berlin, Germany", reading.City)
				assert.Equal(t, "15°C", reading.TemperatureLabel)
				assert.Equal(t, weather.IconPartlyCloudy, reading.IconClass)
			}
		})
	}

	assert.Equal(t, []string{"Atlantis", "Broken", "Berlin"}, resolver.calls)
}

func TestSearchAndState(t *testing.T) {
	resolver := &stubResolver{}
	widget := session.New(resolver, nil)
	app := newTestApp(resolver, widget)

	post := func(body string) *http.Response {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/weather/search", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}

	resp := post(`{"query":"   "}`)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, resolver.calls)

	resp = post(`not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = post(`{"query":"Atlantis"}`)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	var accepted map[string]string
	decodeBody(t, resp, &accepted)
	require.NotEmpty(t, accepted["requestId"])

	widget.Wait()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/weather/state", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var snap session.Snapshot
	decodeBody(t, resp, &snap)
	assert.Equal(t, accepted["requestId"], snap.RequestID)
	assert.Equal(t, weather.StateError, snap.State)
	assert.Equal(t, "Invalid city name", snap.Error)
	assert.False(t, snap.Loading)
	assert.Nil(t, snap.Reading)
}

func TestErrorHandlerHidesUnexpectedErrors(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("dial tcp 10.0.0.1:5432: connection refused")
	})
	app.Get("/teapot", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "internal server error", body["error"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/teapot", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	decodeBody(t, resp, &body)
	assert.Equal(t, "short and stout", body["error"])
}
