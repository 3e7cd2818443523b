package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/i474232898/weather-lookup/internal/session"
	"github.com/i474232898/weather-lookup/internal/weather"
)

func TestRender(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	ok := render(&buf, session.Snapshot{
		State: weather.StateSuccess,
		Reading: &weather.WeatherReading{
			City: "Berlin, Germany", TemperatureLabel: "15°C", WindLabel: "10 km/h",
			HumidityLabel: "72%", IconClass: weather.IconPartlyCloudy,
		},
	})
	assert.True(t, ok)
	assert.Contains(t, buf.String(), "15°C  Berlin, Germany")
	assert.Contains(t, buf.String(), "72%")
	assert.Contains(t, buf.String(), "10 km/h")

	buf.Reset()
	ok = render(&buf, session.Snapshot{State: weather.StateError, Error: weather.MsgInvalidCity})
	assert.False(t, ok)
	assert.Equal(t, "Invalid city name\n", buf.String())
}
