package weather

import (
	"math"
	"strconv"
)

// Assemble builds the rendered reading for a resolved candidate.
func Assemble(cand GeoCandidate, cond CurrentConditions) WeatherReading {
	humidity := HumidityPlaceholder
	if cond.HumidityPercent != nil {
		humidity = strconv.Itoa(*cond.HumidityPercent) + "%"
	}

	return WeatherReading{
		City:             CityLabel(cand),
		TemperatureLabel: TemperatureLabel(cond.TemperatureC),
		WindLabel:        strconv.FormatFloat(cond.WindSpeedKmh, 'f', -1, 64) + " km/h",
		HumidityLabel:    humidity,
		IconClass:        IconFor(cond.WeatherCode),
	}
}

// CityLabel appends ", country" only when the candidate carries one.
func CityLabel(cand GeoCandidate) string {
	if cand.Country == "" {
		return cand.DisplayName
	}
	return cand.DisplayName + ", " + cand.Country
}

// TemperatureLabel rounds half up, so -2.5 renders as "-2°C".
func TemperatureLabel(celsius float64) string {
	return strconv.Itoa(int(math.Floor(celsius+0.5))) + "°C"
}

// IconFor maps an Open-Meteo WMO weather code to an icon class.
// The checks are order-sensitive.
func IconFor(code int) IconClass {
	switch {
	case code == 0:
		return IconClear
	case code >= 1 && code <= 3:
		return IconPartlyCloudy
	case code == 45 || code == 48:
		return IconFog
	case (code >= 51 && code <= 67) || (code >= 80 && code <= 86):
		return IconRain
	case code >= 71 && code <= 77:
		return IconSnow
	case code >= 95:
		return IconThunderstorm
	default:
		return IconCloud
	}
}
