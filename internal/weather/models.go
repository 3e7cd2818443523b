package weather

// ScriptHint is a coarse classification of a query by writing system.
type ScriptHint int

const (
	ScriptLatinOrOther ScriptHint = iota
	ScriptCyrillic
)

func (h ScriptHint) String() string {
	if h == ScriptCyrillic {
		return "cyrillic"
	}
	return "latin_or_other"
}

// IconClass is the Weather Icons CSS class rendered next to a reading.
type IconClass string

const (
	IconClear        IconClass = "wi wi-day-sunny"
	IconPartlyCloudy IconClass = "wi wi-day-cloudy"
	IconFog          IconClass = "wi wi-fog"
	IconRain         IconClass = "wi wi-rain"
	IconSnow         IconClass = "wi wi-snow"
	IconThunderstorm IconClass = "wi wi-thunderstorm"
	IconCloud        IconClass = "wi wi-cloud"
)

// HumidityPlaceholder is rendered when no humidity value matches the observation time.
const HumidityPlaceholder = "--"

// GeoCandidate is the first match produced by a single geocoding attempt.
// Country is empty when the backend does not report one.
type GeoCandidate struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	DisplayName string  `json:"displayName"`
	Country     string  `json:"country,omitempty"`
}

// CurrentConditions is a snapshot of the weather at one point.
type CurrentConditions struct {
	TemperatureC    float64
	WindSpeedKmh    float64
	WeatherCode     int
	ObservationTime string

	// HumidityPercent is nil when the hourly series has no value for ObservationTime.
	HumidityPercent *int
}

// WeatherReading is the rendering artifact for one query. It is built fresh
// for every query and never mutated afterwards.
type WeatherReading struct {
	City             string    `json:"city"`
	TemperatureLabel string    `json:"temp"`
	WindLabel        string    `json:"wind"`
	HumidityLabel    string    `json:"humidity"`
	IconClass        IconClass `json:"icon"`
}
