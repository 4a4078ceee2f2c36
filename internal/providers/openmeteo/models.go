package openmeteo

type ForecastAPIResponse struct {
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	GenerationtimeMs float64 `json:"generationtime_ms"`
	Timezone         string  `json:"timezone"`
	Elevation        float64 `json:"elevation"`

	HourlyUnits *HourlyUnits `json:"hourly_units"`
	// Nil when the response carries no hourly block
	Hourly *HourlyData `json:"hourly"`
}

type HourlyUnits struct {
	Time          string `json:"time"`
	Temperature2M string `json:"temperature_2m"`
	WeatherCode   string `json:"weather_code"`
}

// HourlyData holds parallel arrays indexed by time slot. Slots the model has
// no value for arrive as null and decode to nil.
type HourlyData struct {
	Time          []string   `json:"time"`
	Temperature2M []*float64 `json:"temperature_2m"`
	WeatherCode   []*int     `json:"weather_code"`
}
