package weather

import (
	"fmt"

	"route-weather/internal/providers/openmeteo"
	"route-weather/internal/providers/openweathermap"
	"route-weather/internal/types"
)

func mapOpenWeatherMapResponse(location string, resp openweathermap.ForecastAPIResponse) ([]types.TemperatureSample, error) {
	entries, ok := resp.Entries()
	if !ok {
		return nil, fmt.Errorf("openweathermap: %w", ErrMissingForecast)
	}

	samples := make([]types.TemperatureSample, 0, len(entries))
	for _, e := range entries {
		samples = append(samples, types.TemperatureSample{
			Location:    location,
			Timestamp:   e.Time,
			Temperature: e.Temperature,
			Condition:   e.Description,
		})
	}
	return samples, nil
}

func mapOpenMeteoResponse(location string, resp *openmeteo.ForecastAPIResponse) ([]types.TemperatureSample, error) {
	if resp == nil || resp.Hourly == nil {
		return nil, fmt.Errorf("openmeteo: %w", ErrMissingForecast)
	}

	hourly := resp.Hourly
	// Open-Meteo returns parallel arrays; trust only the common prefix
	n := min(len(hourly.Time), len(hourly.Temperature2M))

	samples := make([]types.TemperatureSample, 0, n)
	for i := 0; i < n; i++ {
		temp := hourly.Temperature2M[i]
		if temp == nil {
			continue
		}
		condition := ""
		if i < len(hourly.WeatherCode) && hourly.WeatherCode[i] != nil {
			condition = types.WeatherCode(*hourly.WeatherCode[i]).Description()
		}
		samples = append(samples, types.TemperatureSample{
			Location:    location,
			Timestamp:   hourly.Time[i],
			Temperature: *temp,
			Condition:   condition,
		})
	}
	return samples, nil
}
