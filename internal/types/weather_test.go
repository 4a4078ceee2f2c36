package types

import "testing"

func TestWeatherCode_Description(t *testing.T) {
	tests := []struct {
		code     WeatherCode
		expected string
	}{
		{ClearSky, "Clear sky"},
		{Overcast, "Overcast"},
		{RainModerate, "Rainfall: Moderate intensity"},
		{SnowShowersHeavy, "Snow showers: Heavy"},
		{ThunderstormWithHeavyHail, "Thunderstorm with heavy hail"},
		{WeatherCode(4), "Unknown"},
		{WeatherCode(-1), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.code.Description(); got != tt.expected {
				t.Errorf("WeatherCode(%d).Description() = %q, want %q", tt.code, got, tt.expected)
			}
		})
	}
}

func TestCoords_Valid(t *testing.T) {
	tests := []struct {
		name   string
		coords Coords
		want   bool
	}{
		{"origin", NewCoords(0, 0), true},
		{"bounds", NewCoords(-90, 180), true},
		{"latitude too large", NewCoords(90.1, 0), false},
		{"longitude too small", NewCoords(0, -180.5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.coords.Valid(); got != tt.want {
				t.Errorf("%v.Valid() = %v, want %v", tt.coords, got, tt.want)
			}
		})
	}
}
