package weather

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"route-weather/internal/config"
	"route-weather/internal/providers/openmeteo"
	"route-weather/internal/providers/openweathermap"
	"route-weather/internal/types"

	"github.com/goccy/go-json"
)

// Mock providers for testing

type mockOpenWeatherMapProvider struct {
	response openweathermap.ForecastAPIResponse
	err      error
	calls    int
}

func (m *mockOpenWeatherMapProvider) GetForecast(ctx context.Context, latitude, longitude float64) (openweathermap.ForecastAPIResponse, error) {
	m.calls++
	return m.response, m.err
}

type mockOpenMeteoProvider struct {
	response *openmeteo.ForecastAPIResponse
	err      error
	gotDays  int
	calls    int
}

func (m *mockOpenMeteoProvider) GetForecast(ctx context.Context, latitude, longitude float64, forecastDays int) (*openmeteo.ForecastAPIResponse, error) {
	m.calls++
	m.gotDays = forecastDays
	return m.response, m.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func owmEntry(ts string, temp float64, desc string) map[string]any {
	return map[string]any{
		"dt_txt":  ts,
		"main":    map[string]any{"temp": temp},
		"weather": []any{map[string]any{"description": desc}},
	}
}

func TestOpenWeatherMapService_GetSamples(t *testing.T) {
	coords := types.NewCoords(10.0, 20.0)

	tests := []struct {
		name      string
		coords    *types.Coords
		response  openweathermap.ForecastAPIResponse
		err       error
		wantCalls int
		wantCount int
		validate  func(*testing.T, []types.TemperatureSample)
	}{
		{
			name:   "three forecast entries",
			coords: &coords,
			response: openweathermap.ForecastAPIResponse{
				"list": []any{
					owmEntry("2025-01-15 09:00:00", 3.5, "light snow"),
					owmEntry("2025-01-15 12:00:00", 5.0, "clear sky"),
					owmEntry("2025-01-15 15:00:00", 4.0, "few clouds"),
				},
			},
			wantCalls: 1,
			wantCount: 3,
			validate: func(t *testing.T, samples []types.TemperatureSample) {
				first := samples[0]
				if first.Location != "CityA" {
					t.Errorf("Location = %q, want CityA", first.Location)
				}
				if first.Timestamp != "2025-01-15 09:00:00" {
					t.Errorf("Timestamp = %q, want service string unchanged", first.Timestamp)
				}
				if first.Temperature != 3.5 {
					t.Errorf("Temperature = %v, want 3.5", first.Temperature)
				}
				if first.Condition != "light snow" {
					t.Errorf("Condition = %q, want light snow", first.Condition)
				}
			},
		},
		{
			name:      "absent coordinates issue no call",
			coords:    nil,
			wantCalls: 0,
			wantCount: 0,
		},
		{
			name:      "provider failure",
			coords:    &coords,
			err:       errors.New("timeout"),
			wantCalls: 1,
			wantCount: 0,
		},
		{
			name:      "response without list",
			coords:    &coords,
			response:  openweathermap.ForecastAPIResponse{"cod": "404", "message": "city not found"},
			wantCalls: 1,
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockOpenWeatherMapProvider{response: tt.response, err: tt.err}
			service := NewOpenWeatherMapService(provider, discardLogger())

			got := service.GetSamples(context.Background(), "CityA", tt.coords)

			if provider.calls != tt.wantCalls {
				t.Errorf("provider called %d times, want %d", provider.calls, tt.wantCalls)
			}
			if len(got) != tt.wantCount {
				t.Fatalf("GetSamples() returned %d samples, want %d", len(got), tt.wantCount)
			}
			if tt.validate != nil {
				tt.validate(t, got)
			}
		})
	}
}

func degrees(v float64) *float64 { return &v }

func code(c types.WeatherCode) *int {
	v := int(c)
	return &v
}

func TestOpenMeteoService_GetSamples(t *testing.T) {
	coords := types.NewCoords(39.11539, -107.6584)

	tests := []struct {
		name      string
		response  *openmeteo.ForecastAPIResponse
		err       error
		wantCount int
		validate  func(*testing.T, []types.TemperatureSample)
	}{
		{
			name: "hourly data",
			response: &openmeteo.ForecastAPIResponse{
				Hourly: &openmeteo.HourlyData{
					Time:          []string{"2025-01-15T00:00", "2025-01-15T01:00"},
					Temperature2M: []*float64{degrees(-4.5), degrees(-5.0)},
					WeatherCode:   []*int{code(types.SnowFallSlight), code(types.Overcast)},
				},
			},
			wantCount: 2,
			validate: func(t *testing.T, samples []types.TemperatureSample) {
				if samples[0].Condition != "Snow fall: Slight intensity" {
					t.Errorf("Condition = %q", samples[0].Condition)
				}
				if samples[1].Temperature != -5.0 {
					t.Errorf("Temperature = %v, want -5", samples[1].Temperature)
				}
			},
		},
		{
			name: "arrays of different length",
			response: &openmeteo.ForecastAPIResponse{
				Hourly: &openmeteo.HourlyData{
					Time:          []string{"2025-01-15T00:00", "2025-01-15T01:00", "2025-01-15T02:00"},
					Temperature2M: []*float64{degrees(1), degrees(2)},
				},
			},
			wantCount: 2,
			validate: func(t *testing.T, samples []types.TemperatureSample) {
				if samples[0].Condition != "" {
					t.Errorf("Condition = %q, want empty without weather codes", samples[0].Condition)
				}
			},
		},
		{
			name: "null slots",
			response: &openmeteo.ForecastAPIResponse{
				Hourly: &openmeteo.HourlyData{
					Time:          []string{"2025-01-15T00:00", "2025-01-15T01:00", "2025-01-15T02:00"},
					Temperature2M: []*float64{degrees(5.5), nil, degrees(3.0)},
					WeatherCode:   []*int{code(types.ClearSky), nil, nil},
				},
			},
			wantCount: 2,
			validate: func(t *testing.T, samples []types.TemperatureSample) {
				if samples[0].Timestamp != "2025-01-15T00:00" || samples[1].Timestamp != "2025-01-15T02:00" {
					t.Errorf("timestamps = %q, %q; slot without temperature should be dropped", samples[0].Timestamp, samples[1].Timestamp)
				}
				if samples[1].Temperature != 3.0 {
					t.Errorf("Temperature = %v, want 3", samples[1].Temperature)
				}
				if samples[1].Condition != "" {
					t.Errorf("Condition = %q, want empty for a null weather code", samples[1].Condition)
				}
			},
		},
		{
			name:      "missing hourly block",
			response:  &openmeteo.ForecastAPIResponse{Timezone: "GMT"},
			wantCount: 0,
		},
		{
			name:      "provider failure",
			err:       errors.New("status 500"),
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockOpenMeteoProvider{response: tt.response, err: tt.err}
			service := NewOpenMeteoService(provider, 0, discardLogger())

			got := service.GetSamples(context.Background(), "Aspen", &coords)

			if provider.gotDays != 5 {
				t.Errorf("forecastDays = %d, want default 5", provider.gotDays)
			}
			if len(got) != tt.wantCount {
				t.Fatalf("GetSamples() returned %d samples, want %d", len(got), tt.wantCount)
			}
			if tt.validate != nil {
				tt.validate(t, got)
			}
		})
	}
}

func TestMapOpenWeatherMapResponse_MissingList(t *testing.T) {
	_, err := mapOpenWeatherMapResponse("CityA", openweathermap.ForecastAPIResponse{})
	if !errors.Is(err, ErrMissingForecast) {
		t.Errorf("error = %v, want ErrMissingForecast", err)
	}
}

func TestNewWeatherService(t *testing.T) {
	tests := []struct {
		provider string
		wantErr  bool
	}{
		{config.ProviderOpenWeatherMap, false},
		{config.ProviderOpenMeteo, false},
		{"OpenMeteo", false},
		{"darksky", true},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			cfg := &config.Config{Weather: config.WeatherConfig{Provider: tt.provider, TimeoutSeconds: 1}}
			svc, err := NewWeatherService(cfg, discardLogger())
			if tt.wantErr {
				if !errors.Is(err, config.ErrUnknownProvider) {
					t.Errorf("NewWeatherService() error = %v, want ErrUnknownProvider", err)
				}
				return
			}
			if err != nil || svc == nil {
				t.Errorf("NewWeatherService() = %v, %v", svc, err)
			}
		})
	}
}

func TestMapOpenMeteoResponse_DecodedNulls(t *testing.T) {
	body := `{"hourly":{"time":["t0","t1"],"temperature_2m":[5.5,null],"weather_code":[0,null]}}`

	var resp openmeteo.ForecastAPIResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}

	samples, err := mapOpenMeteoResponse("Aspen", &resp)
	if err != nil {
		t.Fatalf("mapOpenMeteoResponse() unexpected error = %v", err)
	}
	if len(samples) != 1 {
		t.Fatalf("got %d samples, want 1: %+v", len(samples), samples)
	}
	if samples[0].Timestamp != "t0" || samples[0].Temperature != 5.5 || samples[0].Condition != "Clear sky" {
		t.Errorf("sample = %+v, want t0 5.5 Clear sky", samples[0])
	}
}
