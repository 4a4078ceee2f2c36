package config

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Weather.Provider != ProviderOpenWeatherMap {
		t.Errorf("Weather.Provider = %q, want %q", cfg.Weather.Provider, ProviderOpenWeatherMap)
	}
	if cfg.Weather.APIKey != "your_openweathermap_api_key" {
		t.Errorf("Weather.APIKey = %q, want the built-in placeholder key", cfg.Weather.APIKey)
	}
	if cfg.Geocoding.UserAgent != "weather_route_app" {
		t.Errorf("Geocoding.UserAgent = %q, want weather_route_app", cfg.Geocoding.UserAgent)
	}
	if cfg.WeatherTimeout() != 10*time.Second {
		t.Errorf("WeatherTimeout() = %v, want 10s", cfg.WeatherTimeout())
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("ROUTE_WEATHER_SERVER_PORT", "9090")
	t.Setenv("ROUTE_WEATHER_WEATHER_PROVIDER", "openmeteo")
	t.Setenv("ROUTE_WEATHER_GEOCODING_TIMEOUTSECONDS", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}

	if cfg.GetServerAddr() != ":9090" {
		t.Errorf("GetServerAddr() = %q, want :9090", cfg.GetServerAddr())
	}
	if cfg.Weather.Provider != ProviderOpenMeteo {
		t.Errorf("Weather.Provider = %q, want %q", cfg.Weather.Provider, ProviderOpenMeteo)
	}
	if cfg.GeocodingTimeout() != 3*time.Second {
		t.Errorf("GeocodingTimeout() = %v, want 3s", cfg.GeocodingTimeout())
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Weather:   WeatherConfig{Provider: ProviderOpenWeatherMap, TimeoutSeconds: 10},
			Geocoding: GeocodingConfig{TimeoutSeconds: 10},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		is      error
	}{
		{
			name:   "valid",
			mutate: func(c *Config) {},
		},
		{
			name:   "provider is case insensitive",
			mutate: func(c *Config) { c.Weather.Provider = "OpenMeteo" },
		},
		{
			name:    "unknown provider",
			mutate:  func(c *Config) { c.Weather.Provider = "darksky" },
			wantErr: true,
			is:      ErrUnknownProvider,
		},
		{
			name:    "zero weather timeout",
			mutate:  func(c *Config) { c.Weather.TimeoutSeconds = 0 },
			wantErr: true,
		},
		{
			name:    "negative geocoding timeout",
			mutate:  func(c *Config) { c.Geocoding.TimeoutSeconds = -1 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("Validate() error = %v, want errors.Is %v", err, tt.is)
			}
		})
	}
}

func TestNewLoggerTo(t *testing.T) {
	tests := []struct {
		name      string
		log       LogConfig
		wantDebug bool
		wantJSON  bool
	}{
		{name: "defaults", log: LogConfig{}, wantDebug: false},
		{name: "debug text", log: LogConfig{Level: "debug", Format: "text"}, wantDebug: true},
		{name: "json", log: LogConfig{Level: "INFO", Format: "json"}, wantJSON: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &Config{Log: tt.log}
			logger := cfg.NewLoggerTo(&buf)

			logger.Debug("debug line")
			logger.Info("info line")

			out := buf.String()
			if got := strings.Contains(out, "debug line"); got != tt.wantDebug {
				t.Errorf("debug line logged = %v, want %v", got, tt.wantDebug)
			}
			if !strings.Contains(out, "info line") {
				t.Error("info line missing")
			}
			if got := strings.HasPrefix(out, "{"); got != tt.wantJSON {
				t.Errorf("json output = %v, want %v", got, tt.wantJSON)
			}
		})
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir in Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir(%q): %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
