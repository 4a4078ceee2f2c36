package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ProviderOpenWeatherMap = "openweathermap"
	ProviderOpenMeteo      = "openmeteo"
)

// ErrUnknownProvider is returned when weather.provider names no known provider
var ErrUnknownProvider = errors.New("unknown weather provider")

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Weather   WeatherConfig
	Geocoding GeocodingConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// WeatherConfig holds forecast provider configuration
type WeatherConfig struct {
	Provider       string // openweathermap, openmeteo
	APIKey         string
	BaseURL        string
	TimeoutSeconds int
	ForecastDays   int // open-meteo only
}

// GeocodingConfig holds Nominatim configuration
type GeocodingConfig struct {
	BaseURL        string
	UserAgent      string
	TimeoutSeconds int
}

// Load reads configuration from a .env file, a config file and environment variables
func Load() (*Config, error) {
	// A missing .env is the normal case outside development
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.route-weather")

	setDefaults(v)

	v.SetEnvPrefix("ROUTE_WEATHER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("weather.provider", ProviderOpenWeatherMap)
	v.SetDefault("weather.apikey", "your_openweathermap_api_key")
	v.SetDefault("weather.baseurl", "")
	v.SetDefault("weather.timeoutseconds", 10)
	v.SetDefault("weather.forecastdays", 5)

	v.SetDefault("geocoding.baseurl", "https://nominatim.openstreetmap.org")
	v.SetDefault("geocoding.useragent", "weather_route_app")
	v.SetDefault("geocoding.timeoutseconds", 10)
}

// Validate checks values that cannot be defaulted sensibly
func (c *Config) Validate() error {
	switch strings.ToLower(c.Weather.Provider) {
	case ProviderOpenWeatherMap, ProviderOpenMeteo:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProvider, c.Weather.Provider)
	}
	if c.Weather.TimeoutSeconds <= 0 {
		return fmt.Errorf("weather.timeoutseconds must be positive, got %d", c.Weather.TimeoutSeconds)
	}
	if c.Geocoding.TimeoutSeconds <= 0 {
		return fmt.Errorf("geocoding.timeoutseconds must be positive, got %d", c.Geocoding.TimeoutSeconds)
	}
	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// WeatherTimeout is the per-call deadline for forecast requests
func (c *Config) WeatherTimeout() time.Duration {
	return time.Duration(c.Weather.TimeoutSeconds) * time.Second
}

// GeocodingTimeout is the per-call deadline for geocoding requests
func (c *Config) GeocodingTimeout() time.Duration {
	return time.Duration(c.Geocoding.TimeoutSeconds) * time.Second
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	return c.NewLoggerTo(os.Stdout)
}

// NewLoggerTo is NewLogger writing to w
func (c *Config) NewLoggerTo(w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
