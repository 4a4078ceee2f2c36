package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"route-weather/internal/config"
	"route-weather/internal/providers/openmeteo"
	"route-weather/internal/providers/openweathermap"
	"route-weather/internal/types"
)

// ErrMissingForecast is returned by the response mappers when the payload has
// no forecast field at all
var ErrMissingForecast = errors.New("response has no forecast field")

// Service turns a coordinate into temperature samples. Every failure path is
// logged and yields an empty result.
type Service interface {
	GetSamples(ctx context.Context, location string, coords *types.Coords) []types.TemperatureSample
}

type OpenWeatherMapProvider interface {
	GetForecast(ctx context.Context, latitude, longitude float64) (openweathermap.ForecastAPIResponse, error)
}

type OpenMeteoProvider interface {
	GetForecast(ctx context.Context, latitude, longitude float64, forecastDays int) (*openmeteo.ForecastAPIResponse, error)
}

// fetchFunc performs one provider call and maps it to samples
type fetchFunc func(ctx context.Context, location string, coords types.Coords) ([]types.TemperatureSample, error)

type weatherService struct {
	provider string
	fetch    fetchFunc
	logger   *slog.Logger
}

// NewWeatherService builds the service for the provider named in the config
func NewWeatherService(cfg *config.Config, logger *slog.Logger) (Service, error) {
	switch strings.ToLower(cfg.Weather.Provider) {
	case config.ProviderOpenWeatherMap:
		client := openweathermap.NewClientWithBaseURL(logger, cfg.Weather.APIKey, cfg.WeatherTimeout(), cfg.Weather.BaseURL)
		return NewOpenWeatherMapService(client, logger), nil
	case config.ProviderOpenMeteo:
		client := openmeteo.NewForecastClientWithBaseURL(logger, cfg.WeatherTimeout(), cfg.Weather.BaseURL)
		return NewOpenMeteoService(client, cfg.Weather.ForecastDays, logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownProvider, cfg.Weather.Provider)
	}
}

// NewOpenWeatherMapService creates a service backed by an OpenWeatherMap provider
func NewOpenWeatherMapService(provider OpenWeatherMapProvider, logger *slog.Logger) Service {
	return &weatherService{
		provider: config.ProviderOpenWeatherMap,
		fetch: func(ctx context.Context, location string, coords types.Coords) ([]types.TemperatureSample, error) {
			resp, err := provider.GetForecast(ctx, coords.Latitude, coords.Longitude)
			if err != nil {
				return nil, fmt.Errorf("failed to get forecast: %w", err)
			}
			return mapOpenWeatherMapResponse(location, resp)
		},
		logger: logger.With("component", "weather-service"),
	}
}

// NewOpenMeteoService creates a service backed by an Open-Meteo provider
func NewOpenMeteoService(provider OpenMeteoProvider, forecastDays int, logger *slog.Logger) Service {
	if forecastDays <= 0 {
		forecastDays = 5
	}
	return &weatherService{
		provider: config.ProviderOpenMeteo,
		fetch: func(ctx context.Context, location string, coords types.Coords) ([]types.TemperatureSample, error) {
			resp, err := provider.GetForecast(ctx, coords.Latitude, coords.Longitude, forecastDays)
			if err != nil {
				return nil, fmt.Errorf("failed to get forecast: %w", err)
			}
			return mapOpenMeteoResponse(location, resp)
		},
		logger: logger.With("component", "weather-service"),
	}
}

func (s *weatherService) GetSamples(ctx context.Context, location string, coords *types.Coords) []types.TemperatureSample {
	if coords == nil {
		s.logger.Debug("no coordinates, skipping forecast", "location", location)
		return nil
	}

	samples, err := s.fetch(ctx, location, *coords)
	if err != nil {
		s.logger.Error("failed to get temperature samples",
			"provider", s.provider,
			"location", location,
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return nil
	}

	s.logger.Debug("fetched temperature samples",
		"provider", s.provider,
		"location", location,
		"samples", len(samples),
	)

	return samples
}
