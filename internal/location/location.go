package location

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"route-weather/internal/config"
	"route-weather/internal/providers/openstreetmap"
	"route-weather/internal/types"
)

// locationService implements the Service interface
type locationService struct {
	searchProvider SearchProvider
	logger         *slog.Logger
}

// NewLocationService creates a new location service backed by Nominatim
func NewLocationService(cfg *config.Config, logger *slog.Logger) Service {
	client := openstreetmap.NewClient(logger, cfg.GeocodingTimeout(),
		openstreetmap.WithBaseURL(cfg.Geocoding.BaseURL),
		openstreetmap.WithUserAgent(cfg.Geocoding.UserAgent),
	)
	return NewLocationServiceWithProvider(client, logger)
}

// NewLocationServiceWithProvider creates a new location service with a custom provider.
// This is useful for testing with mock providers.
func NewLocationServiceWithProvider(searchProvider SearchProvider, logger *slog.Logger) Service {
	return &locationService{
		searchProvider: searchProvider,
		logger:         logger.With("component", "location-service"),
	}
}

func (s *locationService) Resolve(ctx context.Context, name string) (types.Coords, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return types.Coords{}, false
	}

	resp, err := s.searchProvider.Search(ctx, name)
	if err != nil {
		s.logger.Warn("geocoding failed", "location", name, "error", err)
		return types.Coords{}, false
	}

	coords, err := translateSearchResult(resp)
	if err != nil {
		s.logger.Warn("location not found", "location", name, "error", err)
		return types.Coords{}, false
	}

	s.logger.Debug("resolved location",
		"location", name,
		"latitude", coords.Latitude,
		"longitude", coords.Longitude,
	)

	return coords, true
}

// translateSearchResult converts the first Nominatim match to domain Coords
func translateSearchResult(resp openstreetmap.SearchAPIResponse) (types.Coords, error) {
	if len(resp) == 0 {
		return types.Coords{}, fmt.Errorf("search returned no results")
	}

	first := resp[0]
	lat, err := strconv.ParseFloat(first.Lat, 64)
	if err != nil {
		return types.Coords{}, fmt.Errorf("invalid latitude %q: %w", first.Lat, err)
	}
	lon, err := strconv.ParseFloat(first.Lon, 64)
	if err != nil {
		return types.Coords{}, fmt.Errorf("invalid longitude %q: %w", first.Lon, err)
	}

	coords := types.NewCoords(lat, lon)
	if !coords.Valid() {
		return types.Coords{}, fmt.Errorf("coordinates out of range: %v", coords)
	}
	return coords, nil
}
