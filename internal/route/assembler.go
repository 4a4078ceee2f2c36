// Package route drives geocoding and forecast lookups for an ordered list of
// user-entered locations and collects the results for rendering.
package route

import (
	"context"
	"log/slog"
	"strings"

	"route-weather/internal/config"
	"route-weather/internal/location"
	"route-weather/internal/timezone"
	"route-weather/internal/types"
	"route-weather/internal/weather"
)

// Locations returns start, the non-blank stops in order, then end.
// Blank start or end values are dropped as well.
func Locations(start string, stops []string, end string) []string {
	locations := make([]string, 0, len(stops)+2)
	for _, l := range append(append([]string{start}, stops...), end) {
		if strings.TrimSpace(l) == "" {
			continue
		}
		locations = append(locations, l)
	}
	return locations
}

// Assembler runs one geocode and one forecast lookup per location, in order
type Assembler struct {
	locations location.Service
	weather   weather.Service
	timezones timezone.Service
	logger    *slog.Logger
}

// NewAssembler wires the lookup services. timezones may be nil.
func NewAssembler(locations location.Service, weather weather.Service, timezones timezone.Service, logger *slog.Logger) *Assembler {
	return &Assembler{
		locations: locations,
		weather:   weather,
		timezones: timezones,
		logger:    logger.With("component", "route-assembler"),
	}
}

// NewAssemblerFromConfig builds the geocoding, forecast and timezone services
// from cfg. A timezone finder that fails to load only disables hover zones.
func NewAssemblerFromConfig(cfg *config.Config, logger *slog.Logger) (*Assembler, error) {
	weatherSvc, err := weather.NewWeatherService(cfg, logger)
	if err != nil {
		return nil, err
	}

	var timezones timezone.Service
	if tz, err := timezone.NewService(); err != nil {
		logger.Warn("timezone lookup disabled", "error", err)
	} else {
		timezones = tz
	}

	return NewAssembler(location.NewLocationService(cfg, logger), weatherSvc, timezones, logger), nil
}

// Assemble builds a fresh Result. Locations that fail to geocode contribute
// neither samples nor a route point.
func (a *Assembler) Assemble(ctx context.Context, locations []string) Result {
	result := Result{
		Samples: make([]types.TemperatureSample, 0),
		Points:  make([]types.RoutePoint, 0, len(locations)),
	}

	for _, loc := range locations {
		if strings.TrimSpace(loc) == "" {
			continue
		}

		coords, ok := a.locations.Resolve(ctx, loc)
		if !ok {
			a.logger.Info("dropping unresolved location", "location", loc)
			continue
		}

		result.Samples = append(result.Samples, a.weather.GetSamples(ctx, loc, &coords)...)
		result.Points = append(result.Points, types.RoutePoint{
			Label:       loc,
			Coordinates: coords,
			Timezone:    a.lookupTimezone(coords),
		})
	}

	a.logger.Debug("assembled route",
		"locations", len(locations),
		"points", len(result.Points),
		"samples", len(result.Samples),
	)

	return result
}

func (a *Assembler) lookupTimezone(coords types.Coords) string {
	if a.timezones == nil {
		return ""
	}
	tz, err := a.timezones.GetTimezone(coords)
	if err != nil {
		a.logger.Debug("no timezone for coordinates", "coordinates", coords.String(), "error", err)
		return ""
	}
	return tz
}
