package timezone

import (
	"fmt"
	"sync"

	"route-weather/internal/types"

	"github.com/ringsaturn/tzf"
)

// Service provides offline timezone lookup
type Service interface {
	GetTimezone(coords types.Coords) (string, error)
}

// Finder is the subset of tzf.F used here
type Finder interface {
	GetTimezoneName(lng float64, lat float64) string
}

type service struct {
	finder Finder
}

var (
	instance *service
	initErr  error
	once     sync.Once
)

// NewService returns the shared timezone service.
// tzf loads its polygon data into memory once per process.
func NewService() (Service, error) {
	once.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		instance = &service{finder: finder}
	})
	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

// NewServiceWithFinder wraps a custom finder, mainly for tests
func NewServiceWithFinder(finder Finder) Service {
	return &service{finder: finder}
}

// GetTimezone returns the IANA timezone name, e.g. "America/Denver"
func (s *service) GetTimezone(coords types.Coords) (string, error) {
	name := s.finder.GetTimezoneName(coords.Longitude, coords.Latitude)
	if name == "" {
		return "", fmt.Errorf("could not determine timezone for coordinates %v", coords)
	}
	return name, nil
}
