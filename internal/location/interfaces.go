package location

import (
	"context"

	"route-weather/internal/providers/openstreetmap"
	"route-weather/internal/types"
)

// Service resolves free-text place names to coordinates
type Service interface {
	// Resolve returns the first match for name. ok is false when the name is
	// blank, has no match, or the lookup failed for any reason.
	Resolve(ctx context.Context, name string) (coords types.Coords, ok bool)
}

// SearchProvider defines the interface for forward geocoding providers
type SearchProvider interface {
	Search(ctx context.Context, query string) (openstreetmap.SearchAPIResponse, error)
}
