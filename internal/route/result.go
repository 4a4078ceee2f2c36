package route

import (
	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/twpayne/go-polyline"

	"route-weather/internal/types"
)

// EarthRadiusKm is the mean Earth radius used for leg lengths
const EarthRadiusKm = 6371.0088

// Result is everything one trigger pass produced
type Result struct {
	Samples []types.TemperatureSample `json:"samples"`
	Points  []types.RoutePoint        `json:"points"`
}

// DistanceKm sums the great-circle lengths of consecutive legs
func (r Result) DistanceKm() float64 {
	total := 0.0
	for i := 1; i < len(r.Points); i++ {
		prev := r.Points[i-1].Coordinates
		cur := r.Points[i].Coordinates
		p1 := s2.LatLngFromDegrees(prev.Latitude, prev.Longitude)
		p2 := s2.LatLngFromDegrees(cur.Latitude, cur.Longitude)
		total += p1.Distance(p2).Radians() * EarthRadiusKm
	}
	return total
}

// Polyline returns the route in Google's encoded polyline format
func (r Result) Polyline() string {
	if len(r.Points) == 0 {
		return ""
	}
	coords := make([][]float64, 0, len(r.Points))
	for _, p := range r.Points {
		coords = append(coords, []float64{p.Coordinates.Latitude, p.Coordinates.Longitude})
	}
	return string(polyline.EncodeCoords(coords))
}

// FeatureCollection renders the route as GeoJSON: one Point feature per stop
// and, when there are at least two stops, a LineString through all of them.
func (r Result) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	line := make(orb.LineString, 0, len(r.Points))
	for i, p := range r.Points {
		pt := orb.Point{p.Coordinates.Longitude, p.Coordinates.Latitude}
		line = append(line, pt)

		f := geojson.NewFeature(pt)
		f.Properties["name"] = p.Label
		f.Properties["order"] = i
		if p.Timezone != "" {
			f.Properties["timezone"] = p.Timezone
		}
		fc.Append(f)
	}

	if len(line) >= 2 {
		f := geojson.NewFeature(line)
		f.Properties["name"] = "route"
		f.Properties["distance_km"] = r.DistanceKm()
		fc.Append(f)
	}

	return fc
}
