package render

import "route-weather/internal/types"

const (
	mapStyle      = "open-street-map"
	mapZoom       = 5
	mapMarkerSize = 10
)

// RouteMap draws the route as a connected marker path centered on its first
// point. An empty route yields a titled placeholder.
func RouteMap(points []types.RoutePoint) Figure {
	if len(points) == 0 {
		return Placeholder(TitleNoRoute)
	}

	trace := Trace{
		Type:   "scattermapbox",
		Mode:   "markers+lines",
		Lat:    make([]float64, 0, len(points)),
		Lon:    make([]float64, 0, len(points)),
		Text:   make([]string, 0, len(points)),
		Marker: &Marker{Size: mapMarkerSize},
	}
	for _, p := range points {
		trace.Lat = append(trace.Lat, p.Coordinates.Latitude)
		trace.Lon = append(trace.Lon, p.Coordinates.Longitude)
		trace.Text = append(trace.Text, hoverText(p))
	}

	first := points[0].Coordinates
	return Figure{
		Data: []Trace{trace},
		Layout: Layout{
			Mapbox: &Mapbox{
				Style:  mapStyle,
				Center: LatLon{Lat: first.Latitude, Lon: first.Longitude},
				Zoom:   mapZoom,
			},
			Margin: &Margin{},
		},
	}
}

func hoverText(p types.RoutePoint) string {
	if p.Timezone == "" {
		return p.Label
	}
	return p.Label + " (" + p.Timezone + ")"
}
