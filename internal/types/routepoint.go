package types

// RoutePoint is a successfully geocoded location on the route
type RoutePoint struct {
	Label       string `json:"label"`
	Coordinates Coords `json:"coordinates"`
	Timezone    string `json:"timezone,omitempty"`
}
