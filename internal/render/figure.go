// Package render builds plotly.js figure documents from route results.
package render

import "github.com/goccy/go-json"

const (
	TitleTemperature = "Temperature forecast"
	TitleNoData      = "No weather data found"
	TitleNoRoute     = "Route not found"
	TitlePrompt      = "Enter a start and end point"
)

// Figure is a plotly figure: a list of traces and a layout
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

type Trace struct {
	Type   string    `json:"type"`
	Mode   string    `json:"mode,omitempty"`
	Name   string    `json:"name,omitempty"`
	X      []string  `json:"x,omitempty"`
	Y      []float64 `json:"y,omitempty"`
	Lat    []float64 `json:"lat,omitempty"`
	Lon    []float64 `json:"lon,omitempty"`
	Text   []string  `json:"text,omitempty"`
	Marker *Marker   `json:"marker,omitempty"`
}

type Marker struct {
	Size int `json:"size"`
}

type Layout struct {
	Title  *Title  `json:"title,omitempty"`
	XAxis  *Axis   `json:"xaxis,omitempty"`
	YAxis  *Axis   `json:"yaxis,omitempty"`
	Mapbox *Mapbox `json:"mapbox,omitempty"`
	Margin *Margin `json:"margin,omitempty"`
}

type Title struct {
	Text string `json:"text"`
}

type Axis struct {
	Title Title `json:"title"`
}

type Mapbox struct {
	Style  string `json:"style"`
	Center LatLon `json:"center"`
	Zoom   int    `json:"zoom"`
}

type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type Margin struct {
	R int `json:"r"`
	T int `json:"t"`
	L int `json:"l"`
	B int `json:"b"`
}

// Placeholder is a figure with no traces and only a title
func Placeholder(title string) Figure {
	return Figure{
		Data:   []Trace{},
		Layout: Layout{Title: &Title{Text: title}},
	}
}

// TitleText returns the layout title or "" when there is none
func (f Figure) TitleText() string {
	if f.Layout.Title == nil {
		return ""
	}
	return f.Layout.Title.Text
}

// JSON encodes the figure for plotly.newPlot
func (f Figure) JSON() ([]byte, error) {
	if f.Data == nil {
		f.Data = []Trace{}
	}
	return json.Marshal(f)
}
