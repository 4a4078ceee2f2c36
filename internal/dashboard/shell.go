// Package dashboard holds the UI shell: form state, the append-only stop list
// and the two user actions.
package dashboard

import (
	"context"
	"strings"

	"route-weather/internal/render"
	"route-weather/internal/route"
	"route-weather/internal/types"
)

// Action is a user action on the page
type Action string

const (
	ActionLoad        Action = ""
	ActionAddStop     Action = "add-stop"
	ActionShowResults Action = "show-results"
)

// AddStopHandler returns the stop list after one "add stop" press
type AddStopHandler func(stops []StopField) []StopField

// ResultsHandler runs one full fetch-and-render pass for the given inputs
type ResultsHandler func(ctx context.Context, start string, stops []string, end string, timeRange TimeRange) Results

// Results is what the two output panels show
type Results struct {
	Triggered bool
	Chart     render.Figure
	Map       render.Figure
	Route     route.Result
}

// View is everything the page template needs
type View struct {
	Form       Form
	Results    Results
	TimeRanges []TimeRangeOption
}

// Shell dispatches user actions to handlers registered at construction
type Shell struct {
	onAddStop     AddStopHandler
	onShowResults ResultsHandler
}

func NewShell(onAddStop AddStopHandler, onShowResults ResultsHandler) *Shell {
	return &Shell{
		onAddStop:     onAddStop,
		onShowResults: onShowResults,
	}
}

// Dispatch applies action to form and returns the next view
func (s *Shell) Dispatch(ctx context.Context, action Action, form Form) View {
	if form.Stops == nil {
		form.Stops = []StopField{}
	}
	if form.TimeRange == "" {
		form.TimeRange = TimeRangeToday
	}

	results := Prompt()
	switch action {
	case ActionAddStop:
		form.Stops = s.onAddStop(form.Stops)
	case ActionShowResults:
		results = s.onShowResults(ctx, form.Start, form.StopValues(), form.End, form.TimeRange)
	}

	return View{
		Form:       form,
		Results:    results,
		TimeRanges: TimeRangeOptions,
	}
}

// AddStop appends exactly one field numbered after the existing ones.
// There is no remove transition.
func AddStop(stops []StopField) []StopField {
	next := make([]StopField, len(stops), len(stops)+1)
	copy(next, stops)
	return append(next, newStopField(len(stops)+1, ""))
}

// Prompt is shown before the first trigger and when start or end is blank
func Prompt() Results {
	return Results{
		Chart: render.Placeholder(render.TitlePrompt),
		Map:   render.Placeholder(render.TitlePrompt),
		Route: route.Result{
			Samples: []types.TemperatureSample{},
			Points:  []types.RoutePoint{},
		},
	}
}

// RouteAssembler is the part of route.Assembler the results handler needs
type RouteAssembler interface {
	Assemble(ctx context.Context, locations []string) route.Result
}

// NewResultsHandler returns the "show results" handler. Blank start or end
// yields the prompt view without any lookup. The time range is accepted and
// ignored.
func NewResultsHandler(assembler RouteAssembler) ResultsHandler {
	return func(ctx context.Context, start string, stops []string, end string, _ TimeRange) Results {
		if strings.TrimSpace(start) == "" || strings.TrimSpace(end) == "" {
			return Prompt()
		}

		result := assembler.Assemble(ctx, route.Locations(start, stops, end))

		return Results{
			Triggered: true,
			Chart:     render.TemperatureChart(result.Samples),
			Map:       render.RouteMap(result.Points),
			Route:     result,
		}
	}
}
