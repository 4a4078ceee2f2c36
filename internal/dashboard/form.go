package dashboard

import (
	"fmt"
	"net/url"
	"strings"
)

// TimeRange is the forecast window chosen in the selector. It is collected and
// echoed back but no lookup consumes it.
type TimeRange string

const (
	TimeRangeToday TimeRange = "today"
	TimeRange3Days TimeRange = "3days"
	TimeRangeWeek  TimeRange = "week"
)

type TimeRangeOption struct {
	Value TimeRange
	Label string
}

// TimeRangeOptions lists the selector entries in display order
var TimeRangeOptions = []TimeRangeOption{
	{Value: TimeRangeToday, Label: "Today"},
	{Value: TimeRange3Days, Label: "3 days"},
	{Value: TimeRangeWeek, Label: "Week"},
}

// ParseTimeRange falls back to today for unknown values
func ParseTimeRange(s string) TimeRange {
	switch tr := TimeRange(strings.ToLower(strings.TrimSpace(s))); tr {
	case TimeRangeToday, TimeRange3Days, TimeRangeWeek:
		return tr
	default:
		return TimeRangeToday
	}
}

// StopField is one intermediate-stop text input
type StopField struct {
	ID          string
	Index       int
	Placeholder string
	Value       string
}

func newStopField(index int, value string) StopField {
	return StopField{
		ID:          fmt.Sprintf("stop-%d", index),
		Index:       index,
		Placeholder: fmt.Sprintf("Stop %d", index),
		Value:       value,
	}
}

// Form is the complete dashboard input state
type Form struct {
	Start     string
	End       string
	Stops     []StopField
	TimeRange TimeRange
}

// NewForm returns the initial state: no stops, today selected
func NewForm() Form {
	return Form{
		Stops:     []StopField{},
		TimeRange: TimeRangeToday,
	}
}

// StopValues returns the stop inputs in add order, blanks included
func (f Form) StopValues() []string {
	values := make([]string, 0, len(f.Stops))
	for _, s := range f.Stops {
		values = append(values, s.Value)
	}
	return values
}

// Form field names used by the page and by ParseForm
const (
	FieldAction    = "action"
	FieldStart     = "start"
	FieldEnd       = "end"
	FieldStop      = "stop"
	FieldTimeRange = "time_range"
)

// ParseForm rebuilds the form state from a posted page. Every posted stop
// input, blank or not, becomes a field so the list never shrinks.
func ParseForm(values url.Values) Form {
	form := NewForm()
	form.Start = values.Get(FieldStart)
	form.End = values.Get(FieldEnd)
	form.TimeRange = ParseTimeRange(values.Get(FieldTimeRange))
	for i, v := range values[FieldStop] {
		form.Stops = append(form.Stops, newStopField(i+1, v))
	}
	return form
}
