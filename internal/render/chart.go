package render

import "route-weather/internal/types"

// TemperatureChart draws one lines+markers series per distinct location, in
// order of first appearance. Timestamps are used as-is for the x axis.
func TemperatureChart(samples []types.TemperatureSample) Figure {
	if len(samples) == 0 {
		return Placeholder(TitleNoData)
	}

	index := make(map[string]int)
	traces := make([]Trace, 0)
	for _, s := range samples {
		i, ok := index[s.Location]
		if !ok {
			i = len(traces)
			index[s.Location] = i
			traces = append(traces, Trace{
				Type: "scatter",
				Mode: "lines+markers",
				Name: s.Location,
			})
		}
		traces[i].X = append(traces[i].X, s.Timestamp)
		traces[i].Y = append(traces[i].Y, s.Temperature)
		traces[i].Text = append(traces[i].Text, s.Condition)
	}

	return Figure{
		Data: traces,
		Layout: Layout{
			Title: &Title{Text: TitleTemperature},
			XAxis: &Axis{Title: Title{Text: "Time"}},
			YAxis: &Axis{Title: Title{Text: "Temperature (°C)"}},
		},
	}
}
