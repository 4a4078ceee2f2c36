package openweathermap

// ForecastAPIResponse is the decoded /data/2.5/forecast payload. It is kept
// untyped so that a response without the forecast list can be told apart from
// an empty one.
type ForecastAPIResponse map[string]any

// ForecastEntry is one three-hour slot extracted from the "list" array
type ForecastEntry struct {
	Time        string
	Temperature float64
	Description string
}

// Entries extracts the forecast slots. ok is false when the "list" field is
// missing or is not an array. Entries lacking dt_txt or main.temp are skipped.
func (r ForecastAPIResponse) Entries() (entries []ForecastEntry, ok bool) {
	raw, found := r["list"]
	if !found {
		return nil, false
	}
	list, isList := raw.([]any)
	if !isList {
		return nil, false
	}

	entries = make([]ForecastEntry, 0, len(list))
	for _, item := range list {
		obj, isObj := item.(map[string]any)
		if !isObj {
			continue
		}

		ts, hasTime := obj["dt_txt"].(string)
		main, hasMain := obj["main"].(map[string]any)
		if !hasTime || !hasMain {
			continue
		}
		temp, hasTemp := main["temp"].(float64)
		if !hasTemp {
			continue
		}

		entries = append(entries, ForecastEntry{
			Time:        ts,
			Temperature: temp,
			Description: firstDescription(obj["weather"]),
		})
	}

	return entries, true
}

func firstDescription(v any) string {
	conditions, ok := v.([]any)
	if !ok || len(conditions) == 0 {
		return ""
	}
	first, ok := conditions[0].(map[string]any)
	if !ok {
		return ""
	}
	desc, _ := first["description"].(string)
	return desc
}
