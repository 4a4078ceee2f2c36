package types

// TemperatureSample is one forecast time slot for one location.
// Timestamp is kept exactly as the weather service returned it.
type TemperatureSample struct {
	Location    string  `json:"location"`
	Timestamp   string  `json:"time"`
	Temperature float64 `json:"temperature"`
	Condition   string  `json:"weather"`
}
