//go:build integration

package openmeteo

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"
)

func TestForecastClient_GetForecast_Integration(t *testing.T) {
	// Test coordinates: Aspen, CO area
	lat := 39.11539
	lon := -107.65840
	forecastDays := 1

	client := NewForecastClient(slog.New(slog.NewTextHandler(os.Stdout, nil)), 10*time.Second)

	t.Logf("Making API call to OpenMeteo Forecast API...")
	t.Logf("Coordinates: lat=%f, lon=%f", lat, lon)

	resp, err := client.GetForecast(context.Background(), lat, lon, forecastDays)
	if err != nil {
		t.Fatalf("Failed to get forecast: %v", err)
	}

	rawJSON, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}
	t.Logf("Raw API Response:\n%s", string(rawJSON))

	if resp.Latitude < lat-1 || resp.Latitude > lat+1 {
		t.Errorf("Latitude mismatch: expected ~%f, got %f", lat, resp.Latitude)
	}

	if resp.Hourly == nil || len(resp.Hourly.Time) == 0 {
		t.Fatal("No hourly time data")
	}

	if len(resp.Hourly.Temperature2M) != len(resp.Hourly.Time) {
		t.Errorf("temperature_2m has %d values for %d timestamps", len(resp.Hourly.Temperature2M), len(resp.Hourly.Time))
	}
}
