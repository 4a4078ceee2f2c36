package openmeteo

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=39.11&longitude=-107.65&hourly=temperature_2m,weather_code&timezone=GMT&forecast_days=5&timeformat=iso8601&temperature_unit=celsius
const (
	baseForecastURL = "https://api.open-meteo.com"
)

type ForecastClient struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewForecastClient(logger *slog.Logger, timeout time.Duration) *ForecastClient {
	return NewForecastClientWithBaseURL(logger, timeout, baseForecastURL)
}

func NewForecastClientWithBaseURL(logger *slog.Logger, timeout time.Duration, base string) *ForecastClient {
	if base == "" {
		base = baseForecastURL
	}
	return &ForecastClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    base,
		logger:     logger.With("component", "openmeteo-client"),
	}
}

// GetForecast fetches hourly temperature and weather code for the given coordinates
func (c *ForecastClient) GetForecast(ctx context.Context, latitude, longitude float64, forecastDays int) (*ForecastAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	hourlyVars := []string{
		"temperature_2m",
		"weather_code",
	}

	u = u.JoinPath("v1", "forecast")
	q := u.Query()
	q.Set("latitude", fmt.Sprintf("%f", latitude))
	q.Set("longitude", fmt.Sprintf("%f", longitude))
	q.Set("hourly", strings.Join(hourlyVars, ","))
	q.Set("timezone", "GMT")
	q.Set("forecast_days", strconv.Itoa(forecastDays))
	q.Set("timeformat", "iso8601")
	q.Set("temperature_unit", "celsius")
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching Open-Meteo forecast",
		"latitude", latitude,
		"longitude", longitude,
		"url", u.String(),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to fetch Open-Meteo forecast",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Open-Meteo API returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp ForecastAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode Open-Meteo response", "error", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}
