package openweathermap

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
)

// API Docs: https://openweathermap.org/forecast5
// Sample request: https://api.openweathermap.org/data/2.5/forecast?lat=39.11&lon=-107.65&appid=KEY&units=metric
const (
	baseURL = "https://api.openweathermap.org"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger, apiKey string, timeout time.Duration) *Client {
	return NewClientWithBaseURL(logger, apiKey, timeout, baseURL)
}

func NewClientWithBaseURL(logger *slog.Logger, apiKey string, timeout time.Duration, base string) *Client {
	if base == "" {
		base = baseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    base,
		apiKey:     apiKey,
		logger:     logger.With("component", "openweathermap-client"),
	}
}

// GetForecast fetches the 5 day / 3 hour forecast in metric units
func (c *Client) GetForecast(ctx context.Context, latitude, longitude float64) (ForecastAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u = u.JoinPath("data", "2.5", "forecast")
	q := u.Query()
	q.Set("lat", fmt.Sprintf("%f", latitude))
	q.Set("lon", fmt.Sprintf("%f", longitude))
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")
	u.RawQuery = q.Encode()

	// The URL carries the API key, so it is not logged
	c.logger.Debug("fetching OpenWeatherMap forecast",
		"latitude", latitude,
		"longitude", longitude,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to fetch OpenWeatherMap forecast",
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
		c.logger.Error("OpenWeatherMap API returned error",
			"status_code", resp.StatusCode,
			"latitude", latitude,
			"longitude", longitude,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp ForecastAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode OpenWeatherMap response",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return apiResp, nil
}
