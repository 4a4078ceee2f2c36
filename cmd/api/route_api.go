package main

import (
	"net/http"

	"route-weather/internal/dashboard"
	"route-weather/internal/render"
	"route-weather/internal/types"

	"github.com/gin-gonic/gin"
)

// RouteRequest is the JSON form of the dashboard inputs
type RouteRequest struct {
	Start     string   `json:"start" example:"Denver"`
	End       string   `json:"end" example:"Salt Lake City"`
	Stops     []string `json:"stops" example:"Grand Junction"`
	TimeRange string   `json:"time_range" example:"today" enums:"today,3days,week"`
}

// RouteForecastResponse carries both figures and the data behind them
type RouteForecastResponse struct {
	Triggered  bool                      `json:"triggered"`
	Chart      render.Figure             `json:"chart"`
	Map        render.Figure             `json:"map"`
	DistanceKm float64                   `json:"distance_km" example:"835.2"`
	Polyline   string                    `json:"polyline"`
	Samples    []types.TemperatureSample `json:"samples"`
	Points     []types.RoutePoint        `json:"points"`
}

func (app *App) runRequest(c *gin.Context) (dashboard.Results, bool) {
	var req RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return dashboard.Results{}, false
	}

	return app.results(c.Request.Context(), req.Start, req.Stops, req.End, dashboard.ParseTimeRange(req.TimeRange)), true
}

// handleRouteForecast godoc
// @Summary Forecast along a route
// @Description Geocode each place, fetch its forecast and return the temperature chart and route map figures. Places that cannot be geocoded are skipped. A blank start or end returns prompt figures without any lookup.
// @Tags route
// @Accept json
// @Produce json
// @Param request body RouteRequest true "Ordered places"
// @Success 200 {object} RouteForecastResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/route/forecast [post]
func (app *App) handleRouteForecast(c *gin.Context) {
	results, ok := app.runRequest(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, RouteForecastResponse{
		Triggered:  results.Triggered,
		Chart:      results.Chart,
		Map:        results.Map,
		DistanceKm: results.Route.DistanceKm(),
		Polyline:   results.Route.Polyline(),
		Samples:    results.Route.Samples,
		Points:     results.Route.Points,
	})
}

// handleRouteGeoJSON godoc
// @Summary Route as GeoJSON
// @Description Geocode each place and return a FeatureCollection with one Point per resolved place and a LineString through them
// @Tags route
// @Accept json
// @Produce application/geo+json
// @Param request body RouteRequest true "Ordered places"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/route/geojson [post]
func (app *App) handleRouteGeoJSON(c *gin.Context) {
	results, ok := app.runRequest(c)
	if !ok {
		return
	}

	body, err := results.Route.FeatureCollection().MarshalJSON()
	if err != nil {
		app.logger.Error("failed to encode route geojson", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode route"})
		return
	}

	c.Data(http.StatusOK, "application/geo+json", body)
}
