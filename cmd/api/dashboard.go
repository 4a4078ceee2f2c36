package main

import (
	"html/template"
	"net/http"
	"strconv"

	"route-weather/internal/dashboard"
	"route-weather/internal/render"

	"github.com/gin-gonic/gin"
)

const pageTemplate = "index.html"

// pageData is the view plus the figures serialized for plotly.js
type pageData struct {
	View       dashboard.View
	ChartJSON  template.JS
	MapJSON    template.JS
	DistanceKm string
	Polyline   string
}

// handleDashboard renders the page in its initial prompt state
func (app *App) handleDashboard(c *gin.Context) {
	view := app.shell.Dispatch(c.Request.Context(), dashboard.ActionLoad, dashboard.NewForm())
	app.renderPage(c, view)
}

// handleDashboardAction applies the posted action to the posted form state
func (app *App) handleDashboardAction(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "invalid form: %v", err)
		return
	}

	form := dashboard.ParseForm(c.Request.PostForm)
	action := dashboard.Action(c.PostForm(dashboard.FieldAction))

	view := app.shell.Dispatch(c.Request.Context(), action, form)
	app.renderPage(c, view)
}

func (app *App) renderPage(c *gin.Context, view dashboard.View) {
	chart, err := figureJS(view.Results.Chart)
	if err != nil {
		app.logger.Error("failed to encode chart", "error", err)
		c.String(http.StatusInternalServerError, "failed to render chart")
		return
	}
	routeMap, err := figureJS(view.Results.Map)
	if err != nil {
		app.logger.Error("failed to encode map", "error", err)
		c.String(http.StatusInternalServerError, "failed to render map")
		return
	}

	data := pageData{
		View:      view,
		ChartJSON: chart,
		MapJSON:   routeMap,
	}
	if view.Results.Triggered && len(view.Results.Route.Points) > 1 {
		data.DistanceKm = strconv.FormatFloat(view.Results.Route.DistanceKm(), 'f', 1, 64)
		data.Polyline = view.Results.Route.Polyline()
	}

	c.HTML(http.StatusOK, pageTemplate, data)
}

// figureJS is safe to embed in a script block: the encoder escapes <, > and &
func figureJS(f render.Figure) (template.JS, error) {
	b, err := f.JSON()
	if err != nil {
		return "", err
	}
	return template.JS(b), nil
}
