package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up the dashboard page and all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Dashboard page
	app.router.GET("/", app.handleDashboard)
	app.router.POST("/", app.handleDashboardAction)

	// Route endpoints
	v1 := app.router.Group("/api/v1")
	v1.POST("/route/forecast", app.handleRouteForecast)
	v1.POST("/route/geojson", app.handleRouteGeoJSON)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
