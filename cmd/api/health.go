package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PingResponse reports liveness and which forecast provider is wired
type PingResponse struct {
	Message  string `json:"message" example:"pong"`
	Provider string `json:"provider" example:"openweathermap"`
}

// handlePing godoc
// @Summary Ping health check
// @Description Check that the server is up and report the configured forecast provider
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (app *App) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message:  "pong",
		Provider: app.cfg.Weather.Provider,
	})
}
