package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"route-weather/internal/config"
	"route-weather/internal/dashboard"
	"route-weather/internal/route"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

const shutdownTimeout = 10 * time.Second

// App encapsulates application dependencies
type App struct {
	router  *gin.Engine
	logger  *slog.Logger
	cfg     *config.Config
	shell   *dashboard.Shell
	results dashboard.ResultsHandler
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	assembler, err := route.NewAssemblerFromConfig(cfg, logger)
	if err != nil {
		return nil, err
	}
	return newApp(cfg, logger, assembler)
}

func newApp(cfg *config.Config, logger *slog.Logger, assembler dashboard.RouteAssembler) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))

	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	// Both dashboard actions are bound here, once
	results := dashboard.NewResultsHandler(assembler)

	app := &App{
		router:  router,
		logger:  logger.With("component", "api"),
		cfg:     cfg,
		shell:   dashboard.NewShell(dashboard.AddStop, results),
		results: results,
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run serves until ctx is cancelled, then drains in-flight requests
func (app *App) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           app.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info("shutdown signal received, draining requests")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
