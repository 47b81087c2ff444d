package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fitlog/exercise-tracker/internal/api/handler"
	"github.com/fitlog/exercise-tracker/internal/core/ports"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(service ports.TrackerService, db *mongo.Database, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.Logger())

	// --- Static landing page + assets ---
	e.File("/", "views/index.html")
	e.Static("/public", "public")

	// --- API routes ---
	userHandler := handler.NewUserHandler(service)
	exerciseHandler := handler.NewExerciseHandler(service)

	e.POST("/api/users", userHandler.Create)
	e.GET("/api/users", userHandler.List)
	e.POST("/api/users/:id/exercises", exerciseHandler.Log)
	e.GET("/api/users/:id/logs", exerciseHandler.Logs)

	// --- Health probes + metrics ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is MongoDB up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
