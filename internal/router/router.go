package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/al-fatah/devsecops-intro/internal/handler"
)

// RegisterRoutes registers the service's routes on the provided Echo instance.
// Both routes are GET only; any other method or path is left to Echo's
// default handling (405 or 404).
func RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Greeting)
	// Probed by load balancers and monitoring systems.
	e.GET("/health", handler.Health)
}
