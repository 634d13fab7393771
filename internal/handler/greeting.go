package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GreetingMessage is the body served at the root path.
const GreetingMessage = "Hello from DevSecOps Intro!"

// Greeting writes GreetingMessage as plain text.
func Greeting(c echo.Context) error {
	return c.String(http.StatusOK, GreetingMessage)
}
