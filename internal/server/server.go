// Package server binds the HTTP listener and serves the service's routes.
package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/al-fatah/devsecops-intro/internal/config"
	"github.com/al-fatah/devsecops-intro/internal/router"
)

// New returns an Echo instance with all routes registered. Echo's banner and
// "http server started" output are hidden so Serve's line is the only
// startup output.
func New() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	router.RegisterRoutes(e)
	return e
}

// Listen binds port on all interfaces. The value is handed to the network
// stack untouched, so a malformed or out-of-range port surfaces here.
func Listen(port string) (net.Listener, error) {
	ln, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return nil, fmt.Errorf("listen on :%s: %w", port, err)
	}
	return ln, nil
}

// Serve logs the listening line and serves e on ln until the server is
// closed. Closing the server is a normal return, not an error.
func Serve(e *echo.Echo, ln net.Listener, logger *slog.Logger) error {
	_, port, err := net.SplitHostPort(ln.Addr().String())
	if err != nil {
		return fmt.Errorf("listener address: %w", err)
	}

	e.Listener = ln
	logger.Info("App listening on :"+port, slog.String("port", port))

	if err := e.Start(ln.Addr().String()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Run binds the configured port and serves until the process exits.
func Run(cfg config.Config, logger *slog.Logger) error {
	ln, err := Listen(cfg.Port)
	if err != nil {
		return err
	}
	return Serve(New(), ln, logger)
}
