package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const landingMessage = "Welcome to Steam Magic Hat API"

// Home serves the landing text.
func Home(c echo.Context) error {
	return c.String(http.StatusOK, landingMessage)
}

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
