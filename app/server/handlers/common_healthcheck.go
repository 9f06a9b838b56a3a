package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (a *App) HealthCheck(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func (a *App) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "Orpheo API running"})
}
