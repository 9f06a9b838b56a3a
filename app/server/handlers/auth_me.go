package handlers

import (
	"errors"
	"net/http"
	"orpheo-api/app/server/auth"
	"orpheo-api/app/server/middlewares"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (a *App) AuthMe(c echo.Context) error {
	identity := middlewares.IdentityOf(c)
	if identity == nil {
		return a.er(c, http.StatusUnauthorized)
	}

	profile, err := a.auth.Profile(c.Request().Context(), identity.ID)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidAccount) {
			return a.erm(c, http.StatusUnauthorized, auth.Message(err))
		}
		a.l.Error("failed to get profile", zap.Uint("id", identity.ID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, profile)
}
