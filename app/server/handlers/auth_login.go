package handlers

import (
	"net/http"
	"orpheo-api/app/server/auth"
	"orpheo-api/app/server/metrics"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Success   bool         `json:"success"`
	Message   string       `json:"message"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      auth.Profile `json:"user"`
}

func (a *App) AuthLogin(c echo.Context) error {
	rctx := c.Request().Context()

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	// Missing fields can never match an account
	if err := c.Validate(&req); err != nil {
		a.metrics.AuthEvent(metrics.OperationLogin, auth.Kind(auth.ErrInvalidCredentials))
		return a.erm(c, http.StatusUnauthorized, auth.Message(auth.ErrInvalidCredentials))
	}

	res, err := a.auth.Login(rctx, req.Username, req.Password)
	a.metrics.AuthEvent(metrics.OperationLogin, auth.Kind(err))
	if err != nil {
		if auth.Classify(err) == nil {
			a.l.Error("failed to login", zap.String("username", req.Username), zap.Error(err))
			return a.erm(c, http.StatusInternalServerError, auth.Message(err))
		}
		return a.erm(c, http.StatusUnauthorized, auth.Message(err))
	}

	return c.JSON(http.StatusOK, &loginResponse{
		Success:   true,
		Message:   "login successful",
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
		User:      res.Profile,
	})
}
