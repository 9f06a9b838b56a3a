package middlewares

import (
	"context"
	"net/http"
	"orpheo-api/app/server/auth"
	"orpheo-api/app/server/constants"
	"orpheo-api/app/server/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type Authenticator interface {
	Authenticate(ctx context.Context, header string) (*auth.Identity, error)
}

// Auth rejects requests without a valid bearer token and attaches the caller's identity.
func Auth(guard Authenticator, m *metrics.Metrics, l *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rctx := c.Request().Context()

			identity, err := guard.Authenticate(rctx, c.Request().Header.Get(echo.HeaderAuthorization))
			m.AuthEvent(metrics.OperationAuthenticate, auth.Kind(err))
			if err != nil {
				if auth.Classify(err) == nil {
					l.Error("failed to authenticate request",
						zap.String("requestID", c.Response().Header().Get(echo.HeaderXRequestID)),
						zap.Error(err),
					)
					return c.JSON(http.StatusInternalServerError, echo.Map{"message": auth.Message(err)})
				}
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": auth.Message(err)})
			}

			c.Set(constants.ContextKeyIdentity, identity)

			return next(c)
		}
	}
}

// RequireAdmin must run after Auth.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !IdentityOf(c).IsAdmin() {
				return c.JSON(http.StatusForbidden, echo.Map{"message": "administrator role required"})
			}
			return next(c)
		}
	}
}

// IdentityOf returns the identity attached by Auth, or nil on unauthenticated routes.
func IdentityOf(c echo.Context) *auth.Identity {
	identity, _ := c.Get(constants.ContextKeyIdentity).(*auth.Identity)
	return identity
}
