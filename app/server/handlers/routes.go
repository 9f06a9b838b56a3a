package handlers

import (
	"net/http"
	"orpheo-api/app/server/gen/oapi/api"

	"github.com/labstack/echo/v4"
)

type routeAccess int

const (
	accessMember routeAccess = iota // any signed-in active account
	accessPublic
	accessAdmin
)

// Routes not listed here require a signed-in account.
var routeAccessRules = map[string]routeAccess{
	http.MethodPost + " /api/auth/login":      accessPublic,
	http.MethodPost + " /api/auth/register":   accessPublic,
	http.MethodPost + " /api/members":         accessAdmin,
	http.MethodPut + " /api/members/:id":      accessAdmin,
	http.MethodDelete + " /api/members/:id":   accessAdmin,
	http.MethodPost + " /api/documents":       accessAdmin,
	http.MethodDelete + " /api/documents/:id": accessAdmin,
}

// guardedRouter attaches the authentication middlewares matching
// routeAccessRules to every route the generated code registers.
type guardedRouter struct {
	e       *echo.Echo
	authMW  echo.MiddlewareFunc
	adminMW echo.MiddlewareFunc
}

func (r *guardedRouter) add(method, path string, h echo.HandlerFunc, m []echo.MiddlewareFunc) *echo.Route {
	var guards []echo.MiddlewareFunc
	switch routeAccessRules[method+" "+path] {
	case accessPublic:
	case accessAdmin:
		guards = []echo.MiddlewareFunc{r.authMW, r.adminMW}
	default:
		guards = []echo.MiddlewareFunc{r.authMW}
	}
	return r.e.Add(method, path, h, append(guards, m...)...)
}

func (r *guardedRouter) CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.add(http.MethodConnect, path, h, m)
}

func (r *guardedRouter) DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.add(http.MethodDelete, path, h, m)
}

func (r *guardedRouter) GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.add(http.MethodGet, path, h, m)
}

func (r *guardedRouter) HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.add(http.MethodHead, path, h, m)
}

func (r *guardedRouter) OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.add(http.MethodOptions, path, h, m)
}

func (r *guardedRouter) PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.add(http.MethodPatch, path, h, m)
}

func (r *guardedRouter) POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.add(http.MethodPost, path, h, m)
}

func (r *guardedRouter) PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.add(http.MethodPut, path, h, m)
}

func (r *guardedRouter) TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.add(http.MethodTrace, path, h, m)
}

// Routes registers every endpoint. authMW guards everything below /api except
// login and registration; adminMW additionally restricts writes.
func (a *App) Routes(e *echo.Echo, authMW, adminMW echo.MiddlewareFunc) {
	e.Validator = NewValidator()

	e.GET("/", a.Root)
	e.GET("/healthz", a.HealthCheck)

	api.RegisterHandlers(&guardedRouter{e: e, authMW: authMW, adminMW: adminMW}, a)
}
