package apidocs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecIsValid(t *testing.T) {
	apiJSON, err := Spec(context.Background())
	require.NoError(t, err)

	var doc struct {
		Paths map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(apiJSON, &doc))
	for _, p := range []string{"/api/auth/login", "/api/auth/register", "/api/auth/me", "/api/members", "/api/documents"} {
		assert.Contains(t, doc.Paths, p)
	}
}

func serveDoc(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Pre(Doc("/api", []byte(`{"openapi":"3.0.3"}`)))
	e.GET("/api/members", func(c echo.Context) error {
		return c.NoContent(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestDoc(t *testing.T) {
	rec := serveDoc(t, "/api/apispec.json")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"openapi":"3.0.3"}`, rec.Body.String())

	rec = serveDoc(t, "/api/apidocs")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-url="/api/apispec.json"`)

	rec = serveDoc(t, "/api")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/api/apidocs", rec.Header().Get(echo.HeaderLocation))

	rec = serveDoc(t, "/api/members")
	assert.Equal(t, http.StatusTeapot, rec.Code, "other routes pass through")
}
