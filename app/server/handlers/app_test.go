package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"orpheo-api/app/server/auth"
	"orpheo-api/app/server/jwt"
	"orpheo-api/app/server/metrics"
	"orpheo-api/app/server/middlewares"
	"orpheo-api/app/server/models"
	"orpheo-api/app/server/password"
	"orpheo-api/app/server/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type testEnv struct {
	e       *echo.Echo
	store   *fakeStore
	mr      *miniredis.Miniredis
	disk    *storage.Disk
	dir     string
	hasher  *password.Hasher
	tokens  *jwt.JWT
	metrics *metrics.Metrics
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	dir := t.TempDir()
	disk, err := storage.NewDisk(dir)
	require.NoError(t, err)

	tokens, err := jwt.New("handler-test-secret")
	require.NoError(t, err)

	fs := newFakeStore()
	hasher := password.New(bcrypt.MinCost)
	authService, err := auth.NewService(fs, hasher, tokens, auth.Options{
		TokenTTL:     time.Hour,
		AutoActivate: true,
	})
	require.NoError(t, err)

	m := metrics.New()
	l := zap.NewNop()
	app := NewApp(l, fs, rdb, authService, disk, m, 1024)

	e := echo.New()
	app.Routes(e, middlewares.Auth(auth.NewGuard(fs, tokens), m, l), middlewares.RequireAdmin())

	return &testEnv{
		e:       e,
		store:   fs,
		mr:      mr,
		disk:    disk,
		dir:     dir,
		hasher:  hasher,
		tokens:  tokens,
		metrics: m,
	}
}

// addAccount stores an active account with a linked member and returns a bearer token for it.
func (env *testEnv) addAccount(t *testing.T, username string, role models.Role, grade models.Grade) (*models.Account, string) {
	t.Helper()

	digest, err := env.hasher.Hash(username + "123")
	require.NoError(t, err)

	account := &models.Account{
		Username: username,
		Email:    username + "@orpheo.cl",
		Role:     role,
		Grade:    grade,
		Password: digest,
		IsActive: true,
	}
	member := &models.Member{FirstNames: "First " + username, LastNames: "Last " + username, Grade: grade, Active: true}
	require.NoError(t, env.store.CreateAccount(t.Context(), account, member))

	token, err := env.tokens.SignToken(&jwt.User{
		ID:       account.ID,
		Username: account.Username,
		Role:     account.Role,
		Grade:    account.Grade,
	}, time.Hour)
	require.NoError(t, err)

	return account, token
}

func (env *testEnv) do(t *testing.T, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) upload(t *testing.T, token, filename string, content []byte, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/documents", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)

	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}
