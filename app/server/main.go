package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"orpheo-api/app/server/apidocs"
	"orpheo-api/app/server/auth"
	"orpheo-api/app/server/constants"
	"orpheo-api/app/server/handlers"
	"orpheo-api/app/server/inits"
	"orpheo-api/app/server/jwt"
	"orpheo-api/app/server/metrics"
	"orpheo-api/app/server/middlewares"
	"orpheo-api/app/server/password"
	"orpheo-api/app/server/store"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/unrolled/secure"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	// Config
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// Logger
	l, err := inits.Logger(cfg.System.IsProd)
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}
	defer func() { _ = l.Sync() }()

	l.Debug("logger initialized")

	hasher := password.New(constants.PasswordHashCost)

	// Database
	db, err := inits.DB(cfg.System.DBConnectionString, hasher)
	if err != nil {
		l.Fatal("error initializing DB connection", zap.Error(err))
	}

	// Redis
	rdb, err := inits.Redis(cfg.System.RedisConnectionString)
	if err != nil {
		l.Fatal("error initializing Redis connection", zap.Error(err))
	}
	defer func() { _ = rdb.Close() }()

	// Document storage
	st, err := inits.Storage(context.Background(), cfg)
	if err != nil {
		l.Fatal("error initializing document storage", zap.Error(err))
	}

	// JWT
	j, err := jwt.New(cfg.Security.JWTSecret)
	if err != nil {
		l.Fatal("error initializing JWT", zap.Error(err))
	}

	// Auth
	s := store.New(db)
	authService, err := auth.NewService(s, hasher, j, auth.Options{
		TokenTTL:     constants.AuthTokenDuration,
		AutoActivate: cfg.Security.AutoActivateRegistrations,
	})
	if err != nil {
		l.Fatal("error initializing auth service", zap.Error(err))
	}
	guard := auth.NewGuard(s, j)

	m := metrics.New()

	// Handler app
	handlerApp := handlers.NewApp(l, s, rdb, authService, st, m, cfg.Storage.UploadMaxBytes)

	// Echo
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l.Info("request",
				zap.String("method", v.Method),
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("requestID", v.RequestID),
			)

			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.System.CORSOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(echo.WrapMiddleware(secure.New(secure.Options{
		ContentTypeNosniff: true,
		FrameDeny:          true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "no-referrer",
		IsDevelopment:      !cfg.System.IsProd,
	}).Handler))
	// Room for the multipart envelope around the largest document
	e.Use(middleware.BodyLimit(fmt.Sprintf("%dK", cfg.Storage.UploadMaxBytes/1024+1024)))
	e.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			return !strings.HasPrefix(c.Request().URL.Path, "/api/auth/")
		},
		Store: middleware.NewRateLimiterMemoryStore(rate.Limit(cfg.Security.AuthRateLimit)),
	}))

	// Routes
	handlerApp.Routes(e, middlewares.Auth(guard, m, l), middlewares.RequireAdmin())
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	// API documentation
	if !cfg.System.IsProd {
		if spec, err := apidocs.Spec(context.Background()); err != nil {
			l.Error("error initializing api docs", zap.Error(err))
		} else {
			e.Pre(apidocs.Doc("/api", spec))
		}
	}

	// Serve until interrupted
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.System.Listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		l.Error("failed to shut down the server", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
