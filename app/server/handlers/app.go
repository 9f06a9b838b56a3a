package handlers

import (
	"context"
	"orpheo-api/app/server/auth"
	"orpheo-api/app/server/gen/oapi/api"
	"orpheo-api/app/server/metrics"
	"orpheo-api/app/server/models"
	"orpheo-api/app/server/storage"
	"orpheo-api/app/server/store"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var _ api.ServerInterface = (*App)(nil)

// Store is the persistence used by the member and document handlers.
type Store interface {
	ListMembers(ctx context.Context, filter store.MemberFilter, page store.Page) ([]models.Member, int64, error)
	MemberByID(ctx context.Context, id uint) (*models.Member, error)
	MemberByRUT(ctx context.Context, rut string) (*models.Member, error)
	CreateMember(ctx context.Context, member *models.Member) error
	SaveMember(ctx context.Context, member *models.Member) error
	DeleteMember(ctx context.Context, id uint) error
	AccountExistsForMember(ctx context.Context, memberID uint) (bool, error)

	ListDocuments(ctx context.Context, categories []models.Grade, page store.Page) ([]models.Document, int64, error)
	DocumentByID(ctx context.Context, id uint) (*models.Document, error)
	CreateDocument(ctx context.Context, document *models.Document) error
	DeleteDocument(ctx context.Context, id uint) error
}

type App struct {
	l         *zap.Logger      // logger
	store     Store            // database
	rdb       *redis.Client    // member cache
	auth      *auth.Service    // login and registration
	storage   storage.Storage  // document files
	metrics   *metrics.Metrics // counters, may be nil
	maxUpload int64            // largest accepted document, in bytes
}

func NewApp(l *zap.Logger, s Store, rdb *redis.Client, authService *auth.Service, st storage.Storage, m *metrics.Metrics, maxUpload int64) *App {
	return &App{
		l:         l,
		store:     s,
		rdb:       rdb,
		auth:      authService,
		storage:   st,
		metrics:   m,
		maxUpload: maxUpload,
	}
}
