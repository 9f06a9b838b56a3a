package inits

import (
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type recordingHasher struct {
	seen []string
}

func (h *recordingHasher) Hash(plaintext string) (string, error) {
	h.seen = append(h.seen, plaintext)
	return "digest:" + plaintext, nil
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestInitDataSkipsPopulatedDatabase(t *testing.T) {
	db, mock := newMockDB(t)
	h := &recordingHasher{}

	mock.ExpectQuery(`SELECT count\(\*\) FROM "accounts"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	require.NoError(t, initData(db, h))
	assert.Empty(t, h.seen)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitDataSeedsAccounts(t *testing.T) {
	db, mock := newMockDB(t)
	h := &recordingHasher{}

	mock.ExpectQuery(`SELECT count\(\*\) FROM "accounts"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	for i := range seedAccounts {
		mock.ExpectQuery(`INSERT INTO "members"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(i + 1))
		mock.ExpectQuery(`INSERT INTO "accounts"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(i + 1))
	}
	mock.ExpectCommit()

	require.NoError(t, initData(db, h))
	assert.NoError(t, mock.ExpectationsWereMet())

	require.Len(t, h.seen, len(seedAccounts))
	for i, seed := range seedAccounts {
		assert.Equal(t, seed.username+"123", h.seen[i])
	}
}

func TestSeedAccountsHaveOneAdmin(t *testing.T) {
	admins := 0
	usernames := map[string]bool{}
	for _, seed := range seedAccounts {
		if seed.role == "admin" {
			admins++
		}
		assert.False(t, usernames[seed.username], "duplicate username %s", seed.username)
		usernames[seed.username] = true
		assert.True(t, seed.member.Grade.Valid(), seed.username)
		assert.Equal(t, strings.ToLower(seed.username), seed.username)
	}
	assert.Equal(t, 1, admins)
	assert.Len(t, usernames, 6)
}
