package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"orpheo-api/app/server/jwt"
	"orpheo-api/app/server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) login(t *testing.T, username, plaintext string) string {
	t.Helper()
	res, err := f.service.Login(context.Background(), username, plaintext)
	require.NoError(t, err)
	return res.Token
}

func TestAuthenticateLoginToken(t *testing.T) {
	f := newFixture(t)
	account := f.seed(t, "companero", "companero123", models.RoleGeneral, models.GradeCompanion, true)
	token := f.login(t, "companero", "companero123")

	identity, err := f.guard.Authenticate(context.Background(), "Bearer "+token)
	require.NoError(t, err)

	assert.Equal(t, &Identity{
		ID:       account.ID,
		Username: "companero",
		Role:     models.RoleGeneral,
		Grade:    models.GradeCompanion,
	}, identity)
	assert.False(t, identity.IsAdmin())
}

func TestAuthenticateSchemeIsCaseInsensitive(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "admin", "admin123", models.RoleAdmin, models.GradeMaster, true)
	token := f.login(t, "admin", "admin123")

	identity, err := f.guard.Authenticate(context.Background(), "bearer "+token)
	require.NoError(t, err)
	assert.True(t, identity.IsAdmin())
}

func TestAuthenticateHeaderShape(t *testing.T) {
	f := newFixture(t)

	_, err := f.guard.Authenticate(context.Background(), "")
	assert.Equal(t, ErrMissingToken, err)

	for _, header := range []string{"Bearer", "Bearer ", "Token abc", "abc", "Basic YWRtaW46YWRtaW4xMjM="} {
		_, err := f.guard.Authenticate(context.Background(), header)
		assert.Equal(t, ErrMalformedToken, err, "header %q", header)
	}

	_, err = f.guard.Authenticate(context.Background(), "Bearer not.a.token")
	assert.ErrorIs(t, err, ErrMalformedToken)
}

func TestAuthenticateExpiredToken(t *testing.T) {
	f := newFixture(t)
	account := f.seed(t, "admin", "admin123", models.RoleAdmin, models.GradeMaster, true)

	past := f.codec.WithClock(func() time.Time { return time.Now().Add(-8 * 24 * time.Hour) })
	token, err := past.SignToken(&jwt.User{ID: account.ID, Username: "admin", Role: models.RoleAdmin, Grade: models.GradeMaster}, testTTL)
	require.NoError(t, err)

	_, err = f.guard.Authenticate(context.Background(), "Bearer "+token)
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.Equal(t, ErrExpiredToken, Classify(err))
}

func TestAuthenticateForeignSignature(t *testing.T) {
	f := newFixture(t)
	account := f.seed(t, "admin", "admin123", models.RoleAdmin, models.GradeMaster, true)

	other, err := jwt.New("someone-else")
	require.NoError(t, err)
	token, err := other.SignToken(&jwt.User{ID: account.ID, Username: "admin", Role: models.RoleAdmin, Grade: models.GradeMaster}, testTTL)
	require.NoError(t, err)

	_, err = f.guard.Authenticate(context.Background(), "Bearer "+token)
	assert.ErrorIs(t, err, ErrMalformedToken)
}

func TestAuthenticateDeactivatedAccount(t *testing.T) {
	f := newFixture(t)
	account := f.seed(t, "aprendiz", "aprendiz123", models.RoleGeneral, models.GradeApprentice, true)
	token := f.login(t, "aprendiz", "aprendiz123")

	_, err := f.guard.Authenticate(context.Background(), "Bearer "+token)
	require.NoError(t, err)

	f.store.setActive(account.ID, false)

	_, err = f.guard.Authenticate(context.Background(), "Bearer "+token)
	assert.Equal(t, ErrInvalidAccount, err)
}

func TestAuthenticateDeletedAccount(t *testing.T) {
	f := newFixture(t)
	token, err := f.codec.SignToken(&jwt.User{ID: 404, Username: "ghost"}, testTTL)
	require.NoError(t, err)

	_, err = f.guard.Authenticate(context.Background(), "Bearer "+token)
	assert.Equal(t, ErrInvalidAccount, err)
}

func TestAuthenticateUsesStoredRole(t *testing.T) {
	f := newFixture(t)
	account := f.seed(t, "maestro", "maestro123", models.RoleGeneral, models.GradeMaster, true)
	token := f.login(t, "maestro", "maestro123")

	f.store.accounts[account.ID].Role = models.RoleAdmin

	identity, err := f.guard.Authenticate(context.Background(), "Bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, identity.Role)
}

func TestAuthenticateStoreFailureIsInternal(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "admin", "admin123", models.RoleAdmin, models.GradeMaster, true)
	token := f.login(t, "admin", "admin123")

	f.store.err = errors.New("too many connections")

	_, err := f.guard.Authenticate(context.Background(), "Bearer "+token)
	require.Error(t, err)
	assert.Nil(t, Classify(err))
}
