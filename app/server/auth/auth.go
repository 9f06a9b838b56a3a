// Package auth implements login, registration and bearer token authentication.
package auth

import (
	"context"
	"orpheo-api/app/server/jwt"
	"orpheo-api/app/server/models"
	"time"
)

// CredentialStore is the persistence the auth flows depend on.
type CredentialStore interface {
	AccountByUsername(ctx context.Context, username string) (*models.Account, error)
	AccountByID(ctx context.Context, id uint) (*models.Account, error)
	CreateAccount(ctx context.Context, account *models.Account, member *models.Member) error
	MemberByRUT(ctx context.Context, rut string) (*models.Member, error)
}

type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) (bool, error)
}

type TokenCodec interface {
	SignToken(user *jwt.User, ttl time.Duration) (string, error)
	ParseUser(token string) (*jwt.User, error)
}

// Identity is the authenticated caller attached to a request.
type Identity struct {
	ID       uint         `json:"id"`
	Username string       `json:"username"`
	Role     models.Role  `json:"role"`
	Grade    models.Grade `json:"grade"`
}

func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == models.RoleAdmin
}

// Profile is the outward view of an account. It never carries the password hash.
type Profile struct {
	ID          uint         `json:"id"`
	Username    string       `json:"username"`
	Email       string       `json:"email"`
	Role        models.Role  `json:"role"`
	Grade       models.Grade `json:"grade"`
	Title       string       `json:"title"`
	DisplayName *string      `json:"displayName"`
	MemberID    *uint        `json:"memberId"`
}

func ProfileOf(account *models.Account) Profile {
	return Profile{
		ID:          account.ID,
		Username:    account.Username,
		Email:       account.Email,
		Role:        account.Role,
		Grade:       account.Grade,
		Title:       account.Title,
		DisplayName: account.ResolvedDisplayName(),
		MemberID:    account.MemberID,
	}
}
