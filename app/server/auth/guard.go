package auth

import (
	"context"
	"errors"
	"fmt"
	"orpheo-api/app/server/jwt"
	"orpheo-api/app/server/store"
	"strings"
)

// Guard turns an Authorization header into an Identity.
type Guard struct {
	accounts CredentialStore
	tokens   TokenCodec
}

func NewGuard(accounts CredentialStore, tokens TokenCodec) *Guard {
	return &Guard{accounts: accounts, tokens: tokens}
}

// Authenticate verifies a "Bearer <token>" header. The account behind the token is
// looked up on every call, so deactivating it cuts off tokens that have not expired yet.
func (g *Guard) Authenticate(ctx context.Context, header string) (*Identity, error) {
	if header == "" {
		return nil, ErrMissingToken
	}

	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	token = strings.TrimSpace(token)
	if !found || token == "" || !strings.EqualFold(scheme, "bearer") {
		return nil, ErrMalformedToken
	}

	user, err := g.tokens.ParseUser(token)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrExpiredToken):
			return nil, fmt.Errorf("%w: %w", ErrExpiredToken, err)
		case errors.Is(err, jwt.ErrMalformedToken):
			return nil, fmt.Errorf("%w: %w", ErrMalformedToken, err)
		default:
			return nil, fmt.Errorf("parse token: %w", err)
		}
	}

	// Never trust the claims alone
	account, err := g.accounts.AccountByID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidAccount
		}
		return nil, fmt.Errorf("find account %d: %w", user.ID, err)
	}
	if !account.IsActive {
		return nil, ErrInvalidAccount
	}

	return &Identity{
		ID:       account.ID,
		Username: account.Username,
		Role:     account.Role,
		Grade:    account.Grade,
	}, nil
}
