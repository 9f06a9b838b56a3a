package jwt

import (
	"errors"
	"fmt"
	"orpheo-api/app/server/models"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformedToken = errors.New("malformed token") // bad structure or signature mismatch
	ErrExpiredToken   = errors.New("expired token")   // valid signature, past expiry
)

type JWT struct {
	key []byte
	now func() time.Time
}

// User is the identity carried inside a session token.
type User struct {
	ID       uint
	Username string
	Role     models.Role
	Grade    models.Grade
	IssuedAt int64 // Unix second
	Expires  int64 // Unix second
}

type claims struct {
	ID       uint         `json:"id"`
	Username string       `json:"username"`
	Role     models.Role  `json:"role"`
	Grade    models.Grade `json:"grade"`
	jwt.RegisteredClaims
}

func New(key string) (*JWT, error) {
	if len(key) == 0 {
		return nil, errors.New("key is empty")
	}

	return &JWT{key: []byte(key), now: time.Now}, nil
}

// WithClock replaces the time source used for issuing and validating tokens.
func (j *JWT) WithClock(now func() time.Time) *JWT {
	return &JWT{key: j.key, now: now}
}

func (j *JWT) ParseUser(tokenString string) (*User, error) {
	// Reject empty input before touching the parser
	if len(tokenString) == 0 {
		return nil, fmt.Errorf("%w: token string is empty", ErrMalformedToken)
	}

	c := &claims{}
	token, err := jwt.ParseWithClaims(tokenString, c, func(token *jwt.Token) (interface{}, error) {
		return j.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %w", ErrExpiredToken, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}
	if !token.Valid || c.ID == 0 {
		return nil, fmt.Errorf("%w: invalid claims", ErrMalformedToken)
	}

	user := &User{
		ID:       c.ID,
		Username: c.Username,
		Role:     c.Role,
		Grade:    c.Grade,
		Expires:  c.ExpiresAt.Unix(),
	}
	if c.IssuedAt != nil {
		user.IssuedAt = c.IssuedAt.Unix()
	}

	return user, nil
}

// SignToken issues a token for user that expires ttl from now.
// IssuedAt and Expires are filled in on the passed user.
func (j *JWT) SignToken(user *User, ttl time.Duration) (string, error) {
	now := j.now()
	user.IssuedAt = now.Unix()
	user.Expires = now.Add(ttl).Unix()

	// Build claims
	c := &claims{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
		Grade:    user.Grade,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Unix(user.IssuedAt, 0)),
			ExpiresAt: jwt.NewNumericDate(time.Unix(user.Expires, 0)),
		},
	}

	// Sign with HS256
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(j.key)
}
