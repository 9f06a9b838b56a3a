// Package password hashes and verifies account passwords.
//
// New digests are bcrypt with a fixed cost. Digests in the argon2id PHC format,
// as written by earlier deployments of the admin tooling, are still accepted by Verify.
package password

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexedwards/argon2id"
	"golang.org/x/crypto/bcrypt"
)

const argon2idPrefix = "$argon2id$"

type Hasher struct {
	cost int
}

func New(cost int) *Hasher {
	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("generate bcrypt hash: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. A mismatch is not an error;
// errors are only returned for digests that cannot be parsed at all.
func (h *Hasher) Verify(plaintext, digest string) (bool, error) {
	if strings.HasPrefix(digest, argon2idPrefix) {
		match, _, err := argon2id.CheckHash(plaintext, digest)
		if err != nil {
			return false, fmt.Errorf("check argon2id hash: %w", err)
		}
		return match, nil
	}

	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("check bcrypt hash: %w", err)
	}
}
