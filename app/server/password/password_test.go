package password

import (
	"strings"
	"testing"

	"github.com/alexedwards/argon2id"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	h := New(bcrypt.MinCost)

	digest, err := h.Hash("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", digest)

	ok, err := h.Verify("admin123", digest)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("wrong", digest)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashIsSalted(t *testing.T) {
	h := New(bcrypt.MinCost)

	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestHashUsesConfiguredCost(t *testing.T) {
	h := New(10)

	digest, err := h.Hash("maestro123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(digest))
	require.NoError(t, err)
	assert.Equal(t, 10, cost)
}

func TestVerifyArgon2idDigest(t *testing.T) {
	h := New(bcrypt.MinCost)

	digest, err := argon2id.CreateHash("password", &argon2id.Params{
		Memory:      8 * 1024,
		Iterations:  1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(digest, argon2idPrefix))

	ok, err := h.Verify("password", digest)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("Password", digest)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyGarbageDigest(t *testing.T) {
	h := New(bcrypt.MinCost)

	_, err := h.Verify("anything", "not-a-digest")
	assert.Error(t, err)

	_, err = h.Verify("anything", "$argon2id$broken")
	assert.Error(t, err)
}
