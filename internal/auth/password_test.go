package auth

import (
	"strings"
	"testing"

	"github.com/ledgerbook/backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testArgon2 = config.Argon2Config{Time: 1, Memory: 1024, Threads: 1, KeyLength: 32, SaltLength: 16}

func TestPasswordHasher(t *testing.T) {
	h := NewPasswordHasher(testArgon2)

	hashed, err := h.Hash("securepass123")
	require.NoError(t, err)
	assert.Len(t, strings.Split(hashed, "$"), 2)

	t.Run("correct password", func(t *testing.T) {
		assert.True(t, h.Verify("securepass123", hashed))
	})

	t.Run("wrong password", func(t *testing.T) {
		assert.False(t, h.Verify("securepass124", hashed))
	})

	t.Run("salted", func(t *testing.T) {
		again, err := h.Hash("securepass123")
		require.NoError(t, err)
		assert.NotEqual(t, hashed, again)
		assert.True(t, h.Verify("securepass123", again))
	})

	t.Run("malformed hash", func(t *testing.T) {
		assert.False(t, h.Verify("securepass123", "no-separator"))
		assert.False(t, h.Verify("securepass123", "!!!$abc"))
		assert.False(t, h.Verify("securepass123", "YWJj$!!!"))
	})
}
