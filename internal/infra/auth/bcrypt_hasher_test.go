package auth

import (
	"testing"

	"atlas/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	password := "pw123"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("other", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_DistinctSalts(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	first, err := hasher.Hash("pw123")
	require.NoError(t, err)
	second, err := hasher.Hash("pw123")
	require.NoError(t, err)

	// Salts are random, so the same plaintext never yields the same digest.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("pw123", first))
	assert.True(t, hasher.Check("pw123", second))
}

func TestBcryptHasher_MalformedDigest(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	// Verification against garbage must report a mismatch, not blow up.
	assert.False(t, hasher.Check("pw123", "not-a-bcrypt-digest"))
	assert.False(t, hasher.Check("pw123", ""))
}

func TestBcryptHasher_ConfiguredCost(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 4}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("pw123")
	require.NoError(t, err)
	assert.True(t, hasher.Check("pw123", hash))
}
