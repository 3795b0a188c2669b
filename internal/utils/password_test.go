package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, VerifyPassword(hash, "s3cret-pass"))
	assert.False(t, VerifyPassword(hash, "wrong"))
	assert.False(t, VerifyPassword("not-a-hash", "s3cret-pass"))
}

func TestHashPasswordSalts(t *testing.T) {
	h1, err := HashPassword("same", 4)
	require.NoError(t, err)
	h2, err := HashPassword("same", 4)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}
