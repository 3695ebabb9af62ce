package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveCookieKeys(t *testing.T) {
	keys, err := DeriveCookieKeys("a-secret-that-is-long-enough-000")
	require.NoError(t, err)
	assert.Len(t, keys.Hash, 32)
	assert.Len(t, keys.Block, 32)
	assert.Len(t, keys.CSRF, 32)
	assert.NotEqual(t, keys.Hash, keys.Block)
	assert.NotEqual(t, keys.Block, keys.CSRF)

	again, err := DeriveCookieKeys("a-secret-that-is-long-enough-000")
	require.NoError(t, err)
	assert.Equal(t, keys, again)

	other, err := DeriveCookieKeys("another-secret")
	require.NoError(t, err)
	assert.NotEqual(t, keys.Hash, other.Hash)
}

func TestDeriveCookieKeysEmpty(t *testing.T) {
	_, err := DeriveCookieKeys("")
	assert.Error(t, err)
}

func TestFormToken(t *testing.T) {
	key := []byte("0123456789abcdef0123456789abcdef")
	token := FormToken(key, "sess-1")

	assert.True(t, ValidFormToken(key, "sess-1", token))
	assert.False(t, ValidFormToken(key, "sess-2", token))
	assert.False(t, ValidFormToken(key, "sess-1", ""))
	assert.False(t, ValidFormToken(key, "", token))
	assert.False(t, ValidFormToken([]byte("other"), "sess-1", token))
}
