package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashIsSalted(t *testing.T) {
	first, err := Hash("testpass123")
	require.NoError(t, err)
	second, err := Hash("testpass123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerify(t *testing.T) {
	digest, err := Hash("testpass123")
	require.NoError(t, err)

	assert.True(t, Verify("testpass123", digest))
	assert.False(t, Verify("wrongpass", digest))
}

func TestVerifyMalformedDigest(t *testing.T) {
	assert.False(t, Verify("testpass123", ""))
	assert.False(t, Verify("testpass123", "not-a-bcrypt-digest"))
}
