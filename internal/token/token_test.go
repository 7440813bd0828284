package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	codec := New("test-secret", 24*time.Hour)

	raw, err := codec.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := codec.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
}

func TestExpiredToken(t *testing.T) {
	codec := New("test-secret", 24*time.Hour)

	issued := time.Now().Add(-48 * time.Hour)
	codec.now = func() time.Time { return issued }
	raw, err := codec.Issue(42)
	require.NoError(t, err)

	codec.now = time.Now
	claims, err := codec.Verify(raw)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidOrExpired)
}

func TestTamperedToken(t *testing.T) {
	codec := New("test-secret", 24*time.Hour)

	raw, err := codec.Issue(42)
	require.NoError(t, err)

	tampered := raw[:len(raw)-2] + "xx"
	claims, err := codec.Verify(tampered)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidOrExpired)
}

func TestWrongSecret(t *testing.T) {
	raw, err := New("secret-a", 24*time.Hour).Issue(42)
	require.NoError(t, err)

	claims, err := New("secret-b", 24*time.Hour).Verify(raw)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidOrExpired)
}

func TestGarbageToken(t *testing.T) {
	codec := New("test-secret", 24*time.Hour)

	for _, raw := range []string{"", "abc123", "a.b.c"} {
		claims, err := codec.Verify(raw)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrInvalidOrExpired)
	}
}

// A token signed with "none" must never verify, even with a valid payload.
func TestAlgorithmNoneRejected(t *testing.T) {
	codec := New("test-secret", 24*time.Hour)

	claims := Claims{
		UserID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	got, err := codec.Verify(unsigned)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrInvalidOrExpired)
}
