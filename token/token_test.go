package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestConfig(t *testing.T, secret, expireMinutes string) {
	t.Setenv("JWT_SECRET", secret)
	t.Setenv("JWT_EXPIRE_MINUTES", expireMinutes)
	require.NoError(t, LoadConfig())
}

func TestLoadConfigRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	assert.Error(t, LoadConfig())
}

func TestSignVerifyRoundTrip(t *testing.T) {
	loadTestConfig(t, "test-secret", "60")

	userId := "6a2f7d3e-9c1b-4f5a-8e7d-0123456789ab"

	signed, err := Sign(userId, false)
	require.NoError(t, err)

	claims, err := Verify(signed)
	require.NoError(t, err)

	assert.Equal(t, userId, claims.UserId)
	assert.False(t, claims.IsAdmin)
}

func TestSignCarriesAdminClaim(t *testing.T) {
	loadTestConfig(t, "test-secret", "60")

	signed, err := Sign("admin-id", true)
	require.NoError(t, err)

	claims, err := Verify(signed)
	require.NoError(t, err)

	assert.True(t, claims.IsAdmin)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	loadTestConfig(t, "test-secret", "60")

	_, err := Verify("not.a.token")
	assert.Error(t, err)

	_, err = Verify("")
	assert.Error(t, err)
}

func TestVerifyRejectsExpired(t *testing.T) {
	loadTestConfig(t, "test-secret", "-5")

	signed, err := Sign("some-user", false)
	require.NoError(t, err)

	_, err = Verify(signed)
	assert.Error(t, err)
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	loadTestConfig(t, "one-secret", "60")

	signed, err := Sign("some-user", false)
	require.NoError(t, err)

	loadTestConfig(t, "another-secret", "60")

	_, err = Verify(signed)
	assert.Error(t, err)
}

func TestVerifyRejectsMissingExpiry(t *testing.T) {
	loadTestConfig(t, "test-secret", "60")

	unsafe := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "some-user",
	})
	signed, err := unsafe.SignedString(signingKey)
	require.NoError(t, err)

	_, err = Verify(signed)
	assert.Error(t, err)
}

func TestVerifyRejectsMissingSubject(t *testing.T) {
	loadTestConfig(t, "test-secret", "60")

	unsafe := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := unsafe.SignedString(signingKey)
	require.NoError(t, err)

	_, err = Verify(signed)
	assert.Error(t, err)
}

func TestShortSecretIsPadded(t *testing.T) {
	// Short secrets get repeated out to the full HS256 key length, matching
	// the other benchmark variants.
	loadTestConfig(t, "abc", "60")

	assert.Len(t, signingKey, keyLen)

	signed, err := Sign("some-user", false)
	require.NoError(t, err)

	claims, err := Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "some-user", claims.UserId)
}

func TestLongSecretIsTruncated(t *testing.T) {
	long := make([]byte, 100)
	for i := range long {
		long[i] = byte('a' + i%26)
	}
	loadTestConfig(t, string(long), "60")

	assert.Len(t, signingKey, keyLen)
}
