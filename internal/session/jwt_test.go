package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "thisisasecretkeythatis32charslong!!"

func signToken(t *testing.T, secret string, claims jwt.RegisteredClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestNewJWTVerifierRejectsShortSecret(t *testing.T) {
	t.Parallel()

	_, err := NewJWTVerifier("tooshort")
	assert.Error(t, err)
}

func TestVerifyTokenValid(t *testing.T) {
	t.Parallel()

	verifier, err := NewJWTVerifier(testSecret)
	require.NoError(t, err)

	token := signToken(t, testSecret, jwt.RegisteredClaims{
		Subject:   "owner-123",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	owner, err := verifier.VerifyToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "owner-123", owner)
}

func TestVerifyTokenExpired(t *testing.T) {
	t.Parallel()

	verifier, err := NewJWTVerifier(testSecret)
	require.NoError(t, err)

	token := signToken(t, testSecret, jwt.RegisteredClaims{
		Subject:   "owner-123",
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})

	_, err = verifier.VerifyToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyTokenExpiredWithinLeeway(t *testing.T) {
	t.Parallel()

	verifier, err := NewJWTVerifier(testSecret)
	require.NoError(t, err)

	// Expired one minute ago, inside the two minute clock skew allowance.
	token := signToken(t, testSecret, jwt.RegisteredClaims{
		Subject:   "owner-123",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})

	owner, err := verifier.VerifyToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "owner-123", owner)
}

func TestVerifyTokenWrongKey(t *testing.T) {
	t.Parallel()

	verifier, err := NewJWTVerifier(testSecret)
	require.NoError(t, err)

	token := signToken(t, "adifferentsecretthatis32charslong!!", jwt.RegisteredClaims{
		Subject:   "owner-123",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	_, err = verifier.VerifyToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenMissingSubject(t *testing.T) {
	t.Parallel()

	verifier, err := NewJWTVerifier(testSecret)
	require.NoError(t, err)

	token := signToken(t, testSecret, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	_, err = verifier.VerifyToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenGarbage(t *testing.T) {
	t.Parallel()

	verifier, err := NewJWTVerifier(testSecret)
	require.NoError(t, err)

	_, err = verifier.VerifyToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
