package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenVerifier validates a bearer token and yields the owner id it names.
// The HTTP layer uses this to resolve the session per request.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, tokenString string) (string, error)
}

// jwtVerifier validates HS256-signed tokens issued by the external identity
// provider and reads the owner id from the subject claim.
type jwtVerifier struct {
	signingKey []byte
	clockSkew  time.Duration
	timeFunc   func() time.Time // injectable for testing
}

// Ensure jwtVerifier implements TokenVerifier interface
var _ TokenVerifier = (*jwtVerifier)(nil)

// NewJWTVerifier creates a verifier for HMAC-SHA256 tokens signed with the
// shared secret. The secret must be at least 32 bytes.
func NewJWTVerifier(secret string) (TokenVerifier, error) {
	if len(secret) < 32 {
		return nil, fmt.Errorf("jwt secret must be at least 32 characters")
	}
	return &jwtVerifier{
		signingKey: []byte(secret),
		clockSkew:  2 * time.Minute, // tolerate minor clock drift between issuer and this service
		timeFunc:   time.Now,
	}, nil
}

// VerifyToken validates the token and returns the subject claim as the
// owner id.
func (v *jwtVerifier) VerifyToken(ctx context.Context, tokenString string) (string, error) {
	now := v.timeFunc()
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithLeeway(v.clockSkew),
		jwt.WithTimeFunc(func() time.Time { return now }),
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return v.signingKey, nil
		},
		parserOpts...,
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
