package session

import "errors"

// Token verification errors
var (
	// ErrInvalidToken is returned when a token fails signature or claim
	// validation for any reason other than expiry.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token's expiry has passed.
	ErrExpiredToken = errors.New("token expired")
)
