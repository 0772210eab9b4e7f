package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid or the signature doesn't match
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrMissingSecret indicates the signing secret is not configured.
	// Token operations fail closed with this error rather than producing
	// unsigned or forgeable tokens.
	ErrMissingSecret = errors.New("token signing secret is not configured")

	// ErrInvalidCredentials indicates a password did not match the stored hash
	ErrInvalidCredentials = errors.New("invalid credentials")
)
