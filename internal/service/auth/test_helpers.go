package auth

import "time"

// NewTestJWTService creates a JWT service with an explicit secret,
// lifetime, and clock. Intended for tests that need deterministic
// issued-at and expiry times.
func NewTestJWTService(secret string, lifetime time.Duration, timeFunc func() time.Time) JWTService {
	if timeFunc == nil {
		timeFunc = time.Now
	}
	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: lifetime,
		timeFunc:      timeFunc,
		clockSkew:     0,
	}
}
